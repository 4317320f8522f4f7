package tesseract

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LayerConfig declares named collision layers and which layers each one
// detects. Layer bits are assigned in declaration order. A layer with
// no detects row defaults to detecting everything.
type LayerConfig struct {
	Layers  []string            `yaml:"layers"`
	Detects map[string][]string `yaml:"detects"`

	bits map[string]uint32
}

// LoadLayerConfig decodes and validates a layer config from YAML.
func LoadLayerConfig(r io.Reader) (*LayerConfig, error) {
	var c LayerConfig
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decoding layer config: %w", err)
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *LayerConfig) compile() error {
	if len(c.Layers) == 0 {
		return fmt.Errorf("layer config declares no layers")
	}
	if len(c.Layers) > 32 {
		return fmt.Errorf("at most 32 layers are supported, got %d", len(c.Layers))
	}

	c.bits = make(map[string]uint32, len(c.Layers))
	for i, name := range c.Layers {
		if name == "" {
			return fmt.Errorf("layer %d has an empty name", i)
		}
		if _, duplicate := c.bits[name]; duplicate {
			return fmt.Errorf("duplicate layer %q", name)
		}
		c.bits[name] = LayerBit(i)
	}

	for name, row := range c.Detects {
		if _, ok := c.bits[name]; !ok {
			return fmt.Errorf("detects row for undeclared layer %q", name)
		}
		for _, target := range row {
			if _, ok := c.bits[target]; !ok {
				return fmt.Errorf("layer %q detects undeclared layer %q", name, target)
			}
		}
	}

	return nil
}

// Bit returns the layer bit assigned to a declared layer name.
func (c *LayerConfig) Bit(name string) (uint32, error) {
	bit, ok := c.bits[name]
	if !ok {
		return 0, fmt.Errorf("unknown layer %q", name)
	}
	return bit, nil
}

// Filter compiles the filter for a named layer from its detects row.
func (c *LayerConfig) Filter(name string) (Filter, error) {
	bit, ok := c.bits[name]
	if !ok {
		return Filter{}, fmt.Errorf("unknown layer %q", name)
	}

	row, declared := c.Detects[name]
	if !declared {
		return FilterAll(bit), nil
	}

	var mask uint32
	for _, target := range row {
		mask |= c.bits[target]
	}
	return Filter{Layer: bit, Mask: mask}, nil
}
