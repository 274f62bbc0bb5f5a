package histfsm

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseConfig decodes a YAML (or JSON) document of the form
//
//	initial: solid
//	states:
//	  solid:
//	    transitions:
//	      melt: liquid
//
// States and events keep their document order.
func ParseConfig(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if isEmptyNode(&doc) {
		return nil, fmt.Errorf("parse config: %w", ErrConfigMissing)
	}

	cfg := NewConfig()
	if err := doc.Content[0].Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the whole of r and decodes it with ParseConfig
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// UnmarshalYAML implements yaml.Unmarshaler so a Config can be embedded in
// larger documents. Mapping nodes are walked by hand to keep key order.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if c.states == nil {
		c.states = make(map[StateID]*StateDefinition)
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: config must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "initial":
			if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: initial must be a scalar", val.Line)
			}
			c.Initial(StateID(val.Value))
		case "states":
			if err := c.decodeStates(val); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Config) decodeStates(node *yaml.Node) error {
	if isEmptyNode(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: states must be a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		s := c.define(StateID(key.Value))
		if isEmptyNode(val) {
			continue
		}
		if val.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: state %q must be a mapping", val.Line, key.Value)
		}
		for j := 0; j+1 < len(val.Content); j += 2 {
			if val.Content[j].Value != "transitions" {
				continue
			}
			if err := decodeTransitions(s, val.Content[j+1]); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeTransitions(s *StateDefinition, node *yaml.Node) error {
	if isEmptyNode(node) {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: transitions of %q must be a mapping", node.Line, s.ID)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		ev, to := node.Content[i], node.Content[i+1]
		if to.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: destination of %q/%q must be a scalar", to.Line, s.ID, ev.Value)
		}
		s.On(EventID(ev.Value), StateID(to.Value))
	}
	return nil
}

func isEmptyNode(n *yaml.Node) bool {
	switch n.Kind {
	case 0:
		return true
	case yaml.DocumentNode:
		return len(n.Content) == 0 || isEmptyNode(n.Content[0])
	case yaml.ScalarNode:
		return n.Tag == "!!null"
	}
	return false
}
