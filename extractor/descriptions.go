package extractor

import (
	"bytes"
	"encoding/json"

	"go.yaml.in/yaml/v4"
)

// Entry is one normalized feature name and its description.
type Entry struct {
	Name        string `json:"name"        yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Descriptions is the feature-description mapping produced by an extraction.
//
// Keys keep the order in which they were first accepted. Setting an existing
// key replaces its description without moving it, which is what pairing the
// accepted names and descriptions positionally into a map would produce.
// The zero value is an empty mapping ready to use.
type Descriptions struct {
	keys   []string
	values map[string]string
}

// NewDescriptions returns an empty mapping.
func NewDescriptions() *Descriptions {
	return &Descriptions{values: make(map[string]string)}
}

// Set records description for name, replacing any earlier description.
func (d *Descriptions) Set(name, description string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, exists := d.values[name]; !exists {
		d.keys = append(d.keys, name)
	}
	d.values[name] = description
}

// Get returns the description for name and whether it was present.
func (d *Descriptions) Get(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[name]
	return v, ok
}

// Len returns the number of features in the mapping.
func (d *Descriptions) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the feature names in mapping order.
func (d *Descriptions) Keys() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Entries returns the features in mapping order.
func (d *Descriptions) Entries() []Entry {
	if d == nil {
		return nil
	}
	out := make([]Entry, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Entry{Name: k, Description: d.values[k]})
	}
	return out
}

// Map returns a copy of the mapping as a plain Go map.
func (d *Descriptions) Map() map[string]string {
	out := make(map[string]string, d.Len())
	if d == nil {
		return out
	}
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the mapping as a JSON object with keys in mapping order.
func (d *Descriptions) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Description)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node with keys in mapping order.
func (d *Descriptions) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range d.Entries() {
		node.Content = append(node.Content, scalarNode(e.Name), scalarNode(e.Description))
	}
	return node, nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
