package value

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

type wireValue struct {
	Value string `json:"value" yaml:"value"`
	Kind  Kind   `json:"kind" yaml:"kind"`
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireValue{Value: v.raw, Kind: v.kind})
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var w wireValue
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*v = New(w.Value, w.Kind)
	return nil
}

func (v Value) MarshalYAML() (any, error) {
	return wireValue{Value: v.raw, Kind: v.kind}, nil
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var w wireValue
	if err := node.Decode(&w); err != nil {
		return err
	}
	*v = New(w.Value, w.Kind)
	return nil
}
