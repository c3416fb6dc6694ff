package vect

import (
	"encoding/json"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

func (v Vect) MarshalJSON() ([]byte, error) {
	return json.Marshal(&[2]Float{v.X, v.Y})
}

func (v *Vect) UnmarshalJSON(data []byte) error {
	pair := [2]Float{}

	//try unmarshalling array form
	if err := json.Unmarshal(data, &pair); err == nil {
		v.X, v.Y = pair[0], pair[1]
		return nil
	}

	//try object form
	obj := struct {
		X, Y Float
	}{}
	if err := json.Unmarshal(data, &obj); err != nil {
		log.Printf("Error decoding Vect")
		return err
	}
	v.X, v.Y = obj.X, obj.Y
	return nil
}

func (v Vect) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, c := range [2]Float{v.X, v.Y} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(float32(c))})
	}
	return node, nil
}

func (v *Vect) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var pair []Float
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: vector needs 2 components, got %d", node.Line, len(pair))
		}
		v.X, v.Y = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		obj := struct {
			X Float `yaml:"x"`
			Y Float `yaml:"y"`
		}{}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		v.X, v.Y = obj.X, obj.Y
		return nil
	}
	return fmt.Errorf("line %d: cannot decode vector from %s", node.Line, node.ShortTag())
}
