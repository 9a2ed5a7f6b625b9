package store

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"sona/src/persona"
)

// YAML translation goes through yaml.Node rather than map[string]any so
// that category and trait insertion order survives the round trip, the
// same guarantee the JSON codec makes.

func exportYAML(p *persona.Persona) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	appendPair(root, "persona_id", scalarNode(p.ID))
	appendPair(root, "name", scalarNode(p.Name))
	appendPair(root, "description", scalarNode(p.Description))
	appendPair(root, "category", scalarNode(p.Category))

	traits := &yaml.Node{Kind: yaml.MappingNode}
	for _, category := range p.Traits.Keys() {
		block, _ := p.Traits.Get(category)
		appendPair(traits, category, valueNode(block))
	}
	appendPair(root, "personality_traits", traits)

	if p.LLMConfig != nil {
		appendPair(root, "llm_config", valueNode(p.LLMConfig))
	}
	if p.Metadata != nil {
		md := &yaml.Node{Kind: yaml.MappingNode}
		appendPair(md, "created_at", scalarNode(p.Metadata.CreatedAt))
		appendPair(md, "modified_at", scalarNode(p.Metadata.ModifiedAt))
		appendPair(md, "version", scalarNode(p.Metadata.Version))
		appendPair(root, "metadata", md)
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func appendPair(mapping *yaml.Node, key string, value *yaml.Node) {
	mapping.Content = append(mapping.Content, scalarNode(key), value)
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func valueNode(v persona.Value) *yaml.Node {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case string:
		return scalarNode(t)
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}
	case float64:
		if t == float64(int64(t)) {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(t), 10)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(t, 'f', -1, 64)}
	case []persona.Value:
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range t {
			seq.Content = append(seq.Content, valueNode(e))
		}
		return seq
	case *persona.Object:
		mapping := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range t.Keys() {
			sub, _ := t.Get(k)
			appendPair(mapping, k, valueNode(sub))
		}
		return mapping
	default:
		return scalarNode(fmt.Sprint(t))
	}
}

func importYAML(data []byte) (*persona.Persona, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty YAML document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("persona document must be a mapping")
	}

	p := &persona.Persona{Traits: persona.NewTraitMap()}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		node := root.Content[i+1]

		switch key {
		case "persona_id":
			p.ID = node.Value
		case "name":
			p.Name = node.Value
		case "description":
			p.Description = node.Value
		case "category":
			p.Category = node.Value
		case "personality_traits":
			if node.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("personality_traits must be a mapping")
			}
			for j := 0; j+1 < len(node.Content); j += 2 {
				category := node.Content[j].Value
				block, err := nodeToValue(node.Content[j+1])
				if err != nil {
					return nil, err
				}
				obj, ok := block.(*persona.Object)
				if !ok {
					return nil, fmt.Errorf("trait category %q must contain a mapping", category)
				}
				p.Traits.Set(category, obj)
			}
		case "llm_config":
			v, err := nodeToValue(node)
			if err != nil {
				return nil, err
			}
			if obj, ok := v.(*persona.Object); ok {
				p.LLMConfig = obj
			}
		case "metadata":
			if node.Kind == yaml.MappingNode {
				md := &persona.Metadata{}
				for j := 0; j+1 < len(node.Content); j += 2 {
					switch node.Content[j].Value {
					case "created_at":
						md.CreatedAt = node.Content[j+1].Value
					case "modified_at":
						md.ModifiedAt = node.Content[j+1].Value
					case "version":
						md.Version = node.Content[j+1].Value
					case "template_source":
						md.TemplateSource = node.Content[j+1].Value
					}
				}
				p.Metadata = md
			}
		}
	}

	return p, nil
}

func nodeToValue(n *yaml.Node) (persona.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return nil, nil
		case "!!bool":
			return strconv.ParseBool(n.Value)
		case "!!int", "!!float":
			return strconv.ParseFloat(n.Value, 64)
		default:
			return n.Value, nil
		}
	case yaml.SequenceNode:
		seq := make([]persona.Value, 0, len(n.Content))
		for _, e := range n.Content {
			v, err := nodeToValue(e)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}
		return seq, nil
	case yaml.MappingNode:
		obj := persona.NewObject()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := nodeToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj.Set(n.Content[i].Value, v)
		}
		return obj, nil
	case yaml.AliasNode:
		return nodeToValue(n.Alias)
	}
	return nil, fmt.Errorf("unsupported YAML node kind %v", n.Kind)
}
