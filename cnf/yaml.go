package cnf

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Formulas are stored in YAML documents as trees: an atom is a plain scalar,
// every other node is a mapping with a single key naming its connective.
//
//	iff:
//	  - or: [p, q]
//	  - r
//
// "not" expects a single formula, "implies" and "iff" a sequence of exactly two
// formulas, "and" and "or" a sequence of any length.

// DecodeYAML reads a single formula from the YAML document found in r.
func DecodeYAML(r io.Reader) (Formula, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("could not decode formula: empty document")
		}
		return nil, fmt.Errorf("could not decode formula: %w", err)
	}
	return fromNode(&doc)
}

func fromNode(n *yaml.Node) (Formula, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) != 1 {
			return nil, fmt.Errorf("line %d: expected exactly one formula", n.Line)
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		// Formulas never share nodes.
		return nil, fmt.Errorf("line %d: aliases are not supported", n.Line)
	case yaml.ScalarNode:
		if n.Value == "" {
			return nil, fmt.Errorf("line %d: empty atom name", n.Line)
		}
		return Var(n.Value), nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, fmt.Errorf("line %d: expected exactly one connective, found %d", n.Line, len(n.Content)/2)
		}
		return fromConnective(n.Content[0].Value, n.Content[1])
	default:
		return nil, fmt.Errorf("line %d: unexpected YAML node, expected atom or connective", n.Line)
	}
}

func fromConnective(key string, n *yaml.Node) (Formula, error) {
	switch key {
	case "not":
		sub, err := fromNode(n)
		if err != nil {
			return nil, err
		}
		return Not(sub), nil
	case "implies", "iff":
		subs, err := fromSequence(key, n)
		if err != nil {
			return nil, err
		}
		if len(subs) != 2 {
			return nil, fmt.Errorf("line %d: %s expects 2 operands, found %d", n.Line, key, len(subs))
		}
		if key == "implies" {
			return Implies(subs[0], subs[1]), nil
		}
		return Iff(subs[0], subs[1]), nil
	case "and", "or":
		subs, err := fromSequence(key, n)
		if err != nil {
			return nil, err
		}
		if key == "and" {
			return And(subs...), nil
		}
		return Or(subs...), nil
	default:
		return nil, fmt.Errorf("line %d: unknown connective %q", n.Line, key)
	}
}

func fromSequence(key string, n *yaml.Node) ([]Formula, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: %s expects a sequence of operands", n.Line, key)
	}
	subs := make([]Formula, len(n.Content))
	for i, c := range n.Content {
		sub, err := fromNode(c)
		if err != nil {
			return nil, err
		}
		subs[i] = sub
	}
	return subs, nil
}

// EncodeYAML writes f on w as a YAML document that DecodeYAML can read back.
func EncodeYAML(f Formula, w io.Writer) error {
	if err := check(f); err != nil {
		return fmt.Errorf("could not encode formula: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toNode(f)); err != nil {
		return fmt.Errorf("could not encode formula: %w", err)
	}
	return enc.Close()
}

func toNode(f Formula) *yaml.Node {
	if v, ok := f.(variable); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.name}
	}
	key := &yaml.Node{Kind: yaml.ScalarNode, Value: f.Kind().String()}
	var val *yaml.Node
	if n, ok := f.(not); ok {
		val = toNode(n[0])
	} else {
		val = &yaml.Node{Kind: yaml.SequenceNode}
		flow := true
		for _, sub := range Operands(f) {
			flow = flow && sub.Kind() == KindAtom
			val.Content = append(val.Content, toNode(sub))
		}
		if flow {
			val.Style = yaml.FlowStyle
		}
	}
	return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{key, val}}
}
