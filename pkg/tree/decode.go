package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes "element", "text" or "comment".
func (k *NodeKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "element", "":
		*k = KindElement
	case "text":
		*k = KindText
	case "comment":
		*k = KindComment
	default:
		return fmt.Errorf("line %d: unknown static node kind %q", value.Line, s)
	}
	return nil
}

// UnmarshalYAML decodes a static node. A bare scalar is shorthand for a
// text node.
func (n *StaticNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.Kind = KindText
		return value.Decode(&n.Text)
	}
	type plain StaticNode
	return value.Decode((*plain)(n))
}

// UnmarshalYAML decodes an expression from a scalar.
func (e *Expr) UnmarshalYAML(value *yaml.Node) error {
	return value.Decode(&e.Src)
}

type propDoc struct {
	Key    string  `yaml:"key"`
	Value  *string `yaml:"value"`
	Expr   *string `yaml:"expr"`
	Spread *string `yaml:"spread"`
}

// UnmarshalYAML decodes {key, value}, {key, expr} or {spread}.
func (p *Prop) UnmarshalYAML(value *yaml.Node) error {
	var d propDoc
	if err := value.Decode(&d); err != nil {
		return err
	}
	switch {
	case d.Spread != nil:
		*p = SpreadProp(*d.Spread)
	case d.Expr != nil:
		*p = ExprProp(d.Key, *d.Expr)
	case d.Value != nil:
		*p = LitProp(d.Key, *d.Value)
	default:
		return fmt.Errorf("line %d: prop %q has no value, expr or spread", value.Line, d.Key)
	}
	if p.Kind != PropSpread && p.Key == "" {
		return fmt.Errorf("line %d: prop without key", value.Line)
	}
	return nil
}

type bindingDoc struct {
	At        Address        `yaml:"at"`
	Props     []Prop         `yaml:"props"`
	Expr      *Expr          `yaml:"expr"`
	Component *ComponentInfo `yaml:"component"`
}

// UnmarshalYAML decodes {at, props}, {at, expr} or {at, component}. An entry
// naming none or several of them decodes with BindUnknown.
func (b *Binding) UnmarshalYAML(value *yaml.Node) error {
	var d bindingDoc
	if err := value.Decode(&d); err != nil {
		return err
	}
	*b = Binding{Address: d.At}
	set := 0
	if d.Props != nil {
		b.Kind, b.Props = BindProps, d.Props
		set++
	}
	if d.Expr != nil {
		b.Kind, b.Expr = BindExpr, *d.Expr
		set++
	}
	if d.Component != nil {
		b.Kind, b.Component = BindComponent, d.Component
		set++
	}
	if set != 1 {
		b.Kind = BindUnknown
	}
	return nil
}

type staticChildDoc struct {
	At       int      `yaml:"at"`
	Text     *string  `yaml:"text"`
	Comments []string `yaml:"comments"`
}

// UnmarshalYAML decodes a sequence of {at, text} / {at, comments} entries.
func (c *StaticChildren) UnmarshalYAML(value *yaml.Node) error {
	var docs []staticChildDoc
	if err := value.Decode(&docs); err != nil {
		return err
	}
	out := make(StaticChildren, len(docs))
	for _, d := range docs {
		if _, dup := out[d.At]; dup {
			return fmt.Errorf("line %d: duplicate static child position %d", value.Line, d.At)
		}
		switch {
		case d.Comments != nil:
			out[d.At] = CommentsChild(d.Comments...)
		case d.Text != nil:
			out[d.At] = TextChild(*d.Text)
		default:
			return fmt.Errorf("line %d: static child at %d has neither text nor comments", value.Line, d.At)
		}
	}
	*c = out
	return nil
}

type childDoc struct {
	At        int            `yaml:"at"`
	Expr      *Expr          `yaml:"expr"`
	Element   *ElementInfo   `yaml:"element"`
	Component *ComponentInfo `yaml:"component"`
}

// UnmarshalYAML decodes a sequence of {at, expr|element|component} entries.
func (c *Children) UnmarshalYAML(value *yaml.Node) error {
	var docs []childDoc
	if err := value.Decode(&docs); err != nil {
		return err
	}
	out := make(Children, len(docs))
	for _, d := range docs {
		if _, dup := out[d.At]; dup {
			return fmt.Errorf("line %d: duplicate dynamic child position %d", value.Line, d.At)
		}
		var ch Child
		set := 0
		if d.Expr != nil {
			ch = ExprChild(d.Expr.Src)
			set++
		}
		if d.Element != nil {
			ch = ElementChild(d.Element)
			set++
		}
		if d.Component != nil {
			ch = ComponentChild(d.Component)
			set++
		}
		if set != 1 {
			ch = Child{Kind: ChildUnknown}
		}
		out[d.At] = ch
	}
	*c = out
	return nil
}

type literalDoc struct {
	ID        int            `yaml:"id"`
	Name      string         `yaml:"name"`
	Loc       Location       `yaml:"loc"`
	Element   *ElementInfo   `yaml:"element"`
	Component *ComponentInfo `yaml:"component"`
	Fragment  *FragmentInfo  `yaml:"fragment"`
}

// UnmarshalYAML decodes a literal. The kind is taken from whichever of
// element, component or fragment is present; anything else decodes as
// LiteralUnknown so that lowering can report it with the literal's location.
func (l *Literal) UnmarshalYAML(value *yaml.Node) error {
	var d literalDoc
	if err := value.Decode(&d); err != nil {
		return err
	}
	*l = Literal{ID: d.ID, Name: d.Name, Loc: d.Loc}
	set := 0
	if d.Element != nil {
		l.Kind, l.Element = LiteralElement, d.Element
		set++
	}
	if d.Component != nil {
		l.Kind, l.Component = LiteralComponent, d.Component
		set++
	}
	if d.Fragment != nil {
		l.Kind, l.Fragment = LiteralFragment, d.Fragment
		set++
	}
	if set != 1 {
		l.Kind = LiteralUnknown
	}
	return nil
}

// DecodeLiteral decodes a single literal from YAML or JSON.
func DecodeLiteral(data []byte) (*Literal, error) {
	var lit Literal
	if err := yaml.Unmarshal(data, &lit); err != nil {
		return nil, err
	}
	return &lit, nil
}
