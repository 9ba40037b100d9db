package tree

import "fmt"

// Location is the source position of a literal, as reported by the parser.
type Location struct {
	File   string `yaml:"file,omitempty"`
	Line   int    `yaml:"line,omitempty"`
	Column int    `yaml:"column,omitempty"`
}

// String returns the location as "file:line:column".
func (l Location) String() string {
	if l.File == "" {
		return "<input>"
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Expr is the source text of an embedded expression.
type Expr struct {
	Src string
}

// E returns an Expr for src.
func E(src string) Expr {
	return Expr{Src: src}
}

// PropKind says how a Prop's value is to be read.
type PropKind uint8

const (
	PropLiteral PropKind = iota // Value is literal text
	PropExpr                    // Value is expression source
	PropSpread                  // Value is the source of an object to spread; Key is unused
)

// String returns the string representation of the PropKind.
func (k PropKind) String() string {
	switch k {
	case PropLiteral:
		return "literal"
	case PropExpr:
		return "expr"
	case PropSpread:
		return "spread"
	default:
		return fmt.Sprintf("PropKind(%d)", uint8(k))
	}
}

// Prop is one dynamic attribute, event handler or spread.
type Prop struct {
	Key   string
	Kind  PropKind
	Value string
}

// LitProp returns a literal-valued prop.
func LitProp(key, value string) Prop { return Prop{Key: key, Kind: PropLiteral, Value: value} }

// ExprProp returns an expression-valued prop.
func ExprProp(key, src string) Prop { return Prop{Key: key, Kind: PropExpr, Value: src} }

// SpreadProp returns a spread of the object expression src.
func SpreadProp(src string) Prop { return Prop{Kind: PropSpread, Value: src} }

// BindingKind discriminates Binding variants.
type BindingKind uint8

const (
	BindUnknown   BindingKind = iota
	BindProps                 // one or more props on the addressed node
	BindExpr                  // runtime value appended to the addressed node
	BindComponent             // nested component appended to the addressed node
)

// String returns the string representation of the BindingKind.
func (k BindingKind) String() string {
	switch k {
	case BindProps:
		return "props"
	case BindExpr:
		return "expr"
	case BindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Binding attaches a dynamic value to one position of the static tree.
type Binding struct {
	Kind      BindingKind
	Address   Address
	Props     []Prop         // BindProps
	Expr      Expr           // BindExpr
	Component *ComponentInfo // BindComponent
}

// PropsAt returns a prop binding.
func PropsAt(addr Address, props ...Prop) Binding {
	return Binding{Kind: BindProps, Address: addr, Props: props}
}

// ExprAt returns a child-expression binding.
func ExprAt(addr Address, src string) Binding {
	return Binding{Kind: BindExpr, Address: addr, Expr: E(src)}
}

// ComponentAt returns a child-component binding.
func ComponentAt(addr Address, c *ComponentInfo) Binding {
	return Binding{Kind: BindComponent, Address: addr, Component: c}
}

// ElementInfo is a built-in element literal.
type ElementInfo struct {
	Static  *StaticNode `yaml:"static"`
	Dynamic []Binding   `yaml:"dynamic,omitempty"`
}

// StaticChild is a literal child of a component or fragment: either text or
// a group of consecutive comments.
type StaticChild struct {
	Text     string
	Comments []string
	// IsComments distinguishes an empty comment group from empty text.
	IsComments bool
}

// TextChild returns a literal text child.
func TextChild(s string) StaticChild { return StaticChild{Text: s} }

// CommentsChild returns a comment-group child.
func CommentsChild(comments ...string) StaticChild {
	return StaticChild{Comments: comments, IsComments: true}
}

// StaticChildren maps child positions to literal children.
type StaticChildren map[int]StaticChild

// ChildKind discriminates Child variants.
type ChildKind uint8

const (
	ChildUnknown   ChildKind = iota
	ChildExpr                // runtime expression
	ChildElement             // nested element literal
	ChildComponent           // nested component literal
)

// String returns the string representation of the ChildKind.
func (k ChildKind) String() string {
	switch k {
	case ChildExpr:
		return "expr"
	case ChildElement:
		return "element"
	case ChildComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Child is a dynamic child of a component or fragment.
type Child struct {
	Kind      ChildKind
	Expr      Expr
	Element   *ElementInfo
	Component *ComponentInfo
}

// ExprChild returns an expression child.
func ExprChild(src string) Child { return Child{Kind: ChildExpr, Expr: E(src)} }

// ElementChild returns a nested element child.
func ElementChild(el *ElementInfo) Child { return Child{Kind: ChildElement, Element: el} }

// ComponentChild returns a nested component child.
func ComponentChild(c *ComponentInfo) Child { return Child{Kind: ChildComponent, Component: c} }

// Children maps child positions to dynamic children.
type Children map[int]Child

// ComponentStatic holds the literal part of a component literal.
type ComponentStatic struct {
	Props    []StaticAttr   `yaml:"props,omitempty"`
	Children StaticChildren `yaml:"children,omitempty"`
}

// ComponentDynamic holds the runtime part of a component literal.
type ComponentDynamic struct {
	Props    []Prop   `yaml:"props,omitempty"`
	Children Children `yaml:"children,omitempty"`
}

// ComponentInfo is a component literal.
type ComponentInfo struct {
	Tag     Expr             `yaml:"tag"`
	Static  ComponentStatic  `yaml:"static,omitempty"`
	Dynamic ComponentDynamic `yaml:"dynamic,omitempty"`
}

// FragmentInfo is a fragment literal.
type FragmentInfo struct {
	Static  StaticChildren `yaml:"static,omitempty"`
	Dynamic Children       `yaml:"dynamic,omitempty"`
}

// LiteralKind discriminates Literal variants.
type LiteralKind uint8

const (
	LiteralUnknown LiteralKind = iota
	LiteralElement
	LiteralComponent
	LiteralFragment
)

// String returns the string representation of the LiteralKind.
func (k LiteralKind) String() string {
	switch k {
	case LiteralElement:
		return "element"
	case LiteralComponent:
		return "component"
	case LiteralFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Literal is one markup literal found by the parser.
type Literal struct {
	// ID links the literal to its placeholder in the surrounding source.
	ID int
	// Name is used when the document has no surrounding source.
	Name string
	Loc  Location

	Kind      LiteralKind
	Element   *ElementInfo
	Component *ComponentInfo
	Fragment  *FragmentInfo
}

// NewElement wraps an element literal.
func NewElement(el *ElementInfo) *Literal {
	return &Literal{Kind: LiteralElement, Element: el}
}

// NewComponent wraps a component literal.
func NewComponent(c *ComponentInfo) *Literal {
	return &Literal{Kind: LiteralComponent, Component: c}
}

// NewFragment wraps a fragment literal.
func NewFragment(f *FragmentInfo) *Literal {
	return &Literal{Kind: LiteralFragment, Fragment: f}
}
