package yewgen

import "strings"

// Node is the interface implemented by all markup AST nodes.
// The set of implementations is closed: Element, Component, Fragment,
// Block and Literal.
type Node interface {
	node()         // marker method to ensure type safety
	Pos() Position // returns the source position of the node
}

// Value is the interface implemented by attribute values.
type Value interface {
	value()
	Pos() Position
}

// Element represents an HTML-style element: <tag attrs>children</tag> or <tag />
type Element struct {
	Tag       string
	Attrs     []*Attribute // plain, boolean, and class attributes in source order
	Listeners []*Attribute // event handlers in source order
	Key       *Attribute   // key={expr}
	Ref       *Attribute   // ref={expr}
	Children  []Node
	SelfClose bool
	Position  Position
}

func (e *Element) node()         {}
func (e *Element) Pos() Position { return e.Position }

// Component represents <Type props /> where Type is a Go component function.
type Component struct {
	Path      string // "Card" or "ui.Card"
	TypeArgs  string // "[string]" or empty
	Props     []*Attribute
	With      *Expr // with expr, replaces Props entirely
	Key       *Attribute
	Children  []Node
	SelfClose bool
	Position  Position
}

func (c *Component) node()         {}
func (c *Component) Pos() Position { return c.Position }

// Qualifier returns the package qualifier of the component path ("ui." for
// "ui.Card"), or "" for local components.
func (c *Component) Qualifier() string {
	if i := strings.LastIndexByte(c.Path, '.'); i >= 0 {
		return c.Path[:i+1]
	}
	return ""
}

// Name returns the unqualified component name.
func (c *Component) Name() string {
	return strings.TrimPrefix(c.Path, c.Qualifier())
}

// PropsType returns the name of the component's properties type.
func (c *Component) PropsType() string {
	return c.Name() + "Props"
}

// Fragment represents <>children</> or <key={k}>children</>.
type Fragment struct {
	Key      *Attribute
	Children []Node
	Position Position
}

func (f *Fragment) node()         {}
func (f *Fragment) Pos() Position { return f.Position }

// Block represents an embedded Go expression producing zero or more nodes:
// {expr}, or {for expr} for iterables.
type Block struct {
	Expr     string
	Iterable bool
	Position Position
}

func (b *Block) node()         {}
func (b *Block) Pos() Position { return b.Position }

// Literal represents static text content written as a Go literal token.
// It is also used as an attribute value.
type Literal struct {
	Raw      string  // Go source of the literal, e.g. "\"hi\"" or "42"
	Kind     LitKind
	Bool     bool // shorthand attribute: name with no value
	Position Position
}

func (l *Literal) node()         {}
func (l *Literal) value()        {}
func (l *Literal) Pos() Position { return l.Position }

// Expr is a Go expression used as an attribute value.
type Expr struct {
	Code     string
	Position Position
}

func (e *Expr) value()        {}
func (e *Expr) Pos() Position { return e.Position }

// ClassList is a parenthesized list of class fragments: class=("a", "b": on).
type ClassList struct {
	Fragments []ClassFragment
	Position  Position
}

func (c *ClassList) value()        {}
func (c *ClassList) Pos() Position { return c.Position }

// AttrKind classifies an element attribute.
type AttrKind int

const (
	AttrPlain    AttrKind = iota // name=value
	AttrBoolean                  // HTML boolean attribute, present or absent
	AttrClass                    // class=...
	AttrListener                 // onclick={handler}
	AttrKey                      // key={expr}
	AttrRef                      // ref={expr}
)

// Attribute represents name=value or a bare name.
type Attribute struct {
	Name     string
	Kind     AttrKind
	Value    Value
	Position Position
}

func (a *Attribute) Pos() Position { return a.Position }
