package yew

import "fmt"

var (
	_ Node = (*VTag)(nil)
	_ Node = (*VText)(nil)
	_ Node = (*VList)(nil)
	_ Node = (*VComp)(nil)
)

// Node is implemented by the virtual node kinds. The set is closed:
// VTag, VText, VList and VComp.
type Node interface {
	node()
}

// Key identifies a node among its siblings. The empty key means unkeyed.
type Key string

// KeyOf converts a key expression to a Key. Strings and fmt.Stringers are
// used as-is; any other value is formatted with fmt.Sprint.
func KeyOf(v any) Key {
	switch k := v.(type) {
	case nil:
		return ""
	case Key:
		return k
	case string:
		return Key(k)
	case fmt.Stringer:
		return Key(k.String())
	}
	return Key(fmt.Sprint(v))
}

// Attr is a rendered element attribute. Bool attributes are present
// without a value.
type Attr struct {
	Name  string
	Value string
	Bool  bool
}

// Listener registers Handler for the DOM event Event.
type Listener struct {
	Event   string
	Handler any
}

// VTag is an element node.
type VTag struct {
	Tag       string
	Key       Key
	Attrs     []Attr // in source order; class is kept separately
	Class     string // normalized class list
	Listeners []Listener
	Ref       *NodeRef
	Children  []Node
}

func (*VTag) node() {}

// Attr returns the value of the attribute name and whether it is set.
// The class attribute is included.
func (t *VTag) Attr(name string) (string, bool) {
	if name == "class" {
		return t.Class, t.Class != ""
	}
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// VText is a text node.
type VText struct {
	Text string
}

func (*VText) node() {}

// VList is a fragment: a sequence of sibling nodes, optionally keyed.
type VList struct {
	Key      Key
	Children []Node
}

func (*VList) node() {}

// VComp is a component invocation with its properties bound.
type VComp struct {
	Name   string
	Key    Key
	Props  any
	render func() Node
}

func (*VComp) node() {}

// Render calls the component function with the bound properties.
func (c *VComp) Render() Node {
	if c.render == nil {
		return &VList{}
	}
	if n := c.render(); n != nil {
		return n
	}
	return &VList{}
}
