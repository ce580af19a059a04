package yew

import (
	"fmt"
	"strings"
)

// Classes is an ordered set of CSS class names. Values are split on
// whitespace, empty names are dropped and a repeated name keeps its first
// position.
type Classes struct {
	names []string
	seen  map[string]bool
}

// NewClasses returns an empty class list.
func NewClasses() *Classes {
	return &Classes{seen: make(map[string]bool)}
}

// Add appends class values. A value may be a string, a *string, a []string,
// another *Classes or a fmt.Stringer; nil values are ignored.
func (c *Classes) Add(values ...any) *Classes {
	for _, v := range values {
		c.add(v)
	}
	return c
}

// AddIf appends values only when cond holds.
func (c *Classes) AddIf(cond bool, values ...any) *Classes {
	if cond {
		c.Add(values...)
	}
	return c
}

func (c *Classes) add(v any) {
	switch x := v.(type) {
	case nil:
	case string:
		c.addString(x)
	case *string:
		if x != nil {
			c.addString(*x)
		}
	case []string:
		for _, s := range x {
			c.addString(s)
		}
	case *Classes:
		if x != nil {
			for _, n := range x.names {
				c.addString(n)
			}
		}
	case fmt.Stringer:
		if !isNil(x) {
			c.addString(x.String())
		}
	default:
		if !isNil(v) {
			c.addString(fmt.Sprint(v))
		}
	}
}

func (c *Classes) addString(s string) {
	if c.seen == nil {
		c.seen = make(map[string]bool)
	}
	for _, name := range strings.Fields(s) {
		if c.seen[name] {
			continue
		}
		c.seen[name] = true
		c.names = append(c.names, name)
	}
}

// Names returns the class names in order.
func (c *Classes) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Contains reports whether name is in the list.
func (c *Classes) Contains(name string) bool {
	return c.seen[name]
}

// Len returns the number of class names.
func (c *Classes) Len() int {
	return len(c.names)
}

// String returns the names joined by single spaces.
func (c *Classes) String() string {
	return strings.Join(c.names, " ")
}
