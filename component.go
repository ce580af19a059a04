package yew

import "fmt"

// CompSpec is a component function waiting for its properties. It is
// created by Comp in generated code and finished with With.
type CompSpec[P any] struct {
	name string
	fn   func(P) Node
	key  Key
}

// Comp starts a component invocation. name is the component path as written
// in the template and is used in diagnostics and by renderers.
func Comp[P any](name string, fn func(P) Node) *CompSpec[P] {
	return &CompSpec[P]{name: name, fn: fn}
}

// Key sets the component key.
func (c *CompSpec[P]) Key(key any) *CompSpec[P] {
	c.key = KeyOf(key)
	return c
}

// With binds the properties and returns the component node. It takes the
// result of a builder's Build directly; a non-nil err means required
// properties were not set and panics, like template.Must.
func (c *CompSpec[P]) With(props P, err error) *VComp {
	if err != nil {
		panic(fmt.Sprintf("yew: <%s>: %v", c.name, err))
	}
	fn := c.fn
	return &VComp{
		Name:  c.name,
		Key:   c.key,
		Props: props,
		render: func() Node {
			if fn == nil {
				return nil
			}
			return fn(props)
		},
	}
}
