package yew

import (
	"fmt"
	"strconv"
)

// Option configures a VTag.
type Option func(*VTag)

// Element creates an element node. Options apply in order.
func Element(tag string, opts ...Option) *VTag {
	t := &VTag{Tag: tag}
	for _, opt := range opts {
		opt(t)
	}
	if t.Ref != nil {
		t.Ref.Set(t)
	}
	return t
}

// --- Attribute Options ---

// WithAttr sets a string attribute. A repeated name replaces the earlier value.
func WithAttr(name, value string) Option {
	return func(t *VTag) {
		t.setAttr(Attr{Name: name, Value: value})
	}
}

// WithAttrValue sets an attribute from an expression. Nil values, nil
// pointers and false remove the attribute; true sets it as a bool
// attribute. Other values are formatted as strings.
func WithAttrValue(name string, v any) Option {
	return func(t *VTag) {
		value, ok := AttrString(v)
		switch {
		case !ok:
			t.removeAttr(name)
		case v == true:
			t.setAttr(Attr{Name: name, Bool: true})
		default:
			t.setAttr(Attr{Name: name, Value: value})
		}
	}
}

// WithBoolAttr sets or removes a presence attribute such as disabled.
func WithBoolAttr(name string, on bool) Option {
	return func(t *VTag) {
		if !on {
			t.removeAttr(name)
			return
		}
		t.setAttr(Attr{Name: name, Bool: true})
	}
}

// WithClass adds classes to the element. Repeated names keep their first
// position.
func WithClass(classes string) Option {
	return func(t *VTag) {
		t.Class = NewClasses().Add(t.Class, classes).String()
	}
}

// --- Behaviour Options ---

// WithListener registers a handler for a DOM event ("click", "input").
// See Fire for the accepted handler types.
func WithListener(event string, handler any) Option {
	return func(t *VTag) {
		if handler == nil {
			return
		}
		t.Listeners = append(t.Listeners, Listener{Event: event, Handler: handler})
	}
}

// WithKey sets the element key.
func WithKey(key any) Option {
	return func(t *VTag) {
		t.Key = KeyOf(key)
	}
}

// WithRef binds ref to the element once it is constructed.
func WithRef(ref *NodeRef) Option {
	return func(t *VTag) {
		t.Ref = ref
	}
}

// WithChildren appends child nodes. Nil children are dropped.
func WithChildren(children ...Node) Option {
	return func(t *VTag) {
		t.AppendChild(children...)
	}
}

func (t *VTag) setAttr(a Attr) {
	if a.Name == "class" {
		t.Class = NewClasses().Add(t.Class, a.Value).String()
		return
	}
	for i := range t.Attrs {
		if t.Attrs[i].Name == a.Name {
			t.Attrs[i] = a
			return
		}
	}
	t.Attrs = append(t.Attrs, a)
}

func (t *VTag) removeAttr(name string) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			t.Attrs = append(t.Attrs[:i], t.Attrs[i+1:]...)
			return
		}
	}
}

// AttrString formats an attribute value. ok is false when the value means
// "no attribute": nil, a nil pointer or false.
func AttrString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case *string:
		if x == nil {
			return "", false
		}
		return *x, true
	case bool:
		return strconv.FormatBool(x), x
	case *bool:
		if x == nil || !*x {
			return "", false
		}
		return "true", true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case fmt.Stringer:
		if isNil(x) {
			return "", false
		}
		return x.String(), true
	}
	if isNil(v) {
		return "", false
	}
	return fmt.Sprint(v), true
}
