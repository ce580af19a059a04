package yew

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestElement_Attributes(t *testing.T) {
	type tc struct {
		opts     []Option
		expected []Attr
	}

	empty := ""
	var nilPtr *string

	tests := map[string]tc{
		"source order": {
			opts:     []Option{WithAttr("id", "a"), WithAttr("title", "t")},
			expected: []Attr{{Name: "id", Value: "a"}, {Name: "title", Value: "t"}},
		},
		"repeat replaces in place": {
			opts:     []Option{WithAttr("id", "a"), WithAttr("title", "t"), WithAttr("id", "b")},
			expected: []Attr{{Name: "id", Value: "b"}, {Name: "title", Value: "t"}},
		},
		"bool attribute": {
			opts:     []Option{WithBoolAttr("disabled", true), WithBoolAttr("hidden", false)},
			expected: []Attr{{Name: "disabled", Bool: true}},
		},
		"bool attribute removed": {
			opts:     []Option{WithBoolAttr("disabled", true), WithBoolAttr("disabled", false)},
			expected: nil,
		},
		"value string": {
			opts:     []Option{WithAttrValue("href", "/x")},
			expected: []Attr{{Name: "href", Value: "/x"}},
		},
		"value number": {
			opts:     []Option{WithAttrValue("colspan", 2), WithAttrValue("step", 0.5)},
			expected: []Attr{{Name: "colspan", Value: "2"}, {Name: "step", Value: "0.5"}},
		},
		"value stringer": {
			opts:     []Option{WithAttrValue("aria-label", label("x"))},
			expected: []Attr{{Name: "aria-label", Value: "label:x"}},
		},
		"value pointer": {
			opts:     []Option{WithAttrValue("a", &empty), WithAttrValue("b", nilPtr)},
			expected: []Attr{{Name: "a", Value: ""}},
		},
		"value nil": {
			opts:     []Option{WithAttrValue("a", nil)},
			expected: nil,
		},
		"value bools": {
			opts:     []Option{WithAttrValue("a", true), WithAttrValue("b", false)},
			expected: []Attr{{Name: "a", Bool: true}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			el := Element("div", tt.opts...)
			if diff := cmp.Diff(tt.expected, el.Attrs, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("attrs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElement_Class(t *testing.T) {
	type tc struct {
		opts     []Option
		expected string
	}

	tests := map[string]tc{
		"single":       {opts: []Option{WithClass("a  b")}, expected: "a b"},
		"merged":       {opts: []Option{WithClass("a b"), WithClass("b c")}, expected: "a b c"},
		"class attr":   {opts: []Option{WithAttr("class", "x"), WithClass("y x")}, expected: "x y"},
		"empty string": {opts: []Option{WithClass("")}, expected: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			el := Element("div", tt.opts...)
			if el.Class != tt.expected {
				t.Errorf("Class = %q, want %q", el.Class, tt.expected)
			}
			if _, ok := el.Attr("class"); ok != (tt.expected != "") {
				t.Errorf("Attr(class) present = %v", ok)
			}
		})
	}
}

func TestElement_KeyRefChildren(t *testing.T) {
	ref := NewNodeRef()
	var nilTag *VTag
	el := Element("ul",
		WithKey(7),
		WithRef(ref),
		WithChildren(Element("li"), nil, nilTag, Text("x")),
	)

	if el.Key != "7" {
		t.Errorf("Key = %q, want 7", el.Key)
	}
	if ref.Get() != el {
		t.Error("ref was not bound to the element")
	}
	if len(el.Children) != 2 {
		t.Errorf("expected nil children to be dropped, got %d children", len(el.Children))
	}
}

func TestKeyOf(t *testing.T) {
	type tc struct {
		value    any
		expected Key
	}

	tests := map[string]tc{
		"nil":      {value: nil, expected: ""},
		"string":   {value: "a", expected: "a"},
		"int":      {value: 42, expected: "42"},
		"stringer": {value: label("k"), expected: "label:k"},
		"key":      {value: Key("k"), expected: "k"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := KeyOf(tt.value); got != tt.expected {
				t.Errorf("KeyOf(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFire(t *testing.T) {
	var calls []string
	el := Element("input",
		WithListener("input", func(e Event) { calls = append(calls, "value:"+e.Value) }),
		WithListener("click", func() { calls = append(calls, "click") }),
		WithListener("input", func(e *Event) { calls = append(calls, "ptr:"+e.Target.Tag) }),
		WithListener("input", "not a handler"),
		WithListener("input", nil),
	)

	if n := el.Fire("input", "hi"); n != 2 {
		t.Errorf("Fire(input) ran %d handlers, want 2", n)
	}
	if n := el.Fire("change", ""); n != 0 {
		t.Errorf("Fire(change) ran %d handlers, want 0", n)
	}
	if diff := cmp.Diff([]string{"value:hi", "ptr:input"}, calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if len(el.Listeners) != 4 {
		t.Errorf("expected nil handler to be dropped, got %d listeners", len(el.Listeners))
	}
}
