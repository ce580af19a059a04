package yew

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClasses(t *testing.T) {
	type tc struct {
		build    func() *Classes
		expected string
	}

	dynamic := "dyn  extra"
	var nilString *string

	tests := map[string]tc{
		"empty": {
			build:    NewClasses,
			expected: "",
		},
		"dedupe keeps first": {
			build:    func() *Classes { return NewClasses().Add("btn", "", "btn", "active") },
			expected: "btn active",
		},
		"conditions": {
			build: func() *Classes {
				return NewClasses().Add("a").AddIf(true, "b").AddIf(false, "c")
			},
			expected: "a b",
		},
		"mixed values": {
			build: func() *Classes {
				return NewClasses().Add(&dynamic, nilString, []string{"x", "dyn"}, label("l"), nil)
			},
			expected: "dyn extra x label:l",
		},
		"nested": {
			build: func() *Classes {
				inner := NewClasses().Add("b a")
				return NewClasses().Add("a", inner)
			},
			expected: "a b",
		},
		"zero value": {
			build: func() *Classes {
				var c Classes
				return c.Add("z", "z")
			},
			expected: "z",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.build().String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClasses_Accessors(t *testing.T) {
	c := NewClasses().Add("a b", "c")
	if c.Len() != 3 || !c.Contains("b") || c.Contains("d") {
		t.Errorf("Len = %d, Contains(b) = %v", c.Len(), c.Contains("b"))
	}
	names := c.Names()
	names[0] = "changed"
	if diff := cmp.Diff([]string{"a", "b", "c"}, c.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
}
