package yewgen

import (
	"strings"
	"testing"
)

func TestNormalizeClasses(t *testing.T) {
	type tc struct {
		values   []string
		expected string
	}

	tests := map[string]tc{
		"empty":        {values: nil, expected: ""},
		"blank":        {values: []string{"", "  "}, expected: ""},
		"split":        {values: []string{"a  b\tc"}, expected: "a b c"},
		"dedupe":       {values: []string{"a b", "b a c"}, expected: "a b c"},
		"keeps order":  {values: []string{"z", "a"}, expected: "z a"},
		"across words": {values: []string{"btn", "", "btn", "active"}, expected: "btn active"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NormalizeClasses(tt.values...); got != tt.expected {
				t.Errorf("NormalizeClasses() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestClasses_Expand(t *testing.T) {
	type tc struct {
		input    string
		expected string
	}

	tests := map[string]tc{
		"static": {
			input:    `"btn", "", "btn", "active": true, "disabled": false`,
			expected: `"btn active"`,
		},
		"single": {
			input:    `"a b"`,
			expected: `"a b"`,
		},
		"empty": {
			input:    ``,
			expected: `""`,
		},
		"parenthesized": {
			input:    `("a", "b")`,
			expected: `"a b"`,
		},
		"dynamic": {
			input:    `"a", extra, "b": on`,
			expected: `yew.NewClasses().Add("a").Add(extra).AddIf(on, "b").String()`,
		},
		"static runs merge": {
			input:    `"a", "b  a", cond: x, "c"`,
			expected: `yew.NewClasses().Add("a b").AddIf(x, cond).Add("c").String()`,
		},
		"trailing comma": {
			input:    `"a", v,`,
			expected: `yew.NewClasses().Add("a").Add(v).String()`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewDispatcher(nil).Expand(RequestClasses, mustLex(t, tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestClasses_Errors(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
	}

	tests := map[string]tc{
		"empty fragment":     {input: `"a",,"b"`, wantErr: "expected a class fragment between commas"},
		"missing condition":  {input: `"a":`, wantErr: "expected a condition after `:`"},
		"two conditions":     {input: `"a": x: y`, wantErr: "a class fragment takes at most one condition"},
		"missing value":      {input: `: x`, wantErr: "expected a class name before `:`"},
		"invalid expression": {input: `"a": x +`, wantErr: "invalid expression"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewDispatcher(nil).Expand(RequestClasses, mustLex(t, tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
