package yewgen

import (
	"strings"
	"testing"
)

func TestPropsLiteral_Generate(t *testing.T) {
	type tc struct {
		input    string
		expected string
	}

	tests := map[string]tc{
		"fields": {
			input:    `CardProps{title: "x", size}`,
			expected: `yew.MustProps(NewCardPropsBuilder().Title("x").Size(size).Build())`,
		},
		"parenthesized and qualified": {
			input:    `(ui.CardProps{is_open: s.open})`,
			expected: `yew.MustProps(ui.NewCardPropsBuilder().IsOpen(s.open).Build())`,
		},
		"generic": {
			input:    `ListProps[int]{items: xs}`,
			expected: `yew.MustProps(NewListPropsBuilder[int]().Items(xs).Build())`,
		},
		"empty": {
			input:    `EmptyProps{}`,
			expected: `yew.MustProps(NewEmptyPropsBuilder().Build())`,
		},
		"trailing comma": {
			input:    `CardProps{title: t,}`,
			expected: `yew.MustProps(NewCardPropsBuilder().Title(t).Build())`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			lit, err := ParsePropsLiteral(mustLex(t, tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := NewGenerator().GeneratePropsLiteral(lit); got != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestPropsLiteral_Errors(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
	}

	tests := map[string]tc{
		"no type":        {input: `{a: 1}`, wantErr: "expected a properties type"},
		"no body":        {input: `CardProps`, wantErr: "expected `{` after CardProps"},
		"trailing input": {input: `CardProps{} x`, wantErr: "unexpected `x` after properties literal"},
		"set twice":      {input: `CardProps{a: 1, a: 2}`, wantErr: "field a is set more than once"},
		"missing colon":  {input: `CardProps{a 1}`, wantErr: "expected `:` after field a"},
		"missing value":  {input: `CardProps{a:}`, wantErr: "expected a value for field a"},
		"bad value":      {input: `CardProps{a: 1 +}`, wantErr: "invalid expression"},
		"empty field":    {input: `CardProps{a: 1,, b: 2}`, wantErr: "expected a field between commas"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePropsLiteral(mustLex(t, tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
