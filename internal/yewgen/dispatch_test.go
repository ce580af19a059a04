package yewgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRequest(t *testing.T) {
	for _, r := range Requests {
		got, err := ParseRequest(string(r))
		if err != nil || got != r {
			t.Errorf("ParseRequest(%q) = %q, %v", r, got, err)
		}
	}
	if _, err := ParseRequest("html!"); err == nil {
		t.Error("ParseRequest(html!) succeeded")
	}
	if !RequestDeriveProps.Decl() || RequestHTML.Decl() {
		t.Error("only derive_props produces a declaration")
	}
}

func TestDispatcher_Expand(t *testing.T) {
	type tc struct {
		req      Request
		input    string
		expected string
	}

	tests := map[string]tc{
		"html": {
			req:      RequestHTML,
			input:    `<p>"hi"</p>`,
			expected: `yew.Element("p", yew.WithChildren(yew.Text("hi")))`,
		},
		"html siblings": {
			req:      RequestHTML,
			input:    `"a" "b"`,
			expected: `yew.Fragment(yew.Text("a"), yew.Text("b"))`,
		},
		"html nested": {
			req:      RequestHTMLNested,
			input:    `<Card title="x" />`,
			expected: `yew.Comp("Card", Card).With(NewCardPropsBuilder().Title("x").Build())`,
		},
		"props": {
			req:      RequestProps,
			input:    `CardProps{title: "x"}`,
			expected: `yew.MustProps(NewCardPropsBuilder().Title("x").Build())`,
		},
		"classes": {
			req:      RequestClasses,
			input:    `"a", "b": on`,
			expected: `yew.NewClasses().Add("a").AddIf(on, "b").String()`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := NewDispatcher(testRegistry(t)).Expand(tt.req, mustLex(t, tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := compact(got); got != tt.expected {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestDispatcher_DeriveRegisters(t *testing.T) {
	registry := NewRegistry()
	d := NewDispatcher(registry)

	code, err := d.Expand(RequestDeriveProps, mustLex(t, "type PanelProps struct {\n\tTitle string\n}"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(code, "func NewPanelPropsBuilder() *PanelPropsBuilder") {
		t.Errorf("derive output missing constructor:\n%s", code)
	}
	if _, ok := registry.Lookup("PanelProps"); !ok {
		t.Fatal("derived type was not registered")
	}

	_, err = d.Expand(RequestHTML, mustLex(t, `<Panel />`))
	if err == nil || !strings.Contains(err.Error(), "missing required field `Title` for <Panel>") {
		t.Errorf("error = %v, want missing Title", err)
	}
}

func TestDispatcher_ParseAndAnalyzeErrorsJoin(t *testing.T) {
	_, err := NewDispatcher(testRegistry(t)).Expand(RequestHTML, mustLex(t, `<Card /> <div id="a" id="b" />`))
	msgs := errorMessages(t, err)
	want := []string{
		"duplicate attribute `id`",
		"missing required field `Title` for <Card>",
	}
	if diff := cmp.Diff(want, msgs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	type tc struct {
		req      Request
		input    string
		messages []string
		decl     bool
	}

	tests := map[string]tc{
		"success is not an error": {
			req:   RequestHTML,
			input: `<p />`,
		},
		"expression error": {
			req:      RequestHTML,
			input:    `<div>`,
			messages: []string{"test.gsx:1:1: error: unclosed tag <div> (add </div> or self-close with <div />)"},
		},
		"every message kept": {
			req:   RequestHTML,
			input: `{} <a onclick="x" />`,
			messages: []string{
				"test.gsx:1:1: error: empty block (remove the braces or add an expression)",
				"test.gsx:1:7: error: listener `onclick` expects a handler expression (write onclick={handler})",
			},
		},
		"declaration error": {
			req:      RequestDeriveProps,
			input:    `type P int`,
			messages: []string{"test.gsx:1:6: error: properties can only be derived for struct types, P is not a struct"},
			decl:     true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := NewDispatcher(nil).Dispatch(tt.req, mustLex(t, tt.input))
			msgs, isErr := CompileErrorMessages(out)
			if isErr != (tt.messages != nil) {
				t.Fatalf("CompileErrorMessages ok = %v for %q", isErr, out.String())
			}
			if diff := cmp.Diff(tt.messages, msgs); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
			if isErr && strings.HasPrefix(out.String(), "var _ =") != tt.decl {
				t.Errorf("declaration form = %v, want %v: %s", !tt.decl, tt.decl, out.String())
			}
		})
	}
}

func TestDispatcher_UnknownRequest(t *testing.T) {
	_, err := NewDispatcher(nil).Expand(Request("derive_all"), mustLex(t, `x`))
	if err == nil || !strings.Contains(err.Error(), `unknown transformation request "derive_all"`) {
		t.Errorf("error = %v", err)
	}
}
