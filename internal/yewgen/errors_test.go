package yewgen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestError_Error(t *testing.T) {
	type tc struct {
		err      *Error
		expected string
	}

	pos := Position{File: "a.gsx", Line: 3, Column: 7}
	tests := map[string]tc{
		"with position": {
			err:      NewError(pos, "boom"),
			expected: "a.gsx:3:7: error: boom",
		},
		"with hint": {
			err:      NewErrorWithHint(pos, "boom", "try again"),
			expected: "a.gsx:3:7: error: boom (try again)",
		},
		"formatted": {
			err:      NewErrorf(Position{Line: 1, Column: 2}, "bad %s", "thing"),
			expected: "1:2: error: bad thing",
		},
		"no position": {
			err:      NewError(Position{}, "boom"),
			expected: "error: boom",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorList(t *testing.T) {
	list := NewErrorList()
	if list.Err() != nil {
		t.Error("empty list returned a non-nil error")
	}
	list.AddError(Position{Line: 1, Column: 1}, "one")
	list.AddErrorf(Position{Line: 2, Column: 1}, "two %d", 2)
	if list.Len() != 2 || !list.HasErrors() {
		t.Fatalf("Len() = %d", list.Len())
	}
	if got, want := list.Error(), "1:1: error: one\n2:1: error: two 2"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	errs := list.Errors()
	errs[0] = nil
	if list.Errors()[0] == nil {
		t.Error("Errors() exposed the internal slice")
	}
}

func TestJoinErrors(t *testing.T) {
	first := NewErrorList()
	first.AddError(Position{Line: 1, Column: 1}, "a")
	first.AddError(Position{Line: 1, Column: 5}, "b")

	joined := JoinErrors(nil, first, NewError(Position{Line: 2, Column: 1}, "c"), errors.New("plain"), nil)

	var list *ErrorList
	if !errors.As(joined, &list) {
		t.Fatalf("expected *ErrorList, got %T", joined)
	}
	var got []string
	for _, e := range list.Errors() {
		got = append(got, e.Message)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "plain"}, got); diff != "" {
		t.Errorf("joined errors mismatch (-want +got):\n%s", diff)
	}

	if JoinErrors(nil, nil) != nil {
		t.Error("joining nils returned an error")
	}
}

func TestRenderCompileError(t *testing.T) {
	list := NewErrorList()
	list.AddError(Position{File: "x.gsx", Line: 1, Column: 1}, `say "hi"`)
	list.AddError(Position{File: "x.gsx", Line: 2, Column: 1}, "second")

	type tc struct {
		decl   bool
		prefix string
	}

	tests := map[string]tc{
		"expression":  {decl: false, prefix: "compile_error("},
		"declaration": {decl: true, prefix: "var _ = compile_error("},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out := RenderCompileError(list, tt.decl)
			if got := out.String(); len(got) < len(tt.prefix) || got[:len(tt.prefix)] != tt.prefix {
				t.Errorf("rendered %q, want prefix %q", got, tt.prefix)
			}
			msgs, ok := CompileErrorMessages(out)
			if !ok {
				t.Fatal("CompileErrorMessages did not recognize the rendered error")
			}
			want := []string{`x.gsx:1:1: error: say "hi"`, "x.gsx:2:1: error: second"}
			if diff := cmp.Diff(want, msgs); diff != "" {
				t.Errorf("messages mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, ok := CompileErrorMessages(mustLex(t, "f(x)")); ok {
		t.Error("ordinary call recognized as a compile error")
	}
}

func TestDiagnostics(t *testing.T) {
	if got := Diagnostics(nil); len(got) != 0 {
		t.Errorf("Diagnostics(nil) = %v", got)
	}

	list := NewErrorList()
	list.AddError(Position{File: "a.gsx", Line: 1, Column: 2}, "one")
	got := Diagnostics(JoinErrors(list, errors.New("two")))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Pos.Line != 1 || got[0].Pos.Column != 2 || got[1].Pos.IsValid() || got[1].Message != "two" {
		t.Errorf("Diagnostics = %v", got)
	}
}
