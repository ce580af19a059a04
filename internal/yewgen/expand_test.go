package yewgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const cardSource = `package ui

import yew "github.com/grindlemire/go-yew"

// CardProps configures Card.
//yew:properties
type CardProps struct {
	Title string
	Open  bool ` + "`prop_or:\"true\"`" + `
}

func Card(p CardProps) yew.Node {
	return html!{
		<div class="card" hidden={!p.Open}>{p.Title}</div>
	}
}
`

func expandFile(t *testing.T, opts Options, name, src string) (string, error) {
	t.Helper()
	out, err := NewExpander(opts).ExpandFile(name, []byte(src))
	return string(out), err
}

func assertContains(t *testing.T, src string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(src, want) {
			t.Errorf("output is missing %q:\n%s", want, src)
		}
	}
}

func TestExpander_File(t *testing.T) {
	got, err := expandFile(t, Options{SkipImports: true}, "card.gsx", cardSource)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "// Code generated by yew generate. DO NOT EDIT.\n// Source: card.gsx\n\npackage ui") {
		t.Errorf("unexpected header:\n%s", got)
	}
	assertContains(t, got,
		"type CardPropsBuilder struct {",
		"func NewCardPropsBuilder() *CardPropsBuilder {",
		"props.Open = true",
		`return yew.Element(`,
		`yew.WithClass("card"),`,
		`yew.WithBoolAttr("hidden", !p.Open),`,
		`yew.WithChildren(yew.Block(p.Title)),`,
	)
	if strings.Contains(got, "html!") {
		t.Errorf("invocation left in output:\n%s", got)
	}
	if n := strings.Count(got, `"github.com/grindlemire/go-yew"`); n != 1 {
		t.Errorf("runtime imported %d times", n)
	}
}

func TestExpander_InsertsRuntimeImport(t *testing.T) {
	type tc struct {
		src      string
		opts     Options
		expected []string
	}

	body := "\n\nfunc View() yew.Node {\n\treturn html!{<p />}\n}\n"
	tests := map[string]tc{
		"default": {
			src:      "package ui" + body,
			opts:     Options{SkipImports: true},
			expected: []string{`import yew "github.com/grindlemire/go-yew"`},
		},
		"override": {
			src:      "package ui" + body,
			opts:     Options{SkipImports: true, RuntimeImport: "example.com/rt"},
			expected: []string{`import yew "example.com/rt"`},
		},
		"other alias": {
			src:  "package ui\n\nimport y \"github.com/grindlemire/go-yew\"\n\nvar _ y.Node" + body,
			opts: Options{SkipImports: true},
			expected: []string{
				`import yew "github.com/grindlemire/go-yew"`,
				`import y "github.com/grindlemire/go-yew"`,
			},
		},
		"dot import in group": {
			src:      "package ui\n\nimport (\n\t. \"github.com/grindlemire/go-yew\"\n)\n\nvar _ Node" + body,
			opts:     Options{SkipImports: true},
			expected: []string{`import yew "github.com/grindlemire/go-yew"`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := expandFile(t, tt.opts, "view.gsx", tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertContains(t, got, append(tt.expected, `return yew.Element("p")`)...)
		})
	}
}

func TestImportsPath(t *testing.T) {
	type tc struct {
		src      string
		expected bool
	}

	tests := map[string]tc{
		"unnamed":          {src: `import "github.com/grindlemire/go-yew"`, expected: true},
		"named yew":        {src: `import yew "github.com/grindlemire/go-yew"`, expected: true},
		"in group":         {src: "import (\n\t\"fmt\"\n\tyew \"github.com/grindlemire/go-yew\"\n)", expected: true},
		"other name":       {src: `import y "github.com/grindlemire/go-yew"`, expected: false},
		"blank":            {src: `import _ "github.com/grindlemire/go-yew"`, expected: false},
		"dot":              {src: `import . "github.com/grindlemire/go-yew"`, expected: false},
		"renamed then yew": {src: "import y \"github.com/grindlemire/go-yew\"\nimport yew \"github.com/grindlemire/go-yew\"", expected: true},
		"absent":           {src: `import "fmt"`, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Lex("view.gsx", "package ui\n\n"+tt.src+"\n")
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			if got := importsPath(s, RuntimeImport); got != tt.expected {
				t.Errorf("importsPath() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExpander_NestedInvocations(t *testing.T) {
	src := `package ui

func View(on bool, p CardProps) yew.Node {
	q := props!(CardProps{title: "x"})
	return html!{
		<div class={classes!("a", "b": on)}>
			{html_nested!{<span />}}
		</div>
	}
}
`
	got, err := expandFile(t, Options{SkipImports: true}, "view.gsx", src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, got,
		`q := yew.MustProps(NewCardPropsBuilder().Title("x").Build())`,
		`yew.WithClass(yew.NewClasses().Add("a").AddIf(on, "b").String())`,
		`yew.Block(yew.Element("span"))`,
	)
}

func TestExpander_Errors(t *testing.T) {
	src := "package ui\n\nfunc View() yew.Node {\n\treturn html!{<div>}\n}\n"

	out, err := NewExpander(Options{SkipImports: true}).ExpandFile("bad.gsx", []byte(src))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if out != nil {
		t.Errorf("expected no output, got:\n%s", out)
	}
	if !strings.Contains(err.Error(), "bad.gsx:4:15: error: unclosed tag <div>") {
		t.Errorf("error = %q", err.Error())
	}

	got, err := expandFile(t, Options{SkipImports: true, InlineErrors: true}, "bad.gsx", src)
	if err == nil {
		t.Error("inline errors still report the diagnostic")
	}
	assertContains(t, got, `return compile_error("bad.gsx:4:15: error: unclosed tag <div>`)
}

func TestExpander_DetachedDirective(t *testing.T) {
	src := "package ui\n\n//yew:properties\n\ntype P struct{}\n"
	_, err := expandFile(t, Options{SkipImports: true}, "p.gsx", src)
	if err == nil || !strings.Contains(err.Error(), "//yew:properties must directly precede a type declaration") {
		t.Errorf("error = %v", err)
	}
}

func TestExpander_Package(t *testing.T) {
	files := []Source{
		{Name: "card.gsx", Src: []byte(cardSource)},
		{Name: "page.gsx", Src: []byte("package ui\n\nfunc Page() yew.Node {\n\treturn html!{<Card />}\n}\n")},
		{Name: "ok.gsx", Src: []byte("package ui\n\nfunc Ok() yew.Node {\n\treturn html!{<Card title=\"t\" />}\n}\n")},
	}

	out := NewExpander(Options{SkipImports: true}).ExpandPackage(files)
	if len(out) != 3 {
		t.Fatalf("expected 3 outputs, got %d", len(out))
	}
	if out[0].Err != nil || out[2].Err != nil {
		t.Fatalf("unexpected errors: %v, %v", out[0].Err, out[2].Err)
	}
	if out[1].Err == nil || !strings.Contains(out[1].Err.Error(), "page.gsx:4:15: error: missing required field `Title` for <Card>") {
		t.Errorf("page.gsx error = %v", out[1].Err)
	}
	assertContains(t, string(out[2].Src), `yew.Comp("Card", Card).With(NewCardPropsBuilder().Title("t").Build())`)

	err := NewExpander(Options{SkipImports: true}).Check(files)
	if msgs := errorMessages(t, err); len(msgs) != 1 {
		t.Errorf("Check returned %v, want one error", msgs)
	}
}

func TestOutputName(t *testing.T) {
	type tc struct {
		input    string
		expected string
	}

	tests := map[string]tc{
		"simple":   {input: "header.gsx", expected: "header_gsx.go"},
		"dashes":   {input: "my-app.gsx", expected: "my_app_gsx.go"},
		"with dir": {input: "ui/card.gsx", expected: "ui/card_gsx.go"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := OutputName(tt.input); got != tt.expected {
				t.Errorf("OutputName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestScanInvocations(t *testing.T) {
	src := "package ui\n\n// View renders.\nfunc View() yew.Node {\n\tc := classes!(\"a\")\n\treturn html!{<p class={c}>{props!(P { X: 1 })}</p>}\n}\n"

	invs, comments, err := ScanInvocations("view.gsx", []byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invs) != 2 {
		t.Fatalf("expected 2 outermost invocations, got %d", len(invs))
	}

	type got struct {
		Request Request
		Text    string
	}
	var gots []got
	for _, inv := range invs {
		gots = append(gots, got{Request: inv.Request, Text: src[inv.Start():inv.End()]})
	}
	want := []got{
		{Request: RequestClasses, Text: `classes!("a")`},
		{Request: RequestHTML, Text: `html!{<p class={c}>{props!(P { X: 1 })}</p>}`},
	}
	if diff := cmp.Diff(want, gots); diff != "" {
		t.Errorf("invocations mismatch (-want +got):\n%s", diff)
	}

	if len(comments) != 1 || comments[0].Text != "// View renders." {
		t.Errorf("comments = %+v", comments)
	}

	if _, _, err := ScanInvocations("view.gsx", []byte("func f() {")); err == nil {
		t.Error("expected an error for an unclosed delimiter")
	}
}
