package yewgen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

// RuntimeImport is the import path of the runtime package generated code
// refers to as "yew".
const RuntimeImport = "github.com/grindlemire/go-yew"

// propertiesDirective marks a struct type for properties derivation.
const propertiesDirective = "//yew:properties"

// macroRequests maps an invocation name (html!, props!, ...) to its request.
var macroRequests = map[string]Request{
	"html":        RequestHTML,
	"html_nested": RequestHTMLNested,
	"props":       RequestProps,
	"classes":     RequestClasses,
}

// Options configures an Expander.
type Options struct {
	// SkipImports uses format.Source instead of imports.Process (faster for tests).
	SkipImports bool
	// InlineErrors writes diagnostics into the output as compile_error calls
	// instead of failing the file.
	InlineErrors bool
	// RuntimeImport overrides the runtime import path.
	RuntimeImport string
}

// Source is one input file.
type Source struct {
	Name string
	Src  []byte
}

// Output is the expansion of one Source.
type Output struct {
	Name string // input name
	Src  []byte // generated Go source; nil when Err is set, unless errors are inlined
	Err  error
}

// Expander rewrites .gsx files into Go files: every macro invocation is
// replaced by its expansion and derived builders are inserted after the
// structs that request them.
type Expander struct {
	opts Options
}

// NewExpander creates a new Expander.
func NewExpander(opts Options) *Expander {
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = RuntimeImport
	}
	return &Expander{opts: opts}
}

// ExpandFile expands a single file with its own registry.
func (e *Expander) ExpandFile(name string, src []byte) ([]byte, error) {
	out := e.ExpandPackage([]Source{{Name: name, Src: src}})
	return out[0].Src, out[0].Err
}

// ExpandPackage expands the files of one package. Properties derived in any
// of the files are registered before markup is checked, so components can
// be declared in one file and used in another.
func (e *Expander) ExpandPackage(files []Source) []Output {
	registry := NewRegistry()
	scans := make([]*fileScan, len(files))
	out := make([]Output, len(files))

	for i, f := range files {
		out[i].Name = f.Name
		scan, err := scanFile(f.Name, f.Src)
		if err != nil {
			out[i].Err = err
			continue
		}
		scans[i] = scan
		for _, d := range scan.derives {
			if decl, err := ParseProps(d.tokens); err == nil {
				registry.Register(decl)
			}
		}
	}

	for i, scan := range scans {
		if scan == nil {
			continue
		}
		out[i].Src, out[i].Err = e.expand(scan, NewDispatcher(registry))
	}
	return out
}

// Check expands files and returns only the diagnostics.
func (e *Expander) Check(files []Source) error {
	var errs []error
	for _, o := range e.ExpandPackage(files) {
		errs = append(errs, o.Err)
	}
	return JoinErrors(errs...)
}

// OutputName converts a .gsx filename to its generated .go filename:
// header.gsx -> header_gsx.go, my-app.gsx -> my_app_gsx.go.
func OutputName(path string) string {
	dir := filepath.Dir(path)
	name := strings.TrimSuffix(filepath.Base(path), ".gsx")
	name = strings.ReplaceAll(name, "-", "_")
	return filepath.Join(dir, name+"_gsx.go")
}

type derive struct {
	tokens Stream // the declaration after "type"
	pos    Position
	end    int // offset just past the declaration
}

type invocation struct {
	req   Request
	name  Token
	input Token // the delimited group after "!"
}

type fileScan struct {
	name        string
	src         []byte
	stream      Stream
	derives     []derive
	invocations []invocation
	errs        *ErrorList
}

// scanFile lexes a file and locates directives and outermost invocations.
func scanFile(name string, src []byte) (*fileScan, error) {
	l := NewLexer(name, src)
	stream, err := l.Lex()
	if err != nil {
		return nil, err
	}
	s := &fileScan{name: name, src: src, stream: stream, errs: NewErrorList()}
	s.findDerives(l.Comments())
	s.invocations = findInvocations(stream)
	return s, nil
}

// findDerives pairs each properties directive with the type declaration
// whose doc comment contains it.
func (s *fileScan) findDerives(comments []Comment) {
	used := make(map[int]bool)
	for i, t := range s.stream {
		if !t.IsIdent("type") {
			continue
		}
		j := sort.Search(len(comments), func(k int) bool { return comments[k].Offset >= t.Offset }) - 1
		line := t.Pos.Line - 1
		found := -1
		for ; j >= 0; j-- {
			c := comments[j]
			if c.Pos.Line+strings.Count(c.Text, "\n") != line {
				break
			}
			if strings.TrimSpace(c.Text) == propertiesDirective {
				found = j
			}
			line = c.Pos.Line - 1
		}
		if found < 0 {
			continue
		}
		used[found] = true

		var decl Stream
		for k := i + 1; k < len(s.stream); k++ {
			tok := s.stream[k]
			decl = append(decl, tok)
			if (tok.Kind == KindGroup && tok.Delim == DelimBrace) || tok.NewlineAfter {
				break
			}
		}
		if len(decl) == 0 {
			s.errs.AddError(t.Pos, "expected a type declaration after "+propertiesDirective)
			continue
		}
		s.derives = append(s.derives, derive{tokens: decl, pos: t.Pos, end: decl[len(decl)-1].End})
	}

	for i, c := range comments {
		if !used[i] && strings.TrimSpace(c.Text) == propertiesDirective {
			s.errs.AddErrorWithHint(c.Pos, propertiesDirective+" must directly precede a type declaration",
				"place it in the doc comment of the struct")
		}
	}
}

// invocationAt reports whether s[i:] starts name!(...), name!{...} or name![...].
func invocationAt(s Stream, i int) (invocation, bool) {
	if i+2 >= len(s) {
		return invocation{}, false
	}
	name, bang, group := s[i], s[i+1], s[i+2]
	if name.Kind != KindIdent || !bang.IsPunct('!') || bang.Joint || group.Kind != KindGroup {
		return invocation{}, false
	}
	if bang.Offset != name.End || group.Offset != bang.End {
		return invocation{}, false
	}
	req, ok := macroRequests[name.Text]
	if !ok {
		return invocation{}, false
	}
	return invocation{req: req, name: name, input: group}, true
}

// findInvocations returns the outermost invocations in s, in source order.
func findInvocations(s Stream) []invocation {
	var out []invocation
	for i := 0; i < len(s); i++ {
		if inv, ok := invocationAt(s, i); ok {
			out = append(out, inv)
			i += 2
			continue
		}
		if s[i].Kind == KindGroup {
			out = append(out, findInvocations(s[i].Inner)...)
		}
	}
	return out
}

// Invocation is an outermost macro invocation located in a file.
type Invocation struct {
	Request Request
	Name    Token // the macro name
	Input   Token // the delimited group after "!"
}

// Start returns the byte offset of the macro name.
func (inv Invocation) Start() int { return inv.Name.Offset }

// End returns the byte offset just past the closing delimiter.
func (inv Invocation) End() int { return inv.Input.End }

// ScanInvocations lexes src and returns its outermost invocations, in
// source order, along with every comment in the file.
func ScanInvocations(name string, src []byte) ([]Invocation, []Comment, error) {
	l := NewLexer(name, src)
	stream, err := l.Lex()
	if err != nil {
		return nil, nil, err
	}
	found := findInvocations(stream)
	out := make([]Invocation, len(found))
	for i, inv := range found {
		out[i] = Invocation{Request: inv.req, Name: inv.name, Input: inv.input}
	}
	return out, l.Comments(), nil
}

// ReplaceInvocations returns s with each outermost invocation, including
// those inside groups, replaced by the token fn returns for it.
func ReplaceInvocations(s Stream, fn func(Invocation) Token) Stream {
	var out Stream
	for i := 0; i < len(s); i++ {
		if inv, ok := invocationAt(s, i); ok {
			tok := fn(Invocation{Request: inv.req, Name: inv.name, Input: inv.input})
			tok.NewlineAfter = inv.input.NewlineAfter
			out = append(out, tok)
			i += 2
			continue
		}
		t := s[i]
		if t.Kind == KindGroup {
			t.Inner = ReplaceInvocations(t.Inner, fn)
		}
		out = append(out, t)
	}
	return out
}

type edit struct {
	start, end int
	text       string
}

// expand applies every edit to the file and formats the result.
func (e *Expander) expand(scan *fileScan, d *Dispatcher) ([]byte, error) {
	errs := []error{scan.errs.Err()}
	var edits []edit

	for _, dv := range scan.derives {
		code, err := d.Expand(RequestDeriveProps, dv.tokens)
		if err != nil {
			errs = append(errs, err)
			code = RenderCompileError(err, true).String()
		}
		edits = append(edits, edit{start: dv.end, end: dv.end, text: "\n\n" + code})
	}

	for _, inv := range scan.invocations {
		code, err := e.expandInvocation(d, inv)
		if err != nil {
			errs = append(errs, err)
		}
		edits = append(edits, edit{start: inv.name.Offset, end: inv.input.End, text: code})
	}

	diag := JoinErrors(errs...)
	if diag != nil && !e.opts.InlineErrors {
		return nil, diag
	}

	if !importsPath(scan.stream, e.opts.RuntimeImport) {
		if at, ok := packageClauseEnd(scan.stream); ok {
			edits = append(edits, edit{start: at, end: at,
				text: "\n\nimport " + runtimePkg + " " + strconv.Quote(e.opts.RuntimeImport)})
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by yew generate. DO NOT EDIT.\n")
	buf.WriteString("// Source: " + filepath.Base(scan.name) + "\n\n")
	buf.Write(applyEdits(scan.src, edits))

	var out []byte
	var err error
	if e.opts.SkipImports {
		out, err = format.Source(buf.Bytes())
	} else {
		out, err = imports.Process(OutputName(scan.name), buf.Bytes(), nil)
	}
	if err != nil {
		return nil, JoinErrors(diag, fmt.Errorf("formatting %s: %w", OutputName(scan.name), err))
	}
	return out, diag
}

// expandInvocation expands one invocation, expanding nested invocations in
// its input first. On failure the returned code is the rendered error.
func (e *Expander) expandInvocation(d *Dispatcher, inv invocation) (string, error) {
	var errs []error
	input := expandNested(d, inv.input.Inner, &errs)
	code, err := d.Expand(inv.req, input)
	if err = JoinErrors(append(errs, err)...); err != nil {
		return RenderCompileError(err, false).String(), err
	}
	return code, nil
}

// expandNested replaces the invocations inside s with their output tokens.
func expandNested(d *Dispatcher, s Stream, errs *[]error) Stream {
	var out Stream
	for i := 0; i < len(s); i++ {
		if inv, ok := invocationAt(s, i); ok {
			input := expandNested(d, inv.input.Inner, errs)
			code, err := d.Expand(inv.req, input)
			var toks Stream
			if err == nil {
				toks, err = Lex(inv.name.Pos.File, code)
			}
			if err != nil {
				*errs = append(*errs, err)
				toks = RenderCompileError(err, false)
			}
			if n := len(toks); n > 0 {
				toks[n-1].NewlineAfter = inv.input.NewlineAfter
			}
			out = append(out, toks...)
			i += 2
			continue
		}
		t := s[i]
		if t.Kind == KindGroup {
			t.Inner = expandNested(d, t.Inner, errs)
		}
		out = append(out, t)
	}
	return out
}

func applyEdits(src []byte, edits []edit) []byte {
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].start < edits[j].start })
	var buf bytes.Buffer
	last := 0
	for _, ed := range edits {
		buf.Write(src[last:ed.start])
		buf.WriteString(ed.text)
		last = ed.end
	}
	buf.Write(src[last:])
	return buf.Bytes()
}

// importsPath reports whether the file imports path under the name the
// generated code uses: unnamed or named runtimePkg.
func importsPath(s Stream, path string) bool {
	quoted := strconv.Quote(path)
	for i, t := range s {
		if !t.IsIdent("import") {
			continue
		}
		for k := i + 1; k < len(s) && k <= i+2; k++ {
			switch n := s[k]; {
			case n.Kind == KindLiteral && n.Text == quoted && usableImportName(s[k-1]):
				return true
			case n.Kind == KindGroup:
				for j, in := range n.Inner {
					if in.Kind == KindLiteral && in.Text == quoted && (j == 0 || usableImportName(n.Inner[j-1])) {
						return true
					}
				}
			}
		}
	}
	return false
}

// usableImportName reports whether prev, the token before an import path,
// leaves the package reachable as runtimePkg.
func usableImportName(prev Token) bool {
	switch {
	case prev.IsIdent("import"), prev.IsIdent(runtimePkg):
		return true
	case prev.Kind == KindIdent, prev.IsPunct('.'):
		return false
	}
	return true
}

// packageClauseEnd returns the offset just past the package name.
func packageClauseEnd(s Stream) (int, bool) {
	for i := 0; i+1 < len(s); i++ {
		if s[i].IsIdent("package") && s[i+1].Kind == KindIdent {
			return s[i+1].End, true
		}
	}
	return 0, false
}
