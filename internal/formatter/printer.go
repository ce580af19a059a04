package formatter

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"github.com/grindlemire/go-yew/internal/yewgen"
)

// printer renders markup nodes below a base indentation.
type printer struct {
	f    *Formatter
	base string
	// hidden maps placeholder identifiers to the source of the nested
	// invocations they stand for.
	hidden map[string]string
}

func newPrinter(f *Formatter, base string, hidden map[string]string) *printer {
	return &printer{f: f, base: base, hidden: hidden}
}

// pad returns the indentation for depth levels below the base.
func (p *printer) pad(depth int) string {
	return p.base + strings.Repeat(p.f.IndentString, depth)
}

// fits reports whether flat fits on one line at depth.
func (p *printer) fits(flat string, depth int) bool {
	return !strings.Contains(flat, "\n") && p.f.width(p.pad(depth))+len(flat) <= p.f.MaxLineWidth
}

// node writes n at depth. The caller has already written the indentation
// of the first line.
func (p *printer) node(sb *strings.Builder, n yewgen.Node, depth int) {
	flat := p.flat(n)
	children, open, close := p.split(n)
	if p.fits(flat, depth) || len(children) == 0 {
		sb.WriteString(flat)
		return
	}

	sb.WriteString(open)
	for _, c := range children {
		sb.WriteString("\n")
		sb.WriteString(p.pad(depth + 1))
		p.node(sb, c, depth+1)
	}
	sb.WriteString("\n")
	sb.WriteString(p.pad(depth))
	sb.WriteString(close)
}

// split returns the children of a container node with its opening and
// closing tags.
func (p *printer) split(n yewgen.Node) (children []yewgen.Node, open, close string) {
	switch x := n.(type) {
	case *yewgen.Element:
		return x.Children, "<" + x.Tag + p.elementAttrs(x) + ">", "</" + x.Tag + ">"
	case *yewgen.Component:
		return x.Children, "<" + x.Path + x.TypeArgs + p.componentAttrs(x) + ">", "</" + x.Path + ">"
	case *yewgen.Fragment:
		if x.Key != nil {
			return x.Children, "<" + p.attr(x.Key) + ">", "</>"
		}
		return x.Children, "<>", "</>"
	}
	return nil, "", ""
}

// flat renders n on a single line.
func (p *printer) flat(n yewgen.Node) string {
	switch x := n.(type) {
	case *yewgen.Literal:
		return x.Raw
	case *yewgen.Block:
		if x.Iterable {
			return "{for " + p.expr(x.Expr) + "}"
		}
		return "{" + p.expr(x.Expr) + "}"
	case *yewgen.Element:
		if len(x.Children) == 0 {
			return "<" + x.Tag + p.elementAttrs(x) + " />"
		}
	case *yewgen.Component:
		if len(x.Children) == 0 {
			return "<" + x.Path + x.TypeArgs + p.componentAttrs(x) + " />"
		}
	}

	children, open, close := p.split(n)
	var sb strings.Builder
	sb.WriteString(open)
	for i, c := range children {
		if i > 0 && (isInline(children[i-1]) || isInline(c)) {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.flat(c))
	}
	sb.WriteString(close)
	return sb.String()
}

// isInline reports whether n is text or an expression block.
func isInline(n yewgen.Node) bool {
	switch n.(type) {
	case *yewgen.Literal, *yewgen.Block:
		return true
	}
	return false
}

func (p *printer) elementAttrs(el *yewgen.Element) string {
	attrs := append([]*yewgen.Attribute(nil), el.Attrs...)
	attrs = append(attrs, el.Listeners...)
	if el.Key != nil {
		attrs = append(attrs, el.Key)
	}
	if el.Ref != nil {
		attrs = append(attrs, el.Ref)
	}
	return p.joinAttrs(attrs)
}

func (p *printer) componentAttrs(c *yewgen.Component) string {
	attrs := append([]*yewgen.Attribute(nil), c.Props...)
	if c.Key != nil {
		attrs = append(attrs, c.Key)
	}
	s := p.joinAttrs(attrs)
	if c.With != nil {
		s = " with " + p.expr(c.With.Code) + s
	}
	return s
}

// joinAttrs renders attributes in source order, each preceded by a space.
func (p *printer) joinAttrs(attrs []*yewgen.Attribute) string {
	sort.SliceStable(attrs, func(i, j int) bool {
		a, b := attrs[i].Position, attrs[j].Position
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	var sb strings.Builder
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(p.attr(a))
	}
	return sb.String()
}

func (p *printer) attr(a *yewgen.Attribute) string {
	switch v := a.Value.(type) {
	case *yewgen.Literal:
		if v.Bool {
			return a.Name
		}
		return a.Name + "=" + v.Raw
	case *yewgen.Expr:
		return a.Name + "={" + p.expr(v.Code) + "}"
	case *yewgen.ClassList:
		parts := make([]string, len(v.Fragments))
		for i, f := range v.Fragments {
			value := p.expr(f.Expr)
			if f.IsStatic {
				value = strconv.Quote(f.Static)
			}
			if f.Cond != "" {
				value += ": " + p.expr(f.Cond)
			}
			parts[i] = value
		}
		return a.Name + "=(" + strings.Join(parts, ", ") + ")"
	}
	return a.Name
}

// expr formats code and restores the nested invocations it holds.
func (p *printer) expr(code string) string {
	out := formatExpr(code)
	for name, src := range p.hidden {
		out = strings.ReplaceAll(out, name, src)
	}
	return out
}

// formatExpr prints a Go expression in gofmt style. Code that does not
// parse is kept as written.
func formatExpr(code string) string {
	code = strings.TrimSpace(code)
	expr, err := parser.ParseExpr(code)
	if err != nil {
		return code
	}
	var buf bytes.Buffer
	if err := format.Node(&buf, token.NewFileSet(), expr); err != nil {
		return code
	}
	return buf.String()
}
