package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/grindlemire/go-yew/internal/yewgen"
)

// Formatter formats .gsx source.
type Formatter struct {
	// IndentString is the string used for indentation (default: tab).
	IndentString string
	// MaxLineWidth is the target maximum line width (default: 100).
	MaxLineWidth int
	// TabWidth is the width a tab counts for when measuring lines (default: 4).
	TabWidth int
}

// New creates a new Formatter with default settings.
func New() *Formatter {
	return &Formatter{
		IndentString: "\t",
		MaxLineWidth: 100,
		TabWidth:     4,
	}
}

// FormatResult contains the formatted output and whether it differs from
// the input.
type FormatResult struct {
	Content string
	Changed bool
}

// Format formats source. Syntax errors in any markup body fail the whole
// file, as the yewgen diagnostics.
func (f *Formatter) Format(filename, source string) (string, error) {
	src := []byte(source)
	invocations, comments, err := yewgen.ScanInvocations(filename, src)
	if err != nil {
		return "", err
	}

	var errs []error
	var buf bytes.Buffer
	last := 0
	for _, inv := range invocations {
		if inv.Request != yewgen.RequestHTML && inv.Request != yewgen.RequestHTMLNested {
			continue
		}
		if containsComment(comments, inv.Input.Offset, inv.Input.End) {
			continue
		}
		start := lineStart(src, inv.Input.Offset)
		col := f.width(string(src[start:inv.Input.Offset]))
		body, err := f.formatInvocation(src, inv, lineIndent(src, inv.Start()), col)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		buf.Write(src[last:inv.Input.Offset])
		buf.WriteString(body)
		last = inv.Input.End
	}
	if err := yewgen.JoinErrors(errs...); err != nil {
		return "", err
	}
	buf.Write(src[last:])
	return buf.String(), nil
}

// FormatWithResult formats source and reports whether anything changed.
func (f *Formatter) FormatWithResult(filename, source string) (FormatResult, error) {
	formatted, err := f.Format(filename, source)
	if err != nil {
		return FormatResult{}, err
	}
	return FormatResult{
		Content: formatted,
		Changed: formatted != source,
	}, nil
}

// formatInvocation returns the formatted group of inv, delimiters included.
// indent is the indentation of the line the invocation starts on and col
// the column of its opening delimiter. Nested invocations are printed as
// written.
func (f *Formatter) formatInvocation(src []byte, inv yewgen.Invocation, indent string, col int) (string, error) {
	hidden := make(map[string]string)
	input := yewgen.ReplaceInvocations(inv.Input.Inner, func(nested yewgen.Invocation) yewgen.Token {
		name := fmt.Sprintf("__yewfmt%d__", len(hidden))
		hidden[name] = string(src[nested.Start():nested.End()])
		return yewgen.Token{
			Kind:   yewgen.KindIdent,
			Text:   name,
			Pos:    nested.Name.Pos,
			Offset: nested.Start(),
			End:    nested.End(),
		}
	})

	parser := yewgen.NewParser(input)
	var nodes []yewgen.Node
	if inv.Request == yewgen.RequestHTMLNested {
		node, err := parser.ParseNested()
		if err != nil {
			return "", err
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	} else {
		var err error
		if nodes, err = parser.ParseRoot(); err != nil {
			return "", err
		}
	}

	open, close := string(byte(inv.Input.Delim)), string(inv.Input.Delim.Close())
	if len(nodes) == 0 {
		return open + close, nil
	}

	p := newPrinter(f, indent, hidden)
	if len(nodes) == 1 {
		flat := p.flat(nodes[0])
		if !strings.Contains(flat, "\n") && col+len(flat)+2 <= f.MaxLineWidth {
			return open + flat + close, nil
		}
	}

	var sb strings.Builder
	sb.WriteString(open)
	for _, n := range nodes {
		sb.WriteString("\n")
		sb.WriteString(p.pad(1))
		p.node(&sb, n, 1)
	}
	sb.WriteString("\n")
	sb.WriteString(p.pad(0))
	sb.WriteString(close)
	return sb.String(), nil
}

// width measures s with tabs expanded.
func (f *Formatter) width(s string) int {
	return len(s) + strings.Count(s, "\t")*(f.TabWidth-1)
}

func containsComment(comments []yewgen.Comment, start, end int) bool {
	for _, c := range comments {
		if c.Offset >= start && c.End <= end {
			return true
		}
	}
	return false
}

// lineIndent returns the leading whitespace of the line containing offset.
func lineIndent(src []byte, offset int) string {
	start := lineStart(src, offset)
	end := start
	for end < len(src) && (src[end] == ' ' || src[end] == '\t') {
		end++
	}
	return string(src[start:end])
}

func lineStart(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	return bytes.LastIndexByte(src[:offset], '\n') + 1
}
