package yewgen

import "fmt"

// Request names one compile-time transformation.
type Request string

const (
	RequestDeriveProps Request = "derive_props"
	RequestHTMLNested  Request = "html_nested"
	RequestHTML        Request = "html"
	RequestProps       Request = "props"
	RequestClasses     Request = "classes"
)

// Requests lists every request the dispatcher understands.
var Requests = []Request{RequestDeriveProps, RequestHTMLNested, RequestHTML, RequestProps, RequestClasses}

// Decl reports whether the request's output is a declaration rather than
// an expression.
func (r Request) Decl() bool {
	return r == RequestDeriveProps
}

// Dispatcher maps a request to the parse and generate pipeline.
type Dispatcher struct {
	// Registry receives derived properties types and is consulted when
	// checking components and props literals. It may be nil.
	Registry *Registry
	gen      *Generator
}

// NewDispatcher creates a dispatcher sharing registry across its requests.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{
		Registry: registry,
		gen:      NewGenerator(),
	}
}

// Dispatch runs req on input and returns the generated tokens. A failure is
// returned as tokens too: a compile_error call that the Go compiler rejects
// at that location.
func (d *Dispatcher) Dispatch(req Request, input Stream) Stream {
	code, err := d.Expand(req, input)
	if err != nil {
		return RenderCompileError(err, req.Decl())
	}
	out, err := Lex("", code)
	if err != nil {
		return RenderCompileError(err, req.Decl())
	}
	return out
}

// Expand runs req on input and returns the generated Go source, or the
// compound diagnostic of everything that went wrong.
func (d *Dispatcher) Expand(req Request, input Stream) (string, error) {
	switch req {
	case RequestDeriveProps:
		decl, err := ParseProps(input)
		if err != nil {
			return "", err
		}
		if d.Registry != nil {
			d.Registry.Register(decl)
		}
		return d.gen.GenerateProps(decl), nil

	case RequestHTML:
		nodes, err := NewParser(input).ParseRoot()
		if err := JoinErrors(err, NewAnalyzer(d.Registry).Analyze(nodes)); err != nil {
			return "", err
		}
		return d.gen.GenerateRoot(nodes), nil

	case RequestHTMLNested:
		node, err := NewParser(input).ParseNested()
		var nodes []Node
		if node != nil {
			nodes = append(nodes, node)
		}
		if err := JoinErrors(err, NewAnalyzer(d.Registry).Analyze(nodes)); err != nil {
			return "", err
		}
		return d.gen.GenerateNode(node), nil

	case RequestProps:
		lit, err := ParsePropsLiteral(input)
		if err != nil {
			return "", err
		}
		if err := NewAnalyzer(d.Registry).AnalyzePropsLiteral(lit); err != nil {
			return "", err
		}
		return d.gen.GeneratePropsLiteral(lit), nil

	case RequestClasses:
		errs := NewErrorList()
		frags, _ := parseClassFragments(unwrapParens(input), NewCursor(input).Pos(), errs)
		if err := errs.Err(); err != nil {
			return "", err
		}
		return generateClasses(frags), nil
	}

	return "", NewErrorf(NewCursor(input).Pos(), "unknown transformation request %q", string(req))
}

// unwrapParens returns the contents of input when it is a single (...) group.
func unwrapParens(input Stream) Stream {
	if inner, _, next, ok := NewCursor(input).Group(DelimParen); ok && next.EOF() {
		return inner.Rest()
	}
	return input
}

// ParseRequest converts a request name, as accepted on the command line.
func ParseRequest(name string) (Request, error) {
	for _, r := range Requests {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown transformation request %q", name)
}
