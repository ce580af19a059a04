package yewgen

import (
	"strconv"
	"strings"
)

// runtimePkg is the package name generated code uses for the runtime.
const runtimePkg = "yew"

// Generator lowers markup AST nodes into Go expressions that build a yew
// node graph when evaluated. Output is a function of the AST only: siblings,
// attributes and properties are emitted in source order.
type Generator struct{}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateRoot generates a root template. No nodes yield an empty fragment,
// a single node is emitted as-is, and siblings become an implicit fragment.
func (g *Generator) GenerateRoot(nodes []Node) string {
	if len(nodes) == 1 {
		return g.GenerateNode(nodes[0])
	}
	return call(runtimePkg+".Fragment", g.generateNodes(nodes))
}

// GenerateNode generates a single node.
func (g *Generator) GenerateNode(node Node) string {
	switch n := node.(type) {
	case *Element:
		return g.generateElement(n)
	case *Component:
		return g.generateComponent(n)
	case *Fragment:
		return g.generateFragment(n)
	case *Block:
		if n.Iterable {
			return runtimePkg + ".For(" + n.Expr + ")"
		}
		return runtimePkg + ".Block(" + n.Expr + ")"
	case *Literal:
		return runtimePkg + ".Text(" + literalText(n) + ")"
	}
	return runtimePkg + ".Fragment()"
}

func (g *Generator) generateNodes(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, g.GenerateNode(n))
	}
	return out
}

// call formats a call expression. Calls with a single short argument stay
// on one line; anything else puts one argument per line so gofmt can
// indent the result.
func call(fn string, args []string) string {
	switch {
	case len(args) == 0:
		return fn + "()"
	case len(args) == 1 && !strings.Contains(args[0], "\n") && len(args[0]) <= 60:
		return fn + "(" + args[0] + ")"
	}
	return fn + "(\n" + strings.Join(args, ",\n") + ",\n)"
}

// literalText returns a Go string expression for a literal's text.
// Strings are emitted verbatim; chars and numbers are folded to quoted
// strings at generation time.
func literalText(l *Literal) string {
	switch {
	case l.Bool:
		return strconv.Quote("")
	case l.Kind == LitString:
		return l.Raw
	case l.Kind == LitChar:
		if s, err := strconv.Unquote(l.Raw); err == nil {
			return strconv.Quote(s)
		}
	}
	return strconv.Quote(l.Raw)
}

// valueCode returns the Go expression for an attribute or property value.
func valueCode(v Value) string {
	switch v := v.(type) {
	case *Literal:
		if v.Bool {
			return "true"
		}
		return v.Raw
	case *Expr:
		return v.Code
	case *ClassList:
		return generateClasses(v.Fragments)
	}
	return "nil"
}
