package yewgen

import (
	"go/parser"
	"regexp"
	"strings"
)

// Parser parses a markup token stream into an AST.
//
// Local failures are recorded and parsing continues, so a single pass can
// report several independent mistakes. The recorded errors are only merged
// into one value by the exported Parse methods.
type Parser struct {
	cur    Cursor
	errors *ErrorList
	// open holds the names of the tags being parsed, innermost last; a
	// fragment is "".
	open []string
}

// NewParser creates a new Parser over input.
func NewParser(input Stream) *Parser {
	return &Parser{
		cur:    NewCursor(input),
		errors: NewErrorList(),
	}
}

// Errors returns any errors encountered during parsing.
func (p *Parser) Errors() *ErrorList {
	return p.errors
}

// ParseRoot parses a root template: zero or more sibling nodes.
// The nodes parsed so far are returned even when errors were recorded.
func (p *Parser) ParseRoot() ([]Node, error) {
	var nodes []Node
	for !p.cur.EOF() {
		if node := p.parseNode(); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes, p.errors.Err()
}

// ParseNested parses exactly one node.
func (p *Parser) ParseNested() (Node, error) {
	start := p.cur.Pos()
	nodes, _ := p.ParseRoot()
	switch {
	case len(nodes) == 0 && !p.errors.HasErrors():
		p.errors.AddError(start, "expected an html node")
	case len(nodes) > 1:
		p.errors.AddErrorWithHint(nodes[1].Pos(), "only one root html element is allowed",
			"you can wrap multiple html elements in a fragment <></>")
	}
	if len(nodes) == 0 {
		return nil, p.errors.Err()
	}
	return nodes[0], p.errors.Err()
}

// parseNode parses a single node at the cursor.
// NOTE: We explicitly check for nil before returning to avoid the Go interface
// nil gotcha where a typed nil pointer converted to an interface would pass
// `node != nil` checks in callers.
func (p *Parser) parseNode() Node {
	peeked, next, ok := PeekTree(p.cur)
	if !ok {
		p.skipUnexpected()
		return nil
	}

	switch peeked.Kind {
	case ConstructList:
		if f := p.parseFragment(peeked, next); f != nil {
			return f
		}
	case ConstructComponent:
		if c := p.parseComponent(peeked, next); c != nil {
			return c
		}
	case ConstructElement:
		if e := p.parseElement(peeked, next); e != nil {
			return e
		}
	case ConstructIterable, ConstructBlock:
		if b := p.parseBlock(peeked, next); b != nil {
			return b
		}
	case ConstructLiteral:
		p.cur = next
		return &Literal{Raw: peeked.Token.Text, Kind: peeked.Token.LitKind, Position: peeked.Token.Pos}
	case ConstructCloseTag:
		p.errors.AddErrorf(peeked.Token.Pos, "unexpected closing tag </%s>", peeked.Name)
		p.cur = next
	case ConstructListClose:
		p.errors.AddError(peeked.Token.Pos, "unexpected closing tag </>")
		p.cur = next
	}
	return nil
}

// parseChildren parses nodes until a closing tag or end of input.
// The closing tag itself is left for the caller.
func (p *Parser) parseChildren() []Node {
	var children []Node
	for !p.cur.EOF() {
		if _, _, ok := Peek(ConstructCloseTag, p.cur); ok {
			break
		}
		if _, _, ok := Peek(ConstructListClose, p.cur); ok {
			break
		}
		if child := p.parseNode(); child != nil {
			children = append(children, child)
		}
	}
	return children
}

// skipUnexpected records one error for a run of tokens that do not start
// any construct and skips to the next token that does.
func (p *Parser) skipUnexpected() {
	tok, _, _ := p.cur.Token()
	switch {
	case tok.IsPunct('<'):
		p.errors.AddErrorWithHint(tok.Pos, "expected a valid html element or component name after `<`",
			"element names start with a lowercase letter, components with an uppercase one")
	case tok.Kind == KindIdent:
		p.errors.AddErrorWithHint(tok.Pos, "unexpected "+tok.Describe()+" in markup",
			`text content must be a literal, e.g. "hello"`)
	default:
		p.errors.AddErrorf(tok.Pos, "unexpected %s in markup", tok.Describe())
	}

	_, p.cur, _ = p.cur.Token()
	for !p.cur.EOF() {
		if _, _, ok := PeekTree(p.cur); ok {
			return
		}
		_, p.cur, _ = p.cur.Token()
	}
}

// parseBlock parses {expr} or {for expr}.
func (p *Parser) parseBlock(peeked Peeked, next Cursor) *Block {
	p.cur = next
	group := peeked.Token
	inner := NewCursor(group.Inner)
	block := &Block{Position: group.Pos}
	if _, after, ok := inner.Keyword("for"); ok {
		block.Iterable = true
		inner = after
	}

	code := inner.Rest().String()
	if strings.TrimSpace(code) == "" {
		if block.Iterable {
			p.errors.AddError(group.Pos, "expected an iterable expression after `for`")
		} else {
			p.errors.AddErrorWithHint(group.Pos, "empty block", "remove the braces or add an expression")
		}
		return nil
	}
	if !p.checkExpr(code, group.Pos) {
		return nil
	}
	block.Expr = code
	return block
}

var exprErrPos = regexp.MustCompile(`^\d+:\d+: `)

// checkExpr records an error unless code parses as a Go expression.
func (p *Parser) checkExpr(code string, pos Position) bool {
	return validExpr(code, pos, p.errors)
}

func validExpr(code string, pos Position, errs *ErrorList) bool {
	if _, err := parser.ParseExpr(code); err != nil {
		msg := exprErrPos.ReplaceAllString(err.Error(), "")
		errs.AddErrorf(pos, "invalid expression %q: %s", code, msg)
		return false
	}
	return true
}
