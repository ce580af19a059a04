package yewgen

import (
	"go/scanner"
	"go/token"
	"strings"
)

// Comment is a source comment seen while lexing a file. Comments never
// become tokens; they are reported separately so directives can be found.
type Comment struct {
	Text   string
	Pos    Position
	Offset int
	End    int
}

// item is one scanned token before groups are assembled.
type item struct {
	tok     token.Token
	lit     string
	pos     Position
	offset  int
	end     int
	endLine int
	newline bool
}

// Lexer turns Go source into token trees using go/scanner.
type Lexer struct {
	filename string
	src      []byte
	errors   *ErrorList
	comments []Comment
}

// NewLexer creates a Lexer for the given source.
func NewLexer(filename string, src []byte) *Lexer {
	return &Lexer{
		filename: filename,
		src:      src,
		errors:   NewErrorList(),
	}
}

// Errors returns any errors encountered during lexing.
func (l *Lexer) Errors() *ErrorList {
	return l.errors
}

// Comments returns the comments collected by the last call to Lex.
func (l *Lexer) Comments() []Comment {
	return l.comments
}

// Lex scans the whole source and returns its token trees.
// The stream is returned even when errors were recorded.
func (l *Lexer) Lex() (Stream, error) {
	items := l.scan()
	stream, _ := l.build(items, 0, 0)
	return stream, l.errors.Err()
}

// Lex is a convenience wrapper for lexing a snippet.
func Lex(filename, src string) (Stream, error) {
	return NewLexer(filename, []byte(src)).Lex()
}

func (l *Lexer) scan() []item {
	fset := token.NewFileSet()
	file := fset.AddFile(l.filename, -1, len(l.src))

	var s scanner.Scanner
	s.Init(file, l.src, func(pos token.Position, msg string) {
		l.errors.AddError(l.position(pos), msg)
	}, scanner.ScanComments)

	l.comments = nil
	var items []item
	for {
		p, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		pos := fset.Position(p)
		if tok == token.COMMENT {
			l.comments = append(l.comments, Comment{
				Text:   lit,
				Pos:    l.position(pos),
				Offset: pos.Offset,
				End:    pos.Offset + len(lit),
			})
			continue
		}
		// Automatic semicolons are implied by the recorded line breaks.
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		text := lit
		if text == "" {
			text = tok.String()
		}
		it := item{
			tok:     tok,
			lit:     text,
			pos:     l.position(pos),
			offset:  pos.Offset,
			end:     pos.Offset + len(text),
			endLine: pos.Line + strings.Count(text, "\n"),
		}
		// Split operators into single characters, proc-macro style.
		if tok.IsOperator() && tok != token.LPAREN && tok != token.RPAREN &&
			tok != token.LBRACK && tok != token.RBRACK &&
			tok != token.LBRACE && tok != token.RBRACE && len(text) > 1 {
			for i := 0; i < len(text); i++ {
				sub := it
				sub.lit = text[i : i+1]
				sub.offset = it.offset + i
				sub.end = sub.offset + 1
				sub.pos.Column = it.pos.Column + i
				items = append(items, sub)
			}
			continue
		}
		items = append(items, it)
	}

	for i := range items {
		if i+1 < len(items) {
			items[i].newline = items[i+1].pos.Line > items[i].endLine
		}
	}
	return items
}

// build assembles items[i:] into a stream until the closing delimiter
// matching open (0 for top level). It returns the stream and the index of
// the closing item, or len(items) at end of input.
func (l *Lexer) build(items []item, i int, open Delim) (Stream, int) {
	var out Stream
	for i < len(items) {
		it := items[i]
		switch it.tok {
		case token.LPAREN, token.LBRACK, token.LBRACE:
			delim := Delim(it.lit[0])
			inner, closeIdx := l.build(items, i+1, delim)
			group := Token{
				Kind:        KindGroup,
				Text:        it.lit,
				Delim:       delim,
				Inner:       inner,
				OpenNewline: it.newline,
				Pos:         it.pos,
				Offset:      it.offset,
			}
			if closeIdx < len(items) {
				group.End = items[closeIdx].end
				group.NewlineAfter = items[closeIdx].newline
			} else {
				group.End = len(l.src)
				l.errors.AddErrorf(it.pos, "unclosed delimiter %q", it.lit)
			}
			out = append(out, group)
			i = closeIdx + 1
			continue
		case token.RPAREN, token.RBRACK, token.RBRACE:
			if open != 0 && it.lit[0] == open.Close() {
				return out, i
			}
			l.errors.AddErrorf(it.pos, "unexpected closing delimiter %q", it.lit)
			i++
			continue
		}
		out = append(out, l.leaf(items, i))
		i++
	}
	return out, i
}

func (l *Lexer) leaf(items []item, i int) Token {
	it := items[i]
	t := Token{
		Text:         it.lit,
		NewlineAfter: it.newline,
		Pos:          it.pos,
		Offset:       it.offset,
		End:          it.end,
	}
	switch {
	case it.tok == token.IDENT || it.tok.IsKeyword():
		t.Kind = KindIdent
	case it.tok.IsLiteral():
		t.Kind = KindLiteral
		t.LitKind = litKind(it.tok)
	default:
		t.Kind = KindPunct
		if i+1 < len(items) {
			next := items[i+1]
			t.Joint = next.offset == it.end && isPunctItem(next.tok)
		}
	}
	return t
}

func isPunctItem(tok token.Token) bool {
	switch tok {
	case token.LPAREN, token.RPAREN, token.LBRACK, token.RBRACK, token.LBRACE, token.RBRACE:
		return false
	}
	return tok.IsOperator() || tok == token.ILLEGAL
}

func litKind(tok token.Token) LitKind {
	switch tok {
	case token.CHAR:
		return LitChar
	case token.INT:
		return LitInt
	case token.FLOAT:
		return LitFloat
	case token.IMAG:
		return LitImag
	}
	return LitString
}

func (l *Lexer) position(pos token.Position) Position {
	return Position{File: l.filename, Line: pos.Line, Column: pos.Column}
}
