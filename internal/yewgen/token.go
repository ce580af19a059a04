package yewgen

import (
	"fmt"
	"strings"
)

// Kind classifies a token tree.
type Kind int

const (
	KindIdent   Kind = iota // identifier or keyword
	KindPunct               // single punctuation character
	KindLiteral             // string, char, or number literal
	KindGroup               // delimited group: (...), [...], {...}
)

var kindNames = map[Kind]string{
	KindIdent:   "identifier",
	KindPunct:   "punctuation",
	KindLiteral: "literal",
	KindGroup:   "group",
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// LitKind distinguishes literal tokens.
type LitKind int

const (
	LitString LitKind = iota
	LitChar
	LitInt
	LitFloat
	LitImag
)

// Delim is the opening delimiter of a group.
type Delim byte

const (
	DelimParen   Delim = '('
	DelimBracket Delim = '['
	DelimBrace   Delim = '{'
)

// Close returns the matching closing delimiter.
func (d Delim) Close() byte {
	switch d {
	case DelimParen:
		return ')'
	case DelimBracket:
		return ']'
	case DelimBrace:
		return '}'
	}
	return 0
}

// Token is one token tree: a leaf token or a delimited group of tokens.
type Token struct {
	Kind    Kind
	Text    string  // identifier name, punctuation character, or literal source text
	LitKind LitKind // for KindLiteral
	Delim   Delim   // for KindGroup
	Inner   Stream  // for KindGroup

	// Joint is set on punctuation immediately followed by more punctuation,
	// so "<" "/" with Joint set on "<" was written as "</".
	Joint bool
	// NewlineAfter is set when a line break followed the token in source.
	// For groups it refers to the closing delimiter.
	NewlineAfter bool
	// OpenNewline is set on groups whose opening delimiter was followed by a line break.
	OpenNewline bool

	Pos    Position
	Offset int // byte offset of the first byte
	End    int // byte offset just past the token (past the closing delimiter for groups)
}

// IsIdent reports whether the token is the identifier name.
func (t Token) IsIdent(name string) bool {
	return t.Kind == KindIdent && t.Text == name
}

// IsPunct reports whether the token is the punctuation character ch.
func (t Token) IsPunct(ch byte) bool {
	return t.Kind == KindPunct && len(t.Text) == 1 && t.Text[0] == ch
}

// Describe returns a short description of the token for diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case KindGroup:
		return fmt.Sprintf("`%c...%c`", t.Delim, t.Delim.Close())
	case KindLiteral:
		lit := t.Text
		if len(lit) > 20 {
			lit = lit[:17] + "..."
		}
		return "literal " + lit
	}
	return "`" + t.Text + "`"
}

// String returns the source form of the token.
func (t Token) String() string {
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t Token) write(sb *strings.Builder) {
	if t.Kind != KindGroup {
		sb.WriteString(t.Text)
		return
	}
	sb.WriteByte(byte(t.Delim))
	if t.OpenNewline {
		sb.WriteByte('\n')
	}
	t.Inner.write(sb)
	if n := len(t.Inner); n > 0 && t.Inner[n-1].NewlineAfter {
		sb.WriteByte('\n')
	}
	sb.WriteByte(t.Delim.Close())
}

// Stream is an ordered, immutable sequence of token trees.
type Stream []Token

// String prints the stream as Go source. Line breaks recorded on the tokens
// are reproduced so that Go's semicolon insertion sees the same input.
func (s Stream) String() string {
	var sb strings.Builder
	s.write(&sb)
	return sb.String()
}

func (s Stream) write(sb *strings.Builder) {
	for i, t := range s {
		if i > 0 {
			sb.WriteString(separator(s[i-1], t))
		}
		t.write(sb)
	}
}

// separator returns the whitespace printed between two adjacent tokens.
func separator(prev, next Token) string {
	switch {
	case prev.NewlineAfter:
		return "\n"
	case prev.Kind == KindPunct && prev.Joint:
		return ""
	case prev.IsPunct('.'):
		return ""
	case next.Kind == KindPunct && strings.Contains(".,;", next.Text):
		return ""
	case next.Kind == KindGroup && next.Delim != DelimBrace &&
		(prev.Kind == KindIdent || prev.Kind == KindGroup || prev.Kind == KindLiteral):
		return ""
	case prev.Kind == KindGroup && prev.Delim == DelimBracket && next.Kind == KindIdent:
		return ""
	}
	return " "
}

// Position represents a source location for error reporting.
type Position struct {
	File   string
	Line   int
	Column int
}

// String returns a formatted position string.
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether the position carries a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}
