package yewgen

// Cursor is a read-only position in a Stream. It is a small value: copying
// it is how lookahead works, and no method mutates the stream or the cursor
// it was called on. Each accessor returns the cursor positioned after the
// matched token; the caller commits by keeping it.
type Cursor struct {
	stream Stream
	idx    int
	end    Position // reported at end of input (the closing delimiter, if any)
}

// NewCursor returns a cursor at the start of s.
func NewCursor(s Stream) Cursor {
	c := Cursor{stream: s}
	if len(s) > 0 {
		c.end = s[len(s)-1].Pos
	}
	return c
}

// EOF reports whether no tokens remain.
func (c Cursor) EOF() bool {
	return c.idx >= len(c.stream)
}

// Pos returns the position of the current token, or the end position.
func (c Cursor) Pos() Position {
	if c.EOF() {
		return c.end
	}
	return c.stream[c.idx].Pos
}

// Token returns the current token tree of any kind.
func (c Cursor) Token() (Token, Cursor, bool) {
	if c.EOF() {
		return Token{}, c, false
	}
	next := c
	next.idx++
	return c.stream[c.idx], next, true
}

// Ident matches an identifier or keyword.
func (c Cursor) Ident() (Token, Cursor, bool) {
	t, next, ok := c.Token()
	if !ok || t.Kind != KindIdent {
		return Token{}, c, false
	}
	return t, next, true
}

// Keyword matches the identifier name.
func (c Cursor) Keyword(name string) (Token, Cursor, bool) {
	t, next, ok := c.Ident()
	if !ok || t.Text != name {
		return Token{}, c, false
	}
	return t, next, true
}

// Punct matches the punctuation character ch.
func (c Cursor) Punct(ch byte) (Token, Cursor, bool) {
	t, next, ok := c.Token()
	if !ok || !t.IsPunct(ch) {
		return Token{}, c, false
	}
	return t, next, true
}

// Literal matches a literal token.
func (c Cursor) Literal() (Token, Cursor, bool) {
	t, next, ok := c.Token()
	if !ok || t.Kind != KindLiteral {
		return Token{}, c, false
	}
	return t, next, true
}

// Group matches a group with the given delimiter. It returns a cursor over
// the group's contents, the group token, and the cursor after the group.
func (c Cursor) Group(d Delim) (Cursor, Token, Cursor, bool) {
	t, next, ok := c.Token()
	if !ok || t.Kind != KindGroup || t.Delim != d {
		return Cursor{}, Token{}, c, false
	}
	inner := Cursor{stream: t.Inner, end: Position{File: t.Pos.File, Line: t.Pos.Line, Column: t.Pos.Column}}
	if n := len(t.Inner); n > 0 {
		inner.end = t.Inner[n-1].Pos
	}
	return inner, t, next, true
}

// Rest returns the tokens from the cursor to the end of its stream.
func (c Cursor) Rest() Stream {
	if c.EOF() {
		return nil
	}
	return c.stream[c.idx:]
}

// Between returns the tokens from c up to (not including) later, which must
// be a cursor derived from c over the same stream.
func (c Cursor) Between(later Cursor) Stream {
	if later.idx <= c.idx {
		return nil
	}
	return c.stream[c.idx:later.idx]
}

// SplitTopLevel splits s at every top-level occurrence of the punctuation
// character sep. Groups are atomic, so separators inside them are ignored,
// and a separator written jointly with "=" (as in ":=") does not split.
// An empty trailing segment is dropped.
func SplitTopLevel(s Stream, sep byte) []Stream {
	var out []Stream
	start := 0
	for i, t := range s {
		if t.IsPunct(sep) && !(t.Joint && i+1 < len(s) && s[i+1].IsPunct('=')) {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
