package yewgen

import "strings"

// TagKind is the result of the tag-name disambiguation rule.
type TagKind int

const (
	TagElement TagKind = iota
	TagComponent
)

// Classify decides whether a tag name denotes an HTML-style element or a
// component. A name that is entirely ASCII and starts with a lowercase ASCII
// letter is an element; anything else, including the empty string and
// non-ASCII names, is a component.
func Classify(name string) TagKind {
	if name == "" {
		return TagComponent
	}
	for i := 0; i < len(name); i++ {
		if name[i] >= 0x80 {
			return TagComponent
		}
	}
	if c := name[0]; c >= 'a' && c <= 'z' {
		return TagElement
	}
	return TagComponent
}

// TagName is a peeked tag name: an identifier, a dashed name (my-element),
// or a dotted type path (ui.Card) with optional type arguments.
type TagName struct {
	Segments []string
	Dotted   bool
	Dashed   bool
	TypeArgs *Token // [T] group, only on paths
	Pos      Position
}

// String returns the name as written, without type arguments.
func (n TagName) String() string {
	sep := "."
	if n.Dashed {
		sep = "-"
	}
	return strings.Join(n.Segments, sep)
}

// Last returns the final segment, which is the type name of a dotted path.
func (n TagName) Last() string {
	if len(n.Segments) == 0 {
		return ""
	}
	return n.Segments[len(n.Segments)-1]
}

// Kind applies Classify to the name. Dashed names are only ever elements and
// dotted paths are only ever components; anything that fits neither reports ok=false.
func (n TagName) Kind() (TagKind, bool) {
	switch {
	case n.Dashed:
		return TagElement, Classify(n.String()) == TagElement
	case n.Dotted || n.TypeArgs != nil:
		return TagComponent, Classify(n.Last()) == TagComponent
	}
	return Classify(n.String()), true
}

// peekTagName reads an identifier joined by "." or "-" separators.
func peekTagName(c Cursor) (TagName, Cursor, bool) {
	first, c, ok := c.Ident()
	if !ok {
		return TagName{}, c, false
	}
	name := TagName{Segments: []string{first.Text}, Pos: first.Pos}
	for {
		if !name.Dashed {
			if _, after, ok := c.Punct('.'); ok {
				if seg, next, ok := after.Ident(); ok {
					name.Segments = append(name.Segments, seg.Text)
					name.Dotted = true
					c = next
					continue
				}
			}
		}
		if !name.Dotted {
			if _, after, ok := c.Punct('-'); ok {
				if seg, next, ok := after.Ident(); ok {
					name.Segments = append(name.Segments, seg.Text)
					name.Dashed = true
					c = next
					continue
				}
			}
		}
		break
	}
	if !name.Dashed {
		if _, group, next, ok := c.Group(DelimBracket); ok {
			name.TypeArgs = &group
			c = next
		}
	}
	return name, c, true
}

// Construct enumerates the markup constructs the parser can peek for.
type Construct int

const (
	ConstructListClose Construct = iota // </>
	ConstructCloseTag                   // </name>
	ConstructList                       // <> or <key=...>
	ConstructComponent                  // <Type
	ConstructElement                    // <tag
	ConstructIterable                   // {for expr}
	ConstructBlock                      // {expr}
	ConstructLiteral                    // "text"
)

var constructNames = map[Construct]string{
	ConstructListClose: "</>",
	ConstructCloseTag:  "closing tag",
	ConstructList:      "<>",
	ConstructComponent: "component",
	ConstructElement:   "element",
	ConstructIterable:  "{for ...}",
	ConstructBlock:     "{...}",
	ConstructLiteral:   "literal",
}

// String returns a human-readable name for the construct.
func (c Construct) String() string {
	return constructNames[c]
}

// treeOrder is the order PeekTree tries constructs in. Closing forms come
// first so that "</" is never read as the start of an opening tag, and the
// keyed list form precedes elements so <key=k> is a fragment.
var treeOrder = []Construct{
	ConstructListClose,
	ConstructCloseTag,
	ConstructList,
	ConstructComponent,
	ConstructElement,
	ConstructIterable,
	ConstructBlock,
	ConstructLiteral,
}

// Peeked describes a construct found by Peek.
type Peeked struct {
	Kind  Construct
	Name  TagName // for tags
	Token Token   // the first token of the construct
	Keyed bool    // for lists: <key=...>, with the cursor before "key"
}

// Peek reports whether a construct of the given kind starts at c. On a match
// it returns what was seen and the cursor after the peeked prefix; c itself
// is never advanced. For tags the prefix ends after the name, for closing
// forms after the final ">", and for blocks and literals after the token.
func Peek(kind Construct, c Cursor) (Peeked, Cursor, bool) {
	switch kind {
	case ConstructListClose:
		lt, next, ok := c.Punct('<')
		if !ok {
			break
		}
		if _, next, ok = next.Punct('/'); !ok {
			break
		}
		if _, next, ok = next.Punct('>'); !ok {
			break
		}
		return Peeked{Kind: kind, Token: lt}, next, true

	case ConstructCloseTag:
		lt, next, ok := c.Punct('<')
		if !ok {
			break
		}
		if _, next, ok = next.Punct('/'); !ok {
			break
		}
		name, next, ok := peekTagName(next)
		if !ok {
			break
		}
		if _, next, ok = next.Punct('>'); !ok {
			break
		}
		return Peeked{Kind: kind, Name: name, Token: lt}, next, true

	case ConstructList:
		lt, next, ok := c.Punct('<')
		if !ok {
			break
		}
		if _, after, ok := next.Punct('>'); ok {
			return Peeked{Kind: kind, Token: lt}, after, true
		}
		if _, after, ok := next.Keyword("key"); ok {
			if eq, _, ok := after.Punct('='); ok && !eq.Joint {
				return Peeked{Kind: kind, Token: lt, Keyed: true}, next, true
			}
		}

	case ConstructComponent, ConstructElement:
		lt, next, ok := c.Punct('<')
		if !ok {
			break
		}
		name, next, ok := peekTagName(next)
		if !ok {
			break
		}
		tk, valid := name.Kind()
		if !valid {
			break
		}
		if (kind == ConstructComponent) != (tk == TagComponent) {
			break
		}
		return Peeked{Kind: kind, Name: name, Token: lt}, next, true

	case ConstructIterable, ConstructBlock:
		inner, group, next, ok := c.Group(DelimBrace)
		if !ok {
			break
		}
		_, _, isFor := inner.Keyword("for")
		if isFor != (kind == ConstructIterable) {
			break
		}
		return Peeked{Kind: kind, Token: group}, next, true

	case ConstructLiteral:
		lit, next, ok := c.Literal()
		if !ok {
			break
		}
		return Peeked{Kind: kind, Token: lit}, next, true
	}
	return Peeked{}, c, false
}

// PeekTree reports which construct starts at c, trying each kind in a
// fixed order. It never advances c.
func PeekTree(c Cursor) (Peeked, Cursor, bool) {
	for _, kind := range treeOrder {
		if p, next, ok := Peek(kind, c); ok {
			return p, next, true
		}
	}
	return Peeked{}, c, false
}
