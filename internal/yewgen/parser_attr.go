package yewgen

import "strings"

// parseAttributes parses attributes until the end of an opening tag.
// For components a bare `with expr` is also accepted and returned separately.
func (p *Parser) parseAttributes(component bool) ([]*Attribute, *Expr) {
	var attrs []*Attribute
	var with *Expr

	for !p.cur.EOF() {
		if p.atTagEnd() {
			break
		}
		if _, _, ok := p.cur.Punct('<'); ok {
			// missing ">"; reported by the caller
			break
		}

		if component {
			if kw, after, ok := p.cur.Keyword("with"); ok {
				if _, _, isAssign := after.Punct('='); !isAssign {
					p.cur = after
					if v := p.parseValue(false); v != nil {
						expr, ok := v.(*Expr)
						switch {
						case !ok:
							p.errors.AddError(kw.Pos, "`with` expects a properties expression")
						case with != nil:
							p.errors.AddError(kw.Pos, "`with` may only be given once")
						default:
							with = expr
						}
					}
					continue
				}
			}
		}

		name, pos, next, ok := peekAttrName(p.cur)
		if !ok {
			tok, _, _ := p.cur.Token()
			p.errors.AddErrorf(tok.Pos, "expected attribute name, found %s", tok.Describe())
			p.skipAttribute()
			continue
		}
		p.cur = next

		attr := &Attribute{Name: name, Position: pos}
		if _, after, ok := p.cur.Punct('='); ok {
			p.cur = after
			attr.Value = p.parseValue(!component && name == "class")
			if attr.Value == nil {
				continue
			}
		} else {
			attr.Value = &Literal{Raw: "true", Bool: true, Position: pos}
		}
		attrs = append(attrs, attr)
	}
	return attrs, with
}

// skipAttribute skips a malformed attribute up to the next attribute name
// or the end of the tag. An "= value" inside it is skipped whole, and its
// errors are not reported again.
func (p *Parser) skipAttribute() {
	_, p.cur, _ = p.cur.Token()
	for !p.cur.EOF() && !p.atTagEnd() {
		if _, _, ok := p.cur.Punct('<'); ok {
			return
		}
		if _, after, ok := p.cur.Punct('='); ok {
			p.cur = after
			errs := p.errors
			p.errors = NewErrorList()
			p.parseValue(false)
			p.errors = errs
			continue
		}
		if _, _, _, ok := peekAttrName(p.cur); ok {
			return
		}
		_, p.cur, _ = p.cur.Token()
	}
}

// atTagEnd reports whether the cursor is at ">" or "/>".
func (p *Parser) atTagEnd() bool {
	if _, _, ok := p.cur.Punct('>'); ok {
		return true
	}
	if _, after, ok := p.cur.Punct('/'); ok {
		if _, _, ok := after.Punct('>'); ok {
			return true
		}
	}
	return false
}

// endOpenTag consumes ">" or "/>" after the attributes of tag.
// ok is false when neither was found; the error is already recorded.
func (p *Parser) endOpenTag(tag string, open Position) (selfClose, ok bool) {
	if _, after, found := p.cur.Punct('>'); found {
		p.cur = after
		return false, true
	}
	if _, after, found := p.cur.Punct('/'); found {
		if _, after, found := after.Punct('>'); found {
			p.cur = after
			return true, true
		}
	}
	p.errors.AddErrorWithHint(open, "unclosed tag <"+tag+">",
		"the opening tag must end with `>` or `/>`")
	return false, false
}

// peekAttrName reads an attribute name: identifiers joined by "-".
func peekAttrName(c Cursor) (string, Position, Cursor, bool) {
	first, c, ok := c.Ident()
	if !ok {
		return "", Position{}, c, false
	}
	parts := []string{first.Text}
	for {
		_, after, ok := c.Punct('-')
		if !ok {
			break
		}
		seg, next, ok := after.Ident()
		if !ok {
			break
		}
		parts = append(parts, seg.Text)
		c = next
	}
	return strings.Join(parts, "-"), first.Pos, c, true
}

// parseValue parses an attribute value after "=". It returns nil, with an
// error recorded, when no valid value is present.
func (p *Parser) parseValue(class bool) Value {
	tok, next, ok := p.cur.Token()
	if !ok {
		p.errors.AddError(p.cur.Pos(), "expected a value after `=`")
		return nil
	}

	switch {
	case tok.Kind == KindLiteral:
		p.cur = next
		return &Literal{Raw: tok.Text, Kind: tok.LitKind, Position: tok.Pos}

	case tok.IsPunct('-'):
		if lit, after, ok := next.Literal(); ok && lit.LitKind != LitString && lit.LitKind != LitChar {
			p.cur = after
			return &Literal{Raw: "-" + lit.Text, Kind: lit.LitKind, Position: tok.Pos}
		}

	case tok.Kind == KindGroup && tok.Delim == DelimBrace:
		p.cur = next
		code := tok.Inner.String()
		if strings.TrimSpace(code) == "" {
			p.errors.AddErrorWithHint(tok.Pos, "empty attribute value", "put a Go expression inside the braces")
			return nil
		}
		if !p.checkExpr(code, tok.Pos) {
			return nil
		}
		return &Expr{Code: code, Position: tok.Pos}

	case tok.Kind == KindGroup && tok.Delim == DelimParen:
		p.cur = next
		if class {
			return p.parseClassList(tok)
		}
		code := tok.String()
		if !p.checkExpr(code, tok.Pos) {
			return nil
		}
		return &Expr{Code: code, Position: tok.Pos}

	case tok.Kind == KindIdent:
		end := exprPathEnd(p.cur)
		code := p.cur.Between(end).String()
		p.cur = end
		if !p.checkExpr(code, tok.Pos) {
			return nil
		}
		return &Expr{Code: code, Position: tok.Pos}
	}

	p.errors.AddErrorWithHint(tok.Pos, "expected attribute value, found "+tok.Describe(),
		"values are literals, {expressions} or identifiers")
	p.cur = next
	return nil
}

// exprPathEnd returns the cursor after an unbraced value expression:
// an identifier followed by any number of .field selectors and call or
// index groups, as in a.b(c)[0].
func exprPathEnd(c Cursor) Cursor {
	_, c, ok := c.Ident()
	if !ok {
		return c
	}
	for {
		if _, after, ok := c.Punct('.'); ok {
			if _, next, ok := after.Ident(); ok {
				c = next
				continue
			}
		}
		if _, _, next, ok := c.Group(DelimParen); ok {
			c = next
			continue
		}
		if _, _, next, ok := c.Group(DelimBracket); ok {
			c = next
			continue
		}
		return c
	}
}

// isShorthand reports whether attr was written as a bare name.
func isShorthand(attr *Attribute) bool {
	lit, ok := attr.Value.(*Literal)
	return ok && lit.Bool
}
