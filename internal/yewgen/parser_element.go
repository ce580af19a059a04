package yewgen

// voidElements cannot have children.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// parseElement parses <tag attrs>children</tag> or <tag attrs />.
// The cursor in next is positioned after the tag name.
func (p *Parser) parseElement(peeked Peeked, next Cursor) *Element {
	p.cur = next
	el := &Element{
		Tag:      peeked.Name.String(),
		Position: peeked.Token.Pos,
	}

	attrs, _ := p.parseAttributes(false)
	p.sortAttributes(el, attrs)

	selfClose, ok := p.endOpenTag(el.Tag, el.Position)
	if !ok {
		return el
	}
	if selfClose {
		el.SelfClose = true
		return el
	}

	el.Children = p.parseBody(el.Tag, el.Position)

	if voidElements[el.Tag] && len(el.Children) > 0 {
		p.errors.AddErrorWithHint(el.Position, "the tag <"+el.Tag+"> is a void element and cannot have children",
			"try <"+el.Tag+" />")
	}
	return el
}

// sortAttributes classifies attributes into the element's plain, listener,
// and special slots, reporting duplicates and invalid values.
func (p *Parser) sortAttributes(el *Element, attrs []*Attribute) {
	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if seen[a.Name] {
			p.errors.AddErrorf(a.Position, "duplicate attribute `%s`", a.Name)
			continue
		}
		seen[a.Name] = true

		a.Kind = classifyAttribute(a.Name)
		switch a.Kind {
		case AttrListener:
			if _, ok := a.Value.(*Expr); !ok {
				p.errors.AddErrorWithHint(a.Position, "listener `"+a.Name+"` expects a handler expression",
					"write "+a.Name+"={handler}")
				continue
			}
			el.Listeners = append(el.Listeners, a)
		case AttrKey:
			if isShorthand(a) {
				p.errors.AddError(a.Position, "`key` requires a value")
				continue
			}
			el.Key = a
		case AttrRef:
			if _, ok := a.Value.(*Expr); !ok {
				p.errors.AddErrorWithHint(a.Position, "`ref` expects a node reference expression",
					"write ref={nodeRef}")
				continue
			}
			el.Ref = a
		case AttrClass:
			if isShorthand(a) {
				p.errors.AddError(a.Position, "`class` requires a value")
				continue
			}
			el.Attrs = append(el.Attrs, a)
		default:
			el.Attrs = append(el.Attrs, a)
		}
	}
}

// parseBody parses the children of the open tag name, then its closing tag.
func (p *Parser) parseBody(name string, open Position) []Node {
	p.open = append(p.open, name)
	defer func() { p.open = p.open[:len(p.open)-1] }()

	children := p.parseChildren()
	p.closeTag(name, open)
	return children
}

// closesOuter reports whether name closes a tag enclosing the innermost one.
func (p *Parser) closesOuter(name string) bool {
	for i := len(p.open) - 2; i >= 0; i-- {
		if p.open[i] == name {
			return true
		}
	}
	return false
}

// closeTag consumes the closing tag of an open element or component named
// want, or of a fragment when want is empty. A mismatched name is reported
// once. It still closes the tag, unless it belongs to an enclosing tag: then
// it is left for that tag to consume. At end of input the opener is
// reported as unclosed.
func (p *Parser) closeTag(want string, open Position) {
	expected := "</" + want + ">"

	if peeked, next, ok := Peek(ConstructCloseTag, p.cur); ok {
		if got := peeked.Name.String(); got != want {
			p.errors.AddErrorWithHint(peeked.Token.Pos,
				"mismatched closing tag: expected "+expected+", found </"+got+">",
				"every opening tag needs a matching closing tag")
			if p.closesOuter(got) {
				return
			}
		}
		p.cur = next
		return
	}
	if peeked, next, ok := Peek(ConstructListClose, p.cur); ok {
		if want != "" {
			p.errors.AddErrorWithHint(peeked.Token.Pos,
				"mismatched closing tag: expected "+expected+", found </>",
				"every opening tag needs a matching closing tag")
			if p.closesOuter("") {
				return
			}
		}
		p.cur = next
		return
	}

	if want == "" {
		p.errors.AddErrorWithHint(open, "unclosed tag <>", "add a closing </>")
		return
	}
	p.errors.AddErrorWithHint(open, "unclosed tag <"+want+">",
		"add "+expected+" or self-close with <"+want+" />")
}
