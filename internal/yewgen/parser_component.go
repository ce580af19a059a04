package yewgen

import "strings"

// parseComponent parses <Type props /> or <Type props>children</Type>.
// The cursor in next is positioned after the type path and type arguments.
func (p *Parser) parseComponent(peeked Peeked, next Cursor) *Component {
	p.cur = next
	name := peeked.Name
	comp := &Component{
		Path:     name.String(),
		Position: peeked.Token.Pos,
	}
	if name.TypeArgs != nil {
		comp.TypeArgs = name.TypeArgs.String()
	}

	attrs, with := p.parseAttributes(true)
	comp.With = with

	seen := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		if seen[a.Name] {
			p.errors.AddErrorf(a.Position, "duplicate property `%s`", a.Name)
			continue
		}
		seen[a.Name] = true

		switch {
		case a.Name == "key":
			a.Kind = AttrKey
			if isShorthand(a) {
				p.errors.AddError(a.Position, "`key` requires a value")
				continue
			}
			comp.Key = a
		case strings.Contains(a.Name, "-"):
			p.errors.AddErrorf(a.Position, "invalid property name `%s`: properties are Go identifiers", a.Name)
		case isShorthand(a):
			p.errors.AddErrorWithHint(a.Position, "property `"+a.Name+"` requires a value",
				"write "+a.Name+"={true} for a boolean property")
		default:
			comp.Props = append(comp.Props, a)
		}
	}
	if comp.With != nil && len(comp.Props) > 0 {
		p.errors.AddErrorWithHint(comp.Props[0].Position, "`with` cannot be combined with individual properties",
			"set the field on the properties value instead")
	}

	selfClose, ok := p.endOpenTag(comp.Path, comp.Position)
	if !ok {
		return comp
	}
	if selfClose {
		comp.SelfClose = true
		return comp
	}

	comp.Children = p.parseBody(comp.Path, comp.Position)

	if len(comp.Children) > 0 {
		if comp.With != nil {
			p.errors.AddErrorWithHint(comp.With.Position, "children cannot be combined with `with`",
				"set the Children field on the properties value instead")
		}
		for _, prop := range comp.Props {
			if prop.Name == "children" || prop.Name == "Children" {
				p.errors.AddError(prop.Position, "children were passed both as a property and as nested nodes")
			}
		}
	}
	return comp
}

// parseFragment parses <>children</> or <key={k}>children</>.
func (p *Parser) parseFragment(peeked Peeked, next Cursor) *Fragment {
	p.cur = next
	frag := &Fragment{Position: peeked.Token.Pos}

	// Peek consumed the ">" of "<>"; the keyed form stops before "key".
	if peeked.Keyed {
		attrs, _ := p.parseAttributes(false)
		for _, a := range attrs {
			switch {
			case a.Name != "key":
				p.errors.AddErrorf(a.Position, "fragments only accept a `key` attribute, found `%s`", a.Name)
			case frag.Key != nil:
				p.errors.AddError(a.Position, "duplicate attribute `key`")
			case isShorthand(a):
				p.errors.AddError(a.Position, "`key` requires a value")
			default:
				a.Kind = AttrKey
				frag.Key = a
			}
		}
		_, after, ok := p.cur.Punct('>')
		if !ok {
			p.errors.AddErrorWithHint(frag.Position, "unclosed tag <>", "a keyed fragment opens with <key={k}>")
			return frag
		}
		p.cur = after
	}

	frag.Children = p.parseBody("", frag.Position)
	return frag
}
