package yewgen

import "strings"

// PropsLiteral is a parsed properties literal: Type{name: value, ...}.
type PropsLiteral struct {
	Path     string // "CardProps" or "ui.CardProps"
	TypeArgs string
	Fields   []*Attribute
	Position Position
}

// Qualifier returns the package qualifier of the type path, including the dot.
func (l *PropsLiteral) Qualifier() string {
	if i := strings.LastIndexByte(l.Path, '.'); i >= 0 {
		return l.Path[:i+1]
	}
	return ""
}

// Name returns the unqualified type name.
func (l *PropsLiteral) Name() string {
	return strings.TrimPrefix(l.Path, l.Qualifier())
}

// ParsePropsLiteral parses the input of props!(...). Fields are written
// name: value, or as a bare name when the value is a variable of the same
// name.
func ParsePropsLiteral(input Stream) (*PropsLiteral, error) {
	errs := NewErrorList()
	c := NewCursor(input)
	if inner, _, next, ok := c.Group(DelimParen); ok && next.EOF() {
		c = inner
	}

	name, c, ok := peekTagName(c)
	if !ok || name.Dashed {
		errs.AddErrorWithHint(c.Pos(), "expected a properties type", "write props!(Type{field: value})")
		return nil, errs.Err()
	}
	lit := &PropsLiteral{Path: name.String(), Position: name.Pos}
	if name.TypeArgs != nil {
		lit.TypeArgs = name.TypeArgs.String()
	}

	body, group, c, ok := c.Group(DelimBrace)
	if !ok {
		errs.AddErrorf(c.Pos(), "expected `{` after %s", lit.Path)
		return nil, errs.Err()
	}
	if !c.EOF() {
		tok, _, _ := c.Token()
		errs.AddErrorf(tok.Pos, "unexpected %s after properties literal", tok.Describe())
	}

	seen := make(map[string]bool)
	for _, seg := range SplitTopLevel(body.Rest(), ',') {
		if len(seg) == 0 {
			errs.AddError(group.Pos, "expected a field between commas")
			continue
		}
		fc := NewCursor(seg)
		field, fc, ok := fc.Ident()
		if !ok {
			errs.AddErrorf(seg[0].Pos, "expected field name, found %s", seg[0].Describe())
			continue
		}
		attr := &Attribute{Name: field.Text, Position: field.Pos}
		if _, after, ok := fc.Punct(':'); ok {
			code := after.Rest().String()
			if strings.TrimSpace(code) == "" {
				errs.AddErrorf(field.Pos, "expected a value for field %s", field.Text)
				continue
			}
			if !validExpr(code, field.Pos, errs) {
				continue
			}
			attr.Value = &Expr{Code: code, Position: field.Pos}
		} else if fc.EOF() {
			attr.Value = &Expr{Code: field.Text, Position: field.Pos}
		} else {
			tok, _, _ := fc.Token()
			errs.AddErrorf(tok.Pos, "expected `:` after field %s, found %s", field.Text, tok.Describe())
			continue
		}

		if seen[field.Text] {
			errs.AddErrorf(field.Pos, "field %s is set more than once", field.Text)
			continue
		}
		seen[field.Text] = true
		lit.Fields = append(lit.Fields, attr)
	}

	if errs.HasErrors() {
		return nil, errs.Err()
	}
	return lit, nil
}

// GeneratePropsLiteral generates yew.MustProps(NewTBuilder().F(v)...Build()).
func (g *Generator) GeneratePropsLiteral(lit *PropsLiteral) string {
	setters := make([]setterCall, 0, len(lit.Fields))
	for _, f := range lit.Fields {
		setters = append(setters, setterCall{name: SetterName(f.Name), value: valueCode(f.Value)})
	}
	return runtimePkg + ".MustProps(" + builderChain(lit.Qualifier(), lit.Name(), lit.TypeArgs, setters) + ")"
}
