package yewgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// Policy is how a property field is filled when its setter was not called.
type Policy int

const (
	PolicyRequired  Policy = iota // no marker: must be set
	PolicyOr                      // prop_or:"expr"
	PolicyOrElse                  // prop_or_else:"fn", called when unset
	PolicyOrDefault               // prop_or_default:"", the type's default
)

// Field-level marker keys recognized in struct tags.
const (
	markerOr        = "prop_or"
	markerOrElse    = "prop_or_else"
	markerOrDefault = "prop_or_default"
)

var policyNames = map[Policy]string{
	PolicyRequired:  "required",
	PolicyOr:        markerOr,
	PolicyOrElse:    markerOrElse,
	PolicyOrDefault: markerOrDefault,
}

// String returns the marker name of the policy.
func (p Policy) String() string {
	return policyNames[p]
}

// PropField describes one field of a properties struct.
type PropField struct {
	Name     string
	Setter   string
	Type     string
	Policy   Policy
	Default  string // expression for PolicyOr, function for PolicyOrElse
	Position Position
}

// PropsDecl is a parsed properties struct declaration.
type PropsDecl struct {
	Name       string
	TypeParams string // "[T any]" as written, or empty
	TypeArgs   string // "[T]", or empty
	Fields     []PropField
	Position   Position
}

// Builder returns the name of the derived builder type.
func (d *PropsDecl) Builder() string {
	return d.Name + "Builder"
}

// Required returns the fields without a default policy, in declaration order.
func (d *PropsDecl) Required() []PropField {
	var out []PropField
	for _, f := range d.Fields {
		if f.Policy == PolicyRequired {
			out = append(out, f)
		}
	}
	return out
}

// Setter returns the field whose builder method is named setter.
func (d *PropsDecl) Setter(setter string) (PropField, bool) {
	for _, f := range d.Fields {
		if f.Setter == setter {
			return f, true
		}
	}
	return PropField{}, false
}

// SetterName maps a property name as written in markup or a field name to
// its builder method name.
func SetterName(name string) string {
	return strcase.ToCamel(name)
}

// ParseProps parses `type Name[TypeParams] struct { ... }` into a PropsDecl.
// Every field-level problem is reported; the declaration is returned only
// when there were none.
func ParseProps(input Stream) (*PropsDecl, error) {
	errs := NewErrorList()
	c := NewCursor(input)
	if _, next, ok := c.Keyword("type"); ok {
		c = next
	}

	name, c, ok := c.Ident()
	if !ok {
		errs.AddError(c.Pos(), "expected a type declaration")
		return nil, errs.Err()
	}
	decl := &PropsDecl{Name: name.Text, Position: name.Pos}

	if _, group, next, ok := c.Group(DelimBracket); ok {
		decl.TypeParams = group.String()
		decl.TypeArgs = typeArgs(group.Inner)
		c = next
	}
	if _, next, ok := c.Punct('='); ok {
		errs.AddErrorf(name.Pos, "properties cannot be derived for alias %s", decl.Name)
		c = next
		return nil, errs.Err()
	}

	if _, next, ok := c.Keyword("struct"); ok {
		c = next
	} else {
		errs.AddErrorf(name.Pos, "properties can only be derived for struct types, %s is not a struct", decl.Name)
		return nil, errs.Err()
	}
	body, _, _, ok := c.Group(DelimBrace)
	if !ok {
		errs.AddError(c.Pos(), "expected struct body")
		return nil, errs.Err()
	}

	for _, line := range fieldLines(body.Rest()) {
		decl.Fields = append(decl.Fields, parseFieldLine(line, errs)...)
	}

	setters := make(map[string]string, len(decl.Fields))
	for _, f := range decl.Fields {
		switch {
		case f.Setter == "":
			errs.AddErrorf(f.Position, "field %s has no usable setter name", f.Name)
		case f.Setter == "Build":
			errs.AddErrorf(f.Position, "field %s collides with the builder's Build method", f.Name)
		case setters[f.Setter] != "":
			errs.AddErrorf(f.Position, "fields %s and %s both map to setter %s", setters[f.Setter], f.Name, f.Setter)
		default:
			setters[f.Setter] = f.Name
		}
	}

	if errs.HasErrors() {
		return nil, errs.Err()
	}
	return decl, nil
}

// typeArgs turns a type parameter list into the matching argument list:
// "K comparable, V any" -> "[K, V]".
func typeArgs(params Stream) string {
	var names []string
	for _, seg := range SplitTopLevel(params, ',') {
		if len(seg) > 0 && seg[0].Kind == KindIdent {
			names = append(names, seg[0].Text)
		}
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// fieldLines splits a struct body into field declarations, at explicit ";"
// and at line breaks after a token that can end a field.
func fieldLines(body Stream) []Stream {
	var lines []Stream
	start := 0
	for i, t := range body {
		switch {
		case t.IsPunct(';'):
			if i > start {
				lines = append(lines, body[start:i])
			}
			start = i + 1
		case t.NewlineAfter && t.Kind != KindPunct:
			lines = append(lines, body[start:i+1])
			start = i + 1
		}
	}
	if start < len(body) {
		lines = append(lines, body[start:])
	}
	return lines
}

// parseFieldLine parses `A, B Type "tag"` into one PropField per name.
func parseFieldLine(line Stream, errs *ErrorList) []PropField {
	pos := line[0].Pos
	c := NewCursor(line)

	var names []Token
	for {
		name, next, ok := c.Ident()
		if !ok {
			break
		}
		names = append(names, name)
		c = next
		_, after, ok := c.Punct(',')
		if !ok {
			break
		}
		c = after
	}

	rest := c.Rest()
	var tag *Token
	if n := len(rest); n > 0 && rest[n-1].Kind == KindLiteral && rest[n-1].LitKind == LitString {
		tag = &rest[n-1]
		rest = rest[:n-1]
	}

	if len(names) == 0 || len(rest) == 0 || isEmbeddedType(names, rest) {
		errs.AddErrorWithHint(pos, "embedded fields are not supported in properties",
			"give the field a name")
		return nil
	}

	policy, def := PolicyRequired, ""
	if tag != nil {
		var ok bool
		policy, def, ok = parseMarkers(names[0].Text, *tag, errs)
		if !ok {
			return nil
		}
	}

	typ := rest.String()
	fields := make([]PropField, 0, len(names))
	for _, n := range names {
		setter := ""
		if n.Text != "_" {
			setter = SetterName(n.Text)
		}
		fields = append(fields, PropField{
			Name:     n.Text,
			Setter:   setter,
			Type:     typ,
			Policy:   policy,
			Default:  def,
			Position: n.Pos,
		})
	}
	return fields
}

// isEmbeddedType reports whether a line is an embedded field such as
// pkg.Base or Base[T], which parse as a name followed by a selector or a
// lone type-argument group.
func isEmbeddedType(names []Token, rest Stream) bool {
	if len(names) != 1 {
		return false
	}
	if rest[0].IsPunct('.') {
		return true
	}
	return len(rest) == 1 && rest[0].Kind == KindGroup && rest[0].Delim == DelimBracket && len(rest[0].Inner) > 0
}

// parseMarkers reads the default-policy markers from a field's struct tag.
// More than one marker is a single "conflicting default" error.
func parseMarkers(field string, tag Token, errs *ErrorList) (Policy, string, bool) {
	raw, err := strconv.Unquote(tag.Text)
	if err != nil {
		errs.AddErrorf(tag.Pos, "invalid struct tag for field %s", field)
		return PolicyRequired, "", false
	}
	entries, err := parseTag(raw)
	if err != nil {
		errs.AddErrorf(tag.Pos, "invalid struct tag for field %s: %v", field, err)
		return PolicyRequired, "", false
	}

	var found []tagEntry
	for _, e := range entries {
		switch e.key {
		case markerOr, markerOrElse, markerOrDefault:
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return PolicyRequired, "", true
	case 1:
	default:
		errs.AddErrorWithHint(tag.Pos, "conflicting default for field "+field,
			"use only one of prop_or, prop_or_else or prop_or_default")
		return PolicyRequired, "", false
	}

	m := found[0]
	arg := strings.TrimSpace(m.value)
	switch m.key {
	case markerOrDefault:
		if arg != "" {
			errs.AddErrorf(tag.Pos, "%s takes no argument (field %s)", markerOrDefault, field)
			return PolicyRequired, "", false
		}
		return PolicyOrDefault, "", true
	case markerOr, markerOrElse:
		if arg == "" {
			errs.AddErrorf(tag.Pos, "%s requires an argument (field %s)", m.key, field)
			return PolicyRequired, "", false
		}
		if !validExpr(arg, tag.Pos, errs) {
			return PolicyRequired, "", false
		}
		if m.key == markerOr {
			return PolicyOr, arg, true
		}
		return PolicyOrElse, arg, true
	}
	return PolicyRequired, "", true
}

type tagEntry struct {
	key   string
	value string
}

// parseTag splits a struct tag into its key:"value" pairs in order,
// keeping duplicate keys. The syntax follows reflect.StructTag.
func parseTag(tag string) ([]tagEntry, error) {
	var out []tagEntry
	for {
		tag = strings.TrimLeft(tag, " \t")
		if tag == "" {
			return out, nil
		}

		i := 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return nil, fmt.Errorf("malformed tag near %q", tag)
		}
		key := tag[:i]
		tag = tag[i+1:]

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return nil, fmt.Errorf("unterminated value for key %s", key)
		}
		value, err := strconv.Unquote(tag[:i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid value for key %s", key)
		}
		out = append(out, tagEntry{key: key, value: value})
		tag = tag[i+1:]
	}
}
