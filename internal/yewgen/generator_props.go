package yewgen

import (
	"fmt"
	"strings"
)

// GenerateProps generates the builder companion of a properties struct:
// the builder type, its constructor, one setter per field and Build.
//
// Build rejects unset required fields with *yew.MissingPropsError before
// any default is applied, then fills the unset optional fields according
// to their policy.
func (g *Generator) GenerateProps(decl *PropsDecl) string {
	var sb strings.Builder
	w := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
	}

	builder := decl.Builder()
	self := builder + decl.TypeArgs
	props := decl.Name + decl.TypeArgs

	w("// %s assembles %s field by field.\n", builder, decl.Name)
	w("type %s%s struct {\n", builder, decl.TypeParams)
	w("props %s\n", props)
	w("set [%d]bool\n", len(decl.Fields))
	w("}\n\n")

	w("// New%s returns an empty %s.\n", builder, builder)
	w("func New%s%s() *%s {\n", builder, decl.TypeParams, self)
	w("return &%s{}\n", self)
	w("}\n")

	for i, f := range decl.Fields {
		w("\n// %s sets the %s field.\n", f.Setter, f.Name)
		w("func (b *%s) %s(v %s) *%s {\n", self, f.Setter, f.Type, self)
		w("b.props.%s = v\n", f.Name)
		w("b.set[%d] = true\n", i)
		w("return b\n")
		w("}\n")
	}

	w("\n// Build returns the assembled %s. It fails with a *%s.MissingPropsError\n", decl.Name, runtimePkg)
	w("// naming every required field that was not set.\n")
	w("func (b *%s) Build() (%s, error) {\n", self, props)
	if required := decl.Required(); len(required) > 0 {
		w("var missing []string\n")
		for i, f := range decl.Fields {
			if f.Policy != PolicyRequired {
				continue
			}
			w("if !b.set[%d] {\n", i)
			w("missing = append(missing, %q)\n", f.Name)
			w("}\n")
		}
		w("if len(missing) > 0 {\n")
		w("return %s{}, &%s.MissingPropsError{Props: %q, Fields: missing}\n", props, runtimePkg, decl.Name)
		w("}\n")
	}
	w("props := b.props\n")
	for i, f := range decl.Fields {
		var value string
		switch f.Policy {
		case PolicyOr:
			value = f.Default
		case PolicyOrElse:
			value = f.Default + "()"
		case PolicyOrDefault:
			value = runtimePkg + ".Default[" + f.Type + "]()"
		default:
			continue
		}
		w("if !b.set[%d] {\n", i)
		w("props.%s = %s\n", f.Name, value)
		w("}\n")
	}
	w("return props, nil\n")
	w("}\n")
	return sb.String()
}
