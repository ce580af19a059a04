package yewgen

import (
	"strconv"
)

// generateElement generates a yew.Element call. Options follow a fixed
// order: attributes in source order, listeners in source order, key, ref,
// then children.
func (g *Generator) generateElement(el *Element) string {
	args := []string{strconv.Quote(el.Tag)}
	for _, a := range el.Attrs {
		args = append(args, g.generateAttribute(a))
	}
	for _, l := range el.Listeners {
		args = append(args, runtimePkg+".WithListener("+strconv.Quote(EventName(l.Name))+", "+valueCode(l.Value)+")")
	}
	if el.Key != nil {
		args = append(args, runtimePkg+".WithKey("+valueCode(el.Key.Value)+")")
	}
	if el.Ref != nil {
		args = append(args, runtimePkg+".WithRef("+valueCode(el.Ref.Value)+")")
	}
	if len(el.Children) > 0 {
		args = append(args, call(runtimePkg+".WithChildren", g.generateNodes(el.Children)))
	}
	return call(runtimePkg+".Element", args)
}

// generateAttribute generates the option for a plain, boolean or class attribute.
func (g *Generator) generateAttribute(a *Attribute) string {
	name := strconv.Quote(a.Name)
	switch a.Kind {
	case AttrClass:
		return runtimePkg + ".WithClass(" + classValue(a.Value) + ")"

	case AttrBoolean:
		if e, ok := a.Value.(*Expr); ok {
			return runtimePkg + ".WithBoolAttr(" + name + ", " + e.Code + ")"
		}
		return runtimePkg + ".WithBoolAttr(" + name + ", true)"
	}

	switch v := a.Value.(type) {
	case *Literal:
		if v.Bool {
			return runtimePkg + ".WithBoolAttr(" + name + ", true)"
		}
		return runtimePkg + ".WithAttr(" + name + ", " + literalText(v) + ")"
	case *Expr:
		return runtimePkg + ".WithAttrValue(" + name + ", " + v.Code + ")"
	}
	return runtimePkg + ".WithAttrValue(" + name + ", " + valueCode(a.Value) + ")"
}

// classValue returns the argument of WithClass. String literals are
// normalized at generation time.
func classValue(v Value) string {
	switch v := v.(type) {
	case *Literal:
		text := v.Raw
		if v.Kind == LitString {
			if s, err := strconv.Unquote(v.Raw); err == nil {
				text = s
			}
		}
		return strconv.Quote(NormalizeClasses(text))
	case *ClassList:
		return generateClasses(v.Fragments)
	}
	return valueCode(v)
}
