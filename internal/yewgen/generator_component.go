package yewgen

import (
	"strconv"
	"strings"
)

// generateComponent generates a component invocation:
//
//	yew.Comp("ui.Card", ui.Card).Key(k).With(ui.NewCardPropsBuilder().Title(t).Build())
//
// Properties go through the builder derived for <Name>Props, so unset
// optional fields take their declared defaults and unset required fields
// fail the build.
func (g *Generator) generateComponent(c *Component) string {
	var sb strings.Builder
	sb.WriteString(runtimePkg + ".Comp(" + strconv.Quote(c.Path) + ", " + c.Path + c.TypeArgs + ")")
	if c.Key != nil {
		sb.WriteString(".Key(" + valueCode(c.Key.Value) + ")")
	}
	if c.With != nil {
		sb.WriteString(".With(" + c.With.Code + ", nil)")
		return sb.String()
	}

	setters := make([]setterCall, 0, len(c.Props)+1)
	for _, p := range c.Props {
		setters = append(setters, setterCall{name: SetterName(p.Name), value: valueCode(p.Value)})
	}
	if len(c.Children) > 0 {
		setters = append(setters, setterCall{name: childrenSetter, value: call(runtimePkg+".Fragment", g.generateNodes(c.Children))})
	}
	sb.WriteString(".With(" + builderChain(c.Qualifier(), c.PropsType(), c.TypeArgs, setters) + ")")
	return sb.String()
}

// generateFragment generates yew.Fragment or, when keyed, yew.KeyedFragment.
func (g *Generator) generateFragment(f *Fragment) string {
	children := g.generateNodes(f.Children)
	if f.Key != nil {
		args := append([]string{valueCode(f.Key.Value)}, children...)
		return call(runtimePkg+".KeyedFragment", args)
	}
	return call(runtimePkg+".Fragment", children)
}

// childrenSetter is the builder method that receives nested nodes.
const childrenSetter = "Children"

type setterCall struct {
	name  string
	value string
}

// builderChain returns NewTBuilder[args]().S1(v1)...Build() for the
// properties type T, qualified like the component.
func builderChain(qualifier, propsType, typeArgs string, setters []setterCall) string {
	var sb strings.Builder
	sb.WriteString(qualifier + "New" + propsType + "Builder" + typeArgs + "()")
	for _, s := range setters {
		sb.WriteString("." + s.name + "(" + s.value + ")")
	}
	sb.WriteString(".Build()")
	return sb.String()
}
