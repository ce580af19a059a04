package yewgen

import (
	"sort"
	"strings"
)

// Registry holds the properties types derived in the package being
// expanded. It lets component invocations and props literals be checked
// against the declared fields before any Go code is compiled.
type Registry struct {
	decls map[string]*PropsDecl
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decls: make(map[string]*PropsDecl)}
}

// Register records a derived properties type.
func (r *Registry) Register(decl *PropsDecl) {
	r.decls[decl.Name] = decl
}

// Lookup returns the properties type named name.
func (r *Registry) Lookup(name string) (*PropsDecl, bool) {
	if r == nil {
		return nil, false
	}
	d, ok := r.decls[name]
	return d, ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.decls))
	for n := range r.decls {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Analyzer checks parsed markup against the properties in a Registry.
// Components from other packages are left to the Go compiler.
type Analyzer struct {
	errors   *ErrorList
	registry *Registry
}

// NewAnalyzer creates a new analyzer. A nil registry disables the
// properties checks.
func NewAnalyzer(registry *Registry) *Analyzer {
	return &Analyzer{
		errors:   NewErrorList(),
		registry: registry,
	}
}

// Errors returns the errors found during analysis.
func (a *Analyzer) Errors() *ErrorList {
	return a.errors
}

// Analyze walks nodes and returns the errors found.
func (a *Analyzer) Analyze(nodes []Node) error {
	a.errors = NewErrorList()
	for _, n := range nodes {
		a.analyzeNode(n)
	}
	return a.errors.Err()
}

// AnalyzePropsLiteral checks a props!(...) literal.
func (a *Analyzer) AnalyzePropsLiteral(lit *PropsLiteral) error {
	a.errors = NewErrorList()
	if lit.Qualifier() == "" {
		if decl, ok := a.registry.Lookup(lit.Name()); ok {
			a.checkFields(decl, lit.Path, lit.Position, lit.Fields, false)
		}
	}
	return a.errors.Err()
}

func (a *Analyzer) analyzeNode(node Node) {
	switch n := node.(type) {
	case *Element:
		for _, child := range n.Children {
			a.analyzeNode(child)
		}
	case *Fragment:
		for _, child := range n.Children {
			a.analyzeNode(child)
		}
	case *Component:
		a.analyzeComponent(n)
	}
}

// analyzeComponent validates the properties of a component declared in
// this package against its derived builder.
func (a *Analyzer) analyzeComponent(comp *Component) {
	for _, child := range comp.Children {
		a.analyzeNode(child)
	}
	if comp.With != nil || comp.Qualifier() != "" {
		return
	}
	decl, ok := a.registry.Lookup(comp.PropsType())
	if !ok {
		return
	}
	a.checkFields(decl, "<"+comp.Path+">", comp.Position, comp.Props, len(comp.Children) > 0)
}

// checkFields reports unknown properties and unset required fields. Nested
// children count as setting the Children field.
func (a *Analyzer) checkFields(decl *PropsDecl, what string, pos Position, props []*Attribute, children bool) {
	set := make(map[string]bool, len(props)+1)
	for _, p := range props {
		setter := SetterName(p.Name)
		if _, ok := decl.Setter(setter); !ok {
			err := NewErrorf(p.Position, "unknown property `%s` for %s", p.Name, what)
			if similar := similarSetter(decl, p.Name); similar != "" {
				err.Hint = "did you mean " + similar + "?"
			}
			a.errors.Add(err)
			continue
		}
		set[setter] = true
	}

	if children {
		if _, ok := decl.Setter(childrenSetter); !ok {
			a.errors.AddErrorWithHint(pos, what+" does not accept children",
				"add a Children field to "+decl.Name)
		}
		set[childrenSetter] = true
	}

	for _, f := range decl.Required() {
		if !set[f.Setter] {
			a.errors.AddErrorWithHint(pos, "missing required field `"+f.Name+"` for "+what,
				"set it, or give the field a prop_or, prop_or_else or prop_or_default tag")
		}
	}
}

// similarSetter returns a field whose name matches name ignoring case and
// underscores.
func similarSetter(decl *PropsDecl, name string) string {
	fold := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "_", ""))
	}
	want := fold(name)
	for _, f := range decl.Fields {
		if fold(f.Name) == want {
			return f.Name
		}
	}
	return ""
}
