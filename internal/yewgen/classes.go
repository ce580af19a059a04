package yewgen

import (
	"strconv"
	"strings"
)

// ClassFragment is one entry of a class list: a string literal or an
// expression, optionally guarded by a condition ("lit": cond).
type ClassFragment struct {
	Static   string // unquoted literal text when IsStatic
	Expr     string // Go expression otherwise
	IsStatic bool
	Cond     string // guard expression; empty when unconditional
	Position Position
}

// parseClassList parses the fragments of a class=(...) group.
func (p *Parser) parseClassList(group Token) *ClassList {
	frags, ok := parseClassFragments(group.Inner, group.Pos, p.errors)
	if !ok {
		return nil
	}
	return &ClassList{Fragments: frags, Position: group.Pos}
}

// parseClassFragments splits s at top-level commas into fragments. Within a
// fragment a top-level ":" separates the value from its guard condition.
func parseClassFragments(s Stream, pos Position, errs *ErrorList) ([]ClassFragment, bool) {
	before := errs.Len()
	var frags []ClassFragment
	for _, seg := range SplitTopLevel(s, ',') {
		if len(seg) == 0 {
			errs.AddError(pos, "expected a class fragment between commas")
			continue
		}
		if seg[len(seg)-1].IsPunct(':') {
			errs.AddError(seg[0].Pos, "expected a condition after `:`")
			continue
		}
		parts := SplitTopLevel(seg, ':')
		if len(parts) > 2 {
			errs.AddErrorWithHint(seg[0].Pos, "a class fragment takes at most one condition",
				`write "class": condition`)
			continue
		}

		frag := ClassFragment{Position: seg[0].Pos}
		value := parts[0]
		if len(value) == 1 && value[0].Kind == KindLiteral && value[0].LitKind == LitString {
			text, err := strconv.Unquote(value[0].Text)
			if err != nil {
				errs.AddErrorf(value[0].Pos, "invalid string literal %s", value[0].Text)
				continue
			}
			frag.Static = text
			frag.IsStatic = true
		} else {
			if len(value) == 0 {
				errs.AddError(frag.Position, "expected a class name before `:`")
				continue
			}
			code := value.String()
			if !validExpr(code, value[0].Pos, errs) {
				continue
			}
			frag.Expr = code
		}

		if len(parts) == 2 {
			cond := parts[1]
			if len(cond) == 0 {
				errs.AddError(frag.Position, "expected a condition after `:`")
				continue
			}
			code := cond.String()
			if !validExpr(code, cond[0].Pos, errs) {
				continue
			}
			frag.Cond = code
		}
		frags = append(frags, frag)
	}
	return frags, errs.Len() == before
}

// NormalizeClasses splits each value on whitespace, drops empty names and
// keeps only the first occurrence of each name, preserving order.
func NormalizeClasses(values ...string) string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		for _, name := range strings.Fields(v) {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return strings.Join(out, " ")
}

// foldClasses applies literal true/false guards and reports whether every
// remaining fragment is static and unconditional.
func foldClasses(frags []ClassFragment) ([]ClassFragment, bool) {
	var out []ClassFragment
	static := true
	for _, f := range frags {
		switch strings.TrimSpace(f.Cond) {
		case "false":
			continue
		case "true":
			f.Cond = ""
		}
		if !f.IsStatic || f.Cond != "" {
			static = false
		}
		out = append(out, f)
	}
	return out, static
}

// generateClasses returns a Go expression producing the class string.
// Fully static lists fold to a single string literal; otherwise the list
// is built at runtime with yew.Classes.
func generateClasses(frags []ClassFragment) string {
	frags, static := foldClasses(frags)
	if static {
		values := make([]string, len(frags))
		for i, f := range frags {
			values[i] = f.Static
		}
		return strconv.Quote(NormalizeClasses(values...))
	}

	var sb strings.Builder
	sb.WriteString(runtimePkg + ".NewClasses()")
	var pending []string
	flush := func() {
		if len(pending) == 0 {
			return
		}
		if norm := NormalizeClasses(pending...); norm != "" {
			sb.WriteString(".Add(" + strconv.Quote(norm) + ")")
		}
		pending = nil
	}
	for _, f := range frags {
		if f.IsStatic && f.Cond == "" {
			pending = append(pending, f.Static)
			continue
		}
		flush()
		value := f.Expr
		if f.IsStatic {
			value = strconv.Quote(NormalizeClasses(f.Static))
		}
		if f.Cond != "" {
			sb.WriteString(".AddIf(" + f.Cond + ", " + value + ")")
		} else {
			sb.WriteString(".Add(" + value + ")")
		}
	}
	flush()
	sb.WriteString(".String()")
	return sb.String()
}
