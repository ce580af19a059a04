// Package yew is the runtime for code generated from .gsx templates.
//
// Generated code builds a virtual node graph out of four node kinds:
// [VTag] for elements, [VText] for text, [VList] for fragments and
// [VComp] for components. Components receive properties assembled by the
// builders that `yew generate` derives for structs marked with
// //yew:properties; [MustProps], [Default] and [MissingPropsError] support
// those builders. [Classes] implements the class-list algorithm used by
// classes!(...) when it cannot be folded at generation time.
//
// The graph is plain data. Rendering it to HTML is done by package ssr.
package yew
