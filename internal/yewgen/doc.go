// Package yewgen compiles the markup macros of .gsx files into Go code.
//
// The pipeline consists of:
//   - [Lexer]: turns Go source into token trees ([Stream])
//   - [Cursor] and [Peek]: non-destructive lookahead over a stream
//   - [Parser]: builds a markup AST ([Node]) from a stream
//   - [Analyzer]: checks components and props literals against the [Registry]
//   - [Generator]: emits Go expressions that build a yew node graph
//
// [ParseProps] and [Generator.GenerateProps] derive property builders, and
// class lists are folded or lowered by the classes macro. A [Dispatcher]
// maps one named [Request] to this pipeline; an [Expander] applies it to
// whole files.
package yewgen
