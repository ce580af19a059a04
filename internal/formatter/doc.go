// Package formatter formats the markup of .gsx files.
//
// Each html! and html_nested! body is parsed and pretty-printed with one
// child per line where it does not fit on a single line. The Go code
// around the invocations is left as written, and so is any invocation
// containing a comment. Used by "yew fmt" and the language server.
package formatter
