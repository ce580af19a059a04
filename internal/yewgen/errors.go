package yewgen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error represents a compilation error with source location and optional hint.
type Error struct {
	Pos     Position
	Message string
	Hint    string // optional suggestion for fixing the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if e.Pos.IsValid() {
		sb.WriteString(e.Pos.String())
		sb.WriteString(": ")
	}
	sb.WriteString("error: ")
	sb.WriteString(e.Message)
	if e.Hint != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

// NewError creates a new Error with the given position and message.
func NewError(pos Position, message string) *Error {
	return &Error{Pos: pos, Message: message}
}

// NewErrorf creates a new Error with a formatted message.
func NewErrorf(pos Position, format string, args ...any) *Error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// NewErrorWithHint creates a new Error with a hint for fixing the error.
func NewErrorWithHint(pos Position, message, hint string) *Error {
	return &Error{Pos: pos, Message: message, Hint: hint}
}

// ErrorList collects multiple errors during compilation.
type ErrorList struct {
	errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.errors = append(el.errors, err)
}

// AddError creates and adds an error with the given position and message.
func (el *ErrorList) AddError(pos Position, message string) {
	el.errors = append(el.errors, NewError(pos, message))
}

// AddErrorf creates and adds an error with a formatted message.
func (el *ErrorList) AddErrorf(pos Position, format string, args ...any) {
	el.errors = append(el.errors, NewErrorf(pos, format, args...))
}

// AddErrorWithHint creates and adds an error carrying a hint.
func (el *ErrorList) AddErrorWithHint(pos Position, message, hint string) {
	el.errors = append(el.errors, NewErrorWithHint(pos, message, hint))
}

// Merge appends every error of other, keeping their order.
func (el *ErrorList) Merge(other *ErrorList) {
	if other == nil {
		return
	}
	el.errors = append(el.errors, other.errors...)
}

// Len returns the number of errors.
func (el *ErrorList) Len() int {
	return len(el.errors)
}

// HasErrors returns true if there are any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.errors) > 0
}

// Errors returns a copy of the error slice.
func (el *ErrorList) Errors() []*Error {
	result := make([]*Error, len(el.errors))
	copy(result, el.errors)
	return result
}

// Error implements the error interface, returning all errors joined by newlines.
func (el *ErrorList) Error() string {
	if len(el.errors) == 0 {
		return ""
	}
	if len(el.errors) == 1 {
		return el.errors[0].Error()
	}

	var sb strings.Builder
	for i, err := range el.errors {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Err returns nil if there are no errors, otherwise returns the ErrorList as an error.
func (el *ErrorList) Err() error {
	if len(el.errors) == 0 {
		return nil
	}
	return el
}

// JoinErrors combines independent failures into one error. It returns nil
// when there is nothing to join; otherwise every *Error is kept, in order,
// in a single *ErrorList. Nested lists are flattened and foreign errors are
// kept as position-less entries.
func JoinErrors(errs ...error) error {
	joined := NewErrorList()
	for _, err := range errs {
		appendError(joined, err)
	}
	return joined.Err()
}

func appendError(dst *ErrorList, err error) {
	if err == nil {
		return
	}
	var list *ErrorList
	if errors.As(err, &list) {
		dst.Merge(list)
		return
	}
	var single *Error
	if errors.As(err, &single) {
		dst.Add(single)
		return
	}
	dst.Add(&Error{Message: err.Error()})
}

// compileErrorFunc is never declared, so the Go toolchain rejects generated
// code at the line where it appears.
const compileErrorFunc = "compile_error"

// RenderCompileError renders err as tokens. Expression context yields
// compile_error("msg", ...); declaration context yields
// var _ = compile_error("msg", ...). Every individual message is kept.
func RenderCompileError(err error, decl bool) Stream {
	list := NewErrorList()
	appendError(list, err)

	var sb strings.Builder
	if decl {
		sb.WriteString("var _ = ")
	}
	sb.WriteString(compileErrorFunc)
	sb.WriteByte('(')
	for i, e := range list.errors {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(e.Error()))
	}
	sb.WriteByte(')')

	out, lexErr := Lex("", sb.String())
	if lexErr != nil {
		return Stream{{Kind: KindIdent, Text: compileErrorFunc}}
	}
	return out
}

// CompileErrorMessages reports whether s is a rendered compile error and
// returns its messages.
func CompileErrorMessages(s Stream) ([]string, bool) {
	c := NewCursor(s)
	if kw, next, ok := c.Ident(); ok && kw.Text == "var" {
		c = next
		if _, next, ok := c.Ident(); ok {
			c = next
		}
		if _, next, ok := c.Punct('='); ok {
			c = next
		}
	}
	name, c, ok := c.Ident()
	if !ok || name.Text != compileErrorFunc {
		return nil, false
	}
	args, _, _, ok := c.Group(DelimParen)
	if !ok {
		return nil, false
	}
	var msgs []string
	for _, t := range args.Rest() {
		if t.Kind != KindLiteral || t.LitKind != LitString {
			continue
		}
		if msg, err := strconv.Unquote(t.Text); err == nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs, true
}

// Diagnostics flattens err into its individual errors. Errors that carry no
// position are kept with a zero Pos.
func Diagnostics(err error) []*Error {
	list := NewErrorList()
	appendError(list, err)
	return list.errors
}
