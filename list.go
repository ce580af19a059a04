package yew

import (
	"fmt"
	"iter"
	"reflect"
)

// Text creates a text node.
func Text(s string) *VText {
	return &VText{Text: s}
}

// Fragment groups nodes without a wrapping element. Nil children are dropped.
func Fragment(children ...Node) *VList {
	l := &VList{}
	l.Children = appendNodes(l.Children, children)
	return l
}

// KeyedFragment is a Fragment with a key.
func KeyedFragment(key any, children ...Node) *VList {
	l := Fragment(children...)
	l.Key = KeyOf(key)
	return l
}

// Block converts the value of an embedded {expr} into a node:
//   - nil, a nil pointer or nil interface yields an empty fragment
//   - a Node is used as-is
//   - strings, fmt.Stringers and any other value become text via fmt.Sprint
//   - slices, arrays, channels and sequences of any element type are
//     flattened in order, each element converted by Block
func Block(v any) Node {
	switch x := v.(type) {
	case nil:
		return &VList{}
	case Node:
		if isNil(x) {
			return &VList{}
		}
		return x
	case string:
		return Text(x)
	case []Node:
		return Fragment(x...)
	case iter.Seq[Node]:
		return collect(x)
	case fmt.Stringer:
		if isNil(x) {
			return &VList{}
		}
		return Text(x.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return &VList{}
		}
		return Block(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return For(v)
	case reflect.Chan:
		if rv.IsNil() {
			return &VList{}
		}
		return For(v)
	case reflect.Func:
		if rv.IsNil() {
			return &VList{}
		}
		if _, ok := seqFunc(rv); ok {
			return For(v)
		}
	}
	return Text(fmt.Sprint(v))
}

// For converts the value of an embedded {for expr} into a fragment. It
// accepts slices, arrays, iter.Seq and channels; each element goes through
// Block. Any other value is treated as a single item.
func For(v any) *VList {
	switch x := v.(type) {
	case nil:
		return &VList{}
	case []Node:
		return Fragment(x...)
	case iter.Seq[Node]:
		return collect(x)
	}

	out := &VList{}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			out.Children = appendNodes(out.Children, []Node{Block(rv.Index(i).Interface())})
		}
		return out
	case reflect.Chan:
		if rv.IsNil() {
			return out
		}
		for {
			item, ok := rv.Recv()
			if !ok {
				return out
			}
			out.Children = appendNodes(out.Children, []Node{Block(item.Interface())})
		}
	case reflect.Func:
		if seq, ok := seqFunc(rv); ok {
			seq(func(item any) {
				out.Children = appendNodes(out.Children, []Node{Block(item)})
			})
			return out
		}
	}
	return Fragment(Block(v))
}

func collect(seq iter.Seq[Node]) *VList {
	out := &VList{}
	for n := range seq {
		out.Children = appendNodes(out.Children, []Node{n})
	}
	return out
}

// seqFunc adapts a func(yield func(T) bool) of any element type T.
func seqFunc(rv reflect.Value) (func(func(any)), bool) {
	t := rv.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return nil, false
	}
	yield := t.In(0)
	if yield.Kind() != reflect.Func || yield.NumIn() != 1 || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return nil, false
	}
	return func(each func(any)) {
		fn := reflect.MakeFunc(yield, func(args []reflect.Value) []reflect.Value {
			each(args[0].Interface())
			return []reflect.Value{reflect.ValueOf(true)}
		})
		rv.Call([]reflect.Value{fn})
	}, true
}

// appendNodes appends the non-nil nodes of src to dst.
func appendNodes(dst, src []Node) []Node {
	for _, n := range src {
		if n == nil || isNil(n) {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// isNil reports whether v is nil or an interface holding a nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
