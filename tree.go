package yew

import "fmt"

// AppendChild appends children to the element. Nil children are dropped.
func (t *VTag) AppendChild(children ...Node) {
	t.Children = appendNodes(t.Children, children)
}

// Walk visits n and its descendants depth-first in document order. Components
// are visited and then rendered. Returning false from fn skips the node's
// descendants.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || isNil(n) || !fn(n) {
		return
	}
	switch x := n.(type) {
	case *VTag:
		for _, c := range x.Children {
			Walk(c, fn)
		}
	case *VList:
		for _, c := range x.Children {
			Walk(c, fn)
		}
	case *VComp:
		Walk(x.Render(), fn)
	}
}

// Find returns the first element in n whose attribute name has value, or nil.
func Find(n Node, name, value string) *VTag {
	var found *VTag
	Walk(n, func(n Node) bool {
		if found != nil {
			return false
		}
		if t, ok := n.(*VTag); ok {
			if v, ok := t.Attr(name); ok && v == value {
				found = t
				return false
			}
		}
		return true
	})
	return found
}

// DuplicateKeyError reports sibling nodes sharing a key.
type DuplicateKeyError struct {
	Key Key
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q among siblings", string(e.Key))
}

// CheckKeys reports the first key used by more than one sibling anywhere
// in n. Unkeyed nodes are ignored.
func CheckKeys(n Node) error {
	var err error
	Walk(n, func(n Node) bool {
		if err != nil {
			return false
		}
		var children []Node
		switch x := n.(type) {
		case *VTag:
			children = x.Children
		case *VList:
			children = x.Children
		}
		seen := make(map[Key]bool, len(children))
		for _, c := range children {
			k := keyOf(c)
			if k == "" {
				continue
			}
			if seen[k] {
				err = &DuplicateKeyError{Key: k}
				return false
			}
			seen[k] = true
		}
		return true
	})
	return err
}

func keyOf(n Node) Key {
	switch x := n.(type) {
	case *VTag:
		return x.Key
	case *VList:
		return x.Key
	case *VComp:
		return x.Key
	}
	return ""
}
