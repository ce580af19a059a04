package yew

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWalk(t *testing.T) {
	root := Element("div",
		WithChildren(
			Element("p", WithChildren(Text("a"))),
			Fragment(Text("b"), Element("span")),
			Comp("card", card).With(newCardPropsBuilder().Title("c").Build()),
		),
	)

	var tags []string
	Walk(root, func(n Node) bool {
		switch x := n.(type) {
		case *VTag:
			tags = append(tags, x.Tag)
		case *VComp:
			tags = append(tags, "<"+x.Name+">")
		}
		return true
	})
	if diff := cmp.Diff([]string{"div", "p", "span", "<card>", "section"}, tags); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}

	var skipped []string
	Walk(root, func(n Node) bool {
		if x, ok := n.(*VTag); ok {
			skipped = append(skipped, x.Tag)
			return x.Tag == "div"
		}
		return true
	})
	if diff := cmp.Diff([]string{"div", "p", "span", "section"}, skipped); diff != "" {
		t.Errorf("pruned walk mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	root := Fragment(
		Element("input", WithAttr("name", "first")),
		Element("div", WithClass("box"), WithChildren(Element("input", WithAttr("name", "second")))),
	)
	if el := Find(root, "name", "second"); el == nil || el.Tag != "input" {
		t.Errorf("Find(name=second) = %v", el)
	}
	if el := Find(root, "class", "box"); el == nil || el.Tag != "div" {
		t.Errorf("Find(class=box) = %v", el)
	}
	if el := Find(root, "name", "third"); el != nil {
		t.Errorf("Find(name=third) = %v, want nil", el)
	}
}

func TestCheckKeys(t *testing.T) {
	type tc struct {
		node    Node
		wantKey Key
	}

	tests := map[string]tc{
		"unkeyed": {
			node: Fragment(Element("li"), Element("li")),
		},
		"unique": {
			node: Fragment(Element("li", WithKey(1)), Element("li", WithKey(2)), KeyedFragment(3)),
		},
		"duplicate": {
			node:    Element("ul", WithChildren(Element("li", WithKey("a")), Element("li", WithKey("a")))),
			wantKey: "a",
		},
		"duplicate nested in list": {
			node:    Element("div", WithChildren(For([]Node{KeyedFragment("x"), KeyedFragment("x")}))),
			wantKey: "x",
		},
		"same key at different levels": {
			node: Fragment(Element("li", WithKey("a"), WithChildren(Element("b", WithKey("a"))))),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := CheckKeys(tt.node)
			if tt.wantKey == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var dup *DuplicateKeyError
			if !errors.As(err, &dup) || dup.Key != tt.wantKey {
				t.Errorf("error = %v, want duplicate key %q", err, tt.wantKey)
			}
		})
	}
}

func TestNodeRefMap(t *testing.T) {
	refs := NewNodeRefMap[int]()
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Element("li", WithKey(i), WithRef(refs.Ref(i)))
		}()
	}
	wg.Wait()

	if refs.Len() != 10 {
		t.Errorf("Len() = %d, want 10", refs.Len())
	}
	if el := refs.Get(3); el == nil || el.Key != "3" {
		t.Errorf("Get(3) = %v", el)
	}
	if refs.Get(42) != nil {
		t.Error("Get(42) returned an element")
	}

	r := NewNodeRef()
	if r.IsSet() {
		t.Error("new ref is set")
	}
}
