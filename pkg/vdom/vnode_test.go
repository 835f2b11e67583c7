package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeAttr(t *testing.T) {
	var nilNode *VNode
	if got := nilNode.Attr("class"); got != nil {
		t.Errorf("nil node Attr = %v, want nil", got)
	}

	node := Div(Class("card"), ID("main"))
	if got := node.Attr("id"); got != "main" {
		t.Errorf("Attr(id) = %v, want main", got)
	}
	if got := node.ClassName(); got != "card" {
		t.Errorf("ClassName() = %q, want card", got)
	}
	if got := Text("x").ClassName(); got != "" {
		t.Errorf("text ClassName() = %q, want empty", got)
	}
}

func TestVNodeWalk(t *testing.T) {
	tree := Div(
		Ul(Li("one"), Li("two")),
		P("three"),
	)

	var tags []string
	tree.Walk(func(n *VNode) bool {
		if n.Kind == KindElement {
			tags = append(tags, n.Tag)
		}
		return true
	})
	want := []string{"div", "ul", "li", "li", "p"}
	if len(tags) != len(want) {
		t.Fatalf("visited %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tags[%d] = %s, want %s", i, tags[i], want[i])
		}
	}

	count := 0
	tree.Walk(func(n *VNode) bool {
		count++
		return n.Tag != "ul"
	})
	// div, ul (children skipped), p, text
	if count != 4 {
		t.Errorf("pruned walk visited %d nodes, want 4", count)
	}
}

func TestFuncComponent(t *testing.T) {
	comp := Func(func() *VNode { return Span("hi") })
	node := comp.Render()
	if node.Tag != "span" {
		t.Errorf("Render().Tag = %s, want span", node.Tag)
	}
}

func TestAttrIsEmpty(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	if ID("x").IsEmpty() {
		t.Error("ID attr should not be empty")
	}
}
