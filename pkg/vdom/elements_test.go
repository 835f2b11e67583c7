package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Div(Class("card"), ID("main"))
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
	})

	t.Run("with child nodes", func(t *testing.T) {
		node := Div(H1(Text("Title")), P(Text("Content")))
		if len(node.Children) != 2 {
			t.Fatalf("Children len = %v, want 2", len(node.Children))
		}
		if node.Children[0].Tag != "h1" {
			t.Errorf("Child tag = %v, want h1", node.Children[0].Tag)
		}
	})

	t.Run("with string shorthand", func(t *testing.T) {
		node := Div("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText || node.Children[0].Text != "Hello" {
			t.Errorf("Child = %+v, want text Hello", node.Children[0])
		}
	})

	t.Run("nil arguments are skipped", func(t *testing.T) {
		var missing *VNode
		node := Div(nil, missing, Class("a"), nil)
		if len(node.Children) != 0 {
			t.Errorf("Children len = %v, want 0", len(node.Children))
		}
		if node.Props["class"] != "a" {
			t.Errorf("class = %v, want a", node.Props["class"])
		}
	})

	t.Run("empty attribute ignored", func(t *testing.T) {
		node := Div(Attr{}, AttrIf(false, Disabled()))
		if len(node.Props) != 0 {
			t.Errorf("Props = %v, want empty", node.Props)
		}
	})

	t.Run("attribute slices and nested args", func(t *testing.T) {
		attrs := []Attr{ID("x"), Role("tab")}
		node := Div(attrs, []any{Class("c"), "text", []*VNode{Span(), nil}})
		if node.Props["id"] != "x" || node.Props["role"] != "tab" || node.Props["class"] != "c" {
			t.Errorf("Props = %v", node.Props)
		}
		if len(node.Children) != 2 {
			t.Fatalf("Children len = %v, want 2", len(node.Children))
		}
	})

	t.Run("key attribute", func(t *testing.T) {
		node := Li(Key(7))
		if node.Key != "7" {
			t.Errorf("Key = %q, want 7", node.Key)
		}
	})

	t.Run("component child", func(t *testing.T) {
		node := Div(Func(func() *VNode { return Span() }))
		if len(node.Children) != 1 || node.Children[0].Kind != KindComponent {
			t.Fatalf("Children = %+v, want one component", node.Children)
		}
	})
}

func TestVoidElements(t *testing.T) {
	voids := []string{"br", "hr", "img", "input", "link", "meta"}
	for _, tag := range voids {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false, want true", tag)
		}
	}
	if IsVoidElement("div") {
		t.Error("IsVoidElement(div) = true, want false")
	}
}

func TestElementTags(t *testing.T) {
	tests := []struct {
		fn  func(...any) *VNode
		tag string
	}{
		{Html, "html"}, {Head, "head"}, {Body, "body"}, {Title, "title"},
		{Meta, "meta"}, {Link, "link"}, {Header, "header"}, {Footer, "footer"},
		{Main, "main"}, {Nav, "nav"}, {Section, "section"}, {Aside, "aside"},
		{H1, "h1"}, {H2, "h2"}, {H3, "h3"}, {H4, "h4"},
		{Div, "div"}, {P, "p"}, {Span, "span"}, {Pre, "pre"},
		{Ul, "ul"}, {Li, "li"}, {Hr, "hr"}, {A, "a"}, {Strong, "strong"},
		{Small, "small"}, {Code, "code"}, {Kbd, "kbd"}, {Time_, "time"}, {Br, "br"},
		{Input, "input"}, {Select, "select"}, {Option, "option"}, {Button, "button"},
		{Label, "label"}, {Table, "table"}, {Thead, "thead"}, {Tbody, "tbody"},
		{Tr, "tr"}, {Th, "th"}, {Td, "td"}, {Img, "img"}, {Svg, "svg"},
		{Script, "script"}, {Style, "style"},
	}

	for _, tt := range tests {
		if got := tt.fn().Tag; got != tt.tag {
			t.Errorf("Tag = %s, want %s", got, tt.tag)
		}
	}
}

func TestEl(t *testing.T) {
	node := El("x-widget", Class("w"), "body")
	if node.Tag != "x-widget" {
		t.Errorf("Tag = %v, want x-widget", node.Tag)
	}
	if node.Props["class"] != "w" || len(node.Children) != 1 {
		t.Errorf("node = %+v", node)
	}
}
