package vtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/daisy/pkg/render"
	"github.com/vango-dev/daisy/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string.
// Render errors yield an empty string; use MustRender to fail the test
// instead.
//
// Example:
//
//	html := vtest.RenderToString(daisy.Kbd(daisy.KbdProps{}, "K"))
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	out, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return out
}

// MustRender renders node and fails the test on error.
func MustRender(t testing.TB, node *vdom.VNode) string {
	t.Helper()
	out, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	require.NoError(t, err, "render failed")
	return out
}

// Doc is a parsed rendering of a node, rooted at a synthetic container
// element so fragments with several top-level nodes can be queried.
type Doc struct {
	HTML string
	Root *html.Node
}

// Parse renders node and parses the markup as a body fragment.
//
// Example:
//
//	doc := vtest.Parse(t, daisy.Rating(daisy.RatingProps{Value: 3}))
//	inputs := doc.FindAll("input")
func Parse(t testing.TB, node *vdom.VNode) *Doc {
	t.Helper()
	out := MustRender(t, node)
	return ParseString(t, out)
}

// ParseString parses already-rendered markup.
func ParseString(t testing.TB, markup string) *Doc {
	t.Helper()
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	require.NoError(t, err, "parse failed for %q", truncate(markup, 200))

	root := &html.Node{Type: html.ElementNode, Data: "root"}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Doc{HTML: markup, Root: root}
}

// First returns the first top-level element.
func (d *Doc) First() *html.Node {
	for c := d.Root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// Find returns the first element with the given tag in document order.
func (d *Doc) Find(tag string) *html.Node {
	all := d.FindAll(tag)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAll returns every element with the given tag in document order.
func (d *Doc) FindAll(tag string) []*html.Node {
	return collect(d.Root, func(n *html.Node) bool { return n.Data == tag })
}

// FindByClass returns every element whose class list contains class.
func (d *Doc) FindByClass(class string) []*html.Node {
	return collect(d.Root, func(n *html.Node) bool { return HasClass(n, class) })
}

func collect(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && match(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// Attr returns the value of an attribute and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// ClassList returns the element's class tokens in order.
func ClassList(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether class appears in the element's class list.
func HasClass(n *html.Node, class string) bool {
	for _, c := range ClassList(n) {
		if c == class {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// ExpectContains asserts that rendered output contains expected substring.
//
// Example:
//
//	vtest.ExpectContains(t, node, "data-theme=dark")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	out := RenderToString(node)
	if !strings.Contains(out, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(out, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	out := RenderToString(node)
	if strings.Contains(out, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(out, 500))
	}
}

// ExpectElement asserts that rendered output contains a specific tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	out := RenderToString(node)
	if !strings.Contains(out, "<"+tag) {
		t.Errorf("expected rendered output to contain <%s> element, got:\n%s", tag, truncate(out, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, node, "class", "btn btn-primary")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	out := RenderToString(node)
	needle := attr + `="` + render.EscapeString(value) + `"`
	if !strings.Contains(out, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(out, 500))
	}
}

// ExpectClass asserts that the root element's class attribute is exactly
// want, token order included.
func ExpectClass(t testing.TB, node *vdom.VNode, want string) {
	t.Helper()
	doc := Parse(t, node)
	got, _ := Attr(doc.First(), "class")
	if got != want {
		t.Errorf("class = %q, want %q", got, want)
	}
}

// truncate truncates a string to limit bytes with ellipsis.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
