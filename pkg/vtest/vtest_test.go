package vtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/daisy/pkg/vdom"
	"github.com/vango-dev/daisy/pkg/vtest"
)

func sample() *vdom.VNode {
	return vdom.Div(vdom.Class("card", "shadow"), vdom.ID("c1"),
		vdom.H2(vdom.Class("card-title"), "Hello"),
		vdom.P("Body ", vdom.Strong("text")),
		vdom.Input(vdom.Type("checkbox"), vdom.Checked()),
	)
}

func TestRenderToString(t *testing.T) {
	out := vtest.RenderToString(vdom.Span("hi"))
	assert.Equal(t, "<span>hi</span>", out)
}

func TestRenderToString_Error(t *testing.T) {
	// An element without a tag cannot be rendered.
	out := vtest.RenderToString(&vdom.VNode{Kind: vdom.KindElement})
	assert.Empty(t, out)
}

func TestParse_Queries(t *testing.T) {
	doc := vtest.Parse(t, sample())

	root := doc.First()
	require.NotNil(t, root)
	assert.Equal(t, "div", root.Data)
	assert.Equal(t, []string{"card", "shadow"}, vtest.ClassList(root))

	id, ok := vtest.Attr(root, "id")
	assert.True(t, ok)
	assert.Equal(t, "c1", id)

	title := doc.Find("h2")
	require.NotNil(t, title)
	assert.Equal(t, "Hello", vtest.Text(title))
	assert.True(t, vtest.HasClass(title, "card-title"))

	assert.Equal(t, "Body text", vtest.Text(doc.Find("p")))
	assert.Len(t, vtest.Children(root), 3)

	input := doc.Find("input")
	_, checked := vtest.Attr(input, "checked")
	assert.True(t, checked)
	_, disabled := vtest.Attr(input, "disabled")
	assert.False(t, disabled)
}

func TestParse_MultipleRoots(t *testing.T) {
	doc := vtest.Parse(t, vdom.Fragment(vdom.Li("a"), vdom.Li("b")))
	assert.Len(t, doc.FindAll("li"), 2)
	assert.Nil(t, doc.Find("ul"))
}

func TestFindByClass(t *testing.T) {
	doc := vtest.Parse(t, vdom.Ul(
		vdom.Li(vdom.Class("item")),
		vdom.Li(vdom.Class("item", "active")),
		vdom.Li(vdom.Class("other")),
	))
	assert.Len(t, doc.FindByClass("item"), 2)
	assert.Len(t, doc.FindByClass("active"), 1)
	assert.Empty(t, doc.FindByClass("missing"))
}

func TestAttr_NilNode(t *testing.T) {
	v, ok := vtest.Attr(nil, "id")
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Empty(t, vtest.Text(nil))
}

func TestExpectHelpers(t *testing.T) {
	node := sample()
	vtest.ExpectContains(t, node, "Hello")
	vtest.ExpectNotContains(t, node, "Goodbye")
	vtest.ExpectElement(t, node, "h2")
	vtest.ExpectAttribute(t, node, "class", "card shadow")
	vtest.ExpectClass(t, node, "card shadow")
}
