package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/daisy/pkg/vdom"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{
			name: "nil node",
			node: nil,
			want: "",
		},
		{
			name: "text",
			node: vdom.Text("Hello, World!"),
			want: "Hello, World!",
		},
		{
			name: "escaped text",
			node: vdom.Text("<script>alert('xss')</script>"),
			want: "&lt;script&gt;alert(&#39;xss&#39;)&lt;/script&gt;",
		},
		{
			name: "element with children",
			node: vdom.Div(vdom.Class("container"), vdom.H1("Title"), vdom.P("Content")),
			want: `<div class="container"><h1>Title</h1><p>Content</p></div>`,
		},
		{
			name: "void element",
			node: vdom.Input(vdom.Type("text"), vdom.Name("email")),
			want: `<input name="email" type="text">`,
		},
		{
			name: "class and id lead",
			node: vdom.A(vdom.Target("_blank"), vdom.Href("/x"), vdom.ID("l"), vdom.Class("link")),
			want: `<a class="link" id="l" href="/x" target="_blank"></a>`,
		},
		{
			name: "boolean attributes",
			node: vdom.Input(vdom.Type("checkbox"), vdom.Checked(), vdom.Attribute("disabled", false)),
			want: `<input checked type="checkbox">`,
		},
		{
			name: "non boolean true renders as string",
			node: vdom.A(vdom.AriaDisabled(true)),
			want: `<a aria-disabled="true"></a>`,
		},
		{
			name: "empty string attributes omitted",
			node: vdom.Div(vdom.ID(""), vdom.Class("")),
			want: `<div></div>`,
		},
		{
			name: "float attributes use shortest form",
			node: vdom.Div(vdom.AriaValueNow(50), vdom.AriaValueMax(12.5), vdom.AriaValueMin(0)),
			want: `<div aria-valuemax="12.5" aria-valuemin="0" aria-valuenow="50"></div>`,
		},
		{
			name: "attribute escaping",
			node: vdom.Div(vdom.TitleAttr(`say "hi" & <go>`)),
			want: `<div title="say &quot;hi&quot; &amp; &lt;go&gt;"></div>`,
		},
		{
			name: "raw html is not escaped",
			node: vdom.Span(vdom.Class("icon"), vdom.Raw("<svg></svg>")),
			want: `<span class="icon"><svg></svg></span>`,
		},
		{
			name: "fragment",
			node: vdom.Fragment(vdom.Li("a"), vdom.Li("b")),
			want: `<li>a</li><li>b</li>`,
		},
		{
			name: "component",
			node: vdom.Div(vdom.Func(func() *vdom.VNode { return vdom.Kbd("K") })),
			want: `<div><kbd>K</kbd></div>`,
		},
		{
			name: "key is not rendered",
			node: vdom.Li(vdom.Key("k1"), "x"),
			want: `<li>x</li>`,
		},
		{
			name: "inner html prop",
			node: vdom.Script(vdom.Attribute("dangerouslySetInnerHTML", "a < b")),
			want: `<script>a < b</script>`,
		},
	}

	renderer := NewRenderer(RendererConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := renderer.RenderToString(tt.node)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.KindElement}); err == nil {
		t.Error("expected error for element without tag")
	}
	if _, err := renderer.RenderToString(&vdom.VNode{Kind: vdom.VKind(99)}); err == nil {
		t.Error("expected error for unknown node kind")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriterError(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})
	if err := renderer.RenderToWriter(failingWriter{}, vdom.Div("x")); err == nil {
		t.Error("expected write error")
	}
}

func TestRenderPretty(t *testing.T) {
	renderer := NewRenderer(RendererConfig{Pretty: true})
	got, err := renderer.RenderToString(vdom.Div(vdom.P("a"), vdom.Span("b")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<div>\n  <p>a</p>\n  <span>b</span>\n</div>\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	custom := NewRenderer(RendererConfig{Pretty: true, Indent: "\t"})
	got, _ = custom.RenderToString(vdom.Ul(vdom.Li("x")))
	if !strings.Contains(got, "\t<li>x</li>") {
		t.Errorf("custom indent not applied: %q", got)
	}
}

func TestHTML(t *testing.T) {
	if got := HTML(vdom.Kbd("Ctrl")); got != "<kbd>Ctrl</kbd>" {
		t.Errorf("HTML() = %q", got)
	}
	if got := HTML(&vdom.VNode{Kind: vdom.KindElement}); got == "" {
		t.Error("HTML() should surface the error text")
	}
}

func TestAttrToString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{false, "false"},
		{42, "42"},
		{int64(-7), "-7"},
		{uint32(9), "9"},
		{float32(0.5), "0.5"},
		{100.0, "100"},
		{0.1, "0.1"},
		{[]int{1}, "[1]"},
	}
	for _, tt := range tests {
		if got := attrToString(tt.in); got != tt.want {
			t.Errorf("attrToString(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
