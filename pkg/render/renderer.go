package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vango-dev/daisy/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Intended for inspection output; it changes whitespace between elements.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer handles server-side rendering of VNode trees to HTML.
// A Renderer holds no per-render state and is safe for concurrent use.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

// HTML renders node with a default renderer. Rendering into memory only
// fails on malformed trees, in which case the error text is returned.
func HTML(node *vdom.VNode) string {
	out, err := defaultRenderer.RenderToString(node)
	if err != nil {
		return err.Error()
	}
	return out
}

var defaultRenderer = NewRenderer(RendererConfig{})

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		return r.writeString(w, escapeHTML(node.Text))
	case vdom.KindFragment:
		return r.renderChildren(w, node.Children, depth)
	case vdom.KindComponent:
		if node.Comp == nil {
			return nil
		}
		return r.renderNode(w, node.Comp.Render(), depth)
	case vdom.KindRaw:
		return r.writeString(w, node.Text)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("element without tag")
	}

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if err := r.writeString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if err := r.writeString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			return r.writeString(w, "\n")
		}
		return nil
	}

	if rawHTML, ok := node.Props["dangerouslySetInnerHTML"].(string); ok {
		if err := r.writeString(w, rawHTML); err != nil {
			return err
		}
	} else {
		hasBlockChildren := !isInlineElement(tag) && hasElementChild(node)
		if r.config.Pretty && hasBlockChildren {
			r.writeString(w, "\n")
		}
		if err := r.renderChildren(w, node.Children, depth+1); err != nil {
			return err
		}
		if r.config.Pretty && hasBlockChildren {
			r.writeIndent(w, depth)
		}
	}

	if err := r.writeString(w, "</"+tag+">"); err != nil {
		return err
	}
	if r.config.Pretty {
		return r.writeString(w, "\n")
	}
	return nil
}

// hasElementChild reports whether any child renders as its own element.
func hasElementChild(node *vdom.VNode) bool {
	for _, child := range node.Children {
		if child != nil && (child.Kind == vdom.KindElement || child.Kind == vdom.KindComponent) {
			return true
		}
	}
	return false
}

func (r *Renderer) renderChildren(w io.Writer, children []*vdom.VNode, depth int) error {
	for _, child := range children {
		if err := r.renderNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

// leadingAttrs are emitted before all other attributes, in this order.
var leadingAttrs = []string{"class", "id"}

// renderAttributes renders all attributes for an element: class and id
// first, then the rest sorted by name.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		if key == "class" || key == "id" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range leadingAttrs {
		if value, ok := node.Props[key]; ok {
			if err := r.renderAttribute(w, key, value); err != nil {
				return err
			}
		}
	}
	for _, key := range keys {
		if err := r.renderAttribute(w, key, node.Props[key]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderAttribute(w io.Writer, key string, value any) error {
	// Internal props are not attributes
	if strings.HasPrefix(key, "_") {
		return nil
	}
	switch key {
	case "key", "dangerouslySetInnerHTML":
		return nil
	case "className":
		key = "class"
	case "htmlFor":
		key = "for"
	}

	if isBooleanAttr(key) {
		if b, ok := value.(bool); ok {
			if !b {
				return nil
			}
			return r.writeString(w, " "+key)
		}
	}

	strValue := attrToString(value)
	if strValue == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(strValue))
	return err
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case float32:
		return formatFloat(float64(v))
	case float64:
		return formatFloat(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatFloat renders floats in their shortest decimal form: 50, 12.5, 0.25.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (r *Renderer) writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}
