package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// CodeType selects inline code or a mockup code block.
type CodeType int

const (
	CodeTypeInline CodeType = iota
	CodeTypeBlock
)

// String names the code type, "inline" or "block".
func (t CodeType) String() string {
	switch t {
	case CodeTypeInline:
		return "inline"
	case CodeTypeBlock:
		return "block"
	}
	return ""
}

// CodeProps configures Code.
type CodeProps struct {
	ID    string
	Class string
	Type  CodeType
}

// Code renders <code> for inline snippets and <pre class="mockup-code">
// for blocks. Inline code carries no base token.
func Code(p CodeProps, children ...any) *vdom.VNode {
	if p.Type == CodeTypeBlock {
		return element("pre", classes("mockup-code", p.Class), p.ID, children)
	}
	return element("code", classes(p.Class), p.ID, children)
}
