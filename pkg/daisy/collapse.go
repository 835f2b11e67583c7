package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// CollapseProps configures Collapse.
type CollapseProps struct {
	ID    string
	Class string
}

// Collapse renders an expandable section.
func Collapse(p CollapseProps, children ...any) *vdom.VNode {
	return simple("collapse", p.ID, p.Class, children)
}

// CollapseTitleProps configures CollapseTitle.
type CollapseTitleProps struct {
	ID    string
	Class string
}

// CollapseTitle renders the always visible header.
func CollapseTitle(p CollapseTitleProps, children ...any) *vdom.VNode {
	return simple("collapse-title", p.ID, p.Class, children)
}

// CollapseContentProps configures CollapseContent.
type CollapseContentProps struct {
	ID    string
	Class string
}

// CollapseContent renders the hidden body.
func CollapseContent(p CollapseContentProps, children ...any) *vdom.VNode {
	return simple("collapse-content", p.ID, p.Class, children)
}
