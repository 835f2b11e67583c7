package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// ChatBubbleColor sets the bubble background.
type ChatBubbleColor int

const (
	ChatBubbleColorPrimary ChatBubbleColor = iota + 1
	ChatBubbleColorSecondary
	ChatBubbleColorAccent
	ChatBubbleColorInfo
	ChatBubbleColorSuccess
	ChatBubbleColorWarning
	ChatBubbleColorError
)

// String returns the class token for c, or "" when unset.
func (c ChatBubbleColor) String() string {
	switch c {
	case ChatBubbleColorPrimary:
		return "chat-bubble-primary"
	case ChatBubbleColorSecondary:
		return "chat-bubble-secondary"
	case ChatBubbleColorAccent:
		return "chat-bubble-accent"
	case ChatBubbleColorInfo:
		return "chat-bubble-info"
	case ChatBubbleColorSuccess:
		return "chat-bubble-success"
	case ChatBubbleColorWarning:
		return "chat-bubble-warning"
	case ChatBubbleColorError:
		return "chat-bubble-error"
	}
	return ""
}

// ChatProps configures Chat.
type ChatProps struct {
	ID    string
	Class string
}

// Chat renders one message row.
func Chat(p ChatProps, children ...any) *vdom.VNode {
	return simple("chat", p.ID, p.Class, children)
}

// ChatHeaderProps configures ChatHeader.
type ChatHeaderProps struct {
	ID    string
	Class string
}

// ChatHeader renders the line above a bubble, usually name and time.
func ChatHeader(p ChatHeaderProps, children ...any) *vdom.VNode {
	return simple("chat-header", p.ID, p.Class, children)
}

// ChatFooterProps configures ChatFooter.
type ChatFooterProps struct {
	ID    string
	Class string
}

// ChatFooter renders the line below a bubble.
func ChatFooter(p ChatFooterProps, children ...any) *vdom.VNode {
	return simple("chat-footer", p.ID, p.Class, children)
}

// ChatBubbleProps configures ChatBubble.
type ChatBubbleProps struct {
	ID    string
	Class string
	Color ChatBubbleColor
}

// ChatBubble renders the message text.
func ChatBubble(p ChatBubbleProps, children ...any) *vdom.VNode {
	return element("div", classes("chat-bubble", p.Color.String(), p.Class), p.ID, children)
}
