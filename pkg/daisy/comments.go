package daisy

import "github.com/vango-dev/daisy/pkg/vdom"

// CommentsColor sets the color of a comment thread or a single comment.
type CommentsColor int

const (
	CommentsColorNeutral CommentsColor = iota + 1
	CommentsColorPrimary
	CommentsColorSecondary
)

// String returns the class token for c, or "" when unset.
func (c CommentsColor) String() string {
	switch c {
	case CommentsColorNeutral:
		return "chat-neutral"
	case CommentsColorPrimary:
		return "chat-primary"
	case CommentsColorSecondary:
		return "chat-secondary"
	}
	return ""
}

// CommentsSize sets the thread size modifier.
type CommentsSize int

const (
	CommentsSizeSmall CommentsSize = iota + 1
	CommentsSizeMedium
	CommentsSizeLarge
)

// String returns the class token for s, or "" when unset.
func (s CommentsSize) String() string {
	switch s {
	case CommentsSizeSmall:
		return "chat-sm"
	case CommentsSizeMedium:
		return "chat-md"
	case CommentsSizeLarge:
		return "chat-lg"
	}
	return ""
}

// CommentsProps configures Comments.
type CommentsProps struct {
	ID    string
	Class string
	Color CommentsColor
	Size  CommentsSize
}

// Comments is a threaded discussion container styled as a chat.
func Comments(p CommentsProps, children ...any) *vdom.VNode {
	return element("div", classes("chat", p.Color.String(), p.Size.String(), p.Class), p.ID, children)
}

// CommentProps configures a single comment bubble. Author, Avatar,
// Timestamp, Liked and Replies describe the comment for callers that
// pass the same props to CommentHeader or their own actions row; the
// bubble itself only reads Color.
type CommentProps struct {
	ID        string
	Class     string
	Color     CommentsColor
	Author    string
	Avatar    string
	Timestamp string
	Liked     bool
	Replies   int
}

// Comment renders one comment bubble. Author, Avatar, Timestamp, Liked and
// Replies are carried for callers and do not affect the markup.
func Comment(p CommentProps, children ...any) *vdom.VNode {
	return element("div", classes("chat-bubble", p.Color.String(), p.Class), p.ID, children)
}

// CommentHeaderProps configures CommentHeader.
type CommentHeaderProps struct {
	ID        string
	Class     string
	Author    string
	Avatar    string
	Timestamp string
}

// CommentHeader renders the avatar, author and timestamp (each only when
// set) followed by children.
func CommentHeader(p CommentHeaderProps, children ...any) *vdom.VNode {
	var avatar, author, stamp *vdom.VNode
	if p.Avatar != "" {
		avatar = vdom.Div(vdom.Class("chat-image"),
			vdom.Img(vdom.Class("avatar-sm"), vdom.Src(p.Avatar)),
		)
	}
	if p.Author != "" {
		author = vdom.Div(vdom.Class("chat-name"), p.Author)
	}
	if p.Timestamp != "" {
		stamp = vdom.Time_(vdom.Class("chat-time"), p.Timestamp)
	}
	return element("div", classes("chat-header", p.Class), p.ID,
		avatar, author, stamp, children,
	)
}

// CommentBodyProps configures CommentBody.
type CommentBodyProps struct {
	ID    string
	Class string
}

// CommentBody renders the comment text.
func CommentBody(p CommentBodyProps, children ...any) *vdom.VNode {
	return simple("chat-content", p.ID, p.Class, children)
}

// CommentActionsProps configures CommentActions.
type CommentActionsProps struct {
	ID    string
	Class string
}

// CommentActions renders the row of reply and like controls.
func CommentActions(p CommentActionsProps, children ...any) *vdom.VNode {
	return simple("chat-footer", p.ID, p.Class, children)
}
