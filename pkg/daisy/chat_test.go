package daisy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vango-dev/daisy/pkg/vtest"
)

func TestChat(t *testing.T) {
	node := Chat(ChatProps{Class: "chat-start"},
		ChatHeader(ChatHeaderProps{}, "Obi-Wan"),
		ChatBubble(ChatBubbleProps{Color: ChatBubbleColorSuccess}, "Hello there"),
		ChatFooter(ChatFooterProps{}, "Delivered"),
	)
	got := vtest.MustRender(t, node)
	assert.Equal(t,
		`<div class="chat chat-start"><div class="chat-header">Obi-Wan</div><div class="chat-bubble chat-bubble-success">Hello there</div><div class="chat-footer">Delivered</div></div>`,
		got)
}

func TestChatBubble_Colors(t *testing.T) {
	vtest.ExpectClass(t, ChatBubble(ChatBubbleProps{}), "chat-bubble")
	for _, c := range []ChatBubbleColor{
		ChatBubbleColorPrimary, ChatBubbleColorSecondary, ChatBubbleColorAccent,
		ChatBubbleColorInfo, ChatBubbleColorSuccess, ChatBubbleColorWarning, ChatBubbleColorError,
	} {
		vtest.ExpectClass(t, ChatBubble(ChatBubbleProps{Color: c}), "chat-bubble "+c.String())
	}
}
