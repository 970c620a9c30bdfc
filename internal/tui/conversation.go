package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"livechat/internal/chat"
)

const welcomeText = "Hi, welcome to live support.\nLeave a message and an agent will reply here."

// renderConversation renders the merged conversation: the static welcome
// block first, server messages in arrival order, then the optimistic
// pending send last. The viewer's own messages sit right, agent messages
// left.
func renderConversation(t Theme, conv chat.Conversation, clientID, pending string, width int) string {
	if width < 20 {
		width = 20
	}
	var b strings.Builder

	b.WriteString(entry(width, lipgloss.Left, t.RoleAgent.Render("Support"), welcomeText))

	for _, msg := range conv.Messages {
		meta := t.MsgMeta.Render(humanize.Time(msg.CreatedAt))
		if msg.SenderID == clientID {
			b.WriteString(entry(width, lipgloss.Right, t.RoleYou.Render("You")+" "+meta, msg.Message))
		} else {
			b.WriteString(entry(width, lipgloss.Left, t.RoleAgent.Render("Agent")+" "+meta, msg.Message))
		}
	}

	if pending != "" {
		header := t.RolePending.Render("You") + " " + t.MsgMeta.Render("Sending…")
		b.WriteString(entry(width, lipgloss.Right, header, pending))
	}

	return b.String()
}

func entry(width int, side lipgloss.Position, header, body string) string {
	wrapped := body
	if maxw := width * 85 / 100; lipgloss.Width(body) > maxw {
		wrapped = lipgloss.NewStyle().Width(maxw).Render(body)
	}
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, side, header))
	b.WriteString("\n")
	for _, line := range strings.Split(wrapped, "\n") {
		b.WriteString(lipgloss.PlaceHorizontal(width, side, line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
