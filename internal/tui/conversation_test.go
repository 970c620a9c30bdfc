package tui

import (
	"strings"
	"testing"
	"time"

	"livechat/internal/chat"
)

func TestRenderConversation_OrderIsServerThenPending(t *testing.T) {
	conv := chat.Conversation{Messages: []chat.Message{
		{SenderID: "agent-1", ClientID: "client-1", Message: "m1", CreatedAt: time.Now()},
		{SenderID: "client-1", ClientID: "client-1", Message: "m2", CreatedAt: time.Now()},
	}}

	out := renderConversation(NewNoColorTheme(), conv, "client-1", "m3", 80)

	i1 := strings.Index(out, "m1")
	i2 := strings.Index(out, "m2")
	i3 := strings.Index(out, "m3")
	if i1 < 0 || i2 < 0 || i3 < 0 {
		t.Fatalf("missing messages in render:\n%s", out)
	}
	if !(i1 < i2 && i2 < i3) {
		t.Fatalf("order wrong: m1=%d m2=%d m3=%d", i1, i2, i3)
	}
	if !strings.Contains(out, "Sending…") {
		t.Fatal("pending row not marked as in-flight")
	}
}

func TestRenderConversation_TagsSides(t *testing.T) {
	conv := chat.Conversation{Messages: []chat.Message{
		{SenderID: "client-1", ClientID: "client-1", Message: "mine", CreatedAt: time.Now()},
		{SenderID: "agent-1", ClientID: "client-1", Message: "theirs", CreatedAt: time.Now()},
	}}

	out := renderConversation(NewNoColorTheme(), conv, "client-1", "", 80)

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "mine"):
			if !strings.HasPrefix(line, " ") {
				t.Fatalf("own message not right-aligned: %q", line)
			}
		case strings.Contains(line, "theirs"):
			if strings.HasPrefix(line, " ") {
				t.Fatalf("agent message not left-aligned: %q", line)
			}
		}
	}
}

func TestRenderConversation_WelcomeBlockFirst(t *testing.T) {
	out := renderConversation(NewNoColorTheme(), chat.Conversation{}, "client-1", "", 80)
	if !strings.Contains(out, "welcome to live support") {
		t.Fatalf("welcome block missing:\n%s", out)
	}
}
