package tests

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"livechat/internal/chat"
	"livechat/internal/server"
)

// Round-trips the widget's HTTP client against the real backend router and
// store, the way a running widget and `livechat serve` talk to each other.
func TestClientAgainstBackend_RoundTrip(t *testing.T) {
	store, err := server.OpenStore(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	srv := httptest.NewServer(server.NewRouter(server.NewHandler(store, chat.NewLogger(io.Discard))))
	defer srv.Close()

	ctx := context.Background()
	client := chat.NewClient(srv.URL)
	clientID := chat.NewClientID()

	// Fresh identity: first poll sees an empty, non-nil conversation.
	conv, err := client.FetchConversation(ctx, clientID)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if len(conv.Messages) != 0 {
		t.Fatalf("fresh conversation has %d messages", len(conv.Messages))
	}

	// Visitor sends; the message shows up on the next poll, attributed to
	// the visitor.
	if err := client.SendMessage(ctx, clientID, "hi"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	conv, err = client.FetchConversation(ctx, clientID)
	if err != nil {
		t.Fatalf("fetch after send: %v", err)
	}
	if len(conv.Messages) != 1 || conv.Messages[0].SenderID != clientID {
		t.Fatalf("unexpected conversation after send: %+v", conv)
	}

	// Agent reply lands behind the visitor's message in arrival order.
	if _, err := store.Append(ctx, clientID, "agent-1", "hello, how can we help?"); err != nil {
		t.Fatalf("agent append: %v", err)
	}
	conv, err = client.FetchConversation(ctx, clientID)
	if err != nil {
		t.Fatalf("fetch after reply: %v", err)
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(conv.Messages))
	}
	if conv.Messages[0].Message != "hi" || conv.Messages[1].SenderID != "agent-1" {
		t.Fatalf("arrival order lost: %+v", conv.Messages)
	}

	// Another client's conversation stays isolated.
	other, err := client.FetchConversation(ctx, chat.NewClientID())
	if err != nil {
		t.Fatal(err)
	}
	if len(other.Messages) != 0 {
		t.Fatalf("conversations leaked across clients: %+v", other)
	}
}

func TestClientAgainstBackend_ValidationError(t *testing.T) {
	store, err := server.OpenStore(filepath.Join(t.TempDir(), "chat.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	srv := httptest.NewServer(server.NewRouter(server.NewHandler(store, chat.NewLogger(io.Discard))))
	defer srv.Close()

	err = chat.NewClient(srv.URL).SendMessage(context.Background(), chat.NewClientID(), "   ")
	var apiErr *chat.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "message is required" {
		t.Fatalf("message = %q, want backend validation text", apiErr.Message)
	}
}
