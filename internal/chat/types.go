package chat

import "time"

// Message is one entry in a conversation, in the wire format the backend
// uses. SenderID equals ClientID when the visitor wrote the message;
// support agents write with their own sender id.
type Message struct {
	SenderID  string    `json:"senderId"`
	ClientID  string    `json:"clientId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Conversation is the server-owned message history for one client. The
// widget holds a read-only snapshot refreshed by polling and never mutates
// or reorders it.
type Conversation struct {
	Messages []Message `json:"messages"`
}
