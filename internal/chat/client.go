package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is the error body the backend returns for a failed request.
// Message is empty when the server sent no usable body.
type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("chat api error: status %d", e.Status)
}

// Client talks to the livechat backend over plain request/response HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchConversation returns the current conversation snapshot for clientID.
func (c *Client) FetchConversation(ctx context.Context, clientID string) (Conversation, error) {
	var conv Conversation

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/chat/"+clientID, nil)
	if err != nil {
		return conv, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return conv, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return conv, decodeAPIError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&conv); err != nil {
		return conv, err
	}
	return conv, nil
}

type sendRequest struct {
	Message  string `json:"message"`
	ClientID string `json:"clientId"`
	SenderID string `json:"senderId"`
}

// SendMessage submits a visitor message. The caller sends as itself, so
// senderId is always the client id. The response body is not merged into
// any local state; the message shows up on a later fetch.
func (c *Client) SendMessage(ctx context.Context, clientID, text string) error {
	body, err := json.Marshal(sendRequest{
		Message:  text,
		ClientID: clientID,
		SenderID: clientID,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	_ = json.Unmarshal(body, apiErr)
	return apiErr
}
