package gateway

import (
	"context"
	"net/http"
)

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// SendChat delivers one message to the chat assistant and returns its reply.
// Conversation state lives server-side; this is transport only.
func (c *Client) SendChat(ctx context.Context, userID, message string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/chatbot/send", nil, chatRequest{
		UserID:  userID,
		Message: message,
	})
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", rejection(resp, "/chatbot/send")
	}

	var parsed chatResponse
	if err := decodeInto(resp, &parsed); err != nil {
		return "", err
	}
	return parsed.Reply, nil
}
