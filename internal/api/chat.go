package api

import (
	"fmt"
	"io"

	"github.com/mentorbridge/dashboard/internal/api/types"
)

// ListConversations fetches the caller's conversations
func (c *Client) ListConversations() ([]types.Conversation, error) {
	res, err := c.Get("/chat/", nil)
	if err != nil {
		return nil, err
	}

	var conversations []types.Conversation
	if err := res.Decode(&conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// ChatHistory fetches the messages of a conversation
func (c *Client) ChatHistory(conversationID string) ([]types.ChatMessage, error) {
	res, err := c.Get(fmt.Sprintf("/chat/%s/messages", conversationID), nil)
	if err != nil {
		return nil, err
	}

	var messages []types.ChatMessage
	if err := res.Decode(&messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// ChatMessageInput is an outgoing chat message. When Media is set the message is sent
// as a multipart form; otherwise it is plain JSON.
type ChatMessageInput struct {
	Body string `json:"body"`

	Media         io.Reader `json:"-"`
	MediaFilename string    `json:"-"`
}

// SendChatMessage posts a message to a conversation
func (c *Client) SendChatMessage(conversationID string, input ChatMessageInput) (*types.ChatMessage, error) {
	var payload Payload
	if input.Media != nil {
		payload = NewMultipart().
			AddField("body", input.Body).
			AddFile("media", input.MediaFilename, input.Media)
	} else {
		payload = JSON(input)
	}

	res, err := c.Post(fmt.Sprintf("/chat/%s/messages", conversationID), payload)
	if err != nil {
		return nil, err
	}

	var message types.ChatMessage
	if err := res.Decode(&message); err != nil {
		return nil, err
	}
	return &message, nil
}

// ClearConversation deletes every message in a conversation
func (c *Client) ClearConversation(conversationID string) error {
	_, err := c.Delete(fmt.Sprintf("/chat/%s/messages", conversationID))
	return err
}

// RenameConversation updates a conversation's title
func (c *Client) RenameConversation(conversationID, title string) (*types.Conversation, error) {
	res, err := c.Patch(
		fmt.Sprintf("/chat/%s", conversationID),
		JSON(map[string]string{"title": title}),
	)
	if err != nil {
		return nil, err
	}

	var conversation types.Conversation
	if err := res.Decode(&conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}
