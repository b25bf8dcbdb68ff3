package chat

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// Client proxies the help-bot chats to the Gemini API. Chats are held in
// memory only, keyed by the owning user's id, and vanish on restart.
type Client struct {
	mu     sync.Mutex
	client *genai.Client
	model  string
	chats  map[int]*genai.Chat
}

// NewClient dials the Gemini API with the given key.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		client: client,
		model:  model,
		chats:  make(map[int]*genai.Chat),
	}, nil
}

// Generate starts a chat for the user and sends the personality primer.
// Returns false without side effects when the user already has a chat.
func (c *Client) Generate(ctx context.Context, id int, primer string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.chats[id]; ok {
		return false, nil
	}
	chat, err := c.client.Chats.Create(ctx, c.model, nil, nil)
	if err != nil {
		return false, err
	}
	if _, err := chat.SendMessage(ctx, genai.Part{Text: primer}); err != nil {
		return false, err
	}
	c.chats[id] = chat
	return true, nil
}

// Submit relays a message on the user's chat and returns the reply text.
// The second result is false when the user has no active chat.
func (c *Client) Submit(ctx context.Context, id int, message string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	chat, ok := c.chats[id]
	if !ok {
		return "", false, nil
	}
	res, err := chat.SendMessage(ctx, genai.Part{Text: message})
	if err != nil {
		return "", true, err
	}
	return res.Text(), true, nil
}

// Delete drops the user's chat, reporting whether one existed.
func (c *Client) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.chats[id]; !ok {
		return false
	}
	delete(c.chats, id)
	return true
}

// Exists reports whether the user has an active chat.
func (c *Client) Exists(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.chats[id]
	return ok
}
