package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Client wraps the Gemini API client.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Gemini client with the given API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %v", err)
	}
	return &Client{client: c}, nil
}

// Detect sends one image plus the detection prompt and returns the model's
// JSON text reply. The request demands an application/json response so the
// model does not wrap the array in prose or code fences.
func (c *Client) Detect(ctx context.Context, model, prompt string, image []byte) (string, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 120*time.Second)
		defer cancel()
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(image, "image/jpeg"),
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %v", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return text, nil
}
