package client

import (
	"context"
)

// VisionClient is implemented by every detection backend. Detect sends one
// image with the detection prompt and returns the model's raw text reply,
// expected to be a JSON array of detection records.
type VisionClient interface {
	Detect(ctx context.Context, model, prompt string, image []byte) (string, error)
}
