package gemini

import (
	"context"

	"google.golang.org/genai"
)

// fakeClient answers GenerateContent with respond and counts the requests.
type fakeClient struct {
	respond func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	calls   int
}

func (f *fakeClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	return f.respond(ctx, model, contents, config)
}
