package gemini

import (
	"context"

	"github.com/Cyclone1070/offcode/internal/provider"
)

// GeminiProvider completes conversations with Google Gemini.
type GeminiProvider struct {
	client    GeminiClient
	modelName string
}

// New creates a new GeminiProvider with the specified client and model.
func New(client GeminiClient, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

// Complete sends the conversation and returns the model's text.
func (p *GeminiProvider) Complete(ctx context.Context, messages []provider.Message, params provider.Params) (string, error) {
	system, contents := toGeminiContents(messages)

	resp, err := p.client.GenerateContent(ctx, p.modelName, contents, toGeminiConfig(params, system))
	if err != nil {
		return "", mapGeminiError(err)
	}
	return fromGeminiResponse(resp)
}
