// Package openai completes conversations against an OpenAI-compatible
// /v1/chat/completions endpoint, such as a local llama.cpp server.
package openai

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Cyclone1070/offcode/internal/provider"
)

const completionsPath = "/v1/chat/completions"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest carries llama.cpp's top_k and repeat_penalty extensions
// alongside the standard fields.
type chatRequest struct {
	Model         string        `json:"model"`
	Messages      []chatMessage `json:"messages"`
	Temperature   float64       `json:"temperature,omitempty"`
	TopP          float64       `json:"top_p,omitempty"`
	TopK          int           `json:"top_k,omitempty"`
	RepeatPenalty float64       `json:"repeat_penalty,omitempty"`
	MaxTokens     int           `json:"max_tokens,omitempty"`
	Stop          []string      `json:"stop,omitempty"`
	Stream        bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Provider is a Completer over HTTP.
type Provider struct {
	client *resty.Client
	model  string
}

// New creates a Provider. apiKey may be empty for local servers.
func New(baseURL, model, apiKey string, timeout time.Duration) *Provider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetAuthToken(apiKey)
	}
	return &Provider{client: client, model: model}
}

// Complete posts the conversation and returns the first choice's content.
func (p *Provider) Complete(ctx context.Context, messages []provider.Message, params provider.Params) (string, error) {
	body := chatRequest{
		Model:         p.model,
		Messages:      make([]chatMessage, 0, len(messages)),
		Temperature:   params.Temperature,
		TopP:          params.TopP,
		TopK:          params.TopK,
		RepeatPenalty: params.RepeatPenalty,
		MaxTokens:     params.MaxTokens,
		Stop:          params.Stop,
	}
	for _, m := range messages {
		body.Messages = append(body.Messages, chatMessage{Role: string(m.Role), Content: m.Content})
	}

	var (
		out     chatResponse
		errBody errorResponse
	)
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&errBody).
		Post(completionsPath)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &provider.ProviderError{
			Code:       provider.ErrorCodeNetwork,
			Message:    "network error",
			Underlying: err,
			Retryable:  true,
		}
	}
	if resp.IsError() {
		msg := errBody.Error.Message
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return "", provider.FromStatus(resp.StatusCode(), msg, nil)
	}
	if len(out.Choices) == 0 {
		return "", provider.ErrEmptyResponse
	}
	return out.Choices[0].Message.Content, nil
}
