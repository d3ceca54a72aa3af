package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/Cyclone1070/offcode/internal/provider"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(text, genai.RoleModel)},
		},
	}
}

func TestComplete_ConvertsConversation(t *testing.T) {
	var (
		gotModel    string
		gotContents []*genai.Content
		gotConfig   *genai.GenerateContentConfig
	)
	client := &fakeClient{
		respond: func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotModel, gotContents, gotConfig = model, contents, config
			return textResponse("[TOOL: list_directory()]"), nil
		},
	}
	p := New(client, "gemini-2.5-flash")

	out, err := p.Complete(context.Background(), []provider.Message{
		{Role: provider.RoleSystem, Content: "You are a coding assistant."},
		{Role: provider.RoleUser, Content: "list files"},
		{Role: provider.RoleAssistant, Content: "Sure."},
		{Role: provider.RoleUser, Content: ""},
	}, provider.Params{Temperature: 0.3, TopK: 40, MaxTokens: 2048, RepeatPenalty: 1.1, Stop: []string{"<|im_end|>"}})

	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "[TOOL: list_directory()]", out)
	assert.Equal(t, "gemini-2.5-flash", gotModel)

	require.Len(t, gotContents, 2)
	assert.Equal(t, genai.RoleUser, gotContents[0].Role)
	assert.Equal(t, "list files", gotContents[0].Parts[0].Text)
	assert.Equal(t, genai.RoleModel, gotContents[1].Role)

	require.NotNil(t, gotConfig.SystemInstruction)
	assert.Equal(t, "You are a coding assistant.", gotConfig.SystemInstruction.Parts[0].Text)
	assert.InDelta(t, 0.3, *gotConfig.Temperature, 1e-6)
	assert.InDelta(t, 40, *gotConfig.TopK, 1e-6)
	assert.Nil(t, gotConfig.TopP)
	assert.Equal(t, int32(2048), gotConfig.MaxOutputTokens)
	assert.InDelta(t, 0.1, *gotConfig.FrequencyPenalty, 1e-6)
	assert.Equal(t, []string{"<|im_end|>"}, gotConfig.StopSequences)
	assert.Len(t, gotConfig.SafetySettings, 4)
}

func TestComplete_Errors(t *testing.T) {
	tests := []struct {
		name     string
		resp     *genai.GenerateContentResponse
		err      error
		wantCode provider.ErrorCode
		wantIs   error
	}{
		{
			name:     "api error",
			err:      genai.APIError{Code: 429, Message: "slow down"},
			wantCode: provider.ErrorCodeRateLimit,
		},
		{
			name:     "transport error",
			err:      errors.New("connection reset"),
			wantCode: provider.ErrorCodeNetwork,
		},
		{
			name: "blocked prompt",
			resp: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			},
			wantCode: provider.ErrorCodeContentBlocked,
			wantIs:   provider.ErrContentBlocked,
		},
		{
			name:   "no candidates",
			resp:   &genai.GenerateContentResponse{},
			wantIs: provider.ErrEmptyResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{
				respond: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return tt.resp, tt.err
				},
			}

			_, err := New(client, "m").Complete(context.Background(), []provider.Message{{Role: provider.RoleUser, Content: "hi"}}, provider.Params{})

			require.Error(t, err)
			if tt.wantCode != "" {
				var perr *provider.ProviderError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.wantCode, perr.Code)
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
		})
	}
}
