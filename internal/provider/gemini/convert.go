package gemini

import (
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/Cyclone1070/offcode/internal/provider"
)

// toGeminiContents splits system messages into a system instruction and
// converts the rest to user/model contents.
func toGeminiContents(messages []provider.Message) (*genai.Content, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case provider.RoleSystem:
			system = append(system, msg.Content)
		case provider.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}

	if len(system) == 0 {
		return nil, contents
	}
	return genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser), contents
}

// toGeminiConfig converts sampling parameters. Gemini has no repetition
// penalty; it is mapped onto the frequency penalty as (penalty - 1).
func toGeminiConfig(params provider.Params, system *genai.Content) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: system,
		SafetySettings:    defaultSafetySettings(),
		StopSequences:     params.Stop,
	}
	if params.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(params.Temperature))
	}
	if params.TopP > 0 {
		cfg.TopP = genai.Ptr(float32(params.TopP))
	}
	if params.TopK > 0 {
		cfg.TopK = genai.Ptr(float32(params.TopK))
	}
	if params.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(params.MaxTokens)
	}
	if params.RepeatPenalty > 1 {
		cfg.FrequencyPenalty = genai.Ptr(float32(params.RepeatPenalty - 1))
	}
	return cfg
}

// defaultSafetySettings returns safety settings with BLOCK_NONE for all categories.
func defaultSafetySettings() []*genai.SafetySetting {
	categories := []genai.HarmCategory{
		genai.HarmCategoryHateSpeech,
		genai.HarmCategoryDangerousContent,
		genai.HarmCategoryHarassment,
		genai.HarmCategorySexuallyExplicit,
	}
	settings := make([]*genai.SafetySetting, 0, len(categories))
	for _, c := range categories {
		settings = append(settings, &genai.SafetySetting{Category: c, Threshold: genai.HarmBlockThresholdBlockNone})
	}
	return settings
}

// fromGeminiResponse extracts the completion text.
func fromGeminiResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", provider.ErrEmptyResponse
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", &provider.ProviderError{
			Code:       provider.ErrorCodeContentBlocked,
			Message:    string(resp.PromptFeedback.BlockReason),
			Underlying: provider.ErrContentBlocked,
		}
	}
	if len(resp.Candidates) == 0 {
		return "", provider.ErrEmptyResponse
	}
	return resp.Text(), nil
}

// mapGeminiError converts SDK errors into provider errors.
func mapGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return provider.FromStatus(apiErr.Code, apiErr.Message, err)
	}
	return &provider.ProviderError{
		Code:       provider.ErrorCodeNetwork,
		Message:    "network error",
		Underlying: err,
		Retryable:  true,
	}
}
