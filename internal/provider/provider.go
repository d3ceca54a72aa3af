// Package provider defines the text-completion collaborator the
// orchestration loop talks to.
package provider

import "context"

// Role tags a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Params are the sampling parameters sent with every completion. Zero values
// are left to the backend's defaults.
type Params struct {
	Temperature   float64
	TopP          float64
	TopK          int
	RepeatPenalty float64
	MaxTokens     int
	Stop          []string
}

// Completer turns an ordered message list into one completion string.
type Completer interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
}
