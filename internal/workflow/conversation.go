package workflow

import "github.com/Cyclone1070/offcode/internal/provider"

// Conversation is the ordered message history of a session. It only grows;
// Clear is the single way to shrink it.
type Conversation struct {
	messages []provider.Message
}

func (c *Conversation) Append(role provider.Role, content string) {
	c.messages = append(c.messages, provider.Message{Role: role, Content: content})
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// Window returns a copy of the trailing n messages, or all of them when n is
// not positive.
func (c *Conversation) Window(n int) []provider.Message {
	start := 0
	if n > 0 && len(c.messages) > n {
		start = len(c.messages) - n
	}
	out := make([]provider.Message, len(c.messages)-start)
	copy(out, c.messages[start:])
	return out
}

// Messages returns a copy of the whole history.
func (c *Conversation) Messages() []provider.Message {
	return c.Window(0)
}

func (c *Conversation) Clear() {
	c.messages = nil
}
