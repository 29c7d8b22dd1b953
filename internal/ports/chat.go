package ports

import "context"

// ChatMessage is one turn of conversation history sent for context.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload for the chatbot service.
type ChatRequest struct {
	Message  string        `json:"message"`
	Email    string        `json:"email,omitempty"`
	History  []ChatMessage `json:"conversation_history,omitempty"`
	Language string        `json:"language,omitempty"`
}

// ChatTransport is the opaque request/response boundary to the chatbot
// service. Failures are recoverable: callers surface a message to the user
// and carry on.
type ChatTransport interface {
	Send(ctx context.Context, req ChatRequest) (string, error)
}
