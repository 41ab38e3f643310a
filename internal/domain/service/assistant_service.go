package service

import "context"

// AssistantService is the text-completion collaborator used by the chat
// assistant. It accepts a fully built prompt and returns free text.
type AssistantService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
