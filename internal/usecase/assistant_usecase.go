package usecase

import "context"

// AssistantUsecase proxies user questions to the text-completion
// collaborator, optionally grounding the prompt in a catalog product.
type AssistantUsecase interface {
	// Chat builds a skincare prompt from the input and returns the
	// completion text.
	Chat(ctx context.Context, input *ChatInput) (string, error)
}

// --- Input DTOs ---

// ChatInput defines the data required for an assistant exchange.
type ChatInput struct {
	Message string `json:"message" validate:"required"`

	// ProductID optionally names a catalog product to embed in the
	// prompt.
	ProductID string `json:"product_id"`
}
