package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "scancare/internal/domain/errors"
	"scancare/internal/domain/service"
	"scancare/internal/usecase"

	"github.com/pkg/errors"
)

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	assistantSvc service.AssistantService
	catalogUC    usecase.CatalogUsecase
	logger       *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(
	assistantSvc service.AssistantService,
	catalogUC usecase.CatalogUsecase,
	logger *slog.Logger,
) usecase.AssistantUsecase {
	return &assistantService{
		assistantSvc: assistantSvc,
		catalogUC:    catalogUC,
		logger:       logger,
	}
}

// Chat builds the prompt and forwards it to the completion collaborator.
// When the input names a catalog product, the product facts are embedded
// so the answer can reference them.
func (srv *assistantService) Chat(ctx context.Context, input *usecase.ChatInput) (string, error) {
	prompt := strings.TrimSpace(input.Message)

	if input.ProductID != "" {
		if product := srv.catalogUC.Find(input.ProductID); product != nil {
			var sb strings.Builder
			fmt.Fprintf(&sb, "The user is asking about the skincare product %q (category: %s", product.Name, product.Category)
			if product.Brand != "" {
				fmt.Fprintf(&sb, ", brand: %s", product.Brand)
			}
			if len(product.Contains) > 0 {
				fmt.Fprintf(&sb, ", contains: %s", strings.Join(product.Contains, ", "))
			}
			sb.WriteString(").\n\n")
			sb.WriteString(prompt)
			prompt = sb.String()
		}
	}

	reply, err := srv.assistantSvc.Complete(ctx, prompt)
	if err != nil {
		srv.logger.Error("assistant completion failed", "error", err)

		return "", errors.Wrap(domainerrors.ErrAssistantUnavailable, "assistant completion failed")
	}

	return strings.TrimSpace(reply), nil
}
