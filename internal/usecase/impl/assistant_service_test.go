package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "scancare/internal/domain/errors"
	mockSvc "scancare/internal/mocks/service"
	"scancare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// assistantServiceFixtures holds all test dependencies for assistant
// service tests.
type assistantServiceFixtures struct {
	service      usecase.AssistantUsecase
	assistantSvc *mockSvc.MockAssistantService
}

func createTestAssistantService(t *testing.T) assistantServiceFixtures {
	assistantSvc := mockSvc.NewMockAssistantService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAssistantService(assistantSvc, NewCatalogService(), logger)

	return assistantServiceFixtures{
		service:      service,
		assistantSvc: assistantSvc,
	}
}

func TestAssistantService_Chat_ForwardsMessage(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistantSvc.EXPECT().
		Complete(ctx, "Is niacinamide good for oily skin?").
		Return("  Yes, it helps regulate sebum.  ", nil)

	reply, err := fx.service.Chat(ctx, &usecase.ChatInput{Message: "Is niacinamide good for oily skin?"})

	require.NoError(t, err)
	assert.Equal(t, "Yes, it helps regulate sebum.", reply)
}

func TestAssistantService_Chat_EmbedsProductFacts(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistantSvc.EXPECT().
		Complete(ctx, mock.AnythingOfType("string")).
		Run(func(_ context.Context, prompt string) {
			assert.Contains(t, prompt, "CeraVe Moisturizing Cream")
			assert.Contains(t, prompt, "🌿 Drugstore & Affordable Moisturizers")
			assert.Contains(t, prompt, "Is this good for me?")
		}).
		Return("It suits dry skin well.", nil)

	reply, err := fx.service.Chat(ctx, &usecase.ChatInput{
		Message:   "Is this good for me?",
		ProductID: ceraveProductID,
	})

	require.NoError(t, err)
	assert.Equal(t, "It suits dry skin well.", reply)
}

func TestAssistantService_Chat_UnknownProductFallsBackToPlainPrompt(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistantSvc.EXPECT().Complete(ctx, "Hello").Return("Hi", nil)

	reply, err := fx.service.Chat(ctx, &usecase.ChatInput{Message: "Hello", ProductID: "missing"})

	require.NoError(t, err)
	assert.Equal(t, "Hi", reply)
}

func TestAssistantService_Chat_CompletionFailureSurfaces(t *testing.T) {
	fx := createTestAssistantService(t)

	ctx := context.Background()

	fx.assistantSvc.EXPECT().Complete(ctx, "Hello").Return("", errors.New("upstream 500"))

	_, err := fx.service.Chat(ctx, &usecase.ChatInput{Message: "Hello"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAssistantUnavailable)
}
