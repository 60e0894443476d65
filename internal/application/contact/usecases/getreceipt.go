package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type GetContactReceiptQuery struct {
	ID    string
	Email string
}

type GetContactReceiptUseCase struct {
	contactRepo contact.Repository
	logger      logger.Interface
}

func NewGetContactReceiptUseCase(contactRepo contact.Repository, logger logger.Interface) *GetContactReceiptUseCase {
	return &GetContactReceiptUseCase{
		contactRepo: contactRepo,
		logger:      logger,
	}
}

// Execute answers the sender's status check. A wrong email looks exactly
// like an unknown ID.
func (uc *GetContactReceiptUseCase) Execute(ctx context.Context, query GetContactReceiptQuery) (*dto.ReceiptDTO, error) {
	if query.ID == "" || query.Email == "" {
		return nil, errors.NewValidationError("contact ID and email are required")
	}

	c, err := uc.contactRepo.GetByID(ctx, query.ID)
	if err != nil {
		uc.logger.Errorw("failed to get contact receipt", "id", query.ID, "error", err)
		return nil, err
	}
	if c == nil || !c.BelongsTo(query.Email) {
		return nil, errors.NewNotFoundError("contact not found")
	}
	return dto.ToReceiptDTO(c), nil
}
