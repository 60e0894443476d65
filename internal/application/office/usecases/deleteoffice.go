package usecases

import (
	"context"
	"fmt"

	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type DeleteOfficeUseCase struct {
	officeRepo office.Repository
	contacts   OpenContactCounter
	tx         TransactionRunner
	logger     logger.Interface
}

func NewDeleteOfficeUseCase(
	officeRepo office.Repository,
	contacts OpenContactCounter,
	tx TransactionRunner,
	logger logger.Interface,
) *DeleteOfficeUseCase {
	return &DeleteOfficeUseCase{
		officeRepo: officeRepo,
		contacts:   contacts,
		tx:         tx,
		logger:     logger,
	}
}

// Execute removes an office unless open inquiries still point at it.
// Closed and resolved inquiries keep their dangling reference.
func (uc *DeleteOfficeUseCase) Execute(ctx context.Context, officeID string) error {
	uc.logger.Infow("executing delete office use case", "id", officeID)

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		o, err := uc.officeRepo.GetByID(ctx, officeID)
		if err != nil {
			return err
		}
		if o == nil {
			return errors.NewNotFoundError("office not found", officeID)
		}

		open, err := uc.contacts.CountOpenByOffice(ctx, officeID)
		if err != nil {
			return err
		}
		if open > 0 {
			return errors.NewConflictError("office has open inquiries", fmt.Sprintf("%d open", open))
		}
		return uc.officeRepo.Delete(ctx, officeID)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete office", "id", officeID, "error", err)
		return err
	}

	uc.logger.Infow("office deleted successfully", "id", officeID)
	return nil
}
