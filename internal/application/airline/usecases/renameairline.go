package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/slug"
)

type RenameAirlineCommand struct {
	ID   string
	Name string
}

type RenameAirlineUseCase struct {
	airlineRepo airline.Repository
	officeRepo  office.Repository
	tx          TransactionRunner
	logger      logger.Interface
}

func NewRenameAirlineUseCase(
	airlineRepo airline.Repository,
	officeRepo office.Repository,
	tx TransactionRunner,
	logger logger.Interface,
) *RenameAirlineUseCase {
	return &RenameAirlineUseCase{
		airlineRepo: airlineRepo,
		officeRepo:  officeRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Execute renames the airline, re-derives its slug without taking another
// airline's, and moves the slugs of its offices in the same transaction.
func (uc *RenameAirlineUseCase) Execute(ctx context.Context, cmd RenameAirlineCommand) (*dto.AirlineDTO, error) {
	uc.logger.Infow("executing rename airline use case", "id", cmd.ID, "name", cmd.Name)

	if cmd.ID == "" {
		return nil, errors.NewValidationError("airline ID is required")
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		var renamed *airline.Airline
		err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
			a, err := uc.airlineRepo.GetByID(ctx, cmd.ID)
			if err != nil {
				return err
			}
			if a == nil {
				return notFound(cmd.ID)
			}

			now := biztime.NowUTC()
			s, err := pickSlug(ctx, uc.airlineRepo, slug.Slugify(cmd.Name), a.Slug())
			if err != nil {
				return err
			}
			if err := a.Rename(cmd.Name, s, now); err != nil {
				if errors.IsAppError(err) {
					return err
				}
				return errors.NewInternalError(err.Error())
			}
			if err := ensureNameFree(ctx, uc.airlineRepo, a); err != nil {
				return err
			}
			if err := uc.airlineRepo.Update(ctx, a); err != nil {
				return err
			}

			offices, err := uc.officeRepo.ListByAirline(ctx, a.ID())
			if err != nil {
				return err
			}
			for _, o := range offices {
				if !o.RefreshSlug(a.Name(), now) {
					continue
				}
				if err := uc.officeRepo.Update(ctx, o); err != nil {
					return err
				}
			}

			renamed = a
			return nil
		})
		if err == nil {
			uc.logger.Infow("airline renamed successfully", "id", renamed.ID(), "slug", renamed.Slug())
			return dto.ToAirlineDTO(renamed), nil
		}
		if !isRetryableWrite(err) {
			uc.logger.Errorw("failed to rename airline", "id", cmd.ID, "error", err)
			return nil, err
		}
		uc.logger.Warnw("concurrent write while renaming airline, retrying", "id", cmd.ID, "attempt", attempt)
	}

	return nil, errors.NewConflictError("airline was modified concurrently, please retry", cmd.ID)
}
