package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type SetAirlineActiveCommand struct {
	ID     string
	Active bool
}

type SetAirlineActiveUseCase struct {
	airlineRepo airline.Repository
	tx          TransactionRunner
	logger      logger.Interface
}

func NewSetAirlineActiveUseCase(
	airlineRepo airline.Repository,
	tx TransactionRunner,
	logger logger.Interface,
) *SetAirlineActiveUseCase {
	return &SetAirlineActiveUseCase{
		airlineRepo: airlineRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Execute soft-enables or soft-disables an airline. Reactivation is refused
// while another active airline holds the same name.
func (uc *SetAirlineActiveUseCase) Execute(ctx context.Context, cmd SetAirlineActiveCommand) (*dto.AirlineDTO, error) {
	uc.logger.Infow("executing set airline active use case", "id", cmd.ID, "active", cmd.Active)

	if cmd.ID == "" {
		return nil, errors.NewValidationError("airline ID is required")
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		var result *airline.Airline
		err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
			a, err := uc.airlineRepo.GetByID(ctx, cmd.ID)
			if err != nil {
				return err
			}
			if a == nil {
				return notFound(cmd.ID)
			}
			if a.IsActive() == cmd.Active {
				result = a
				return nil
			}

			now := biztime.NowUTC()
			if cmd.Active {
				a.Activate(now)
				if err := ensureNameFree(ctx, uc.airlineRepo, a); err != nil {
					return err
				}
			} else {
				a.Deactivate(now)
			}
			if err := uc.airlineRepo.Update(ctx, a); err != nil {
				return err
			}
			result = a
			return nil
		})
		if err == nil {
			uc.logger.Infow("airline activity changed", "id", result.ID(), "active", result.IsActive())
			return dto.ToAirlineDTO(result), nil
		}
		if !isRetryableWrite(err) {
			uc.logger.Errorw("failed to change airline activity", "id", cmd.ID, "error", err)
			return nil, err
		}
		uc.logger.Warnw("version conflict while changing airline activity, retrying", "id", cmd.ID, "attempt", attempt)
	}

	return nil, errors.NewConflictError("airline was modified concurrently, please retry", cmd.ID)
}
