package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// UpdateAirlineCommand patches the non-identity attributes. Nil fields are left unchanged.
type UpdateAirlineCommand struct {
	ID           string
	Logo         *string
	Category     *string
	Fleet        *[]string
	About        *dto.AboutDTO
	Services     *[]string
	ContactInfo  *dto.ContactInfoDTO
	Rating       *float64
	TotalReviews *int
}

func (c UpdateAirlineCommand) apply(p airline.Profile) airline.Profile {
	if c.Logo != nil {
		p.Logo = *c.Logo
	}
	if c.Category != nil {
		p.Category = *c.Category
	}
	if c.Fleet != nil {
		p.Fleet = *c.Fleet
	}
	if c.About != nil {
		p.About = c.About.ToValueObject()
	}
	if c.Services != nil {
		p.Services = *c.Services
	}
	if c.ContactInfo != nil {
		p.ContactInfo = c.ContactInfo.ToValueObject()
	}
	if c.Rating != nil {
		p.Rating = *c.Rating
	}
	if c.TotalReviews != nil {
		p.TotalReviews = *c.TotalReviews
	}
	return p
}

type UpdateAirlineUseCase struct {
	airlineRepo airline.Repository
	logger      logger.Interface
}

func NewUpdateAirlineUseCase(airlineRepo airline.Repository, logger logger.Interface) *UpdateAirlineUseCase {
	return &UpdateAirlineUseCase{
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

func (uc *UpdateAirlineUseCase) Execute(ctx context.Context, cmd UpdateAirlineCommand) (*dto.AirlineDTO, error) {
	uc.logger.Infow("executing update airline use case", "id", cmd.ID)

	if cmd.ID == "" {
		return nil, errors.NewValidationError("airline ID is required")
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		a, err := uc.airlineRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			uc.logger.Errorw("failed to get airline", "id", cmd.ID, "error", err)
			return nil, err
		}
		if a == nil {
			return nil, notFound(cmd.ID)
		}

		if err := a.UpdateProfile(cmd.apply(a.Profile()), biztime.NowUTC()); err != nil {
			uc.logger.Warnw("invalid update airline command", "id", cmd.ID, "error", err)
			return nil, err
		}

		err = uc.airlineRepo.Update(ctx, a)
		if err == nil {
			uc.logger.Infow("airline updated successfully", "id", a.ID())
			return dto.ToAirlineDTO(a), nil
		}
		if !isRetryableWrite(err) {
			uc.logger.Errorw("failed to update airline", "id", cmd.ID, "error", err)
			return nil, err
		}
		uc.logger.Warnw("version conflict while updating airline, retrying", "id", cmd.ID, "attempt", attempt)
	}

	return nil, errors.NewConflictError("airline was modified concurrently, please retry", cmd.ID)
}
