package usecases

import (
	"context"
	stderrors "errors"

	"github.com/flyoffice/directory/internal/application/office/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

const maxUpdateAttempts = 3

// UpdateOfficeCommand patches an office. Nil fields are left unchanged.
type UpdateOfficeCommand struct {
	ID       string
	City     *string
	Country  *string
	Address  *string
	Phone    *string
	Email    *string
	OpensAt  *string
	ClosesAt *string
	PhotoURL *string
}

func (c UpdateOfficeCommand) apply(d office.Details) office.Details {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&d.City, c.City)
	set(&d.Country, c.Country)
	set(&d.Address, c.Address)
	set(&d.Phone, c.Phone)
	set(&d.Email, c.Email)
	set(&d.OpensAt, c.OpensAt)
	set(&d.ClosesAt, c.ClosesAt)
	set(&d.PhotoURL, c.PhotoURL)
	return d
}

type UpdateOfficeUseCase struct {
	officeRepo  office.Repository
	airlineRepo airline.Repository
	logger      logger.Interface
}

func NewUpdateOfficeUseCase(
	officeRepo office.Repository,
	airlineRepo airline.Repository,
	logger logger.Interface,
) *UpdateOfficeUseCase {
	return &UpdateOfficeUseCase{
		officeRepo:  officeRepo,
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

func (uc *UpdateOfficeUseCase) Execute(ctx context.Context, cmd UpdateOfficeCommand) (*dto.OfficeDTO, error) {
	uc.logger.Infow("executing update office use case", "id", cmd.ID)

	if cmd.ID == "" {
		return nil, errors.NewValidationError("office ID is required")
	}

	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		o, err := uc.officeRepo.GetByID(ctx, cmd.ID)
		if err != nil {
			uc.logger.Errorw("failed to get office", "id", cmd.ID, "error", err)
			return nil, err
		}
		if o == nil {
			return nil, errors.NewNotFoundError("office not found", cmd.ID)
		}

		airlineName := ""
		if a, err := uc.airlineRepo.GetByID(ctx, o.AirlineID()); err != nil {
			return nil, err
		} else if a != nil {
			airlineName = a.Name()
		}

		if err := o.Update(cmd.apply(o.Details()), airlineName, biztime.NowUTC()); err != nil {
			uc.logger.Warnw("invalid update office command", "id", cmd.ID, "error", err)
			return nil, err
		}

		err = uc.officeRepo.Update(ctx, o)
		if err == nil {
			uc.logger.Infow("office updated successfully", "id", o.ID(), "slug", o.Slug())
			return dto.ToOfficeDTO(o), nil
		}
		if !stderrors.Is(err, office.ErrVersionConflict) {
			uc.logger.Errorw("failed to update office", "id", cmd.ID, "error", err)
			return nil, err
		}
		uc.logger.Warnw("version conflict while updating office, retrying", "id", cmd.ID, "attempt", attempt)
	}

	return nil, errors.NewConflictError("office was modified concurrently, please retry", cmd.ID)
}
