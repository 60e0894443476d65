package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/office/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/id"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type CreateOfficeCommand struct {
	AirlineID string
	City      string
	Country   string
	Address   string
	Phone     string
	Email     string
	OpensAt   string
	ClosesAt  string
	PhotoURL  string
}

func (c CreateOfficeCommand) details() office.Details {
	return office.Details{
		City:     c.City,
		Country:  c.Country,
		Address:  c.Address,
		Phone:    c.Phone,
		Email:    c.Email,
		OpensAt:  c.OpensAt,
		ClosesAt: c.ClosesAt,
		PhotoURL: c.PhotoURL,
	}
}

type CreateOfficeUseCase struct {
	officeRepo  office.Repository
	airlineRepo airline.Repository
	logger      logger.Interface
}

func NewCreateOfficeUseCase(
	officeRepo office.Repository,
	airlineRepo airline.Repository,
	logger logger.Interface,
) *CreateOfficeUseCase {
	return &CreateOfficeUseCase{
		officeRepo:  officeRepo,
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

// Execute adds an office to an existing airline. A second office in the same
// city of the same airline is a conflict.
func (uc *CreateOfficeUseCase) Execute(ctx context.Context, cmd CreateOfficeCommand) (*dto.OfficeDTO, error) {
	uc.logger.Infow("executing create office use case", "airline_id", cmd.AirlineID, "city", cmd.City)

	officeID, err := id.NewOfficeID()
	if err != nil {
		uc.logger.Errorw("failed to generate office ID", "error", err)
		return nil, errors.NewInternalError("failed to generate office ID")
	}

	var airlineName string
	if cmd.AirlineID != "" {
		a, err := uc.airlineRepo.GetByID(ctx, cmd.AirlineID)
		if err != nil {
			uc.logger.Errorw("failed to get airline", "airline_id", cmd.AirlineID, "error", err)
			return nil, err
		}
		if a == nil {
			return nil, errors.NewNotFoundError("airline not found", cmd.AirlineID)
		}
		airlineName = a.Name()
	}

	o, err := office.NewOffice(officeID, cmd.AirlineID, airlineName, cmd.details(), biztime.NowUTC())
	if err != nil {
		uc.logger.Warnw("invalid create office command", "error", err)
		return nil, err
	}

	if err := uc.officeRepo.Create(ctx, o); err != nil {
		uc.logger.Errorw("failed to create office", "airline_id", cmd.AirlineID, "city", cmd.City, "error", err)
		return nil, err
	}

	uc.logger.Infow("office created successfully", "id", o.ID(), "slug", o.Slug())
	return dto.ToOfficeDTO(o), nil
}
