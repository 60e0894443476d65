package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/office/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// GetOfficeQuery finds an office by ID or by the (AirlineID, City) pair.
// Public lookups treat offices of inactive airlines as missing.
type GetOfficeQuery struct {
	ID        string
	AirlineID string
	City      string
	Public    bool
}

type GetOfficeUseCase struct {
	officeRepo  office.Repository
	airlineRepo airline.Repository
	logger      logger.Interface
}

func NewGetOfficeUseCase(
	officeRepo office.Repository,
	airlineRepo airline.Repository,
	logger logger.Interface,
) *GetOfficeUseCase {
	return &GetOfficeUseCase{
		officeRepo:  officeRepo,
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

func (uc *GetOfficeUseCase) Execute(ctx context.Context, query GetOfficeQuery) (*dto.OfficeDTO, error) {
	var (
		o   *office.Office
		err error
	)
	switch {
	case query.ID != "":
		o, err = uc.officeRepo.GetByID(ctx, query.ID)
	case query.AirlineID != "" && query.City != "":
		o, err = uc.officeRepo.GetByAirlineAndCity(ctx, query.AirlineID, query.City)
	default:
		return nil, errors.NewValidationError("office ID or airline ID and city are required")
	}
	if err != nil {
		uc.logger.Errorw("failed to get office", "id", query.ID, "airline_id", query.AirlineID, "error", err)
		return nil, err
	}
	if o == nil {
		return nil, errors.NewNotFoundError("office not found")
	}

	if query.Public {
		a, err := uc.airlineRepo.GetByID(ctx, o.AirlineID())
		if err != nil {
			return nil, err
		}
		if a == nil || !a.IsActive() {
			return nil, errors.NewNotFoundError("office not found")
		}
	}
	return dto.ToOfficeDTO(o), nil
}
