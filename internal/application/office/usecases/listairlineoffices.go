package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/office/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type ListAirlineOfficesUseCase struct {
	officeRepo  office.Repository
	airlineRepo airline.Repository
	logger      logger.Interface
}

func NewListAirlineOfficesUseCase(
	officeRepo office.Repository,
	airlineRepo airline.Repository,
	logger logger.Interface,
) *ListAirlineOfficesUseCase {
	return &ListAirlineOfficesUseCase{
		officeRepo:  officeRepo,
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

// Execute lists the offices of an active airline. An unknown or inactive
// airline yields an empty list, not an error.
func (uc *ListAirlineOfficesUseCase) Execute(ctx context.Context, airlineID string) ([]*dto.OfficeDTO, error) {
	a, err := uc.airlineRepo.GetByID(ctx, airlineID)
	if err != nil {
		uc.logger.Errorw("failed to get airline", "airline_id", airlineID, "error", err)
		return nil, err
	}
	if a == nil || !a.IsActive() {
		return []*dto.OfficeDTO{}, nil
	}

	offices, err := uc.officeRepo.ListByAirline(ctx, airlineID)
	if err != nil {
		uc.logger.Errorw("failed to list airline offices", "airline_id", airlineID, "error", err)
		return nil, err
	}
	if len(offices) == 0 {
		return []*dto.OfficeDTO{}, nil
	}
	return dto.ToOfficeDTOList(offices), nil
}
