package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// GetAirlineQuery looks an airline up by ID or, when ID is empty, by Slug.
// Public lookups treat inactive airlines as missing.
type GetAirlineQuery struct {
	ID         string
	Slug       string
	Public     bool
	RenderHTML bool
}

type GetAirlineUseCase struct {
	airlineRepo airline.Repository
	renderer    AboutRenderer
	logger      logger.Interface
}

func NewGetAirlineUseCase(
	airlineRepo airline.Repository,
	renderer AboutRenderer,
	logger logger.Interface,
) *GetAirlineUseCase {
	return &GetAirlineUseCase{
		airlineRepo: airlineRepo,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *GetAirlineUseCase) Execute(ctx context.Context, query GetAirlineQuery) (*dto.AirlineDTO, error) {
	var (
		a   *airline.Airline
		err error
		key = query.ID
	)
	switch {
	case query.ID != "":
		a, err = uc.airlineRepo.GetByID(ctx, query.ID)
	case query.Slug != "":
		key = query.Slug
		a, err = uc.airlineRepo.GetBySlug(ctx, query.Slug)
	default:
		return nil, errors.NewValidationError("airline ID or slug is required")
	}
	if err != nil {
		uc.logger.Errorw("failed to get airline", "key", key, "error", err)
		return nil, err
	}
	if a == nil || (query.Public && !a.IsActive()) {
		return nil, notFound(key)
	}

	result := dto.ToAirlineDTO(a)
	if query.RenderHTML && uc.renderer != nil {
		html, err := uc.renderer.RenderSections(a.About().Sections())
		if err != nil {
			uc.logger.Errorw("failed to render airline about", "id", a.ID(), "error", err)
			return nil, errors.NewInternalError("failed to render airline about")
		}
		result.AboutHTML = html
	}
	return result, nil
}
