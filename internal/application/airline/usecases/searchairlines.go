package usecases

import (
	"context"
	"iter"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	vo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type SearchAirlinesQuery struct {
	Query           string
	Category        string
	IncludeInactive bool
}

type SearchAirlinesUseCase struct {
	airlineRepo airline.Repository
	logger      logger.Interface
}

func NewSearchAirlinesUseCase(airlineRepo airline.Repository, logger logger.Interface) *SearchAirlinesUseCase {
	return &SearchAirlinesUseCase{
		airlineRepo: airlineRepo,
		logger:      logger,
	}
}

// Execute ranks the matching airlines once and returns a sequence over the
// ranked result. The sequence can be ranged over any number of times and
// converts each hit only when it is reached.
func (uc *SearchAirlinesUseCase) Execute(ctx context.Context, query SearchAirlinesQuery) (iter.Seq[dto.SearchHitDTO], error) {
	q := airline.NameKey(query.Query)
	if q == "" {
		return emptyHits, nil
	}

	filter := airline.SearchFilter{
		Query:           q,
		IncludeInactive: query.IncludeInactive,
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = category.String()
	}

	candidates, err := uc.airlineRepo.SearchCandidates(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search airlines", "query", q, "error", err)
		return nil, err
	}

	ranked := airline.RankAll(candidates, q)
	uc.logger.Infow("airline search completed", "query", q, "matches", len(ranked))

	return func(yield func(dto.SearchHitDTO) bool) {
		for _, s := range ranked {
			hit := dto.SearchHitDTO{Airline: dto.ToAirlineDTO(s.Airline), Rank: int(s.Rank)}
			if !yield(hit) {
				return
			}
		}
	}, nil
}

func emptyHits(func(dto.SearchHitDTO) bool) {}
