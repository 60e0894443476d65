package usecases

import (
	"context"
	"iter"

	"github.com/flyoffice/directory/internal/application/airline/dto"
)

// TransactionRunner runs fn in one database transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AboutRenderer turns the markdown about sections into safe HTML.
type AboutRenderer interface {
	RenderSections(sections map[string]string) (map[string]string, error)
}

type CreateAirlineExecutor interface {
	Execute(ctx context.Context, cmd CreateAirlineCommand) (*dto.AirlineDTO, error)
}

type RenameAirlineExecutor interface {
	Execute(ctx context.Context, cmd RenameAirlineCommand) (*dto.AirlineDTO, error)
}

type UpdateAirlineExecutor interface {
	Execute(ctx context.Context, cmd UpdateAirlineCommand) (*dto.AirlineDTO, error)
}

type SetAirlineActiveExecutor interface {
	Execute(ctx context.Context, cmd SetAirlineActiveCommand) (*dto.AirlineDTO, error)
}

type GetAirlineExecutor interface {
	Execute(ctx context.Context, query GetAirlineQuery) (*dto.AirlineDTO, error)
}

type SearchAirlinesExecutor interface {
	Execute(ctx context.Context, query SearchAirlinesQuery) (iter.Seq[dto.SearchHitDTO], error)
}
