package airline

import (
	"context"
	"errors"

	"github.com/flyoffice/directory/internal/shared/query"
)

// ErrSlugTaken is returned by Create and Update when the unique slug index
// rejects the write. Callers pick the next free suffix and retry.
var ErrSlugTaken = errors.New("airline slug already taken")

// ErrVersionConflict indicates the airline was modified since it was loaded.
var ErrVersionConflict = errors.New("version conflict: airline was modified")

type Repository interface {
	Create(ctx context.Context, airline *Airline) error
	// GetByID returns nil, nil when no airline has the id.
	GetByID(ctx context.Context, id string) (*Airline, error)
	GetBySlug(ctx context.Context, slug string) (*Airline, error)
	// Update writes the airline if the stored version still matches airline.Version().
	Update(ctx context.Context, airline *Airline) error
	List(ctx context.Context, filter Filter) ([]*Airline, int64, error)
	// SearchCandidates returns airlines whose name or overview contains the query,
	// case-insensitively. Ranking is applied by the caller with Rank.
	SearchCandidates(ctx context.Context, filter SearchFilter) ([]*Airline, error)
	// SlugsWithBase lists every stored slug equal to base or starting with base-.
	SlugsWithBase(ctx context.Context, base string) ([]string, error)
	ExistsActiveName(ctx context.Context, nameKey, excludeID string) (bool, error)
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type Filter struct {
	query.BaseFilter
	Category        string
	IncludeInactive bool
}

type SearchFilter struct {
	Query           string
	Category        string
	IncludeInactive bool
}
