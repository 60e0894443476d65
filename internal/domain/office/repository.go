package office

import (
	"context"
	"errors"

	"github.com/flyoffice/directory/internal/shared/query"
)

// ErrVersionConflict indicates the office was modified since it was loaded.
var ErrVersionConflict = errors.New("version conflict: office was modified")

type Repository interface {
	Create(ctx context.Context, office *Office) error
	// GetByID returns nil, nil when no office has the id.
	GetByID(ctx context.Context, id string) (*Office, error)
	GetByAirlineAndCity(ctx context.Context, airlineID, city string) (*Office, error)
	// Update writes the office if the stored version still matches office.Version().
	Update(ctx context.Context, office *Office) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter Filter) ([]*Office, int64, error)
	// ListByAirline returns every office of the airline regardless of its active flag.
	ListByAirline(ctx context.Context, airlineID string) ([]*Office, error)
	GetCitiesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type Filter struct {
	query.BaseFilter
	AirlineID string
	Country   string
	City      string
	// IncludeInactive keeps offices whose airline is deactivated.
	IncludeInactive bool
}
