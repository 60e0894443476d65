package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flyoffice/directory/internal/domain/airline"
	vo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type mockAirlineRepository struct {
	CreateFunc           func(ctx context.Context, a *airline.Airline) error
	GetByIDFunc          func(ctx context.Context, id string) (*airline.Airline, error)
	GetBySlugFunc        func(ctx context.Context, slug string) (*airline.Airline, error)
	UpdateFunc           func(ctx context.Context, a *airline.Airline) error
	ListFunc             func(ctx context.Context, filter airline.Filter) ([]*airline.Airline, int64, error)
	SearchCandidatesFunc func(ctx context.Context, filter airline.SearchFilter) ([]*airline.Airline, error)
	SlugsWithBaseFunc    func(ctx context.Context, base string) ([]string, error)
	ExistsActiveNameFunc func(ctx context.Context, nameKey, excludeID string) (bool, error)
	GetNamesByIDsFunc    func(ctx context.Context, ids []string) (map[string]string, error)
}

func (m *mockAirlineRepository) Create(ctx context.Context, a *airline.Airline) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAirlineRepository) GetByID(ctx context.Context, id string) (*airline.Airline, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAirlineRepository) GetBySlug(ctx context.Context, slug string) (*airline.Airline, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockAirlineRepository) Update(ctx context.Context, a *airline.Airline) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, a)
	}
	a.MarkPersisted(a.Version() + 1)
	return nil
}

func (m *mockAirlineRepository) List(ctx context.Context, filter airline.Filter) ([]*airline.Airline, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAirlineRepository) SearchCandidates(ctx context.Context, filter airline.SearchFilter) ([]*airline.Airline, error) {
	if m.SearchCandidatesFunc != nil {
		return m.SearchCandidatesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockAirlineRepository) SlugsWithBase(ctx context.Context, base string) ([]string, error) {
	if m.SlugsWithBaseFunc != nil {
		return m.SlugsWithBaseFunc(ctx, base)
	}
	return nil, nil
}

func (m *mockAirlineRepository) ExistsActiveName(ctx context.Context, nameKey, excludeID string) (bool, error) {
	if m.ExistsActiveNameFunc != nil {
		return m.ExistsActiveNameFunc(ctx, nameKey, excludeID)
	}
	return false, nil
}

func (m *mockAirlineRepository) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if m.GetNamesByIDsFunc != nil {
		return m.GetNamesByIDsFunc(ctx, ids)
	}
	return map[string]string{}, nil
}

type mockOfficeRepository struct {
	office.Repository
	ListByAirlineFunc func(ctx context.Context, airlineID string) ([]*office.Office, error)
	UpdateFunc        func(ctx context.Context, o *office.Office) error
}

func (m *mockOfficeRepository) ListByAirline(ctx context.Context, airlineID string) ([]*office.Office, error) {
	if m.ListByAirlineFunc != nil {
		return m.ListByAirlineFunc(ctx, airlineID)
	}
	return nil, nil
}

func (m *mockOfficeRepository) Update(ctx context.Context, o *office.Office) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	return nil
}

// mockTx runs fn inline and counts calls.
type mockTx struct {
	calls int
}

func (m *mockTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockRenderer struct {
	err error
}

func (m *mockRenderer) RenderSections(sections map[string]string) (map[string]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]string, len(sections))
	for k, v := range sections {
		out[k] = "<p>" + v + "</p>"
	}
	return out, nil
}

func nopLogger() logger.Interface {
	return logger.NewNopLogger()
}

func newAirline(t *testing.T, id, name, slug string, rating float64) *airline.Airline {
	t.Helper()
	a, err := airline.NewAirline(id, name, airline.Profile{
		Logo:     "https://cdn.example.com/" + id + ".png",
		Category: "Major",
		Rating:   rating,
		About:    vo.About{Overview: "Flights from " + name},
	}, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, a.AssignSlug(slug))
	return a
}

func validCreateCommand(name string) CreateAirlineCommand {
	return CreateAirlineCommand{
		Name:     name,
		Logo:     "https://cdn.example.com/logo.png",
		Category: "premium",
	}
}
