package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type mockOfficeRepository struct {
	CreateFunc              func(ctx context.Context, o *office.Office) error
	GetByIDFunc             func(ctx context.Context, id string) (*office.Office, error)
	GetByAirlineAndCityFunc func(ctx context.Context, airlineID, city string) (*office.Office, error)
	UpdateFunc              func(ctx context.Context, o *office.Office) error
	DeleteFunc              func(ctx context.Context, id string) error
	ListFunc                func(ctx context.Context, filter office.Filter) ([]*office.Office, int64, error)
	ListByAirlineFunc       func(ctx context.Context, airlineID string) ([]*office.Office, error)
	GetCitiesByIDsFunc      func(ctx context.Context, ids []string) (map[string]string, error)
}

func (m *mockOfficeRepository) Create(ctx context.Context, o *office.Office) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *mockOfficeRepository) GetByID(ctx context.Context, id string) (*office.Office, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockOfficeRepository) GetByAirlineAndCity(ctx context.Context, airlineID, city string) (*office.Office, error) {
	if m.GetByAirlineAndCityFunc != nil {
		return m.GetByAirlineAndCityFunc(ctx, airlineID, city)
	}
	return nil, nil
}

func (m *mockOfficeRepository) Update(ctx context.Context, o *office.Office) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, o)
	}
	o.MarkPersisted(o.Version() + 1)
	return nil
}

func (m *mockOfficeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockOfficeRepository) List(ctx context.Context, filter office.Filter) ([]*office.Office, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockOfficeRepository) ListByAirline(ctx context.Context, airlineID string) ([]*office.Office, error) {
	if m.ListByAirlineFunc != nil {
		return m.ListByAirlineFunc(ctx, airlineID)
	}
	return nil, nil
}

func (m *mockOfficeRepository) GetCitiesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if m.GetCitiesByIDsFunc != nil {
		return m.GetCitiesByIDsFunc(ctx, ids)
	}
	return map[string]string{}, nil
}

// mockAirlineRepository only answers GetByID; the other methods are unused here.
type mockAirlineRepository struct {
	airline.Repository
	airlines map[string]*airline.Airline
}

func (m *mockAirlineRepository) GetByID(ctx context.Context, id string) (*airline.Airline, error) {
	return m.airlines[id], nil
}

type mockContactCounter struct {
	open int64
	err  error
}

func (m *mockContactCounter) CountOpenByOffice(ctx context.Context, officeID string) (int64, error) {
	return m.open, m.err
}

type mockTx struct{}

func (mockTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func nopLogger() logger.Interface {
	return logger.NewNopLogger()
}

var testNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newAirline(t *testing.T, id, name string, active bool) *airline.Airline {
	t.Helper()
	a, err := airline.NewAirline(id, name, airline.Profile{
		Logo:     "https://cdn.example.com/" + id + ".png",
		Category: "Regional",
	}, testNow)
	require.NoError(t, err)
	require.NoError(t, a.AssignSlug(a.BaseSlug()))
	if !active {
		a.Deactivate(testNow)
	}
	return a
}

func newOffice(t *testing.T, id, airlineID, airlineName, city string) *office.Office {
	t.Helper()
	o, err := office.NewOffice(id, airlineID, airlineName, office.Details{
		City:     city,
		Country:  "UAE",
		Address:  "Terminal 3",
		Phone:    "+971 600 555 555",
		OpensAt:  "09:00",
		ClosesAt: "17:30",
	}, testNow)
	require.NoError(t, err)
	return o
}

func airlines(list ...*airline.Airline) *mockAirlineRepository {
	m := &mockAirlineRepository{airlines: map[string]*airline.Airline{}}
	for _, a := range list {
		m.airlines[a.ID()] = a
	}
	return m
}
