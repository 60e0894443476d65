package directory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	airlinedto "github.com/flyoffice/directory/internal/application/airline/dto"
	permissionapp "github.com/flyoffice/directory/internal/application/permission"
	"github.com/flyoffice/directory/internal/domain/airline"
	vo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type stubAirlines struct {
	airline.Repository
	listFilter   *airline.Filter
	searchFilter *airline.SearchFilter
	list         []*airline.Airline
}

func (s *stubAirlines) List(ctx context.Context, filter airline.Filter) ([]*airline.Airline, int64, error) {
	s.listFilter = &filter
	return s.list, int64(len(s.list)), nil
}

func (s *stubAirlines) SearchCandidates(ctx context.Context, filter airline.SearchFilter) ([]*airline.Airline, error) {
	s.searchFilter = &filter
	return s.list, nil
}

type stubOffices struct {
	office.Repository
	filter *office.Filter
}

func (s *stubOffices) List(ctx context.Context, filter office.Filter) ([]*office.Office, int64, error) {
	s.filter = &filter
	return nil, 0, nil
}

type stubContacts struct {
	contact.Repository
	filter *contact.Filter
}

func (s *stubContacts) List(ctx context.Context, filter contact.Filter) ([]*contact.Contact, int64, error) {
	s.filter = &filter
	return nil, 0, nil
}

func newTestService(a *stubAirlines, o *stubOffices, c *stubContacts, maxPageSize int) *Service {
	authz := permissionapp.NewService(nil, nil, logger.NewNopLogger())
	return NewService(a, o, c, authz, maxPageSize, logger.NewNopLogger())
}

func testAirline(t *testing.T, id, name string, rating float64) *airline.Airline {
	t.Helper()
	a, err := airline.NewAirline(id, name, airline.Profile{
		Logo:     "https://cdn.example.com/" + id + ".png",
		Category: "Premium",
		Rating:   rating,
		About:    vo.About{Overview: "Award winning carrier"},
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, a.AssignSlug(a.BaseSlug()))
	return a
}

func TestListContacts_RequiresApprovalsBeforeQuerying(t *testing.T) {
	contacts := &stubContacts{}
	svc := newTestService(&stubAirlines{}, &stubOffices{}, contacts, 50)

	for _, role := range []string{"", "EDITOR", "guest"} {
		_, err := svc.ListContacts(context.Background(), role, ContactFilter{Status: "bogus"}, 0, 0)
		assert.True(t, errors.IsPermissionDeniedError(err), role)
	}
	assert.Nil(t, contacts.filter)

	page, err := svc.ListContacts(context.Background(), "manager", ContactFilter{Status: "IN_PROGRESS", Priority: "High"}, 1, 10)
	require.NoError(t, err)
	require.NotNil(t, contacts.filter)
	assert.Equal(t, "in_progress", contacts.filter.Status)
	assert.Equal(t, "high", contacts.filter.Priority)
	assert.NotNil(t, page.Items)
	assert.Zero(t, page.TotalCount)
}

func TestListContacts_EnumeratesInvalidFilters(t *testing.T) {
	svc := newTestService(&stubAirlines{}, &stubOffices{}, &stubContacts{}, 50)

	_, err := svc.ListContacts(context.Background(), "SUPERADMIN", ContactFilter{Status: "archived", InquiryType: "spam", Priority: "p0"}, 0, 10)

	require.Error(t, err)
	var got []string
	for _, f := range errors.GetAppError(err).Fields {
		got = append(got, f.Field)
	}
	assert.ElementsMatch(t, []string{"page", "status", "inquiryType", "priority"}, got)
}

func TestPagination_ValidationAndClamping(t *testing.T) {
	airlines := &stubAirlines{}
	svc := newTestService(airlines, &stubOffices{}, &stubContacts{}, 50)

	_, err := svc.ListAirlines(context.Background(), "", AirlineFilter{}, 1, 0)
	assert.True(t, errors.IsValidationError(err))

	_, err = svc.ListAirlines(context.Background(), "", AirlineFilter{}, -1, 10)
	assert.True(t, errors.IsValidationError(err))

	_, err = svc.ListAirlines(context.Background(), "", AirlineFilter{}, 3, 500)
	require.NoError(t, err)
	assert.Equal(t, 50, airlines.listFilter.Limit())
	assert.Equal(t, 100, airlines.listFilter.Offset())
	assert.False(t, airlines.listFilter.IncludeInactive)
}

func TestListAirlines_IncludeInactiveNeedsOffices(t *testing.T) {
	airlines := &stubAirlines{}
	svc := newTestService(airlines, &stubOffices{}, &stubContacts{}, 50)

	_, err := svc.ListAirlines(context.Background(), "", AirlineFilter{IncludeInactive: true}, 1, 10)
	assert.True(t, errors.IsPermissionDeniedError(err))

	_, err = svc.ListAirlines(context.Background(), "editor", AirlineFilter{IncludeInactive: true, Category: "lowcost"}, 1, 10)
	require.NoError(t, err)
	assert.True(t, airlines.listFilter.IncludeInactive)
	assert.Equal(t, "LowCost", airlines.listFilter.Category)
}

func TestListAirlines_TextQueryPagesByRelevance(t *testing.T) {
	var list []*airline.Airline
	for i := range 5 {
		list = append(list, testAirline(t, fmt.Sprintf("al_%d", i), fmt.Sprintf("Sky Link %d", i), float64(i)))
	}
	list = append(list, testAirline(t, "al_exact", "Sky", 0))
	airlines := &stubAirlines{list: list}
	svc := newTestService(airlines, &stubOffices{}, &stubContacts{}, 50)

	first, err := svc.ListAirlines(context.Background(), "", AirlineFilter{Query: " SKY "}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), first.TotalCount)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "al_exact", first.Items[0].ID)
	assert.Equal(t, "al_4", first.Items[1].ID)
	assert.Equal(t, "sky", airlines.searchFilter.Query)
	assert.Nil(t, airlines.listFilter)

	last, err := svc.ListAirlines(context.Background(), "", AirlineFilter{Query: "sky"}, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, last.Items)
	assert.Equal(t, int64(6), last.TotalCount)
}

func TestList_DispatchesOnFilter(t *testing.T) {
	airlines := &stubAirlines{list: []*airline.Airline{testAirline(t, "al_1", "Qatar Airways", 4)}}
	offices := &stubOffices{}
	svc := newTestService(airlines, offices, &stubContacts{}, 50)

	page, err := svc.List(context.Background(), "", AirlineFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.IsType(t, &airlinedto.AirlineDTO{}, page.Items[0])

	_, err = svc.List(context.Background(), "", OfficeFilter{AirlineID: " al_1 ", Country: "Qatar"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "al_1", offices.filter.AirlineID)
	assert.Equal(t, "Qatar", offices.filter.Country)

	_, err = svc.List(context.Background(), "", ContactFilter{}, 1, 10)
	assert.True(t, errors.IsPermissionDeniedError(err))
}
