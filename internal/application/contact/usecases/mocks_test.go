package usecases

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type mockContactRepository struct {
	CreateFunc            func(ctx context.Context, c *contact.Contact) error
	GetByIDFunc           func(ctx context.Context, id string) (*contact.Contact, error)
	UpdateFunc            func(ctx context.Context, c *contact.Contact) error
	ListFunc              func(ctx context.Context, filter contact.Filter) ([]*contact.Contact, int64, error)
	CountOpenByOfficeFunc func(ctx context.Context, officeID string) (int64, error)
}

func (m *mockContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockContactRepository) GetByID(ctx context.Context, id string) (*contact.Contact, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	c.MarkPersisted(c.Version() + 1)
	return nil
}

func (m *mockContactRepository) List(ctx context.Context, filter contact.Filter) ([]*contact.Contact, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockContactRepository) CountOpenByOffice(ctx context.Context, officeID string) (int64, error) {
	if m.CountOpenByOfficeFunc != nil {
		return m.CountOpenByOfficeFunc(ctx, officeID)
	}
	return 0, nil
}

type mockStripper struct{}

func (mockStripper) StripHTML(s string) string {
	out := []rune{}
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			out = append(out, r)
		}
	}
	return string(out)
}

type mockNotifier struct {
	sent chan *dto.ContactDTO
	err  error
}

func (m *mockNotifier) NotifyNewInquiry(ctx context.Context, inquiry *dto.ContactDTO) error {
	m.sent <- inquiry
	return m.err
}

type mockMetrics struct {
	mu          sync.Mutex
	submitted   []string
	transitions [][2]string
}

func (m *mockMetrics) InquirySubmitted(inquiryType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitted = append(m.submitted, inquiryType)
}

func (m *mockMetrics) TransitionRecorded(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, [2]string{from, to})
}

type mockLookup map[string]string

func (m mockLookup) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return m.pick(ids), nil
}

func (m mockLookup) GetCitiesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	return m.pick(ids), nil
}

func (m mockLookup) pick(ids []string) map[string]string {
	out := map[string]string{}
	for _, id := range ids {
		if v, ok := m[id]; ok {
			out[id] = v
		}
	}
	return out
}

func nopLogger() logger.Interface {
	return logger.NewNopLogger()
}

var submittedAt = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

func validSubmission() contact.Submission {
	return contact.Submission{
		Name:        "Amira Haddad",
		Email:       "amira@example.com",
		Subject:     "Lost baggage",
		Message:     "My bag did not arrive in Doha.",
		AirlineID:   "al_1",
		OfficeID:    "of_1",
		InquiryType: "general",
	}
}

// storedContact rebuilds a contact in the given state, as a repository read would.
func storedContact(t *testing.T, status string, resolvedAt *time.Time) *contact.Contact {
	t.Helper()
	c, err := contact.ReconstructContact("ct_1", validSubmission(), status, "medium", "", nil, resolvedAt, 4, submittedAt, submittedAt)
	require.NoError(t, err)
	return c
}

func repoReturning(c *contact.Contact) *mockContactRepository {
	return &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*contact.Contact, error) {
			if id == c.ID() {
				return c, nil
			}
			return nil, nil
		},
	}
}
