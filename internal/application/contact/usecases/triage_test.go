package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/errors"
)

func TestChangeContactStatusUseCase_Grid(t *testing.T) {
	statuses := []string{"new", "in_progress", "resolved", "closed"}
	allowed := map[string]map[string]bool{
		"new":         {"in_progress": true, "closed": true},
		"in_progress": {"resolved": true, "closed": true},
		"resolved":    {"closed": true, "in_progress": true},
		"closed":      {"in_progress": true},
	}

	for _, from := range statuses {
		for _, to := range append(statuses, "archived") {
			t.Run(from+"->"+to, func(t *testing.T) {
				c := storedContact(t, from, nil)
				updated := false
				repo := repoReturning(c)
				repo.UpdateFunc = func(ctx context.Context, c *contact.Contact) error {
					updated = true
					return nil
				}
				metrics := &mockMetrics{}
				uc := NewChangeContactStatusUseCase(repo, metrics, nopLogger())

				result, err := uc.Execute(context.Background(), ChangeContactStatusCommand{ID: "ct_1", Status: to})

				if allowed[from][to] {
					require.NoError(t, err)
					assert.Equal(t, to, result.Status)
					assert.True(t, updated)
					assert.Equal(t, [][2]string{{from, to}}, metrics.transitions)
					return
				}
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, errors.ErrorTypeInvalidTransition, appErr.Type)
				assert.Equal(t, from, appErr.From)
				assert.Equal(t, to, appErr.To)
				assert.False(t, updated)
				assert.Equal(t, from, c.Status().String())
			})
		}
	}
}

func TestChangeContactStatusUseCase_ResolvedAtIsCallTime(t *testing.T) {
	c := storedContact(t, "in_progress", nil)
	uc := NewChangeContactStatusUseCase(repoReturning(c), nil, nopLogger())
	resolveAt := time.Date(2026, 5, 7, 12, 0, 0, 0, time.UTC)
	uc.triage.now = func() time.Time { return resolveAt }

	result, err := uc.Execute(context.Background(), ChangeContactStatusCommand{ID: "ct_1", Status: "RESOLVED"})
	require.NoError(t, err)
	require.NotNil(t, result.ResolvedAt)
	assert.Equal(t, resolveAt, *result.ResolvedAt)

	uc.triage.now = func() time.Time { return resolveAt.Add(time.Hour) }
	result, err = uc.Execute(context.Background(), ChangeContactStatusCommand{ID: "ct_1", Status: "closed"})
	require.NoError(t, err)
	assert.Equal(t, resolveAt, *result.ResolvedAt)
}

func TestChangeContactStatusUseCase_RetriesOnVersionConflict(t *testing.T) {
	reads := 0
	updates := 0
	repo := &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*contact.Contact, error) {
			reads++
			if reads == 1 {
				return storedContact(t, "new", nil), nil
			}
			// the concurrent writer already moved it on
			return storedContact(t, "in_progress", nil), nil
		},
		UpdateFunc: func(ctx context.Context, c *contact.Contact) error {
			updates++
			if updates == 1 {
				return contact.ErrVersionConflict
			}
			return nil
		},
	}
	uc := NewChangeContactStatusUseCase(repo, nil, nopLogger())

	_, err := uc.Execute(context.Background(), ChangeContactStatusCommand{ID: "ct_1", Status: "in_progress"})

	assert.True(t, errors.IsInvalidTransitionError(err))
	assert.Equal(t, 2, reads)
	assert.Equal(t, 1, updates)
}

func TestChangeContactStatusUseCase_GivesUp(t *testing.T) {
	repo := &mockContactRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*contact.Contact, error) {
			return storedContact(t, "new", nil), nil
		},
		UpdateFunc: func(ctx context.Context, c *contact.Contact) error {
			return contact.ErrVersionConflict
		},
	}
	uc := NewChangeContactStatusUseCase(repo, nil, nopLogger())

	_, err := uc.Execute(context.Background(), ChangeContactStatusCommand{ID: "ct_1", Status: "closed"})

	assert.True(t, errors.IsConflictError(err))
}

func TestReopenContactUseCase(t *testing.T) {
	resolved := submittedAt.Add(time.Hour)

	t.Run("closed with assignee", func(t *testing.T) {
		c := storedContact(t, "closed", &resolved)
		metrics := &mockMetrics{}
		uc := NewReopenContactUseCase(repoReturning(c), metrics, nopLogger())
		staff := "staff-7"

		result, err := uc.Execute(context.Background(), ReopenContactCommand{ID: "ct_1", AssignTo: &staff})

		require.NoError(t, err)
		assert.Equal(t, "in_progress", result.Status)
		assert.Nil(t, result.ResolvedAt)
		require.NotNil(t, result.AssignedTo)
		assert.Equal(t, "staff-7", *result.AssignedTo)
		assert.Equal(t, [][2]string{{"closed", "in_progress"}}, metrics.transitions)
	})

	t.Run("open inquiry cannot be reopened", func(t *testing.T) {
		c := storedContact(t, "new", nil)
		uc := NewReopenContactUseCase(repoReturning(c), nil, nopLogger())
		_, err := uc.Execute(context.Background(), ReopenContactCommand{ID: "ct_1"})
		assert.True(t, errors.IsInvalidTransitionError(err))
	})
}

func TestContactMutations_ClosedIsImmutable(t *testing.T) {
	resolved := submittedAt.Add(time.Hour)
	ctx := context.Background()

	newRepo := func() *mockContactRepository {
		return repoReturning(storedContact(t, "closed", &resolved))
	}

	_, err := NewAssignContactUseCase(newRepo(), nopLogger()).Execute(ctx, AssignContactCommand{ID: "ct_1", StaffID: "staff-1"})
	assert.True(t, errors.IsInvalidTransitionError(err))

	_, err = NewAssignContactUseCase(newRepo(), nopLogger()).Execute(ctx, AssignContactCommand{ID: "ct_1"})
	assert.True(t, errors.IsInvalidTransitionError(err))

	_, err = NewRespondContactUseCase(newRepo(), nopLogger()).Execute(ctx, RespondContactCommand{ID: "ct_1", Response: "Sorry"})
	assert.True(t, errors.IsInvalidTransitionError(err))

	_, err = NewChangeContactPriorityUseCase(newRepo(), nopLogger()).Execute(ctx, ChangeContactPriorityCommand{ID: "ct_1", Priority: "urgent"})
	assert.True(t, errors.IsInvalidTransitionError(err))
}

func TestContactMutations_OpenInquiry(t *testing.T) {
	ctx := context.Background()
	c := storedContact(t, "in_progress", nil)
	repo := repoReturning(c)

	result, err := NewAssignContactUseCase(repo, nopLogger()).Execute(ctx, AssignContactCommand{ID: "ct_1", StaffID: " staff-2 "})
	require.NoError(t, err)
	assert.Equal(t, "staff-2", *result.AssignedTo)

	result, err = NewRespondContactUseCase(repo, nopLogger()).Execute(ctx, RespondContactCommand{ID: "ct_1", Response: "We found your bag."})
	require.NoError(t, err)
	assert.Equal(t, "We found your bag.", result.Response)

	result, err = NewChangeContactPriorityUseCase(repo, nopLogger()).Execute(ctx, ChangeContactPriorityCommand{ID: "ct_1", Priority: "Low"})
	require.NoError(t, err)
	assert.Equal(t, "low", result.Priority)

	_, err = NewChangeContactPriorityUseCase(repo, nopLogger()).Execute(ctx, ChangeContactPriorityCommand{ID: "ct_1", Priority: "critical"})
	assert.True(t, errors.IsValidationError(err))

	result, err = NewAssignContactUseCase(repo, nopLogger()).Execute(ctx, AssignContactCommand{ID: "ct_1"})
	require.NoError(t, err)
	assert.Nil(t, result.AssignedTo)

	_, err = NewRespondContactUseCase(repo, nopLogger()).Execute(ctx, RespondContactCommand{ID: "ct_x", Response: "x"})
	assert.True(t, errors.IsNotFoundError(err))
}
