package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyoffice/directory/internal/domain/contact"
	vo "github.com/flyoffice/directory/internal/domain/contact/valueobjects"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/query"
)

func newTestContact(t *testing.T, id, officeID string, created time.Time) *contact.Contact {
	t.Helper()
	c, err := contact.NewContact(id, contact.Submission{
		Name:     "A B",
		Email:    "a@b.com",
		Message:  "need help with refund please",
		OfficeID: officeID,
	}, created)
	require.NoError(t, err)
	return c
}

func TestContactRepository_TransitionRoundTrip(t *testing.T) {
	repo := NewContactRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	c := newTestContact(t, "ct_1", "of_gone", testNow)
	require.NoError(t, repo.Create(ctx, c))

	loaded, err := repo.GetByID(ctx, "ct_1")
	require.NoError(t, err)
	require.NoError(t, loaded.TransitionTo(vo.StatusInProgress, testNow.Add(time.Minute)))
	require.NoError(t, loaded.Assign("usr_1", testNow.Add(time.Minute)))
	require.NoError(t, repo.Update(ctx, loaded))
	require.NoError(t, loaded.TransitionTo(vo.StatusResolved, testNow.Add(time.Hour)))
	require.NoError(t, repo.Update(ctx, loaded))

	got, err := repo.GetByID(ctx, "ct_1")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusResolved, got.Status())
	assert.Equal(t, "usr_1", *got.AssignedTo())
	require.NotNil(t, got.ResolvedAt())
	assert.Equal(t, testNow.Add(time.Hour), *got.ResolvedAt())
	assert.Equal(t, 3, got.Version())
	assert.Equal(t, "of_gone", *got.OfficeID())
}

func TestContactRepository_LostUpdateIsRejected(t *testing.T) {
	repo := NewContactRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestContact(t, "ct_1", "", testNow)))

	a, err := repo.GetByID(ctx, "ct_1")
	require.NoError(t, err)
	b, err := repo.GetByID(ctx, "ct_1")
	require.NoError(t, err)

	require.NoError(t, a.TransitionTo(vo.StatusInProgress, testNow))
	require.NoError(t, repo.Update(ctx, a))

	require.NoError(t, b.TransitionTo(vo.StatusClosed, testNow))
	assert.ErrorIs(t, repo.Update(ctx, b), contact.ErrVersionConflict)

	got, err := repo.GetByID(ctx, "ct_1")
	require.NoError(t, err)
	assert.Equal(t, vo.StatusInProgress, got.Status())
	assert.Nil(t, got.ResolvedAt())
}

func TestContactRepository_ListAndCount(t *testing.T) {
	repo := NewContactRepository(setupTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	for i, id := range []string{"ct_1", "ct_2", "ct_3"} {
		require.NoError(t, repo.Create(ctx, newTestContact(t, id, "of_1", testNow.Add(time.Duration(i)*time.Minute))))
	}
	closed, err := repo.GetByID(ctx, "ct_3")
	require.NoError(t, err)
	require.NoError(t, closed.TransitionTo(vo.StatusClosed, testNow))
	require.NoError(t, repo.Update(ctx, closed))

	open, err := repo.CountOpenByOffice(ctx, "of_1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), open)

	list, total, err := repo.List(ctx, contact.Filter{
		BaseFilter: query.BaseFilter{PageFilter: query.PageFilter{Page: 1, PageSize: 10}},
		Status:     "new",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "ct_2", list[0].ID())
}
