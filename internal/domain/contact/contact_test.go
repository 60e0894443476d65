package contact

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/flyoffice/directory/internal/domain/contact/valueobjects"
	"github.com/flyoffice/directory/internal/shared/errors"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestContact(t *testing.T) *Contact {
	t.Helper()
	c, err := NewContact("ct_1", Submission{
		Name:    "A B",
		Email:   "a@b.com",
		Message: "need help with refund please",
	}, testNow)
	require.NoError(t, err)
	return c
}

func TestNewContact(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		c := newTestContact(t)

		assert.Equal(t, vo.StatusNew, c.Status())
		assert.Equal(t, vo.PriorityMedium, c.Priority())
		assert.Equal(t, vo.InquiryGeneral, c.InquiryType())
		assert.Nil(t, c.ResolvedAt())
		assert.Nil(t, c.AssignedTo())
		assert.Nil(t, c.AirlineID())
		assert.Equal(t, 1, c.Version())
	})

	t.Run("should keep dangling references as given", func(t *testing.T) {
		c, err := NewContact("ct_2", Submission{
			Name:        "A B",
			Email:       "a@b.com",
			Message:     "my booking disappeared",
			AirlineID:   "al_doesnotexist",
			OfficeID:    "of_doesnotexist",
			InquiryType: "Booking",
			IPAddress:   "203.0.113.9",
		}, testNow)

		require.NoError(t, err)
		require.NotNil(t, c.AirlineID())
		assert.Equal(t, "al_doesnotexist", *c.AirlineID())
		assert.Equal(t, "of_doesnotexist", *c.OfficeID())
		assert.Equal(t, vo.InquiryBooking, c.InquiryType())
		assert.Equal(t, "203.0.113.9", c.IPAddress())
	})

	t.Run("should enumerate every failing field", func(t *testing.T) {
		_, err := NewContact("ct_3", Submission{
			Name:        "A",
			Email:       "a@b",
			Message:     "too short",
			InquiryType: "sales",
		}, testNow)

		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		var fields []string
		for _, f := range appErr.Fields {
			fields = append(fields, f.Field)
		}
		assert.ElementsMatch(t, []string{"name", "email", "message", "inquiryType"}, fields)
	})

	t.Run("should bound the message length", func(t *testing.T) {
		long := make([]byte, MaxMessageLength+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := NewContact("ct_4", Submission{Name: "A B", Email: "a@b.com", Message: string(long)}, testNow)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestContact_TransitionTo(t *testing.T) {
	t.Run("resolvedAt is the time of the resolving call", func(t *testing.T) {
		c := newTestContact(t)
		t1 := testNow.Add(time.Minute)
		t2 := testNow.Add(time.Hour)

		require.NoError(t, c.TransitionTo(vo.StatusInProgress, t1))
		assert.Nil(t, c.ResolvedAt())

		require.NoError(t, c.TransitionTo(vo.StatusResolved, t2))
		require.NotNil(t, c.ResolvedAt())
		assert.Equal(t, t2, *c.ResolvedAt())
	})

	t.Run("closing a resolved inquiry keeps resolvedAt", func(t *testing.T) {
		c := newTestContact(t)
		t1 := testNow.Add(time.Minute)
		require.NoError(t, c.TransitionTo(vo.StatusInProgress, t1))
		require.NoError(t, c.TransitionTo(vo.StatusResolved, t1))
		require.NoError(t, c.TransitionTo(vo.StatusClosed, t1.Add(time.Hour)))

		assert.Equal(t, t1, *c.ResolvedAt())
	})

	t.Run("reopen clears resolvedAt", func(t *testing.T) {
		c := newTestContact(t)
		require.NoError(t, c.TransitionTo(vo.StatusClosed, testNow))
		require.NotNil(t, c.ResolvedAt())

		require.NoError(t, c.TransitionTo(vo.StatusInProgress, testNow.Add(time.Minute)))
		assert.Nil(t, c.ResolvedAt())
		assert.Equal(t, vo.StatusInProgress, c.Status())
	})

	t.Run("closed cannot move straight to resolved", func(t *testing.T) {
		c := newTestContact(t)
		require.NoError(t, c.TransitionTo(vo.StatusClosed, testNow))
		before := *c.ResolvedAt()

		err := c.TransitionTo(vo.StatusResolved, testNow.Add(time.Hour))
		require.True(t, errors.IsInvalidTransitionError(err))
		appErr := errors.GetAppError(err)
		assert.Equal(t, "closed", appErr.From)
		assert.Equal(t, "resolved", appErr.To)
		assert.Equal(t, vo.StatusClosed, c.Status())
		assert.Equal(t, before, *c.ResolvedAt())
	})
}

// driveTo walks a fresh contact into the requested status.
func driveTo(t *testing.T, target vo.Status) *Contact {
	t.Helper()
	c := newTestContact(t)
	paths := map[vo.Status][]vo.Status{
		vo.StatusNew:        {},
		vo.StatusInProgress: {vo.StatusInProgress},
		vo.StatusResolved:   {vo.StatusInProgress, vo.StatusResolved},
		vo.StatusClosed:     {vo.StatusClosed},
	}
	for _, s := range paths[target] {
		require.NoError(t, c.TransitionTo(s, testNow))
	}
	return c
}

func TestContact_TransitionGrid(t *testing.T) {
	for _, from := range vo.Statuses() {
		for _, to := range append(vo.Statuses(), vo.Status("archived")) {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				c := driveTo(t, from)
				before := c.ResolvedAt()
				err := c.TransitionTo(to, testNow.Add(time.Hour))

				if from.CanTransitionTo(to) {
					require.NoError(t, err)
					assert.Equal(t, to, c.Status())
					return
				}
				require.True(t, errors.IsInvalidTransitionError(err))
				assert.Equal(t, from, c.Status())
				assert.Equal(t, before, c.ResolvedAt())
			})
		}
	}
}

func TestContact_ResolvedAtInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	statuses := vo.Statuses()

	for run := 0; run < 200; run++ {
		c := newTestContact(t)
		at := testNow
		for step := 0; step < 30; step++ {
			at = at.Add(time.Minute)
			_ = c.TransitionTo(statuses[rng.IntN(len(statuses))], at)

			if c.Status().IsTerminal() {
				require.NotNil(t, c.ResolvedAt(), "run %d step %d status %s", run, step, c.Status())
			} else {
				require.Nil(t, c.ResolvedAt(), "run %d step %d status %s", run, step, c.Status())
			}
		}
	}
}

func TestContact_Reopen(t *testing.T) {
	t.Run("reassigns in the same call", func(t *testing.T) {
		c := driveTo(t, vo.StatusClosed)
		staff := "usr_7"
		require.NoError(t, c.Reopen(&staff, testNow.Add(time.Hour)))

		assert.Equal(t, vo.StatusInProgress, c.Status())
		require.NotNil(t, c.AssignedTo())
		assert.Equal(t, "usr_7", *c.AssignedTo())
		assert.Nil(t, c.ResolvedAt())
	})

	t.Run("keeps the assignee when none is given", func(t *testing.T) {
		c := driveTo(t, vo.StatusResolved)
		require.NoError(t, c.Assign("usr_1", testNow))
		require.NoError(t, c.Reopen(nil, testNow.Add(time.Hour)))
		assert.Equal(t, "usr_1", *c.AssignedTo())
	})

	t.Run("rejects open inquiries", func(t *testing.T) {
		c := driveTo(t, vo.StatusInProgress)
		err := c.Reopen(nil, testNow)
		assert.True(t, errors.IsInvalidTransitionError(err))
	})

	t.Run("rejects a blank assignee without changing status", func(t *testing.T) {
		c := driveTo(t, vo.StatusClosed)
		blank := " "
		err := c.Reopen(&blank, testNow)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, vo.StatusClosed, c.Status())
	})
}

func TestContact_ClosedIsImmutable(t *testing.T) {
	c := driveTo(t, vo.StatusClosed)

	assert.True(t, errors.IsInvalidTransitionError(c.Assign("usr_1", testNow)))
	assert.True(t, errors.IsInvalidTransitionError(c.Unassign(testNow)))
	assert.True(t, errors.IsInvalidTransitionError(c.Respond("thanks", testNow)))
	assert.True(t, errors.IsInvalidTransitionError(c.ChangePriority(vo.PriorityUrgent, testNow)))
	assert.Nil(t, c.AssignedTo())
	assert.Empty(t, c.Response())
	assert.Equal(t, vo.PriorityMedium, c.Priority())
}

func TestContact_MutationsOutsideClosed(t *testing.T) {
	for _, s := range []vo.Status{vo.StatusNew, vo.StatusInProgress, vo.StatusResolved} {
		t.Run(s.String(), func(t *testing.T) {
			c := driveTo(t, s)
			require.NoError(t, c.Assign("usr_2", testNow))
			require.NoError(t, c.Respond("  We have issued your refund.  ", testNow))
			require.NoError(t, c.ChangePriority(vo.PriorityLow, testNow))
			require.NoError(t, c.ChangePriority(vo.PriorityUrgent, testNow))

			assert.Equal(t, "usr_2", *c.AssignedTo())
			assert.Equal(t, "We have issued your refund.", c.Response())
			assert.Equal(t, vo.PriorityUrgent, c.Priority())
			assert.Equal(t, s, c.Status())
		})
	}

	c := newTestContact(t)
	assert.True(t, errors.IsValidationError(c.Assign("", testNow)))
	assert.True(t, errors.IsValidationError(c.Respond("   ", testNow)))
	assert.True(t, errors.IsValidationError(c.ChangePriority(vo.Priority("critical"), testNow)))
}

func TestContact_BelongsTo(t *testing.T) {
	c := newTestContact(t)
	assert.True(t, c.BelongsTo(" A@B.com "))
	assert.False(t, c.BelongsTo("x@b.com"))
}
