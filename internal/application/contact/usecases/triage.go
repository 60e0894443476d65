package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// maxTriageAttempts bounds reload-and-retry after a concurrent writer won.
const maxTriageAttempts = 3

// triage loads a contact, applies a mutation and writes it back under the
// version check. Each retry re-validates against fresh state.
type triage struct {
	repo   contact.Repository
	logger logger.Interface
	now    func() time.Time
}

func newTriage(repo contact.Repository, log logger.Interface) triage {
	return triage{repo: repo, logger: log, now: biztime.NowUTC}
}

func (t triage) apply(ctx context.Context, id, op string, mutate func(c *contact.Contact, now time.Time) error) (*contact.Contact, error) {
	if id == "" {
		return nil, errors.NewValidationError("contact ID is required")
	}

	for attempt := 1; attempt <= maxTriageAttempts; attempt++ {
		c, err := t.repo.GetByID(ctx, id)
		if err != nil {
			t.logger.Errorw("failed to get contact", "id", id, "op", op, "error", err)
			return nil, err
		}
		if c == nil {
			return nil, errors.NewNotFoundError("contact not found", id)
		}

		if err := mutate(c, t.now()); err != nil {
			t.logger.Warnw("contact triage rejected", "id", id, "op", op, "status", c.Status().String(), "error", err)
			return nil, err
		}

		err = t.repo.Update(ctx, c)
		if err == nil {
			return c, nil
		}
		if !stderrors.Is(err, contact.ErrVersionConflict) {
			t.logger.Errorw("failed to update contact", "id", id, "op", op, "error", err)
			return nil, err
		}
		t.logger.Warnw("version conflict during contact triage, retrying", "id", id, "op", op, "attempt", attempt)
	}

	return nil, errors.NewConflictError("contact was modified concurrently, please retry", id)
}
