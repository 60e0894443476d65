package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	vo "github.com/flyoffice/directory/internal/domain/contact/valueobjects"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type ChangeContactStatusCommand struct {
	ID     string
	Status string
}

type ChangeContactStatusUseCase struct {
	triage  triage
	metrics TriageMetrics
	logger  logger.Interface
}

func NewChangeContactStatusUseCase(
	contactRepo contact.Repository,
	metrics TriageMetrics,
	logger logger.Interface,
) *ChangeContactStatusUseCase {
	return &ChangeContactStatusUseCase{
		triage:  newTriage(contactRepo, logger),
		metrics: metrics,
		logger:  logger,
	}
}

// Execute moves the inquiry along the triage table. Unknown target states
// are reported the same way as forbidden moves.
func (uc *ChangeContactStatusUseCase) Execute(ctx context.Context, cmd ChangeContactStatusCommand) (*dto.ContactDTO, error) {
	uc.logger.Infow("executing change contact status use case", "id", cmd.ID, "status", cmd.Status)

	next := vo.Status(strings.ToLower(strings.TrimSpace(cmd.Status)))
	var from vo.Status
	c, err := uc.triage.apply(ctx, cmd.ID, "change_status", func(c *contact.Contact, now time.Time) error {
		from = c.Status()
		return c.TransitionTo(next, now)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransitionRecorded(from.String(), next.String())
	}
	uc.logger.Infow("contact status changed", "id", c.ID(), "from", from.String(), "to", next.String())
	return dto.ToContactDTO(c), nil
}
