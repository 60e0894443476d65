package usecases

import (
	"context"
	"time"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	vo "github.com/flyoffice/directory/internal/domain/contact/valueobjects"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// ReopenContactCommand reopens a resolved or closed inquiry. A non-nil
// AssignTo reassigns it in the same write.
type ReopenContactCommand struct {
	ID       string
	AssignTo *string
}

type ReopenContactUseCase struct {
	triage  triage
	metrics TriageMetrics
	logger  logger.Interface
}

func NewReopenContactUseCase(contactRepo contact.Repository, metrics TriageMetrics, logger logger.Interface) *ReopenContactUseCase {
	return &ReopenContactUseCase{
		triage:  newTriage(contactRepo, logger),
		metrics: metrics,
		logger:  logger,
	}
}

func (uc *ReopenContactUseCase) Execute(ctx context.Context, cmd ReopenContactCommand) (*dto.ContactDTO, error) {
	uc.logger.Infow("executing reopen contact use case", "id", cmd.ID)

	var from vo.Status
	c, err := uc.triage.apply(ctx, cmd.ID, "reopen", func(c *contact.Contact, now time.Time) error {
		from = c.Status()
		return c.Reopen(cmd.AssignTo, now)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransitionRecorded(from.String(), vo.StatusInProgress.String())
	}
	uc.logger.Infow("contact reopened", "id", c.ID(), "from", from.String())
	return dto.ToContactDTO(c), nil
}
