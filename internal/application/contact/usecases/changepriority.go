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

type ChangeContactPriorityCommand struct {
	ID       string
	Priority string
}

type ChangeContactPriorityUseCase struct {
	triage triage
	logger logger.Interface
}

func NewChangeContactPriorityUseCase(contactRepo contact.Repository, logger logger.Interface) *ChangeContactPriorityUseCase {
	return &ChangeContactPriorityUseCase{
		triage: newTriage(contactRepo, logger),
		logger: logger,
	}
}

func (uc *ChangeContactPriorityUseCase) Execute(ctx context.Context, cmd ChangeContactPriorityCommand) (*dto.ContactDTO, error) {
	uc.logger.Infow("executing change contact priority use case", "id", cmd.ID, "priority", cmd.Priority)

	next := vo.Priority(strings.ToLower(strings.TrimSpace(cmd.Priority)))
	var prev vo.Priority
	c, err := uc.triage.apply(ctx, cmd.ID, "change_priority", func(c *contact.Contact, now time.Time) error {
		prev = c.Priority()
		return c.ChangePriority(next, now)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("contact priority changed", "id", c.ID(), "from", prev.String(), "to", next.String(), "escalation", next.IsEscalationFrom(prev))
	return dto.ToContactDTO(c), nil
}
