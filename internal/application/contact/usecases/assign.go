package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// AssignContactCommand hands an inquiry to StaffID. An empty StaffID unassigns it.
type AssignContactCommand struct {
	ID      string
	StaffID string
}

type AssignContactUseCase struct {
	triage triage
	logger logger.Interface
}

func NewAssignContactUseCase(contactRepo contact.Repository, logger logger.Interface) *AssignContactUseCase {
	return &AssignContactUseCase{
		triage: newTriage(contactRepo, logger),
		logger: logger,
	}
}

func (uc *AssignContactUseCase) Execute(ctx context.Context, cmd AssignContactCommand) (*dto.ContactDTO, error) {
	uc.logger.Infow("executing assign contact use case", "id", cmd.ID, "staff_id", cmd.StaffID)

	c, err := uc.triage.apply(ctx, cmd.ID, "assign", func(c *contact.Contact, now time.Time) error {
		if strings.TrimSpace(cmd.StaffID) == "" {
			return c.Unassign(now)
		}
		return c.Assign(cmd.StaffID, now)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToContactDTO(c), nil
}
