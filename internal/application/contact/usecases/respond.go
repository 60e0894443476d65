package usecases

import (
	"context"
	"time"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type RespondContactCommand struct {
	ID       string
	Response string
}

type RespondContactUseCase struct {
	triage triage
	logger logger.Interface
}

func NewRespondContactUseCase(contactRepo contact.Repository, logger logger.Interface) *RespondContactUseCase {
	return &RespondContactUseCase{
		triage: newTriage(contactRepo, logger),
		logger: logger,
	}
}

func (uc *RespondContactUseCase) Execute(ctx context.Context, cmd RespondContactCommand) (*dto.ContactDTO, error) {
	uc.logger.Infow("executing respond contact use case", "id", cmd.ID)

	c, err := uc.triage.apply(ctx, cmd.ID, "respond", func(c *contact.Contact, now time.Time) error {
		return c.Respond(cmd.Response, now)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToContactDTO(c), nil
}
