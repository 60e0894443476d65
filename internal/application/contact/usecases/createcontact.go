package usecases

import (
	"context"
	"time"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/goroutine"
	"github.com/flyoffice/directory/internal/shared/id"
	"github.com/flyoffice/directory/internal/shared/logger"
)

const notifyTimeout = 30 * time.Second

type CreateContactCommand struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	AirlineID   string
	OfficeID    string
	InquiryType string
	IPAddress   string
}

type CreateContactUseCase struct {
	contactRepo contact.Repository
	stripper    HTMLStripper
	notifier    InquiryNotifier
	metrics     TriageMetrics
	logger      logger.Interface
}

// NewCreateContactUseCase wires the submission path. notifier and metrics may be nil.
func NewCreateContactUseCase(
	contactRepo contact.Repository,
	stripper HTMLStripper,
	notifier InquiryNotifier,
	metrics TriageMetrics,
	logger logger.Interface,
) *CreateContactUseCase {
	return &CreateContactUseCase{
		contactRepo: contactRepo,
		stripper:    stripper,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, cmd CreateContactCommand) (*dto.ContactDTO, error) {
	uc.logger.Infow("executing create contact use case", "inquiry_type", cmd.InquiryType, "ip", cmd.IPAddress)

	contactID, err := id.NewContactID()
	if err != nil {
		uc.logger.Errorw("failed to generate contact ID", "error", err)
		return nil, errors.NewInternalError("failed to generate contact ID")
	}

	c, err := contact.NewContact(contactID, contact.Submission{
		Name:        uc.strip(cmd.Name),
		Email:       cmd.Email,
		Phone:       uc.strip(cmd.Phone),
		Subject:     uc.strip(cmd.Subject),
		Message:     uc.strip(cmd.Message),
		AirlineID:   cmd.AirlineID,
		OfficeID:    cmd.OfficeID,
		InquiryType: cmd.InquiryType,
		IPAddress:   cmd.IPAddress,
	}, biztime.NowUTC())
	if err != nil {
		uc.logger.Warnw("invalid contact submission", "error", err)
		return nil, err
	}

	if err := uc.contactRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create contact", "error", err)
		return nil, err
	}

	result := dto.ToContactDTO(c)
	if uc.metrics != nil {
		uc.metrics.InquirySubmitted(result.InquiryType)
	}
	if uc.notifier != nil {
		notice := *result
		goroutine.SafeGo(uc.logger, "notify-new-inquiry", func() {
			nctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
			defer cancel()
			if err := uc.notifier.NotifyNewInquiry(nctx, &notice); err != nil {
				uc.logger.Warnw("failed to notify staff of new inquiry", "id", notice.ID, "error", err)
			}
		})
	}

	uc.logger.Infow("contact created successfully", "id", c.ID(), "inquiry_type", result.InquiryType)
	return result, nil
}

func (uc *CreateContactUseCase) strip(s string) string {
	if uc.stripper == nil || s == "" {
		return s
	}
	return uc.stripper.StripHTML(s)
}
