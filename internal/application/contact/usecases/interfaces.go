package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/contact/dto"
)

// HTMLStripper removes markup from sender-supplied text.
type HTMLStripper interface {
	StripHTML(s string) string
}

// InquiryNotifier tells staff about a new inquiry.
type InquiryNotifier interface {
	NotifyNewInquiry(ctx context.Context, inquiry *dto.ContactDTO) error
}

// TriageMetrics records inquiry counters.
type TriageMetrics interface {
	InquirySubmitted(inquiryType string)
	TransitionRecorded(from, to string)
}

type AirlineNameLookup interface {
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type OfficeCityLookup interface {
	GetCitiesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type CreateContactExecutor interface {
	Execute(ctx context.Context, cmd CreateContactCommand) (*dto.ContactDTO, error)
}

type ChangeContactStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeContactStatusCommand) (*dto.ContactDTO, error)
}

type ReopenContactExecutor interface {
	Execute(ctx context.Context, cmd ReopenContactCommand) (*dto.ContactDTO, error)
}

type AssignContactExecutor interface {
	Execute(ctx context.Context, cmd AssignContactCommand) (*dto.ContactDTO, error)
}

type RespondContactExecutor interface {
	Execute(ctx context.Context, cmd RespondContactCommand) (*dto.ContactDTO, error)
}

type ChangeContactPriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangeContactPriorityCommand) (*dto.ContactDTO, error)
}

type GetContactExecutor interface {
	Execute(ctx context.Context, id string) (*dto.ContactDTO, error)
}

type GetContactReceiptExecutor interface {
	Execute(ctx context.Context, query GetContactReceiptQuery) (*dto.ReceiptDTO, error)
}
