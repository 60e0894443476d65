package contact

import (
	"context"
	"errors"

	"github.com/flyoffice/directory/internal/shared/query"
)

// ErrVersionConflict indicates the contact was modified since it was loaded.
var ErrVersionConflict = errors.New("version conflict: contact was modified")

type Repository interface {
	Create(ctx context.Context, contact *Contact) error
	// GetByID returns nil, nil when no contact has the id.
	GetByID(ctx context.Context, id string) (*Contact, error)
	// Update writes the contact if the stored version still matches contact.Version().
	Update(ctx context.Context, contact *Contact) error
	List(ctx context.Context, filter Filter) ([]*Contact, int64, error)
	// CountOpenByOffice counts new and in_progress contacts that reference the office.
	CountOpenByOffice(ctx context.Context, officeID string) (int64, error)
}

type Filter struct {
	query.BaseFilter
	Status      string
	InquiryType string
	Priority    string
	AssignedTo  string
	AirlineID   string
	OfficeID    string
}
