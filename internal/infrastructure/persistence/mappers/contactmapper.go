package mappers

import (
	"fmt"
	"time"

	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
	"github.com/flyoffice/directory/internal/shared/biztime"
)

// ContactMapper handles the conversion between Contact domain entities and persistence models.
type ContactMapper interface {
	ToModel(c *contact.Contact) *models.ContactModel
	ToDomain(model *models.ContactModel) (*contact.Contact, error)
}

type ContactMapperImpl struct{}

func NewContactMapper() ContactMapper {
	return &ContactMapperImpl{}
}

func (m *ContactMapperImpl) ToModel(c *contact.Contact) *models.ContactModel {
	model := &models.ContactModel{
		ID:          c.ID(),
		Name:        c.Name(),
		Email:       c.Email(),
		Phone:       c.Phone(),
		Subject:     c.Subject(),
		Message:     c.Message(),
		AirlineID:   c.AirlineID(),
		OfficeID:    c.OfficeID(),
		InquiryType: c.InquiryType().String(),
		Status:      c.Status().String(),
		Priority:    c.Priority().String(),
		Response:    c.Response(),
		AssignedTo:  c.AssignedTo(),
		IPAddress:   c.IPAddress(),
		Version:     c.Version(),
		CreatedAt:   c.CreatedAt().UnixMilli(),
		UpdatedAt:   c.UpdatedAt().UnixMilli(),
	}
	if c.ResolvedAt() != nil {
		resolved := c.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}
	return model
}

func (m *ContactMapperImpl) ToDomain(model *models.ContactModel) (*contact.Contact, error) {
	if model == nil {
		return nil, nil
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := biztime.FromMillis(*model.ResolvedAt)
		resolvedAt = &t
	}

	c, err := contact.ReconstructContact(
		model.ID,
		contact.Submission{
			Name:        model.Name,
			Email:       model.Email,
			Phone:       model.Phone,
			Subject:     model.Subject,
			Message:     model.Message,
			AirlineID:   deref(model.AirlineID),
			OfficeID:    deref(model.OfficeID),
			InquiryType: model.InquiryType,
			IPAddress:   model.IPAddress,
		},
		model.Status,
		model.Priority,
		model.Response,
		model.AssignedTo,
		resolvedAt,
		model.Version,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct contact: %w", err)
	}
	return c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
