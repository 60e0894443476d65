package dto

import (
	"time"

	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/mapper"
)

type ContactDTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Subject     string     `json:"subject,omitempty"`
	Message     string     `json:"message"`
	AirlineID   *string    `json:"airlineId,omitempty"`
	AirlineName string     `json:"airlineName,omitempty"`
	OfficeID    *string    `json:"officeId,omitempty"`
	OfficeCity  string     `json:"officeCity,omitempty"`
	InquiryType string     `json:"inquiryType"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Response    string     `json:"response,omitempty"`
	AssignedTo  *string    `json:"assignedTo,omitempty"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	IPAddress   string     `json:"ipAddress,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ReceiptDTO is what the sender of an inquiry may see about it.
type ReceiptDTO struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToContactDTO(c *contact.Contact) *ContactDTO {
	if c == nil {
		return nil
	}
	return &ContactDTO{
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
		ResolvedAt:  c.ResolvedAt(),
		IPAddress:   c.IPAddress(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func ToContactDTOList(list []*contact.Contact) []*ContactDTO {
	return mapper.MapSlice(list, ToContactDTO)
}

func ToReceiptDTO(c *contact.Contact) *ReceiptDTO {
	return &ReceiptDTO{
		ID:        c.ID(),
		Status:    c.Status().String(),
		Subject:   c.Subject(),
		CreatedAt: c.CreatedAt(),
	}
}

// ReceiptOf trims a full inquiry to what its submitter may see.
func ReceiptOf(c *ContactDTO) *ReceiptDTO {
	if c == nil {
		return nil
	}
	return &ReceiptDTO{
		ID:        c.ID,
		Status:    c.Status,
		Subject:   c.Subject,
		CreatedAt: c.CreatedAt,
	}
}
