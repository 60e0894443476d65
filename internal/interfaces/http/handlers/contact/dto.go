package contact

import (
	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/application/contact/usecases"
	"github.com/flyoffice/directory/internal/application/directory"
)

// SubmitInquiryRequest is the public contact form. Lengths and formats are
// checked by the domain so every failing field is reported together.
type SubmitInquiryRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	AirlineID   string `json:"airlineId"`
	OfficeID    string `json:"officeId"`
	InquiryType string `json:"inquiryType"`
}

func (r *SubmitInquiryRequest) ToCommand(ipAddress string) usecases.CreateContactCommand {
	return usecases.CreateContactCommand{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Subject:     r.Subject,
		Message:     r.Message,
		AirlineID:   r.AirlineID,
		OfficeID:    r.OfficeID,
		InquiryType: r.InquiryType,
		IPAddress:   ipAddress,
	}
}

type ReceiptRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ReopenRequest struct {
	AssignTo *string `json:"assignTo"`
}

// AssignRequest with an empty staffId clears the assignee.
type AssignRequest struct {
	StaffID string `json:"staffId" validate:"max=64"`
}

type RespondRequest struct {
	Response string `json:"response" validate:"required"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" validate:"required"`
}

func parseContactFilter(c *gin.Context) directory.ContactFilter {
	return directory.ContactFilter{
		Status:      c.Query("status"),
		InquiryType: c.Query("inquiry_type"),
		Priority:    c.Query("priority"),
		AssignedTo:  c.Query("assigned_to"),
		AirlineID:   c.Query("airline_id"),
	}
}
