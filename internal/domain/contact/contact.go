package contact

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/flyoffice/directory/internal/domain/contact/valueobjects"
	"github.com/flyoffice/directory/internal/domain/shared"
	"github.com/flyoffice/directory/internal/shared/errors"
)

const (
	MinMessageLength  = 10
	MaxMessageLength  = 2000
	MaxSubjectLength  = 200
	MaxResponseLength = 5000
)

// Submission is a public inquiry as received from the sender.
type Submission struct {
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

type Contact struct {
	id          string
	name        string
	email       string
	phone       string
	subject     string
	message     string
	airlineID   *string
	officeID    *string
	inquiryType vo.InquiryType
	status      vo.Status
	priority    vo.Priority
	response    string
	assignedTo  *string
	resolvedAt  *time.Time
	ipAddress   string
	version     int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewContact validates a submission and opens it as new with medium priority.
// Airline and office references are stored without being resolved.
func NewContact(id string, s Submission, now time.Time) (*Contact, error) {
	var fields errors.FieldErrors
	if id == "" {
		fields.Add("id", "is required")
	}

	name := strings.TrimSpace(s.Name)
	if !shared.LenBetween(name, 2, 100) {
		fields.Add("name", "must be between 2 and 100 characters")
	}
	email := strings.TrimSpace(s.Email)
	if !shared.IsMailbox(email) {
		fields.Add("email", "must be a valid email address")
	}
	phone := strings.TrimSpace(s.Phone)
	if shared.RuneLen(phone) > 40 {
		fields.Add("phone", "must be at most 40 characters")
	}
	subject := strings.TrimSpace(s.Subject)
	if shared.RuneLen(subject) > MaxSubjectLength {
		fields.Add("subject", fmt.Sprintf("must be at most %d characters", MaxSubjectLength))
	}
	message := strings.TrimSpace(s.Message)
	if !shared.LenBetween(message, MinMessageLength, MaxMessageLength) {
		fields.Add("message", fmt.Sprintf("must be between %d and %d characters", MinMessageLength, MaxMessageLength))
	}

	inquiryType := vo.InquiryGeneral
	if raw := strings.TrimSpace(s.InquiryType); raw != "" {
		it, err := vo.NewInquiryType(strings.ToLower(raw))
		if err != nil {
			fields.Add("inquiryType", "must be one of general, booking, cancellation, refund, complaint, feedback, support")
		}
		inquiryType = it
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	return &Contact{
		id:          id,
		name:        name,
		email:       email,
		phone:       phone,
		subject:     subject,
		message:     message,
		airlineID:   optional(s.AirlineID),
		officeID:    optional(s.OfficeID),
		inquiryType: inquiryType,
		status:      vo.StatusNew,
		priority:    vo.PriorityMedium,
		ipAddress:   strings.TrimSpace(s.IPAddress),
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructContact rebuilds a contact from storage.
func ReconstructContact(
	id string,
	s Submission,
	status, priority, response string,
	assignedTo *string,
	resolvedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
) (*Contact, error) {
	if id == "" {
		return nil, fmt.Errorf("contact ID is required")
	}
	st, err := vo.NewStatus(status)
	if err != nil {
		return nil, err
	}
	p, err := vo.NewPriority(priority)
	if err != nil {
		return nil, err
	}
	it, err := vo.NewInquiryType(s.InquiryType)
	if err != nil {
		return nil, err
	}

	return &Contact{
		id:          id,
		name:        s.Name,
		email:       s.Email,
		phone:       s.Phone,
		subject:     s.Subject,
		message:     s.Message,
		airlineID:   optional(s.AirlineID),
		officeID:    optional(s.OfficeID),
		inquiryType: it,
		status:      st,
		priority:    p,
		response:    response,
		assignedTo:  assignedTo,
		resolvedAt:  resolvedAt,
		ipAddress:   s.IPAddress,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Contact) ID() string                  { return c.id }
func (c *Contact) Name() string                { return c.name }
func (c *Contact) Email() string               { return c.email }
func (c *Contact) Phone() string               { return c.phone }
func (c *Contact) Subject() string             { return c.subject }
func (c *Contact) Message() string             { return c.message }
func (c *Contact) AirlineID() *string          { return c.airlineID }
func (c *Contact) OfficeID() *string           { return c.officeID }
func (c *Contact) InquiryType() vo.InquiryType { return c.inquiryType }
func (c *Contact) Status() vo.Status           { return c.status }
func (c *Contact) Priority() vo.Priority       { return c.priority }
func (c *Contact) Response() string            { return c.response }
func (c *Contact) AssignedTo() *string         { return c.assignedTo }
func (c *Contact) ResolvedAt() *time.Time      { return c.resolvedAt }
func (c *Contact) IPAddress() string           { return c.ipAddress }
func (c *Contact) Version() int                { return c.version }
func (c *Contact) CreatedAt() time.Time        { return c.createdAt }
func (c *Contact) UpdatedAt() time.Time        { return c.updatedAt }

// BelongsTo reports whether email matches the sender, ignoring case.
func (c *Contact) BelongsTo(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), c.email)
}

// TransitionTo moves the inquiry along the triage table. A rejected move
// leaves the contact untouched.
func (c *Contact) TransitionTo(next vo.Status, now time.Time) error {
	if !next.IsValid() || !c.status.CanTransitionTo(next) {
		return errors.NewInvalidTransitionError(c.status.String(), next.String())
	}

	if c.status.IsReopen(next) {
		c.resolvedAt = nil
	}
	if next.IsTerminal() && c.resolvedAt == nil {
		at := now
		c.resolvedAt = &at
	}
	c.status = next
	c.updatedAt = now
	return nil
}

// Reopen sends a resolved or closed inquiry back to in_progress and, when
// assignee is given, hands it to that staff member in the same step.
func (c *Contact) Reopen(assignee *string, now time.Time) error {
	if !c.status.IsTerminal() {
		return errors.NewInvalidTransitionError(c.status.String(), vo.StatusInProgress.String())
	}
	if assignee != nil && strings.TrimSpace(*assignee) == "" {
		return errors.NewFieldValidationError([]errors.FieldError{{Field: "assignedTo", Message: "must not be blank"}})
	}
	if err := c.TransitionTo(vo.StatusInProgress, now); err != nil {
		return err
	}
	if assignee != nil {
		c.assignedTo = optional(*assignee)
	}
	return nil
}

// Assign hands the inquiry to a staff member. Closed inquiries must be reopened first.
func (c *Contact) Assign(staffID string, now time.Time) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	if strings.TrimSpace(staffID) == "" {
		return errors.NewFieldValidationError([]errors.FieldError{{Field: "assignedTo", Message: "is required"}})
	}
	c.assignedTo = optional(staffID)
	c.updatedAt = now
	return nil
}

func (c *Contact) Unassign(now time.Time) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	c.assignedTo = nil
	c.updatedAt = now
	return nil
}

// Respond records the staff reply shown to the sender.
func (c *Contact) Respond(text string, now time.Time) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	text = strings.TrimSpace(text)
	if !shared.LenBetween(text, 1, MaxResponseLength) {
		return errors.NewFieldValidationError([]errors.FieldError{{
			Field:   "response",
			Message: fmt.Sprintf("must be between 1 and %d characters", MaxResponseLength),
		}})
	}
	c.response = text
	c.updatedAt = now
	return nil
}

// ChangePriority accepts any priority. Escalation is not required to be monotonic.
func (c *Contact) ChangePriority(p vo.Priority, now time.Time) error {
	if err := c.ensureMutable(); err != nil {
		return err
	}
	if !p.IsValid() {
		return errors.NewFieldValidationError([]errors.FieldError{{Field: "priority", Message: "must be one of low, medium, high, urgent"}})
	}
	c.priority = p
	c.updatedAt = now
	return nil
}

func (c *Contact) MarkPersisted(version int) {
	c.version = version
}

func (c *Contact) ensureMutable() error {
	if c.status.IsClosed() {
		return errors.NewInvalidTransitionError(c.status.String(), c.status.String(), "closed inquiries must be reopened first")
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
