// Package directory is the paginated read path over airlines, offices and
// inquiries, gated by the caller's role.
package directory

import (
	"context"
	"strings"

	airlinedto "github.com/flyoffice/directory/internal/application/airline/dto"
	contactdto "github.com/flyoffice/directory/internal/application/contact/dto"
	officedto "github.com/flyoffice/directory/internal/application/office/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	airlinevo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/domain/contact"
	contactvo "github.com/flyoffice/directory/internal/domain/contact/valueobjects"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/shared/constants"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/query"
)

// Authorizer refuses callers that lack a capability.
type Authorizer interface {
	Require(role string, resource permission.Resource) error
}

// Filter selects the entity kind listed by List.
type Filter interface {
	entity() string
}

type AirlineFilter struct {
	Query           string
	Category        string
	IncludeInactive bool
}

type OfficeFilter struct {
	AirlineID       string
	Country         string
	City            string
	IncludeInactive bool
}

type ContactFilter struct {
	Status      string
	InquiryType string
	Priority    string
	AssignedTo  string
	AirlineID   string
}

func (AirlineFilter) entity() string { return "airlines" }
func (OfficeFilter) entity() string  { return "offices" }
func (ContactFilter) entity() string { return "contacts" }

// Page is one slice of a listing plus the size of the whole result.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
}

type Service struct {
	airlines    airline.Repository
	offices     office.Repository
	contacts    contact.Repository
	authz       Authorizer
	maxPageSize int
	logger      logger.Interface
}

// NewService builds the façade. A non-positive maxPageSize uses the package default.
func NewService(
	airlines airline.Repository,
	offices office.Repository,
	contacts contact.Repository,
	authz Authorizer,
	maxPageSize int,
	logger logger.Interface,
) *Service {
	if maxPageSize <= 0 {
		maxPageSize = constants.MaxPageSize
	}
	return &Service{
		airlines:    airlines,
		offices:     offices,
		contacts:    contacts,
		authz:       authz,
		maxPageSize: maxPageSize,
		logger:      logger,
	}
}

// List dispatches on the filter kind. Items hold the typed DTOs of that kind.
func (s *Service) List(ctx context.Context, role string, filter Filter, page, pageSize int) (*Page[any], error) {
	switch f := filter.(type) {
	case AirlineFilter:
		p, err := s.ListAirlines(ctx, role, f, page, pageSize)
		return erase(p, err)
	case OfficeFilter:
		p, err := s.ListOffices(ctx, role, f, page, pageSize)
		return erase(p, err)
	case ContactFilter:
		p, err := s.ListContacts(ctx, role, f, page, pageSize)
		return erase(p, err)
	}
	return nil, errors.NewValidationError("unsupported filter")
}

func erase[T any](p *Page[T], err error) (*Page[any], error) {
	if err != nil {
		return nil, err
	}
	items := make([]any, len(p.Items))
	for i, it := range p.Items {
		items[i] = it
	}
	return &Page[any]{Items: items, TotalCount: p.TotalCount}, nil
}

// ListAirlines orders by creation time, newest first, unless a text query is
// given, in which case relevance decides.
func (s *Service) ListAirlines(ctx context.Context, role string, f AirlineFilter, page, pageSize int) (*Page[*airlinedto.AirlineDTO], error) {
	if f.IncludeInactive {
		if err := s.authz.Require(role, permission.ResourceOffices); err != nil {
			return nil, err
		}
	}

	var fields errors.FieldErrors
	pf := s.pageFilter(page, pageSize, &fields)
	category := ""
	if f.Category != "" {
		c, err := airlinevo.NewCategory(f.Category)
		if err != nil {
			fields.Add("category", "must be one of Premium, Major, Regional, LowCost")
		}
		category = c.String()
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	q := airline.NameKey(f.Query)
	if q != "" {
		candidates, err := s.airlines.SearchCandidates(ctx, airline.SearchFilter{
			Query:           q,
			Category:        category,
			IncludeInactive: f.IncludeInactive,
		})
		if err != nil {
			s.logger.Errorw("failed to search airlines", "query", q, "error", err)
			return nil, err
		}
		ranked := airline.RankAll(candidates, q)
		window := pageOf(ranked, pf)
		items := make([]*airlinedto.AirlineDTO, 0, len(window))
		for _, sc := range window {
			items = append(items, airlinedto.ToAirlineDTO(sc.Airline))
		}
		return &Page[*airlinedto.AirlineDTO]{Items: items, TotalCount: int64(len(ranked))}, nil
	}

	list, total, err := s.airlines.List(ctx, airline.Filter{
		BaseFilter:      query.BaseFilter{PageFilter: pf},
		Category:        category,
		IncludeInactive: f.IncludeInactive,
	})
	if err != nil {
		s.logger.Errorw("failed to list airlines", "error", err)
		return nil, err
	}
	return &Page[*airlinedto.AirlineDTO]{Items: nonNil(airlinedto.ToAirlineDTOList(list)), TotalCount: total}, nil
}

func (s *Service) ListOffices(ctx context.Context, role string, f OfficeFilter, page, pageSize int) (*Page[*officedto.OfficeDTO], error) {
	if f.IncludeInactive {
		if err := s.authz.Require(role, permission.ResourceOffices); err != nil {
			return nil, err
		}
	}

	var fields errors.FieldErrors
	pf := s.pageFilter(page, pageSize, &fields)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	list, total, err := s.offices.List(ctx, office.Filter{
		BaseFilter:      query.BaseFilter{PageFilter: pf},
		AirlineID:       strings.TrimSpace(f.AirlineID),
		Country:         strings.TrimSpace(f.Country),
		City:            strings.TrimSpace(f.City),
		IncludeInactive: f.IncludeInactive,
	})
	if err != nil {
		s.logger.Errorw("failed to list offices", "error", err)
		return nil, err
	}
	return &Page[*officedto.OfficeDTO]{Items: nonNil(officedto.ToOfficeDTOList(list)), TotalCount: total}, nil
}

// ListContacts is staff only. The capability is checked before the filter is
// even looked at.
func (s *Service) ListContacts(ctx context.Context, role string, f ContactFilter, page, pageSize int) (*Page[*contactdto.ContactDTO], error) {
	if err := s.authz.Require(role, permission.ResourceApprovals); err != nil {
		return nil, err
	}

	var fields errors.FieldErrors
	pf := s.pageFilter(page, pageSize, &fields)
	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status != "" {
		if _, err := contactvo.NewStatus(status); err != nil {
			fields.Add("status", "must be one of new, in_progress, resolved, closed")
		}
	}
	inquiryType := strings.ToLower(strings.TrimSpace(f.InquiryType))
	if inquiryType != "" {
		if _, err := contactvo.NewInquiryType(inquiryType); err != nil {
			fields.Add("inquiryType", "is not a known inquiry type")
		}
	}
	priority := strings.ToLower(strings.TrimSpace(f.Priority))
	if priority != "" {
		if _, err := contactvo.NewPriority(priority); err != nil {
			fields.Add("priority", "must be one of low, medium, high, urgent")
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	list, total, err := s.contacts.List(ctx, contact.Filter{
		BaseFilter:  query.BaseFilter{PageFilter: pf},
		Status:      status,
		InquiryType: inquiryType,
		Priority:    priority,
		AssignedTo:  strings.TrimSpace(f.AssignedTo),
		AirlineID:   strings.TrimSpace(f.AirlineID),
	})
	if err != nil {
		s.logger.Errorw("failed to list contacts", "error", err)
		return nil, err
	}
	return &Page[*contactdto.ContactDTO]{Items: nonNil(contactdto.ToContactDTOList(list)), TotalCount: total}, nil
}

func (s *Service) pageFilter(page, pageSize int, fields *errors.FieldErrors) query.PageFilter {
	if page < 1 {
		fields.Add("page", "must be at least 1")
	}
	if pageSize < 1 {
		fields.Add("pageSize", "must be at least 1")
	}
	return query.PageFilter{Page: page, PageSize: min(pageSize, s.maxPageSize), MaxSize: s.maxPageSize}
}

func pageOf[T any](all []T, pf query.PageFilter) []T {
	start := pf.Offset()
	if start >= len(all) {
		return nil
	}
	return all[start:min(start+pf.Limit(), len(all))]
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
