package office

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/flyoffice/directory/internal/domain/office/valueobjects"
	"github.com/flyoffice/directory/internal/domain/shared"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/slug"
)

// Details are the editable attributes of an office.
type Details struct {
	City     string
	Country  string
	Address  string
	Phone    string
	Email    string
	OpensAt  string
	ClosesAt string
	PhotoURL string
}

type Office struct {
	id        string
	airlineID string
	slug      string
	city      string
	country   string
	address   string
	phone     string
	email     string
	hours     vo.OperatingHours
	photoURL  string
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewOffice validates d and derives the routing slug from the owning airline's name.
func NewOffice(id, airlineID, airlineName string, d Details, now time.Time) (*Office, error) {
	var fields errors.FieldErrors
	if id == "" {
		fields.Add("id", "is required")
	}
	if strings.TrimSpace(airlineID) == "" {
		fields.Add("airlineId", "is required")
	}
	hours := validateDetails(d, &fields)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	o := &Office{
		id:        id,
		airlineID: airlineID,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
	o.apply(d, hours)
	o.slug = DeriveSlug(airlineName, o.city)
	return o, nil
}

func ReconstructOffice(
	id, airlineID, slugValue string,
	d Details,
	version int,
	createdAt, updatedAt time.Time,
) (*Office, error) {
	if id == "" {
		return nil, fmt.Errorf("office ID is required")
	}
	hours, err := vo.NewOperatingHours(d.OpensAt, d.ClosesAt)
	if err != nil {
		return nil, err
	}
	return &Office{
		id:        id,
		airlineID: airlineID,
		slug:      slugValue,
		city:      d.City,
		country:   d.Country,
		address:   d.Address,
		phone:     d.Phone,
		email:     d.Email,
		hours:     hours,
		photoURL:  d.PhotoURL,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// DeriveSlug builds the office slug. It is not unique across offices.
func DeriveSlug(airlineName, city string) string {
	return slug.Slugify(airlineName + " " + city)
}

// CityKey folds a city name for the (airlineId, city) lookup.
func CityKey(city string) string {
	return strings.ToLower(strings.Join(strings.Fields(city), " "))
}

func (o *Office) ID() string               { return o.id }
func (o *Office) AirlineID() string        { return o.airlineID }
func (o *Office) Slug() string             { return o.slug }
func (o *Office) City() string             { return o.city }
func (o *Office) CityKey() string          { return CityKey(o.city) }
func (o *Office) Country() string          { return o.country }
func (o *Office) Address() string          { return o.address }
func (o *Office) Phone() string            { return o.phone }
func (o *Office) Email() string            { return o.email }
func (o *Office) Hours() vo.OperatingHours { return o.hours }
func (o *Office) PhotoURL() string         { return o.photoURL }
func (o *Office) Version() int             { return o.version }
func (o *Office) CreatedAt() time.Time     { return o.createdAt }
func (o *Office) UpdatedAt() time.Time     { return o.updatedAt }

func (o *Office) Details() Details {
	return Details{
		City:     o.city,
		Country:  o.country,
		Address:  o.address,
		Phone:    o.phone,
		Email:    o.email,
		OpensAt:  o.hours.Start(),
		ClosesAt: o.hours.End(),
		PhotoURL: o.photoURL,
	}
}

// Update replaces the editable attributes. airlineName is needed because a
// city change moves the slug.
func (o *Office) Update(d Details, airlineName string, now time.Time) error {
	var fields errors.FieldErrors
	hours := validateDetails(d, &fields)
	if err := fields.Err(); err != nil {
		return err
	}
	o.apply(d, hours)
	o.slug = DeriveSlug(airlineName, o.city)
	o.updatedAt = now
	return nil
}

// RefreshSlug re-derives the slug after the owning airline was renamed.
// It reports whether the slug changed.
func (o *Office) RefreshSlug(airlineName string, now time.Time) bool {
	next := DeriveSlug(airlineName, o.city)
	if next == o.slug {
		return false
	}
	o.slug = next
	o.updatedAt = now
	return true
}

func (o *Office) MarkPersisted(version int) {
	o.version = version
}

func (o *Office) apply(d Details, hours vo.OperatingHours) {
	o.city = strings.Join(strings.Fields(d.City), " ")
	o.country = strings.TrimSpace(d.Country)
	o.address = strings.TrimSpace(d.Address)
	o.phone = strings.TrimSpace(d.Phone)
	o.email = strings.TrimSpace(d.Email)
	o.hours = hours
	o.photoURL = strings.TrimSpace(d.PhotoURL)
}

func validateDetails(d Details, fields *errors.FieldErrors) vo.OperatingHours {
	required := []struct {
		field, value string
		max          int
	}{
		{"city", d.City, 100},
		{"country", d.Country, 100},
		{"address", d.Address, 300},
		{"phone", d.Phone, 40},
	}
	for _, r := range required {
		switch {
		case strings.TrimSpace(r.value) == "":
			fields.Add(r.field, "is required")
		case !shared.LenBetween(r.value, 1, r.max):
			fields.Add(r.field, fmt.Sprintf("must be at most %d characters", r.max))
		}
	}
	if r := strings.TrimSpace(d.City); r != "" && slug.Slugify(r) == "" {
		fields.Add("city", "must contain at least one letter or digit")
	}

	if email := strings.TrimSpace(d.Email); email != "" && !shared.IsMailbox(email) {
		fields.Add("email", "must be a valid email address")
	}
	if photo := strings.TrimSpace(d.PhotoURL); photo != "" && !shared.IsAbsoluteURI(photo) {
		fields.Add("photoUrl", "must be an absolute URI")
	}

	hours, err := vo.NewOperatingHours(d.OpensAt, d.ClosesAt)
	if err != nil {
		fields.Add("operatingHours", err.Error())
	}
	return hours
}
