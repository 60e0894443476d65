package airline

import (
	"fmt"
	"math"
	"strings"
	"time"

	vo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/domain/shared"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/slug"
)

const (
	MinNameLength = 2
	MaxNameLength = 100
	MaxRating     = 5.0
)

// Profile carries the attributes of an airline that are not part of its identity.
type Profile struct {
	Logo         string
	Category     string
	Fleet        []string
	About        vo.About
	Services     []string
	ContactInfo  vo.ContactInfo
	Rating       float64
	TotalReviews int
}

type Airline struct {
	id           string
	name         string
	slug         string
	logo         string
	category     vo.Category
	fleet        []string
	about        vo.About
	services     []string
	contactInfo  vo.ContactInfo
	rating       float64
	totalReviews int
	isActive     bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAirline validates every field and reports all failures together. The
// slug is left empty; callers derive it with BaseSlug and commit it with
// AssignSlug before the first save.
func NewAirline(id, name string, p Profile, now time.Time) (*Airline, error) {
	var fields errors.FieldErrors
	if id == "" {
		fields.Add("id", "is required")
	}
	name = normalizeName(name)
	validateName(name, &fields)
	category := validateProfile(p, &fields)
	if err := fields.Err(); err != nil {
		return nil, err
	}

	return &Airline{
		id:           id,
		name:         name,
		logo:         strings.TrimSpace(p.Logo),
		category:     category,
		fleet:        cleanList(p.Fleet),
		about:        p.About,
		services:     cleanList(p.Services),
		contactInfo:  p.ContactInfo,
		rating:       p.Rating,
		totalReviews: p.TotalReviews,
		isActive:     true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAirline rebuilds an airline from storage without re-validating input rules.
func ReconstructAirline(
	id, name, slugValue string,
	p Profile,
	isActive bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Airline, error) {
	if id == "" {
		return nil, fmt.Errorf("airline ID is required")
	}
	category, err := vo.NewCategory(p.Category)
	if err != nil {
		return nil, err
	}
	return &Airline{
		id:           id,
		name:         name,
		slug:         slugValue,
		logo:         p.Logo,
		category:     category,
		fleet:        nonNil(p.Fleet),
		about:        p.About,
		services:     nonNil(p.Services),
		contactInfo:  p.ContactInfo,
		rating:       p.Rating,
		totalReviews: p.TotalReviews,
		isActive:     isActive,
		version:      version,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *Airline) ID() string                  { return a.id }
func (a *Airline) Name() string                { return a.name }
func (a *Airline) Slug() string                { return a.slug }
func (a *Airline) Logo() string                { return a.logo }
func (a *Airline) Category() vo.Category       { return a.category }
func (a *Airline) About() vo.About             { return a.about }
func (a *Airline) ContactInfo() vo.ContactInfo { return a.contactInfo }
func (a *Airline) Rating() float64             { return a.rating }
func (a *Airline) TotalReviews() int           { return a.totalReviews }
func (a *Airline) IsActive() bool              { return a.isActive }
func (a *Airline) Version() int                { return a.version }
func (a *Airline) CreatedAt() time.Time        { return a.createdAt }
func (a *Airline) UpdatedAt() time.Time        { return a.updatedAt }

func (a *Airline) Fleet() []string {
	out := make([]string, len(a.fleet))
	copy(out, a.fleet)
	return out
}

func (a *Airline) Services() []string {
	out := make([]string, len(a.services))
	copy(out, a.services)
	return out
}

// Profile returns the current non-identity attributes.
func (a *Airline) Profile() Profile {
	return Profile{
		Logo:         a.logo,
		Category:     a.category.String(),
		Fleet:        a.Fleet(),
		About:        a.about,
		Services:     a.Services(),
		ContactInfo:  a.contactInfo,
		Rating:       a.rating,
		TotalReviews: a.totalReviews,
	}
}

// BaseSlug is the slug the current name derives to before any collision suffix.
func (a *Airline) BaseSlug() string {
	return slug.Slugify(a.name)
}

// ActiveNameKey is the case-folded name used for uniqueness among active
// airlines, or empty when the airline is inactive.
func (a *Airline) ActiveNameKey() string {
	if !a.isActive {
		return ""
	}
	return NameKey(a.name)
}

// NameKey folds a display name for uniqueness comparison.
func NameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// AssignSlug commits a slug derived from the current name. s must be the base
// slug or the base slug with a numeric suffix.
func (a *Airline) AssignSlug(s string) error {
	if !IsDerivedSlug(s, a.BaseSlug()) {
		return fmt.Errorf("slug %q is not derived from name %q", s, a.name)
	}
	a.slug = s
	return nil
}

// Rename changes the display name and its slug in one step.
func (a *Airline) Rename(newName, newSlug string, now time.Time) error {
	newName = normalizeName(newName)
	var fields errors.FieldErrors
	validateName(newName, &fields)
	if err := fields.Err(); err != nil {
		return err
	}

	previousName := a.name
	a.name = newName
	if err := a.AssignSlug(newSlug); err != nil {
		a.name = previousName
		return err
	}
	a.updatedAt = now
	return nil
}

// UpdateProfile replaces all non-identity attributes after validating them together.
func (a *Airline) UpdateProfile(p Profile, now time.Time) error {
	var fields errors.FieldErrors
	category := validateProfile(p, &fields)
	if err := fields.Err(); err != nil {
		return err
	}

	a.logo = strings.TrimSpace(p.Logo)
	a.category = category
	a.fleet = cleanList(p.Fleet)
	a.about = p.About
	a.services = cleanList(p.Services)
	a.contactInfo = p.ContactInfo
	a.rating = p.Rating
	a.totalReviews = p.TotalReviews
	a.updatedAt = now
	return nil
}

func (a *Airline) Deactivate(now time.Time) {
	if !a.isActive {
		return
	}
	a.isActive = false
	a.updatedAt = now
}

func (a *Airline) Activate(now time.Time) {
	if a.isActive {
		return
	}
	a.isActive = true
	a.updatedAt = now
}

// MarkPersisted records the version the store now holds.
func (a *Airline) MarkPersisted(version int) {
	a.version = version
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func validateName(name string, fields *errors.FieldErrors) {
	switch {
	case name == "":
		fields.Add("name", "is required")
	case !shared.LenBetween(name, MinNameLength, MaxNameLength):
		fields.Add("name", fmt.Sprintf("must be between %d and %d characters", MinNameLength, MaxNameLength))
	case slug.Slugify(name) == "":
		fields.Add("name", "must contain at least one letter or digit")
	}
}

func validateProfile(p Profile, fields *errors.FieldErrors) vo.Category {
	logo := strings.TrimSpace(p.Logo)
	switch {
	case logo == "":
		fields.Add("logo", "is required")
	case !shared.IsAbsoluteURI(logo):
		fields.Add("logo", "must be an absolute URI")
	}

	category, err := vo.NewCategory(p.Category)
	if err != nil {
		fields.Add("category", "must be one of Premium, Major, Regional, LowCost")
	}

	if math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > MaxRating {
		fields.Add("rating", "must be between 0 and 5")
	}
	if p.TotalReviews < 0 {
		fields.Add("totalReviews", "must not be negative")
	}

	if email := strings.TrimSpace(p.ContactInfo.Email); email != "" && !shared.IsMailbox(email) {
		fields.Add("contactInfo.email", "must be a valid email address")
	}
	if site := strings.TrimSpace(p.ContactInfo.Website); site != "" && !shared.IsAbsoluteURI(site) {
		fields.Add("contactInfo.website", "must be an absolute URI")
	}

	for i, f := range p.Fleet {
		if strings.TrimSpace(f) == "" {
			fields.Add(fmt.Sprintf("fleet[%d]", i), "must not be blank")
		}
	}
	for i, s := range p.Services {
		if strings.TrimSpace(s) == "" {
			fields.Add(fmt.Sprintf("services[%d]", i), "must not be blank")
		}
	}
	return category
}

// IsDerivedSlug reports whether s is base itself or base with a numeric
// suffix of 2 or more.
func IsDerivedSlug(s, base string) bool {
	return base != "" && (s == base || isSuffixed(s, base))
}

func isSuffixed(s, base string) bool {
	rest, ok := strings.CutPrefix(s, base+"-")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return rest != "0" && rest != "1"
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
