package seed

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	airlineDto "github.com/flyoffice/directory/internal/application/airline/dto"
	airlineUsecases "github.com/flyoffice/directory/internal/application/airline/usecases"
	officeUsecases "github.com/flyoffice/directory/internal/application/office/usecases"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// Fixture is the on-disk shape of a directory seed file.
type Fixture struct {
	Airlines []AirlineFixture `yaml:"airlines"`
}

type AirlineFixture struct {
	Name         string          `yaml:"name"`
	Logo         string          `yaml:"logo"`
	Category     string          `yaml:"category"`
	Fleet        []string        `yaml:"fleet"`
	Services     []string        `yaml:"services"`
	About        AboutFixture    `yaml:"about"`
	Contact      ContactFixture  `yaml:"contact"`
	Rating       float64         `yaml:"rating"`
	TotalReviews int             `yaml:"total_reviews"`
	Offices      []OfficeFixture `yaml:"offices"`
}

type AboutFixture struct {
	Location string `yaml:"location"`
	Overview string `yaml:"overview"`
	Network  string `yaml:"network"`
	Fleet    string `yaml:"fleet"`
	Alliance string `yaml:"alliance"`
	Support  string `yaml:"support"`
}

type ContactFixture struct {
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Website string `yaml:"website"`
}

type OfficeFixture struct {
	City     string `yaml:"city"`
	Country  string `yaml:"country"`
	Address  string `yaml:"address"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	OpensAt  string `yaml:"opens_at"`
	ClosesAt string `yaml:"closes_at"`
	PhotoURL string `yaml:"photo_url"`
}

// Result counts what Apply created and what it skipped as already present.
type Result struct {
	AirlinesCreated int
	AirlinesSkipped int
	OfficesCreated  int
	OfficesSkipped  int
}

func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &f, nil
}

// Seeder creates fixture entries through the regular create use cases.
type Seeder struct {
	createAirline airlineUsecases.CreateAirlineExecutor
	createOffice  officeUsecases.CreateOfficeExecutor
	logger        logger.Interface
}

func NewSeeder(
	createAirline airlineUsecases.CreateAirlineExecutor,
	createOffice officeUsecases.CreateOfficeExecutor,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		createAirline: createAirline,
		createOffice:  createOffice,
		logger:        logger,
	}
}

// Apply creates every airline and its offices. Conflicts are skipped so a
// seed file can be applied repeatedly; an airline that already exists has
// its offices skipped too since its id is unknown here.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Result, error) {
	var res Result
	for _, af := range f.Airlines {
		created, err := s.createAirline.Execute(ctx, airlineUsecases.CreateAirlineCommand{
			Name:     af.Name,
			Logo:     af.Logo,
			Category: af.Category,
			Fleet:    af.Fleet,
			Services: af.Services,
			About: airlineDto.AboutDTO{
				Location: af.About.Location,
				Overview: af.About.Overview,
				Network:  af.About.Network,
				Fleet:    af.About.Fleet,
				Alliance: af.About.Alliance,
				Support:  af.About.Support,
			},
			ContactInfo: airlineDto.ContactInfoDTO{
				Phone:   af.Contact.Phone,
				Email:   af.Contact.Email,
				Website: af.Contact.Website,
			},
			Rating:       af.Rating,
			TotalReviews: af.TotalReviews,
		})
		if errors.IsConflictError(err) {
			s.logger.Infow("airline already exists, skipping", "name", af.Name)
			res.AirlinesSkipped++
			res.OfficesSkipped += len(af.Offices)
			continue
		}
		if err != nil {
			return res, fmt.Errorf("airline %q: %w", af.Name, err)
		}
		res.AirlinesCreated++

		for _, of := range af.Offices {
			_, err := s.createOffice.Execute(ctx, officeUsecases.CreateOfficeCommand{
				AirlineID: created.ID,
				City:      of.City,
				Country:   of.Country,
				Address:   of.Address,
				Phone:     of.Phone,
				Email:     of.Email,
				OpensAt:   of.OpensAt,
				ClosesAt:  of.ClosesAt,
				PhotoURL:  of.PhotoURL,
			})
			if errors.IsConflictError(err) {
				res.OfficesSkipped++
				continue
			}
			if err != nil {
				return res, fmt.Errorf("office %q of %q: %w", of.City, af.Name, err)
			}
			res.OfficesCreated++
		}
	}
	return res, nil
}
