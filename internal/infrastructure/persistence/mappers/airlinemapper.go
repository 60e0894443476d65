package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/flyoffice/directory/internal/domain/airline"
	vo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/mapper"
)

// AirlineMapper handles the conversion between Airline domain entities and persistence models.
type AirlineMapper interface {
	ToModel(a *airline.Airline) (*models.AirlineModel, error)
	ToDomain(model *models.AirlineModel) (*airline.Airline, error)
	ToDomainList(list []models.AirlineModel) ([]*airline.Airline, error)
}

// AirlineMapperImpl is the concrete implementation of AirlineMapper.
type AirlineMapperImpl struct{}

func NewAirlineMapper() AirlineMapper {
	return &AirlineMapperImpl{}
}

func (m *AirlineMapperImpl) ToModel(a *airline.Airline) (*models.AirlineModel, error) {
	fleet, err := json.Marshal(a.Fleet())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fleet: %w", err)
	}
	services, err := json.Marshal(a.Services())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal services: %w", err)
	}

	about := a.About()
	contact := a.ContactInfo()
	model := &models.AirlineModel{
		ID:             a.ID(),
		Name:           a.Name(),
		Slug:           a.Slug(),
		Logo:           a.Logo(),
		Category:       a.Category().String(),
		Fleet:          datatypes.JSON(fleet),
		Services:       datatypes.JSON(services),
		AboutLocation:  about.Location,
		AboutOverview:  about.Overview,
		AboutNetwork:   about.Network,
		AboutFleet:     about.Fleet,
		AboutAlliance:  about.Alliance,
		AboutSupport:   about.Support,
		ContactPhone:   contact.Phone,
		ContactEmail:   contact.Email,
		ContactWebsite: contact.Website,
		Rating:         a.Rating(),
		TotalReviews:   a.TotalReviews(),
		IsActive:       a.IsActive(),
		Version:        a.Version(),
		CreatedAt:      a.CreatedAt().UnixMilli(),
		UpdatedAt:      a.UpdatedAt().UnixMilli(),
	}
	if key := a.ActiveNameKey(); key != "" {
		model.ActiveNameKey = &key
	}
	return model, nil
}

func (m *AirlineMapperImpl) ToDomain(model *models.AirlineModel) (*airline.Airline, error) {
	if model == nil {
		return nil, nil
	}

	var fleet, services []string
	if len(model.Fleet) > 0 {
		if err := json.Unmarshal(model.Fleet, &fleet); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fleet: %w", err)
		}
	}
	if len(model.Services) > 0 {
		if err := json.Unmarshal(model.Services, &services); err != nil {
			return nil, fmt.Errorf("failed to unmarshal services: %w", err)
		}
	}

	profile := airline.Profile{
		Logo:     model.Logo,
		Category: model.Category,
		Fleet:    fleet,
		About: vo.About{
			Location: model.AboutLocation,
			Overview: model.AboutOverview,
			Network:  model.AboutNetwork,
			Fleet:    model.AboutFleet,
			Alliance: model.AboutAlliance,
			Support:  model.AboutSupport,
		},
		Services: services,
		ContactInfo: vo.ContactInfo{
			Phone:   model.ContactPhone,
			Email:   model.ContactEmail,
			Website: model.ContactWebsite,
		},
		Rating:       model.Rating,
		TotalReviews: model.TotalReviews,
	}

	a, err := airline.ReconstructAirline(
		model.ID,
		model.Name,
		model.Slug,
		profile,
		model.IsActive,
		model.Version,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct airline: %w", err)
	}
	return a, nil
}

// ToDomainList converts a slice of models, stopping at the first broken row.
func (m *AirlineMapperImpl) ToDomainList(list []models.AirlineModel) ([]*airline.Airline, error) {
	return mapper.MapRows(list, m.ToDomain)
}
