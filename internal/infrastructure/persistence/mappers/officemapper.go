package mappers

import (
	"fmt"

	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
	"github.com/flyoffice/directory/internal/shared/biztime"
)

// OfficeMapper handles the conversion between Office domain entities and persistence models.
type OfficeMapper interface {
	ToModel(o *office.Office) *models.OfficeModel
	ToDomain(model *models.OfficeModel) (*office.Office, error)
}

type OfficeMapperImpl struct{}

func NewOfficeMapper() OfficeMapper {
	return &OfficeMapperImpl{}
}

func (m *OfficeMapperImpl) ToModel(o *office.Office) *models.OfficeModel {
	return &models.OfficeModel{
		ID:        o.ID(),
		AirlineID: o.AirlineID(),
		Slug:      o.Slug(),
		City:      o.City(),
		CityKey:   o.CityKey(),
		Country:   o.Country(),
		Address:   o.Address(),
		Phone:     o.Phone(),
		Email:     o.Email(),
		OpensAt:   o.Hours().Start(),
		ClosesAt:  o.Hours().End(),
		PhotoURL:  o.PhotoURL(),
		Version:   o.Version(),
		CreatedAt: o.CreatedAt().UnixMilli(),
		UpdatedAt: o.UpdatedAt().UnixMilli(),
	}
}

func (m *OfficeMapperImpl) ToDomain(model *models.OfficeModel) (*office.Office, error) {
	if model == nil {
		return nil, nil
	}
	o, err := office.ReconstructOffice(
		model.ID,
		model.AirlineID,
		model.Slug,
		office.Details{
			City:     model.City,
			Country:  model.Country,
			Address:  model.Address,
			Phone:    model.Phone,
			Email:    model.Email,
			OpensAt:  model.OpensAt,
			ClosesAt: model.ClosesAt,
			PhotoURL: model.PhotoURL,
		},
		model.Version,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct office: %w", err)
	}
	return o, nil
}
