package dto

import (
	"time"

	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/shared/mapper"
)

type OfficeDTO struct {
	ID             string    `json:"id"`
	AirlineID      string    `json:"airlineId"`
	Slug           string    `json:"slug"`
	City           string    `json:"city"`
	Country        string    `json:"country"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	OperatingHours string    `json:"operatingHours,omitempty"`
	OpensAt        string    `json:"opensAt,omitempty"`
	ClosesAt       string    `json:"closesAt,omitempty"`
	PhotoURL       string    `json:"photoUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToOfficeDTO(o *office.Office) *OfficeDTO {
	if o == nil {
		return nil
	}
	d := o.Details()
	return &OfficeDTO{
		ID:             o.ID(),
		AirlineID:      o.AirlineID(),
		Slug:           o.Slug(),
		City:           d.City,
		Country:        d.Country,
		Address:        d.Address,
		Phone:          d.Phone,
		Email:          d.Email,
		OperatingHours: o.Hours().String(),
		OpensAt:        d.OpensAt,
		ClosesAt:       d.ClosesAt,
		PhotoURL:       d.PhotoURL,
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

func ToOfficeDTOList(list []*office.Office) []*OfficeDTO {
	return mapper.MapSlice(list, ToOfficeDTO)
}
