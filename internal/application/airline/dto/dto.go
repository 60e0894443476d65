package dto

import (
	"time"

	"github.com/flyoffice/directory/internal/domain/airline"
	vo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/shared/mapper"
)

type AboutDTO struct {
	Location string `json:"location,omitempty"`
	Overview string `json:"overview,omitempty"`
	Network  string `json:"network,omitempty"`
	Fleet    string `json:"fleet,omitempty"`
	Alliance string `json:"alliance,omitempty"`
	Support  string `json:"support,omitempty"`
}

type ContactInfoDTO struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

type AirlineDTO struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Slug         string            `json:"slug"`
	Logo         string            `json:"logo"`
	Category     string            `json:"category"`
	Fleet        []string          `json:"fleet"`
	About        AboutDTO          `json:"about"`
	AboutHTML    map[string]string `json:"aboutHtml,omitempty"`
	Services     []string          `json:"services"`
	ContactInfo  ContactInfoDTO    `json:"contactInfo"`
	Rating       float64           `json:"rating"`
	TotalReviews int               `json:"totalReviews"`
	IsActive     bool              `json:"isActive"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// SearchHitDTO is one ranked search result.
type SearchHitDTO struct {
	Airline *AirlineDTO `json:"airline"`
	Rank    int         `json:"rank"`
}

func ToAirlineDTO(a *airline.Airline) *AirlineDTO {
	if a == nil {
		return nil
	}
	about := a.About()
	info := a.ContactInfo()
	return &AirlineDTO{
		ID:       a.ID(),
		Name:     a.Name(),
		Slug:     a.Slug(),
		Logo:     a.Logo(),
		Category: a.Category().String(),
		Fleet:    a.Fleet(),
		About: AboutDTO{
			Location: about.Location,
			Overview: about.Overview,
			Network:  about.Network,
			Fleet:    about.Fleet,
			Alliance: about.Alliance,
			Support:  about.Support,
		},
		Services: a.Services(),
		ContactInfo: ContactInfoDTO{
			Phone:   info.Phone,
			Email:   info.Email,
			Website: info.Website,
		},
		Rating:       a.Rating(),
		TotalReviews: a.TotalReviews(),
		IsActive:     a.IsActive(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func ToAirlineDTOList(list []*airline.Airline) []*AirlineDTO {
	return mapper.MapSlice(list, ToAirlineDTO)
}

func (d AboutDTO) ToValueObject() vo.About {
	return vo.About{
		Location: d.Location,
		Overview: d.Overview,
		Network:  d.Network,
		Fleet:    d.Fleet,
		Alliance: d.Alliance,
		Support:  d.Support,
	}
}

func (d ContactInfoDTO) ToValueObject() vo.ContactInfo {
	return vo.ContactInfo{
		Phone:   d.Phone,
		Email:   d.Email,
		Website: d.Website,
	}
}
