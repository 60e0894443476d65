package airline

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/application/airline/usecases"
	"github.com/flyoffice/directory/internal/application/directory"
)

type CreateAirlineRequest struct {
	Name         string             `json:"name" validate:"required,max=200"`
	Logo         string             `json:"logo"`
	Category     string             `json:"category"`
	Fleet        []string           `json:"fleet"`
	About        dto.AboutDTO       `json:"about"`
	Services     []string           `json:"services"`
	ContactInfo  dto.ContactInfoDTO `json:"contactInfo"`
	Rating       float64            `json:"rating"`
	TotalReviews int                `json:"totalReviews"`
}

func (r *CreateAirlineRequest) ToCommand() usecases.CreateAirlineCommand {
	return usecases.CreateAirlineCommand{
		Name:         r.Name,
		Logo:         r.Logo,
		Category:     r.Category,
		Fleet:        r.Fleet,
		About:        r.About,
		Services:     r.Services,
		ContactInfo:  r.ContactInfo,
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
	}
}

// UpdateAirlineRequest patches non-identity attributes; absent fields keep
// their value.
type UpdateAirlineRequest struct {
	Logo         *string             `json:"logo"`
	Category     *string             `json:"category"`
	Fleet        *[]string           `json:"fleet"`
	About        *dto.AboutDTO       `json:"about"`
	Services     *[]string           `json:"services"`
	ContactInfo  *dto.ContactInfoDTO `json:"contactInfo"`
	Rating       *float64            `json:"rating"`
	TotalReviews *int                `json:"totalReviews"`
}

func (r *UpdateAirlineRequest) ToCommand(id string) usecases.UpdateAirlineCommand {
	return usecases.UpdateAirlineCommand{
		ID:           id,
		Logo:         r.Logo,
		Category:     r.Category,
		Fleet:        r.Fleet,
		About:        r.About,
		Services:     r.Services,
		ContactInfo:  r.ContactInfo,
		Rating:       r.Rating,
		TotalReviews: r.TotalReviews,
	}
}

type RenameAirlineRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

func parseAirlineFilter(c *gin.Context) directory.AirlineFilter {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))
	return directory.AirlineFilter{
		Query:           c.Query("q"),
		Category:        c.Query("category"),
		IncludeInactive: includeInactive,
	}
}
