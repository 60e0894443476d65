package office

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/application/directory"
	"github.com/flyoffice/directory/internal/application/office/usecases"
)

type CreateOfficeRequest struct {
	AirlineID string `json:"airlineId" validate:"required"`
	City      string `json:"city" validate:"required,max=100"`
	Country   string `json:"country" validate:"required,max=100"`
	Address   string `json:"address" validate:"required,max=300"`
	Phone     string `json:"phone" validate:"required,max=40"`
	Email     string `json:"email"`
	OpensAt   string `json:"opensAt" validate:"required"`
	ClosesAt  string `json:"closesAt" validate:"required"`
	PhotoURL  string `json:"photoUrl"`
}

func (r *CreateOfficeRequest) ToCommand() usecases.CreateOfficeCommand {
	return usecases.CreateOfficeCommand{
		AirlineID: r.AirlineID,
		City:      r.City,
		Country:   r.Country,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
		OpensAt:   r.OpensAt,
		ClosesAt:  r.ClosesAt,
		PhotoURL:  r.PhotoURL,
	}
}

type UpdateOfficeRequest struct {
	City     *string `json:"city"`
	Country  *string `json:"country"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	OpensAt  *string `json:"opensAt"`
	ClosesAt *string `json:"closesAt"`
	PhotoURL *string `json:"photoUrl"`
}

func (r *UpdateOfficeRequest) ToCommand(id string) usecases.UpdateOfficeCommand {
	return usecases.UpdateOfficeCommand{
		ID:       id,
		City:     r.City,
		Country:  r.Country,
		Address:  r.Address,
		Phone:    r.Phone,
		Email:    r.Email,
		OpensAt:  r.OpensAt,
		ClosesAt: r.ClosesAt,
		PhotoURL: r.PhotoURL,
	}
}

func parseOfficeFilter(c *gin.Context) directory.OfficeFilter {
	includeInactive, _ := strconv.ParseBool(c.Query("include_inactive"))
	return directory.OfficeFilter{
		AirlineID:       c.Query("airline_id"),
		Country:         c.Query("country"),
		City:            c.Query("city"),
		IncludeInactive: includeInactive,
	}
}
