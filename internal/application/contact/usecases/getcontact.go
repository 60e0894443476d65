package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type GetContactUseCase struct {
	contactRepo contact.Repository
	airlines    AirlineNameLookup
	offices     OfficeCityLookup
	logger      logger.Interface
}

func NewGetContactUseCase(
	contactRepo contact.Repository,
	airlines AirlineNameLookup,
	offices OfficeCityLookup,
	logger logger.Interface,
) *GetContactUseCase {
	return &GetContactUseCase{
		contactRepo: contactRepo,
		airlines:    airlines,
		offices:     offices,
		logger:      logger,
	}
}

// Execute returns the inquiry with its airline and office references resolved
// when they still exist. Dangling references are returned without names.
func (uc *GetContactUseCase) Execute(ctx context.Context, id string) (*dto.ContactDTO, error) {
	c, err := uc.contactRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get contact", "id", id, "error", err)
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("contact not found", id)
	}

	result := dto.ToContactDTO(c)
	if ref := c.AirlineID(); ref != nil && uc.airlines != nil {
		names, err := uc.airlines.GetNamesByIDs(ctx, []string{*ref})
		if err != nil {
			return nil, err
		}
		result.AirlineName = names[*ref]
	}
	if ref := c.OfficeID(); ref != nil && uc.offices != nil {
		cities, err := uc.offices.GetCitiesByIDs(ctx, []string{*ref})
		if err != nil {
			return nil, err
		}
		result.OfficeCity = cities[*ref]
	}
	return result, nil
}
