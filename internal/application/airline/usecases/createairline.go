package usecases

import (
	"context"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/shared/biztime"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/id"
	"github.com/flyoffice/directory/internal/shared/logger"
)

type CreateAirlineCommand struct {
	Name         string
	Logo         string
	Category     string
	Fleet        []string
	About        dto.AboutDTO
	Services     []string
	ContactInfo  dto.ContactInfoDTO
	Rating       float64
	TotalReviews int
}

type CreateAirlineUseCase struct {
	airlineRepo airline.Repository
	tx          TransactionRunner
	logger      logger.Interface
}

func NewCreateAirlineUseCase(
	airlineRepo airline.Repository,
	tx TransactionRunner,
	logger logger.Interface,
) *CreateAirlineUseCase {
	return &CreateAirlineUseCase{
		airlineRepo: airlineRepo,
		tx:          tx,
		logger:      logger,
	}
}

// Execute validates every field, rejects a name held by another active
// airline and assigns the smallest free slug inside one transaction.
func (uc *CreateAirlineUseCase) Execute(ctx context.Context, cmd CreateAirlineCommand) (*dto.AirlineDTO, error) {
	uc.logger.Infow("executing create airline use case", "name", cmd.Name)

	airlineID, err := id.NewAirlineID()
	if err != nil {
		uc.logger.Errorw("failed to generate airline ID", "error", err)
		return nil, errors.NewInternalError("failed to generate airline ID")
	}

	profile := airline.Profile{
		Logo:         cmd.Logo,
		Category:     cmd.Category,
		Fleet:        cmd.Fleet,
		About:        cmd.About.ToValueObject(),
		Services:     cmd.Services,
		ContactInfo:  cmd.ContactInfo.ToValueObject(),
		Rating:       cmd.Rating,
		TotalReviews: cmd.TotalReviews,
	}

	var created *airline.Airline
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		a, err := airline.NewAirline(airlineID, cmd.Name, profile, biztime.NowUTC())
		if err != nil {
			uc.logger.Warnw("invalid create airline command", "error", err)
			return nil, err
		}

		err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
			if err := ensureNameFree(ctx, uc.airlineRepo, a); err != nil {
				return err
			}
			s, err := pickSlug(ctx, uc.airlineRepo, a.BaseSlug(), "")
			if err != nil {
				return err
			}
			if err := a.AssignSlug(s); err != nil {
				return errors.NewInternalError(err.Error())
			}
			return uc.airlineRepo.Create(ctx, a)
		})
		if err == nil {
			created = a
			break
		}
		if !isRetryableWrite(err) {
			uc.logger.Errorw("failed to create airline", "name", cmd.Name, "error", err)
			return nil, err
		}
		uc.logger.Warnw("slug race while creating airline, retrying", "name", cmd.Name, "attempt", attempt)
	}

	if created == nil {
		return nil, errors.NewConflictError("could not reserve a unique slug", cmd.Name)
	}

	uc.logger.Infow("airline created successfully", "id", created.ID(), "slug", created.Slug())
	return dto.ToAirlineDTO(created), nil
}
