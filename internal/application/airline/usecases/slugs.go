package usecases

import (
	"context"
	stderrors "errors"

	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/slug"
)

// maxWriteAttempts bounds retries after a slug race or a version conflict.
const maxWriteAttempts = 3

// pickSlug chooses the slug for base. A current slug that already derives
// from base is kept so renames that do not change the slug stay stable.
func pickSlug(ctx context.Context, repo airline.Repository, base, current string) (string, error) {
	if current != "" && airline.IsDerivedSlug(current, base) {
		return current, nil
	}
	taken, err := repo.SlugsWithBase(ctx, base)
	if err != nil {
		return "", err
	}
	return slug.NextAvailable(base, taken), nil
}

// ensureNameFree reports a conflict when another active airline holds the name.
func ensureNameFree(ctx context.Context, repo airline.Repository, a *airline.Airline) error {
	key := a.ActiveNameKey()
	if key == "" {
		return nil
	}
	exists, err := repo.ExistsActiveName(ctx, key, a.ID())
	if err != nil {
		return err
	}
	if exists {
		return errors.NewConflictError("airline name already exists", a.Name())
	}
	return nil
}

func isRetryableWrite(err error) bool {
	return stderrors.Is(err, airline.ErrSlugTaken) || stderrors.Is(err, airline.ErrVersionConflict)
}

func notFound(id string) error {
	return errors.NewNotFoundError("airline not found", id)
}
