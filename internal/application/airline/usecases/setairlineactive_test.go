package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/shared/errors"
)

func TestSetAirlineActiveUseCase(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		existing := newAirline(t, "al_1", "Qatar Airways", "qatar-airways", 4.5)
		repo := &mockAirlineRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*airline.Airline, error) {
				return existing, nil
			},
		}
		uc := NewSetAirlineActiveUseCase(repo, &mockTx{}, nopLogger())

		result, err := uc.Execute(context.Background(), SetAirlineActiveCommand{ID: "al_1", Active: false})

		require.NoError(t, err)
		assert.False(t, result.IsActive)
		assert.Empty(t, existing.ActiveNameKey())
	})

	t.Run("reactivate refused while the name is taken", func(t *testing.T) {
		existing := newAirline(t, "al_1", "Qatar Airways", "qatar-airways-2", 4.5)
		existing.Deactivate(existing.CreatedAt())
		updated := false
		repo := &mockAirlineRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*airline.Airline, error) {
				return existing, nil
			},
			ExistsActiveNameFunc: func(ctx context.Context, nameKey, excludeID string) (bool, error) {
				return true, nil
			},
			UpdateFunc: func(ctx context.Context, a *airline.Airline) error {
				updated = true
				return nil
			},
		}
		uc := NewSetAirlineActiveUseCase(repo, &mockTx{}, nopLogger())

		_, err := uc.Execute(context.Background(), SetAirlineActiveCommand{ID: "al_1", Active: true})

		assert.True(t, errors.IsConflictError(err))
		assert.False(t, updated)
	})

	t.Run("no-op keeps version", func(t *testing.T) {
		existing := newAirline(t, "al_1", "Qatar Airways", "qatar-airways", 4.5)
		repo := &mockAirlineRepository{
			GetByIDFunc: func(ctx context.Context, id string) (*airline.Airline, error) {
				return existing, nil
			},
		}
		uc := NewSetAirlineActiveUseCase(repo, &mockTx{}, nopLogger())

		result, err := uc.Execute(context.Background(), SetAirlineActiveCommand{ID: "al_1", Active: true})

		require.NoError(t, err)
		assert.True(t, result.IsActive)
		assert.Equal(t, 1, existing.Version())
	})
}
