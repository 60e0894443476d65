package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	airlineDto "github.com/flyoffice/directory/internal/application/airline/dto"
	airlineUsecases "github.com/flyoffice/directory/internal/application/airline/usecases"
	officeDto "github.com/flyoffice/directory/internal/application/office/dto"
	officeUsecases "github.com/flyoffice/directory/internal/application/office/usecases"
	"github.com/flyoffice/directory/internal/shared/errors"
	"github.com/flyoffice/directory/internal/shared/logger"
)

const sample = `
airlines:
  - name: Air Nova
    logo: https://cdn.example.com/airnova.png
    category: Premium
    fleet: [A350, B787]
    rating: 4.5
    about:
      overview: "**Air Nova** flies long haul."
    offices:
      - city: Lisbon
        country: Portugal
        address: Av. da Liberdade 1
        phone: "+351 21 000 0000"
        opens_at: "09:00"
        closes_at: "17:00"
      - city: Porto
        country: Portugal
        address: Rua de Santa Catarina 2
        phone: "+351 22 000 0000"
        opens_at: "09:00"
        closes_at: "17:00"
  - name: Sky Budget
    logo: https://cdn.example.com/sky.png
    category: LowCost
`

type fakeAirlineCreator struct {
	existing map[string]bool
	cmds     []airlineUsecases.CreateAirlineCommand
}

func (f *fakeAirlineCreator) Execute(_ context.Context, cmd airlineUsecases.CreateAirlineCommand) (*airlineDto.AirlineDTO, error) {
	if f.existing[cmd.Name] {
		return nil, errors.NewConflictError("airline name already in use")
	}
	f.cmds = append(f.cmds, cmd)
	return &airlineDto.AirlineDTO{ID: "al_" + strings.ToLower(strings.ReplaceAll(cmd.Name, " ", ""))}, nil
}

type fakeOfficeCreator struct {
	cmds []officeUsecases.CreateOfficeCommand
	err  error
}

func (f *fakeOfficeCreator) Execute(_ context.Context, cmd officeUsecases.CreateOfficeCommand) (*officeDto.OfficeDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.cmds = append(f.cmds, cmd)
	return &officeDto.OfficeDTO{ID: "of_x"}, nil
}

func TestLoad(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.Airlines, 2)
	assert.Equal(t, "Air Nova", f.Airlines[0].Name)
	assert.Equal(t, []string{"A350", "B787"}, f.Airlines[0].Fleet)
	assert.Len(t, f.Airlines[0].Offices, 2)
	assert.Equal(t, "17:00", f.Airlines[0].Offices[1].ClosesAt)
}

func TestLoad_Empty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, f.Airlines)
}

func TestLoad_UnknownField(t *testing.T) {
	_, err := Load(strings.NewReader("airlines:\n  - name: X\n    colour: red\n"))
	assert.Error(t, err)
}

func TestSeeder_Apply(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	airlines := &fakeAirlineCreator{}
	offices := &fakeOfficeCreator{}
	res, err := NewSeeder(airlines, offices, logger.NewNopLogger()).Apply(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, Result{AirlinesCreated: 2, OfficesCreated: 2}, res)
	assert.Equal(t, "**Air Nova** flies long haul.", airlines.cmds[0].About.Overview)
	assert.Equal(t, "al_airnova", offices.cmds[0].AirlineID)
	assert.Equal(t, "Porto", offices.cmds[1].City)
}

func TestSeeder_Apply_SkipsExisting(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	airlines := &fakeAirlineCreator{existing: map[string]bool{"Air Nova": true}}
	offices := &fakeOfficeCreator{}
	res, err := NewSeeder(airlines, offices, logger.NewNopLogger()).Apply(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, Result{AirlinesCreated: 1, AirlinesSkipped: 1, OfficesSkipped: 2}, res)
	assert.Empty(t, offices.cmds)
}

func TestSeeder_Apply_StopsOnValidationError(t *testing.T) {
	f, err := Load(strings.NewReader(sample))
	require.NoError(t, err)

	offices := &fakeOfficeCreator{err: errors.NewValidationError("validation failed")}
	res, err := NewSeeder(&fakeAirlineCreator{}, offices, logger.NewNopLogger()).Apply(context.Background(), f)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 1, res.AirlinesCreated)
}
