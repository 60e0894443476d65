package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/flyoffice/directory/internal/domain/airline"
	vo "github.com/flyoffice/directory/internal/domain/airline/valueobjects"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/infrastructure/persistence/models"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.AirlineModel{}, &models.OfficeModel{}, &models.ContactModel{})
	require.NoError(t, err)

	return db
}

func newTestAirline(t *testing.T, id, name, slug string, rating float64, created time.Time) *airline.Airline {
	t.Helper()
	a, err := airline.NewAirline(id, name, airline.Profile{
		Logo:     "http://x/" + id + ".png",
		Category: "Premium",
		Rating:   rating,
		About:    vo.About{Overview: name + " overview"},
	}, created)
	require.NoError(t, err)
	require.NoError(t, a.AssignSlug(slug))
	return a
}

func newTestOffice(t *testing.T, id, airlineID, airlineName, city string, created time.Time) *office.Office {
	t.Helper()
	o, err := office.NewOffice(id, airlineID, airlineName, office.Details{
		City:     city,
		Country:  "Qatar",
		Address:  "1 Airport Road",
		Phone:    "+974 4000 0000",
		OpensAt:  "08:00",
		ClosesAt: "18:00",
	}, created)
	require.NoError(t, err)
	return o
}
