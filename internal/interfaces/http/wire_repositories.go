package http

import (
	"github.com/flyoffice/directory/internal/domain/airline"
	"github.com/flyoffice/directory/internal/domain/contact"
	"github.com/flyoffice/directory/internal/domain/office"
	"github.com/flyoffice/directory/internal/infrastructure/repository"
	"github.com/flyoffice/directory/internal/shared/db"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	airlineRepo airline.Repository
	officeRepo  office.Repository
	contactRepo contact.Repository
	txManager   *db.TransactionManager
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		airlineRepo: repository.NewAirlineRepository(c.db, c.log),
		officeRepo:  repository.NewOfficeRepository(c.db, c.log),
		contactRepo: repository.NewContactRepository(c.db, c.log),
		txManager:   db.NewTransactionManager(c.db),
	}
}
