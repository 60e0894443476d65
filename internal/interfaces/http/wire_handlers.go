package http

import (
	"context"

	"gorm.io/gorm"

	adminHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/admin"
	airlineHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/airline"
	contactHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/contact"
	officeHandlers "github.com/flyoffice/directory/internal/interfaces/http/handlers/office"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	airlineHandler *airlineHandlers.Handler
	officeHandler  *officeHandlers.Handler
	contactHandler *contactHandlers.Handler
	adminHandler   *adminHandlers.Handler
	healthHandler  *adminHandlers.HealthHandler
}

// gormPinger resolves the pool on every call so a reconnect is picked up.
type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) PingContext(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *Container) initHandlers() {
	u := c.ucs
	defaultSize := c.cfg.Directory.DefaultPageSize
	maxSize := c.cfg.Directory.MaxPageSize

	c.hdlrs = &allHandlers{
		airlineHandler: airlineHandlers.NewHandler(
			u.createAirlineUC, u.renameAirlineUC, u.updateAirlineUC, u.setAirlineActiveUC,
			u.getAirlineUC, u.searchAirlinesUC,
			c.svcs.directory, c.svcs.permissions,
			defaultSize, maxSize, logger.WithComponent("http.airline"),
		),
		officeHandler: officeHandlers.NewHandler(
			u.createOfficeUC, u.updateOfficeUC, u.deleteOfficeUC, u.getOfficeUC, u.listAirlineOfficesUC,
			c.svcs.directory, c.svcs.permissions,
			defaultSize, maxSize, logger.WithComponent("http.office"),
		),
		contactHandler: contactHandlers.NewHandler(
			u.createContactUC, u.getContactUC, u.getContactReceiptUC,
			contactHandlers.TriageUseCases{
				ChangeStatus:   u.changeContactStatusUC,
				Reopen:         u.reopenContactUC,
				Assign:         u.assignContactUC,
				Respond:        u.respondContactUC,
				ChangePriority: u.changeContactPriorityUC,
			},
			c.svcs.directory,
			defaultSize, maxSize, logger.WithComponent("http.contact"),
		),
		adminHandler:  adminHandlers.NewHandler(c.svcs.permissions),
		healthHandler: adminHandlers.NewHealthHandler(gormPinger{db: c.db}, c.log),
	}
}
