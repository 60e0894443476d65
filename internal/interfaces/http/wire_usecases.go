package http

import (
	airlineUsecases "github.com/flyoffice/directory/internal/application/airline/usecases"
	contactUsecases "github.com/flyoffice/directory/internal/application/contact/usecases"
	officeUsecases "github.com/flyoffice/directory/internal/application/office/usecases"
	"github.com/flyoffice/directory/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Airline
	createAirlineUC    *airlineUsecases.CreateAirlineUseCase
	renameAirlineUC    *airlineUsecases.RenameAirlineUseCase
	updateAirlineUC    *airlineUsecases.UpdateAirlineUseCase
	setAirlineActiveUC *airlineUsecases.SetAirlineActiveUseCase
	getAirlineUC       *airlineUsecases.GetAirlineUseCase
	searchAirlinesUC   *airlineUsecases.SearchAirlinesUseCase

	// Office
	createOfficeUC       *officeUsecases.CreateOfficeUseCase
	updateOfficeUC       *officeUsecases.UpdateOfficeUseCase
	deleteOfficeUC       *officeUsecases.DeleteOfficeUseCase
	getOfficeUC          *officeUsecases.GetOfficeUseCase
	listAirlineOfficesUC *officeUsecases.ListAirlineOfficesUseCase

	// Contact
	createContactUC         *contactUsecases.CreateContactUseCase
	getContactUC            *contactUsecases.GetContactUseCase
	getContactReceiptUC     *contactUsecases.GetContactReceiptUseCase
	changeContactStatusUC   *contactUsecases.ChangeContactStatusUseCase
	reopenContactUC         *contactUsecases.ReopenContactUseCase
	assignContactUC         *contactUsecases.AssignContactUseCase
	respondContactUC        *contactUsecases.RespondContactUseCase
	changeContactPriorityUC *contactUsecases.ChangeContactPriorityUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	airlineLog := logger.WithComponent("airline")
	officeLog := logger.WithComponent("office")
	contactLog := logger.WithComponent("contact")

	c.ucs = &allUseCases{
		createAirlineUC:    airlineUsecases.NewCreateAirlineUseCase(r.airlineRepo, r.txManager, airlineLog),
		renameAirlineUC:    airlineUsecases.NewRenameAirlineUseCase(r.airlineRepo, r.officeRepo, r.txManager, airlineLog),
		updateAirlineUC:    airlineUsecases.NewUpdateAirlineUseCase(r.airlineRepo, airlineLog),
		setAirlineActiveUC: airlineUsecases.NewSetAirlineActiveUseCase(r.airlineRepo, r.txManager, airlineLog),
		getAirlineUC:       airlineUsecases.NewGetAirlineUseCase(r.airlineRepo, c.svcs.markdown, airlineLog),
		searchAirlinesUC:   airlineUsecases.NewSearchAirlinesUseCase(r.airlineRepo, airlineLog),

		createOfficeUC:       officeUsecases.NewCreateOfficeUseCase(r.officeRepo, r.airlineRepo, officeLog),
		updateOfficeUC:       officeUsecases.NewUpdateOfficeUseCase(r.officeRepo, r.airlineRepo, officeLog),
		deleteOfficeUC:       officeUsecases.NewDeleteOfficeUseCase(r.officeRepo, r.contactRepo, r.txManager, officeLog),
		getOfficeUC:          officeUsecases.NewGetOfficeUseCase(r.officeRepo, r.airlineRepo, officeLog),
		listAirlineOfficesUC: officeUsecases.NewListAirlineOfficesUseCase(r.officeRepo, r.airlineRepo, officeLog),

		createContactUC:         contactUsecases.NewCreateContactUseCase(r.contactRepo, c.svcs.markdown, c.svcs.notifier, c.metrics, contactLog),
		getContactUC:            contactUsecases.NewGetContactUseCase(r.contactRepo, r.airlineRepo, r.officeRepo, contactLog),
		getContactReceiptUC:     contactUsecases.NewGetContactReceiptUseCase(r.contactRepo, contactLog),
		changeContactStatusUC:   contactUsecases.NewChangeContactStatusUseCase(r.contactRepo, c.metrics, contactLog),
		reopenContactUC:         contactUsecases.NewReopenContactUseCase(r.contactRepo, c.metrics, contactLog),
		assignContactUC:         contactUsecases.NewAssignContactUseCase(r.contactRepo, contactLog),
		respondContactUC:        contactUsecases.NewRespondContactUseCase(r.contactRepo, contactLog),
		changeContactPriorityUC: contactUsecases.NewChangeContactPriorityUseCase(r.contactRepo, contactLog),
	}
}
