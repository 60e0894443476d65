package contact

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/application/contact/dto"
	"github.com/flyoffice/directory/internal/application/contact/usecases"
	"github.com/flyoffice/directory/internal/application/directory"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
	"github.com/flyoffice/directory/internal/shared/id"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/utils"
)

type ContactLister interface {
	ListContacts(ctx context.Context, role string, f directory.ContactFilter, page, pageSize int) (*directory.Page[*dto.ContactDTO], error)
}

// TriageUseCases groups the staff-side operations on one inquiry.
type TriageUseCases struct {
	ChangeStatus   usecases.ChangeContactStatusExecutor
	Reopen         usecases.ReopenContactExecutor
	Assign         usecases.AssignContactExecutor
	Respond        usecases.RespondContactExecutor
	ChangePriority usecases.ChangeContactPriorityExecutor
}

type Handler struct {
	createUC    usecases.CreateContactExecutor
	getUC       usecases.GetContactExecutor
	receiptUC   usecases.GetContactReceiptExecutor
	triage      TriageUseCases
	lister      ContactLister
	defaultSize int
	maxSize     int
	logger      logger.Interface
}

func NewHandler(
	createUC usecases.CreateContactExecutor,
	getUC usecases.GetContactExecutor,
	receiptUC usecases.GetContactReceiptExecutor,
	triage TriageUseCases,
	lister ContactLister,
	defaultPageSize, maxPageSize int,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:    createUC,
		getUC:       getUC,
		receiptUC:   receiptUC,
		triage:      triage,
		lister:      lister,
		defaultSize: defaultPageSize,
		maxSize:     maxPageSize,
		logger:      logger,
	}
}

// SubmitInquiry handles POST /contacts
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req SubmitInquiryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(c.ClientIP()))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.ReceiptOf(result), "Inquiry received")
}

// GetReceipt handles POST /contacts/:id/receipt
func (h *Handler) GetReceipt(c *gin.Context) {
	contactID, err := utils.ParseIDParam(c, "id", id.PrefixContact, "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReceiptRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.receiptUC.Execute(c.Request.Context(), usecases.GetContactReceiptQuery{ID: contactID, Email: req.Email})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListContacts handles GET /admin/contacts
func (h *Handler) ListContacts(c *gin.Context) {
	p, err := utils.ParsePagination(c, h.defaultSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := h.lister.ListContacts(c.Request.Context(), middleware.CallerRole(c), parseContactFilter(c), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, page.Items, page.TotalCount, p.Page, utils.EffectivePageSize(p.PageSize, h.maxSize))
}

// GetContact handles GET /admin/contacts/:id
func (h *Handler) GetContact(c *gin.Context) {
	contactID, err := utils.ParseIDParam(c, "id", id.PrefixContact, "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), contactID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ChangeStatus handles PATCH /admin/contacts/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	h.mutate(c, &req, "Status updated successfully", func(ctx context.Context, contactID string) (*dto.ContactDTO, error) {
		return h.triage.ChangeStatus.Execute(ctx, usecases.ChangeContactStatusCommand{ID: contactID, Status: req.Status})
	})
}

// Reopen handles POST /admin/contacts/:id/reopen
func (h *Handler) Reopen(c *gin.Context) {
	var req ReopenRequest
	h.mutateWith(c, utils.BindOptionalJSON, &req, "Inquiry reopened successfully", func(ctx context.Context, contactID string) (*dto.ContactDTO, error) {
		return h.triage.Reopen.Execute(ctx, usecases.ReopenContactCommand{ID: contactID, AssignTo: req.AssignTo})
	})
}

// Assign handles PUT /admin/contacts/:id/assignee
func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	h.mutate(c, &req, "Assignee updated successfully", func(ctx context.Context, contactID string) (*dto.ContactDTO, error) {
		return h.triage.Assign.Execute(ctx, usecases.AssignContactCommand{ID: contactID, StaffID: req.StaffID})
	})
}

// Respond handles PUT /admin/contacts/:id/response
func (h *Handler) Respond(c *gin.Context) {
	var req RespondRequest
	h.mutate(c, &req, "Response saved successfully", func(ctx context.Context, contactID string) (*dto.ContactDTO, error) {
		return h.triage.Respond.Execute(ctx, usecases.RespondContactCommand{ID: contactID, Response: req.Response})
	})
}

// ChangePriority handles PATCH /admin/contacts/:id/priority
func (h *Handler) ChangePriority(c *gin.Context) {
	var req ChangePriorityRequest
	h.mutate(c, &req, "Priority updated successfully", func(ctx context.Context, contactID string) (*dto.ContactDTO, error) {
		return h.triage.ChangePriority.Execute(ctx, usecases.ChangeContactPriorityCommand{ID: contactID, Priority: req.Priority})
	})
}

// mutate parses the id and body, runs fn and writes the updated inquiry.
func (h *Handler) mutate(c *gin.Context, req interface{}, message string, fn func(ctx context.Context, contactID string) (*dto.ContactDTO, error)) {
	h.mutateWith(c, utils.BindJSON, req, message, fn)
}

func (h *Handler) mutateWith(
	c *gin.Context,
	bind func(*gin.Context, interface{}) error,
	req interface{},
	message string,
	fn func(ctx context.Context, contactID string) (*dto.ContactDTO, error),
) {
	contactID, err := utils.ParseIDParam(c, "id", id.PrefixContact, "contact")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := bind(c, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := fn(c.Request.Context(), contactID)
	if err != nil {
		h.logger.Warnw("contact triage failed", "id", contactID, "staff_id", middleware.CallerID(c), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, message, result)
}
