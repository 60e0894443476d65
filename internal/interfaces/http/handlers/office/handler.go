package office

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/application/directory"
	"github.com/flyoffice/directory/internal/application/office/dto"
	"github.com/flyoffice/directory/internal/application/office/usecases"
	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
	"github.com/flyoffice/directory/internal/shared/id"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/utils"
)

type OfficeLister interface {
	ListOffices(ctx context.Context, role string, f directory.OfficeFilter, page, pageSize int) (*directory.Page[*dto.OfficeDTO], error)
}

type CapabilityChecker interface {
	HasCapability(role string, resource permission.Resource) bool
}

type Handler struct {
	createUC      usecases.CreateOfficeExecutor
	updateUC      usecases.UpdateOfficeExecutor
	deleteUC      usecases.DeleteOfficeExecutor
	getUC         usecases.GetOfficeExecutor
	listByAirline usecases.ListAirlineOfficesExecutor
	lister        OfficeLister
	checker       CapabilityChecker
	defaultSize   int
	maxSize       int
	logger        logger.Interface
}

func NewHandler(
	createUC usecases.CreateOfficeExecutor,
	updateUC usecases.UpdateOfficeExecutor,
	deleteUC usecases.DeleteOfficeExecutor,
	getUC usecases.GetOfficeExecutor,
	listByAirline usecases.ListAirlineOfficesExecutor,
	lister OfficeLister,
	checker CapabilityChecker,
	defaultPageSize, maxPageSize int,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		getUC:         getUC,
		listByAirline: listByAirline,
		lister:        lister,
		checker:       checker,
		defaultSize:   defaultPageSize,
		maxSize:       maxPageSize,
		logger:        logger,
	}
}

func (h *Handler) publicView(c *gin.Context) bool {
	return !h.checker.HasCapability(middleware.CallerRole(c), permission.ResourceOffices)
}

// ListOffices handles GET /offices
func (h *Handler) ListOffices(c *gin.Context) {
	p, err := utils.ParsePagination(c, h.defaultSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := h.lister.ListOffices(c.Request.Context(), middleware.CallerRole(c), parseOfficeFilter(c), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, page.Items, page.TotalCount, p.Page, utils.EffectivePageSize(p.PageSize, h.maxSize))
}

// ListAirlineOffices handles GET /airlines/:id/offices
func (h *Handler) ListAirlineOffices(c *gin.Context) {
	airlineID, err := utils.ParseIDParam(c, "id", id.PrefixAirline, "airline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listByAirline.Execute(c.Request.Context(), airlineID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetOffice handles GET /offices/:id
func (h *Handler) GetOffice(c *gin.Context) {
	officeID, err := utils.ParseIDParam(c, "id", id.PrefixOffice, "office")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.get(c, usecases.GetOfficeQuery{ID: officeID})
}

// GetOfficeByCity handles GET /airlines/:id/offices/:city
func (h *Handler) GetOfficeByCity(c *gin.Context) {
	airlineID, err := utils.ParseIDParam(c, "id", id.PrefixAirline, "airline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.get(c, usecases.GetOfficeQuery{AirlineID: airlineID, City: c.Param("city")})
}

func (h *Handler) get(c *gin.Context, query usecases.GetOfficeQuery) {
	query.Public = h.publicView(c)

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateOffice handles POST /admin/offices
func (h *Handler) CreateOffice(c *gin.Context) {
	var req CreateOfficeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create office", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Office created successfully")
}

// UpdateOffice handles PATCH /admin/offices/:id
func (h *Handler) UpdateOffice(c *gin.Context) {
	officeID, err := utils.ParseIDParam(c, "id", id.PrefixOffice, "office")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateOfficeRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(officeID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Office updated successfully", result)
}

// DeleteOffice handles DELETE /admin/offices/:id
func (h *Handler) DeleteOffice(c *gin.Context) {
	officeID, err := utils.ParseIDParam(c, "id", id.PrefixOffice, "office")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), officeID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
