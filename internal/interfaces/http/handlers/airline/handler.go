package airline

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/flyoffice/directory/internal/application/airline/dto"
	"github.com/flyoffice/directory/internal/application/airline/usecases"
	"github.com/flyoffice/directory/internal/application/directory"
	"github.com/flyoffice/directory/internal/domain/permission"
	"github.com/flyoffice/directory/internal/interfaces/http/middleware"
	"github.com/flyoffice/directory/internal/shared/id"
	"github.com/flyoffice/directory/internal/shared/logger"
	"github.com/flyoffice/directory/internal/shared/utils"
)

// maxSearchResults caps the unpaginated search endpoint.
const maxSearchResults = 50

type AirlineLister interface {
	ListAirlines(ctx context.Context, role string, f directory.AirlineFilter, page, pageSize int) (*directory.Page[*dto.AirlineDTO], error)
}

type CapabilityChecker interface {
	HasCapability(role string, resource permission.Resource) bool
}

type Handler struct {
	createUC    usecases.CreateAirlineExecutor
	renameUC    usecases.RenameAirlineExecutor
	updateUC    usecases.UpdateAirlineExecutor
	setActiveUC usecases.SetAirlineActiveExecutor
	getUC       usecases.GetAirlineExecutor
	searchUC    usecases.SearchAirlinesExecutor
	lister      AirlineLister
	checker     CapabilityChecker
	defaultSize int
	maxSize     int
	logger      logger.Interface
}

func NewHandler(
	createUC usecases.CreateAirlineExecutor,
	renameUC usecases.RenameAirlineExecutor,
	updateUC usecases.UpdateAirlineExecutor,
	setActiveUC usecases.SetAirlineActiveExecutor,
	getUC usecases.GetAirlineExecutor,
	searchUC usecases.SearchAirlinesExecutor,
	lister AirlineLister,
	checker CapabilityChecker,
	defaultPageSize, maxPageSize int,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:    createUC,
		renameUC:    renameUC,
		updateUC:    updateUC,
		setActiveUC: setActiveUC,
		getUC:       getUC,
		searchUC:    searchUC,
		lister:      lister,
		checker:     checker,
		defaultSize: defaultPageSize,
		maxSize:     maxPageSize,
		logger:      logger,
	}
}

// staffView reports whether the caller may see inactive airlines.
func (h *Handler) staffView(c *gin.Context) bool {
	return h.checker.HasCapability(middleware.CallerRole(c), permission.ResourceOffices)
}

// ListAirlines handles GET /airlines
func (h *Handler) ListAirlines(c *gin.Context) {
	p, err := utils.ParsePagination(c, h.defaultSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page, err := h.lister.ListAirlines(c.Request.Context(), middleware.CallerRole(c), parseAirlineFilter(c), p.Page, p.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, page.Items, page.TotalCount, p.Page, utils.EffectivePageSize(p.PageSize, h.maxSize))
}

// SearchAirlines handles GET /airlines/search
func (h *Handler) SearchAirlines(c *gin.Context) {
	limit := maxSearchResults
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < maxSearchResults {
			limit = n
		}
	}

	f := parseAirlineFilter(c)
	if f.IncludeInactive && !h.staffView(c) {
		f.IncludeInactive = false
	}

	hits, err := h.searchUC.Execute(c.Request.Context(), usecases.SearchAirlinesQuery{
		Query:           f.Query,
		Category:        f.Category,
		IncludeInactive: f.IncludeInactive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	results := make([]dto.SearchHitDTO, 0, limit)
	for hit := range hits {
		if len(results) == limit {
			break
		}
		results = append(results, hit)
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

// GetAirline handles GET /airlines/:id
func (h *Handler) GetAirline(c *gin.Context) {
	airlineID, err := utils.ParseIDParam(c, "id", id.PrefixAirline, "airline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.get(c, usecases.GetAirlineQuery{ID: airlineID})
}

// GetAirlineBySlug handles GET /airlines/slug/:slug
func (h *Handler) GetAirlineBySlug(c *gin.Context) {
	h.get(c, usecases.GetAirlineQuery{Slug: c.Param("slug")})
}

func (h *Handler) get(c *gin.Context, query usecases.GetAirlineQuery) {
	query.Public = !h.staffView(c)
	query.RenderHTML, _ = strconv.ParseBool(c.Query("render_html"))

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateAirline handles POST /admin/airlines
func (h *Handler) CreateAirline(c *gin.Context) {
	var req CreateAirlineRequest
	if err := utils.BindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create airline", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Airline created successfully")
}

// UpdateAirline handles PATCH /admin/airlines/:id
func (h *Handler) UpdateAirline(c *gin.Context) {
	airlineID, err := utils.ParseIDParam(c, "id", id.PrefixAirline, "airline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAirlineRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(airlineID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Airline updated successfully", result)
}

// RenameAirline handles PUT /admin/airlines/:id/name
func (h *Handler) RenameAirline(c *gin.Context) {
	airlineID, err := utils.ParseIDParam(c, "id", id.PrefixAirline, "airline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RenameAirlineRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renameUC.Execute(c.Request.Context(), usecases.RenameAirlineCommand{ID: airlineID, Name: req.Name})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Airline renamed successfully", result)
}

// ActivateAirline handles POST /admin/airlines/:id/activate
func (h *Handler) ActivateAirline(c *gin.Context) {
	h.setActive(c, true)
}

// DeactivateAirline handles POST /admin/airlines/:id/deactivate
func (h *Handler) DeactivateAirline(c *gin.Context) {
	h.setActive(c, false)
}

func (h *Handler) setActive(c *gin.Context, active bool) {
	airlineID, err := utils.ParseIDParam(c, "id", id.PrefixAirline, "airline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.setActiveUC.Execute(c.Request.Context(), usecases.SetAirlineActiveCommand{ID: airlineID, Active: active})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Airline deactivated successfully"
	if active {
		message = "Airline activated successfully"
	}
	utils.SuccessResponse(c, http.StatusOK, message, result)
}
