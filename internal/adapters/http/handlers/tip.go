package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/ecotips/internal/adapters/http/dto"
	"github.com/jsamuelsen/ecotips/internal/app"
)

// TipHandler serves the tip catalog.
type TipHandler struct {
	service *app.TipService
}

// NewTipHandler creates a new tip handler.
func NewTipHandler(service *app.TipService) *TipHandler {
	return &TipHandler{service: service}
}

// ListTips handles GET /tips.
//
// @Summary List all tips
// @Tags tips
// @Produce json
// @Success 200 {array} dto.TipResponse
// @Router /api/v1/tips [get]
func (h *TipHandler) ListTips(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewTipListResponse(h.service.List(c.Request.Context())))
}

// GetTip handles GET /tips/:id.
//
// @Summary Get a tip by id
// @Tags tips
// @Produce json
// @Param id path int true "Tip ID"
// @Success 200 {object} dto.TipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/tips/{id} [get]
func (h *TipHandler) GetTip(c *gin.Context) {
	id, ok := tipID(c)
	if !ok {
		return
	}

	tip, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTipResponse(&tip))
}

// ListByCategory handles GET /tips/category/:category.
// The category is matched in normalized form; an unknown category yields [].
//
// @Summary List tips in a category
// @Tags tips
// @Produce json
// @Param category path string true "Category, e.g. zero-waste"
// @Success 200 {array} dto.TipResponse
// @Router /api/v1/tips/category/{category} [get]
func (h *TipHandler) ListByCategory(c *gin.Context) {
	tips := h.service.ByCategory(c.Request.Context(), c.Param("category"))
	c.JSON(http.StatusOK, dto.NewTipListResponse(tips))
}

// Search handles GET /tips/search.
//
// @Summary Search and filter tips
// @Tags tips
// @Produce json
// @Param q query string false "Free text"
// @Param category query string false "Category"
// @Param difficulty query string false "Difficulty"
// @Param impact query string false "Impact token: low, medium, high, very-high"
// @Success 200 {array} dto.TipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/tips/search [get]
func (h *TipHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if !bindQuery(c, &req) {
		return
	}

	tips := h.service.Search(c.Request.Context(), req.Query())
	c.JSON(http.StatusOK, dto.NewTipListResponse(tips))
}

// Related handles GET /tips/:id/related.
//
// @Summary List tips related to a tip
// @Tags tips
// @Produce json
// @Param id path int true "Tip ID"
// @Param limit query int false "1 to 10, default 3"
// @Success 200 {array} dto.TipResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/tips/{id}/related [get]
func (h *TipHandler) Related(c *gin.Context) {
	id, ok := tipID(c)
	if !ok {
		return
	}

	var req dto.RelatedRequest
	if !bindQuery(c, &req) {
		return
	}

	tips, err := h.service.Related(c.Request.Context(), id, req.LimitOrDefault())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTipListResponse(tips))
}

// Stats handles GET /tips/stats.
//
// @Summary Aggregate impact of the catalog
// @Tags tips
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Router /api/v1/tips/stats [get]
func (h *TipHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSummaryResponse(h.service.Summary(c.Request.Context())))
}

// RegisterTipRoutes registers tip routes on the given router group.
func (h *TipHandler) RegisterTipRoutes(rg *gin.RouterGroup) {
	tips := rg.Group("/tips")
	tips.GET("", h.ListTips)
	tips.GET("/search", h.Search)
	tips.GET("/stats", h.Stats)
	tips.GET("/category/:category", h.ListByCategory)
	tips.GET("/:id", h.GetTip)
	tips.GET("/:id/related", h.Related)
}

// tipID parses the :id path parameter. On failure it writes a 400 and returns false.
func tipID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.ErrorCodeBadRequest,
			"tip id must be a positive integer",
		).WithTraceID(dto.GetTraceID(c)))

		return 0, false
	}

	return id, true
}

// bindQuery binds and validates query parameters. On failure it writes a 400 and
// returns false.
func bindQuery(c *gin.Context, v any) bool {
	err := dto.BindQueryAndValidate(c, v)
	if err == nil {
		return true
	}

	if dto.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c)))

		return false
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"malformed query parameters",
	).WithTraceID(dto.GetTraceID(c)))

	return false
}
