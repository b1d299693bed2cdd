package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/dto"
	"github.com/SscSPs/currency_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles rate listings and the caller's watchlist.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// registerRateRoutes registers routes related to rates. Listing is open to anonymous callers;
// requireAuth guards everything that touches a watchlist.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade, requireAuth gin.HandlerFunc) {
	h := &rateHandler{rateService: rateService}

	rg.GET("/rates", h.listRates)
	rg.POST("/rates", requireAuth, h.watchCurrency)
	rg.GET("/watchlist", requireAuth, h.listWatchlist)
}

// listRates godoc
// @Summary List rates
// @Description Anonymous callers get every stored rate. Authenticated callers get the rates of their watched currencies, each flagged against its threshold.
// @Tags rates
// @Produce json
// @Param order_by query string false "value or -value" Enums(value, -value)
// @Param limit query int false "Page size (1-1000); omit for all rows"
// @Param next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListRatesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	var params dto.ListRatesParams
	if !bindQuery(c, &params) {
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserIDFromContext(c); ok {
		userID = &id
	}

	rows, nextToken, err := h.rateService.ListRates(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRatesResponse(rows, nextToken))
}

// watchCurrency godoc
// @Summary Watch a currency
// @Description Adds a currency to the caller's watchlist, or changes its threshold when already watched
// @Tags rates
// @Accept json
// @Produce json
// @Param watch body dto.WatchCurrencyRequest true "Currency and threshold"
// @Success 201 {object} dto.UserCurrencyResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /rates [post]
func (h *rateHandler) watchCurrency(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.WatchCurrencyRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.rateService.WatchCurrency(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserCurrencyResponse(*entry))
}

// listWatchlist godoc
// @Summary List watched currencies
// @Description The caller's watched currencies with their thresholds
// @Tags rates
// @Produce json
// @Success 200 {object} dto.WatchlistResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /watchlist [get]
func (h *rateHandler) listWatchlist(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, err := h.rateService.ListWatchlist(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWatchlistResponse(entries))
}
