package handlers

import (
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/currency_rates_app/internal/core/ports/services"
	"github.com/SscSPs/currency_rates_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.RateSvcFacade
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, rateService portssvc.RateSvcFacade) {
	h := &currencyHandler{currencyService: currencyService, rateService: rateService}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:id/analytics", h.getAnalytics)
		currencies.GET("/:id/analytics/chart", h.getAnalyticsChart)
	}
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves every currency known to the registry
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.ListCurrenciesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrenciesResponse(currencies))
}

// getAnalytics godoc
// @Summary Currency analytics
// @Description Rates of one currency over a date range, each compared with a threshold
// @Tags currencies
// @Produce json
// @Param id path int true "Currency ID"
// @Param threshold query int true "Threshold (positive integer)"
// @Param date_from query string true "Start date (YYYY-MM-DD), inclusive"
// @Param date_to query string true "End date (YYYY-MM-DD), inclusive"
// @Param order_by query string false "value or -value" Enums(value, -value)
// @Success 200 {object} dto.ListRatesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /currencies/{id}/analytics [get]
func (h *currencyHandler) getAnalytics(c *gin.Context) {
	id, params, ok := analyticsRequest(c)
	if !ok {
		return
	}

	rows, err := h.rateService.GetAnalytics(c.Request.Context(), id, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRatesResponse(rows, nil))
}

// getAnalyticsChart godoc
// @Summary Currency analytics chart
// @Description The analytics series drawn as a PNG line chart with the threshold as a reference line
// @Tags currencies
// @Produce png
// @Param id path int true "Currency ID"
// @Param threshold query int true "Threshold (positive integer)"
// @Param date_from query string true "Start date (YYYY-MM-DD), inclusive"
// @Param date_to query string true "End date (YYYY-MM-DD), inclusive"
// @Param order_by query string false "value or -value" Enums(value, -value)
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /currencies/{id}/analytics/chart [get]
func (h *currencyHandler) getAnalyticsChart(c *gin.Context) {
	id, params, ok := analyticsRequest(c)
	if !ok {
		return
	}

	img, err := h.rateService.RenderAnalyticsChart(c.Request.Context(), id, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// analyticsRequest reads the currency id and query. A non-numeric id cannot name a currency.
func analyticsRequest(c *gin.Context) (int64, dto.AnalyticsParams, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Errors: "Not found."})
		return 0, dto.AnalyticsParams{}, false
	}

	var params dto.AnalyticsParams
	if !bindQuery(c, &params) {
		return 0, dto.AnalyticsParams{}, false
	}
	return id, params, true
}
