package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/dto"
	"github.com/SscSPs/gcash_pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// reportingHandler serves the operator-facing reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	location         *time.Location
	now              func() time.Time
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, loc *time.Location) *reportingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &reportingHandler{reportingService: rs, location: loc, now: time.Now}
}

func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade, loc *time.Location) {
	h := newReportingHandler(rs, loc)

	reports := rg.Group("/reports")
	{
		reports.GET("/transactions", h.listTransactions)
		reports.GET("/summary", h.dailySummary)
		reports.GET("/balances", h.balances)
	}
}

// day resolves the date query in the business timezone, defaulting to today.
func (h *reportingHandler) day(params dto.DayParams) (time.Time, error) {
	if params.Date == "" {
		return h.now().In(h.location), nil
	}
	return time.ParseInLocation(dateLayout, params.Date, h.location)
}

// listTransactions godoc
// @Summary List my transactions for a day
// @Tags reports
// @Produce json
// @Param date query string false "Business day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/transactions [get]
func (h *reportingHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	var params dto.DayParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	day, err := h.day(params)
	if err != nil {
		badRequest(c, logger, "Invalid date", err)
		return
	}

	txns, err := h.reportingService.ListOperatorTransactions(c.Request.Context(), operatorID, day)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Date: day.Format(dateLayout), Transactions: txns})
}

// dailySummary godoc
// @Summary End-of-shift summary
// @Description Transaction count, service sales, GCash fees and current cash on hand
// @Tags reports
// @Produce json
// @Param date query string false "Business day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.DailySummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) dailySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	var params dto.DayParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}
	day, err := h.day(params)
	if err != nil {
		badRequest(c, logger, "Invalid date", err)
		return
	}

	summary, err := h.reportingService.DailySummary(c.Request.Context(), operatorID, day)
	if err != nil {
		respondError(c, logger, err, "Failed to build daily summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// balances godoc
// @Summary Current balances
// @Tags reports
// @Produce json
// @Success 200 {object} domain.Balances
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/balances [get]
func (h *reportingHandler) balances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	balances, err := h.reportingService.Balances(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to read balances")
		return
	}
	c.JSON(http.StatusOK, balances)
}
