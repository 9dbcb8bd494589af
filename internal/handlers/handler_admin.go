package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/gcash_pos_backend/internal/apperrors"
	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/dto"
	"github.com/SscSPs/gcash_pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves balance adjustments, price maintenance and the audit
// timeline. Every route requires the admin role.
type adminHandler struct {
	ledgerService    portssvc.LedgerSvcFacade
	catalogService   portssvc.CatalogSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &adminHandler{
		ledgerService:    services.Ledger,
		catalogService:   services.Catalog,
		reportingService: services.Reporting,
	}

	admin := rg.Group("/admin", middleware.RequireRole(string(domain.RoleAdmin)))
	{
		admin.GET("/audit", h.auditTimeline)
		admin.POST("/balances/gcash", h.adjustBalance(domain.GCashFloat))
		admin.POST("/balances/cash", h.adjustBalance(domain.CashOnHand))
		admin.PUT("/balances/service-revenue", h.setServiceRevenue)
		admin.GET("/prices", h.listPrices)
		admin.PUT("/prices", h.savePrices)
	}
}

// adjustBalance godoc
// @Summary Adjust the GCash float or cash on hand
// @Description gcash accepts top-up and deduction; cash accepts add-cash and deduct-cash. The result may not go below zero.
// @Tags admin
// @Accept json
// @Produce json
// @Param adjustment body dto.AdjustBalanceRequest true "Adjustment"
// @Success 200 {object} dto.AdjustmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Balance would go negative"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/balances/gcash [post]
// @Router /admin/balances/cash [post]
func (h *adminHandler) adjustBalance(account domain.AccountID) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("account", string(account)))
		adminID, ok := operatorFromCtx(c, logger)
		if !ok {
			return
		}

		var req dto.AdjustBalanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, logger, "Invalid request format", err)
			return
		}

		adj := domain.Adjustment{Kind: domain.AdjustmentKind(req.Direction), Reference: req.Reference}
		if adj.Account() != account {
			respondError(c, logger, fmt.Errorf("%w: direction %s does not apply to %s", apperrors.ErrValidation, req.Direction, account), "Invalid direction")
			return
		}
		amount, err := domain.PositiveCentsFromDecimal("amount", *req.Amount)
		if err != nil {
			respondError(c, logger, err, "Invalid amount")
			return
		}
		adj.Amount = amount

		result, err := h.ledgerService.Adjust(c.Request.Context(), adminID, adj)
		if err != nil {
			respondError(c, logger, err, "Failed to adjust balance")
			return
		}
		c.JSON(http.StatusOK, dto.ToAdjustmentResponse(result))
	}
}

// setServiceRevenue godoc
// @Summary Set the service revenue balance
// @Tags admin
// @Accept json
// @Produce json
// @Param balance body dto.SetRevenueRequest true "New balance"
// @Success 200 {object} dto.AdjustmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/balances/service-revenue [put]
func (h *adminHandler) setServiceRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	var req dto.SetRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	balance, err := domain.CentsFromDecimal("balance", *req.Balance)
	if err != nil {
		respondError(c, logger, err, "Invalid balance")
		return
	}

	result, err := h.ledgerService.Adjust(c.Request.Context(), adminID, domain.Adjustment{
		Kind:      domain.AdjustSetRevenue,
		Amount:    balance,
		Reference: req.Reference,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to set service revenue")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdjustmentResponse(result))
}

// listPrices godoc
// @Summary List service prices
// @Tags admin
// @Produce json
// @Success 200 {object} dto.ListPricesResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/prices [get]
func (h *adminHandler) listPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	prices, err := h.catalogService.ListPrices(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list prices")
		return
	}
	if prices == nil {
		prices = []domain.ServicePrice{}
	}
	c.JSON(http.StatusOK, dto.ListPricesResponse{Prices: prices})
}

// savePrices godoc
// @Summary Upsert service prices
// @Description Keys are lowercase words joined by underscores. Prices must not be negative.
// @Tags admin
// @Accept json
// @Produce json
// @Param prices body dto.SavePricesRequest true "Prices by key"
// @Success 200 {object} dto.ListPricesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/prices [put]
func (h *adminHandler) savePrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	var req dto.SavePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}
	catalog, err := req.ToCatalog()
	if err != nil {
		respondError(c, logger, err, "Invalid price")
		return
	}

	if err := h.catalogService.SavePrices(c.Request.Context(), adminID, catalog); err != nil {
		respondError(c, logger, err, "Failed to save prices")
		return
	}
	logger.Info("Prices saved", slog.Int("count", len(catalog)))

	prices, err := h.catalogService.ListPrices(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list prices")
		return
	}
	c.JSON(http.StatusOK, dto.ListPricesResponse{Prices: prices})
}

// auditTimeline godoc
// @Summary Audit timeline
// @Description Transactions and balance logs in [from, to), newest first, with cursor pagination
// @Tags admin
// @Produce json
// @Param from query string true "Start (RFC 3339, inclusive)"
// @Param to query string true "End (RFC 3339, exclusive)"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.AuditTimelineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/audit [get]
func (h *adminHandler) auditTimeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AuditParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	from, err := time.Parse(time.RFC3339, params.From)
	if err != nil {
		badRequest(c, logger, "Invalid from", err)
		return
	}
	to, err := time.Parse(time.RFC3339, params.To)
	if err != nil {
		badRequest(c, logger, "Invalid to", err)
		return
	}
	if params.NextToken != nil && *params.NextToken == "" {
		params.NextToken = nil
	}

	entries, next, err := h.reportingService.AuditTimeline(c.Request.Context(), from, to, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to load audit timeline")
		return
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	c.JSON(http.StatusOK, dto.AuditTimelineResponse{Entries: entries, NextToken: next})
}
