package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/gcash_pos_backend/internal/core/domain"
	portssvc "github.com/SscSPs/gcash_pos_backend/internal/core/ports/services"
	"github.com/SscSPs/gcash_pos_backend/internal/dto"
	"github.com/SscSPs/gcash_pos_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// posHandler serves the terminal: sessions, cart edits and checkout.
type posHandler struct {
	posService portssvc.POSSvcFacade
}

func registerPOSRoutes(rg *gin.RouterGroup, posService portssvc.POSSvcFacade, checkoutLimit gin.HandlerFunc) {
	h := &posHandler{posService: posService}

	pos := rg.Group("/pos")
	{
		pos.GET("/fee", h.quoteFee)
		pos.POST("/sessions", h.openSession)

		session := pos.Group("/sessions/:sessionID")
		session.GET("", h.getSession)
		session.DELETE("", h.closeSession)
		session.POST("/items/service", h.addService)
		session.POST("/items/gcash-in", h.addGCash(domain.LineItemGCashIn))
		session.POST("/items/gcash-out", h.addGCash(domain.LineItemGCashOut))
		session.DELETE("/items/:index", h.removeItem)
		session.DELETE("/items", h.clearCart)
		session.POST("/checkout", checkoutLimit, h.checkout)
	}
}

// operatorFromCtx writes a 401 and returns false when the caller is unknown.
func operatorFromCtx(c *gin.Context, logger *slog.Logger) (string, bool) {
	operatorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Operator ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	}
	return operatorID, ok
}

// openSession godoc
// @Summary Open a POS session
// @Description Snapshots the price catalog and starts an empty cart for the logged-in operator
// @Tags pos
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/sessions [post]
func (h *posHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	session, err := h.posService.OpenSession(c.Request.Context(), operatorID)
	if err != nil {
		respondError(c, logger, err, "Failed to open session")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

// getSession godoc
// @Summary Get a POS session
// @Description Returns the session's cart and totals
// @Tags pos
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 403 {object} ErrorResponse "Session belongs to another operator"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/sessions/{sessionID} [get]
func (h *posHandler) getSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	session, err := h.posService.GetSession(c.Request.Context(), operatorID, c.Param("sessionID"))
	if err != nil {
		respondError(c, logger, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// closeSession godoc
// @Summary Close a POS session
// @Tags pos
// @Param sessionID path string true "Session ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Session busy"
// @Security BearerAuth
// @Router /pos/sessions/{sessionID} [delete]
func (h *posHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	if err := h.posService.CloseSession(c.Request.Context(), operatorID, c.Param("sessionID")); err != nil {
		respondError(c, logger, err, "Failed to close session")
		return
	}
	c.Status(http.StatusNoContent)
}

// addService godoc
// @Summary Add a service to the cart
// @Description Prices a printing, photocopy, scan, lamination or PVC choice from the session catalog
// @Tags pos
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param item body dto.AddServiceRequest true "Service choice"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid choice or price not configured"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Session busy"
// @Security BearerAuth
// @Router /pos/sessions/{sessionID}/items/service [post]
func (h *posHandler) addService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	var req dto.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, "Invalid request format", err)
		return
	}

	session, err := h.posService.AddService(c.Request.Context(), operatorID, c.Param("sessionID"), req.ToDomain())
	if err != nil {
		respondError(c, logger, err, "Failed to add service")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// addGCash godoc
// @Summary Add a GCash cash-in or cash-out line
// @Description The fee is computed from the amount. An optional split books part of the fee to the float.
// @Tags pos
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param item body dto.AddGCashRequest true "GCash amount"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or fee split"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Session busy"
// @Security BearerAuth
// @Router /pos/sessions/{sessionID}/items/gcash-in [post]
// @Router /pos/sessions/{sessionID}/items/gcash-out [post]
func (h *posHandler) addGCash(kind domain.LineItemType) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("item_type", string(kind)))
		operatorID, ok := operatorFromCtx(c, logger)
		if !ok {
			return
		}

		var req dto.AddGCashRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, logger, "Invalid request format", err)
			return
		}
		amount, err := domain.CentsFromDecimal("amount", *req.Amount)
		if err != nil {
			respondError(c, logger, err, "Invalid amount")
			return
		}
		split, err := req.Split()
		if err != nil {
			respondError(c, logger, err, "Invalid fee split")
			return
		}

		session, err := h.posService.AddGCash(c.Request.Context(), operatorID, c.Param("sessionID"), kind, amount, req.Reference, split)
		if err != nil {
			respondError(c, logger, err, "Failed to add GCash item")
			return
		}
		c.JSON(http.StatusOK, dto.ToSessionResponse(session))
	}
}

// removeItem godoc
// @Summary Remove a cart line
// @Tags pos
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param index path int true "Zero-based line index"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse "Index out of range"
// @Failure 409 {object} ErrorResponse "Session busy"
// @Security BearerAuth
// @Router /pos/sessions/{sessionID}/items/{index} [delete]
func (h *posHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, logger, "Invalid item index", err)
		return
	}

	session, err := h.posService.RemoveItem(c.Request.Context(), operatorID, c.Param("sessionID"), index)
	if err != nil {
		respondError(c, logger, err, "Failed to remove item")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// clearCart godoc
// @Summary Clear the cart
// @Tags pos
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} ErrorResponse "Session busy"
// @Security BearerAuth
// @Router /pos/sessions/{sessionID}/items [delete]
func (h *posHandler) clearCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	session, err := h.posService.ClearCart(c.Request.Context(), operatorID, c.Param("sessionID"))
	if err != nil {
		respondError(c, logger, err, "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// checkout godoc
// @Summary Complete payment
// @Description Commits the cart to the ledger. The cart is cleared only when the commit succeeds.
// @Tags pos
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse "Empty cart"
// @Failure 409 {object} ErrorResponse "Insufficient funds or session busy"
// @Failure 412 {object} ErrorResponse "Account not initialized"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/sessions/{sessionID}/checkout [post]
func (h *posHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID, ok := operatorFromCtx(c, logger)
	if !ok {
		return
	}

	sessionID := c.Param("sessionID")
	logger = logger.With(slog.String("session_id", sessionID))

	result, err := h.posService.Checkout(c.Request.Context(), operatorID, sessionID)
	if err != nil {
		respondError(c, logger, err, "Failed to complete transaction")
		return
	}

	txn := result.Transaction
	logger.Info("Checkout completed", slog.String("transaction_id", txn.TransactionID))
	middleware.TrackEvent(c, "pos_checkout_completed", map[string]any{
		"transaction_id": txn.TransactionID,
		"items":          len(txn.Items),
		"total":          txn.TotalAmount.String(),
		"service_sales":  txn.ServiceTotal().String(),
		"gcash_fees":     txn.GCashFees().String(),
	})
	c.JSON(http.StatusCreated, dto.ToCheckoutResponse(result))
}

// quoteFee godoc
// @Summary Quote a GCash fee
// @Tags pos
// @Produce json
// @Param amount query string true "GCash amount in pesos"
// @Success 200 {object} dto.FeeQuoteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/fee [get]
func (h *posHandler) quoteFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.FeeQuoteParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, logger, "Invalid query parameters", err)
		return
	}

	d, err := decimal.NewFromString(params.Amount)
	if err != nil {
		badRequest(c, logger, "Invalid amount", err)
		return
	}
	amount, err := domain.CentsFromDecimal("amount", d)
	if err != nil {
		respondError(c, logger, err, "Invalid amount")
		return
	}

	fee, err := h.posService.QuoteFee(amount)
	if err != nil {
		respondError(c, logger, err, "Failed to quote fee")
		return
	}
	c.JSON(http.StatusOK, dto.FeeQuoteResponse{Amount: amount, Fee: fee, Total: amount + fee})
}
