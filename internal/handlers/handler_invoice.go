package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is}
}

// registerInvoiceRoutes registers invoice routes, plus the nested line item
// routes under each invoice.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, itemService portssvc.InvoiceItemSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoiceByID)
		invoices.PUT("/:invoiceID", h.updateInvoice)
		invoices.DELETE("/:invoiceID", h.deleteInvoice)
	}

	registerInvoiceItemRoutes(invoices, itemService)
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates an invoice owned by the authenticated user; when a clientID is supplied it must reference the caller's own client
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Referenced client not found"
// @Failure 409 {object} ErrorResponse "Invoice ID already exists"
// @Failure 500 {object} ErrorResponse "Failed to create invoice"
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "invoice")
		return
	}

	logger.Info("Invoice created", slog.String("invoice_id", created.InvoiceID))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(created))
}

// getInvoiceByID godoc
// @Summary Get an invoice by ID
// @Description Retrieves one invoice belonging to the authenticated user
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger.Error("Failed to get invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves all invoices belonging to the authenticated user
// @Tags invoices
// @Produce  json
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 500 {object} ErrorResponse "Failed to list invoices"
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Applies a partial update; setting clientID to an empty string detaches the client reference
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Param   invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Invoice or referenced client not found"
// @Failure 500 {object} ErrorResponse "Failed to update invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.invoiceService.UpdateInvoice(c.Request.Context(), invoiceID, req, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(updated))
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Removes an invoice and returns the deleted record; its items and receipts are left in place
// @Tags invoices
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to delete invoice"
// @Security BearerAuth
// @Router /invoices/{invoiceID} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.invoiceService.DeleteInvoice(c.Request.Context(), invoiceID, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "invoice")
		return
	}

	logger.Info("Invoice deleted", slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(deleted))
}
