package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/finbooks/finbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceItemHandler handles HTTP requests for line items nested under an
// invoice. The invoice id always comes from the path; ownership is resolved
// through that invoice on every call.
type invoiceItemHandler struct {
	itemService portssvc.InvoiceItemSvcFacade
}

func newInvoiceItemHandler(is portssvc.InvoiceItemSvcFacade) *invoiceItemHandler {
	return &invoiceItemHandler{itemService: is}
}

// registerInvoiceItemRoutes registers the item routes under /invoices.
func registerInvoiceItemRoutes(invoices *gin.RouterGroup, itemService portssvc.InvoiceItemSvcFacade) {
	h := newInvoiceItemHandler(itemService)

	items := invoices.Group("/:invoiceID/items")
	{
		items.POST("", h.saveItem)
		items.GET("", h.listItems)
		items.DELETE("/:itemID", h.deleteItem)
	}
}

// saveItem godoc
// @Summary Create or replace an invoice line item
// @Description Inserts a new item when itemID is omitted; otherwise fully replaces the existing item's description, quantity, unit price and line total
// @Tags invoice-items
// @Accept  json
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Param   item body dto.SaveInvoiceItemRequest true "Item details"
// @Success 200 {object} dto.InvoiceItemResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Invoice or item not found"
// @Failure 500 {object} ErrorResponse "Failed to save item"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items [post]
func (h *invoiceItemHandler) saveItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	var req dto.SaveInvoiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SaveInvoiceItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	item, err := h.itemService.SaveInvoiceItem(c.Request.Context(), invoiceID, req, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "invoice item")
		return
	}

	logger.Info("Invoice item saved", slog.String("item_id", item.ItemID), slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceItemResponse(item))
}

// listItems godoc
// @Summary List the line items of an invoice
// @Description Retrieves all items on one invoice belonging to the authenticated user
// @Tags invoice-items
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.ListInvoiceItemsResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to list items"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items [get]
func (h *invoiceItemHandler) listItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.itemService.ListInvoiceItems(c.Request.Context(), invoiceID, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "invoice item")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoiceItemsResponse(items))
}

// deleteItem godoc
// @Summary Delete an invoice line item
// @Description Removes one item from an invoice and returns the deleted record
// @Tags invoice-items
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Param   itemID path string true "Item ID"
// @Success 200 {object} dto.InvoiceItemResponse
// @Failure 404 {object} ErrorResponse "Invoice or item not found"
// @Failure 500 {object} ErrorResponse "Failed to delete item"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/items/{itemID} [delete]
func (h *invoiceItemHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")
	itemID := c.Param("itemID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.itemService.DeleteInvoiceItem(c.Request.Context(), itemID, invoiceID, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "invoice item")
		return
	}

	logger.Info("Invoice item deleted", slog.String("item_id", itemID), slog.String("invoice_id", invoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceItemResponse(deleted))
}
