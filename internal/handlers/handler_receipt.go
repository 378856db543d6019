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

// receiptHandler handles HTTP requests related to receipts.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers routes related to receipts.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.createReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receiptID", h.getReceiptByID)
		receipts.PUT("/:receiptID", h.updateReceipt)
		receipts.DELETE("/:receiptID", h.deleteReceipt)
	}
}

// createReceipt godoc
// @Summary Create a new receipt
// @Description Creates a receipt owned by the authenticated user; when an invoiceID is supplied it must reference the caller's own invoice
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.CreateReceiptRequest true "Receipt details"
// @Success 201 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Referenced invoice not found"
// @Failure 409 {object} ErrorResponse "Receipt ID already exists"
// @Failure 500 {object} ErrorResponse "Failed to create receipt"
// @Security BearerAuth
// @Router /receipts [post]
func (h *receiptHandler) createReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.receiptService.CreateReceipt(c.Request.Context(), req, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "receipt")
		return
	}

	logger.Info("Receipt created", slog.String("receipt_id", created.ReceiptID))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(created))
}

// getReceiptByID godoc
// @Summary Get a receipt by ID
// @Description Retrieves one receipt belonging to the authenticated user
// @Tags receipts
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve receipt"
// @Security BearerAuth
// @Router /receipts/{receiptID} [get]
func (h *receiptHandler) getReceiptByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipt, err := h.receiptService.GetReceiptByID(c.Request.Context(), receiptID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Receipt not found"})
			return
		}
		logger.Error("Failed to get receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve receipt"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(receipt))
}

// listReceipts godoc
// @Summary List receipts
// @Description Retrieves all receipts belonging to the authenticated user
// @Tags receipts
// @Produce  json
// @Success 200 {object} dto.ListReceiptsResponse
// @Failure 500 {object} ErrorResponse "Failed to list receipts"
// @Security BearerAuth
// @Router /receipts [get]
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list receipts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list receipts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReceiptsResponse(receipts))
}

// updateReceipt godoc
// @Summary Update a receipt
// @Description Applies a partial update; setting invoiceID to an empty string detaches the invoice reference
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Param   receipt body dto.UpdateReceiptRequest true "Fields to update"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Receipt or referenced invoice not found"
// @Failure 500 {object} ErrorResponse "Failed to update receipt"
// @Security BearerAuth
// @Router /receipts/{receiptID} [put]
func (h *receiptHandler) updateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	var req dto.UpdateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.receiptService.UpdateReceipt(c.Request.Context(), receiptID, req, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "receipt")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceiptResponse(updated))
}

// deleteReceipt godoc
// @Summary Delete a receipt
// @Description Removes a receipt and returns the deleted record
// @Tags receipts
// @Produce  json
// @Param   receiptID path string true "Receipt ID"
// @Success 200 {object} dto.ReceiptResponse
// @Failure 404 {object} ErrorResponse "Receipt not found"
// @Failure 500 {object} ErrorResponse "Failed to delete receipt"
// @Security BearerAuth
// @Router /receipts/{receiptID} [delete]
func (h *receiptHandler) deleteReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.receiptService.DeleteReceipt(c.Request.Context(), receiptID, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "receipt")
		return
	}

	logger.Info("Receipt deleted", slog.String("receipt_id", receiptID))
	c.JSON(http.StatusOK, dto.ToReceiptResponse(deleted))
}
