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

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
}

func newClientHandler(cs portssvc.ClientSvcFacade) *clientHandler {
	return &clientHandler{clientService: cs}
}

// RegisterClientRoutes registers routes related to clients.
func RegisterClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade) {
	h := newClientHandler(clientService)

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClientByID)
		clients.PUT("/:clientID", h.updateClient)
		clients.DELETE("/:clientID", h.deleteClient)
	}
}

// createClient godoc
// @Summary Create a new client
// @Description Creates a client record owned by the authenticated user
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Client ID already exists"
// @Failure 500 {object} ErrorResponse "Failed to create client"
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.clientService.CreateClient(c.Request.Context(), req, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "client")
		return
	}

	logger.Info("Client created", slog.String("client_id", created.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(created))
}

// getClientByID godoc
// @Summary Get a client by ID
// @Description Retrieves one client belonging to the authenticated user
// @Tags clients
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve client"
// @Security BearerAuth
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClientByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), clientID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
			return
		}
		logger.Error("Failed to get client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve client"})
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Retrieves all clients belonging to the authenticated user
// @Tags clients
// @Produce  json
// @Success 200 {object} dto.ListClientsResponse
// @Failure 500 {object} ErrorResponse "Failed to list clients"
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), ownerID)
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list clients"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClientsResponse(clients))
}

// updateClient godoc
// @Summary Update a client
// @Description Applies a partial update to a client; omitted fields are left unchanged
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Param   client body dto.UpdateClientRequest true "Fields to update"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Failed to update client"
// @Security BearerAuth
// @Router /clients/{clientID} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateClient", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.clientService.UpdateClient(c.Request.Context(), clientID, req, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "client")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientResponse(updated))
}

// deleteClient godoc
// @Summary Delete a client
// @Description Removes a client and returns the deleted record
// @Tags clients
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Failed to delete client"
// @Security BearerAuth
// @Router /clients/{clientID} [delete]
func (h *clientHandler) deleteClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	deleted, err := h.clientService.DeleteClient(c.Request.Context(), clientID, ownerID)
	if err != nil {
		respondMutationError(c, logger, err, "client")
		return
	}

	logger.Info("Client deleted", slog.String("client_id", clientID))
	c.JSON(http.StatusOK, dto.ToClientResponse(deleted))
}
