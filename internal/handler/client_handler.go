package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// ClientHandler serves the saved client list.
type ClientHandler struct {
	clients service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clients service.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// Create saves a new client.
func (h *ClientHandler) Create(c *gin.Context) {
	var input service.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	client, err := h.clients.Create(c.Request.Context(), middleware.CompanyID(c), input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, client)
}

// Get returns one client.
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid client id")
		return
	}

	client, err := h.clients.Get(c.Request.Context(), middleware.CompanyID(c), id)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, client)
}

// List returns all of the company's clients.
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, clients)
}

// Update saves changes to a client.
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid client id")
		return
	}

	var input service.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	client, err := h.clients.Update(c.Request.Context(), middleware.CompanyID(c), id, input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, client)
}

// Delete removes a client. Existing invoices keep their billed-to snapshot.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid client id")
		return
	}

	if err := h.clients.Delete(c.Request.Context(), middleware.CompanyID(c), id); err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
