package api

import (
	"errors"
	"net/http"

	"frontdesk/internal/domain/ledger"
	reqdto "frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ServiceHandler struct {
	frontDesk usecase.FrontDeskUseCase
}

func NewServiceHandler(frontDesk usecase.FrontDeskUseCase) *ServiceHandler {
	return &ServiceHandler{
		frontDesk: frontDesk,
	}
}

func (h *ServiceHandler) RequestService(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	var req reqdto.RequestServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.frontDesk.RequestService(roomNumber, req.ServiceName)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, ledger.ErrNotCheckedIn):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room has no active stay",
			})
		case errors.Is(err, ledger.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Service not found in any provider's catalog",
			})
		case errors.Is(err, usecase.ErrSnapshotFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to persist ledger state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusCreated)
}

func (h *ServiceHandler) CompleteService(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	role, ok := middleware.GetRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CompleteServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.frontDesk.CompleteService(role, roomNumber, req.ServiceName, req.Details)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, ledger.ErrNotCheckedIn):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room has no active stay",
			})
		case errors.Is(err, ledger.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No pending service with that name",
			})
		case errors.Is(err, ledger.ErrProviderMismatch):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Pending service belongs to another provider",
			})
		case errors.Is(err, usecase.ErrNotServiceProvider):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Role has no service provider",
			})
		case errors.Is(err, usecase.ErrSnapshotFailed):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to persist ledger state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) GetPendingServices(c *gin.Context) {
	role, ok := middleware.GetRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	pending, err := h.frontDesk.PendingServices(role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotServiceProvider):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Role has no service provider",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPendingServices(pending))
}
