package api

import (
	"errors"
	"net/http"

	"frontdesk/internal/domain/ledger"
	reqdto "frontdesk/internal/handler/dto/request"
	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	frontDesk usecase.FrontDeskUseCase
}

func NewReservationHandler(frontDesk usecase.FrontDeskUseCase) *ReservationHandler {
	return &ReservationHandler{
		frontDesk: frontDesk,
	}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.frontDesk.CreateReservation(req.CustomerID, req.CustomerName, req.RoomNumber, req.Length)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, ledger.ErrInvalidStayLength):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Stay length must be positive",
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

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	customerID := c.Param("customerId")

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.frontDesk.UpdateReservation(customerID, req.RoomNumber, req.Length)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, ledger.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, ledger.ErrReservationActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checked-in reservations cannot be updated",
			})
		case errors.Is(err, ledger.ErrInvalidStayLength):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Stay length must be positive",
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

func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	customerID := c.Param("customerId")

	err := h.frontDesk.DeleteReservation(customerID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, ledger.ErrReservationActive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Checked-in reservations cannot be deleted",
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

func (h *ReservationHandler) GetPendingReservations(c *gin.Context) {
	views := h.frontDesk.PendingReservations()
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
