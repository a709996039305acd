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

type StayHandler struct {
	frontDesk usecase.FrontDeskUseCase
}

func NewStayHandler(frontDesk usecase.FrontDeskUseCase) *StayHandler {
	return &StayHandler{
		frontDesk: frontDesk,
	}
}

func (h *StayHandler) CheckIn(c *gin.Context) {
	customerID := c.Param("customerId")

	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	card, err := h.frontDesk.CheckIn(customerID, req.PaymentDone)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, ledger.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		case errors.Is(err, ledger.ErrPaymentRequired):
			c.JSON(http.StatusPaymentRequired, gin.H{
				"error": "Payment must be completed before check-in",
			})
		case errors.Is(err, ledger.ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Customer is already checked in",
			})
		case errors.Is(err, ledger.ErrRoomOccupied):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is occupied by another active stay",
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

	c.JSON(http.StatusOK, resdto.CheckInResponse{
		CustomerID: customerID,
		Card:       resdto.FromCardView(card),
	})
}

func (h *StayHandler) CheckOut(c *gin.Context) {
	customerID := c.Param("customerId")

	summary, err := h.frontDesk.CheckOut(customerID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, ledger.ErrNotCheckedIn):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Customer is not checked in",
			})
		case errors.Is(err, ledger.ErrNoActiveCard):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No active card for the stay's room",
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

	c.JSON(http.StatusOK, resdto.FromCheckOutSummary(summary))
}

func (h *StayHandler) GetCheckedInCustomers(c *gin.Context) {
	views := h.frontDesk.CheckedInCustomers()
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}
