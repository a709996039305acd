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

type CardHandler struct {
	frontDesk usecase.FrontDeskUseCase
}

func NewCardHandler(frontDesk usecase.FrontDeskUseCase) *CardHandler {
	return &CardHandler{
		frontDesk: frontDesk,
	}
}

func (h *CardHandler) AddCardToRoom(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	var req reqdto.AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	card, err := h.frontDesk.AddCardToRoom(roomNumber, req.CardID)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, ledger.ErrCardExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Card already exists",
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

	c.JSON(http.StatusCreated, resdto.FromCardView(card))
}

func (h *CardHandler) GetCardsForRoom(c *gin.Context) {
	roomNumber := c.Param("roomNumber")

	cards, err := h.frontDesk.CardsForRoom(roomNumber)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCardViews(cards))
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	h.cardOp(c, h.frontDesk.DeleteCard)
}

func (h *CardHandler) ActivateCard(c *gin.Context) {
	h.cardOp(c, h.frontDesk.ActivateCard)
}

func (h *CardHandler) DeactivateCard(c *gin.Context) {
	h.cardOp(c, h.frontDesk.DeactivateCard)
}

// cardOp runs a by-ID card mutation; the three operations share their
// error surface.
func (h *CardHandler) cardOp(c *gin.Context, op func(cardID string) error) {
	cardID := c.Param("cardId")

	if err := op(cardID); err != nil {
		switch {
		case errors.Is(err, ledger.ErrCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Card not found",
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
