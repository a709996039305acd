package request

type AddCardRequest struct {
	CardID string `json:"card_id" binding:"required"`
}
