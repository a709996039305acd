package response

import (
	"frontdesk/internal/domain/ledger"

	"github.com/jinzhu/copier"
)

type CardResponse struct {
	CardID     string `json:"cardId"`
	RoomNumber string `json:"roomNumber"`
	IsActive   bool   `json:"isActive"`
	HolderID   string `json:"holderId,omitempty"`
	HolderName string `json:"holderName,omitempty"`
}

func FromCardView(view ledger.CardView) *CardResponse {
	resp := &CardResponse{}
	_ = copier.Copy(resp, &view)
	return resp
}

func FromCardViews(views []ledger.CardView) []*CardResponse {
	resp := make([]*CardResponse, len(views))
	for i, view := range views {
		resp[i] = FromCardView(view)
	}
	return resp
}
