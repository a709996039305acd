package response

import (
	"time"

	"frontdesk/internal/domain/ledger"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	RoomNumber   string    `json:"roomNumber"`
	Length       int       `json:"length"`
	StartDate    time.Time `json:"startDate"`
	IsActive     bool      `json:"isActive"`
}

func FromReservationView(view ledger.ReservationView) *ReservationResponse {
	resp := &ReservationResponse{}
	_ = copier.Copy(resp, &view)
	return resp
}

func FromReservationViews(views []ledger.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, len(views))
	for i, view := range views {
		resp[i] = FromReservationView(view)
	}
	return resp
}
