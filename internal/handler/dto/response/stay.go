package response

import (
	"fmt"
	"time"

	"frontdesk/internal/domain/ledger"
)

type CheckInResponse struct {
	CustomerID string        `json:"customerId"`
	Card       *CardResponse `json:"card"`
}

type CheckOutSummaryResponse struct {
	CustomerID     string    `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	RoomNumber     string    `json:"roomNumber"`
	CheckedInAt    time.Time `json:"checkedInAt"`
	CheckedOutAt   time.Time `json:"checkedOutAt"`
	ServiceCharges float64   `json:"serviceCharges"`
	Summary        string    `json:"summary"`
}

func FromCheckOutSummary(summary *ledger.CheckOutSummary) *CheckOutSummaryResponse {
	text := fmt.Sprintf("Customer %s checked in to Room %s at %s and checked out at %s. Service charges: $%.2f.",
		summary.CustomerName,
		summary.RoomNumber,
		summary.CheckedInAt.Format(time.RFC3339),
		summary.CheckedOutAt.Format(time.RFC3339),
		summary.ServiceCharges)

	return &CheckOutSummaryResponse{
		CustomerID:     summary.CustomerID,
		CustomerName:   summary.CustomerName,
		RoomNumber:     summary.RoomNumber,
		CheckedInAt:    summary.CheckedInAt,
		CheckedOutAt:   summary.CheckedOutAt,
		ServiceCharges: summary.ServiceCharges,
		Summary:        text,
	}
}
