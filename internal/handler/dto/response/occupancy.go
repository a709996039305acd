package response

import "frontdesk/internal/domain/ledger"

type RoomOccupancyResponse struct {
	RoomNumber      string          `json:"roomNumber"`
	Occupied        bool            `json:"occupied"`
	CustomerID      string          `json:"customerId,omitempty"`
	CustomerName    string          `json:"customerName,omitempty"`
	Cards           []*CardResponse `json:"cards"`
	PendingServices []string        `json:"pendingServices"`
}

func FromRoomOccupancies(details []ledger.RoomOccupancy) []*RoomOccupancyResponse {
	resp := make([]*RoomOccupancyResponse, len(details))
	for i, detail := range details {
		resp[i] = &RoomOccupancyResponse{
			RoomNumber:      detail.RoomNumber,
			Occupied:        detail.Occupied,
			CustomerID:      detail.CustomerID,
			CustomerName:    detail.CustomerName,
			Cards:           FromCardViews(detail.Cards),
			PendingServices: detail.PendingServices,
		}
	}
	return resp
}
