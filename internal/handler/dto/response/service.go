package response

import (
	"frontdesk/internal/domain/ledger"

	"github.com/jinzhu/copier"
)

type PendingServiceResponse struct {
	RoomNumber  string  `json:"roomNumber"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Provider    string  `json:"provider"`
}

type ServiceRecordResponse struct {
	Report string `json:"report"`
}

func FromPendingServices(pending []ledger.PendingService) []*PendingServiceResponse {
	resp := make([]*PendingServiceResponse, len(pending))
	for i, item := range pending {
		resp[i] = &PendingServiceResponse{}
		_ = copier.Copy(resp[i], &item)
	}
	return resp
}
