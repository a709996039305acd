package api

import (
	"net/http"

	resdto "frontdesk/internal/handler/dto/response"
	"frontdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	frontDesk usecase.FrontDeskUseCase
}

func NewReportHandler(frontDesk usecase.FrontDeskUseCase) *ReportHandler {
	return &ReportHandler{
		frontDesk: frontDesk,
	}
}

// GetServiceRecord renders the printable service record for a customer's
// current or most recent stay. A customer without a stay still yields a
// 200 with an informational message, matching the desk tool.
func (h *ReportHandler) GetServiceRecord(c *gin.Context) {
	customerID := c.Param("customerId")

	report, err := h.frontDesk.GenerateServiceRecord(customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ServiceRecordResponse{Report: report})
}

func (h *ReportHandler) GetRoomOccupancy(c *gin.Context) {
	details := h.frontDesk.RoomOccupancyDetails()
	c.JSON(http.StatusOK, resdto.FromRoomOccupancies(details))
}
