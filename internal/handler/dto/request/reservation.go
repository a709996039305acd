package request

type CreateReservationRequest struct {
	CustomerID   string `json:"customer_id" binding:"required"`
	CustomerName string `json:"customer_name" binding:"required"`
	RoomNumber   string `json:"room_number" binding:"required"`
	Length       int    `json:"length" binding:"required,gt=0"`
}

// UpdateReservationRequest replaces only the fields that are present.
type UpdateReservationRequest struct {
	RoomNumber *string `json:"room_number,omitempty"`
	Length     *int    `json:"length,omitempty" binding:"omitempty,gt=0"`
}
