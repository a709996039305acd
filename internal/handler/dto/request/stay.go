package request

// CheckInRequest carries the desk clerk's confirmation that payment was
// taken. No binding:"required" on the flag: false is a meaningful value.
type CheckInRequest struct {
	PaymentDone bool `json:"payment_done"`
}
