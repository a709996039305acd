package request

type RequestServiceRequest struct {
	ServiceName string `json:"service_name" binding:"required"`
}

type CompleteServiceRequest struct {
	ServiceName string `json:"service_name" binding:"required"`
	Details     string `json:"details,omitempty"`
}
