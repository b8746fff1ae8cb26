package api

// ReviewRequest is the inbound payload for a product review. Gin binding
// enforces presence and length bounds; whitespace-only values are caught by
// the review input constructor afterwards.
type ReviewRequest struct {
	ProductName string `json:"product_name" binding:"required,max=200"`
	SalesPage   string `json:"sales_page" binding:"required,min=10,max=10000"`
}

// ReviewResponse is the outbound decision payload.
type ReviewResponse struct {
	Decision    string `json:"decision"`
	Explanation string `json:"explanation"`
}

// ErrorResponse is the structured error object returned on any failure.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// HealthResponse reports service status and runtime mode.
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	MockMode bool   `json:"mock_mode"`
}
