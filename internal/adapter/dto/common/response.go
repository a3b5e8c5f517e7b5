package common

// ErrorResponse documents the error envelope returned by every endpoint
type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// SuccessResponse documents the success envelope returned by every endpoint
type SuccessResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthResponse is returned by the liveness probe
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
