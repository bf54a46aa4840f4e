package dto

// CommonResponse is the uniform envelope for status and error payloads.
type CommonResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
