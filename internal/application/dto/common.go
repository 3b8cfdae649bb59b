package dto

// ErrorResponse cuerpo de error HTTP de los endpoints JSON del dashboard.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
