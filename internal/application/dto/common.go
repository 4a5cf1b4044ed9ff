package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con el toast mostrado tras la acción.
type MessageResponse struct {
	Message string `json:"message"`
}
