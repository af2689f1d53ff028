package dto

// ErrorResponse cuerpo de error HTTP: {"error": "mensaje legible"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AckResponse confirmación simple, p. ej. tras un DELETE.
type AckResponse struct {
	Status string `json:"status"`
}

// OK ack estándar.
func OK() AckResponse { return AckResponse{Status: "OK"} }
