package dto

// ErrorResponse cuerpo de error HTTP: {"error": "...", "code": "..."}.
// Fields lleva los mensajes por campo cuando falla la validación.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessResponse respuesta mínima {"success": true}.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse sonda de vida.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
