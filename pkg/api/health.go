package api

// HealthResponse представляет ответ health check.
// Монитор связи клиента использует его как probe доступности.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
