package models

// ErrorMessageResponse is the body written by config.ErrorStatus, a single
// "message, err" string under the response key
type ErrorMessageResponse struct {
	Response string `json:"response"`
}

// HealthCheckResponse is the body returned by the /health endpoint
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
