package handlers

import "net/http"

// HealthResponse is the JSON health payload of the node scenarios.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health responds with a fixed OK status tagged with the given service name.
func Health(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:  "OK",
			Service: service,
		})
	}
}

// PlainHealth responds with a bare "OK" body.
func PlainHealth(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, "OK")
}
