package handlers

import "net/http"

// Greeting serves a fixed body as text/html.
func Greeting(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeHTML(w, http.StatusOK, body)
	}
}

// InfoResponse is returned by the container app's /api/info.
type InfoResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Env       string `json:"env"`
}

// Info reports the configured environment name and the request time.
func Info(environment string, now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, InfoResponse{
			Message:   "Container App API",
			Timestamp: isoNow(now),
			Env:       environment,
		})
	}
}

// HelloResponse is returned by the api service's /api/hello.
type HelloResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Hello greets with the request time.
func Hello(now Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HelloResponse{
			Message:   "Hello from API",
			Timestamp: isoNow(now),
		})
	}
}
