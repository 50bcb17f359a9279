package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// ISOTimestamp is the millisecond UTC layout used in every timestamp field.
const ISOTimestamp = "2006-01-02T15:04:05.000Z07:00"

// Clock returns the current time. Handlers take one so tests can pin it.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

func isoNow(now Clock) string {
	return now().UTC().Format(ISOTimestamp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeHTML(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
