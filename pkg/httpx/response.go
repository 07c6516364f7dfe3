package httpx

import (
	"encoding/json"
	"io"
	"net/http"
)

// maxRequestBody caps how much JSON we will read from a client.
const maxRequestBody = 1 << 20 // 1 MiB

// WriteJSON writes a JSON response with the given status code. It sets the
// Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// ReadJSON decodes a JSON request body into v, capping the body size so a
// client cannot feed us an unbounded payload.
func ReadJSON(r *http.Request, v any) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Directory and follow state are per-viewer and change constantly, so
// intermediaries must not hold onto them.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
