package httpserver

import (
	"net/http"

	"ocr-gateway/api/internal/handle"
)

// New wires the service routes onto a fresh mux.
func New(h *handle.Handle) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/ocr", h.Ocr)
	return mux
}
