package handle

import (
	"encoding/json"
	"net/http"

	"ocr-gateway/api/internal/ocr"
)

type Handle struct {
	svc  *ocr.Service
	engs *ocr.Engines
}

func New(svc *ocr.Service, engs *ocr.Engines) *Handle {
	return &Handle{
		svc:  svc,
		engs: engs,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
