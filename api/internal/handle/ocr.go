package handle

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"ocr-gateway/api/internal/imaging"
	"ocr-gateway/api/internal/ocr"
)

const maxUploadBytes = 32 << 20

// Ocr serves POST /v1/ocr: one image upload in, recognized text out.
// The image arrives as the multipart field "image" or, for
// non-multipart requests, as the raw request body. An optional
// ?engine= query switches the OCR engine for this request.
func (h *Handle) Ocr(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	data, ok := h.readImage(w, r)
	if !ok {
		return
	}

	svc := h.svc
	if name := strings.TrimSpace(r.URL.Query().Get("engine")); name != "" {
		engine, err := h.engs.ByName(name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		svc = ocr.NewService(engine)
	}

	text, err := svc.Extract(r.Context(), data)
	switch {
	case errors.Is(err, imaging.ErrEmptyInput):
		writeError(w, http.StatusBadRequest, "empty file")
		return
	case errors.Is(err, imaging.ErrUndecodable):
		writeError(w, http.StatusBadRequest, "failed to decode image")
		return
	case errors.Is(err, ocr.ErrEngine):
		writeError(w, http.StatusBadGateway, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// readImage pulls the upload out of the request. A false return means
// the response has already been written.
func (h *Handle) readImage(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return nil, false
		}
		file, _, err := r.FormFile("image")
		if err != nil {
			writeError(w, http.StatusBadRequest, "image field missing")
			return nil, false
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
			return nil, false
		}
		return data, true
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return nil, false
	}
	return data, true
}
