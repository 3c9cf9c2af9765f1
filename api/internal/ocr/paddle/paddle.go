package paddle

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ocr-gateway/api/internal/imaging"
	"ocr-gateway/api/internal/ocr"
)

// Engine talks to a PaddleOCR serving endpoint. The response's results
// payload is passed through untouched: depending on the PaddleOCR
// version it is either the block list itself or wraps it one level
// deeper, and the normalizer resolves that.
type Engine struct {
	URL   string
	httpc *http.Client
}

func New(url string) *Engine {
	return &Engine{
		URL:   url,
		httpc: &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string { return "paddle" }

func (e *Engine) Recognize(ctx context.Context, img *imaging.Raster) (ocr.RawResult, error) {
	if e.URL == "" {
		return nil, fmt.Errorf("PADDLEOCR_API_URL is empty")
	}

	encoded, err := img.EncodePNG()
	if err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}

	payload, _ := json.Marshal(map[string]any{
		"images": []string{base64.StdEncoding.EncodeToString(encoded)},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", e.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("paddle %d: %s", resp.StatusCode, string(body))
	}

	var out struct {
		Status  string `json:"status"`
		Msg     string `json:"msg"`
		Results []any  `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode paddle response: %w", err)
	}
	if out.Status != "" && out.Status != "000" {
		return nil, fmt.Errorf("paddle status %s: %s", out.Status, out.Msg)
	}

	// One image in, one result entry out. The entry keeps whatever
	// nesting this PaddleOCR version produced.
	if len(out.Results) == 0 {
		return nil, nil
	}
	if entry, ok := out.Results[0].([]any); ok {
		return ocr.RawResult(entry), nil
	}
	return ocr.RawResult{out.Results[0]}, nil
}
