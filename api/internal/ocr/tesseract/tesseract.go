package tesseract

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"ocr-gateway/api/internal/imaging"
	"ocr-gateway/api/internal/ocr"
)

// Engine runs Tesseract in-process through gosseract. A fresh client is
// created per call; the underlying API is not reentrant.
type Engine struct {
	TessdataPrefix string
	Languages      []string

	clientFactory func() *gosseract.Client
}

func New(tessdataPrefix, languages string) *Engine {
	langs := strings.FieldsFunc(languages, func(r rune) bool { return r == '+' || r == ',' })
	if len(langs) == 0 {
		langs = []string{"eng"}
	}
	return &Engine{
		TessdataPrefix: tessdataPrefix,
		Languages:      langs,
		clientFactory:  gosseract.NewClient,
	}
}

func (e *Engine) Name() string { return "tesseract" }

func (e *Engine) Recognize(ctx context.Context, img *imaging.Raster) (ocr.RawResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if e.TessdataPrefix != "" {
		if err := c.SetTessdataPrefix(e.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetLanguage(e.Languages...); err != nil {
		return nil, fmt.Errorf("set languages: %w", err)
	}

	encoded, err := img.EncodePNG()
	if err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}
	if err := c.SetImageFromBytes(encoded); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err == nil && len(boxes) > 0 {
		return blocksFromBoxes(boxes), nil
	}

	// Box iteration can fail where plain recognition still works.
	text, err := c.Text()
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}
	return blockFromText(strings.TrimSpace(text), img.Width, img.Height), nil
}

// blocksFromBoxes emits the flat block shape: one (polygon, textInfo)
// pair per recognized line, in reading order.
func blocksFromBoxes(boxes []gosseract.BoundingBox) ocr.RawResult {
	raw := make(ocr.RawResult, 0, len(boxes))
	for _, b := range boxes {
		line := strings.TrimSpace(b.Word)
		if line == "" {
			continue
		}
		polygon := []any{
			[]any{float64(b.Box.Min.X), float64(b.Box.Min.Y)},
			[]any{float64(b.Box.Max.X), float64(b.Box.Min.Y)},
			[]any{float64(b.Box.Max.X), float64(b.Box.Max.Y)},
			[]any{float64(b.Box.Min.X), float64(b.Box.Max.Y)},
		}
		raw = append(raw, []any{polygon, []any{line, b.Confidence / 100.0}})
	}
	return raw
}

func blockFromText(text string, w, h int) ocr.RawResult {
	if text == "" {
		return nil
	}
	var raw ocr.RawResult
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		polygon := []any{
			[]any{0.0, 0.0},
			[]any{float64(w), 0.0},
			[]any{float64(w), float64(h)},
			[]any{0.0, float64(h)},
		}
		raw = append(raw, []any{polygon, []any{line}})
	}
	return raw
}
