package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ocr-gateway/api/internal/imaging"
	"ocr-gateway/api/internal/ocr"
)

const transcribePrompt = `Transcribe ALL text visible in the image.
Return one recognized line of text per output line, top to bottom, in reading order.
Do not translate, reorder, correct or annotate anything. If the image contains no text, return nothing.`

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) Recognize(ctx context.Context, img *imaging.Raster) (ocr.RawResult, error) {
	if e.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return nil, fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{Temperature: ptrFloat32(0)}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(transcribePrompt)},
	}

	encoded, err := img.EncodePNG()
	if err != nil {
		return nil, fmt.Errorf("encode raster: %w", err)
	}

	resp, err := m.GenerateContent(ctx, genai.ImageData("png", encoded))
	if err != nil {
		return nil, err
	}

	return linesToRaw(collectText(resp), img.Width, img.Height), nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// linesToRaw emits the flat block shape. Gemini reports no geometry,
// so every line carries the full-image polygon.
func linesToRaw(text string, w, h int) ocr.RawResult {
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

func ptrFloat32(v float32) *float32 { return &v }
