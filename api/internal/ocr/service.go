package ocr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ocr-gateway/api/internal/imaging"
)

// ErrEngine marks an upstream OCR failure. The engine's message is
// forwarded verbatim, never parsed.
var ErrEngine = errors.New("ocr engine failed")

// Service runs the request pipeline: decode, one blocking engine call,
// normalize. It holds no mutable state and is safe for concurrent use.
type Service struct {
	engine Engine
}

func NewService(engine Engine) *Service {
	return &Service{engine: engine}
}

// Extract turns uploaded image bytes into newline-joined recognized
// text. Failures are one of imaging.ErrEmptyInput (caller sent
// nothing), imaging.ErrUndecodable (both decode strategies rejected
// the bytes) or ErrEngine (the engine call itself failed). An empty
// string with a nil error is a blank image, not a failure.
func (s *Service) Extract(ctx context.Context, data []byte) (string, error) {
	img, err := imaging.Decode(data)
	if err != nil {
		return "", err
	}

	raw, err := s.engine.Recognize(ctx, img)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrEngine, s.engine.Name(), err)
	}

	return strings.Join(Normalize(raw), "\n"), nil
}
