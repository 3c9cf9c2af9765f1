package ocr

import (
	"context"
	"fmt"
	"sync"

	"ocr-gateway/api/internal/imaging"
)

// RawResult is an engine's output as decoded from JSON: nested []any
// values whose exact nesting differs between engine versions. Shape
// handling is the normalizer's job, not the engine's.
type RawResult []any

// Engine is one OCR provider: a decoded raster in, the provider's raw
// nested result out. Implementations must be safe for concurrent use or
// isolate per-call state themselves.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, img *imaging.Raster) (RawResult, error)
}

type Engines struct {
	Paddle    Engine
	Tesseract Engine
	Gemini    Engine
}

func (e *Engines) ByName(name string) (Engine, error) {
	switch name {
	case "paddle":
		if e.Paddle != nil {
			return e.Paddle, nil
		}
	case "tesseract":
		if e.Tesseract != nil {
			return e.Tesseract, nil
		}
	case "gemini":
		if e.Gemini != nil {
			return e.Gemini, nil
		}
	default:
		return nil, fmt.Errorf("unknown engine %q", name)
	}
	return nil, fmt.Errorf("engine %q is not configured", name)
}

// Manager keeps a per-chat engine choice for the bot front-end.
type Manager struct {
	def Engine
	m   sync.Map // chatID -> Engine
}

func NewManager(defaultEngine Engine) *Manager {
	return &Manager{def: defaultEngine}
}

func (m *Manager) Get(chatID int64) Engine {
	if v, ok := m.m.Load(chatID); ok {
		return v.(Engine)
	}
	return m.def
}

func (m *Manager) Set(chatID int64, e Engine) {
	m.m.Store(chatID, e)
}
