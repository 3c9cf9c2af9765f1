package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"ocr-gateway/api/internal/config"
	"ocr-gateway/api/internal/handle"
	"ocr-gateway/api/internal/httpserver"
	"ocr-gateway/api/internal/ocr"
	"ocr-gateway/api/internal/ocr/gemini"
	"ocr-gateway/api/internal/ocr/paddle"
	"ocr-gateway/api/internal/ocr/tesseract"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	engines := &ocr.Engines{
		Paddle:    paddle.New(cfg.PaddleURL),
		Tesseract: tesseract.New(cfg.TessdataPrefix, cfg.TesseractLangs),
		Gemini:    gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	def, err := engines.ByName(cfg.Engine)
	if err != nil {
		log.Fatalf("OCR_ENGINE: %v", err)
	}
	log.Printf("default OCR engine: %s", def.Name())

	h := handle.New(ocr.NewService(def), engines)
	mux := httpserver.New(h)

	addr := ":" + cfg.Port
	log.Printf("ocr-server listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
