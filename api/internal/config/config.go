package config

import (
	"os"
)

type Config struct {
	Port string

	// Engine is the default OCR engine: "paddle" | "tesseract" | "gemini".
	Engine string

	PaddleURL string

	TessdataPrefix string
	TesseractLangs string

	GeminiAPIKey string
	GeminiModel  string

	TelegramBotToken string
	WebhookURL       string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		Engine: getEnv("OCR_ENGINE", "paddle"),

		PaddleURL: getEnv("PADDLEOCR_API_URL", "http://paddleocr:8866/predict/ocr_system"),

		TessdataPrefix: getEnv("TESSDATA_PREFIX", ""),
		TesseractLangs: getEnv("TESSERACT_LANGS", "eng"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),
	}
}
