package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ocr-gateway/api/internal/imaging"
	"ocr-gateway/api/internal/ocr"
)

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	// Telegram sends several sizes; the last one is the largest.
	ph := msg.Photo[len(msg.Photo)-1]
	r.recognizeFile(msg.Chat.ID, ph.FileID)
}

func (r *Router) acceptDocument(msg tgbotapi.Message) {
	r.recognizeFile(msg.Chat.ID, msg.Document.FileID)
}

func (r *Router) recognizeFile(chatID int64, fileID string) {
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		r.sendError(chatID, err)
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	data, err := download(url)
	if err != nil {
		r.sendError(chatID, err)
		return
	}

	svc := ocr.NewService(r.EngManager.Get(chatID))
	text, err := svc.Extract(context.Background(), data)
	switch {
	case errors.Is(err, imaging.ErrEmptyInput), errors.Is(err, imaging.ErrUndecodable):
		r.send(chatID, "I could not read that image. Try another photo.")
		return
	case err != nil:
		r.sendError(chatID, err)
		return
	}

	if text == "" {
		r.send(chatID, "No text found on the image.")
		return
	}
	r.send(chatID, text)
}

func download(url string) ([]byte, error) {
	resp, err := httpClient().Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

func httpClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}
