package telegram

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ocr-gateway/api/internal/ocr"
)

type Router struct {
	Bot        *tgbotapi.BotAPI
	EngManager *ocr.Manager
	Engines    *ocr.Engines
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	cid := upd.Message.Chat.ID

	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}

	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}
	if upd.Message.Document != nil && strings.HasPrefix(upd.Message.Document.MimeType, "image/") {
		r.acceptDocument(*upd.Message)
		return
	}

	r.send(cid, "Send a photo or an image file and I will reply with the recognized text.")
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Send a photo of a page and I will reply with the recognized text.\nCommands: /health, /engine")
	case "health":
		r.send(cid, "OK")
	case "engine":
		args := strings.Fields(strings.TrimSpace(strings.TrimPrefix(upd.Message.Text, "/engine")))
		if len(args) == 0 {
			cur := r.EngManager.Get(cid).Name()
			r.send(cid, "Current engine: "+cur+"\nUsage:\n/engine paddle\n/engine tesseract\n/engine gemini")
			return
		}
		engine, err := r.Engines.ByName(strings.ToLower(args[0]))
		if err != nil {
			r.send(cid, "Unknown engine. Available: paddle | tesseract | gemini")
			return
		}
		r.EngManager.Set(cid, engine)
		r.send(cid, "Switched to: "+engine.Name())
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := r.Bot.Send(msg); err != nil {
		log.Printf("send to %d: %v", chatID, err)
	}
}

func (r *Router) sendError(chatID int64, err error) {
	log.Printf("chat %d: %v", chatID, err)
	r.send(chatID, "Something went wrong: "+err.Error())
}
