package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/example/profile/internal/models"
)

// telegramAPIBase is a var so tests can point it at a local server.
var telegramAPIBase = "https://api.telegram.org"

// TelegramService delivers admin notifications through the Telegram
// bot API. Delivery is best-effort: a misconfigured or unreachable
// bot never fails the caller.
type TelegramService struct {
	botToken    string
	adminChatID string
	client      *http.Client
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", telegramAPIBase, s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[Telegram] Failed to send message: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Telegram] Unexpected status: %d", resp.StatusCode)
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		log.Println("[Telegram] Admin chat ID not configured")
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// LoginNotification carries the device metadata shown to the admin
// after a successful login.
type LoginNotification struct {
	Username string
	Device   models.DeviceInfo
	Time     time.Time
}

// NotifyLogin sends a human-readable login alert to the admin chat.
func (s *TelegramService) NotifyLogin(n LoginNotification) error {
	if s.adminChatID == "" {
		return nil
	}

	message := fmt.Sprintf(`<b>🔐 New admin login</b>
<b>👤 User:</b> %s
<b>🌐 IP:</b> %s
<b>📱 Device:</b> %s
<b>🧭 Browser:</b> %s
<b>💻 OS:</b> %s
<b>🕒 Time:</b> %s`,
		n.Username,
		orDash(n.Device.IP),
		orDash(n.Device.Device),
		orDash(n.Device.Browser),
		orDash(n.Device.OS),
		n.Time.UTC().Format(time.RFC3339),
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}

func orDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
