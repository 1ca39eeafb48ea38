package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/example/quim/internal/models"
)

// TelegramService pushes order notifications to the kitchen's admin
// chat. It is the explicit observer for "order placed" events; nothing
// else in the system holds a notification registry.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		log.Println("[Telegram] Bot token not configured")
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
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

// FormatCentavos renders a centavo amount as "R$ 1.234,56".
func FormatCentavos(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	reais := amount / 100
	cents := amount % 100

	digits := fmt.Sprintf("%d", reais)
	var grouped strings.Builder
	length := len(digits)
	for i, d := range digits {
		if i > 0 && (length-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), cents)
}

// NotifyNewOrder sends the placed order to the admin chat.
func (s *TelegramService) NotifyNewOrder(order *models.Order) error {
	if s.adminChatID == "" {
		return nil
	}

	var itemsList strings.Builder
	for i, item := range order.Items {
		itemsList.WriteString(fmt.Sprintf("%d. <b>%s</b>\n   %d x %s = %s\n",
			i+1,
			item.ProductName,
			item.Quantity,
			FormatCentavos(item.UnitPrice),
			FormatCentavos(item.LineTotal),
		))
		if item.Selection != "" {
			itemsList.WriteString(fmt.Sprintf("   %s\n", item.Selection))
		}
	}

	deliveryText := fmt.Sprintf("Entrega - CEP %s (%d-%d min)", order.PostalCode, order.ETAMin, order.ETAMax)
	if order.Pickup {
		deliveryText = "Retirada no local"
	}

	paymentText := map[string]string{
		"pix":     "PIX",
		"cartao":  "Cartão online",
		"entrega": "Pagamento na entrega",
	}[order.PaymentMethod]
	if paymentText == "" {
		paymentText = order.PaymentMethod
	}

	message := fmt.Sprintf(`<b>🛒 NOVO PEDIDO!</b>
<b>📋 Pedido:</b> %s
<b>👤 Cliente:</b> %s
<b>📞 Telefone:</b> %s
<b>📦 Itens:</b>
%s
<b>🚚 Entrega:</b> %s
<b>💰 Subtotal:</b> %s
<b>🏷 Desconto:</b> %s
<b>💳 Total:</b> %s (%s)
━━━━━━━━━━━━━━━━━━`,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerPhone,
		itemsList.String(),
		deliveryText,
		FormatCentavos(order.Subtotal),
		FormatCentavos(order.Discount),
		FormatCentavos(order.Total),
		paymentText,
	)

	return s.SendToAdmin(strings.TrimSpace(message))
}
