package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	telegramAPIFormat = "https://api.telegram.org/bot%s/sendMessage"
	maxSendAttempts   = 3
)

// Notifier delivers an order notification to the manager channel.
type Notifier interface {
	Notify(ctx context.Context, event *OrderCreatedEvent) error
}

// TelegramNotifier sends order notifications via the Telegram Bot API.
type TelegramNotifier struct {
	client *http.Client
	apiURL string
	chatID string
	logger *zap.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and chat.
func NewTelegramNotifier(botToken, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		client: &http.Client{Timeout: 10 * time.Second},
		apiURL: fmt.Sprintf(telegramAPIFormat, botToken),
		chatID: chatID,
		logger: logger,
	}
}

// SetAPIURL overrides the Bot API endpoint. Used in tests.
func (n *TelegramNotifier) SetAPIURL(url string) {
	n.apiURL = url
}

// Notify formats and posts the order message, retrying on failure.
func (n *TelegramNotifier) Notify(ctx context.Context, event *OrderCreatedEvent) error {
	message := FormatOrderMessage(event)

	var lastErr error

	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		if lastErr = n.send(ctx, message); lastErr == nil {
			n.logger.Info("telegram notification sent", zap.Int64("order_id", event.OrderID))

			return nil
		}

		n.logger.Warn("telegram notification attempt failed",
			zap.Int64("order_id", event.OrderID),
			zap.Int("attempt", attempt),
			zap.Error(lastErr),
		)
	}

	return fmt.Errorf("telegram notification for order %d: %w", event.OrderID, lastErr)
}

func (n *TelegramNotifier) send(ctx context.Context, message string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    n.chatID,
		"text":       message,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return fmt.Errorf("telegram api status %d: %s", resp.StatusCode, body)
	}

	return nil
}

// EscapeMarkdown escapes the characters that are special in Telegram's
// legacy Markdown mode. User-provided fields go through this before being
// embedded in a message.
func EscapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"`", "\\`",
		"[", "\\[",
	)

	return replacer.Replace(text)
}

// FormatOrderMessage renders the manager-facing order notification.
func FormatOrderMessage(event *OrderCreatedEvent) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🍽 **Новый заказ #%d**\n\n", event.OrderID)
	fmt.Fprintf(&b, "👤 Имя: %s\n", EscapeMarkdown(event.CustomerName))
	fmt.Fprintf(&b, "📞 Контакт: %s\n", EscapeMarkdown(event.CustomerContact))
	fmt.Fprintf(&b, "📍 Адрес доставки: %s\n", EscapeMarkdown(event.DeliveryAddress))

	deliveryDate := event.DeliveryDate
	if deliveryDate == "" {
		deliveryDate = "Не указана"
	}

	fmt.Fprintf(&b, "📅 Дата доставки: %s\n\n", deliveryDate)

	b.WriteString("📦 Товары:\n")

	for _, item := range event.Items {
		fmt.Fprintf(&b, "• %s x%d (%d RSD)\n", EscapeMarkdown(item.Name), item.Quantity, item.Price*item.Quantity)
	}

	subtotal := event.ItemsSubtotal
	if subtotal == 0 {
		subtotal = event.TotalPrice
	}

	fmt.Fprintf(&b, "\n💵 Стоимость товаров: %d RSD", subtotal)

	if event.DeliveryFee > 0 {
		fmt.Fprintf(&b, "\n🚚 Доставка: %d RSD", event.DeliveryFee)
	}

	if event.PromoCode != "" {
		fmt.Fprintf(&b, "\n🎟 Промокод: %s", EscapeMarkdown(event.PromoCode))
		fmt.Fprintf(&b, "\n🎁 Скидка: -%d RSD", event.DiscountAmount)
	}

	fmt.Fprintf(&b, "\n\n💰 **Итого: %d RSD**", event.TotalPrice)

	if event.Comments != "" {
		fmt.Fprintf(&b, "\n\n💬 Комментарии: %s", EscapeMarkdown(event.Comments))
	}

	fmt.Fprintf(&b, "\n\n🕒 Создано: %s", event.CreatedAt.Format("2006-01-02 15:04"))

	return b.String()
}
