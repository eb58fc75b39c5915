package alerts

import (
	"log"

	"SignalSentry/internal/model"
)

// PriceSource supplies the latest trade price for a symbol.
type PriceSource interface {
	CurrentPrice(symbol string) (float64, error)
}

// Sender delivers a rendered message to a chat.
type Sender interface {
	SendTo(chatID int64, text string) error
}

// Formatter renders the fired-alert message.
type Formatter func(alert model.Alert, currentPrice float64) string

// Matcher checks pending alerts against live prices on a fixed period.
type Matcher struct {
	store  *Store
	prices PriceSource
	sender Sender
	format Formatter
}

// NewMatcher creates a matcher over the given store, price source, and sender.
func NewMatcher(store *Store, prices PriceSource, sender Sender, format Formatter) *Matcher {
	return &Matcher{store: store, prices: prices, sender: sender, format: format}
}

// Run executes one matching cycle. A failed price fetch leaves the alert
// pending for the next cycle. A matched alert (price >= target) is notified
// and deleted as one unit; deletion happens even when the send fails, so
// delivery is at-most-once — a fired alert never fires twice.
func (m *Matcher) Run() {
	alerts, err := m.store.List()
	if err != nil {
		log.Printf("[ERROR] list alerts: %v", err)
		return
	}

	for _, a := range alerts {
		price, err := m.prices.CurrentPrice(a.Symbol)
		if err != nil {
			log.Printf("[WARN] alert %d: price for %s unavailable, retrying next cycle", a.ID, a.Symbol)
			continue
		}
		if price < a.TargetPrice {
			continue
		}

		if err := m.sender.SendTo(a.ChatID, m.format(a, price)); err != nil {
			log.Printf("[ERROR] alert %d: notify chat %d: %v", a.ID, a.ChatID, err)
		}
		if err := m.store.Delete(a.ID); err != nil {
			log.Printf("[ERROR] alert %d: delete: %v", a.ID, err)
		}
	}
}
