package checkout

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ManualOrder is the structured message a buyer sends to the seller when paying
// with crypto. Completion is confirmed by a person, not a callback.
type ManualOrder struct {
	Amount    decimal.Decimal
	ItemID    string
	ItemTitle string
	Currency  string
	Wallet    string
	At        time.Time
}

func (o ManualOrder) Message() string {
	var b strings.Builder
	b.WriteString("Crypto payment request\n")
	fmt.Fprintf(&b, "Amount: %s USD\n", o.Amount.StringFixed(2))
	fmt.Fprintf(&b, "Item: %s (%s)\n", o.ItemTitle, o.ItemID)
	fmt.Fprintf(&b, "Currency: %s\n", o.Currency)
	fmt.Fprintf(&b, "Wallet: %s\n", o.Wallet)
	fmt.Fprintf(&b, "Time: %s", o.At.UTC().Format(time.RFC3339))
	return b.String()
}

// TelegramDeepLink opens a chat with username with the message prefilled.
func TelegramDeepLink(username, message string) string {
	return "https://t.me/" + strings.TrimPrefix(username, "@") + "?text=" + url.QueryEscape(message)
}
