//go:build unit || e2e

package builder

import (
	"time"

	"clipvault/internal/domain/payment"
	"clipvault/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseBuilder struct {
	VideoID       *string
	BuyerEmail    string
	TransactionID string
	Method        payment.Method
	Amount        decimal.Decimal
	Currency      string
	VideoTitle    string
	ProductLink   string
	CreatedAt     time.Time
}

func NewPurchaseBuilder() *PurchaseBuilder {
	videoID := "01JH0000000000000000000000"
	return &PurchaseBuilder{
		VideoID:       &videoID,
		BuyerEmail:    "buyer@example.com",
		TransactionID: "cs_test_" + uuid.NewString(),
		Method:        payment.MethodStripe,
		Amount:        decimal.RequireFromString("12.50"),
		Currency:      "usd",
		VideoTitle:    "Sunset Timelapse",
		ProductLink:   "https://files.example.com/sunset",
		CreatedAt:     time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(b)
	return b
}

func (b *PurchaseBuilder) BuildDomain() *purchase.Purchase {
	return purchase.NewCompleted(purchase.CompletedParams{
		VideoID:       b.VideoID,
		BuyerEmail:    b.BuyerEmail,
		TransactionID: b.TransactionID,
		Method:        b.Method,
		Amount:        b.Amount,
		Currency:      b.Currency,
		VideoTitle:    b.VideoTitle,
		ProductLink:   b.ProductLink,
	}, b.CreatedAt)
}
