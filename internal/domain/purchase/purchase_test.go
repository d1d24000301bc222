//go:build unit

package purchase_test

import (
	"strings"
	"testing"
	"time"

	"clipvault/internal/domain/payment"
	"clipvault/internal/domain/purchase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewCompleted(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	p := purchase.NewCompleted(purchase.CompletedParams{
		TransactionID: "cs_1",
		Method:        payment.MethodStripe,
		Amount:        decimal.RequireFromString("3.00"),
		Currency:      "usd",
		VideoTitle:    "Clip",
		ProductLink:   "https://a https://b",
	}, now)

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, purchase.StatusCompleted, p.Status)
	assert.Equal(t, purchase.UnknownBuyerEmail, p.BuyerEmail)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, []string{"https://a", "https://b"}, p.AccessLinks())
}

func TestSyntheticTransactionID(t *testing.T) {
	now := time.Now()
	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		id := purchase.SyntheticTransactionID(payment.MethodWho, now)
		assert.True(t, strings.HasPrefix(id, "who_"), id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
