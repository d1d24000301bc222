//go:build unit

package checkout_test

import (
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"clipvault/internal/domain/checkout"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigation(t *testing.T) {
	t.Run("new context falls back to same context", func(t *testing.T) {
		n := checkout.NewContext("https://pay.example/x")
		assert.Equal(t, checkout.NavigateNewContext, n.Resolve(true).Mode)

		fb := n.Resolve(false)
		assert.Equal(t, checkout.NavigateSameContext, fb.Mode)
		assert.Equal(t, "https://pay.example/x", fb.URL)
	})

	t.Run("redirect ignores the flag", func(t *testing.T) {
		n := checkout.Redirect("https://pay.example/y")
		assert.Equal(t, n, n.Resolve(false))
		assert.Nil(t, n.Fallback)
	})
}

func TestProductNameRotator(t *testing.T) {
	r := checkout.NewProductNameRotator("One", "Two")
	assert.Equal(t, "One", r.Next())
	assert.Equal(t, "Two", r.Next())
	assert.Equal(t, "One", r.Next())
	assert.True(t, r.IsGeneric("Two"))
	assert.False(t, r.IsGeneric("Sunset Timelapse"))

	t.Run("defaults rotate under concurrency", func(t *testing.T) {
		r := checkout.NewProductNameRotator()
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			seen = map[string]int{}
		)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				n := r.Next()
				mu.Lock()
				seen[n]++
				mu.Unlock()
			}()
		}
		wg.Wait()
		assert.Len(t, seen, 5)
		for name, n := range seen {
			assert.True(t, r.IsGeneric(name))
			assert.Equal(t, 10, n, name)
		}
	})
}

func TestManualOrder(t *testing.T) {
	o := checkout.ManualOrder{
		Amount:    decimal.RequireFromString("15"),
		ItemID:    "V1",
		ItemTitle: "Sunset Timelapse",
		Currency:  "BTC",
		Wallet:    "bc1qexample",
		At:        time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC),
	}
	msg := o.Message()
	assert.Contains(t, msg, "Amount: 15.00 USD")
	assert.Contains(t, msg, "Item: Sunset Timelapse (V1)")
	assert.Contains(t, msg, "Wallet: bc1qexample")
	assert.Contains(t, msg, "2026-04-02T10:00:00Z")

	link := checkout.TelegramDeepLink("@seller", msg)
	require.True(t, strings.HasPrefix(link, "https://t.me/seller?text="))
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))
}
