//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	dompayment "clipvault/internal/domain/payment"
	"clipvault/internal/infra/payment"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionReq = shared.SessionRequest{
	AmountMinorUnits: 1250,
	Currency:         "usd",
	ProductName:      "Digital Content Access",
	SuccessURL:       "http://shop.test/payment/return?payment_method=stripe&video_id=V1&session_id={CHECKOUT_SESSION_ID}",
	CancelURL:        "http://shop.test/payment/return?payment_canceled=true",
}

func TestStripeClient(t *testing.T) {
	ctx := context.Background()

	t.Run("success: posts an inline price", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "payment", r.PostForm.Get("mode"))
			assert.Equal(t, "1250", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
			assert.Equal(t, "Digital Content Access", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
			assert.Equal(t, sessionReq.SuccessURL, r.PostForm.Get("success_url"))
			_, _ = w.Write([]byte(`{"id":"cs_1","url":"https://checkout.stripe.test/cs_1"}`))
		}))
		defer srv.Close()

		c := payment.NewStripeClient(config.StripeConfig{SecretKey: "sk_test", APIBaseURL: srv.URL})
		res, err := c.CreateSession(ctx, sessionReq)
		require.NoError(t, err)
		assert.Equal(t, "cs_1", res.SessionID)
		assert.Equal(t, "https://checkout.stripe.test/cs_1", res.CheckoutURL)
	})

	t.Run("error: provider message becomes the hint", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Invalid currency: xyz"}}`))
		}))
		defer srv.Close()

		c := payment.NewStripeClient(config.StripeConfig{SecretKey: "sk_test", APIBaseURL: srv.URL})
		_, err := c.CreateSession(ctx, sessionReq)
		assert.True(t, errs.Is(err, errs.ErrUpstreamSessionCreationFailed))
		assert.Equal(t, "Invalid currency: xyz", errs.Hint(err))
	})

	t.Run("error: unreachable provider", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()

		c := payment.NewStripeClient(config.StripeConfig{SecretKey: "sk_test", APIBaseURL: srv.URL})
		_, err := c.CreateSession(ctx, sessionReq)
		assert.True(t, errs.Is(err, errs.ErrUpstreamSessionCreationFailed))
	})
}

func TestPayPalClient(t *testing.T) {
	ctx := context.Background()

	newServer := func(t *testing.T, tokenCalls *atomic.Int32, orderStatus int) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/v1/oauth2/token":
				tokenCalls.Add(1)
				id, secret, ok := r.BasicAuth()
				assert.True(t, ok)
				assert.Equal(t, "client", id)
				assert.Equal(t, "secret", secret)
				_, _ = w.Write([]byte(`{"access_token":"A21","expires_in":3600}`))
			case "/v2/checkout/orders":
				assert.Equal(t, "Bearer A21", r.Header.Get("Authorization"))
				var body map[string]any
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				units := body["purchase_units"].([]any)
				amount := units[0].(map[string]any)["amount"].(map[string]any)
				assert.Equal(t, "12.50", amount["value"])
				assert.Equal(t, "USD", amount["currency_code"])
				if orderStatus != http.StatusCreated {
					w.WriteHeader(orderStatus)
					_, _ = w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY","message":"Amount mismatch"}`))
					return
				}
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"ORDER-1","status":"CREATED","links":[{"rel":"self","href":"x"},{"rel":"approve","href":"https://paypal.test/approve/ORDER-1"}]}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
	}
	cfg := func(url string) config.PayPalConfig {
		return config.PayPalConfig{ClientID: "client", ClientSecret: "secret", APIBaseURL: url}
	}

	t.Run("success: token is cached until it expires", func(t *testing.T) {
		var tokenCalls atomic.Int32
		srv := newServer(t, &tokenCalls, http.StatusCreated)
		defer srv.Close()
		clk := clock.NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
		c := payment.NewPayPalClient(cfg(srv.URL), clk)

		res, err := c.CreateSession(ctx, sessionReq)
		require.NoError(t, err)
		assert.Equal(t, "ORDER-1", res.SessionID)
		assert.Equal(t, "https://paypal.test/approve/ORDER-1", res.CheckoutURL)

		_, err = c.CreateSession(ctx, sessionReq)
		require.NoError(t, err)
		assert.Equal(t, int32(1), tokenCalls.Load())

		clk.Add(time.Hour)
		_, err = c.CreateSession(ctx, sessionReq)
		require.NoError(t, err)
		assert.Equal(t, int32(2), tokenCalls.Load())
	})

	t.Run("error: rejected order", func(t *testing.T) {
		var tokenCalls atomic.Int32
		srv := newServer(t, &tokenCalls, http.StatusUnprocessableEntity)
		defer srv.Close()
		c := payment.NewPayPalClient(cfg(srv.URL), clock.NewRealClock())

		_, err := c.CreateSession(ctx, sessionReq)
		assert.True(t, errs.Is(err, errs.ErrUpstreamSessionCreationFailed))
		assert.Equal(t, "Amount mismatch", errs.Hint(err))
	})

	t.Run("error: bad credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Client Authentication failed"}`))
		}))
		defer srv.Close()
		c := payment.NewPayPalClient(cfg(srv.URL), clock.NewRealClock())

		_, err := c.CreateSession(ctx, sessionReq)
		assert.True(t, errs.Is(err, errs.ErrUpstreamSessionCreationFailed))
		assert.Equal(t, "Client Authentication failed", errs.Hint(err))
	})
}

func TestWhopClient(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v2/checkout_sessions", r.URL.Path)
			assert.Equal(t, "Bearer whop_key", r.Header.Get("Authorization"))
			var body struct {
				PlanID      string            `json:"plan_id"`
				RedirectURL string            `json:"redirect_url"`
				Metadata    map[string]string `json:"metadata"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "plan_1", body.PlanID)
			assert.Equal(t, sessionReq.SuccessURL, body.RedirectURL)
			assert.Equal(t, "1250", body.Metadata["amount_minor_units"])
			_, _ = w.Write([]byte(`{"id":"ch_1","purchase_url":"https://whop.test/checkout/ch_1"}`))
		}))
		defer srv.Close()

		c := payment.NewWhopClient(config.WhopConfig{APIKey: "whop_key", PlanID: "plan_1", APIBaseURL: srv.URL})
		res, err := c.CreateSession(ctx, sessionReq)
		require.NoError(t, err)
		assert.Equal(t, "https://whop.test/checkout/ch_1", res.CheckoutURL)
	})

	t.Run("error: missing purchase url", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"ch_2"}`))
		}))
		defer srv.Close()

		c := payment.NewWhopClient(config.WhopConfig{APIKey: "whop_key", PlanID: "plan_1", APIBaseURL: srv.URL})
		_, err := c.CreateSession(ctx, sessionReq)
		assert.True(t, errs.Is(err, errs.ErrUpstreamSessionCreationFailed))
	})
}

func TestNewSessionCreators(t *testing.T) {
	creators := payment.NewSessionCreators(config.NewTestConfig().Checkout, clock.NewRealClock())
	assert.Len(t, creators, 3)
	for _, m := range []dompayment.Method{dompayment.MethodStripe, dompayment.MethodPayPal, dompayment.MethodWho} {
		assert.NotNil(t, creators[m], m)
	}
	assert.NotContains(t, creators, dompayment.MethodCrypto)
}
