//go:build e2e

package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
)

// FakeProviders answers the Stripe, PayPal and Whop endpoints the checkout
// clients call and remembers what they were asked for.
type FakeProviders struct {
	Server *httptest.Server

	mu       sync.Mutex
	stripe   []url.Values
	whop     []map[string]any
	failNext string
	seq      atomic.Int64
}

func NewFakeProviders() *FakeProviders {
	f := &FakeProviders{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/checkout/sessions", f.stripeSession)
	mux.HandleFunc("POST /v1/oauth2/token", f.paypalToken)
	mux.HandleFunc("POST /v2/checkout/orders", f.paypalOrder)
	mux.HandleFunc("POST /api/v2/checkout_sessions", f.whopSession)
	f.Server = httptest.NewServer(mux)
	return f
}

func (f *FakeProviders) Close() { f.Server.Close() }

func (f *FakeProviders) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stripe = nil
	f.whop = nil
	f.failNext = ""
}

// FailNext makes the next call to any provider answer 400 with message.
func (f *FakeProviders) FailNext(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = message
}

func (f *FakeProviders) StripeRequests() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.stripe...)
}

func (f *FakeProviders) WhopRequests() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.whop...)
}

func (f *FakeProviders) takeFailure(w http.ResponseWriter) bool {
	f.mu.Lock()
	msg := f.failNext
	f.failNext = ""
	f.mu.Unlock()
	if msg == "" {
		return false
	}
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": msg}})
	return true
}

func (f *FakeProviders) stripeSession(w http.ResponseWriter, r *http.Request) {
	if f.takeFailure(w) {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.stripe = append(f.stripe, r.PostForm)
	f.mu.Unlock()

	id := fmt.Sprintf("cs_test_%d", f.seq.Add(1))
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "url": "https://checkout.stripe.test/" + id})
}

func (f *FakeProviders) paypalToken(w http.ResponseWriter, _ *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "A21-e2e", "expires_in": 3600})
}

func (f *FakeProviders) paypalOrder(w http.ResponseWriter, _ *http.Request) {
	if f.takeFailure(w) {
		return
	}
	id := fmt.Sprintf("ORDER-%d", f.seq.Add(1))
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":    id,
		"links": []map[string]string{{"rel": "approve", "href": "https://paypal.test/approve/" + id}},
	})
}

func (f *FakeProviders) whopSession(w http.ResponseWriter, r *http.Request) {
	if f.takeFailure(w) {
		return
	}
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.whop = append(f.whop, body)
	f.mu.Unlock()

	id := fmt.Sprintf("ch_%d", f.seq.Add(1))
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "purchase_url": "https://whop.test/checkout/" + id})
}
