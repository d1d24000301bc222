package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// tokens are refreshed this long before PayPal says they expire
const tokenExpirySkew = time.Minute

type PayPalClient struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	clock        clock.Clock

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewPayPalClient(cfg config.PayPalConfig, clk clock.Clock) *PayPalClient {
	return &PayPalClient{
		httpClient:   newHTTPClient(),
		baseURL:      strings.TrimRight(cfg.APIBaseURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		clock:        clk,
	}
}

type paypalLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type paypalOrder struct {
	ID     string       `json:"id"`
	Status string       `json:"status"`
	Links  []paypalLink `json:"links"`
}

// CreateSession creates an order and returns its approve link. PayPal appends
// token=<order id> to the return URL on its own.
func (c *PayPalClient) CreateSession(ctx context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"intent": "CAPTURE",
		"purchase_units": []map[string]any{
			{
				"description": req.ProductName,
				"amount": map[string]string{
					"currency_code": strings.ToUpper(req.Currency),
					"value":         decimal.New(req.AmountMinorUnits, -2).StringFixed(2),
				},
			},
		},
		"application_context": map[string]string{
			"return_url":  req.SuccessURL,
			"cancel_url":  req.CancelURL,
			"user_action": "PAY_NOW",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "marshal paypal order")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "build paypal request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError("paypal", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		if resp.StatusCode == http.StatusUnauthorized {
			c.dropToken()
		}
		return nil, upstreamError("paypal", resp)
	}

	var order paypalOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode paypal order"), errs.ErrUpstreamSessionCreationFailed)
	}

	approve := approveURL(order.Links)
	if approve == "" {
		return nil, errs.Mark(errs.Newf("paypal order %s has no approve link", order.ID), errs.ErrUpstreamSessionCreationFailed)
	}
	return &shared.SessionResult{SessionID: order.ID, CheckoutURL: approve}, nil
}

func (c *PayPalClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.clock.Now().Before(c.expiresAt) {
		return c.accessToken, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", errs.Wrap(err, "build paypal token request")
	}
	httpReq.SetBasicAuth(c.clientID, c.clientSecret)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", transportError("paypal", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", upstreamError("paypal", resp)
	}

	var res struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || res.AccessToken == "" {
		return "", errs.Mark(errs.New("paypal returned no access token"), errs.ErrUpstreamSessionCreationFailed)
	}

	c.accessToken = res.AccessToken
	c.expiresAt = c.clock.Now().Add(time.Duration(res.ExpiresIn)*time.Second - tokenExpirySkew)
	return c.accessToken, nil
}

func (c *PayPalClient) dropToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = ""
}

func approveURL(links []paypalLink) string {
	for _, link := range links {
		if link.Rel == "approve" || link.Rel == "payer-action" {
			return link.Href
		}
	}
	return ""
}
