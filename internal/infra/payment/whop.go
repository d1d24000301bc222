package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"clipvault/internal/pkg/config"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"
)

// WhopClient backs the proxied redirect flow. Whop never hands an identifier
// back to the browser, so purchases made here get synthetic transaction ids.
type WhopClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	planID     string
}

func NewWhopClient(cfg config.WhopConfig) *WhopClient {
	return &WhopClient{
		httpClient: newHTTPClient(),
		baseURL:    strings.TrimRight(cfg.APIBaseURL, "/"),
		apiKey:     cfg.APIKey,
		planID:     cfg.PlanID,
	}
}

type whopCheckoutSession struct {
	ID          string `json:"id"`
	PurchaseURL string `json:"purchase_url"`
}

func (c *WhopClient) CreateSession(ctx context.Context, req shared.SessionRequest) (*shared.SessionResult, error) {
	payload := map[string]any{
		"plan_id":      c.planID,
		"redirect_url": req.SuccessURL,
		"metadata": map[string]string{
			"amount_minor_units": strconv.FormatInt(req.AmountMinorUnits, 10),
			"currency":           strings.ToLower(req.Currency),
			"product_name":       req.ProductName,
			"cancel_url":         req.CancelURL,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Wrap(err, "marshal whop checkout")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v2/checkout_sessions", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "build whop request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError("whop", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, upstreamError("whop", resp)
	}

	var s whopCheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode whop checkout"), errs.ErrUpstreamSessionCreationFailed)
	}
	if s.PurchaseURL == "" {
		return nil, errs.Mark(errs.New("whop checkout has no purchase url"), errs.ErrUpstreamSessionCreationFailed)
	}
	return &shared.SessionResult{SessionID: s.ID, CheckoutURL: s.PurchaseURL}, nil
}
