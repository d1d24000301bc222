package response

import (
	"clipvault/internal/domain/checkout"
	"clipvault/internal/domain/payment"
	"clipvault/internal/usecase/commands"
	"clipvault/internal/usecase/shared"
)

type ProviderResponse struct {
	Method    string `json:"method"`
	Available bool   `json:"available"`
	Flow      string `json:"flow"`
}

func FromAvailability(av map[payment.Method]bool) []ProviderResponse {
	res := make([]ProviderResponse, 0, len(payment.Methods))
	for _, m := range payment.Methods {
		res = append(res, ProviderResponse{Method: m.String(), Available: av[m], Flow: m.Flow().String()})
	}
	return res
}

type NavigationResponse struct {
	Mode     string              `json:"mode"`
	URL      string              `json:"url"`
	Fallback *NavigationResponse `json:"fallback,omitempty"`
}

func FromNavigation(n checkout.Navigation) NavigationResponse {
	res := NavigationResponse{Mode: string(n.Mode), URL: n.URL}
	if n.Fallback != nil {
		fb := FromNavigation(*n.Fallback)
		res.Fallback = &fb
	}
	return res
}

type CheckoutResponse struct {
	Method      string             `json:"method"`
	Navigation  NavigationResponse `json:"navigation"`
	SessionID   string             `json:"session_id,omitempty"`
	ProductName string             `json:"product_name,omitempty"`
	Message     string             `json:"message,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Method:      r.Method.String(),
		Navigation:  FromNavigation(r.Navigation),
		SessionID:   r.SessionID,
		ProductName: r.ProductName,
		Message:     r.Message,
	}
}

type SessionResponse struct {
	SessionID   string `json:"session_id,omitempty"`
	CheckoutURL string `json:"checkout_url,omitempty"`
}

func FromSessionResult(r *shared.SessionResult) *SessionResponse {
	return &SessionResponse{SessionID: r.SessionID, CheckoutURL: r.CheckoutURL}
}
