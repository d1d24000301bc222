package request

import (
	"clipvault/internal/domain/payment"
	"clipvault/internal/usecase/commands"
	"clipvault/internal/usecase/shared"
)

type CheckoutRequest struct {
	VideoID        string `json:"video_id"`
	OfferType      string `json:"offer_type"`
	CryptoCurrency string `json:"crypto_currency"`
}

func (r *CheckoutRequest) ToCommand(m payment.Method, idempotencyKey string) commands.CheckoutRequest {
	return commands.CheckoutRequest{
		Method:         m,
		VideoID:        r.VideoID,
		OfferType:      r.OfferType,
		CryptoCurrency: r.CryptoCurrency,
		IdempotencyKey: idempotencyKey,
	}
}

type SessionRequest struct {
	AmountMinorUnits int64  `json:"amount_minor_units" binding:"min=0"`
	Currency         string `json:"currency" binding:"omitempty,len=3"`
	ProductName      string `json:"product_name"`
	SuccessURL       string `json:"success_url" binding:"required,url"`
	CancelURL        string `json:"cancel_url" binding:"required,url"`
}

func (r *SessionRequest) ToShared() shared.SessionRequest {
	return shared.SessionRequest{
		AmountMinorUnits: r.AmountMinorUnits,
		Currency:         r.Currency,
		ProductName:      r.ProductName,
		SuccessURL:       r.SuccessURL,
		CancelURL:        r.CancelURL,
	}
}

type ProxyQuery struct {
	Amount      string `form:"amount" binding:"required"`
	Currency    string `form:"currency"`
	VideoID     string `form:"video_id"`
	OfferType   string `form:"offer_type"`
	SuccessURL  string `form:"success_url" binding:"required"`
	CancelURL   string `form:"cancel_url" binding:"required"`
	ProductName string `form:"product_name"`
}

func (q *ProxyQuery) ToCommand() commands.ProxyRequest {
	return commands.ProxyRequest{
		Amount:      q.Amount,
		Currency:    q.Currency,
		VideoID:     q.VideoID,
		OfferType:   q.OfferType,
		SuccessURL:  q.SuccessURL,
		CancelURL:   q.CancelURL,
		ProductName: q.ProductName,
	}
}
