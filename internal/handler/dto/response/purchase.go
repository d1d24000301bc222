package response

import (
	"clipvault/internal/domain/purchase"
	"clipvault/internal/usecase/commands"
	"clipvault/internal/usecase/queries"
)

type PurchaseResponse struct {
	ID            string  `json:"id"`
	VideoID       *string `json:"video_id"`
	BuyerEmail    string  `json:"buyer_email"`
	BuyerName     *string `json:"buyer_name"`
	TransactionID string  `json:"transaction_id"`
	PaymentMethod string  `json:"payment_method"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	VideoTitle    string  `json:"video_title"`
	CreatedAt     int64   `json:"created_at"`
}

func FromPurchase(p *purchase.Purchase) (*PurchaseResponse, error) {
	res := &PurchaseResponse{}
	if err := copyInto(res, p); err != nil {
		return nil, err
	}
	return res, nil
}

type ReceiptResponse struct {
	Canceled      bool              `json:"canceled"`
	Notice        string            `json:"notice,omitempty"`
	Replayed      bool              `json:"replayed"`
	Recorded      bool              `json:"recorded"`
	Purchase      *PurchaseResponse `json:"purchase,omitempty"`
	AccessLinks   []string          `json:"access_links"`
	ManualContact string            `json:"manual_contact,omitempty"`
}

func FromReceipt(r *commands.Receipt) (*ReceiptResponse, error) {
	res := &ReceiptResponse{
		Canceled:      r.Canceled,
		Notice:        r.Notice,
		Replayed:      r.Replayed,
		Recorded:      r.Persisted,
		AccessLinks:   r.AccessLinks,
		ManualContact: r.ManualContact,
	}
	if res.AccessLinks == nil {
		res.AccessLinks = []string{}
	}
	if r.Purchase != nil {
		p, err := FromPurchase(r.Purchase)
		if err != nil {
			return nil, err
		}
		res.Purchase = p
	}
	return res, nil
}

type PurchaseListResponse struct {
	Items  []*PurchaseResponse `json:"items"`
	Cursor *queries.Cursor     `json:"cursor,omitempty"`
}

func FromPurchaseList(ps []*purchase.Purchase, next *queries.Cursor) (*PurchaseListResponse, error) {
	items := make([]*PurchaseResponse, len(ps))
	for i, p := range ps {
		r, err := FromPurchase(p)
		if err != nil {
			return nil, err
		}
		items[i] = r
	}
	return &PurchaseListResponse{Items: items, Cursor: next}, nil
}
