package purchase

import (
	"crypto/rand"
	"strings"
	"time"

	"clipvault/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// UnknownBuyerEmail is stored when the provider did not hand back an address.
const UnknownBuyerEmail = "unknown@buyer.invalid"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string { return string(s) }

// Purchase is the durable sale record. Title and product link are snapshots
// taken at receipt time.
type Purchase struct {
	ID            uuid.UUID
	VideoID       *string
	BuyerEmail    string
	BuyerName     *string
	TransactionID string
	PaymentMethod payment.Method
	Amount        decimal.Decimal
	Currency      string
	Status        Status
	VideoTitle    string
	ProductLink   string
	Metadata      map[string]string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CompletedParams struct {
	VideoID       *string
	BuyerEmail    string
	BuyerName     *string
	TransactionID string
	Method        payment.Method
	Amount        decimal.Decimal
	Currency      string
	VideoTitle    string
	ProductLink   string
	Metadata      map[string]string
}

func NewCompleted(p CompletedParams, now time.Time) *Purchase {
	email := p.BuyerEmail
	if email == "" {
		email = UnknownBuyerEmail
	}
	return &Purchase{
		ID:            uuid.New(),
		VideoID:       p.VideoID,
		BuyerEmail:    email,
		BuyerName:     p.BuyerName,
		TransactionID: p.TransactionID,
		PaymentMethod: p.Method,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Status:        StatusCompleted,
		VideoTitle:    p.VideoTitle,
		ProductLink:   p.ProductLink,
		Metadata:      p.Metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AccessLinks splits the space separated product link snapshot.
func (p *Purchase) AccessLinks() []string {
	return strings.Fields(p.ProductLink)
}

// SyntheticTransactionID builds "<method>_<ulid>": prefixed, time ordered and
// random in its low bits, so repeated calls never collide.
func SyntheticTransactionID(m payment.Method, now time.Time) string {
	id := ulid.MustNew(ulid.Timestamp(now), rand.Reader)
	return m.String() + "_" + id.String()
}
