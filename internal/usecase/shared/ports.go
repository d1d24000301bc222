package shared

import (
	"context"
	"time"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/domain/purchase"

	"github.com/google/uuid"
)

// CatalogStore is the source of truth for entries and preview sources.
// ListEntries returns newest first; ListPreviews returns insertion order.
type CatalogStore interface {
	ListEntries(ctx context.Context) ([]catalog.Entry, error)
	FindEntry(ctx context.Context, id string) (*catalog.Entry, error)
	CreateEntry(ctx context.Context, e catalog.Entry) error
	// MutateEntry applies fn to the stored entry atomically and returns the stored result.
	MutateEntry(ctx context.Context, id string, fn func(catalog.Entry) (catalog.Entry, error)) (catalog.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error

	ListPreviews(ctx context.Context, videoID string) ([]catalog.PreviewSource, error)
	CreatePreview(ctx context.Context, p catalog.PreviewSource) error
	DeletePreview(ctx context.Context, videoID, previewID string) error
}

type PurchaseStore interface {
	// InsertIfAbsent reports false when a purchase with the same transaction id exists.
	InsertIfAbsent(ctx context.Context, p *purchase.Purchase) (bool, error)
	FindByTransactionID(ctx context.Context, transactionID string) (*purchase.Purchase, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*purchase.Purchase, error)
	ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*purchase.Purchase, error)
}

// FileURLResolver turns an opaque storage reference into a fetchable URL.
type FileURLResolver interface {
	Resolve(ctx context.Context, ref string) (string, error)
}

type SaleEvent struct {
	TransactionID string
	Method        string
	Amount        string
	Currency      string
	Item          string
	VideoID       *string
	BuyerEmail    string
	At            time.Time
}

type SaleNotifier interface {
	NotifySale(ctx context.Context, ev SaleEvent) error
}

type SessionRequest struct {
	AmountMinorUnits int64
	Currency         string
	ProductName      string
	SuccessURL       string
	CancelURL        string
}

// SessionResult carries at least one of the two fields.
type SessionResult struct {
	SessionID   string
	CheckoutURL string
}

// SessionCreator creates a hosted checkout session with one provider.
// A non-2xx answer is reported as errs.ErrUpstreamSessionCreationFailed.
type SessionCreator interface {
	CreateSession(ctx context.Context, req SessionRequest) (*SessionResult, error)
}
