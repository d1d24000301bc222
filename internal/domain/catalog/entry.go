package catalog

import (
	"strings"
	"time"

	"clipvault/internal/pkg/errs"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle    = errs.New("title is required")
	ErrNegativePrice = errs.New("price must not be negative")
)

// Entry is one purchasable video as read from the store. ThumbnailURL is only
// populated on detail reads.
type Entry struct {
	ID           string
	Title        string
	Price        decimal.Decimal
	Duration     string
	ThumbnailRef *string
	ThumbnailURL string
	IsFree       bool
	ProductLink  string
	Views        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type EntryParams struct {
	Title        string
	Price        decimal.Decimal
	Duration     string
	ThumbnailRef *string
	IsFree       bool
	ProductLink  string
}

func NewID() string {
	return ulid.Make().String()
}

func NewEntry(p EntryParams, now time.Time) (Entry, error) {
	e := Entry{
		ID:        NewID(),
		Views:     0,
		CreatedAt: now,
	}
	if err := e.apply(p, now); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Update replaces the mutable fields; id, views and createdAt are preserved.
func (e Entry) Update(p EntryParams, now time.Time) (Entry, error) {
	if err := e.apply(p, now); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (e *Entry) apply(p EntryParams, now time.Time) error {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return ErrEmptyTitle
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	d, err := ParseDuration(p.Duration)
	if err != nil {
		return err
	}

	e.Title = title
	e.Price = p.Price
	e.Duration = d.String()
	e.ThumbnailRef = p.ThumbnailRef
	e.IsFree = p.IsFree
	e.ProductLink = strings.TrimSpace(p.ProductLink)
	e.UpdatedAt = now
	return nil
}

func (e Entry) DurationSeconds() int {
	return DurationSeconds(e.Duration)
}

// AccessLinks splits the space separated product link field.
func (e Entry) AccessLinks() []string {
	return strings.Fields(e.ProductLink)
}

// MinorUnits converts a price to integer cents, rounding half away from zero.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}
