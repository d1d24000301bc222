//go:build unit || e2e

package builder

import (
	"time"

	"clipvault/internal/domain/catalog"
	reqdto "clipvault/internal/handler/dto/request"
	"clipvault/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type VideoBuilder struct {
	ID           string
	Title        string
	Price        decimal.Decimal
	Duration     string
	ThumbnailRef *string
	IsFree       bool
	ProductLink  string
	Views        int64
	CreatedAt    time.Time
}

func NewVideoBuilder() *VideoBuilder {
	thumb := "thumbs/sunset.jpg"
	return &VideoBuilder{
		ID:           catalog.NewID(),
		Title:        "Sunset Timelapse",
		Price:        decimal.RequireFromString("12.50"),
		Duration:     "4:20",
		ThumbnailRef: &thumb,
		ProductLink:  "https://files.example.com/sunset",
		Views:        0,
		CreatedAt:    time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (b *VideoBuilder) With(mutate func(*VideoBuilder)) *VideoBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *VideoBuilder) BuildDomain() catalog.Entry {
	return catalog.Entry{
		ID:           b.ID,
		Title:        b.Title,
		Price:        b.Price,
		Duration:     b.Duration,
		ThumbnailRef: b.ThumbnailRef,
		IsFree:       b.IsFree,
		ProductLink:  b.ProductLink,
		Views:        b.Views,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *VideoBuilder) BuildCreateRequestDTO() reqdto.CreateVideoRequest {
	return reqdto.CreateVideoRequest{
		Title:        b.Title,
		Price:        b.Price.StringFixed(2),
		Duration:     b.Duration,
		ThumbnailRef: b.ThumbnailRef,
		IsFree:       b.IsFree,
		ProductLink:  b.ProductLink,
	}
}

func (b *VideoBuilder) BuildCommand() commands.EntryRequest {
	return commands.EntryRequest{
		Title:        b.Title,
		Price:        b.Price,
		Duration:     b.Duration,
		ThumbnailRef: b.ThumbnailRef,
		IsFree:       b.IsFree,
		ProductLink:  b.ProductLink,
	}
}

// Videos builds n entries created one minute apart, newest first.
func Videos(n int) []catalog.Entry {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	out := make([]catalog.Entry, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, NewVideoBuilder().With(func(b *VideoBuilder) {
			b.Title = "Clip " + string(rune('A'+i))
			b.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		}).BuildDomain())
	}
	return out
}
