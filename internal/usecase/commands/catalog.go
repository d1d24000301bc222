package commands

import (
	"context"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/infra"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/pkg/patch"
	"clipvault/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// CacheInvalidator drops the catalog read cache.
type CacheInvalidator interface {
	Invalidate()
}

type EntryRequest struct {
	Title        string
	Price        decimal.Decimal
	Duration     string
	ThumbnailRef *string
	IsFree       bool
	ProductLink  string
}

// EntryPatch carries the fields an update changes; nil leaves a field as is.
type EntryPatch struct {
	Title    *string
	Price    *decimal.Decimal
	Duration *string
	// ThumbnailRef set to "" clears the thumbnail.
	ThumbnailRef *string
	IsFree       *bool
	ProductLink  *string
}

type PreviewRequest struct {
	FileRef  string
	Position int
}

type CatalogCommands interface {
	CreateEntry(ctx context.Context, req EntryRequest) (*catalog.Entry, error)
	UpdateEntry(ctx context.Context, id string, p EntryPatch) (*catalog.Entry, error)
	DeleteEntry(ctx context.Context, id string) error
	AddPreview(ctx context.Context, videoID string, req PreviewRequest) (*catalog.PreviewSource, error)
	RemovePreview(ctx context.Context, videoID, previewID string) error
	RecordView(ctx context.Context, id string) error
}

type catalogCommandsImpl struct {
	store shared.CatalogStore
	cache CacheInvalidator
	clock clock.Clock
}

func NewCatalogCommands(store shared.CatalogStore, cache CacheInvalidator, clk clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{store: store, cache: cache, clock: clk}
}

// Every mutation invalidates the cache before returning so the next read
// reflects it. The cache is dropped even when the write fails part way.

func (uc *catalogCommandsImpl) CreateEntry(ctx context.Context, req EntryRequest) (*catalog.Entry, error) {
	e, err := catalog.NewEntry(toParams(req), uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidEntry)
	}

	defer uc.cache.Invalidate()
	if err := uc.store.CreateEntry(ctx, e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (uc *catalogCommandsImpl) UpdateEntry(ctx context.Context, id string, p EntryPatch) (*catalog.Entry, error) {
	defer uc.cache.Invalidate()
	updated, err := uc.store.MutateEntry(ctx, id, func(current catalog.Entry) (catalog.Entry, error) {
		next, err := current.Update(catalog.EntryParams{
			Title:        patch.Coalesce(p.Title, current.Title),
			Price:        patch.Coalesce(p.Price, current.Price),
			Duration:     patch.Coalesce(p.Duration, current.Duration),
			ThumbnailRef: patch.Optional(current.ThumbnailRef, p.ThumbnailRef),
			IsFree:       patch.Coalesce(p.IsFree, current.IsFree),
			ProductLink:  patch.Coalesce(p.ProductLink, current.ProductLink),
		}, uc.clock.Now())
		if err != nil {
			return catalog.Entry{}, errs.Mark(err, errs.ErrInvalidEntry)
		}
		return next, nil
	})
	if err != nil {
		return nil, mapNotFound(err, errs.ErrEntryNotFound)
	}
	return &updated, nil
}

func (uc *catalogCommandsImpl) DeleteEntry(ctx context.Context, id string) error {
	defer uc.cache.Invalidate()
	if err := uc.store.DeleteEntry(ctx, id); err != nil {
		return mapNotFound(err, errs.ErrEntryNotFound)
	}
	return nil
}

func (uc *catalogCommandsImpl) AddPreview(ctx context.Context, videoID string, req PreviewRequest) (*catalog.PreviewSource, error) {
	p, err := catalog.NewPreviewSource(videoID, req.FileRef, req.Position, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidEntry)
	}

	defer uc.cache.Invalidate()
	if err := uc.store.CreatePreview(ctx, p); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, errs.ErrEntryNotFound)
		}
		return nil, err
	}
	return &p, nil
}

func (uc *catalogCommandsImpl) RemovePreview(ctx context.Context, videoID, previewID string) error {
	defer uc.cache.Invalidate()
	if err := uc.store.DeletePreview(ctx, videoID, previewID); err != nil {
		return mapNotFound(err, errs.ErrPreviewNotFound)
	}
	return nil
}

// RecordView bumps the counter without invalidating; the cached view counts
// catch up on the next reload.
func (uc *catalogCommandsImpl) RecordView(ctx context.Context, id string) error {
	return mapNotFound(uc.store.IncrementViews(ctx, id), errs.ErrEntryNotFound)
}

func toParams(req EntryRequest) catalog.EntryParams {
	return catalog.EntryParams{
		Title:        req.Title,
		Price:        req.Price,
		Duration:     req.Duration,
		ThumbnailRef: req.ThumbnailRef,
		IsFree:       req.IsFree,
		ProductLink:  req.ProductLink,
	}
}

func mapNotFound(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
