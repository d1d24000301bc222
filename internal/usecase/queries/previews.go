package queries

import (
	"context"
	"log/slog"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"
)

type PreviewQueries interface {
	ResolvePreviews(ctx context.Context, videoID string) ([]catalog.PreviewSource, error)
}

type previewQueriesImpl struct {
	store       shared.CatalogStore
	resolver    shared.FileURLResolver
	placeholder string
	logger      *slog.Logger
}

func NewPreviewQueries(store shared.CatalogStore, resolver shared.FileURLResolver, placeholder string, logger *slog.Logger) PreviewQueries {
	return &previewQueriesImpl{
		store:       store,
		resolver:    resolver,
		placeholder: placeholder,
		logger:      logger,
	}
}

// ResolvePreviews returns at most three sources ordered by position. An empty
// result is returned as is; falling back to the thumbnail is up to the caller.
func (q *previewQueriesImpl) ResolvePreviews(ctx context.Context, videoID string) ([]catalog.PreviewSource, error) {
	sources, err := q.store.ListPreviews(ctx, videoID)
	if err != nil {
		return nil, errs.Wrap(err, "list preview sources")
	}

	selected := catalog.SelectPreviews(sources)
	for i := range selected {
		u, err := q.resolver.Resolve(ctx, selected[i].FileRef)
		if err != nil {
			q.logger.Warn("preview resolution failed",
				"video_id", videoID,
				"preview_id", selected[i].ID,
				"error", err)
			u = q.placeholder
		}
		selected[i].URL = u
	}
	return selected, nil
}
