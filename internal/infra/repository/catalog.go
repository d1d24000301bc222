package repository

import (
	"context"
	"log/slog"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/infra"
	"clipvault/internal/infra/db"
	"clipvault/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const entryColumns = `id, title, price, duration, thumbnail_ref, is_free, product_link, views, created_at, updated_at`

// serialization failures and deadlocks on the locked row
const mutateRetries = 3

type CatalogRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCatalogRepository(dbtx db.DBTX, logger *slog.Logger) *CatalogRepository {
	return &CatalogRepository{db: dbtx, logger: logger}
}

func (r *CatalogRepository) ListEntries(ctx context.Context) ([]catalog.Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+entryColumns+` FROM videos ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list videos", err)
	}
	defer rows.Close()

	var out []catalog.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, "failed to scan video", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to iterate videos", err)
	}
	return out, nil
}

func (r *CatalogRepository) FindEntry(ctx context.Context, id string) (*catalog.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+entryColumns+` FROM videos WHERE id = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find video", err)
	}
	return &e, nil
}

func (r *CatalogRepository) CreateEntry(ctx context.Context, e catalog.Entry) error {
	price, err := pgconv.DecimalToNumeric(e.Price)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to encode price", err)
	}
	_, err = r.db.Exec(ctx, `INSERT INTO videos (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.Title, price, e.Duration, pgconv.StringPtrToPgtype(e.ThumbnailRef),
		e.IsFree, e.ProductLink, e.Views,
		pgconv.TimeToPgtype(e.CreatedAt), pgconv.TimeToPgtype(e.UpdatedAt))
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create video", err)
	}
	return nil
}

// MutateEntry locks the row, hands it to fn and stores what fn returns, all in
// one transaction. Views are never written so concurrent view bumps survive.
func (r *CatalogRepository) MutateEntry(ctx context.Context, id string, fn func(catalog.Entry) (catalog.Entry, error)) (catalog.Entry, error) {
	var out catalog.Entry
	err := db.RunInTxWithRetry(ctx, r.db, mutateRetries, func(tx pgx.Tx) error {
		current, err := scanEntry(tx.QueryRow(ctx, `SELECT `+entryColumns+` FROM videos WHERE id = $1 FOR UPDATE`, id))
		if err != nil {
			return infra.WrapRepoErr(r.logger, "failed to lock video", err)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		next.ID = current.ID

		price, err := pgconv.DecimalToNumeric(next.Price)
		if err != nil {
			return infra.WrapRepoErr(r.logger, "failed to encode price", err)
		}
		tag, err := tx.Exec(ctx, `UPDATE videos
			SET title = $2, price = $3, duration = $4, thumbnail_ref = $5,
			    is_free = $6, product_link = $7, updated_at = $8
			WHERE id = $1`,
			next.ID, next.Title, price, next.Duration, pgconv.StringPtrToPgtype(next.ThumbnailRef),
			next.IsFree, next.ProductLink, pgconv.TimeToPgtype(next.UpdatedAt))
		if err != nil {
			return infra.WrapRepoErr(r.logger, "failed to update video", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.NotFound("video " + id)
		}
		out = next
		return nil
	})
	if err != nil {
		return catalog.Entry{}, err
	}
	return out, nil
}

func (r *CatalogRepository) DeleteEntry(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete video", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("video " + id)
	}
	return nil
}

func (r *CatalogRepository) IncrementViews(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to increment views", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("video " + id)
	}
	return nil
}

func (r *CatalogRepository) ListPreviews(ctx context.Context, videoID string) ([]catalog.PreviewSource, error) {
	rows, err := r.db.Query(ctx, `SELECT id, video_id, file_ref, position, created_at
		FROM preview_sources WHERE video_id = $1 ORDER BY seq`, videoID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list preview sources", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.PreviewSource, error) {
		var p catalog.PreviewSource
		var createdAt pgtype.Timestamptz
		if err := row.Scan(&p.ID, &p.VideoID, &p.FileRef, &p.Position, &createdAt); err != nil {
			return catalog.PreviewSource{}, err
		}
		p.CreatedAt = createdAt.Time
		return p, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to scan preview sources", err)
	}
	return out, nil
}

func (r *CatalogRepository) CreatePreview(ctx context.Context, p catalog.PreviewSource) error {
	_, err := r.db.Exec(ctx, `INSERT INTO preview_sources (id, video_id, file_ref, position, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.VideoID, p.FileRef, p.Position, pgconv.TimeToPgtype(p.CreatedAt))
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to create preview source", err)
	}
	return nil
}

func (r *CatalogRepository) DeletePreview(ctx context.Context, videoID, previewID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM preview_sources WHERE id = $1 AND video_id = $2`, previewID, videoID)
	if err != nil {
		return infra.WrapRepoErr(r.logger, "failed to delete preview source", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("preview source " + previewID)
	}
	return nil
}

func scanEntry(row pgx.Row) (catalog.Entry, error) {
	var (
		e            catalog.Entry
		price        pgtype.Numeric
		thumbnailRef pgtype.Text
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&e.ID, &e.Title, &price, &e.Duration, &thumbnailRef,
		&e.IsFree, &e.ProductLink, &e.Views, &createdAt, &updatedAt); err != nil {
		return catalog.Entry{}, err
	}

	p, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return catalog.Entry{}, err
	}
	e.Price = p
	e.ThumbnailRef = pgconv.StringPtrFromPgtype(thumbnailRef)
	e.CreatedAt = createdAt.Time
	e.UpdatedAt = updatedAt.Time
	return e, nil
}
