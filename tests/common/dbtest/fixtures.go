//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"clipvault/internal/domain/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertVideo writes an entry directly, bypassing the catalog cache.
func InsertVideo(t *testing.T, db DBLike, e catalog.Entry) string {
	t.Helper()

	if e.ID == "" {
		e.ID = catalog.NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	_, err := db.Exec(context.Background(), `INSERT INTO videos
		(id, title, price, duration, thumbnail_ref, is_free, product_link, views, created_at, updated_at)
		VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10)`,
		e.ID, e.Title, e.Price.StringFixed(2), e.Duration, e.ThumbnailRef, e.IsFree, e.ProductLink, e.Views, e.CreatedAt, e.UpdatedAt)
	require.NoError(t, err)
	return e.ID
}

func InsertPreview(t *testing.T, db DBLike, videoID, fileRef string, position int) string {
	t.Helper()

	id := catalog.NewID()
	_, err := db.Exec(context.Background(), `INSERT INTO preview_sources (id, video_id, file_ref, position, created_at)
		VALUES ($1, $2, $3, $4, $5)`, id, videoID, fileRef, position, time.Now().UTC())
	require.NoError(t, err)
	return id
}

func CountPurchases(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM purchases`).Scan(&n)
	require.NoError(t, err)
	return n
}

func VideoViews(t *testing.T, db DBLike, id string) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), `SELECT views FROM videos WHERE id = $1`, id).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
