package repository

import (
	"context"
	"log/slog"
	"time"

	"clipvault/internal/domain/payment"
	"clipvault/internal/domain/purchase"
	"clipvault/internal/infra"
	"clipvault/internal/infra/db"
	"clipvault/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const purchaseColumns = `id, video_id, buyer_email, buyer_name, transaction_id, payment_method,
	amount, currency, status, video_title, product_link, metadata, created_at, updated_at`

type PurchaseRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPurchaseRepository(dbtx db.DBTX, logger *slog.Logger) *PurchaseRepository {
	return &PurchaseRepository{db: dbtx, logger: logger}
}

// InsertIfAbsent relies on the unique transaction_id: a replayed return visit
// inserts nothing and reports false.
func (r *PurchaseRepository) InsertIfAbsent(ctx context.Context, p *purchase.Purchase) (bool, error) {
	amount, err := pgconv.DecimalToNumeric(p.Amount)
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, "failed to encode amount", err)
	}
	metadata := p.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	tag, err := r.db.Exec(ctx, `INSERT INTO purchases (`+purchaseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (transaction_id) DO NOTHING`,
		pgconv.UUIDToPgtype(p.ID), pgconv.StringPtrToPgtype(p.VideoID), p.BuyerEmail,
		pgconv.StringPtrToPgtype(p.BuyerName), p.TransactionID, p.PaymentMethod.String(),
		amount, p.Currency, p.Status.String(), p.VideoTitle, p.ProductLink, metadata,
		pgconv.TimeToPgtype(p.CreatedAt), pgconv.TimeToPgtype(p.UpdatedAt))
	if err != nil {
		return false, infra.WrapRepoErr(r.logger, "failed to insert purchase", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PurchaseRepository) FindByTransactionID(ctx context.Context, transactionID string) (*purchase.Purchase, error) {
	row := r.db.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE transaction_id = $1`, transactionID)
	p, err := scanPurchase(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to find purchase", err)
	}
	return p, nil
}

func (r *PurchaseRepository) ListFirstPage(ctx context.Context, limit int32) ([]*purchase.Purchase, error) {
	rows, err := r.db.Query(ctx, `SELECT `+purchaseColumns+` FROM purchases
		ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list purchases", err)
	}
	return r.collect(rows)
}

func (r *PurchaseRepository) ListKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*purchase.Purchase, error) {
	rows, err := r.db.Query(ctx, `SELECT `+purchaseColumns+` FROM purchases
		WHERE (created_at, id) < ($1, $2)
		ORDER BY created_at DESC, id DESC LIMIT $3`,
		pgconv.TimeToPgtype(lastCreatedAt), pgconv.UUIDToPgtype(lastID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to list purchases", err)
	}
	return r.collect(rows)
}

func (r *PurchaseRepository) collect(rows pgx.Rows) ([]*purchase.Purchase, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*purchase.Purchase, error) {
		return scanPurchase(row)
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, "failed to scan purchases", err)
	}
	return out, nil
}

func scanPurchase(row pgx.Row) (*purchase.Purchase, error) {
	var (
		p         purchase.Purchase
		id        pgtype.UUID
		videoID   pgtype.Text
		buyerName pgtype.Text
		method    string
		status    string
		amount    pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &videoID, &p.BuyerEmail, &buyerName, &p.TransactionID, &method,
		&amount, &p.Currency, &status, &p.VideoTitle, &p.ProductLink, &p.Metadata,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	a, err := pgconv.DecimalFromNumeric(amount)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.UUID(id.Bytes)
	p.VideoID = pgconv.StringPtrFromPgtype(videoID)
	p.BuyerName = pgconv.StringPtrFromPgtype(buyerName)
	p.PaymentMethod = payment.Method(method)
	p.Status = purchase.Status(status)
	p.Amount = a
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
