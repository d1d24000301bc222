package queries

import (
	"context"

	"clipvault/internal/domain/purchase"
	"clipvault/internal/usecase/shared"
)

type PurchaseQueries interface {
	List(ctx context.Context, cursor *Cursor, limit int) ([]*purchase.Purchase, *Cursor, error)
}

type purchaseQueriesImpl struct {
	store shared.PurchaseStore
}

func NewPurchaseQueries(store shared.PurchaseStore) PurchaseQueries {
	return &purchaseQueriesImpl{store: store}
}

// List pages newest first.
func (q *purchaseQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*purchase.Purchase, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*purchase.Purchase
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.ListFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.ListKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
