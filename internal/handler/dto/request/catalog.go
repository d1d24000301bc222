package request

import (
	"clipvault/internal/domain/catalog"
)

type CatalogQuery struct {
	Sort string `form:"sort"`
	Q    string `form:"q" binding:"max=200"`
}

func (q *CatalogQuery) SortKey() (catalog.SortKey, error) {
	return catalog.ParseSortKey(q.Sort)
}

// StreamQuery identifies the client session so a new stream supersedes the
// one it replaces.
type StreamQuery struct {
	CatalogQuery
	Session string `form:"session" binding:"max=128"`
}
