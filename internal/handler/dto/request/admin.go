package request

import (
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type CreateVideoRequest struct {
	Title        string  `json:"title" binding:"required,max=300"`
	Price        string  `json:"price" binding:"required"`
	Duration     string  `json:"duration"`
	ThumbnailRef *string `json:"thumbnail_ref"`
	IsFree       bool    `json:"is_free"`
	ProductLink  string  `json:"product_link"`
}

func (r *CreateVideoRequest) ToCommand() (commands.EntryRequest, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return commands.EntryRequest{}, errs.Mark(errs.Wrap(err, "price"), errs.ErrInvalidEntry)
	}
	return commands.EntryRequest{
		Title:        r.Title,
		Price:        price,
		Duration:     r.Duration,
		ThumbnailRef: r.ThumbnailRef,
		IsFree:       r.IsFree,
		ProductLink:  r.ProductLink,
	}, nil
}

// UpdateVideoRequest is a partial update. An empty thumbnail_ref clears it.
type UpdateVideoRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=300"`
	Price        *string `json:"price"`
	Duration     *string `json:"duration"`
	ThumbnailRef *string `json:"thumbnail_ref"`
	IsFree       *bool   `json:"is_free"`
	ProductLink  *string `json:"product_link"`
}

func (r *UpdateVideoRequest) ToPatch() (commands.EntryPatch, error) {
	p := commands.EntryPatch{
		Title:        r.Title,
		Duration:     r.Duration,
		ThumbnailRef: r.ThumbnailRef,
		IsFree:       r.IsFree,
		ProductLink:  r.ProductLink,
	}
	if r.Price != nil {
		price, err := decimal.NewFromString(*r.Price)
		if err != nil {
			return commands.EntryPatch{}, errs.Mark(errs.Wrap(err, "price"), errs.ErrInvalidEntry)
		}
		p.Price = &price
	}
	return p, nil
}

type CreatePreviewRequest struct {
	FileRef  string `json:"file_ref" binding:"required"`
	Position int    `json:"position" binding:"required,min=1"`
}

func (r *CreatePreviewRequest) ToCommand() commands.PreviewRequest {
	return commands.PreviewRequest{FileRef: r.FileRef, Position: r.Position}
}

type PurchaseListQuery struct {
	After string `form:"after"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}
