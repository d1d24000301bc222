package response

import (
	"clipvault/internal/domain/catalog"
)

// VideoResponse is the public view of an entry. The product link is only
// handed out on the purchase receipt.
type VideoResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Price           string `json:"price"`
	Duration        string `json:"duration"`
	DurationSeconds int    `json:"duration_seconds"`
	ThumbnailURL    string `json:"thumbnail_url"`
	IsFree          bool   `json:"is_free"`
	Views           int64  `json:"views"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

func FromEntry(e catalog.Entry) (*VideoResponse, error) {
	res := &VideoResponse{}
	if err := copyInto(res, &e); err != nil {
		return nil, err
	}
	res.DurationSeconds = e.DurationSeconds()
	return res, nil
}

func FromEntries(entries []catalog.Entry) ([]*VideoResponse, error) {
	res := make([]*VideoResponse, len(entries))
	for i, e := range entries {
		v, err := FromEntry(e)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

type VideoListResponse struct {
	Sort  string           `json:"sort"`
	Items []*VideoResponse `json:"items"`
}

type VideoIDsResponse struct {
	Sort string   `json:"sort"`
	IDs  []string `json:"ids"`
}

// AdminVideoResponse adds the stored refs the public view hides.
type AdminVideoResponse struct {
	VideoResponse
	ThumbnailRef *string `json:"thumbnail_ref"`
	ProductLink  string  `json:"product_link"`
}

func FromEntryAdmin(e catalog.Entry) (*AdminVideoResponse, error) {
	v, err := FromEntry(e)
	if err != nil {
		return nil, err
	}
	return &AdminVideoResponse{VideoResponse: *v, ThumbnailRef: e.ThumbnailRef, ProductLink: e.ProductLink}, nil
}

type PreviewResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

func FromPreviews(ps []catalog.PreviewSource) []PreviewResponse {
	res := make([]PreviewResponse, len(ps))
	for i, p := range ps {
		res[i] = PreviewResponse{ID: p.ID, URL: p.URL, Position: p.Position}
	}
	return res
}

// StreamEntryEvent is the payload of an "entry" SSE event.
type StreamEntryEvent struct {
	Generation uint64         `json:"generation"`
	Index      int            `json:"index"`
	Video      *VideoResponse `json:"video"`
}

// StreamDoneEvent is the payload of the closing "done" SSE event.
type StreamDoneEvent struct {
	Generation uint64 `json:"generation"`
	Delivered  int    `json:"delivered"`
	Skipped    int    `json:"skipped"`
	Superseded bool   `json:"superseded"`
}
