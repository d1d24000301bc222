package catalog

import (
	"cmp"
	"slices"
	"time"

	"clipvault/internal/pkg/errs"
)

const MaxPreviews = 3

var (
	ErrInvalidPosition = errs.New("preview position must be positive")
	ErrEmptyFileRef    = errs.New("preview file reference is required")
)

type PreviewSource struct {
	ID        string
	VideoID   string
	FileRef   string
	URL       string
	Position  int
	CreatedAt time.Time
}

func NewPreviewSource(videoID, fileRef string, position int, now time.Time) (PreviewSource, error) {
	if fileRef == "" {
		return PreviewSource{}, ErrEmptyFileRef
	}
	if position <= 0 {
		return PreviewSource{}, ErrInvalidPosition
	}
	return PreviewSource{
		ID:        NewID(),
		VideoID:   videoID,
		FileRef:   fileRef,
		Position:  position,
		CreatedAt: now,
	}, nil
}

// SelectPreviews orders sources by position, keeping insertion order on ties,
// and keeps at most MaxPreviews. Extra sources are ignored, never synthesized.
func SelectPreviews(sources []PreviewSource) []PreviewSource {
	out := slices.Clone(sources)
	slices.SortStableFunc(out, func(a, b PreviewSource) int { return cmp.Compare(a.Position, b.Position) })
	if len(out) > MaxPreviews {
		out = out[:MaxPreviews]
	}
	return out
}
