//go:build unit

package storage_test

import (
	"context"
	"testing"

	"clipvault/internal/infra/storage"
	"clipvault/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublicURLResolver(t *testing.T) {
	_, err := storage.NewPublicURLResolver("cdn.example.com")
	assert.Error(t, err)

	_, err = storage.NewPublicURLResolver("")
	assert.Error(t, err)

	_, err = storage.NewPublicURLResolver("https://cdn.example.com/media/")
	assert.NoError(t, err)
}

func TestPublicURLResolver_Resolve(t *testing.T) {
	r, err := storage.NewPublicURLResolver("https://cdn.example.com/media/")
	require.NoError(t, err)

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "bucket key", ref: "thumbs/sunset.jpg", want: "https://cdn.example.com/media/thumbs/sunset.jpg"},
		{name: "leading slash", ref: "/thumbs/sunset.jpg", want: "https://cdn.example.com/media/thumbs/sunset.jpg"},
		{name: "segments are escaped", ref: "thumbs/my clip#1.jpg", want: "https://cdn.example.com/media/thumbs/my%20clip%231.jpg"},
		{name: "absolute url passes through", ref: "https://other.example.com/a.jpg", want: "https://other.example.com/a.jpg"},
		{name: "empty", ref: "   ", wantErr: true},
		{name: "dot dot", ref: "thumbs/../secret.jpg", wantErr: true},
		{name: "empty segment", ref: "thumbs//a.jpg", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(context.Background(), tt.ref)
			if tt.wantErr {
				assert.True(t, errs.Is(err, storage.ErrInvalidRef), err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
