//go:build unit

package patch_test

import (
	"testing"

	"clipvault/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	v := 3
	assert.Equal(t, 3, patch.Coalesce(&v, 9))
	assert.Equal(t, 9, patch.Coalesce[int](nil, 9))
}

func TestOptional(t *testing.T) {
	cur := "thumbs/a.jpg"
	next := "thumbs/b.jpg"
	empty := ""

	assert.Equal(t, &cur, patch.Optional(&cur, nil))
	assert.Nil(t, patch.Optional(&cur, &empty))
	got := patch.Optional(&cur, &next)
	assert.Equal(t, "thumbs/b.jpg", *got)
	assert.NotSame(t, &next, got)
}
