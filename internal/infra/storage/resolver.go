// Package storage maps opaque file references to public URLs. Signing is left
// to the CDN in front of the bucket.
package storage

import (
	"context"
	"net/url"
	"strings"

	"clipvault/internal/pkg/errs"
)

var ErrInvalidRef = errs.New("invalid file reference")

type PublicURLResolver struct {
	base *url.URL
}

func NewPublicURLResolver(baseURL string) (*PublicURLResolver, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.Newf("invalid storage base url %q", baseURL)
	}
	return &PublicURLResolver{base: u}, nil
}

// Resolve passes absolute http(s) refs through and joins bucket keys onto the
// base URL, escaping each path segment.
func (r *PublicURLResolver) Resolve(_ context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrInvalidRef
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		if _, err := url.Parse(ref); err != nil {
			return "", errs.Mark(err, ErrInvalidRef)
		}
		return ref, nil
	}

	segments := strings.Split(strings.TrimLeft(ref, "/"), "/")
	for i, s := range segments {
		if s == "" || s == "." || s == ".." {
			return "", errs.Mark(errs.Newf("ref %q", ref), ErrInvalidRef)
		}
		segments[i] = url.PathEscape(s)
	}
	return r.base.String() + "/" + strings.Join(segments, "/"), nil
}
