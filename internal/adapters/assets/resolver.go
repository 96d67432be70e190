package assets

import (
	"net/url"
	"strings"

	"eventhub/internal/domain"
)

type resolver struct {
	base *url.URL
}

// NewResolver returns an AssetURLResolver that serves paths from under baseURL, e.g.
// "https://cdn.example.com/storage/v1/object/public/event-images". An empty or unparsable
// base returns paths unchanged.
func NewResolver(baseURL string) domain.AssetURLResolver {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return &resolver{}
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &resolver{}
	}
	return &resolver{base: u}
}

func (r *resolver) PublicURL(path string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if r.base == nil {
		return path
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	segments := strings.Split(path, "/")
	return r.base.JoinPath(segments...).String()
}
