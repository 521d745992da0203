// Package imagecdn builds delivery URLs for bundled image assets.
//
// A plain base URL serves assets as-is. A Cloudinary upload base gets
// delivery transforms so icons are resized at the edge.
package imagecdn

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrAssetRequired is returned when a request carries no asset identifier.
var ErrAssetRequired = errors.New("asset is required")

// Delivery sizes the delivered image.
type Delivery struct {
	WidthPX  int
	HeightPX int
}

// Request describes one asset URL.
type Request struct {
	Asset    string
	Delivery *Delivery
}

// CDN resolves asset URLs against a base.
type CDN struct {
	base       string
	cloudinary bool
}

// New returns a CDN for base. An empty base yields relative asset URLs.
func New(base string) CDN {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return CDN{base: base, cloudinary: isCloudinaryUpload(base)}
}

// URL returns the delivery URL for req.
func (c CDN) URL(req Request) (string, error) {
	asset := strings.TrimLeft(strings.TrimSpace(req.Asset), "/")
	if asset == "" {
		return "", ErrAssetRequired
	}
	escaped := (&url.URL{Path: asset}).EscapedPath()
	if c.base == "" {
		return escaped, nil
	}
	if !c.cloudinary || req.Delivery == nil {
		return c.base + "/" + escaped, nil
	}
	return c.base + "/" + deliveryTransform(*req.Delivery) + "/" + escaped, nil
}

// MustURL is URL for callers that already validated the asset.
// It falls back to the bare asset on error.
func (c CDN) MustURL(req Request) string {
	out, err := c.URL(req)
	if err != nil {
		return req.Asset
	}
	return out
}

func deliveryTransform(d Delivery) string {
	parts := []string{"f_auto", "q_auto", "dpr_auto", "c_limit"}
	if d.WidthPX > 0 {
		parts = append(parts, fmt.Sprintf("w_%d", d.WidthPX))
	}
	if d.HeightPX > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", d.HeightPX))
	}
	return strings.Join(parts, ",")
}

func isCloudinaryUpload(base string) bool {
	parsed, err := url.Parse(base)
	if err != nil {
		return false
	}
	return strings.EqualFold(parsed.Hostname(), "res.cloudinary.com") && strings.Contains(parsed.Path, "/image/upload")
}
