// Package banner selects and classifies the hero carousel slides.
package banner

import (
	"strings"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type LinkKind string

const (
	// LinkAnchor scrolls to a section of the current page.
	LinkAnchor LinkKind = "anchor"
	// LinkExternal opens in a new browsing context.
	LinkExternal LinkKind = "external"
)

// Active keeps the active banners in their configured order.
func Active(banners []model.Banner) []model.Banner {
	out := make([]model.Banner, 0, len(banners))
	for _, b := range banners {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out
}

func ClassifyLink(link string) LinkKind {
	if strings.HasPrefix(link, "#") {
		return LinkAnchor
	}
	return LinkExternal
}

// AnchorTarget returns the element id an anchor link scrolls to.
func AnchorTarget(link string) (string, bool) {
	if ClassifyLink(link) != LinkAnchor {
		return "", false
	}
	return strings.TrimPrefix(link, "#"), true
}
