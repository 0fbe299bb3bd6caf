package imaging

import (
	"fmt"
	"net/url"
)

const (
	CoverWidth   = 640
	CoverQuality = 80

	ThumbnailWidth   = 400
	ThumbnailQuality = 75

	FullSizeWidth   = 1920
	FullSizeQuality = 85
)

/*
URLBuilder derives delivery URLs for photos. In production the platform
image proxy resizes and recompresses on the fly; everywhere else covers
and full-size images pass through as raw storage URLs so local
development is not coupled to the proxy, while thumbnails go through
the self-hosted /image optimizer.

ProxyTemplate is a fmt template with three verbs: the escaped source
URL (%s), the target width (%d), and the quality (%d).
*/
type URLBuilder struct {
	ProxyTemplate string
	Production    bool
}

func (u URLBuilder) Cover(rawURL string) string {
	if !u.Production {
		return rawURL
	}

	return u.optimized(u.ProxyTemplate, rawURL, CoverWidth, CoverQuality)
}

func (u URLBuilder) Thumbnail(rawURL string) string {
	template := u.ProxyTemplate

	if !u.Production {
		template = localOptimizerTemplate
	}

	return u.optimized(template, rawURL, ThumbnailWidth, ThumbnailQuality)
}

func (u URLBuilder) FullSize(rawURL string) string {
	if !u.Production {
		return rawURL
	}

	return u.optimized(u.ProxyTemplate, rawURL, FullSizeWidth, FullSizeQuality)
}

const localOptimizerTemplate = "/image?url=%s&w=%d&q=%d"

func (u URLBuilder) optimized(template, rawURL string, width, quality int) string {
	return fmt.Sprintf(template, url.QueryEscape(rawURL), width, quality)
}
