package imageproxy

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/llpevents/website/pkg/imaging"
)

const maxWidth = 1920

type ImageProxyHandlers interface {
	OptimizeImage(w http.ResponseWriter, r *http.Request)
}

type ImageProxyControllerConfig struct {
	AllowedBaseURL string
}

/*
ImageProxyController is the self-hosted stand-in for the platform
image optimizer, used outside production. It only fetches from the
configured storage base so it can't be used as an open proxy.
*/
type ImageProxyController struct {
	allowedBaseURL string
	httpClient     *http.Client
}

func NewImageProxyController(config ImageProxyControllerConfig) ImageProxyController {
	return ImageProxyController{
		allowedBaseURL: strings.TrimSuffix(config.AllowedBaseURL, "/"),
		httpClient:     &http.Client{Timeout: time.Second * 30},
	}
}

/*
GET /image?url={source}&w={width}&q={quality}
*/
func (c ImageProxyController) OptimizeImage(w http.ResponseWriter, r *http.Request) {
	sourceURL := httphelpers.GetFromRequest[string](r, "url")
	width := parseBounded(httphelpers.GetFromRequest[string](r, "w"), imaging.ThumbnailWidth, maxWidth)
	quality := parseBounded(httphelpers.GetFromRequest[string](r, "q"), imaging.ThumbnailQuality, 100)

	if sourceURL == "" || !strings.HasPrefix(sourceURL, c.allowedBaseURL) {
		httphelpers.WriteText(w, http.StatusBadRequest, "invalid image URL")
		return
	}

	request, err := http.NewRequestWithContext(r.Context(), http.MethodGet, sourceURL, nil)

	if err != nil {
		slog.Error("error building source image request", "url", sourceURL, "error", err)
		httphelpers.TextInternalServerError(w, "failed to fetch image")
		return
	}

	// Tied to the request context so a disconnected client cancels
	// the upstream fetch.
	response, err := c.httpClient.Do(request)

	if err != nil {
		slog.Error("error fetching source image", "url", sourceURL, "error", err)
		httphelpers.TextInternalServerError(w, "failed to fetch image")
		return
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		slog.Error("source image fetch returned non-200", "url", sourceURL, "status", response.Status)
		httphelpers.WriteText(w, http.StatusBadGateway, "failed to fetch image")
		return
	}

	img, err := imaging.ResizeReader(response.Body, uint(width))

	if err != nil {
		slog.Error("error resizing image", "url", sourceURL, "error", err)
		httphelpers.TextInternalServerError(w, "failed to process image")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")

	if err = imaging.EncodeJPEG(w, img, quality); err != nil {
		slog.Error("error encoding image", "url", sourceURL, "error", err)
	}
}

func parseBounded(value string, fallback, max int) int {
	parsed, err := strconv.Atoi(value)

	if err != nil || parsed < 1 {
		return fallback
	}

	if parsed > max {
		return max
	}

	return parsed
}
