package photoapi

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/llpevents/website/cmd/website/internal/api"
	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/services"
)

type PhotosHandlers interface {
	GetPhotos(w http.ResponseWriter, r *http.Request)
	Preflight(w http.ResponseWriter, r *http.Request)
}

type PhotosControllerConfig struct {
	AlbumService services.AlbumServicer
	PhotoService services.PhotoServicer
}

type PhotosController struct {
	albumService services.AlbumServicer
	photoService services.PhotoServicer
}

func NewPhotosController(config PhotosControllerConfig) PhotosController {
	return PhotosController{
		albumService: config.AlbumService,
		photoService: config.PhotoService,
	}
}

/*
GET /api/photos
GET /api/photos?show={slug}&cursor={cursor}

Without a show this returns the full album list. With one it returns a
page of that show's photos. Responses are cacheable at the edge and
servable stale while revalidating.
*/
func (c PhotosController) GetPhotos(w http.ResponseWriter, r *http.Request) {
	writeCorsHeaders(w)
	w.Header().Set("Cache-Control", "public, s-maxage=300, stale-while-revalidate=600")

	show := httphelpers.GetFromRequest[string](r, "show")
	cursor := httphelpers.GetFromRequest[string](r, "cursor")

	if show == "" {
		albums, err := c.albumService.ListAlbums(r.Context())

		if err != nil {
			slog.Error("error aggregating albums", "error", err)
			api.WriteErrorDetail(w, http.StatusInternalServerError, "Failed to fetch photos", err.Error())
			return
		}

		api.WriteJson(w, http.StatusOK, struct {
			Albums []models.Album `json:"albums"`
		}{
			Albums: albums,
		})

		return
	}

	page, err := c.photoService.ListPhotos(r.Context(), show, cursor)

	if err != nil {
		slog.Error("error listing photos", "show", show, "error", err)
		api.WriteErrorDetail(w, http.StatusInternalServerError, "Failed to fetch photos", err.Error())
		return
	}

	api.WriteJson(w, http.StatusOK, page)
}

/*
OPTIONS /api/photos
*/
func (c PhotosController) Preflight(w http.ResponseWriter, r *http.Request) {
	writeCorsHeaders(w)
	w.WriteHeader(http.StatusOK)
}

func writeCorsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
}
