package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/llpevents/website/pkg/imaging"
	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/storage"
)

const photoPageSize int32 = 100

type PhotoServicer interface {
	ListPhotos(ctx context.Context, showSlug, cursor string) (models.PhotoPage, error)
}

type PhotoServiceConfig struct {
	Storage storage.Lister
	URLs    imaging.URLBuilder
}

type PhotoService struct {
	storage storage.Lister
	urls    imaging.URLBuilder
}

func NewPhotoService(config PhotoServiceConfig) PhotoService {
	return PhotoService{
		storage: config.Storage,
		urls:    config.URLs,
	}
}

/*
ListPhotos returns one page of an album's photos. An unknown slug is
not an error; it just lists nothing. The cursor from a prior truncated
page resumes the listing where it left off.
*/
func (s PhotoService) ListPhotos(ctx context.Context, showSlug, cursor string) (models.PhotoPage, error) {
	page := models.PhotoPage{
		Show:   showSlug,
		Photos: []models.Photo{},
	}

	listing, err := s.storage.ListObjects(ctx, showSlug+"/", photoPageSize, cursor)

	if err != nil {
		return page, fmt.Errorf("error listing photos for show '%s': %w", showSlug, err)
	}

	for _, obj := range filterImageObjects(listing.Objects) {
		page.Photos = append(page.Photos, models.Photo{
			ID:        obj.Key,
			URL:       obj.URL,
			Thumbnail: s.urls.Thumbnail(obj.URL),
			FullSize:  s.urls.FullSize(obj.URL),
			Filename:  filepath.Base(obj.Key),
		})
	}

	page.HasMore = listing.HasMore
	page.Count = len(page.Photos)

	if listing.Cursor != "" {
		page.Cursor = &listing.Cursor
	}

	return page, nil
}
