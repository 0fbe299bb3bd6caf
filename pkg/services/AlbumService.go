package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/llpevents/website/pkg/imaging"
	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/shows"
	"github.com/llpevents/website/pkg/storage"
)

const (
	folderListLimit int32 = 100
	coverScanLimit  int32 = 100

	// A pre-restructure layout nested everything under this folder.
	legacyShowsFolder = "shows/"
)

type AlbumServicer interface {
	ListAlbums(ctx context.Context) ([]models.Album, error)
}

type AlbumServiceConfig struct {
	MaxListWorkers  int
	MetadataService MetadataServicer
	Storage         storage.Lister
	URLs            imaging.URLBuilder
}

type AlbumService struct {
	maxListWorkers  int
	metadataService MetadataServicer
	storage         storage.Lister
	urls            imaging.URLBuilder
}

func NewAlbumService(config AlbumServiceConfig) AlbumService {
	maxListWorkers := config.MaxListWorkers

	if maxListWorkers <= 0 {
		maxListWorkers = 10
	}

	return AlbumService{
		maxListWorkers:  maxListWorkers,
		metadataService: config.MetadataService,
		storage:         config.Storage,
		urls:            config.URLs,
	}
}

/*
ListAlbums builds the full album listing: one entry per top-level
storage folder, merged with its metadata record when one exists. Cover
and photo count resolution require a listing per folder, so those fan
out on a bounded worker pool. Any listing failure aborts the whole
call; results are sorted afterwards so concurrency never affects
output order.
*/
func (s AlbumService) ListAlbums(ctx context.Context) ([]models.Album, error) {
	var (
		mu       sync.Mutex
		firstErr error
		albums   []models.Album
	)

	metadata := s.metadataService.LoadAlbumMetadata(ctx)

	folders, err := s.storage.ListFolders(ctx, folderListLimit)

	if err != nil {
		return nil, fmt.Errorf("error listing album folders: %w", err)
	}

	pool := pond.NewPool(s.maxListWorkers, pond.WithContext(ctx))

	for _, folder := range folders {
		if folder == legacyShowsFolder {
			continue
		}

		pool.Submit(func() {
			album, err := s.buildAlbum(ctx, folder, metadata)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if firstErr == nil {
					firstErr = err
				}

				return
			}

			albums = append(albums, album)
		})
	}

	_ = pool.Stop().Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sortAlbums(albums)
	return albums, nil
}

func (s AlbumService) buildAlbum(ctx context.Context, folder string, metadata map[string]models.AlbumMetadata) (models.Album, error) {
	slug := strings.TrimSuffix(folder, "/")

	listing, err := s.storage.ListObjects(ctx, folder, coverScanLimit, "")

	if err != nil {
		return models.Album{}, fmt.Errorf("error listing contents of album folder '%s': %w", folder, err)
	}

	images := filterImageObjects(listing.Objects)
	album := s.mergeMetadata(slug, metadata)
	album.Path = folder
	album.PhotoCount = len(images)

	if len(images) > 0 {
		/*
		 * Pick a random cover so the same photo doesn't front the
		 * album forever.
		 */
		cover := s.urls.Cover(images[rand.IntN(len(images))].URL)
		album.CoverImage = &cover
	}

	return album, nil
}

func (s AlbumService) mergeMetadata(slug string, metadata map[string]models.AlbumMetadata) models.Album {
	album := models.Album{
		Slug:     slug,
		Name:     shows.FormatShowName(slug),
		Featured: true,
	}

	record, ok := metadata[slug]

	if !ok {
		return album
	}

	if record.Name != "" {
		album.Name = record.Name
	}

	if record.Date != "" {
		album.Date = &record.Date
	}

	if record.Photographer != "" {
		album.Photographer = &record.Photographer
	}

	if record.Venue != "" {
		album.Venue = &record.Venue
	}

	if record.Description != "" {
		album.Description = &record.Description
	}

	if record.Featured != nil {
		album.Featured = *record.Featured
	}

	return album
}

/*
sortAlbums orders dated albums most recent first, then undated albums
by case-insensitive name. Equal dates tie-break on name so the listing
is deterministic.
*/
func sortAlbums(albums []models.Album) {
	sort.Slice(albums, func(i, j int) bool {
		a, b := albums[i], albums[j]
		aDate, aOk := parseAlbumDate(a.Date)
		bDate, bOk := parseAlbumDate(b.Date)

		switch {
		case aOk && !bOk:
			return true

		case !aOk && bOk:
			return false

		case aOk && bOk:
			if !aDate.Equal(bDate) {
				return aDate.After(bDate)
			}
		}

		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})
}

func parseAlbumDate(value *string) (time.Time, bool) {
	if value == nil {
		return time.Time{}, false
	}

	parsed, err := time.Parse("2006-01-02", *value)

	if err != nil {
		slog.Warn("album metadata has an unparseable date", "date", *value)
		return time.Time{}, false
	}

	return parsed, true
}
