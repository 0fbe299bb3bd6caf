package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/storage"
)

type MetadataServicer interface {
	LoadAlbumMetadata(ctx context.Context) map[string]models.AlbumMetadata
}

type MetadataServiceConfig struct {
	MetadataPrefix string
	Storage        storage.Lister
}

/*
MetadataService reads the per-album JSON records authored by the
content tool. Records live as individual objects under a dedicated
prefix, one file per album, named after the slug.
*/
type MetadataService struct {
	metadataPrefix string
	storage        storage.Lister
}

func NewMetadataService(config MetadataServiceConfig) MetadataService {
	return MetadataService{
		metadataPrefix: config.MetadataPrefix,
		storage:        config.Storage,
	}
}

/*
LoadAlbumMetadata returns all metadata records indexed by slug. It
never fails: a record that cannot be read or parsed is skipped, and if
the store itself is unreachable the index is simply empty, degrading
every album to slug-derived defaults.
*/
func (s MetadataService) LoadAlbumMetadata(ctx context.Context) map[string]models.AlbumMetadata {
	index := map[string]models.AlbumMetadata{}
	cursor := ""

	for {
		listing, err := s.storage.ListObjects(ctx, s.metadataPrefix, 100, cursor)

		if err != nil {
			slog.Error("error listing album metadata records", "prefix", s.metadataPrefix, "error", err)
			return index
		}

		for _, obj := range listing.Objects {
			if !strings.HasSuffix(strings.ToLower(obj.Key), ".json") {
				continue
			}

			record, err := s.readRecord(ctx, obj.Key)

			if err != nil {
				slog.Warn("skipping unreadable album metadata record", "key", obj.Key, "error", err)
				continue
			}

			if record.Slug == "" {
				record.Slug = strings.TrimSuffix(filepath.Base(obj.Key), filepath.Ext(obj.Key))
			}

			index[record.Slug] = record
		}

		if !listing.HasMore {
			return index
		}

		cursor = listing.Cursor
	}
}

func (s MetadataService) readRecord(ctx context.Context, key string) (models.AlbumMetadata, error) {
	record := models.AlbumMetadata{}

	body, err := s.storage.ReadObject(ctx, key)

	if err != nil {
		return record, err
	}

	if err = json.Unmarshal(body, &record); err != nil {
		return record, err
	}

	return record, nil
}
