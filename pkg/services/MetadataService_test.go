package services

import (
	"context"
	"errors"
	"testing"

	"github.com/llpevents/website/pkg/storage"
)

func newTestMetadataService(fake *fakeStorage) MetadataService {
	return NewMetadataService(MetadataServiceConfig{
		MetadataPrefix: "_metadata/",
		Storage:        fake,
	})
}

func TestLoadAlbumMetadataIndexesBySlug(t *testing.T) {
	fake := &fakeStorage{
		pages: map[string]storage.ListResult{
			"_metadata/": {Objects: []storage.Object{
				{Key: "_metadata/llnm1.json"},
				{Key: "_metadata/readme.txt"},
			}},
		},
		objects: map[string][]byte{
			"_metadata/llnm1.json": []byte(`{"slug":"llnm1","name":"Nu-Metal Night","date":"2025-12-05","featured":false}`),
		},
	}

	index := newTestMetadataService(fake).LoadAlbumMetadata(context.Background())

	if len(index) != 1 {
		t.Fatalf("expected 1 record, got %d", len(index))
	}

	record := index["llnm1"]

	if record.Name != "Nu-Metal Night" || record.Date != "2025-12-05" {
		t.Errorf("unexpected record %+v", record)
	}

	if record.Featured == nil || *record.Featured {
		t.Error("expected explicit featured=false")
	}
}

func TestLoadAlbumMetadataFallsBackToFilenameSlug(t *testing.T) {
	fake := &fakeStorage{
		pages: map[string]storage.ListResult{
			"_metadata/": {Objects: []storage.Object{
				{Key: "_metadata/lle2.json"},
			}},
		},
		objects: map[string][]byte{
			"_metadata/lle2.json": []byte(`{"name":"Emo Night Two"}`),
		},
	}

	index := newTestMetadataService(fake).LoadAlbumMetadata(context.Background())

	if _, ok := index["lle2"]; !ok {
		t.Fatalf("expected record keyed by filename slug, got %+v", index)
	}
}

func TestLoadAlbumMetadataSkipsCorruptRecords(t *testing.T) {
	fake := &fakeStorage{
		pages: map[string]storage.ListResult{
			"_metadata/": {Objects: []storage.Object{
				{Key: "_metadata/good.json"},
				{Key: "_metadata/corrupt.json"},
				{Key: "_metadata/unreadable.json"},
			}},
		},
		objects: map[string][]byte{
			"_metadata/good.json":    []byte(`{"slug":"good","name":"Good Show"}`),
			"_metadata/corrupt.json": []byte(`{not json`),
		},
		readErr: map[string]error{
			"_metadata/unreadable.json": errors.New("access denied"),
		},
	}

	index := newTestMetadataService(fake).LoadAlbumMetadata(context.Background())

	if len(index) != 1 {
		t.Fatalf("expected only the readable record, got %d", len(index))
	}

	if _, ok := index["good"]; !ok {
		t.Error("expected the good record to survive")
	}
}

func TestLoadAlbumMetadataDegradesToEmptyOnStoreFailure(t *testing.T) {
	fake := &fakeStorage{
		listErr: map[string]error{
			"_metadata/": errors.New("bucket unavailable"),
		},
	}

	index := newTestMetadataService(fake).LoadAlbumMetadata(context.Background())

	if len(index) != 0 {
		t.Errorf("expected empty index on store failure, got %d records", len(index))
	}
}

func TestLoadAlbumMetadataFollowsPagination(t *testing.T) {
	fake := &fakeStorage{
		pages: map[string]storage.ListResult{
			"_metadata/": {
				Objects: []storage.Object{{Key: "_metadata/one.json"}},
				HasMore: true,
				Cursor:  "page-2",
			},
		},
		morePages: map[string]storage.ListResult{
			"page-2": {
				Objects: []storage.Object{{Key: "_metadata/two.json"}},
			},
		},
		objects: map[string][]byte{
			"_metadata/one.json": []byte(`{"slug":"one"}`),
			"_metadata/two.json": []byte(`{"slug":"two"}`),
		},
	}

	index := newTestMetadataService(fake).LoadAlbumMetadata(context.Background())

	if len(index) != 2 {
		t.Fatalf("expected records from both pages, got %d", len(index))
	}
}
