package services

import (
	"context"
	"errors"
	"testing"

	"github.com/llpevents/website/pkg/imaging"
	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/storage"
)

func newTestAlbumService(fake *fakeStorage, metadata map[string]models.AlbumMetadata) AlbumService {
	return NewAlbumService(AlbumServiceConfig{
		MaxListWorkers:  4,
		MetadataService: &fakeMetadata{index: metadata},
		Storage:         fake,
		URLs:            imaging.URLBuilder{ProxyTemplate: "/_vercel/image?url=%s&w=%d&q=%d"},
	})
}

func TestListAlbumsMergesStorageAndMetadata(t *testing.T) {
	fake := &fakeStorage{
		folders: []string{"lle2-photos/", "llnm1/"},
		pages: map[string]storage.ListResult{
			"lle2-photos/": {Objects: imageObjects("lle2-photos/a.jpg", "lle2-photos/b.png", "lle2-photos/c.webp")},
			"llnm1/":       {},
		},
	}

	metadata := map[string]models.AlbumMetadata{
		"llnm1": {Slug: "llnm1", Date: "2025-12-05"},
	}

	albums, err := newTestAlbumService(fake, metadata).ListAlbums(context.Background())

	if err != nil {
		t.Fatalf("ListAlbums returned error: %v", err)
	}

	if len(albums) != 2 {
		t.Fatalf("expected 2 albums, got %d", len(albums))
	}

	// llnm1 has a date so it sorts before the undated album.
	if albums[0].Slug != "llnm1" || albums[1].Slug != "lle2-photos" {
		t.Errorf("unexpected order: %s, %s", albums[0].Slug, albums[1].Slug)
	}

	if albums[0].PhotoCount != 0 {
		t.Errorf("expected llnm1 to have 0 photos, got %d", albums[0].PhotoCount)
	}

	if albums[0].CoverImage != nil {
		t.Errorf("expected no cover for an empty album, got %q", *albums[0].CoverImage)
	}

	if albums[1].Name != "Louisville Loves Emo 2" {
		t.Errorf("expected derived name 'Louisville Loves Emo 2', got %q", albums[1].Name)
	}

	if albums[1].PhotoCount != 3 {
		t.Errorf("expected lle2-photos to have 3 photos, got %d", albums[1].PhotoCount)
	}
}

func TestListAlbumsCoverIsAMemberOfTheImageSet(t *testing.T) {
	fake := &fakeStorage{
		folders: []string{"halloween/"},
		pages: map[string]storage.ListResult{
			"halloween/": {Objects: imageObjects("halloween/1.jpg", "halloween/2.jpg", "halloween/3.jpg")},
		},
	}

	candidates := map[string]bool{
		"https://photos.example.com/halloween/1.jpg": true,
		"https://photos.example.com/halloween/2.jpg": true,
		"https://photos.example.com/halloween/3.jpg": true,
	}

	// Cover selection is random; run a few rounds and only assert
	// membership in the candidate set.
	for range 10 {
		albums, err := newTestAlbumService(fake, nil).ListAlbums(context.Background())

		if err != nil {
			t.Fatalf("ListAlbums returned error: %v", err)
		}

		if albums[0].CoverImage == nil {
			t.Fatal("expected a cover image")
		}

		if !candidates[*albums[0].CoverImage] {
			t.Fatalf("cover %q is not one of the album's images", *albums[0].CoverImage)
		}
	}
}

func TestListAlbumsExcludesLegacyShowsFolder(t *testing.T) {
	fake := &fakeStorage{
		folders: []string{"shows/", "llnm1/"},
		pages: map[string]storage.ListResult{
			"llnm1/": {Objects: imageObjects("llnm1/a.jpg")},
		},
	}

	albums, err := newTestAlbumService(fake, nil).ListAlbums(context.Background())

	if err != nil {
		t.Fatalf("ListAlbums returned error: %v", err)
	}

	if len(albums) != 1 || albums[0].Slug != "llnm1" {
		t.Errorf("expected only llnm1, got %+v", albums)
	}
}

func TestListAlbumsFiltersNonImagesFromCount(t *testing.T) {
	fake := &fakeStorage{
		folders: []string{"llnm1/"},
		pages: map[string]storage.ListResult{
			"llnm1/": {Objects: []storage.Object{
				{Key: "llnm1/a.jpg", URL: "https://photos.example.com/llnm1/a.jpg"},
				{Key: "llnm1/notes.txt", URL: "https://photos.example.com/llnm1/notes.txt"},
				{Key: "llnm1/sub/", URL: "https://photos.example.com/llnm1/sub/"},
				{Key: "llnm1/b.AVIF", URL: "https://photos.example.com/llnm1/b.AVIF"},
			}},
		},
	}

	albums, err := newTestAlbumService(fake, nil).ListAlbums(context.Background())

	if err != nil {
		t.Fatalf("ListAlbums returned error: %v", err)
	}

	if albums[0].PhotoCount != 2 {
		t.Errorf("expected 2 images after filtering, got %d", albums[0].PhotoCount)
	}
}

func TestListAlbumsFailsFastOnFolderListingError(t *testing.T) {
	fake := &fakeStorage{
		folders: []string{"good/", "bad/"},
		pages: map[string]storage.ListResult{
			"good/": {Objects: imageObjects("good/a.jpg")},
		},
		listErr: map[string]error{
			"bad/": errors.New("listing exploded"),
		},
	}

	_, err := newTestAlbumService(fake, nil).ListAlbums(context.Background())

	if err == nil {
		t.Fatal("expected an aggregate failure when one folder listing fails")
	}
}

func TestListAlbumsFailsWhenRootListingFails(t *testing.T) {
	fake := &fakeStorage{
		foldersErr: errors.New("bucket unavailable"),
	}

	_, err := newTestAlbumService(fake, nil).ListAlbums(context.Background())

	if err == nil {
		t.Fatal("expected error when the root folder listing fails")
	}
}

func TestMergeMetadataDefaults(t *testing.T) {
	s := newTestAlbumService(&fakeStorage{}, nil)
	featured := false

	metadata := map[string]models.AlbumMetadata{
		"llnm1": {
			Slug:         "llnm1",
			Name:         "Nu-Metal Night One",
			Date:         "2025-12-05",
			Photographer: "Janelle",
			Venue:        "Headliners",
			Featured:     &featured,
		},
	}

	withRecord := s.mergeMetadata("llnm1", metadata)

	if withRecord.Name != "Nu-Metal Night One" {
		t.Errorf("expected metadata name to win, got %q", withRecord.Name)
	}

	if withRecord.Featured {
		t.Error("expected explicit featured=false to be respected")
	}

	if withRecord.Photographer == nil || *withRecord.Photographer != "Janelle" {
		t.Error("expected photographer from metadata")
	}

	withoutRecord := s.mergeMetadata("random-name", metadata)

	if withoutRecord.Name != "Random Name" {
		t.Errorf("expected slug-derived name, got %q", withoutRecord.Name)
	}

	if !withoutRecord.Featured {
		t.Error("expected featured to default to true")
	}

	if withoutRecord.Date != nil || withoutRecord.Venue != nil || withoutRecord.Description != nil {
		t.Error("expected null fields when no metadata record exists")
	}
}

func TestSortAlbums(t *testing.T) {
	date := func(value string) *string { return &value }

	albums := []models.Album{
		{Slug: "undated-z", Name: "Zebra Night"},
		{Slug: "old", Name: "Old Show", Date: date("2023-01-10")},
		{Slug: "undated-a", Name: "acoustic night"},
		{Slug: "new", Name: "New Show", Date: date("2025-12-05")},
		{Slug: "tie-b", Name: "Bravo", Date: date("2024-06-01")},
		{Slug: "tie-a", Name: "alpha", Date: date("2024-06-01")},
	}

	sortAlbums(albums)

	want := []string{"new", "tie-a", "tie-b", "old", "undated-a", "undated-z"}

	for i, slug := range want {
		if albums[i].Slug != slug {
			t.Fatalf("position %d: expected %s, got %s", i, slug, albums[i].Slug)
		}
	}
}
