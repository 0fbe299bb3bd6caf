package services

import (
	"context"

	"github.com/llpevents/website/pkg/models"
	"github.com/llpevents/website/pkg/storage"
)

/*
fakeStorage serves canned listings. First pages are keyed by prefix,
continuation pages by cursor, so cursor round-trips can be exercised
without a real bucket.
*/
type fakeStorage struct {
	folders    []string
	foldersErr error
	pages      map[string]storage.ListResult
	morePages  map[string]storage.ListResult
	listErr    map[string]error
	objects    map[string][]byte
	readErr    map[string]error
}

func (f *fakeStorage) ListFolders(ctx context.Context, limit int32) ([]string, error) {
	if f.foldersErr != nil {
		return nil, f.foldersErr
	}

	return f.folders, nil
}

func (f *fakeStorage) ListObjects(ctx context.Context, prefix string, limit int32, cursor string) (storage.ListResult, error) {
	if err := f.listErr[prefix]; err != nil {
		return storage.ListResult{}, err
	}

	if cursor != "" {
		return f.morePages[cursor], nil
	}

	return f.pages[prefix], nil
}

func (f *fakeStorage) ReadObject(ctx context.Context, key string) ([]byte, error) {
	if err := f.readErr[key]; err != nil {
		return nil, err
	}

	return f.objects[key], nil
}

type fakeMetadata struct {
	index map[string]models.AlbumMetadata
}

func (f *fakeMetadata) LoadAlbumMetadata(ctx context.Context) map[string]models.AlbumMetadata {
	if f.index == nil {
		return map[string]models.AlbumMetadata{}
	}

	return f.index
}

func imageObjects(keys ...string) []storage.Object {
	result := []storage.Object{}

	for _, key := range keys {
		result = append(result, storage.Object{
			Key: key,
			URL: "https://photos.example.com/" + key,
		})
	}

	return result
}
