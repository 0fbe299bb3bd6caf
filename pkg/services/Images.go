package services

import (
	"path/filepath"
	"strings"

	"github.com/adampresley/adamgokit/slices"
	"github.com/llpevents/website/pkg/storage"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif"}

/*
IsImageObject reports whether a listed object is a displayable photo:
a supported image extension and not a folder marker.
*/
func IsImageObject(key string) bool {
	if strings.HasSuffix(key, "/") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(key))
	return slices.IsInSlice(ext, imageExtensions)
}

func filterImageObjects(objects []storage.Object) []storage.Object {
	result := []storage.Object{}

	for _, obj := range objects {
		if IsImageObject(obj.Key) {
			result = append(result, obj)
		}
	}

	return result
}
