package services

import "testing"

func TestIsImageObject(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"llnm1/photo.jpg", true},
		{"llnm1/photo.JPEG", true},
		{"llnm1/photo.png", true},
		{"llnm1/photo.gif", true},
		{"llnm1/photo.webp", true},
		{"llnm1/photo.AVIF", true},
		{"llnm1/notes.txt", false},
		{"llnm1/clip.mp4", false},
		{"llnm1/noextension", false},
		{"llnm1/sub/", false},
		{"llnm1/photo.jpg/", false},
	}

	for _, tt := range tests {
		if got := IsImageObject(tt.key); got != tt.want {
			t.Errorf("IsImageObject(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
