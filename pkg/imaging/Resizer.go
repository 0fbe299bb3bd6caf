package imaging

import (
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

/*
ResizeReader decodes an image and scales its longest edge down to
maxSize, preserving aspect ratio. Images already smaller than maxSize
are still re-encoded but not upscaled.
*/
func ResizeReader(r io.Reader, maxSize uint) (image.Image, error) {
	img, _, err := image.Decode(r)

	if err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	return Resize(img, maxSize), nil
}

func Resize(img image.Image, maxSize uint) image.Image {
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width <= maxSize && height <= maxSize {
		return img
	}

	var newWidth, newHeight uint

	if width > height {
		// Landscape orientation
		newWidth = maxSize
		newHeight = uint(float64(height) * (float64(maxSize) / float64(width)))
	} else {
		// Portrait orientation or square
		newHeight = maxSize
		newWidth = uint(float64(width) * (float64(maxSize) / float64(height)))
	}

	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

func EncodeJPEG(w io.Writer, img image.Image, quality int) error {
	if quality < 1 {
		quality = 1
	}

	if quality > 100 {
		quality = 100
	}

	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("error encoding image: %w", err)
	}

	return nil
}
