package imagetools

import (
	"image"

	"github.com/nfnt/resize"
	"vincit.fi/slideshow/api/apitype"
)

// Thumbnail scales img to fit a size x size box for the overview strip.
// Unlike Fit it also upscales tiny images so all thumbnails are comparable.
func Thumbnail(img image.Image, size int) (image.Image, error) {
	if err := apitype.ValidateSize(size, size); err != nil {
		return nil, err
	}
	if size == 0 || apitype.SizeOfImage(img).IsZeroArea() {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	source := apitype.SizeOfImage(img)
	width, height := apitype.ScaleToFit(source.Width(), source.Height(), size, size)
	return resize.Resize(uint(atLeastOne(width)), uint(atLeastOne(height)), img, resize.Bilinear), nil
}

// Thumbnails creates thumbnails for all images in order.
func Thumbnails(images []image.Image, size int) ([]image.Image, error) {
	thumbnails := make([]image.Image, 0, len(images))
	for _, img := range images {
		thumbnail, err := Thumbnail(img, size)
		if err != nil {
			return nil, err
		}
		thumbnails = append(thumbnails, thumbnail)
	}
	return thumbnails, nil
}

func atLeastOne(value int) int {
	if value < 1 {
		return 1
	}
	return value
}
