package imagetools

import (
	"image"

	"github.com/disintegration/imaging"
	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/common/logger"
)

// Fit downscales img to fit inside maxWidth x maxHeight keeping the aspect
// ratio. Images that already fit are returned as is. A zero bound leaves
// that axis unbounded.
func Fit(img image.Image, maxWidth int, maxHeight int) (image.Image, error) {
	source := apitype.SizeOfImage(img)
	target, err := apitype.FitSize(source, apitype.SizeOf(maxWidth, maxHeight))
	if err != nil {
		return nil, err
	}
	if target == source {
		return img, nil
	}

	logger.Trace.Printf("Fit %s to %s", source, target)
	return imaging.Resize(img, target.Width(), target.Height(), imaging.Linear), nil
}

// ForceFit resizes img to exactly width x height ignoring the aspect ratio.
func ForceFit(img image.Image, width int, height int) (image.Image, error) {
	if err := apitype.ValidateSize(width, height); err != nil {
		return nil, err
	}
	if width == 0 || height == 0 {
		return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
	}
	if apitype.SizeOfImage(img).IsZeroArea() {
		return image.NewNRGBA(image.Rect(0, 0, width, height)), nil
	}
	return imaging.Resize(img, width, height, imaging.Linear), nil
}

// IconFit produces a square icon of the given size.
func IconFit(img image.Image, size int) (image.Image, error) {
	return ForceFit(img, size, size)
}
