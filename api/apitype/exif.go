package apitype

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

const ExifUnchangedOrientation = 1

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

// ReadExifOrientation returns the EXIF orientation tag value. Sources
// without EXIF data return an error and ExifUnchangedOrientation.
func ReadExifOrientation(reader io.Reader) (int, error) {
	decodedExif, err := exif.Decode(reader)
	if err != nil {
		return ExifUnchangedOrientation, err
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return ExifUnchangedOrientation, err
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return ExifUnchangedOrientation, err
	}
	return orientation, nil
}

// ExifOrientationToAngleAndFlip maps the EXIF orientation to a counter
// clockwise rotation and a horizontal flip.
func ExifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func ExifRotateImage(loadedImage image.Image, rotation float64, flipped bool) image.Image {
	if rotation != noRotate {
		loadedImage = imaging.Rotate(loadedImage, rotation, color.Black)
	}
	if flipped {
		return imaging.FlipH(loadedImage)
	}
	return loadedImage
}
