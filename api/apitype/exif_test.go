package apitype

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExifOrientationToAngleAndFlip(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		orientation int
		angle       float64
		flipped     bool
	}{
		{orientation: 1, angle: 0, flipped: false},
		{orientation: 2, angle: 0, flipped: true},
		{orientation: 3, angle: 180, flipped: false},
		{orientation: 4, angle: 180, flipped: true},
		{orientation: 5, angle: 270, flipped: true},
		{orientation: 6, angle: 270, flipped: false},
		{orientation: 7, angle: 90, flipped: true},
		{orientation: 8, angle: 90, flipped: false},
		{orientation: 42, angle: 0, flipped: false},
	}
	for _, tt := range tests {
		angle, flipped := ExifOrientationToAngleAndFlip(tt.orientation)
		a.Equal(tt.angle, angle, "orientation %d", tt.orientation)
		a.Equal(tt.flipped, flipped, "orientation %d", tt.orientation)
	}
}

func TestExifRotateImage(t *testing.T) {
	a := assert.New(t)
	source := image.NewNRGBA(image.Rect(0, 0, 40, 10))

	t.Run("Unchanged", func(t *testing.T) {
		a.Equal(source, ExifRotateImage(source, 0, false))
	})
	t.Run("Rotated swaps axes", func(t *testing.T) {
		a.Equal(SizeOf(10, 40), SizeOfImage(ExifRotateImage(source, 270, false)))
	})
	t.Run("Flipped keeps size", func(t *testing.T) {
		a.Equal(SizeOf(40, 10), SizeOfImage(ExifRotateImage(source, 0, true)))
	})
}

func TestReadExifOrientation_NoExif(t *testing.T) {
	a := assert.New(t)

	orientation, err := ReadExifOrientation(bytes.NewReader([]byte("not an image")))
	a.NotNil(err)
	a.Equal(ExifUnchangedOrientation, orientation)
}
