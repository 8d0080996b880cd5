package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

func (s Size) Height() int {
	return s.height
}

func (s Size) Width() int {
	return s.width
}

func (s Size) IsZeroArea() bool {
	return s.width == 0 || s.height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

// Exceeds tells if either axis is larger than the same axis of bound. A zero
// bound axis is unbounded, as in FitSize.
func (s Size) Exceeds(bound Size) bool {
	return (bound.width > 0 && s.width > bound.width) ||
		(bound.height > 0 && s.height > bound.height)
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeOfImage(img image.Image) Size {
	if img == nil {
		return Size{}
	}
	return SizeFromRectangle(img.Bounds())
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func ValidateSize(width int, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

// ScaleToFit fits the source to target height first and, if the width
// still overflows, to the target width. Results are floored.
func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	newWidth := scaleAxis(targetHeight, sourceWidth, sourceHeight)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = scaleAxis(targetWidth, sourceHeight, sourceWidth)
	}
	return newWidth, newHeight
}

// FitSize returns the size source should be drawn at inside bound without
// upscaling. A zero bound axis is treated as unbounded.
func FitSize(source Size, bound Size) (Size, error) {
	if err := ValidateSize(bound.width, bound.height); err != nil {
		return Size{}, err
	}
	if err := ValidateSize(source.width, source.height); err != nil {
		return Size{}, err
	}
	if source.IsZeroArea() {
		return source, nil
	}

	maxWidth := bound.width
	if maxWidth == 0 {
		maxWidth = source.width
	}
	maxHeight := bound.height
	if maxHeight == 0 {
		maxHeight = source.height
	}

	widthExceeds := source.width > maxWidth
	heightExceeds := source.height > maxHeight

	var width, height int
	switch {
	case widthExceeds && heightExceeds:
		width, height = ScaleToFit(source.width, source.height, maxWidth, maxHeight)
	case widthExceeds:
		width = maxWidth
		height = scaleAxis(width, source.height, source.width)
	case heightExceeds:
		height = maxHeight
		width = scaleAxis(height, source.width, source.height)
	default:
		return source, nil
	}

	return SizeOf(atLeastOne(width), atLeastOne(height)), nil
}

// scaleAxis computes floor(value * numerator / denominator) without
// floating point drift.
func scaleAxis(value int, numerator int, denominator int) int {
	if denominator == 0 {
		return 0
	}
	return int(int64(value) * int64(numerator) / int64(denominator))
}

func atLeastOne(value int) int {
	if value < 1 {
		return 1
	}
	return value
}
