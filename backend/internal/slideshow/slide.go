package slideshow

import (
	"image"
	"time"

	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/backend/internal/imagetools"
	"vincit.fi/slideshow/common/logger"
)

// Slide holds one image and the handles of the surface it reports its
// preferred size to and the surface whose size bounds it.
type Slide struct {
	id        apitype.SlideId
	img       image.Image
	parent    apitype.SurfaceId
	container apitype.SurfaceId

	scaled      image.Image
	scaledBound apitype.Size
}

func NewSlide(img image.Image, parent apitype.SurfaceId, container apitype.SurfaceId) *Slide {
	return &Slide{
		id:        apitype.NewSlideId(),
		img:       img,
		parent:    parent,
		container: container,
	}
}

func (s *Slide) Id() apitype.SlideId {
	return s.id
}

func (s *Slide) Image() image.Image {
	return s.img
}

// SetImage replaces the image. The next Render picks it up.
func (s *Slide) SetImage(img image.Image) {
	s.img = img
	s.scaled = nil
}

// CurrentSize is the size of the held image before fitting.
func (s *Slide) CurrentSize() apitype.Size {
	return apitype.SizeOfImage(s.img)
}

// Render fits the image to the current container size and sets the fitted
// size as the preferred size of the parent. The returned image is drawn at
// the container origin.
func (s *Slide) Render(surfaces SurfaceResolver) (image.Image, apitype.Size, error) {
	container, err := surfaces.Surface(s.container)
	if err != nil {
		return nil, apitype.Size{}, err
	}
	parent, err := surfaces.Surface(s.parent)
	if err != nil {
		return nil, apitype.Size{}, err
	}

	rendered, err := s.scaledTo(container.Size())
	if err != nil {
		return nil, apitype.Size{}, err
	}

	preferredSize := apitype.SizeOfImage(rendered)
	parent.SetPreferredSize(preferredSize)
	return rendered, preferredSize, nil
}

// scaledTo reuses the previous result while the bound stays the same.
func (s *Slide) scaledTo(bound apitype.Size) (image.Image, error) {
	if s.scaled != nil && s.scaledBound == bound {
		logger.Trace.Print("Use cached scaled image")
		return s.scaled, nil
	}

	startTime := time.Now()
	scaled, err := imagetools.Fit(s.img, bound.Width(), bound.Height())
	if err != nil {
		return nil, err
	}
	s.scaled = scaled
	s.scaledBound = bound
	logger.Trace.Printf("%s: Scaled to %s in %s", s.id, bound, time.Since(startTime))
	return scaled, nil
}
