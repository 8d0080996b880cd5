package controller

import (
	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/backend/internal/slideshow"
)

// AppState is everything the viewer shows. Only the GUI thread touches it.
type AppState struct {
	slideshow  *slideshow.Slideshow
	cursor     *slideshow.Cursor
	surfaces   *slideshow.Surfaces
	fullscreen bool
	fullSize   bool
	path       string
}

func newAppState(containerSize apitype.Size, wrap bool) (*AppState, error) {
	surfaces := slideshow.NewSurfaces()
	if _, err := surfaces.Register(apitype.CardSurface, apitype.SizeOf(0, 0)); err != nil {
		return nil, err
	}
	if _, err := surfaces.Register(apitype.ShowSurface, containerSize); err != nil {
		return nil, err
	}
	return &AppState{
		slideshow: slideshow.NewSlideshow(),
		cursor:    slideshow.NewCursor(wrap),
		surfaces:  surfaces,
	}, nil
}

func (s *AppState) currentSlide() *slideshow.Slide {
	return s.slideshow.At(s.cursor.Index())
}

func (s *AppState) containerSize() apitype.Size {
	if container, err := s.surfaces.Surface(apitype.ShowSurface); err == nil {
		return container.Size()
	}
	return apitype.Size{}
}

func (s *AppState) replaceSlides(slides []*slideshow.Slide) {
	s.slideshow.Clear()
	s.slideshow.AddAll(slides)
	s.cursor.Reset(0)
	s.cursor.Reset(s.slideshow.Len())
	s.fullSize = false
}
