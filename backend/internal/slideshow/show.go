package slideshow

import (
	"image"

	"vincit.fi/slideshow/api/apitype"
)

// Slideshow is the ordered sequence of slides.
type Slideshow struct {
	slides []*Slide
}

func NewSlideshow() *Slideshow {
	return &Slideshow{}
}

func (s *Slideshow) Add(slide *Slide) {
	s.slides = append(s.slides, slide)
}

func (s *Slideshow) AddAll(slides []*Slide) {
	s.slides = append(s.slides, slides...)
}

// Remove removes the slide with the given id and returns its former index,
// or -1 if there was no such slide.
func (s *Slideshow) Remove(id apitype.SlideId) int {
	index := s.IndexOf(id)
	if index < 0 {
		return -1
	}
	s.slides = append(s.slides[:index], s.slides[index+1:]...)
	return index
}

func (s *Slideshow) Clear() {
	s.slides = nil
}

func (s *Slideshow) Len() int {
	return len(s.slides)
}

func (s *Slideshow) At(index int) *Slide {
	if index < 0 || index >= len(s.slides) {
		return nil
	}
	return s.slides[index]
}

func (s *Slideshow) IndexOf(id apitype.SlideId) int {
	for i, slide := range s.slides {
		if slide.Id() == id {
			return i
		}
	}
	return -1
}

func (s *Slideshow) Slides() []*Slide {
	slides := make([]*Slide, len(s.slides))
	copy(slides, s.slides)
	return slides
}

func (s *Slideshow) Images() []image.Image {
	images := make([]image.Image, 0, len(s.slides))
	for _, slide := range s.slides {
		images = append(images, slide.Image())
	}
	return images
}
