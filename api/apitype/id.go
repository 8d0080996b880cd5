package apitype

import "github.com/google/uuid"

// SlideId identifies a slide independently of its pixels.
type SlideId string

// SurfaceId is a handle to an on-screen region owned by the controller.
type SurfaceId string

const (
	NoSlide SlideId = ""

	ShowSurface SurfaceId = "show"
	CardSurface SurfaceId = "card"
)

func NewSlideId() SlideId {
	return SlideId(uuid.New().String())
}

func (s SlideId) IsValid() bool {
	return s != NoSlide
}

func (s SlideId) String() string {
	if s.IsValid() {
		return "Slide{" + string(s) + "}"
	}
	return "Slide<invalid>"
}
