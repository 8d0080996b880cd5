package api

import (
	"image"

	"vincit.fi/slideshow/api/apitype"
)

type ErrorCommand struct {
	Message string
}

type UpdateProgressCommand struct {
	Name    string
	Current int
	Total   int
}

// UpdateSlideCommand describes the slide under the cursor. Index is -1
// and SlideId is NoSlide when the slideshow is empty.
type UpdateSlideCommand struct {
	SlideId         apitype.SlideId
	Index           int
	Total           int
	SourceSize      apitype.Size
	CanShowFullSize bool
	FullSize        bool
}

type FullscreenCommand struct {
	Fullscreen bool
}

type RecentCommand struct {
	Paths []string
}

// ThumbnailsCommand carries the overview strip. Icon is a square version
// of the current slide, nil when the slideshow is empty.
type ThumbnailsCommand struct {
	Thumbnails []image.Image
	Index      int
	Icon       image.Image
}

type Gui interface {
	SetCurrentSlide(*UpdateSlideCommand)
	SetFullscreen(*FullscreenCommand)
	SetRecent(*RecentCommand)
	SetThumbnails(*ThumbnailsCommand)
	UpdateProgress(*UpdateProgressCommand)
	ShowError(*ErrorCommand)
	Run() error
}
