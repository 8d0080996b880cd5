package api

import (
	"image"

	"vincit.fi/slideshow/api/apitype"
)

type ImportedImage struct {
	Path  string
	Image image.Image
}

// ImportResultCommand carries a finished batch import. Failures never
// prevent the successfully decoded images from being added.
type ImportResultCommand struct {
	Images   []*ImportedImage
	Failures []*apitype.DecodeFailure
}

type SlideshowLoadedCommand struct {
	Path   string
	Images []image.Image
	Err    error
}

type SlideshowSavedCommand struct {
	Path string
	Err  error
}

type ImageImporter interface {
	Import(paths []string, reporter ProgressReporter) *ImportResultCommand
	ExpandPaths(paths []string) ([]string, error)
}

type SlideshowStore interface {
	Save(path string, images []image.Image) (string, error)
	Load(path string) ([]image.Image, error)
}

type RecentStore interface {
	Add(path string) error
	GetRecent(limit int) ([]string, error)
	Remove(path string) error
}

type SlideshowService interface {
	NewSlideshow()
	AddImages(paths []string)
	RemoveCurrent() error

	First()
	Previous()
	Next()
	Last()
	MoveTo(index int)

	ToggleFullscreen()
	ToggleFullSize() error
	ResizeContainer(width int, height int) error
	Render() (image.Image, apitype.Size, error)
	RequestThumbnails(size int)

	SaveSlideshow(path string)
	LoadSlideshow(path string)
	RequestRecent()

	SetImportResult(*ImportResultCommand)
	SetLoadedSlideshow(*SlideshowLoadedCommand)
	SetSaveResult(*SlideshowSavedCommand)

	Dispatch(action string, args []string) error
	Actions() []string
}
