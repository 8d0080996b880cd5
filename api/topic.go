package api

type Topic string

const (
	SlideChanged      Topic = "slide-changed"
	FullscreenChanged Topic = "fullscreen-changed"

	ImagesImported    Topic = "images-imported"
	SlideshowLoaded   Topic = "slideshow-loaded"
	SlideshowSaved    Topic = "slideshow-saved"
	RecentUpdated     Topic = "recent-updated"
	ThumbnailsUpdated Topic = "thumbnails-updated"

	ProcessStatusUpdated Topic = "process-status-updated"
	ShowError            Topic = "show-error"
)
