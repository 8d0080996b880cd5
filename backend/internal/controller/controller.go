package controller

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/backend/internal/imagetools"
	"vincit.fi/slideshow/backend/internal/slideshow"
	"vincit.fi/slideshow/backend/internal/task"
	"vincit.fi/slideshow/common"
	"vincit.fi/slideshow/common/logger"
)

var ErrNoPath = errors.New("slideshow has not been saved yet")

type Controller struct {
	state       *AppState
	sender      api.Sender
	reporter    api.ProgressReporter
	importer    api.ImageImporter
	store       api.SlideshowStore
	recent      api.RecentStore
	runner      task.Runner
	recentLimit int

	thumbnailSize int
	iconSize      int

	api.SlideshowService
}

// NewController creates the controller. recent may be nil in which case
// recent slideshows are not tracked.
func NewController(config *common.Config, sender api.Sender, importer api.ImageImporter,
	store api.SlideshowStore, recent api.RecentStore, runner task.Runner) (*Controller, error) {
	state, err := newAppState(apitype.SizeOf(config.Window.Width, config.Window.Height), config.Navigation.Wrap)
	if err != nil {
		return nil, err
	}
	return &Controller{
		state:       state,
		sender:      sender,
		reporter:    api.NewSenderProgressReporter(sender),
		importer:    importer,
		store:       store,
		recent:      recent,
		runner:      runner,
		recentLimit: config.Recent.Limit,

		thumbnailSize: config.Display.ThumbnailSize,
		iconSize:      config.Display.IconSize,
	}, nil
}

func (s *Controller) NewSlideshow() {
	logger.Info.Print("New slideshow")
	s.state.replaceSlides(nil)
	s.state.path = ""
	s.sendCurrentSlide()
}

func (s *Controller) AddImages(paths []string) {
	s.runner.Go("import", func() {
		expanded, err := s.importer.ExpandPaths(paths)
		if err != nil {
			s.sender.SendError("Could not read images", err)
			return
		}
		s.sender.SendCommandToTopic(api.ImagesImported, s.importer.Import(expanded, s.reporter))
	}, s.onTaskPanic)
}

// SetImportResult adds the imported images and moves to the last one.
func (s *Controller) SetImportResult(command *api.ImportResultCommand) {
	for _, imported := range command.Images {
		s.state.slideshow.Add(s.newSlide(imported.Image))
	}
	if len(command.Images) > 0 {
		s.state.cursor.Reset(s.state.slideshow.Len())
		s.state.cursor.Last()
		s.state.fullSize = false
	}

	if len(command.Failures) > 0 {
		failed := make([]string, 0, len(command.Failures))
		for _, failure := range command.Failures {
			failed = append(failed, failure.Path)
		}
		s.sender.SendError(
			fmt.Sprintf("Could not add %d of %d images", len(command.Failures), len(command.Failures)+len(command.Images)),
			errors.New(strings.Join(failed, "\n")))
	}
	s.sendCurrentSlide()
}

func (s *Controller) RemoveCurrent() error {
	slide := s.state.currentSlide()
	if slide == nil {
		return apitype.ErrNoSlide
	}
	s.state.slideshow.Remove(slide.Id())
	s.state.cursor.Reset(s.state.slideshow.Len())
	s.state.fullSize = false
	s.sendCurrentSlide()
	return nil
}

func (s *Controller) First() {
	s.navigate(s.state.cursor.First)
}

func (s *Controller) Previous() {
	s.navigate(s.state.cursor.Previous)
}

func (s *Controller) Next() {
	s.navigate(s.state.cursor.Next)
}

func (s *Controller) Last() {
	s.navigate(s.state.cursor.Last)
}

func (s *Controller) MoveTo(index int) {
	s.navigate(func() { s.state.cursor.MoveTo(index) })
}

func (s *Controller) SetWrap(wrap bool) {
	s.state.cursor.SetWrap(wrap)
}

func (s *Controller) navigate(move func()) {
	before := s.state.cursor.Index()
	move()
	if before != s.state.cursor.Index() {
		s.state.fullSize = false
	}
	s.sendCurrentSlide()
}

func (s *Controller) ToggleFullscreen() {
	s.state.fullscreen = !s.state.fullscreen
	s.sender.SendCommandToTopic(api.FullscreenChanged, &api.FullscreenCommand{Fullscreen: s.state.fullscreen})
}

// ToggleFullSize switches between the fitted and the unscaled image. Full
// size is only available when the image does not fit the container.
func (s *Controller) ToggleFullSize() error {
	slide := s.state.currentSlide()
	if slide == nil {
		return apitype.ErrNoSlide
	}
	if s.state.fullSize {
		s.state.fullSize = false
	} else if s.canShowFullSize(slide) {
		s.state.fullSize = true
	}
	s.sendCurrentSlide()
	return nil
}

func (s *Controller) ResizeContainer(width int, height int) error {
	if err := s.state.surfaces.Resize(apitype.ShowSurface, apitype.SizeOf(width, height)); err != nil {
		return err
	}
	if slide := s.state.currentSlide(); slide != nil && !s.canShowFullSize(slide) {
		s.state.fullSize = false
	}
	s.sendCurrentSlide()
	return nil
}

// Render renders the current slide for the current container size.
func (s *Controller) Render() (image.Image, apitype.Size, error) {
	slide := s.state.currentSlide()
	if slide == nil {
		return nil, apitype.Size{}, apitype.ErrNoSlide
	}
	if s.state.fullSize {
		parent, err := s.state.surfaces.Surface(apitype.CardSurface)
		if err != nil {
			return nil, apitype.Size{}, err
		}
		parent.SetPreferredSize(slide.CurrentSize())
		return slide.Image(), slide.CurrentSize(), nil
	}
	return slide.Render(s.state.surfaces)
}

// RequestThumbnails creates the overview strip and the icon of the current
// slide. A size of 0 uses the configured thumbnail size.
func (s *Controller) RequestThumbnails(size int) {
	if size == 0 {
		size = s.thumbnailSize
	}
	images := s.state.slideshow.Images()
	index := s.state.cursor.Index()
	iconSize := s.iconSize
	s.runner.Go("thumbnails", func() {
		thumbnails, err := imagetools.Thumbnails(images, size)
		if err != nil {
			s.sender.SendError("Could not create thumbnails", err)
			return
		}
		command := &api.ThumbnailsCommand{
			Thumbnails: thumbnails,
			Index:      index,
		}
		if index >= 0 {
			if command.Icon, err = imagetools.IconFit(images[index], iconSize); err != nil {
				s.sender.SendError("Could not create icon", err)
				return
			}
		}
		s.sender.SendCommandToTopic(api.ThumbnailsUpdated, command)
	}, s.onTaskPanic)
}

// SaveSlideshow saves to path or, if path is empty, to where the slideshow
// was last saved or loaded from.
func (s *Controller) SaveSlideshow(path string) {
	if path == "" {
		path = s.state.path
	}
	if path == "" {
		s.sender.SendError("Could not save slideshow", ErrNoPath)
		return
	}

	images := s.state.slideshow.Images()
	s.runner.Go("save", func() {
		s.reporter.Update("save", 0, 1)
		written, err := s.store.Save(path, images)
		s.reporter.Update("save", 1, 1)
		s.sender.SendCommandToTopic(api.SlideshowSaved, &api.SlideshowSavedCommand{Path: written, Err: err})
	}, s.onTaskPanic)
}

func (s *Controller) SetSaveResult(command *api.SlideshowSavedCommand) {
	if command.Err != nil {
		s.sender.SendError("Could not save slideshow", command.Err)
		return
	}
	logger.Info.Printf("Slideshow saved to '%s'", command.Path)
	s.state.path = command.Path
	s.rememberRecent(command.Path)
}

func (s *Controller) LoadSlideshow(path string) {
	s.runner.Go("load", func() {
		s.reporter.Update("load", 0, 1)
		images, err := s.store.Load(path)
		s.reporter.Update("load", 1, 1)
		s.sender.SendCommandToTopic(api.SlideshowLoaded, &api.SlideshowLoadedCommand{Path: path, Images: images, Err: err})
	}, s.onTaskPanic)
}

// SetLoadedSlideshow replaces the slideshow. On failure the current
// slideshow is kept as it was.
func (s *Controller) SetLoadedSlideshow(command *api.SlideshowLoadedCommand) {
	if command.Err != nil {
		if errors.Is(command.Err, os.ErrNotExist) {
			s.forgetRecent(command.Path)
		}
		s.sender.SendError("Could not load slideshow", command.Err)
		return
	}

	slides := make([]*slideshow.Slide, 0, len(command.Images))
	for _, img := range command.Images {
		slides = append(slides, s.newSlide(img))
	}
	s.state.replaceSlides(slides)
	s.state.path = command.Path
	logger.Info.Printf("Loaded %d slides from '%s'", len(slides), command.Path)

	s.rememberRecent(command.Path)
	s.sendCurrentSlide()
}

func (s *Controller) RequestRecent() {
	paths := []string{}
	if s.recent != nil {
		recent, err := s.recent.GetRecent(s.recentLimit)
		if err != nil {
			s.sender.SendError("Could not read recent slideshows", err)
			return
		}
		paths = recent
	}
	s.sender.SendCommandToTopic(api.RecentUpdated, &api.RecentCommand{Paths: paths})
}

func (s *Controller) newSlide(img image.Image) *slideshow.Slide {
	return slideshow.NewSlide(img, apitype.CardSurface, apitype.ShowSurface)
}

// canShowFullSize tells if fitting would shrink the slide. It follows FitSize
// so a zero container axis does not limit the slide.
func (s *Controller) canShowFullSize(slide *slideshow.Slide) bool {
	source := slide.CurrentSize()
	fitted, err := apitype.FitSize(source, s.state.containerSize())
	return err == nil && fitted != source
}

func (s *Controller) rememberRecent(path string) {
	if s.recent == nil {
		return
	}
	if err := s.recent.Add(path); err != nil {
		logger.Warn.Printf("Could not remember '%s': %s", path, err)
	}
}

func (s *Controller) forgetRecent(path string) {
	if s.recent == nil {
		return
	}
	if err := s.recent.Remove(path); err != nil {
		logger.Warn.Printf("Could not forget '%s': %s", path, err)
	}
}

func (s *Controller) sendCurrentSlide() {
	command := &api.UpdateSlideCommand{
		SlideId: apitype.NoSlide,
		Index:   s.state.cursor.Index(),
		Total:   s.state.slideshow.Len(),
	}
	if slide := s.state.currentSlide(); slide != nil {
		command.SlideId = slide.Id()
		command.SourceSize = slide.CurrentSize()
		command.CanShowFullSize = s.canShowFullSize(slide)
		command.FullSize = s.state.fullSize
	}
	s.sender.SendCommandToTopic(api.SlideChanged, command)
}

func (s *Controller) onTaskPanic(err error) {
	s.sender.SendError("Operation failed", err)
}
