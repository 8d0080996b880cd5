package backend

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/backend/internal/slideshowfile"
	"vincit.fi/slideshow/common"
)

type RecordingGui struct {
	api.Gui

	slides []*api.UpdateSlideCommand
	errors []string
}

func (s *RecordingGui) SetCurrentSlide(command *api.UpdateSlideCommand) {
	s.slides = append(s.slides, command)
}

func (s *RecordingGui) SetFullscreen(*api.FullscreenCommand) {}
func (s *RecordingGui) SetRecent(*api.RecentCommand) {}
func (s *RecordingGui) SetThumbnails(*api.ThumbnailsCommand) {}
func (s *RecordingGui) UpdateProgress(*api.UpdateProgressCommand) {}

func (s *RecordingGui) ShowError(command *api.ErrorCommand) {
	s.errors = append(s.errors, command.Message)
}

func (s *RecordingGui) lastSlide() *api.UpdateSlideCommand {
	if len(s.slides) == 0 {
		return nil
	}
	return s.slides[len(s.slides)-1]
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func writeImage(t *testing.T, path string, width int, height int) {
	img := imaging.New(width, height, color.NRGBA{R: 200, A: 255})
	require.Nil(t, imaging.Save(img, path))
}

func TestBackend_ImportAndSaveRoundTrip(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "a.png"), 40, 30)
	writeImage(t, filepath.Join(dir, "b.png"), 30, 40)

	config := common.DefaultConfig()
	stores := &Stores{SlideshowStore: slideshowfile.NewFileStore()}
	brokers := InitializeEventBrokers(config.Events.QueueSize)
	defer brokers.Close()
	services, err := InitializeServices(config, stores, brokers)
	r.Nil(err)

	gui := &RecordingGui{}
	ConnectTopics(brokers, services, gui)
	service := services.SlideshowService

	waitFor := func(condition func() bool) {
		r.Eventually(func() bool {
			brokers.IdleQueue.RunPending()
			return condition()
		}, 5*time.Second, 10*time.Millisecond)
	}

	service.AddImages([]string{dir})
	waitFor(func() bool {
		slide := gui.lastSlide()
		return slide != nil && slide.Total == 2
	})
	r.Equal(1, gui.lastSlide().Index)

	showPath := filepath.Join(dir, "show")
	service.SaveSlideshow(showPath)
	waitFor(func() bool {
		return fileExists(showPath + ".slider")
	})

	service.NewSlideshow()
	waitFor(func() bool {
		return gui.lastSlide().Total == 0
	})

	service.LoadSlideshow(showPath + ".slider")
	waitFor(func() bool {
		return gui.lastSlide().Total == 2
	})
	r.Equal(0, gui.lastSlide().Index)

	rendered, _, err := service.Render()
	r.Nil(err)
	r.Equal(image.Rect(0, 0, 40, 30), rendered.Bounds())
	r.Empty(gui.errors)
}

func TestBackend_ImportLargerThanQueueWhileGuiIsBusy(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	const images = 120
	for i := 0; i < images; i++ {
		writeImage(t, filepath.Join(dir, fmt.Sprintf("%03d.png", i)), 4, 3)
	}

	config := common.DefaultConfig()
	stores := &Stores{SlideshowStore: slideshowfile.NewFileStore()}
	brokers := InitializeEventBrokers(100)
	defer brokers.Close()
	services, err := InitializeServices(config, stores, brokers)
	r.Nil(err)

	gui := &RecordingGui{}
	ConnectTopics(brokers, services, gui)

	// Nothing drains the idle queue while the import runs
	services.SlideshowService.AddImages([]string{dir})
	WaitIdle(brokers, services)
	r.Greater(brokers.IdleQueue.Len(), 100)

	for brokers.IdleQueue.RunPending() > 0 {
		WaitIdle(brokers, services)
	}

	r.NotNil(gui.lastSlide())
	r.Equal(images, gui.lastSlide().Total)
	r.Equal(images-1, gui.lastSlide().Index)
	r.Empty(gui.errors)
}

func TestBackend_LoadFailureIsReported(t *testing.T) {
	r := require.New(t)

	config := common.DefaultConfig()
	stores := &Stores{SlideshowStore: slideshowfile.NewFileStore()}
	brokers := InitializeEventBrokers(config.Events.QueueSize)
	defer brokers.Close()
	services, err := InitializeServices(config, stores, brokers)
	r.Nil(err)

	gui := &RecordingGui{}
	ConnectTopics(brokers, services, gui)

	services.SlideshowService.LoadSlideshow(filepath.Join(t.TempDir(), "missing.slider"))
	r.Eventually(func() bool {
		brokers.IdleQueue.RunPending()
		return len(gui.errors) == 1
	}, 5*time.Second, 10*time.Millisecond)
	r.Contains(gui.errors[0], "Could not load slideshow")
}
