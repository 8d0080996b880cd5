package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/common/event"
	"vincit.fi/slideshow/common/logger"
)

// Ui is a line based front end. Each input line is an action name
// followed by its arguments, e.g. "goto 3" or "save ~/holiday.slider".
type Ui struct {
	service api.SlideshowService
	idle    *event.IdleQueue
	settle  func()
	in      io.Reader
	out     io.Writer

	api.Gui
}

// NewUi creates the console. settle must block until no background work
// is running and its results are queued; nil means there is nothing to
// wait for.
func NewUi(service api.SlideshowService, idle *event.IdleQueue, settle func(), in io.Reader, out io.Writer) *Ui {
	if settle == nil {
		settle = func() {}
	}
	return &Ui{
		service: service,
		idle:    idle,
		settle:  settle,
		in:      in,
		out:     out,
	}
}

// Run reads commands until "exit", "quit" or end of input. Queued
// callbacks are run between commands so all state changes happen on
// this goroutine. At end of input the results of running tasks are
// still shown before returning.
func (s *Ui) Run() error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.printf("Type 'help' for available commands\n")
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				s.finishPending()
				return <-readErr
			}
			if s.handleLine(line) {
				return nil
			}
		case <-s.idle.Ready():
			s.idle.RunPending()
		}
	}
}

func (s *Ui) finishPending() {
	for {
		s.settle()
		if s.idle.RunPending() == 0 {
			return
		}
	}
}

func (s *Ui) handleLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	action, args := fields[0], fields[1:]
	switch action {
	case "exit", "quit":
		return true
	case "help":
		s.printf("Commands: %s, render, help, exit\n", strings.Join(s.service.Actions(), ", "))
	case "render":
		s.render()
	default:
		if err := s.service.Dispatch(action, args); err != nil {
			s.printf("Error: %s\n", err)
		}
	}
	return false
}

func (s *Ui) render() {
	img, size, err := s.service.Render()
	if err != nil {
		s.printf("Error: %s\n", err)
		return
	}
	logger.Trace.Printf("Rendered image with bounds %s", img.Bounds())
	s.printf("Rendered at %s\n", size)
}

func (s *Ui) SetCurrentSlide(command *api.UpdateSlideCommand) {
	if command.Index < 0 {
		s.printf("No slides\n")
		return
	}
	mode := "fitted"
	if command.FullSize {
		mode = "full size"
	} else if command.CanShowFullSize {
		mode = "fitted, full size available"
	}
	s.printf("Slide %d/%d %s (%s)\n", command.Index+1, command.Total, command.SourceSize, mode)
}

func (s *Ui) SetFullscreen(command *api.FullscreenCommand) {
	if command.Fullscreen {
		s.printf("Fullscreen on\n")
	} else {
		s.printf("Fullscreen off\n")
	}
}

func (s *Ui) SetRecent(command *api.RecentCommand) {
	if len(command.Paths) == 0 {
		s.printf("No recent slideshows\n")
		return
	}
	for i, path := range command.Paths {
		s.printf("%d. %s\n", i+1, path)
	}
}

func (s *Ui) SetThumbnails(command *api.ThumbnailsCommand) {
	s.printf("Created %d thumbnails\n", len(command.Thumbnails))
}

func (s *Ui) UpdateProgress(command *api.UpdateProgressCommand) {
	if command.Current == command.Total {
		s.printf("%s done\n", command.Name)
	} else {
		s.printf("%s %d/%d\n", command.Name, command.Current, command.Total)
	}
}

func (s *Ui) ShowError(command *api.ErrorCommand) {
	s.printf("Error: %s\n", command.Message)
}

func (s *Ui) printf(format string, a ...interface{}) {
	if _, err := fmt.Fprintf(s.out, format, a...); err != nil {
		logger.Warn.Printf("Could not write output: %s", err)
	}
}
