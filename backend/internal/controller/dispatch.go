package controller

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/common/logger"
)

var ErrInvalidArguments = errors.New("invalid arguments")

// Action handles one named GUI action.
type Action func(s *Controller, args []string) error

var actions = map[string]Action{
	"new": func(s *Controller, args []string) error {
		s.NewSlideshow()
		return nil
	},
	"add": func(s *Controller, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: add needs at least one path", ErrInvalidArguments)
		}
		s.AddImages(args)
		return nil
	},
	"remove": func(s *Controller, args []string) error {
		return s.RemoveCurrent()
	},
	"first":    navigation((*Controller).First),
	"previous": navigation((*Controller).Previous),
	"next":     navigation((*Controller).Next),
	"last":     navigation((*Controller).Last),
	"goto": func(s *Controller, args []string) error {
		values, err := intArgs("goto", args, 1)
		if err != nil {
			return err
		}
		// Slides are numbered from 1 for the user
		s.MoveTo(values[0] - 1)
		return nil
	},
	"fullscreen": func(s *Controller, args []string) error {
		s.ToggleFullscreen()
		return nil
	},
	"fullsize": func(s *Controller, args []string) error {
		return s.ToggleFullSize()
	},
	"resize": func(s *Controller, args []string) error {
		values, err := intArgs("resize", args, 2)
		if err != nil {
			return err
		}
		return s.ResizeContainer(values[0], values[1])
	},
	"save": func(s *Controller, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		s.SaveSlideshow(path)
		return nil
	},
	"load": func(s *Controller, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: load needs a path", ErrInvalidArguments)
		}
		s.LoadSlideshow(args[0])
		return nil
	},
	"thumbnails": func(s *Controller, args []string) error {
		if len(args) == 0 {
			s.RequestThumbnails(0)
			return nil
		}
		values, err := intArgs("thumbnails", args, 1)
		if err != nil {
			return err
		}
		if err := apitype.ValidateSize(values[0], values[0]); err != nil {
			return err
		}
		s.RequestThumbnails(values[0])
		return nil
	},
	"recent": func(s *Controller, args []string) error {
		s.RequestRecent()
		return nil
	},
	"wrap": func(s *Controller, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: wrap needs on or off", ErrInvalidArguments)
		}
		switch args[0] {
		case "on":
			s.SetWrap(true)
		case "off":
			s.SetWrap(false)
		default:
			return fmt.Errorf("%w: wrap needs on or off", ErrInvalidArguments)
		}
		return nil
	},
}

func navigation(move func(*Controller)) Action {
	return func(s *Controller, args []string) error {
		move(s)
		return nil
	}
}

func intArgs(action string, args []string, count int) ([]int, error) {
	if len(args) != count {
		return nil, fmt.Errorf("%w: %s needs %d numbers", ErrInvalidArguments, action, count)
	}
	values := make([]int, 0, count)
	for _, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidArguments, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func (s *Controller) Dispatch(action string, args []string) error {
	handler, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w: '%s'", apitype.ErrUnknownCommand, action)
	}
	logger.Debug.Printf("Dispatching '%s' %v", action, args)
	return handler(s, args)
}

func (s *Controller) Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
