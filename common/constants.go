package common

import (
	"os"
	"os/user"
)

const (
	SlideshowDir     = ".slideshow"
	DatabaseFileName = "slideshow.db"
)

func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	if currentUser, err := user.Current(); err == nil {
		return currentUser.HomeDir
	}
	return "."
}
