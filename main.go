package main

import (
	"fmt"
	"os"
	"strings"

	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/backend"
	"vincit.fi/slideshow/common"
	"vincit.fi/slideshow/common/logger"
	"vincit.fi/slideshow/ui/console"
)

func main() {
	params, err := common.ParseParams(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger.Initialize(logger.StringToLogLevel(params.LogLevel()))
	logger.Info.Printf("Using configuration '%s'", params.ConfigPath())

	stores := backend.InitializeStores(common.DatabaseFileName)
	defer stores.Close()

	brokers := backend.InitializeEventBrokers(params.Config().Events.QueueSize)
	defer brokers.Close()

	services, err := backend.InitializeServices(params.Config(), stores, brokers)
	if err != nil {
		logger.Error.Fatal("Could not initialize services: ", err)
	}

	settle := func() { backend.WaitIdle(brokers, services) }
	gui := console.NewUi(services.SlideshowService, brokers.IdleQueue, settle, os.Stdin, os.Stdout)
	backend.ConnectTopics(brokers, services, gui)

	openPaths(services.SlideshowService, params.Paths())
	if err := gui.Run(); err != nil {
		logger.Error.Print("Could not read input: ", err)
	}
}

// openPaths loads a single slideshow file or adds everything else as images.
func openPaths(service api.SlideshowService, paths []string) {
	if len(paths) == 0 {
		return
	}
	if len(paths) == 1 && strings.HasSuffix(strings.ToLower(paths[0]), ".slider") {
		service.LoadSlideshow(paths[0])
	} else {
		service.AddImages(paths)
	}
}
