package backend

import (
	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/backend/internal/controller"
	"vincit.fi/slideshow/backend/internal/database"
	"vincit.fi/slideshow/backend/internal/imageloader"
	"vincit.fi/slideshow/backend/internal/slideshowfile"
	"vincit.fi/slideshow/backend/internal/task"
	"vincit.fi/slideshow/common"
	"vincit.fi/slideshow/common/event"
	"vincit.fi/slideshow/common/logger"
)

type Stores struct {
	SlideshowStore api.SlideshowStore
	// RecentStore is nil when the home directory database is not available
	RecentStore api.RecentStore
	homeDirDb   *database.Database
}

func (s *Stores) Close() {
	if s.homeDirDb != nil {
		s.homeDirDb.Close()
	}
}

type Services struct {
	ImageImporter    api.ImageImporter
	SlideshowService api.SlideshowService
	runner           *task.AsyncRunner
}

type Brokers struct {
	Broker    *event.Broker
	IdleQueue *event.IdleQueue
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	idleQueue := event.NewIdleQueue(eventBusQueueSize)
	brokers := &Brokers{
		Broker:    event.InitBus(eventBusQueueSize, idleQueue),
		IdleQueue: idleQueue,
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the database for recent slideshows in the user's
// home folder. The viewer works without it, only recent slideshows are
// not remembered.
func InitializeStores(databaseFileName string) *Stores {
	logger.Debug.Printf("Initialize stores...")
	stores := &Stores{
		SlideshowStore: slideshowfile.NewFileStore(),
	}

	homeDirDb := database.NewDatabase()
	if err := homeDirDb.InitializeForDirectory(common.UserHomeDir(), databaseFileName); err != nil {
		logger.Warn.Printf("Could not open database, recent slideshows are not available: %s", err)
		return stores
	}
	if _, err := homeDirDb.Migrate(); err != nil {
		logger.Warn.Printf("Could not migrate database, recent slideshows are not available: %s", err)
		homeDirDb.Close()
		return stores
	}

	stores.homeDirDb = homeDirDb
	stores.RecentStore = database.NewRecentStore(homeDirDb)
	logger.Debug.Printf("Stores initialized")
	return stores
}

func InitializeServices(config *common.Config, stores *Stores, brokers *Brokers) (*Services, error) {
	logger.Debug.Printf("Initialize services...")
	importer := imageloader.NewImporter()
	runner := task.NewAsyncRunner()

	service, err := controller.NewController(config, brokers.Broker, importer, stores.SlideshowStore, stores.RecentStore, runner)
	if err != nil {
		return nil, err
	}

	logger.Debug.Printf("Services initialized")
	return &Services{
		ImageImporter:    importer,
		SlideshowService: service,
		runner:           runner,
	}, nil
}

// ConnectTopics routes every topic to the service or gui method handling
// it. All of them run on the thread that drains the idle queue.
func ConnectTopics(brokers *Brokers, services *Services, gui api.Gui) {
	broker := brokers.Broker
	service := services.SlideshowService

	broker.ConnectToGui(api.ImagesImported, service.SetImportResult)
	broker.ConnectToGui(api.SlideshowLoaded, service.SetLoadedSlideshow)
	broker.ConnectToGui(api.SlideshowSaved, service.SetSaveResult)

	broker.ConnectToGui(api.SlideChanged, gui.SetCurrentSlide)
	broker.ConnectToGui(api.FullscreenChanged, gui.SetFullscreen)
	broker.ConnectToGui(api.RecentUpdated, gui.SetRecent)
	broker.ConnectToGui(api.ThumbnailsUpdated, gui.SetThumbnails)
	broker.ConnectToGui(api.ProcessStatusUpdated, gui.UpdateProgress)
	broker.ConnectToGui(api.ShowError, gui.ShowError)
}

// WaitIdle blocks until no background task is running and all of their
// results are on the idle queue. Callbacks run from the queue may start new
// tasks, so callers alternate WaitIdle and RunPending until nothing runs.
func WaitIdle(brokers *Brokers, services *Services) {
	services.runner.Wait()
	brokers.Broker.WaitDelivered()
}

// Close closes every topic ConnectTopics opened.
func (s *Brokers) Close() {
	s.Broker.Close(
		api.ImagesImported, api.SlideshowLoaded, api.SlideshowSaved,
		api.SlideChanged, api.FullscreenChanged, api.RecentUpdated,
		api.ThumbnailsUpdated, api.ProcessStatusUpdated, api.ShowError)
}
