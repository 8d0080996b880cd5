package slideshowfile

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/common/logger"
)

const Extension = ".slider"

const filePermissions = 0644

// EnsureExtension appends the slideshow extension unless path already has it.
func EnsureExtension(path string) string {
	if strings.EqualFold(filepath.Ext(path), Extension) {
		return path
	}
	return path + Extension
}

type FileStore struct{}

func NewFileStore() *FileStore {
	return &FileStore{}
}

// Save writes images to path and returns the path actually written. The
// target is replaced only after the whole slideshow has been written.
func (s *FileStore) Save(path string, images []image.Image) (string, error) {
	path = EnsureExtension(path)
	logger.Info.Printf("Saving %d images to '%s'", len(images), path)

	pending, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(filePermissions),
		renameio.WithExistingPermissions())
	if err != nil {
		return path, apitype.NewPersistenceFailure(apitype.SaveOp, path, err)
	}
	defer pending.Cleanup()

	if err := Encode(pending, images); err != nil {
		return path, apitype.NewPersistenceFailure(apitype.SaveOp, path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return path, apitype.NewPersistenceFailure(apitype.SaveOp, path, err)
	}

	logger.Debug.Printf("Saved '%s'", path)
	return path, nil
}

func (s *FileStore) Load(path string) ([]image.Image, error) {
	logger.Info.Printf("Loading slideshow '%s'", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, apitype.NewPersistenceFailure(apitype.LoadOp, path, err)
	}
	defer file.Close()

	images, err := Decode(file)
	if err != nil {
		return nil, apitype.NewPersistenceFailure(apitype.LoadOp, path, err)
	}

	logger.Debug.Printf("Loaded %d images from '%s'", len(images), path)
	return images, nil
}
