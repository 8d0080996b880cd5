package imageloader

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
	"vincit.fi/slideshow/api"
	"vincit.fi/slideshow/api/apitype"
	"vincit.fi/slideshow/common/logger"
)

const progressName = "import"

var (
	supportedFileEndings = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
		".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
	}
)

func IsSupported(path string) bool {
	return supportedFileEndings[strings.ToLower(filepath.Ext(path))]
}

type Importer struct {
	api.ImageImporter
}

func NewImporter() api.ImageImporter {
	logger.Debug.Printf("Initializing image importer...")
	return &Importer{}
}

// ExpandPaths replaces directories with the supported image files in them,
// sorted by name. Files are kept as given so that unreadable ones are
// reported by Import.
func (s *Importer) ExpandPaths(paths []string) ([]string, error) {
	var expanded []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			expanded = append(expanded, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, entry := range entries {
			if !entry.IsDir() && IsSupported(entry.Name()) {
				files = append(files, filepath.Join(path, entry.Name()))
			}
		}
		sort.Strings(files)
		logger.Debug.Printf("Found %d images in '%s'", len(files), path)
		expanded = append(expanded, files...)
	}
	return expanded, nil
}

// Import decodes every path. A file that cannot be decoded is recorded as
// a failure and the batch continues.
func (s *Importer) Import(paths []string, reporter api.ProgressReporter) *api.ImportResultCommand {
	result := &api.ImportResultCommand{
		Images:   []*api.ImportedImage{},
		Failures: []*apitype.DecodeFailure{},
	}

	total := len(paths)
	for i, path := range paths {
		if reporter != nil {
			reporter.Update(progressName, i, total)
		}

		if img, err := LoadImage(path); err != nil {
			logger.Warn.Printf("Skipping '%s': %s", path, err)
			result.Failures = append(result.Failures, apitype.NewDecodeFailure(path, err))
		} else {
			result.Images = append(result.Images, &api.ImportedImage{Path: path, Image: img})
		}
	}
	if reporter != nil {
		reporter.Update(progressName, total, total)
	}

	logger.Info.Printf("Imported %d images, %d failed", len(result.Images), len(result.Failures))
	return result
}

// LoadImage decodes a single file and applies its EXIF orientation.
func LoadImage(path string) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img = nil
			err = fmt.Errorf("decoder failed: %v", r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoded, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	orientation, exifErr := apitype.ReadExifOrientation(bytes.NewReader(data))
	if exifErr != nil {
		logger.Trace.Printf("No EXIF orientation in '%s': %s", path, exifErr)
	}
	rotation, flipped := apitype.ExifOrientationToAngleAndFlip(orientation)
	return apitype.ExifRotateImage(decoded, rotation, flipped), nil
}
