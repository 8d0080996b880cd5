package slideshowfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// File layout, little endian:
//
//	magic "SLDR" | version uint16 | count uint32 | count * (length uint32 | PNG bytes)
const (
	Version = uint16(1)

	maxImageCount = 1 << 16
	maxImageBytes = 1 << 30
)

var (
	magic = [4]byte{'S', 'L', 'D', 'R'}

	ErrNotSlideshow       = errors.New("not a slideshow file")
	ErrUnsupportedVersion = errors.New("unsupported slideshow version")
	ErrCorrupt            = errors.New("corrupt slideshow file")
)

type header struct {
	Magic   [4]byte
	Version uint16
	Count   uint32
}

func Encode(writer io.Writer, images []image.Image) error {
	if len(images) > maxImageCount {
		return fmt.Errorf("too many images: %d", len(images))
	}

	buffered := bufio.NewWriter(writer)
	if err := binary.Write(buffered, binary.LittleEndian, header{
		Magic:   magic,
		Version: Version,
		Count:   uint32(len(images)),
	}); err != nil {
		return err
	}

	encoded := &bytes.Buffer{}
	for i, img := range images {
		encoded.Reset()
		if err := imaging.Encode(encoded, img, imaging.PNG); err != nil {
			return fmt.Errorf("could not encode image %d: %w", i, err)
		}
		if err := binary.Write(buffered, binary.LittleEndian, uint32(encoded.Len())); err != nil {
			return err
		}
		if _, err := buffered.Write(encoded.Bytes()); err != nil {
			return err
		}
	}
	return buffered.Flush()
}

func Decode(reader io.Reader) ([]image.Image, error) {
	buffered := bufio.NewReader(reader)

	var h header
	if err := binary.Read(buffered, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotSlideshow, err)
	}
	if h.Magic != magic {
		return nil, ErrNotSlideshow
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.Count > maxImageCount {
		return nil, fmt.Errorf("%w: image count %d", ErrCorrupt, h.Count)
	}

	images := make([]image.Image, 0, h.Count)
	for i := uint32(0); i < h.Count; i++ {
		var length uint32
		if err := binary.Read(buffered, binary.LittleEndian, &length); err != nil {
			return nil, fmt.Errorf("%w: image %d length: %s", ErrCorrupt, i, err)
		}
		if length > maxImageBytes {
			return nil, fmt.Errorf("%w: image %d is %d bytes", ErrCorrupt, i, length)
		}

		// The buffer grows with the data actually present, not the declared length
		var data bytes.Buffer
		n, err := io.CopyN(&data, buffered, int64(length))
		if err != nil {
			return nil, fmt.Errorf("%w: image %d: %d of %d bytes: %s", ErrCorrupt, i, n, length, err)
		}
		img, err := imaging.Decode(&data)
		if err != nil {
			return nil, fmt.Errorf("%w: image %d: %s", ErrCorrupt, i, err)
		}
		images = append(images, img)
	}

	if _, err := buffered.ReadByte(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrCorrupt)
	}
	return images, nil
}
