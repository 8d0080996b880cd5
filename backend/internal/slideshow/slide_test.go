package slideshow

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/slideshow/api/apitype"
)

func newImage(width int, height int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

func newSurfaces(t *testing.T, containerSize apitype.Size) *Surfaces {
	surfaces := NewSurfaces()
	_, err := surfaces.Register(apitype.CardSurface, apitype.SizeOf(0, 0))
	require.Nil(t, err)
	_, err = surfaces.Register(apitype.ShowSurface, containerSize)
	require.Nil(t, err)
	return surfaces
}

func TestSlide_RenderFitsToContainer(t *testing.T) {
	a := require.New(t)

	surfaces := newSurfaces(t, apitype.SizeOf(200, 100))
	sut := NewSlide(newImage(400, 400), apitype.CardSurface, apitype.ShowSurface)

	rendered, size, err := sut.Render(surfaces)
	a.Nil(err)
	a.Equal(apitype.SizeOf(100, 100), size)
	a.Equal(size, apitype.SizeOfImage(rendered))

	parent, _ := surfaces.Surface(apitype.CardSurface)
	a.Equal(size, parent.PreferredSize())
	a.Equal(apitype.SizeOf(400, 400), sut.CurrentSize())
}

func TestSlide_RenderFollowsContainerSize(t *testing.T) {
	a := require.New(t)

	surfaces := newSurfaces(t, apitype.SizeOf(200, 200))
	sut := NewSlide(newImage(400, 300), apitype.CardSurface, apitype.ShowSurface)

	_, size, err := sut.Render(surfaces)
	a.Nil(err)
	a.Equal(apitype.SizeOf(200, 150), size)

	a.Nil(surfaces.Resize(apitype.ShowSurface, apitype.SizeOf(1000, 1000)))
	rendered, size, err := sut.Render(surfaces)
	a.Nil(err)
	a.Equal(apitype.SizeOf(400, 300), size)
	a.Same(sut.Image(), rendered)

	parent, _ := surfaces.Surface(apitype.CardSurface)
	a.Equal(apitype.SizeOf(400, 300), parent.PreferredSize())
}

func TestSlide_RenderReusesScaledImage(t *testing.T) {
	a := require.New(t)

	surfaces := newSurfaces(t, apitype.SizeOf(100, 100))
	sut := NewSlide(newImage(400, 200), apitype.CardSurface, apitype.ShowSurface)

	first, _, err := sut.Render(surfaces)
	a.Nil(err)
	second, _, err := sut.Render(surfaces)
	a.Nil(err)
	a.Same(first, second)

	a.Nil(surfaces.Resize(apitype.ShowSurface, apitype.SizeOf(50, 50)))
	third, size, err := sut.Render(surfaces)
	a.Nil(err)
	a.NotSame(first, third)
	a.Equal(apitype.SizeOf(50, 25), size)

	sut.SetImage(newImage(200, 400))
	_, size, err = sut.Render(surfaces)
	a.Nil(err)
	a.Equal(apitype.SizeOf(25, 50), size)
}

func TestSlide_SetImage(t *testing.T) {
	a := assert.New(t)

	sut := NewSlide(newImage(10, 10), apitype.CardSurface, apitype.ShowSurface)
	id := sut.Id()
	replacement := newImage(20, 30)

	sut.SetImage(replacement)

	a.Same(replacement, sut.Image())
	a.Equal(apitype.SizeOf(20, 30), sut.CurrentSize())
	a.Equal(id, sut.Id())
}

func TestSlide_RenderUnknownSurface(t *testing.T) {
	a := assert.New(t)

	sut := NewSlide(newImage(10, 10), apitype.CardSurface, apitype.ShowSurface)
	_, _, err := sut.Render(NewSurfaces())
	a.True(errors.Is(err, apitype.ErrUnknownSurface))
}

func TestSurfaces_InvalidSize(t *testing.T) {
	a := assert.New(t)

	surfaces := NewSurfaces()
	_, err := surfaces.Register(apitype.ShowSurface, apitype.SizeOf(-1, 10))
	a.True(errors.Is(err, apitype.ErrInvalidDimension))

	_, err = surfaces.Register(apitype.ShowSurface, apitype.SizeOf(10, 10))
	a.Nil(err)
	a.True(errors.Is(surfaces.Resize(apitype.ShowSurface, apitype.SizeOf(10, -1)), apitype.ErrInvalidDimension))
	a.True(errors.Is(surfaces.Resize(apitype.CardSurface, apitype.SizeOf(10, 10)), apitype.ErrUnknownSurface))
}
