package slideshow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_NextStopsAtLast(t *testing.T) {
	a := assert.New(t)

	sut := NewCursor(false)
	sut.Reset(3)
	a.Equal(0, sut.Index())

	sut.Next()
	sut.Next()
	sut.Next()
	a.Equal(2, sut.Index())

	sut.Next()
	a.Equal(2, sut.Index())
}

func TestCursor_PreviousStopsAtFirst(t *testing.T) {
	a := assert.New(t)

	sut := NewCursor(false)
	sut.Reset(3)

	sut.Previous()
	a.Equal(0, sut.Index())

	sut.Last()
	a.Equal(2, sut.Index())
	sut.Previous()
	a.Equal(1, sut.Index())
	sut.First()
	a.Equal(0, sut.Index())
}

func TestCursor_Wrap(t *testing.T) {
	a := assert.New(t)

	sut := NewCursor(true)
	sut.Reset(3)

	sut.Previous()
	a.Equal(2, sut.Index())
	sut.Next()
	a.Equal(0, sut.Index())

	sut.SetWrap(false)
	sut.Previous()
	a.Equal(0, sut.Index())
}

func TestCursor_Empty(t *testing.T) {
	a := assert.New(t)

	sut := NewCursor(true)
	a.Equal(-1, sut.Index())

	sut.Next()
	sut.Previous()
	sut.First()
	sut.Last()
	a.Equal(-1, sut.Index())
	a.False(sut.MoveTo(0))
}

func TestCursor_ResetClamps(t *testing.T) {
	a := assert.New(t)

	sut := NewCursor(false)
	sut.Reset(5)
	a.True(sut.MoveTo(4))

	sut.Reset(3)
	a.Equal(2, sut.Index())

	sut.Reset(0)
	a.Equal(-1, sut.Index())

	sut.Reset(2)
	a.Equal(0, sut.Index())
	a.False(sut.MoveTo(2))
	a.True(sut.MoveTo(1))
	a.Equal(1, sut.Index())
}
