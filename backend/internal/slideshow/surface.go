package slideshow

import (
	"fmt"

	"vincit.fi/slideshow/api/apitype"
)

// Surface is an on-screen region. Size is what layout gave it and
// PreferredSize what its content asked for on the last render.
type Surface struct {
	id            apitype.SurfaceId
	size          apitype.Size
	preferredSize apitype.Size
}

func (s *Surface) Id() apitype.SurfaceId {
	return s.id
}

func (s *Surface) Size() apitype.Size {
	return s.size
}

func (s *Surface) PreferredSize() apitype.Size {
	return s.preferredSize
}

func (s *Surface) SetPreferredSize(size apitype.Size) {
	s.preferredSize = size
}

type SurfaceResolver interface {
	Surface(id apitype.SurfaceId) (*Surface, error)
}

// Surfaces owns every surface. Slides only keep ids and resolve them here.
type Surfaces struct {
	surfaces map[apitype.SurfaceId]*Surface
}

func NewSurfaces() *Surfaces {
	return &Surfaces{
		surfaces: map[apitype.SurfaceId]*Surface{},
	}
}

func (s *Surfaces) Register(id apitype.SurfaceId, size apitype.Size) (*Surface, error) {
	if err := apitype.ValidateSize(size.Width(), size.Height()); err != nil {
		return nil, err
	}
	surface := &Surface{id: id, size: size}
	s.surfaces[id] = surface
	return surface, nil
}

func (s *Surfaces) Resize(id apitype.SurfaceId, size apitype.Size) error {
	if err := apitype.ValidateSize(size.Width(), size.Height()); err != nil {
		return err
	}
	surface, err := s.Surface(id)
	if err != nil {
		return err
	}
	surface.size = size
	return nil
}

func (s *Surfaces) Surface(id apitype.SurfaceId) (*Surface, error) {
	if surface, ok := s.surfaces[id]; ok {
		return surface, nil
	}
	return nil, fmt.Errorf("%w: '%s'", apitype.ErrUnknownSurface, id)
}
