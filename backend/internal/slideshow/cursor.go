package slideshow

// Cursor is the position of the shown slide in a sequence of length
// slides. An empty sequence has index -1.
type Cursor struct {
	index  int
	length int
	wrap   bool
}

func NewCursor(wrap bool) *Cursor {
	return &Cursor{
		index: -1,
		wrap:  wrap,
	}
}

func (s *Cursor) SetWrap(wrap bool) {
	s.wrap = wrap
}

func (s *Cursor) Index() int {
	return s.index
}

// Reset updates the sequence length and clamps the index into it.
func (s *Cursor) Reset(length int) {
	s.length = length
	if length == 0 {
		s.index = -1
	} else if s.index < 0 {
		s.index = 0
	} else if s.index >= length {
		s.index = length - 1
	}
}

func (s *Cursor) First() {
	if s.length > 0 {
		s.index = 0
	}
}

func (s *Cursor) Last() {
	if s.length > 0 {
		s.index = s.length - 1
	}
}

func (s *Cursor) Next() {
	if s.length == 0 {
		return
	}
	if s.index < s.length-1 {
		s.index++
	} else if s.wrap {
		s.index = 0
	}
}

func (s *Cursor) Previous() {
	if s.length == 0 {
		return
	}
	if s.index > 0 {
		s.index--
	} else if s.wrap {
		s.index = s.length - 1
	}
}

// MoveTo ignores indices outside the sequence.
func (s *Cursor) MoveTo(index int) bool {
	if index < 0 || index >= s.length {
		return false
	}
	s.index = index
	return true
}
