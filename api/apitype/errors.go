package apitype

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension = errors.New("invalid dimension")
	ErrUnknownSurface   = errors.New("unknown surface")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrNoSlide          = errors.New("no slide selected")
)

// DecodeFailure is reported per file. It never fails a whole import.
type DecodeFailure struct {
	Path string
	Err  error
}

func NewDecodeFailure(path string, err error) *DecodeFailure {
	return &DecodeFailure{Path: path, Err: err}
}

func (s *DecodeFailure) Error() string {
	return fmt.Sprintf("could not decode '%s': %s", s.Path, s.Err)
}

func (s *DecodeFailure) Unwrap() error {
	return s.Err
}

type PersistenceOp string

const (
	SaveOp PersistenceOp = "save"
	LoadOp PersistenceOp = "load"
)

type PersistenceFailure struct {
	Op   PersistenceOp
	Path string
	Err  error
}

func NewPersistenceFailure(op PersistenceOp, path string, err error) *PersistenceFailure {
	return &PersistenceFailure{Op: op, Path: path, Err: err}
}

func (s *PersistenceFailure) Error() string {
	return fmt.Sprintf("could not %s slideshow '%s': %s", s.Op, s.Path, s.Err)
}

func (s *PersistenceFailure) Unwrap() error {
	return s.Err
}
