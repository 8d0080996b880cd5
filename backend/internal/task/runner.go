package task

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"vincit.fi/slideshow/common/logger"
)

// Runner runs work away from the GUI thread. Work reports its own result,
// typically by publishing a command.
type Runner interface {
	Go(name string, work func(), onPanic func(err error))
}

type AsyncRunner struct {
	running sync.WaitGroup
}

func NewAsyncRunner() *AsyncRunner {
	return &AsyncRunner{}
}

func (s *AsyncRunner) Go(name string, work func(), onPanic func(err error)) {
	s.running.Add(1)
	go func() {
		defer s.running.Done()
		run(name, work, onPanic)
	}()
}

// Wait blocks until every task started so far has finished. It must be
// called from the goroutine that starts tasks.
func (s *AsyncRunner) Wait() {
	s.running.Wait()
}

// SyncRunner runs work on the calling goroutine.
type SyncRunner struct{}

func (s *SyncRunner) Go(name string, work func(), onPanic func(err error)) {
	run(name, work, onPanic)
}

func run(name string, work func(), onPanic func(err error)) {
	startTime := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("Task '%s' failed: %v\n%s", name, r, debug.Stack())
			if onPanic != nil {
				onPanic(fmt.Errorf("task '%s' failed: %v", name, r))
			}
		}
	}()

	logger.Debug.Printf("Task '%s' started", name)
	work()
	logger.Debug.Printf("Task '%s' done in %s", name, time.Since(startTime))
}
