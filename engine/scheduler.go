package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// FrameScheduler invokes a frame callback at a fixed real-time cadence
// After Stop returns no further frame starts
type FrameScheduler struct {
	frame    func()
	interval time.Duration

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	frames   atomic.Uint64
}

// NewFrameScheduler creates a stopped scheduler
func NewFrameScheduler(frame func(), interval time.Duration) *FrameScheduler {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &FrameScheduler{
		frame:    frame,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the frame loop
func (fs *FrameScheduler) Start() {
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		core.Go(fs.loop)
	}
}

// Stop halts the loop and waits for an in-flight frame
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		close(fs.stopChan)
		if fs.running.Load() {
			fs.wg.Wait()
		}
		fs.running.Store(false)
	})
}

// Running reports whether the loop is active
func (fs *FrameScheduler) Running() bool {
	return fs.running.Load()
}

// Frames returns the number of frames invoked
func (fs *FrameScheduler) Frames() uint64 {
	return fs.frames.Load()
}

func (fs *FrameScheduler) loop() {
	defer fs.wg.Done()

	ticker := time.NewTicker(fs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-fs.stopChan:
			return
		case <-ticker.C:
			// Stop wins over a tick that became ready at the same time
			select {
			case <-fs.stopChan:
				return
			default:
			}
			fs.frame()
			fs.frames.Add(1)
		}
	}
}
