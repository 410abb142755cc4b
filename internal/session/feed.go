package session

import (
	"sync"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Feed publishes frames to a renderer without ever blocking the producer.
// When the buffer is full the oldest frame is dropped, so a slow reader
// always catches up on the latest state.
//
// Send and Close must be called from the same goroutine.
type Feed struct {
	frames    chan core.Frame
	done      chan struct{}
	closeOnce sync.Once
}

// NewFeed creates a feed that buffers up to size frames.
func NewFeed(size int) *Feed {
	if size < 1 {
		size = 4 // Default buffer size
	}
	return &Feed{
		frames: make(chan core.Frame, size),
		done:   make(chan struct{}),
	}
}

// Send publishes a frame, dropping the oldest buffered one if needed.
func (f *Feed) Send(frame core.Frame) {
	select {
	case <-f.done:
		// Feed is closed, don't send
		return
	default:
	}

	select {
	case f.frames <- frame:
	default:
		// Buffer full, drop oldest and retry
		select {
		case <-f.frames:
		default:
		}
		select {
		case f.frames <- frame:
		default:
		}
	}
}

// C returns the channel to receive frames from. It is closed with the feed.
func (f *Feed) C() <-chan core.Frame {
	return f.frames
}

// Done returns a channel that closes when the feed is closed.
func (f *Feed) Done() <-chan struct{} {
	return f.done
}

// Close closes the feed. Safe to call multiple times.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		close(f.done)
		close(f.frames)
	})
}
