// Package state provides thread-safe sharing of rendered frames between the
// animation loop and its readers.
package state

import (
	"image"
	"image/draw"
	"sync"
	"time"
)

// Snapshot is a point-in-time view of the frame store.
type Snapshot struct {
	Frame     *image.RGBA // nil until the first frame is published
	Seq       uint64      // number of frames published so far
	Published time.Time
}

// FrameStore holds the most recently rendered frame. Writers publish copies,
// so a frame handed to a reader is never modified afterwards.
type FrameStore struct {
	mu sync.RWMutex

	frame     *image.RGBA
	seq       uint64
	published time.Time
}

// NewFrameStore creates an empty frame store.
func NewFrameStore() *FrameStore {
	return &FrameStore{}
}

// Present copies img into the store. It implements render.Sink.
func (s *FrameStore) Present(img *image.RGBA) error {
	cp := image.NewRGBA(img.Bounds())
	draw.Draw(cp, cp.Bounds(), img, img.Bounds().Min, draw.Src)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.frame = cp
	s.seq++
	s.published = time.Now()
	return nil
}

// LatestFrame returns the last published frame, or nil if none.
func (s *FrameStore) LatestFrame() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.frame == nil {
		return nil
	}
	return s.frame
}

// Snapshot returns the current frame with its sequence number.
func (s *FrameStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Frame:     s.frame,
		Seq:       s.seq,
		Published: s.published,
	}
}

// Seq returns the number of frames published so far.
func (s *FrameStore) Seq() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seq
}
