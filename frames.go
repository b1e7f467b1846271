package dinopet

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned by FrameSequence.Frame when the sequence
// holds no frames. Construction never produces an empty sequence, so hitting
// this is a programming error in the caller, not a bad-asset condition.
var ErrEmptySequence = errors.New("empty frame sequence")

// FrameSequence is the ordered animation frames for one (part, variant)
// pair. Frames are appended in load order; lookups wrap modulo the length,
// so callers may run a free-running frame counter without bounds checks.
type FrameSequence struct {
	Part    string
	Variant Variant
	frames  []*Image
}

// AddFrame appends an image to the sequence.
func (s *FrameSequence) AddFrame(img *Image) {
	s.frames = append(s.frames, img)
}

// Len returns the number of frames.
func (s *FrameSequence) Len() int {
	return len(s.frames)
}

// Frame returns the frame at index i, wrapping modulo the sequence length.
// Negative indices wrap backwards from the end. An empty sequence returns
// ErrEmptySequence.
func (s *FrameSequence) Frame(i int) (*Image, error) {
	n := len(s.frames)
	if n == 0 {
		return nil, fmt.Errorf("dinopet: part %q variant %s: %w", s.Part, s.Variant, ErrEmptySequence)
	}
	i %= n
	if i < 0 {
		i += n
	}
	return s.frames[i], nil
}
