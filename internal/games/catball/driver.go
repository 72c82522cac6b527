package catball

import (
	"context"
	"errors"
)

// FrameFunc runs one frame against the input a host sampled.
type FrameFunc func(in FrameInput, r Renderer)

// FrameDriver owns a host's presentation loop. Run calls frame exactly once
// per presented frame and returns when the host stops or ctx is done.
type FrameDriver interface {
	Run(ctx context.Context, frame FrameFunc) error
}

// ErrNoFrames is returned by a HeadlessDriver configured to run zero frames.
var ErrNoFrames = errors.New("catball: headless driver needs at least one frame")

// HeadlessDriver runs a fixed number of frames without presenting them.
// Each frame is recorded into Last, replacing the previous one.
type HeadlessDriver struct {
	Frames int
	Input  FrameInputSource
	Last   DrawList
}

// FrameInputSource supplies the input for frame i (0-based).
type FrameInputSource func(i int) FrameInput

// StaticInput returns a source that yields the same input every frame.
func StaticInput(in FrameInput) FrameInputSource {
	return func(int) FrameInput { return in }
}

// Run drives frame Frames times, stopping early if ctx is cancelled.
func (d *HeadlessDriver) Run(ctx context.Context, frame FrameFunc) error {
	if d.Frames <= 0 {
		return ErrNoFrames
	}
	src := d.Input
	if src == nil {
		src = StaticInput(FrameInput{})
	}
	for i := 0; i < d.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.Last.Reset()
		frame(src(i), &d.Last)
	}
	return nil
}
