package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/fogleman/gg"
)

// An alias for functions that process a completed frame, e.g. to persist it.
type PostProcessStage func(fb *FrameBuffer) (time.Duration, error)

// Save the frame buffer as a png image.
func SaveFrameBuffer(imgFile string) PostProcessStage {
	return func(fb *FrameBuffer) (time.Duration, error) {
		start := time.Now()
		if err := gg.SavePNG(imgFile, fb.Image()); err != nil {
			return time.Since(start), fmt.Errorf("renderer: could not save frame to %s: %s", imgFile, err.Error())
		}
		logger.Noticef("saved frame to %s", imgFile)
		return time.Since(start), nil
	}
}

// Encode the frame buffer as a png image and write it to w.
func WriteFrameBuffer(w io.Writer) PostProcessStage {
	return func(fb *FrameBuffer) (time.Duration, error) {
		start := time.Now()
		err := gg.NewContextForRGBA(fb.Image()).EncodePNG(w)
		if err != nil {
			err = fmt.Errorf("renderer: could not encode frame: %s", err.Error())
		}
		return time.Since(start), err
	}
}
