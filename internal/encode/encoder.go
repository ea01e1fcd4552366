package encode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoFrames reports that the batch produced zero usable frames. Callers
// treat it as a warning, not a failure: no artifact is produced and the
// process still exits zero.
var ErrNoFrames = errors.New("no frames to encode")

// Result holds the outcome of a single encode run.
type Result struct {
	Written int    // frames streamed to ffmpeg
	Skipped int    // frames dropped for mismatched dimensions
	Stderr  string // captured ffmpeg stderr, for diagnostics on failure
}

// Encode streams the ordered frames into ffmpeg and writes the artifact at
// outPath. The first frame fixes the geometry; later frames with different
// bounds are skipped, preserving the relative order of the rest. When
// verbose is set, ffmpeg stderr is tee'd to os.Stderr in real time;
// otherwise it is captured silently.
func Encode(ctx context.Context, frames []*image.RGBA, frameRate float64, outPath string, verbose bool) (Result, error) {
	var res Result
	if len(frames) == 0 {
		return res, ErrNoFrames
	}

	bounds := frames[0].Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	args := Build(width, height, frameRate, outPath, verbose)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return res, fmt.Errorf("encoder stdin: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return res, fmt.Errorf("start ffmpeg: %w", err)
	}

	writeErr := feedFrames(&res, stdin, frames, width, height)
	closeErr := stdin.Close()

	waitErr := cmd.Wait()
	res.Stderr = stderrBuf.String()

	switch {
	case waitErr != nil:
		return res, fmt.Errorf("ffmpeg: %w", waitErr)
	case writeErr != nil:
		return res, fmt.Errorf("feed frames: %w", writeErr)
	case closeErr != nil:
		return res, fmt.Errorf("close encoder stdin: %w", closeErr)
	}
	return res, nil
}

// feedFrames writes each frame's raw RGBA bytes to w in order. Frames whose
// bounds differ from the first frame are skipped and counted.
func feedFrames(res *Result, w io.Writer, frames []*image.RGBA, width, height int) error {
	for _, f := range frames {
		b := f.Bounds()
		if b.Dx() != width || b.Dy() != height {
			res.Skipped++
			continue
		}
		if err := writeRGBA(w, f); err != nil {
			return err
		}
		res.Written++
	}
	return nil
}

// writeRGBA writes the pixel payload row by row so images with a padded
// stride still produce tightly packed rawvideo.
func writeRGBA(w io.Writer, img *image.RGBA) error {
	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	rowLen := width * 4

	if img.Stride == rowLen {
		_, err := w.Write(img.Pix[:rowLen*height])
		return err
	}
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+rowLen]
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// StderrTail returns the last n lines of captured ffmpeg output for error
// reporting.
func StderrTail(stderr string, n int) []string {
	s := strings.TrimSpace(stderr)
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
