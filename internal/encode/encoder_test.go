package encode

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func solidFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestEncode_EmptyFrameSet(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lapse.mp4")

	_, err := Encode(context.Background(), nil, 20, out, false)
	if !errors.Is(err, ErrNoFrames) {
		t.Fatalf("err = %v, want ErrNoFrames", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("no artifact should be produced for an empty frame set")
	}
}

func TestEncode_ProducesArtifact(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}

	frames := []*image.RGBA{
		solidFrame(64, 64, color.RGBA{R: 255, A: 255}),
		solidFrame(64, 64, color.RGBA{G: 255, A: 255}),
		solidFrame(64, 64, color.RGBA{B: 255, A: 255}),
		solidFrame(64, 64, color.RGBA{R: 255, G: 255, A: 255}),
	}

	out := filepath.Join(t.TempDir(), "lapse.mp4")
	res, err := Encode(context.Background(), frames, 4, out, false)
	if err != nil {
		t.Fatalf("Encode: %v\nstderr:\n%s", err, res.Stderr)
	}
	if res.Written != 4 || res.Skipped != 0 {
		t.Errorf("Written/Skipped = %d/%d, want 4/0", res.Written, res.Skipped)
	}

	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("artifact is empty")
	}
}

func TestEncode_SkipsMismatchedDimensions(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}

	frames := []*image.RGBA{
		solidFrame(64, 64, color.RGBA{R: 255, A: 255}),
		solidFrame(32, 32, color.RGBA{G: 255, A: 255}), // wrong size, dropped
		solidFrame(64, 64, color.RGBA{B: 255, A: 255}),
	}

	out := filepath.Join(t.TempDir(), "lapse.mp4")
	res, err := Encode(context.Background(), frames, 2, out, false)
	if err != nil {
		t.Fatalf("Encode: %v\nstderr:\n%s", err, res.Stderr)
	}
	if res.Written != 2 {
		t.Errorf("Written = %d, want 2", res.Written)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
}

func TestWriteRGBA_PaddedStride(t *testing.T) {
	// A subimage carries the parent's stride; the writer must emit tightly
	// packed rows regardless.
	parent := solidFrame(8, 8, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	sub := parent.SubImage(image.Rect(2, 2, 6, 6)).(*image.RGBA)

	var sink countingWriter
	if err := writeRGBA(&sink, sub); err != nil {
		t.Fatalf("writeRGBA: %v", err)
	}
	want := 4 * 4 * 4 // 4x4 pixels, 4 bytes each
	if sink.n != want {
		t.Errorf("wrote %d bytes, want %d", sink.n, want)
	}
}

type countingWriter struct{ n int }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
