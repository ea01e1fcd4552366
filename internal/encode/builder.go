package encode

import (
	"fmt"
)

// Build constructs the complete ffmpeg argument slice for one encode run.
// Input is raw RGBA video on stdin at the given geometry and frame rate;
// output is H.264 yuv420p MP4 with faststart for progressive playback.
func Build(width, height int, frameRate float64, outPath string, verbose bool) []string {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	// Loglevel: info when verbose, otherwise error.
	if verbose {
		args = append(args, "-loglevel", "info", "-stats", "-stats_period", "1")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input: raw frames on stdin ---
	args = append(args,
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", width, height),
		"-framerate", fmt.Sprintf("%g", frameRate),
		"-i", "pipe:0",
	)

	// --- Output codec ---
	// yuv420p for broad player support; 4:2:0 needs even dimensions, hence
	// the pad filter.
	args = append(args,
		"-c:v", "libx264",
		"-preset", "medium",
		"-pix_fmt", "yuv420p",
		"-vf", "pad=ceil(iw/2)*2:ceil(ih/2)*2",
		"-movflags", "+faststart",
	)

	// --- Output ---
	args = append(args, outPath)

	return args
}
