// Package encode streams decoded frames into an ffmpeg child process and
// produces the final MP4 artifact.
//
// Frames are written to ffmpeg's stdin as raw RGBA video, so no per-frame
// file ever touches disk. The frame size is fixed by the first frame;
// frames with other dimensions are skipped and counted. Container and
// codec details belong to ffmpeg; this package's contract is ordering
// fidelity and frame-rate pass-through.
//
// Split into builder.go (argument construction) and encoder.go (process
// execution and the stdin feed).
package encode
