// Package pipeline orchestrates one timelapse run: select frames from the
// remote directory index, fetch and decode them concurrently, and stream the
// survivors into the encoder in chronological order.
//
// The pipeline distinguishes fatal failures (unreachable listing, encoder
// failure) from per-frame failures, which only shrink the batch. A run that
// ends with zero usable frames produces no artifact but is still a clean
// exit.
package pipeline
