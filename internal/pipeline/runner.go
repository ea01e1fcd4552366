package pipeline

import (
	"context"
	"errors"
	"image"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/backmassage/skylapse/internal/config"
	"github.com/backmassage/skylapse/internal/display"
	"github.com/backmassage/skylapse/internal/encode"
	"github.com/backmassage/skylapse/internal/fetch"
	"github.com/backmassage/skylapse/internal/listing"
	"github.com/backmassage/skylapse/internal/logging"
	"github.com/backmassage/skylapse/internal/naming"
)

// Run is the top-level entry point for one timelapse build. It selects
// frames, fetches them, and encodes the artifact, returning aggregate stats.
// The returned error is nil for clean runs including the zero-frame case;
// a non-nil error means the run produced nothing and the process should
// exit non-zero.
func Run(ctx context.Context, cfg *config.Config, baseLog *logging.Logger) (RunStats, error) {
	var stats RunStats

	runID := uuid.New().String()[:8]
	log := baseLog.WithRun(runID)

	start := time.Now()

	// --- Select ---
	src := listing.NewHTTPSource(nil, cfg.SourceURL)
	ids, err := listing.List(ctx, src, cfg)
	if err != nil {
		log.Error("Listing failed: %v", err)
		return stats, err
	}
	stats.Listed = len(ids)

	logBatchHeader(cfg, log, &stats)

	if len(ids) == 0 {
		log.Warn("No frames matched the selection, nothing to do")
		return stats, nil
	}

	// --- Dry run: report the plan, touch nothing ---
	if cfg.DryRun {
		for i, id := range ids {
			log.Info("[DRY] [%d/%d] Would fetch %s", i+1, len(ids), id.Name)
		}
		artifact := naming.ArtifactPath(cfg.OutputDir, cfg.OutputPrefix, time.Now())
		log.Success("[DRY] Would encode %d frames at %g fps into %s", len(ids), cfg.FrameRate, artifact)
		return stats, nil
	}

	// --- Fetch ---
	log.Info("Fetching %d frames with %d workers...", len(ids), cfg.Workers)
	results := fetch.Fetch(ctx, nil, cfg, log, ids)

	if err := ctx.Err(); err != nil {
		log.Warn("Interrupted")
		return stats, err
	}

	sum := fetch.Summarize(results)
	stats.Fetched = sum.Succeeded
	stats.Failed = sum.Failed
	stats.BytesIn = sum.Bytes
	log.Info("Fetched %d/%d frames (%s), %d failed",
		sum.Succeeded, sum.Requested, display.FormatBytes(sum.Bytes), sum.Failed)

	// Failed slots drop out; the survivors keep their chronological order.
	frames := make([]*image.RGBA, 0, len(results))
	for _, r := range results {
		if r.Image != nil {
			frames = append(frames, r.Image)
		}
	}

	// --- Encode ---
	artifact := naming.EnsureUnique(naming.ArtifactPath(cfg.OutputDir, cfg.OutputPrefix, time.Now()))

	log.Info("Encoding %d frames at %g fps...", len(frames), cfg.FrameRate)
	res, err := encode.Encode(ctx, frames, cfg.FrameRate, artifact, cfg.Verbose)
	stats.Written = res.Written
	stats.Skipped = res.Skipped

	if errors.Is(err, encode.ErrNoFrames) {
		log.Warn("All frames failed, no artifact produced")
		logSummary(log, &stats, time.Since(start))
		return stats, nil
	}
	if err != nil {
		log.Error("Encode failed: %v", err)
		logStderr(log, res.Stderr)
		os.Remove(artifact)
		return stats, err
	}

	stats.Artifact = artifact
	if fi, statErr := os.Stat(artifact); statErr == nil {
		stats.BytesOut = fi.Size()
	}

	log.Success("Wrote %s (%s)", artifact, display.FormatBytes(stats.BytesOut))
	logSummary(log, &stats, time.Since(start))
	return stats, nil
}

// logStderr prints the tail of captured ffmpeg output after a failure.
func logStderr(log *logging.Logger, stderr string) {
	lines := encode.StderrTail(stderr, 20)
	if len(lines) == 0 {
		return
	}
	log.Error("Last ffmpeg output:")
	for _, l := range lines {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Source: %s", cfg.SourceURL)
	log.Info("Selected %d frames (resolution %s, newest %d)", stats.Listed, cfg.Resolution, cfg.MaxCount)
	if cfg.Window != nil {
		log.Info("Time window: %s to %s UTC",
			display.FormatMinuteOfDay(cfg.Window.Start), display.FormatMinuteOfDay(cfg.Window.End))
	}
	log.Info("Encode: libx264 at %g fps, %d fetch workers, %s timeout",
		cfg.FrameRate, cfg.Workers, cfg.FetchTimeout)
}

func logSummary(log *logging.Logger, stats *RunStats, elapsed time.Duration) {
	log.Info("==============================")
	log.Info("Done in %s: %d fetched, %d failed, %d encoded, %d skipped",
		display.FormatDuration(elapsed), stats.Fetched, stats.Failed, stats.Written, stats.Skipped)
	if stats.Artifact != "" {
		log.Info("  Downloaded %s, artifact %s",
			display.FormatBytes(stats.BytesIn), display.FormatBytes(stats.BytesOut))
	}
}
