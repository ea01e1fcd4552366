// Package check provides system diagnostics (--check mode) and pre-pipeline
// dependency validation (CheckDeps) for ffmpeg, libx264, and source
// reachability.
package check

import (
	"context"
	"errors"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/backmassage/skylapse/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound   = errors.New("ffmpeg not found on PATH")
	ErrX264EncodeFailed = errors.New("libx264 test encode failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints availability of ffmpeg,
// H.264 encoders, a libx264 test encode, and source reachability when a
// source URL was given. This is informational only, it does not stop on
// failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkFfmpeg(log)
	checkH264Encoders(log)
	checkX264(log)
	if cfg.SourceURL != "" {
		checkSource(cfg, log)
	}
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Error("ffmpeg not found")
		return
	}
	cmd := exec.Command("ffmpeg", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("ffmpeg found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
}

// checkH264Encoders lists all H.264-related encoders reported by ffmpeg.
func checkH264Encoders(log Logger) {
	log.Info("H.264 encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warn("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "h264") || strings.Contains(lower, "264") {
			log.Info("  %s", strings.TrimSpace(line))
		}
	}
}

// checkX264 runs a minimal libx264 encode to verify the pipeline's codec works.
func checkX264(log Logger) {
	log.Info("Testing libx264...")
	if runSilent("ffmpeg", x264TestArgs()...) {
		log.Success("libx264 works")
	} else {
		log.Error("libx264 test encode failed")
	}
}

// checkSource issues a GET against the configured directory index and reports
// the HTTP status. Transport errors are reported as warnings since the index
// may simply be unreachable from this network.
func checkSource(cfg *config.Config, log Logger) {
	log.Info("Probing source %s...", cfg.SourceURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.SourceURL, nil)
	if err != nil {
		log.Error("bad source URL: %v", err)
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Warn("source unreachable: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		log.Success("source reachable (%s)", resp.Status)
	} else {
		log.Warn("source returned %s", resp.Status)
	}
}

// CheckDeps is the pre-pipeline validation: it verifies that ffmpeg is on
// PATH and that a quick libx264 encode succeeds. Returns a sentinel error
// on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if !runSilent("ffmpeg", x264TestArgs()...) {
		return ErrX264EncodeFailed
	}
	return nil
}

// --- internal helpers ---

// x264TestArgs returns the ffmpeg arguments for a minimal libx264 test encode.
// Shared by checkX264 and CheckDeps to avoid duplicating the argument list.
func x264TestArgs() []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", "libx264",
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
