// Package config holds runtime configuration: defaults, the optional YAML
// config file, CLI flag parsing, and validation. Defaults match the legacy
// goes-lapse shell script for parity.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Window is a closed [Start, End] interval in minutes since midnight UTC.
// A nil *Window means no time-of-day filtering.
type Window struct {
	Start int // 0..1439
	End   int // 0..1439, >= Start
}

// Contains reports whether the minute-of-day m falls inside the window.
func (w *Window) Contains(m int) bool {
	return m >= w.Start && m <= w.End
}

// String renders the window back into HHMM-HHMM form.
func (w *Window) String() string {
	return fmt.Sprintf("%02d%02d-%02d%02d", w.Start/60, w.Start%60, w.End/60, w.End%60)
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a YAML file ([LoadFile]), and then mutated by
// [ParseFlags] before being passed (by pointer) to packages that need it.
type Config struct {
	// Source and output (set from positional args).
	SourceURL string
	OutputDir string

	// Frame selection.
	Resolution string  // Resolution tag the filename must carry. Default: "1200x1200".
	Window     *Window // Optional time-of-day window; nil = no filtering.
	MaxCount   int     // Newest frames to keep after filtering. Default: 120.

	// Fetching.
	Workers      int           // Concurrent downloads. Default: 8.
	FetchTimeout time.Duration // Per-image deadline. Default: 30s.

	// Encoding.
	FrameRate    float64 // Output frame rate. Default: 20.
	OutputPrefix string  // Artifact name prefix. Default: "skylapse".

	// Behavior flags.
	DryRun bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Raw flag values resolved during parsing.
	WindowArg string // --window value ("HHMM-HHMM"), parsed into Window.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// goes-lapse behavior. Used as the base before file and CLI overrides.
func DefaultConfig() Config {
	return Config{
		Resolution:   "1200x1200",
		MaxCount:     120,
		Workers:      8,
		FetchTimeout: 30 * time.Second,
		FrameRate:    20,
		OutputPrefix: "skylapse",
		DryRun:       false,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

var reResolutionTag = regexp.MustCompile(`^[0-9]+x[0-9]+$`)

// Validate checks numeric bounds, the resolution tag shape, and the time
// window. When not in CheckOnly mode it also requires that both the source
// URL and output directory are set. Any error here is fatal at startup.
func (c *Config) Validate() error {
	if c.MaxCount <= 0 {
		return fmt.Errorf("invalid count %d (must be > 0)", c.MaxCount)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid workers %d (must be >= 1)", c.Workers)
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("invalid fps %g (must be > 0)", c.FrameRate)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("invalid timeout %s (must be > 0)", c.FetchTimeout)
	}
	if !reResolutionTag.MatchString(c.Resolution) {
		return fmt.Errorf("invalid size %q (use WIDTHxHEIGHT, e.g. 1200x1200)", c.Resolution)
	}
	if strings.TrimSpace(c.OutputPrefix) == "" {
		return errors.New("output prefix must not be empty")
	}

	if c.WindowArg != "" {
		w, err := ParseWindow(c.WindowArg)
		if err != nil {
			return err
		}
		c.Window = w
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.CheckOnly {
		return nil
	}
	if c.SourceURL == "" || c.OutputDir == "" {
		return errors.New("need exactly source_url and output_dir")
	}
	if !strings.HasPrefix(c.SourceURL, "http://") && !strings.HasPrefix(c.SourceURL, "https://") {
		return fmt.Errorf("invalid source URL %q (must be http or https)", c.SourceURL)
	}
	return nil
}

// ParseWindow parses "HHMM-HHMM" into a Window. Both bounds are inclusive
// minutes-since-midnight UTC; start must not exceed end. The historical
// window defaults varied between deployments, so no built-in default exists.
func ParseWindow(s string) (*Window, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid window %q (use HHMM-HHMM, e.g. 0900-2100)", s)
	}
	start, err := parseHHMM(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}
	end, err := parseHHMM(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}
	if start > end {
		return nil, fmt.Errorf("invalid window %q (start after end)", s)
	}
	return &Window{Start: start, End: end}, nil
}

// parseHHMM converts a 4-digit HHMM string to minutes since midnight.
func parseHHMM(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0, fmt.Errorf("%q is not HHMM", s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not HHMM", s)
	}
	h, m := n/100, n%100
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return h*60 + m, nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// NormalizeSourceArg ensures the source URL ends with exactly one slash so
// relative hrefs from the directory index resolve against it.
func NormalizeSourceArg(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	return strings.TrimRight(raw, "/") + "/"
}
