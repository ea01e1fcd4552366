package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into selection, fetching, encoding, display, and utility.
// The optional --config YAML file is applied before the remaining flags so
// that explicit flags always win over file values.

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// version is shown in --version and help; override at build time with
// -ldflags "-X github.com/backmassage/skylapse/internal/config.version=...".
var version = "1.0.0-dev"

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional args).
func ParseFlags(cfg *Config) error {
	fs := flag.NewFlagSet("skylapse", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var (
		configPath string
		forceColor bool
		noColor    bool
		timeoutSec int
		showHelp   bool
		showVer    bool
	)

	defineSelectionFlags(fs, cfg)
	defineFetchFlags(fs, cfg, &timeoutSec)
	defineEncodeFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &forceColor, &noColor)
	defineUtilityFlags(fs, cfg, &configPath, &showHelp, &showVer)

	// First pass just to discover --config; the file must be applied before
	// the real parse so flags override file values. A second parse over the
	// same FlagSet is cheap and keeps precedence obvious.
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}
	if configPath != "" {
		if err := LoadFile(configPath, cfg); err != nil {
			return err
		}
		if err := fs.Parse(os.Args[1:]); err != nil {
			return err
		}
	}

	if showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if showVer {
		fmt.Fprintln(os.Stdout, "skylapse v"+version)
		os.Exit(0)
	}

	if noColor {
		cfg.ColorMode = ColorNever
	} else if forceColor {
		cfg.ColorMode = ColorAlways
	}
	if timeoutSec > 0 {
		cfg.FetchTimeout = time.Duration(timeoutSec) * time.Second
	}

	return parsePositionalArgs(fs, cfg)
}

// defineSelectionFlags registers --size, --window, --count.
func defineSelectionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Resolution, "size", cfg.Resolution, "Resolution tag images must carry (WIDTHxHEIGHT)")
	fs.StringVar(&cfg.Resolution, "s", cfg.Resolution, "Same as --size")
	fs.StringVar(&cfg.WindowArg, "window", cfg.WindowArg, "Time-of-day window, UTC (HHMM-HHMM); default: none")
	fs.StringVar(&cfg.WindowArg, "w", cfg.WindowArg, "Same as --window")
	fs.IntVar(&cfg.MaxCount, "count", cfg.MaxCount, "Newest frames to keep after filtering")
	fs.IntVar(&cfg.MaxCount, "n", cfg.MaxCount, "Same as --count")
}

// defineFetchFlags registers --workers and --timeout.
func defineFetchFlags(fs *flag.FlagSet, cfg *Config, timeoutSec *int) {
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent downloads")
	fs.IntVar(&cfg.Workers, "j", cfg.Workers, "Same as --workers")
	fs.IntVar(timeoutSec, "timeout", 0, "Per-image fetch deadline in seconds")
}

// defineEncodeFlags registers --fps and --prefix.
func defineEncodeFlags(fs *flag.FlagSet, cfg *Config) {
	fs.Float64Var(&cfg.FrameRate, "fps", cfg.FrameRate, "Output video frame rate")
	fs.StringVar(&cfg.OutputPrefix, "prefix", cfg.OutputPrefix, "Output artifact name prefix")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, forceColor, noColor *bool) {
	fs.BoolVar(forceColor, "color", false, "Force colored logs")
	fs.BoolVar(noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --config, --dry-run, --check, --version, --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, configPath *string, showHelp, showVer *bool) {
	fs.StringVar(configPath, "config", "", "YAML config file (flags override file values)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "List and report only; fetch and encode nothing")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.BoolVar(showVer, "version", false, "Print version and exit")
	fs.BoolVar(showVer, "V", false, "Same as --version")
	fs.BoolVar(showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(showHelp, "h", false, "Same as --help")
}

// parsePositionalArgs sets SourceURL and OutputDir from the two positional
// args when not in CheckOnly mode. Either may instead come from the config
// file, in which case the positional arg is optional.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	switch len(args) {
	case 0:
		// Both must come from the config file; Validate catches absence.
	case 2:
		cfg.SourceURL = NormalizeSourceArg(args[0])
		cfg.OutputDir = NormalizeDirArg(args[1])
	default:
		return fmt.Errorf("need exactly source_url and output_dir")
	}
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Skylapse v" + version + " - satellite imagery timelapse builder"},
		{"", ""},
		{"  skylapse [OPTIONS] <source_url> <output_dir>", ""},
		{"", ""},
		{"Frame selection", ""},
		{"  -s, --size <WxH>", "Resolution tag filter (default: 1200x1200)"},
		{"  -w, --window <HHMM-HHMM>", "UTC time-of-day window (default: none)"},
		{"  -n, --count <num>", "Newest frames to keep (default: 120)"},
		{"", ""},
		{"Fetching", ""},
		{"  -j, --workers <num>", "Concurrent downloads (default: 8)"},
		{"  --timeout <seconds>", "Per-image fetch deadline (default: 30)"},
		{"", ""},
		{"Encoding", ""},
		{"  --fps <rate>", "Output frame rate (default: 20)"},
		{"  --prefix <name>", "Artifact name prefix (default: skylapse)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -d, --dry-run", "List and report only; fetch and encode nothing"},
		{"  --config <path>", "YAML config file (flags override file values)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, libx264, source)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
