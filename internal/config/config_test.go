package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/media/out", "/media/out"},
		{"single trailing slash", "/media/out/", "/media/out"},
		{"multiple trailing slashes", "/media/out///", "/media/out"},
		{"root path", "/", "/"},
		{"relative path", "output", "output"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSourceArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"adds trailing slash", "https://cdn.example.com/GOES19/FD", "https://cdn.example.com/GOES19/FD/"},
		{"collapses trailing slashes", "https://cdn.example.com/FD///", "https://cdn.example.com/FD/"},
		{"already canonical", "https://cdn.example.com/FD/", "https://cdn.example.com/FD/"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeSourceArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeSourceArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantStart int
		wantEnd   int
		wantErr   bool
	}{
		{"daytime window", "0900-2100", 9 * 60, 21 * 60, false},
		{"full day", "0000-2359", 0, 23*60 + 59, false},
		{"single minute", "1200-1200", 12 * 60, 12 * 60, false},
		{"start after end", "2100-0900", 0, 0, true},
		{"missing dash", "09002100", 0, 0, true},
		{"hours out of range", "2500-2600", 0, 0, true},
		{"minutes out of range", "0960-1000", 0, 0, true},
		{"not numeric", "morn-dusk", 0, 0, true},
		{"too short", "900-2100", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWindow(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWindow(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if w.Start != tt.wantStart || w.End != tt.wantEnd {
				t.Errorf("ParseWindow(%q) = [%d,%d], want [%d,%d]",
					tt.in, w.Start, w.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := &Window{Start: 9 * 60, End: 21 * 60}
	tests := []struct {
		name   string
		minute int
		want   bool
	}{
		{"before start", 8*60 + 59, false},
		{"at start", 9 * 60, true},
		{"inside", 12 * 60, true},
		{"at end", 21 * 60, true},
		{"after end", 21*60 + 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.minute); got != tt.want {
				t.Errorf("Contains(%d) = %v, want %v", tt.minute, got, tt.want)
			}
		})
	}
}

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero count", func(c *Config) { c.MaxCount = 0 }, true},
		{"negative count", func(c *Config) { c.MaxCount = -5 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"zero fps", func(c *Config) { c.FrameRate = 0 }, true},
		{"negative fps", func(c *Config) { c.FrameRate = -1 }, true},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, true},
		{"bad resolution tag", func(c *Config) { c.Resolution = "1200by1200" }, true},
		{"empty prefix", func(c *Config) { c.OutputPrefix = "  " }, true},
		{"bad window", func(c *Config) { c.WindowArg = "banana" }, true},
		{"good window", func(c *Config) { c.WindowArg = "0700-2000" }, false},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip source/output requirement
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ParsesWindowArg(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.WindowArg = "1100-2300"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Window == nil {
		t.Fatal("Window not populated from WindowArg")
	}
	if cfg.Window.Start != 11*60 || cfg.Window.End != 23*60 {
		t.Errorf("Window = [%d,%d], want [660,1380]", cfg.Window.Start, cfg.Window.End)
	}
}

func TestValidate_RequiresSourceAndOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = false

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when source and output are empty and CheckOnly is false")
	}

	cfg.SourceURL = "https://cdn.example.com/FD/"
	cfg.OutputDir = "/out"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_RejectsNonHTTPSource(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceURL = "ftp://cdn.example.com/FD/"
	cfg.OutputDir = "/out"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject non-http source URL")
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Resolution != "1200x1200" {
		t.Errorf("default Resolution = %q, want 1200x1200", cfg.Resolution)
	}
	if cfg.Window != nil {
		t.Error("default Window should be nil (no temporal filtering)")
	}
	if cfg.MaxCount != 120 {
		t.Errorf("default MaxCount = %d, want 120", cfg.MaxCount)
	}
	if cfg.Workers != 8 {
		t.Errorf("default Workers = %d, want 8", cfg.Workers)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("default FetchTimeout = %s, want 30s", cfg.FetchTimeout)
	}
	if cfg.FrameRate != 20 {
		t.Errorf("default FrameRate = %g, want 20", cfg.FrameRate)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skylapse.yaml")
	body := `
source: https://cdn.example.com/GOES19/FD
output_dir: /srv/lapse/
size: 678x678
window: 0700-2000
count: 60
workers: 4
timeout_seconds: 10
fps: 24
prefix: fulldisk
log_file: /var/log/skylapse.log
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.SourceURL != "https://cdn.example.com/GOES19/FD/" {
		t.Errorf("SourceURL = %q (want canonical trailing slash)", cfg.SourceURL)
	}
	if cfg.OutputDir != "/srv/lapse" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Resolution != "678x678" {
		t.Errorf("Resolution = %q", cfg.Resolution)
	}
	if cfg.WindowArg != "0700-2000" {
		t.Errorf("WindowArg = %q", cfg.WindowArg)
	}
	if cfg.MaxCount != 60 || cfg.Workers != 4 {
		t.Errorf("MaxCount/Workers = %d/%d", cfg.MaxCount, cfg.Workers)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %s", cfg.FetchTimeout)
	}
	if cfg.FrameRate != 24 {
		t.Errorf("FrameRate = %g", cfg.FrameRate)
	}
	if cfg.OutputPrefix != "fulldisk" {
		t.Errorf("OutputPrefix = %q", cfg.OutputPrefix)
	}
	if cfg.LogFile != "/var/log/skylapse.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestLoadFile_MissingIsNotAnError(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err != nil {
		t.Errorf("LoadFile on missing file: %v", err)
	}
	if cfg.MaxCount != 120 {
		t.Errorf("defaults mutated: MaxCount = %d", cfg.MaxCount)
	}
}

func TestLoadFile_MalformedIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("count: [not a number"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err == nil {
		t.Error("LoadFile should fail on malformed YAML")
	}
}
