package display

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"typical frame 300 KiB", 307200, "300.0 KiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-second rounds", 400 * time.Millisecond, "0s"},
		{"seconds only", 12 * time.Second, "12s"},
		{"exactly a minute", time.Minute, "1m00s"},
		{"minutes and seconds", 4*time.Minute + 2*time.Second, "4m02s"},
		{"long run", 61*time.Minute + 5*time.Second, "61m05s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.d)
			if got != tt.want {
				t.Errorf("FormatDuration(%s) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestFormatMinuteOfDay(t *testing.T) {
	tests := []struct {
		name   string
		minute int
		want   string
	}{
		{"midnight", 0, "00:00"},
		{"morning", 9 * 60, "09:00"},
		{"last minute", 23*60 + 59, "23:59"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMinuteOfDay(tt.minute)
			if got != tt.want {
				t.Errorf("FormatMinuteOfDay(%d) = %q, want %q", tt.minute, got, tt.want)
			}
		})
	}
}
