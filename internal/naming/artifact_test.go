package naming

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestArtifactPath(t *testing.T) {
	now := time.Date(2026, 8, 25, 14, 30, 12, 0, time.UTC)
	got := ArtifactPath("/srv/lapse", "skylapse", now)
	want := filepath.Join("/srv/lapse", "skylapse_2026-08-25_14-30.mp4")
	if got != want {
		t.Errorf("ArtifactPath = %q, want %q", got, want)
	}
}

func TestEnsureUnique_NoCollision(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "skylapse_2026-08-25_14-30.mp4")
	if got := EnsureUnique(p); got != p {
		t.Errorf("EnsureUnique = %q, want unchanged %q", got, p)
	}
}

func TestEnsureUnique_AppendsCounter(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "skylapse_2026-08-25_14-30.mp4")
	if err := os.WriteFile(p, []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}

	got := EnsureUnique(p)
	want := filepath.Join(dir, "skylapse_2026-08-25_14-30 - dup1.mp4")
	if got != want {
		t.Errorf("EnsureUnique = %q, want %q", got, want)
	}

	// Occupy the first variant; the next call should move to dup2.
	if err := os.WriteFile(want, []byte{}, 0o644); err != nil {
		t.Fatal(err)
	}
	got = EnsureUnique(p)
	want = filepath.Join(dir, "skylapse_2026-08-25_14-30 - dup2.mp4")
	if got != want {
		t.Errorf("EnsureUnique (second) = %q, want %q", got, want)
	}
}
