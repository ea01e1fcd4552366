package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArtifactPath builds the output video path for a run:
//
//	<outputDir>/<prefix>_<YYYY-MM-DD>_<HH-MM>.mp4
//
// The timestamp reflects generation time, not capture time.
func ArtifactPath(outputDir, prefix string, now time.Time) string {
	file := fmt.Sprintf("%s_%s.mp4", prefix, now.Format("2006-01-02_15-04"))
	return filepath.Join(outputDir, file)
}

// EnsureUnique returns a path that does not yet exist on disk, appending
// " - dupN" before the extension when needed. Two runs inside the same
// minute would otherwise overwrite each other's artifact.
func EnsureUnique(requested string) string {
	if _, err := os.Stat(requested); os.IsNotExist(err) {
		return requested
	}

	dir := filepath.Dir(requested)
	base := filepath.Base(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s - dup%d%s", stem, counter, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
