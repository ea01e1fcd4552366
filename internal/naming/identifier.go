package naming

import (
	"path"
	"regexp"
	"strconv"
	"strings"
)

// Identifier is a fully parsed remote image reference. Key and Minutes are
// derived once at parse time; Key is the sole chronological ordering key
// used downstream.
type Identifier struct {
	URL        string // Absolute URL of the image.
	Name       string // Filename (last path segment).
	Key        string // Full numeric prefix; chronological sort key.
	Minutes    int    // Capture time as minutes since midnight UTC.
	Resolution string // Resolution tag from the filename (e.g. "1200x1200").
}

// reIdentifier captures the numeric prefix and the resolution tag of a
// GOES-style filename. The middle section (source, instrument, sector,
// product) is deliberately loose: it varies per satellite and product, and
// only the prefix and resolution carry selection-relevant data.
var reIdentifier = regexp.MustCompile(
	`^([0-9]{4,})_[A-Za-z0-9]+-[A-Za-z0-9]+-[A-Za-z0-9]+-[A-Za-z0-9]+-([0-9]+x[0-9]+)\.(?i:jpg|jpeg)$`)

// ParseIdentifier parses one hyperlink string from a directory listing into
// an Identifier. base is the canonical source URL (trailing slash) relative
// hrefs resolve against. The second return is false when the href is not a
// parseable image name; callers drop those silently.
func ParseIdentifier(base, href string) (Identifier, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return Identifier{}, false
	}

	// Listings may carry absolute URLs, absolute paths, or bare names; the
	// filename is always the last path segment either way.
	name := href
	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	name = path.Base(name)

	m := reIdentifier.FindStringSubmatch(name)
	if m == nil {
		return Identifier{}, false
	}
	prefix, resolution := m[1], m[2]

	minutes, ok := minutesFromPrefix(prefix)
	if !ok {
		return Identifier{}, false
	}

	url := href
	if !strings.Contains(href, "://") {
		url = base + strings.TrimPrefix(name, "/")
	}

	return Identifier{
		URL:        url,
		Name:       name,
		Key:        prefix,
		Minutes:    minutes,
		Resolution: resolution,
	}, true
}

// minutesFromPrefix interprets the last four digits of the numeric prefix
// as HHMM and converts to minutes since midnight. Prefixes whose trailing
// digits do not form a valid clock time are rejected.
func minutesFromPrefix(prefix string) (int, bool) {
	hhmm := prefix[len(prefix)-4:]
	n, err := strconv.Atoi(hhmm)
	if err != nil {
		return 0, false
	}
	h, m := n/100, n%100
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// LessKey compares two chronological keys as unbounded integers: leading
// zeros are ignored, then a longer digit string is later, then plain
// lexicographic order decides. This keeps ordering correct across midnight
// and across prefix schemes of different precision.
func LessKey(a, b string) bool {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
