// Package naming parses remote image filenames into structured identifiers
// and builds output artifact paths.
//
// Remote filenames follow the GOES CDN convention:
//
//	<numeric-prefix>_<SOURCE>-ABI-<sector>-GEOCOLOR-<width>x<height>.jpg
//
// The last four digits of the numeric prefix are the capture time as HHMM
// (24-hour UTC); any earlier digits encode the capture date with enough
// precision for chronological ordering. Both day+time prefixes (e.g.
// 20252381750, year + day-of-year + HHMM) and bare HHMM prefixes parse; no
// fixed epoch is assumed.
//
// Split along these boundaries: identifier.go (parsing and chronological
// ordering), artifact.go (output file naming and collision avoidance).
package naming
