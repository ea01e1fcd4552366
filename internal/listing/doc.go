// Package listing selects the frames a run will fetch. It pulls raw
// hyperlink strings from a directory source (one HTTP GET against the
// remote index), parses each into an identifier, applies the resolution
// and time-of-day filters, removes duplicates, sorts chronologically, and
// keeps the newest maxCount entries, returned oldest first.
//
// An unreachable index is fatal ([ErrListingUnavailable]); a listing with
// zero surviving entries is not an error.
package listing
