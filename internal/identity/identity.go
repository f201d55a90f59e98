// Package identity derives sample keys from pipeline log paths.
package identity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrPathFormat means no sample identifier could be derived from a path.
// The run driver treats this as fatal for the whole batch: a log whose sample
// cannot be identified indicates a structural assumption violation that a
// silent skip would mask.
var ErrPathFormat = errors.New("no sample identifier in path")

// DefaultMarker is the path-segment prefix the pipeline uses for per-sample
// output directories, e.g. ".../Diag-NA12878/run.json".
const DefaultMarker = "Diag-"

// Extractor derives a raw sample key from a file path. Implementations may
// use path segments, regexes or sidecar metadata; the aggregator only sees
// the resulting key.
type Extractor interface {
	Extract(path string) (string, error)
}

// MarkerExtractor locates a path segment beginning with a fixed marker prefix
// and returns the remainder of that segment as the raw sample key.
type MarkerExtractor struct {
	marker  string
	pattern *regexp.Regexp
}

// NewMarkerExtractor builds an extractor for the given segment prefix.
// An empty marker falls back to DefaultMarker.
func NewMarkerExtractor(marker string) *MarkerExtractor {
	if marker == "" {
		marker = DefaultMarker
	}

	return &MarkerExtractor{
		marker:  marker,
		pattern: regexp.MustCompile(`(?:^|[/\\])` + regexp.QuoteMeta(marker) + `([^/\\]+)[/\\]`),
	}
}

// Extract returns the raw sample key for path, or ErrPathFormat when the
// marker segment is not present.
func (e *MarkerExtractor) Extract(path string) (string, error) {
	match := e.pattern.FindStringSubmatch(path)
	if match == nil {
		return "", fmt.Errorf("%w: %q (marker %q)", ErrPathFormat, path, e.marker)
	}

	return match[1], nil
}

// Sanitize normalizes a raw sample key into a display name: trims whitespace
// and strips a trailing file extension left over from lax upstream naming.
// The raw key stays the aggregation key; only display output uses this.
func Sanitize(raw string) string {
	name := strings.TrimSpace(raw)

	for _, ext := range []string{".json", ".txt", ".log"} {
		name = strings.TrimSuffix(name, ext)
	}

	return name
}
