// Package imageref assembles the final pushed image reference from the
// service's registry configuration and the caller-supplied name and tag.
package imageref

import (
	"regexp"
	"strings"
)

var repeatedSlashes = regexp.MustCompile(`/{2,}`)

// Assemble joins registry, prefix, and name into a single path, collapses
// any run of repeated slashes, strips a leading slash, and appends :tag.
// An empty registry means the image uses name verbatim, which may itself
// already carry a host portion.
func Assemble(registry, prefix, name, tag string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{registry, prefix, name} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	joined := strings.Join(parts, "/")
	joined = repeatedSlashes.ReplaceAllString(joined, "/")
	joined = strings.TrimPrefix(joined, "/")

	return joined + ":" + tag
}
