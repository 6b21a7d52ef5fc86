package catalog

import (
	"strings"
	"time"
)

// Options selects where the catalog comes from.
type Options struct {
	Path    string
	URL     string
	Timeout time.Duration
}

// Resolve picks the source for opts: a local file wins over a URL, and the
// embedded sample is used when neither is set.
func Resolve(opts Options) Source {
	if p := strings.TrimSpace(opts.Path); p != "" {
		return NewFileSource(p)
	}
	if u := strings.TrimSpace(opts.URL); u != "" {
		return NewHTTPSource(u, WithTimeout(opts.Timeout))
	}
	return EmbeddedSource{}
}

// Describe returns a short human label for a source.
func Describe(src Source) string {
	switch s := src.(type) {
	case *FileSource:
		return s.Path()
	case *HTTPSource:
		return s.URL()
	case EmbeddedSource:
		return "built-in sample"
	default:
		return "custom source"
	}
}
