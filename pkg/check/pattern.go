package check

import (
	"fmt"
	"regexp"

	gocache "github.com/patrickmn/go-cache"
)

// patterns holds compiled expressions keyed by their source.
// *regexp.Regexp is safe for concurrent use, so entries are shared freely.
var patterns = gocache.New(gocache.NoExpiration, 0)

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patterns.Get(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	patterns.Set(pattern, re, gocache.NoExpiration)
	return re, nil
}
