package feeds

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrFetch = errors.New("feed fetch failed")
	ErrParse = errors.New("feed parse failed")
)

// FetchError represents a network/transport failure reaching the feed source.
type FetchError struct {
	URL   string
	Cause error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("fetching feed %s: %v", e.URL, e.Cause)
}

func (e FetchError) Unwrap() error {
	return e.Cause
}

func (e FetchError) Is(target error) bool {
	return target == ErrFetch
}

// ParseError represents a feed body that is not parseable as syndication
// content.
type ParseError struct {
	URL   string
	Cause error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parsing feed %s: %v", e.URL, e.Cause)
}

func (e ParseError) Unwrap() error {
	return e.Cause
}

func (e ParseError) Is(target error) bool {
	return target == ErrParse
}
