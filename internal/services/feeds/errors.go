package feeds

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is checks across package boundaries.
var (
	ErrFeedUnreachable = errors.New("feed unreachable")
	ErrFeedMalformed   = errors.New("feed malformed")
	ErrCacheMiss       = errors.New("cache miss")
)

// FetchError is returned when every transport strategy was exhausted without
// producing content recognizable as XML.
type FetchError struct {
	URL      string
	Attempts []error
}

func (e *FetchError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("fetching feed %s: no transport strategies configured", e.URL)
	}
	reasons := make([]string, 0, len(e.Attempts))
	for _, err := range e.Attempts {
		reasons = append(reasons, err.Error())
	}
	return fmt.Sprintf("fetching feed %s: all %d strategies failed: %s", e.URL, len(e.Attempts), strings.Join(reasons, "; "))
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFeedUnreachable
}

// ParseError is returned when fetched text cannot be interpreted as RSS 2.0
// or Atom. HTMLDocument distinguishes the common "redirected to a login or
// error page" case so callers can message it differently from truly broken
// XML.
type ParseError struct {
	Reason       string
	HTMLDocument bool
	Cause        error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parsing feed: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("parsing feed: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func (e *ParseError) Is(target error) bool {
	if e.HTMLDocument && target == ErrFeedUnreachable {
		return true
	}
	return target == ErrFeedMalformed
}

// CacheError is returned when the persistent store rejected a cache write.
// It is recoverable: the cache evicts down to its entry limit and retries
// the write once before surfacing this error.
type CacheError struct {
	URL   string
	Cause error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("caching feed %s: %v", e.URL, e.Cause)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// newHTMLParseError marks the "HTML page instead of XML" case.
func newHTMLParseError() *ParseError {
	return &ParseError{Reason: "feed unreachable: html returned", HTMLDocument: true}
}

// IsUnreachable reports whether err represents a feed that could not be
// reached (fetch exhaustion or an HTML redirect page), as opposed to one
// that was reached but malformed.
func IsUnreachable(err error) bool {
	return errors.Is(err, ErrFeedUnreachable)
}

// IsMalformed reports whether err represents a reachable but unparseable feed.
func IsMalformed(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && !pe.HTMLDocument
}
