// Package validation provides pre-flight checks for submitted input
package validation

import (
	"errors"
	"net/url"
	"strings"
)

// Validation rejection reasons. These are the exact messages rendered to
// clients, so their text is part of the API contract.
var (
	// ErrMissingURL is returned when the submission carries no url
	ErrMissingURL = errors.New("missing url")
	// ErrInvalidURL is returned when the url is not a syntactically valid absolute URL
	ErrInvalidURL = errors.New("invalid url")
	// ErrUnsupportedDomain is returned when the url's host is not allow-listed
	ErrUnsupportedDomain = errors.New("unsupported domain")
)

// SubmissionURL checks a submitted URL against the allow-listed host.
// Checks run in order and short-circuit on the first failure. The function
// is pure: no I/O, no side effects.
func SubmissionURL(rawURL, allowedHost string) error {
	if rawURL == "" {
		return ErrMissingURL
	}

	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidURL
	}

	if !strings.EqualFold(u.Hostname(), allowedHost) {
		return ErrUnsupportedDomain
	}

	return nil
}
