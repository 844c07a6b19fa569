// Package truncate shortens long text bodies in API payloads.
//
// Lengths are measured in grapheme clusters, so a limit of 400 keeps 400
// user-perceived characters regardless of how many bytes or code points
// they take.
package truncate

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// DefaultLimit is applied when a caller asks for truncation without a limit.
const DefaultLimit = 400

// QueryParam is the request query parameter carrying the truncation limit.
const QueryParam = "truncate"

// ErrInvalidLimit is returned by ParseLimit for malformed limits.
var ErrInvalidLimit = errors.New("invalid truncate limit")

// Truncatable is a payload with a long-form text body.
type Truncatable interface {
	TextBody() string
	// SetTruncatedBody stores a shortened body and marks the payload as truncated.
	SetTruncatedBody(body string)
}

// Body returns the first limit grapheme clusters of s, or s itself when it
// is already within the limit. Negative limits are treated as zero.
func Body(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}

	end, state := 0, -1
	rest := s
	for count := 0; len(rest) > 0; count++ {
		if count == limit {
			return s[:end]
		}
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		end += len(cluster)
	}
	return s
}

// Field truncates p's body in place. A nil limit leaves p untouched, as does
// a body already within the limit; the truncation marker is only set when
// the body actually got shorter. Implementations must tolerate a nil
// receiver, since a typed nil pointer passes the p == nil check.
func Field(p Truncatable, limit *int) {
	if p == nil || limit == nil {
		return
	}

	body := p.TextBody()
	if short := Body(body, *limit); len(short) < len(body) {
		p.SetTruncatedBody(short)
	}
}

// Fields applies Field to every element of items, in order.
func Fields[T any, PT interface {
	*T
	Truncatable
}](items []T, limit *int) {
	if limit == nil {
		return
	}
	for i := range items {
		Field(PT(&items[i]), limit)
	}
}

// ParseLimit reads the truncation limit from query values. It returns nil
// when the parameter is absent or empty, defaultLimit for "default" or
// "true", and the parsed value for a non-negative integer.
func ParseLimit(values url.Values, defaultLimit int) (*int, error) {
	raw := strings.TrimSpace(values.Get(QueryParam))
	switch strings.ToLower(raw) {
	case "":
		return nil, nil
	case "default", "true":
		return &defaultLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	return &limit, nil
}
