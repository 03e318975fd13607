// Package identifier parses route parameters that may be either a numeric
// primary key or a human-readable slug. All entity lookups go through a Ref so
// downstream code is agnostic to which form the client used.
package identifier

import (
	"regexp"
	"strconv"
)

// numeric matches a route parameter that should be treated as a primary key.
var numeric = regexp.MustCompile(`^\d+$`)

// Ref is a resolved route identifier. Exactly one of ID and Slug is set.
type Ref struct {
	ID   int64
	Slug string
}

// ByID reports whether the reference carries a numeric primary key.
func (r Ref) ByID() bool {
	return r.ID > 0
}

// Parse interprets a route parameter. A string of digits is treated as the
// numeric primary key; anything else is treated as a slug. A parameter that is
// neither a parseable number nor an existing slug simply fails to resolve at
// lookup time, it is not a distinct error.
func Parse(param string) Ref {
	if numeric.MatchString(param) {
		if id, err := strconv.ParseInt(param, 10, 64); err == nil {
			return Ref{ID: id}
		}
	}
	return Ref{Slug: param}
}
