package media

import (
	"errors"
	"fmt"
)

// ErrNotFound marks the one condition extractors never swallow: the
// requested id does not exist in the requested region. Callers match it
// with errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError builds a user-facing not-found error with a descriptive
// message. A missing top-level catalog object always means the id is
// genuinely absent from the region, never a partial result.
func NotFoundError(what string) error {
	return fmt.Errorf("%w: this %s either does not exist or is unavailable in the current region", ErrNotFound, what)
}
