package util

import "github.com/oklog/ulid/v2"

// NewULID returns the identifier assigned to a generated quiz. ulid.Make
// draws from a process-wide monotonic source, so IDs minted within the same
// millisecond still sort in creation order.
func NewULID() string {
	return ulid.Make().String()
}
