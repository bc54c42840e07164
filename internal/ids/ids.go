package ids

import "github.com/segmentio/ksuid"

func New() string {
	return ksuid.New().String()
}

// Valid reports whether id parses as a store identifier. Route parameters
// are checked with this before any lookup so malformed ids fail as bad
// requests rather than misses.
func Valid(id string) bool {
	_, err := ksuid.Parse(id)
	return err == nil
}
