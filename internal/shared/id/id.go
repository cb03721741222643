// Package id generates the opaque identifiers used as primary identity for
// every persisted entity. IDs are UUIDv4 strings so cross-system references
// and upsert-by-id stay safe without a central sequence.
package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Entity prefixes for human-readable display IDs (Stripe-style). The raw
// UUID remains the primary key; prefixed forms appear in batch names and
// logs only.
const (
	PrefixTicket = "tk"
	PrefixBatch  = "tb"
	PrefixAction = "ta"
)

// New returns a new random UUID string.
func New() string {
	return uuid.NewString()
}

// Validate reports whether s is a well-formed UUID.
func Validate(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid id %q: %w", s, err)
	}
	return nil
}

// Short returns the first segment of a UUID, for compact display.
func Short(s string) string {
	if i := strings.IndexByte(s, '-'); i > 0 {
		return s[:i]
	}
	return s
}

// FormatWithPrefix renders an ID in "prefix_shortid" display form.
func FormatWithPrefix(prefix, id string) string {
	if id == "" {
		return ""
	}
	return fmt.Sprintf("%s_%s", prefix, Short(id))
}
