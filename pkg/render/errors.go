package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-contacts/pkg/contact"
)

// MapError turns an operation error into form-level messages. Collection
// sentinels get stable wording; anything else surfaces its own message.
func MapError(err error) []string {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, contact.ErrNotFound):
		return []string{"The contact no longer exists."}
	case errors.Is(err, contact.ErrInvalidArgument):
		return []string{"A contact id is required."}
	case errors.Is(err, contact.ErrInvalidInput):
		return []string{"The submitted contact could not be read."}
	default:
		return normalizeMessages([]string{err.Error()})
	}
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
