package symbol

import (
	"strings"

	"github.com/Joseph25Rejo/quarks-inngest/pkg/errors"
)

// DefaultSuffix is appended when a ticker carries no exchange suffix.
const DefaultSuffix = ".NS"

// suffixes lists the recognized exchange suffix markers.
var suffixes = []string{".NS", ".BO"}

// Resolve canonicalizes a user-supplied ticker into the provider's
// exchange-suffixed upper-case form.
func Resolve(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.NewErrorDetails("symbol parameter is required", string(errors.SymbolInvalidError), "symbol")
	}

	resolved := strings.ToUpper(trimmed)
	if !hasSuffix(resolved) {
		resolved += DefaultSuffix
	}

	return resolved, nil
}

// Suffixes returns the recognized exchange suffix markers.
func Suffixes() []string {
	out := make([]string, len(suffixes))
	copy(out, suffixes)
	return out
}

func hasSuffix(s string) bool {
	for _, suffix := range suffixes {
		if strings.Contains(s, suffix) {
			return true
		}
	}
	return false
}
