package tenant

import (
	"regexp"
	"strings"
)

// MaxSlugLength keeps slugs DNS-compatible and bounds the work done on
// attacker-controlled path segments.
const MaxSlugLength = 63

// slugPattern is the canonical slug grammar: lowercase alphanumeric
// start, hyphens allowed inside. Underscores never appear in canonical
// form; NormalizeSlug maps them to hyphens first.
var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// NormalizeSlug maps a raw slug to canonical form: trimmed, lowercased,
// underscores replaced with hyphens. This single rule is applied to
// every slug before any comparison or lookup — both the path-derived
// slug and the token's tenant claim — so dash/underscore variants of
// the same tenant can never disagree between code paths.
func NormalizeSlug(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "_", "-")
}

// ValidSlug reports whether s is a canonical slug. Callers are expected
// to normalize first.
func ValidSlug(s string) bool {
	if len(s) < 1 || len(s) > MaxSlugLength {
		return false
	}
	return slugPattern.MatchString(s)
}
