package frozen

import (
	"go/token"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	keywordSuffix  = "_"
	invalidPrefix  = "v_"
	collisionDelim = "_"
)

// SanitizeKey rewrites k into a usable field name:
//   - a Go keyword gets a trailing "_" ("type" → "type_");
//   - anything that is still not a Go identifier gets a "v_" prefix and every
//     rune that cannot appear in an identifier becomes "_" ("1st" → "v_1st",
//     "max-size" → "v_max_size", "" → "v_").
//
// Valid identifiers pass through unchanged. The result is always a valid
// identifier and the rule is deterministic.
func SanitizeKey(k string) string {
	if token.IsKeyword(k) {
		k += keywordSuffix
	}
	if token.IsIdentifier(k) {
		return k
	}

	return invalidPrefix + strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, k)
}

// sanitizeKeys maps every original key to a distinct sanitized name.
// Keys are processed in sorted order; when two keys sanitize to the same
// name, the later one gets "_2", "_3", ... (skipping names already taken).
func sanitizeKeys(original []string) map[string]string {
	sorted := append([]string(nil), original...)
	sort.Strings(sorted)

	out := make(map[string]string, len(sorted))
	taken := make(map[string]bool, len(sorted))
	for _, k := range sorted {
		name := SanitizeKey(k)
		if taken[name] {
			for i := 2; ; i++ {
				candidate := name + collisionDelim + strconv.Itoa(i)
				if !taken[candidate] {
					name = candidate
					break
				}
			}
		}
		taken[name] = true
		out[k] = name
	}

	return out
}
