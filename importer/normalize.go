// Package importer implements the bulk-import pipeline: loading claim
// rows from CSV/JSON exports with inconsistent headers, normalizing and
// parsing their values, and reconciling them against stored records.
package importer

import (
	"strings"
	"unicode"
)

// Row is a single loaded record keyed by normalized field names.
type Row map[string]string

// NormalizeKey reduces a header name to lowercase alphanumerics so that
// variants like "Claim ID", "claim_id" and "CLAIM-ID" all map to
// "claimid".
func NormalizeKey(key string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(key) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// NormalizeRow returns a copy of raw with every key normalized. When two
// raw keys collapse to the same normalized key the later one wins.
func NormalizeRow(raw map[string]string) Row {
	out := make(Row, len(raw))
	for k, v := range raw {
		out[NormalizeKey(k)] = v
	}
	return out
}

// Pick returns the value of the first candidate key present in the row
// with a non-blank value, or "" when none match. Candidate keys must
// already be normalized.
func Pick(row Row, keys ...string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
