package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// claimDateLayouts are tried in order; the first layout that parses wins.
// Ambiguous inputs such as "01/02/2020" therefore resolve month-first,
// matching the priority order rather than any locale.
var claimDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseCurrency converts a raw money string to a decimal amount. Currency
// symbols and thousands separators are stripped; blank, "N/A" and
// unparseable input all degrade to zero. Real-world exports are messy and
// a bad cell must never abort a whole row.
func ParseCurrency(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" || s == "N/A" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseDate tries each layout in order and returns the first successful
// parse as a date-only value, or nil when the input is blank or matches
// no layout. An unparseable date is an absent date, not an error.
func ParseDate(raw string, layouts []string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d
		}
	}
	return nil
}

// SplitCPT splits a raw CPT code string on commas or semicolons, trimming
// whitespace and dropping empty tokens. Order is preserved and duplicates
// are kept.
func SplitCPT(raw string) []string {
	parts := strings.Split(strings.ReplaceAll(raw, ";", ","), ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}

// NormalizeCPT rewrites a raw CPT code list into its canonical
// comma-separated form.
func NormalizeCPT(raw string) string {
	return strings.Join(SplitCPT(raw), ",")
}
