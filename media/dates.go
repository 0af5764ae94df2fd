package media

import (
	"strings"
	"time"
)

// Layouts observed across the supported catalogs, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"20060102",
	"January 2, 2006",
	"Jan 2, 2006",
	"02.01.2006",
}

// UnifiedDate normalizes a vendor date string to the compact YYYYMMDD form
// the host schema uses. Unparseable input yields an empty string rather
// than an error: release dates are always optional metadata.
func UnifiedDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("20060102")
		}
	}

	return ""
}

// HyphenateDate converts a compact YYYYMMDD date to YYYY-MM-DD, the form
// the muxer's "created" tag expects. Input that is not a compact date is
// returned unchanged.
func HyphenateDate(s string) string {
	if t, err := time.Parse("20060102", s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}
