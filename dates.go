package moneta

import (
	"fmt"
	"time"
)

// StampFormat is the format operation dates carry in the export.
const StampFormat = "2006-01-02 15:04:05"

// dayFormat is the permissive fallback for date cells without a time part.
const dayFormat = "2006-01-02"

// ReportDateFormat is the format dates take in rendered reports.
const ReportDateFormat = "02.01.2006"

// ParseStamp parses an operation date cell. It accepts the full stamp format
// and, more leniently, a bare date.
func ParseStamp(s string) (time.Time, error) {
	if t, err := time.Parse(StampFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid operation date %q, want format %q: %w", s, StampFormat, err)
	}
	return t, nil
}
