package domain

import (
	"errors"
	"strings"
	"time"
)

// MaxTime sorts after every real deadline.
var MaxTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"02/01/2006",
	"2/1/2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ErrUnparseableDate is returned by ParseDate for text matching none of the known layouts.
var ErrUnparseableDate = errors.New("unparseable date")

// ParseDate parses a deadline as written in the data files.
// Date-only values resolve to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparseableDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrUnparseableDate
}
