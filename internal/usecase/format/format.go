// Package format renders amounts and dates in the fixed British convention used by every
// view: grouped digits, no decimals, short day-month-year dates.
package format

import (
	"math"
	"strconv"
	"time"
	_ "time/tzdata"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

const currencySymbol = "£"

var printer = message.NewPrinter(language.BritishEnglish)

// London is the zone dates are shown in. Deadlines are stored in UTC.
var London = mustLoadLocation("Europe/London")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Number groups an amount's digits, rounded to whole units.
func Number(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// Currency formats an already normalized amount, e.g. "£50,000".
func Currency(v float64) string {
	if v < 0 {
		return "-" + currencySymbol + Number(-v)
	}
	return currencySymbol + Number(v)
}

// RawCurrency applies the minor-unit heuristic before formatting.
func RawCurrency(v float64) string {
	return Currency(domain.NormalizeMinorUnits(v))
}

// Amount formats a record's range: "£10,000 - £50,000", a single value when both bounds
// agree, or "Not specified" when neither is known.
func Amount(a domain.Amount) string {
	if a.IsZero() {
		return "Not specified"
	}
	lo, hi := a.MinValue(), a.MaxValue()
	if lo == hi {
		return Currency(hi)
	}
	return Currency(lo) + " - " + Currency(hi)
}

// Date formats a date as "7 Nov 2026" on the London calendar.
func Date(t time.Time) string {
	return t.In(London).Format("2 Jan 2006")
}

// DateOr formats d, or returns fallback when it is nil.
func DateOr(d *time.Time, fallback string) string {
	if d == nil {
		return fallback
	}
	return Date(*d)
}

// Deadline formats an application deadline, keeping unparseable source text visible.
func Deadline(app domain.Application) string {
	if app.Deadline != nil {
		return Date(*app.Deadline)
	}
	if app.DeadlineRaw != "" {
		return app.DeadlineRaw
	}
	return "TBC"
}

// Percent formats a one-decimal percentage.
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
