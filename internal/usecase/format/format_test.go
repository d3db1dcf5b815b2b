package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

func ptr(v float64) *float64 { return &v }

func TestCurrency(t *testing.T) {
	cases := map[float64]string{
		0:         "£0",
		950:       "£950",
		50_000:    "£50,000",
		1_234_567: "£1,234,567",
		2_499.6:   "£2,500",
		-1_500:    "-£1,500",
	}
	for in, want := range cases {
		assert.Equal(t, want, Currency(in), "Currency(%v)", in)
	}
}

func TestRawCurrencyAppliesHeuristic(t *testing.T) {
	assert.Equal(t, "£20,000", RawCurrency(2_000_000))
	assert.Equal(t, "£1,000,000", RawCurrency(1_000_000))
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "Not specified", Amount(domain.Amount{}))
	assert.Equal(t, "£20,000", Amount(domain.Amount{Min: ptr(20_000), Max: ptr(20_000)}))
	assert.Equal(t, "£10,000 - £50,000", Amount(domain.Amount{Min: ptr(10_000), Max: ptr(50_000)}))
	assert.Equal(t, "£7,500", Amount(domain.Amount{Max: ptr(7_500)}))
}

func TestDate(t *testing.T) {
	d := time.Date(2026, time.November, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "7 Nov 2026", Date(d))
	assert.Equal(t, "7 Nov 2026", DateOr(&d, "TBC"))
	assert.Equal(t, "TBC", DateOr(nil, "TBC"))
}

func TestDateUsesLondonCalendar(t *testing.T) {
	summer := time.Date(2026, time.July, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "1 Aug 2026", Date(summer))

	winter := time.Date(2026, time.December, 31, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "31 Dec 2026", Date(winter))

	parsed, err := domain.ParseDate("2026-11-07T00:30:00+01:00")
	assert.NoError(t, err)
	assert.Equal(t, "6 Nov 2026", Date(parsed))
}

func TestDeadline(t *testing.T) {
	d := time.Date(2027, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "31 Jan 2027", Deadline(domain.Application{Deadline: &d}))
	assert.Equal(t, "Rolling", Deadline(domain.Application{DeadlineRaw: "Rolling"}))
	assert.Equal(t, "TBC", Deadline(domain.Application{}))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "33.3%", Percent(33.3))
	assert.Equal(t, "50.0%", Percent(50))
}
