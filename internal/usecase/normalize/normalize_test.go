package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

func decode(t *testing.T, doc string) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &m))
	return m
}

func TestRecordFullEntry(t *testing.T) {
	raw := decode(t, `{
		"id": "ukri_future_leaders",
		"title": "Future Leaders Fellowships",
		"organization": "UKRI",
		"category": "ukri",
		"subcategory": "mrc",
		"description": "Long-term support for research leaders.",
		"tags": ["fellowship", "leadership"],
		"eligibility": {"career_stage": "Early Career", "disciplines": ["All"], "requirements": ["PhD"]},
		"funding_details": {"amount": {"min": 10000, "max": 50000, "currency": "GBP", "duration_years": 4}, "covers": ["Salary"]},
		"application": {"deadline": "2026-11-07", "next_deadline": "2027-11-07", "frequency": "Annual", "application_url": "https://example.com/apply"},
		"key_info": {"priority_level": "High", "competition_level": "Very Competitive", "success_rate": "N/A"},
		"status": "active"
	}`)

	rec, issues := Record(raw)
	require.Empty(t, issues)

	assert.Equal(t, "ukri_future_leaders", rec.ID)
	assert.Equal(t, "ukri", rec.Category)
	assert.Equal(t, "Early Career", rec.Eligibility.CareerStage)
	assert.Equal(t, []string{"fellowship", "leadership"}, rec.Tags)
	assert.Equal(t, 10000.0, rec.Funding.Amount.MinValue())
	assert.Equal(t, 50000.0, rec.Funding.Amount.MaxValue())
	require.NotNil(t, rec.Funding.Amount.DurationYears)
	assert.Equal(t, 4.0, *rec.Funding.Amount.DurationYears)
	require.NotNil(t, rec.Application.Deadline)
	assert.True(t, rec.Application.Deadline.Equal(time.Date(2026, 11, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Very Competitive", rec.KeyInfo.CompetitionLevel)
}

func TestRecordDefaults(t *testing.T) {
	rec, issues := Record(decode(t, `{"id": "bare", "title": "Bare"}`))
	require.Empty(t, issues)

	assert.Equal(t, domain.DefaultCategory, rec.Category)
	assert.Equal(t, domain.DefaultCareerStage, rec.Eligibility.CareerStage)
	assert.Equal(t, domain.DefaultStatus, rec.Status)
	assert.Equal(t, domain.DefaultCurrency, rec.Funding.Amount.Currency)
	assert.NotNil(t, rec.Tags)
	assert.Empty(t, rec.Tags)
	assert.True(t, rec.Funding.Amount.IsZero())
	assert.Nil(t, rec.Application.Deadline)
}

func TestRecordMinorUnitHeuristic(t *testing.T) {
	rec, _ := Record(decode(t, `{"funding_details": {"amount": {"min": 2000000, "max": 2000000}}}`))

	assert.Equal(t, 20000.0, rec.Funding.Amount.MinValue())
	assert.Equal(t, 20000.0, rec.Funding.Amount.MaxValue())
	require.NotNil(t, rec.Funding.Amount.RawMax)
	assert.Equal(t, 2000000.0, *rec.Funding.Amount.RawMax)
}

func TestRecordSingleBoundMirrors(t *testing.T) {
	rec, _ := Record(decode(t, `{"funding_details": {"amount": {"max": 75000}}}`))
	require.NotNil(t, rec.Funding.Amount.Min)
	assert.Equal(t, 75000.0, *rec.Funding.Amount.Min)

	rec, _ = Record(decode(t, `{"funding_details": {"amount": {"min": "£12,500"}}}`))
	require.NotNil(t, rec.Funding.Amount.Max)
	assert.Equal(t, 12500.0, *rec.Funding.Amount.Max)
}

func TestRecordMalformedFieldsAreRecovered(t *testing.T) {
	rec, issues := Record(decode(t, `{
		"id": "odd",
		"category": 7,
		"tags": "not-a-list",
		"eligibility": "everyone",
		"funding_details": {"amount": {"min": "lots", "max": 1000}},
		"application": {"deadline": 20261107}
	}`))

	assert.Equal(t, "7", rec.Category)
	assert.Empty(t, rec.Tags)
	assert.Equal(t, domain.DefaultCareerStage, rec.Eligibility.CareerStage)
	assert.Equal(t, 1000.0, rec.Funding.Amount.MinValue())
	assert.Nil(t, rec.Application.Deadline)

	fields := map[string]domain.ErrorKind{}
	for _, is := range issues {
		fields[is.Field] = is.Kind
		assert.Equal(t, "odd", is.RecordID)
	}
	assert.Equal(t, domain.KindMalformedField, fields["category"])
	assert.Equal(t, domain.KindMalformedField, fields["tags"])
	assert.Equal(t, domain.KindMalformedField, fields["eligibility"])
	assert.Equal(t, domain.KindMalformedField, fields["funding_details.amount.min"])
	assert.Equal(t, domain.KindMalformedField, fields["application.deadline"])
}

func TestRecordRejectsNonFiniteAmounts(t *testing.T) {
	records, issues := Records([]any{
		decode(t, `{"id": "ok", "funding_details": {"amount": {"min": 10000, "max": 50000}}}`),
		decode(t, `{"id": "bad", "funding_details": {"amount": {"min": "NaN", "max": "Inf"}}}`),
		decode(t, `{"id": "worse", "funding_details": {"amount": {"min": "-Infinity"}}}`),
	})
	require.Len(t, records, 3)

	for _, rec := range records[1:] {
		assert.True(t, rec.Funding.Amount.IsZero(), "record %s", rec.ID)
		assert.Zero(t, rec.Funding.Amount.MinValue())
		assert.Zero(t, rec.Funding.Amount.MaxValue())
	}

	fields := map[string]bool{}
	for _, is := range issues {
		assert.Equal(t, domain.KindMalformedField, is.Kind)
		fields[is.RecordID+"/"+is.Field] = true
	}
	assert.True(t, fields["bad/funding_details.amount.min"])
	assert.True(t, fields["bad/funding_details.amount.max"])
	assert.True(t, fields["worse/funding_details.amount.min"])
	assert.False(t, fields["ok/funding_details.amount.min"])
}

func TestRecordUnparseableDate(t *testing.T) {
	rec, issues := Record(decode(t, `{"id": "tbc", "application": {"deadline": "Rolling"}}`))

	assert.Nil(t, rec.Application.Deadline)
	assert.Equal(t, "Rolling", rec.Application.DeadlineRaw)
	require.Len(t, issues, 1)
	assert.Equal(t, domain.KindUnparseableDate, issues[0].Kind)
}

func TestRecordSwapsInvertedBounds(t *testing.T) {
	rec, issues := Record(decode(t, `{"funding_details": {"amount": {"min": 9000, "max": 1000}}}`))

	assert.Equal(t, 1000.0, rec.Funding.Amount.MinValue())
	assert.Equal(t, 9000.0, rec.Funding.Amount.MaxValue())
	require.Len(t, issues, 1)
	assert.Equal(t, "funding_details.amount", issues[0].Field)
}

func TestRecordsSkipsNonObjects(t *testing.T) {
	recs, issues := Records([]any{
		map[string]any{"id": "a"},
		"junk",
		map[string]any{"id": "b"},
	})

	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].ID)
	assert.Equal(t, "b", recs[1].ID)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Index)
}

func TestRecordsEmpty(t *testing.T) {
	recs, issues := Records(nil)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
	assert.Empty(t, issues)
}
