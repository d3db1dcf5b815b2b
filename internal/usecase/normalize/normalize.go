// Package normalize turns generic JSON record entries into domain.FundingRecord values.
//
// Every field has a documented fallback. A missing field silently takes its default; a field
// that is present with the wrong type also takes its default and is reported as a FieldIssue.
// Nothing here fails: a collection always normalizes, however heterogeneous its entries are.
package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// Records normalizes every entry of a raw dataset, preserving order.
// Entries that are not JSON objects are skipped and reported.
func Records(entries []any) ([]domain.FundingRecord, []domain.FieldIssue) {
	out := make([]domain.FundingRecord, 0, len(entries))
	var issues []domain.FieldIssue

	for i, e := range entries {
		obj, ok := e.(map[string]any)
		if !ok {
			issues = append(issues, domain.FieldIssue{
				Index:   i,
				Field:   "$",
				Kind:    domain.KindMalformedField,
				Message: fmt.Sprintf("expected object, got %s", typeName(e)),
			})
			continue
		}
		rec, recIssues := record(i, obj)
		out = append(out, rec)
		issues = append(issues, recIssues...)
	}

	return out, issues
}

// Record normalizes a single entry.
func Record(raw map[string]any) (domain.FundingRecord, []domain.FieldIssue) {
	return record(0, raw)
}

func record(index int, raw map[string]any) (domain.FundingRecord, []domain.FieldIssue) {
	r := &reader{index: index}
	r.id = r.str(raw, "id", "")

	rec := domain.FundingRecord{
		ID:           r.id,
		Title:        r.str(raw, "title", ""),
		Organization: r.str(raw, "organization", ""),
		Description:  r.str(raw, "description", ""),
		Category:     r.nonEmpty(raw, "category", domain.DefaultCategory),
		Subcategory:  r.str(raw, "subcategory", ""),
		Tags:         r.strings(raw, "tags"),
		Status:       r.nonEmpty(raw, "status", domain.DefaultStatus),
		LastUpdated:  r.str(raw, "last_updated", ""),
		ScrapedFrom:  r.str(raw, "scraped_from", ""),
	}

	elig := r.object(raw, "eligibility")
	rec.Eligibility = domain.Eligibility{
		CareerStage:  r.nonEmpty(elig, "eligibility.career_stage", domain.DefaultCareerStage),
		Disciplines:  r.strings(elig, "eligibility.disciplines"),
		Requirements: r.strings(elig, "eligibility.requirements"),
	}

	details := r.object(raw, "funding_details")
	rec.Funding = domain.FundingDetails{
		Amount: r.amount(r.object(details, "funding_details.amount")),
		Covers: r.strings(details, "funding_details.covers"),
	}

	app := r.object(raw, "application")
	deadline, deadlineRaw := r.date(app, "application.deadline")
	next, nextRaw := r.date(app, "application.next_deadline")
	rec.Application = domain.Application{
		Deadline:        deadline,
		DeadlineRaw:     deadlineRaw,
		NextDeadline:    next,
		NextDeadlineRaw: nextRaw,
		Frequency:       r.str(app, "application.frequency", ""),
		ApplicationURL:  r.str(app, "application.application_url", ""),
	}

	info := r.object(raw, "key_info")
	rec.KeyInfo = domain.KeyInfo{
		PriorityLevel:    r.str(info, "key_info.priority_level", ""),
		CompetitionLevel: r.str(info, "key_info.competition_level", ""),
		SuccessRate:      r.str(info, "key_info.success_rate", ""),
	}

	return rec, r.issues
}

type reader struct {
	index  int
	id     string
	issues []domain.FieldIssue
}

func (r *reader) report(field string, kind domain.ErrorKind, format string, args ...any) {
	r.issues = append(r.issues, domain.FieldIssue{
		Index:    r.index,
		RecordID: r.id,
		Field:    field,
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
	})
}

// lookup resolves the last dotted segment of field inside obj.
func lookup(obj map[string]any, field string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	key := field
	if i := strings.LastIndexByte(field, '.'); i >= 0 {
		key = field[i+1:]
	}
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (r *reader) str(obj map[string]any, field, def string) string {
	v, ok := lookup(obj, field)
	if !ok {
		return def
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64, json.Number, bool:
		r.report(field, domain.KindMalformedField, "expected string, got %s", typeName(v))
		return fmt.Sprint(t)
	default:
		r.report(field, domain.KindMalformedField, "expected string, got %s", typeName(v))
		return def
	}
}

// nonEmpty is str where a blank value also falls back to def.
func (r *reader) nonEmpty(obj map[string]any, field, def string) string {
	s := r.str(obj, field, def)
	if s == "" {
		return def
	}
	return s
}

func (r *reader) strings(obj map[string]any, field string) []string {
	v, ok := lookup(obj, field)
	if !ok {
		return []string{}
	}
	arr, ok := v.([]any)
	if !ok {
		r.report(field, domain.KindMalformedField, "expected array, got %s", typeName(v))
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			r.report(fmt.Sprintf("%s[%d]", field, i), domain.KindMalformedField, "expected string, got %s", typeName(item))
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (r *reader) object(obj map[string]any, field string) map[string]any {
	v, ok := lookup(obj, field)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		r.report(field, domain.KindMalformedField, "expected object, got %s", typeName(v))
		return nil
	}
	return m
}

func (r *reader) number(obj map[string]any, field string) *float64 {
	v, ok := lookup(obj, field)
	if !ok {
		return nil
	}
	f, err := toFloat(v)
	if err != nil {
		r.report(field, domain.KindMalformedField, "%v", err)
		return nil
	}
	return &f
}

func (r *reader) amount(obj map[string]any) domain.Amount {
	rawMin := r.number(obj, "funding_details.amount.min")
	rawMax := r.number(obj, "funding_details.amount.max")

	if rawMin != nil && rawMax != nil && *rawMin > *rawMax {
		r.report("funding_details.amount", domain.KindMalformedField, "min %v exceeds max %v, bounds swapped", *rawMin, *rawMax)
		rawMin, rawMax = rawMax, rawMin
	}
	if rawMin == nil && rawMax != nil {
		rawMin = rawMax
	}
	if rawMax == nil && rawMin != nil {
		rawMax = rawMin
	}

	a := domain.Amount{
		RawMin:        rawMin,
		RawMax:        rawMax,
		Currency:      r.nonEmpty(obj, "funding_details.amount.currency", domain.DefaultCurrency),
		DurationYears: r.number(obj, "funding_details.amount.duration_years"),
	}
	if rawMin != nil {
		v := domain.NormalizeMinorUnits(*rawMin)
		a.Min = &v
	}
	if rawMax != nil {
		v := domain.NormalizeMinorUnits(*rawMax)
		a.Max = &v
	}
	return a
}

func (r *reader) date(obj map[string]any, field string) (*time.Time, string) {
	v, ok := lookup(obj, field)
	if !ok {
		return nil, ""
	}
	s, ok := v.(string)
	if !ok {
		r.report(field, domain.KindMalformedField, "expected date string, got %s", typeName(v))
		return nil, fmt.Sprint(v)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ""
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		r.report(field, domain.KindUnparseableDate, "cannot parse %q", s)
		return nil, s
	}
	return &t, s
}

func toFloat(v any) (float64, error) {
	f, err := parseFloat(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("expected finite number, got %v", v)
	}
	return f, nil
}

func parseFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case json.Number:
		return t.Float64()
	case string:
		clean := strings.NewReplacer("£", "", ",", "", " ", "").Replace(strings.TrimSpace(t))
		if clean == "" {
			return 0, fmt.Errorf("empty number")
		}
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return 0, fmt.Errorf("expected number, got %q", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number, got %s", typeName(v))
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64, int, int64, json.Number:
		return "number"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
