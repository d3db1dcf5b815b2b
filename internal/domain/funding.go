package domain

import "time"

// Field defaults applied when a record omits a value or carries one of the wrong type.
const (
	DefaultCategory     = "Other"
	DefaultCareerStage  = "All Stages"
	DefaultOrganization = "Unknown"
	DefaultCurrency     = "GBP"
	DefaultStatus       = "active"
)

// Eligibility describes who may apply.
type Eligibility struct {
	CareerStage  string   `json:"career_stage"`
	Disciplines  []string `json:"disciplines"`
	Requirements []string `json:"requirements"`
}

// Amount is a funding range in major currency units.
//
// Min and Max are normalized: the minor-unit heuristic has been applied and a missing bound
// mirrors the present one. RawMin and RawMax keep the numbers as they appeared in the source.
type Amount struct {
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	RawMin        *float64 `json:"raw_min,omitempty"`
	RawMax        *float64 `json:"raw_max,omitempty"`
	Currency      string   `json:"currency"`
	DurationYears *float64 `json:"duration_years,omitempty"`
}

// MinValue returns the normalized lower bound or 0.
func (a Amount) MinValue() float64 {
	if a.Min != nil {
		return *a.Min
	}
	if a.Max != nil {
		return *a.Max
	}
	return 0
}

// MaxValue returns the normalized upper bound, falling back to Min, then 0.
func (a Amount) MaxValue() float64 {
	if a.Max != nil {
		return *a.Max
	}
	if a.Min != nil {
		return *a.Min
	}
	return 0
}

// IsZero reports whether neither bound is known.
func (a Amount) IsZero() bool {
	return a.Min == nil && a.Max == nil
}

// FundingDetails groups the monetary terms of an opportunity.
type FundingDetails struct {
	Amount Amount   `json:"amount"`
	Covers []string `json:"covers"`
}

// Application holds deadlines and where to apply.
// A nil Deadline means the source had none or it could not be parsed; the raw text is kept.
type Application struct {
	Deadline        *time.Time `json:"deadline,omitempty"`
	NextDeadline    *time.Time `json:"next_deadline,omitempty"`
	DeadlineRaw     string     `json:"deadline_raw,omitempty"`
	NextDeadlineRaw string     `json:"next_deadline_raw,omitempty"`
	Frequency       string     `json:"frequency"`
	ApplicationURL  string     `json:"application_url"`
}

// KeyInfo carries display-only assessments supplied by the data file.
type KeyInfo struct {
	PriorityLevel    string `json:"priority_level"`
	CompetitionLevel string `json:"competition_level"`
	SuccessRate      string `json:"success_rate"`
}

// FundingRecord is one funding opportunity. Records are immutable once loaded.
type FundingRecord struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Organization string         `json:"organization"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Subcategory  string         `json:"subcategory,omitempty"`
	Tags         []string       `json:"tags"`
	Eligibility  Eligibility    `json:"eligibility"`
	Funding      FundingDetails `json:"funding_details"`
	Application  Application    `json:"application"`
	KeyInfo      KeyInfo        `json:"key_info"`
	Status       string         `json:"status"`
	LastUpdated  string         `json:"last_updated,omitempty"`
	ScrapedFrom  string         `json:"scraped_from,omitempty"`
}

// OrganizationOrDefault returns the organization, or DefaultOrganization when blank.
func (r FundingRecord) OrganizationOrDefault() string {
	if r.Organization == "" {
		return DefaultOrganization
	}
	return r.Organization
}

// RawDataset is the undecoded output of a record source: the record entries as generic JSON
// values plus whatever metadata the document carried.
type RawDataset struct {
	Source      string
	Entries     []any
	LastUpdated string
}
