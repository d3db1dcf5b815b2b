package domain

import "time"

// DistributionEntry is one row of a category or career stage distribution.
type DistributionEntry struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CountEntry is one row of a ranked count, such as the top organizations.
type CountEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// FundingRange summarizes amounts over records with a positive lower bound.
// When Available is false no record qualified and the numeric fields are zero.
type FundingRange struct {
	Available bool    `json:"available"`
	Count     int     `json:"count"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	AvgMin    float64 `json:"avg_min"`
	AvgMax    float64 `json:"avg_max"`
}

// DeadlineStatus is the bucket a record's deadline falls into.
type DeadlineStatus string

const (
	DeadlineClosed      DeadlineStatus = "Closed"
	DeadlineClosingSoon DeadlineStatus = "Closing Soon"
	DeadlineOpen        DeadlineStatus = "Open"
	DeadlineNone        DeadlineStatus = "No Deadline"
)

// ClosingSoonDays is the inclusive upper bound, in days, of the Closing Soon bucket.
const ClosingSoonDays = 30

// DeadlineBuckets counts records per deadline status.
type DeadlineBuckets struct {
	Closed      int `json:"closed"`
	ClosingSoon int `json:"closing_soon"`
	Open        int `json:"open"`
	NoDeadline  int `json:"no_deadline"`
}

// Total returns the number of records counted.
func (b DeadlineBuckets) Total() int {
	return b.Closed + b.ClosingSoon + b.Open + b.NoDeadline
}

// CompetitionLevel is the overall classification of the funding landscape.
type CompetitionLevel string

const (
	CompetitionHigh   CompetitionLevel = "High"
	CompetitionMedium CompetitionLevel = "Medium"
	CompetitionLow    CompetitionLevel = "Low"
)

// Competition classifies positive funding values against their mean.
type Competition struct {
	Level      CompetitionLevel `json:"level"`
	High       int              `json:"high"`
	Medium     int              `json:"medium"`
	Low        int              `json:"low"`
	Average    float64          `json:"average"`
	Considered int              `json:"considered"`
}

// Dashboard bundles the six statistics over the full collection.
type Dashboard struct {
	Total             int                 `json:"total"`
	GeneratedAt       time.Time           `json:"generated_at"`
	Revision          string              `json:"revision"`
	Categories        []DistributionEntry `json:"categories"`
	CareerStages      []DistributionEntry `json:"career_stages"`
	FundingRange      FundingRange        `json:"funding_range"`
	Deadlines         DeadlineBuckets     `json:"deadlines"`
	TopOrganizations  []CountEntry        `json:"top_organizations"`
	CompetitionLevels Competition         `json:"competition"`
}

// Report is a stored dashboard snapshot.
type Report struct {
	ID        string         `json:"id"`
	Source    RepositoryMeta `json:"source"`
	Dashboard Dashboard      `json:"dashboard"`
	SavedAt   time.Time      `json:"saved_at"`
}
