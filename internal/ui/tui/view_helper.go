package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/format"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func orAll(s string) string {
	if s == "" {
		return "All"
	}
	return s
}

func renderRecordDetail(r domain.FundingRecord) string {
	var b strings.Builder

	b.WriteString(r.Title)
	b.WriteString("\n\n")

	field := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&b, "%-14s %s\n", label+":", value)
	}
	field("ID", r.ID)
	field("Organization", r.OrganizationOrDefault())
	field("Category", r.Category)
	field("Subcategory", r.Subcategory)
	field("Career stage", r.Eligibility.CareerStage)
	field("Amount", format.Amount(r.Funding.Amount))
	field("Deadline", format.Deadline(r.Application))
	if r.Application.NextDeadline != nil {
		field("Next deadline", format.Date(*r.Application.NextDeadline))
	}
	field("Frequency", r.Application.Frequency)
	field("Competition", r.KeyInfo.CompetitionLevel)
	field("Success rate", r.KeyInfo.SuccessRate)
	field("Apply", r.Application.ApplicationURL)

	if r.Description != "" {
		b.WriteString("\n")
		b.WriteString(r.Description)
		b.WriteString("\n")
	}

	bullets := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(title)
		b.WriteString(":\n")
		for _, it := range items {
			b.WriteString("  - ")
			b.WriteString(it)
			b.WriteString("\n")
		}
	}
	bullets("Requirements", r.Eligibility.Requirements)
	bullets("Covers", r.Funding.Covers)

	if len(r.Tags) > 0 {
		b.WriteString("\nTags: ")
		b.WriteString(strings.Join(r.Tags, ", "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderDashboard(d domain.Dashboard) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total opportunities: %d\n", d.Total)

	dist := func(title string, entries []domain.DistributionEntry) {
		fmt.Fprintf(&b, "\n%s:\n", title)
		if len(entries) == 0 {
			b.WriteString("  (none)\n")
			return
		}
		for _, e := range entries {
			fmt.Fprintf(&b, "  %-24s %4d  %s\n", clampString(e.Key, 24), e.Count, format.Percent(e.Percentage))
		}
	}
	dist("Categories", d.Categories)
	dist("Career stages", d.CareerStages)

	b.WriteString("\nFunding range:\n")
	if fr := d.FundingRange; !fr.Available {
		b.WriteString("  No funding data available\n")
	} else {
		fmt.Fprintf(&b, "  Range:   %s - %s\n", format.Currency(fr.Min), format.Currency(fr.Max))
		fmt.Fprintf(&b, "  Average: %s - %s (%d records)\n", format.Currency(fr.AvgMin), format.Currency(fr.AvgMax), fr.Count)
	}

	dl := d.Deadlines
	b.WriteString("\nDeadlines:\n")
	fmt.Fprintf(&b, "  %-24s %4d\n", domain.DeadlineOpen, dl.Open)
	fmt.Fprintf(&b, "  %-24s %4d\n", domain.DeadlineClosingSoon, dl.ClosingSoon)
	fmt.Fprintf(&b, "  %-24s %4d\n", domain.DeadlineClosed, dl.Closed)
	fmt.Fprintf(&b, "  %-24s %4d\n", domain.DeadlineNone, dl.NoDeadline)

	b.WriteString("\nTop organizations:\n")
	for i, e := range d.TopOrganizations {
		fmt.Fprintf(&b, "  %d. %-21s %4d\n", i+1, clampString(e.Key, 21), e.Count)
	}

	c := d.CompetitionLevels
	b.WriteString("\nCompetition:\n")
	fmt.Fprintf(&b, "  Level: %s (average %s over %d records)\n", c.Level, format.Currency(c.Average), c.Considered)
	fmt.Fprintf(&b, "  High %d / Medium %d / Low %d\n", c.High, c.Medium, c.Low)

	return b.String()
}
