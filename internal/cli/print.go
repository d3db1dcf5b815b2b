package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/usecase/format"
)

func checkFormat(f string) error {
	switch f {
	case "pretty", "", "json":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", f)
	}
}

func sortKeyList() string {
	keys := make([]string, 0, len(domain.SortKeys))
	for _, k := range domain.SortKeys {
		keys = append(keys, string(k))
	}
	return strings.Join(keys, "|")
}

// parseSortFlag is stricter than domain.ParseSortKey: a typo on the command line is an error.
func parseSortFlag(s string) (domain.SortKey, error) {
	key := domain.ParseSortKey(s)
	if key == domain.SortDefault && s != "" && !strings.EqualFold(strings.TrimSpace(s), string(domain.SortDefault)) {
		return key, fmt.Errorf("unsupported sort %q (expected %s)", s, sortKeyList())
	}
	return key, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printList(w io.Writer, view []domain.FundingRecord, total int, f string) error {
	if f == "json" {
		return writeJSON(w, map[string]any{
			"total":    total,
			"count":    len(view),
			"fundings": view,
		})
	}

	fmt.Fprintf(w, "Showing %d of %d opportunities\n", len(view), total)
	if len(view) == 0 {
		fmt.Fprintln(w, "(no opportunities match)")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "ORGANIZATION", "CATEGORY", "AMOUNT", "DEADLINE")
	for _, r := range view {
		t.Row(r.ID, r.Title, r.OrganizationOrDefault(), r.Category, format.Amount(r.Funding.Amount), format.Deadline(r.Application))
	}
	fmt.Fprintln(w, t.String())
	return nil
}

func printRecord(w io.Writer, r domain.FundingRecord, f string) error {
	if f == "json" {
		return writeJSON(w, r)
	}

	fmt.Fprintf(w, "%s\n", r.Title)
	fmt.Fprintf(w, "ID:            %s\n", r.ID)
	fmt.Fprintf(w, "Organization:  %s\n", r.OrganizationOrDefault())
	fmt.Fprintf(w, "Category:      %s\n", r.Category)
	if r.Subcategory != "" {
		fmt.Fprintf(w, "Subcategory:   %s\n", r.Subcategory)
	}
	fmt.Fprintf(w, "Career stage:  %s\n", r.Eligibility.CareerStage)
	fmt.Fprintf(w, "Amount:        %s\n", format.Amount(r.Funding.Amount))
	if r.Funding.Amount.DurationYears != nil {
		fmt.Fprintf(w, "Duration:      %g years\n", *r.Funding.Amount.DurationYears)
	}
	fmt.Fprintf(w, "Deadline:      %s\n", format.Deadline(r.Application))
	if r.Application.NextDeadline != nil {
		fmt.Fprintf(w, "Next deadline: %s\n", format.Date(*r.Application.NextDeadline))
	}
	if r.Application.Frequency != "" {
		fmt.Fprintf(w, "Frequency:     %s\n", r.Application.Frequency)
	}
	if r.KeyInfo.CompetitionLevel != "" {
		fmt.Fprintf(w, "Competition:   %s\n", r.KeyInfo.CompetitionLevel)
	}
	if r.KeyInfo.SuccessRate != "" {
		fmt.Fprintf(w, "Success rate:  %s\n", r.KeyInfo.SuccessRate)
	}
	if r.Application.ApplicationURL != "" {
		fmt.Fprintf(w, "Apply:         %s\n", r.Application.ApplicationURL)
	}

	if r.Description != "" {
		fmt.Fprintf(w, "\n%s\n", r.Description)
	}
	printBullets(w, "Requirements", r.Eligibility.Requirements)
	printBullets(w, "Covers", r.Funding.Covers)
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "\nTags: %s\n", strings.Join(r.Tags, ", "))
	}
	return nil
}

func printBullets(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, it := range items {
		fmt.Fprintf(w, "  - %s\n", it)
	}
}

func printDashboard(w io.Writer, d domain.Dashboard, f string) error {
	if f == "json" {
		return writeJSON(w, d)
	}

	fmt.Fprintf(w, "Total opportunities: %d\n", d.Total)

	fmt.Fprintln(w, "\nCategories:")
	for _, e := range d.Categories {
		fmt.Fprintf(w, "  %-24s %4d  %s\n", e.Key, e.Count, format.Percent(e.Percentage))
	}

	fmt.Fprintln(w, "\nCareer stages:")
	for _, e := range d.CareerStages {
		fmt.Fprintf(w, "  %-24s %4d  %s\n", e.Key, e.Count, format.Percent(e.Percentage))
	}

	fmt.Fprintln(w, "\nFunding range:")
	if !d.FundingRange.Available {
		fmt.Fprintln(w, "  No funding data available")
	} else {
		fr := d.FundingRange
		fmt.Fprintf(w, "  Range:   %s - %s\n", format.Currency(fr.Min), format.Currency(fr.Max))
		fmt.Fprintf(w, "  Average: %s - %s (%d records)\n", format.Currency(fr.AvgMin), format.Currency(fr.AvgMax), fr.Count)
	}

	dl := d.Deadlines
	fmt.Fprintln(w, "\nDeadlines:")
	fmt.Fprintf(w, "  %-24s %4d\n", domain.DeadlineOpen, dl.Open)
	fmt.Fprintf(w, "  %-24s %4d\n", domain.DeadlineClosingSoon, dl.ClosingSoon)
	fmt.Fprintf(w, "  %-24s %4d\n", domain.DeadlineClosed, dl.Closed)
	fmt.Fprintf(w, "  %-24s %4d\n", domain.DeadlineNone, dl.NoDeadline)

	fmt.Fprintln(w, "\nTop organizations:")
	for i, e := range d.TopOrganizations {
		fmt.Fprintf(w, "  %d. %-21s %4d\n", i+1, e.Key, e.Count)
	}

	c := d.CompetitionLevels
	fmt.Fprintln(w, "\nCompetition:")
	fmt.Fprintf(w, "  Level: %s (average %.2f over %d records)\n", c.Level, c.Average, c.Considered)
	fmt.Fprintf(w, "  High %d / Medium %d / Low %d\n", c.High, c.Medium, c.Low)
	return nil
}

func printValidation(w io.Writer, rep domain.ValidationReport, f string) error {
	if f == "json" {
		return writeJSON(w, rep)
	}

	fmt.Fprintf(w, "Source:  %s\n", rep.Source)
	fmt.Fprintf(w, "Records: %d (%d valid, %d invalid)\n", rep.Total, rep.Valid, len(rep.Invalid))
	if len(rep.Issues) == 0 {
		fmt.Fprintln(w, "OK")
		return nil
	}
	fmt.Fprintln(w)
	for _, is := range rep.Issues {
		fmt.Fprintf(w, "- %s\n", is.String())
	}
	return nil
}
