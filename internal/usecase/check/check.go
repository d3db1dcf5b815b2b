// Package check runs required-field checks against raw record entries.
package check

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// Rule is a JSONPath expression that must resolve to a non-empty value.
type Rule struct {
	Field string
	Expr  string
}

// RequiredRules are the fields every entry of a funding data file is expected to carry.
var RequiredRules = []Rule{
	{Field: "id", Expr: "$.id"},
	{Field: "title", Expr: "$.title"},
	{Field: "organization", Expr: "$.organization"},
	{Field: "category", Expr: "$.category"},
	{Field: "description", Expr: "$.description"},
	{Field: "eligibility", Expr: "$.eligibility"},
	{Field: "funding_details.amount", Expr: "$.funding_details.amount"},
	{Field: "application.deadline", Expr: "$.application.deadline"},
}

// Required evaluates rules against one decoded entry and returns a failure per missing field.
func Required(index int, entry any, rules []Rule) []domain.FieldIssue {
	id := ""
	if obj, ok := entry.(map[string]any); ok {
		id, _ = obj["id"].(string)
	} else {
		return []domain.FieldIssue{{
			Index:   index,
			Field:   "$",
			Kind:    domain.KindMalformedField,
			Message: "entry is not an object",
		}}
	}

	var out []domain.FieldIssue
	for _, rule := range rules {
		val, err := jsonpath.Get(rule.Expr, entry)
		if err != nil || isEmptyValue(val) {
			msg := "missing required field"
			if err != nil {
				msg = fmt.Sprintf("missing required field: %v", err)
			}
			out = append(out, domain.FieldIssue{
				Index:    index,
				RecordID: id,
				Field:    rule.Field,
				Kind:     domain.KindMalformedField,
				Message:  msg,
			})
		}
	}
	return out
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
