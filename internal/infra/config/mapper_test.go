package config

import (
	"strings"
	"testing"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

func TestMapConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := MapConfig("fundingcall.yaml", YAMLConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := domain.DefaultConfig()
	if len(cfg.Data.Sources) != 1 || cfg.Data.Sources[0] != def.Data.Sources[0] {
		t.Fatalf("expected default source, got %+v", cfg.Data.Sources)
	}
	if cfg.UI.TopOrganizations != 5 || !cfg.UI.Watch || cfg.Paths.ReportsDir != "reports" {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestMapConfigRejects(t *testing.T) {
	zero := 0
	cases := []struct {
		name  string
		in    YAMLConfig
		field string
	}{
		{
			name:  "file and url",
			in:    YAMLConfig{Data: YAMLData{Sources: []YAMLSource{{File: "a.json", URL: "https://x/a.json"}}}},
			field: "data.sources[0]",
		},
		{
			name:  "duplicate names",
			in:    YAMLConfig{Data: YAMLData{Sources: []YAMLSource{{Name: "a", File: "a.json"}, {Name: "a", File: "b.json"}}}},
			field: "data.sources[1].name",
		},
		{
			name:  "records path",
			in:    YAMLConfig{Data: YAMLData{Sources: []YAMLSource{{File: "a.json", RecordsPath: "fundings"}}}},
			field: "data.sources[0].records_path",
		},
		{
			name:  "timeout",
			in:    YAMLConfig{Data: YAMLData{Timeout: "soon"}},
			field: "data.timeout",
		},
		{
			name:  "debounce",
			in:    YAMLConfig{UI: YAMLUI{SearchDebounce: "-1s"}},
			field: "ui.search_debounce",
		},
		{
			name:  "top organizations",
			in:    YAMLConfig{UI: YAMLUI{TopOrganizations: &zero}},
			field: "ui.top_organizations",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MapConfig("fundingcall.yaml", tc.in)
			if !domain.IsKind(err, domain.KindInvalidConfig) {
				t.Fatalf("expected invalid_config, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("expected %s in error, got %v", tc.field, err)
			}
		})
	}
}

func TestMapConfigNamesUnnamedSources(t *testing.T) {
	cfg, err := MapConfig("fundingcall.yaml", YAMLConfig{
		Data: YAMLData{Sources: []YAMLSource{{File: "a.json"}, {URL: "https://example.org/b.json"}}},
		UI:   YAMLUI{SearchDebounce: "0s"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Sources[0].Name != "source-1" || cfg.Data.Sources[1].Name != "source-2" {
		t.Fatalf("unexpected names: %+v", cfg.Data.Sources)
	}
	if cfg.UI.SearchDebounce != 0 {
		t.Fatalf("expected zero debounce to be honored")
	}
}
