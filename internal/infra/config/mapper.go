package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// MapConfig applies a parsed file on top of domain.DefaultConfig.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if len(y.Data.Sources) > 0 {
		cfg.Data.Sources = make([]domain.SourceConfig, 0, len(y.Data.Sources))
		seen := map[string]bool{}
		for i, s := range y.Data.Sources {
			field := fmt.Sprintf("data.sources[%d]", i)
			file, url := strings.TrimSpace(s.File), strings.TrimSpace(s.URL)
			switch {
			case file == "" && url == "":
				return domain.Config{}, invalidField(path, field, "one of file or url is required")
			case file != "" && url != "":
				return domain.Config{}, invalidField(path, field, "file and url are mutually exclusive")
			}

			name := strings.TrimSpace(s.Name)
			if name == "" {
				name = fmt.Sprintf("source-%d", i+1)
			}
			if seen[name] {
				return domain.Config{}, invalidField(path, field+".name", fmt.Sprintf("duplicate source name %q", name))
			}
			seen[name] = true

			recordsPath := strings.TrimSpace(s.RecordsPath)
			if recordsPath == "" {
				recordsPath = domain.DefaultRecordsPath
			}
			if !strings.HasPrefix(recordsPath, "$") {
				return domain.Config{}, invalidField(path, field+".records_path", "must be a JSONPath expression starting with $")
			}

			cfg.Data.Sources = append(cfg.Data.Sources, domain.SourceConfig{
				Name:        name,
				File:        file,
				URL:         url,
				RecordsPath: recordsPath,
			})
		}
	}

	if y.Data.Timeout != "" {
		d, err := parseDuration(y.Data.Timeout)
		if err != nil {
			return domain.Config{}, invalidField(path, "data.timeout", err.Error())
		}
		cfg.Data.Timeout = d
	}

	if y.UI.SearchDebounce != "" {
		d, err := parseDuration(y.UI.SearchDebounce)
		if err != nil {
			return domain.Config{}, invalidField(path, "ui.search_debounce", err.Error())
		}
		cfg.UI.SearchDebounce = d
	}
	if y.UI.TopOrganizations != nil {
		if *y.UI.TopOrganizations <= 0 {
			return domain.Config{}, invalidField(path, "ui.top_organizations", "must be positive")
		}
		cfg.UI.TopOrganizations = *y.UI.TopOrganizations
	}
	if y.UI.Watch != nil {
		cfg.UI.Watch = *y.UI.Watch
	}

	if y.Paths.ReportsDir != "" {
		cfg.Paths.ReportsDir = y.Paths.ReportsDir
	}

	return cfg, nil
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}
	return d, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
