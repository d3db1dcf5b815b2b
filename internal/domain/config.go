package domain

import "time"

// Config represents the FundingCall configuration loaded from fundingcall.yaml.
type Config struct {
	Data  DataConfig
	UI    UIConfig
	Paths PathsConfig
}

// SourceConfig points at one data file, either on disk or over HTTP.
type SourceConfig struct {
	Name        string
	File        string
	URL         string
	RecordsPath string
}

type DataConfig struct {
	Sources []SourceConfig
	Timeout time.Duration
}

type UIConfig struct {
	SearchDebounce   time.Duration
	TopOrganizations int
	Watch            bool
}

type PathsConfig struct {
	ReportsDir string
}

// DefaultRecordsPath locates the record array in the data file layout.
const DefaultRecordsPath = "$.fundings"

// DefaultConfig provides sane defaults if fundingcall.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Data: DataConfig{
			Sources: []SourceConfig{
				{
					Name:        "database",
					File:        "data/funding_database.json",
					RecordsPath: DefaultRecordsPath,
				},
			},
			Timeout: 30 * time.Second,
		},
		UI: UIConfig{
			SearchDebounce:   300 * time.Millisecond,
			TopOrganizations: 5,
			Watch:            true,
		},
		Paths: PathsConfig{
			ReportsDir: "reports",
		},
	}
}

// WorkspaceSpec describes where to create a new workspace.
type WorkspaceSpec struct {
	Root string
}
