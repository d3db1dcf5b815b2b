package config

// YAMLConfig mirrors fundingcall.yaml. Pointers distinguish "absent" from zero values.
type YAMLConfig struct {
	Data  YAMLData  `yaml:"data"`
	UI    YAMLUI    `yaml:"ui"`
	Paths YAMLPaths `yaml:"paths"`
}

type YAMLData struct {
	Sources []YAMLSource `yaml:"sources"`
	Timeout string       `yaml:"timeout"`
}

type YAMLSource struct {
	Name        string `yaml:"name"`
	File        string `yaml:"file"`
	URL         string `yaml:"url"`
	RecordsPath string `yaml:"records_path"`
}

type YAMLUI struct {
	SearchDebounce   string `yaml:"search_debounce"`
	TopOrganizations *int   `yaml:"top_organizations"`
	Watch            *bool  `yaml:"watch"`
}

type YAMLPaths struct {
	ReportsDir string `yaml:"reports_dir"`
}
