package workspacefinder

import (
	"path/filepath"

	"github.com/pingfanfan/FundingCall-UK/internal/app/template"
	"github.com/pingfanfan/FundingCall-UK/internal/domain"
	"github.com/pingfanfan/FundingCall-UK/internal/infra/config"
)

// LoadConfig loads fundingcall.yaml from the workspace root and applies defaults.
// {{VAR}} placeholders in source locations are expanded from the environment, then
// relative data files and the reports directory are resolved against root.
func LoadConfig(root string) (domain.Config, error) {
	path := filepath.Join(root, config.FileName)
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	vars := template.EnvVars()
	for i, s := range cfg.Data.Sources {
		file, err := template.RenderString(s.File, vars)
		if err != nil {
			return cfg, withPath(err, path)
		}
		url, err := template.RenderString(s.URL, vars)
		if err != nil {
			return cfg, withPath(err, path)
		}
		cfg.Data.Sources[i].File = Resolve(root, file)
		cfg.Data.Sources[i].URL = url
	}
	cfg.Paths.ReportsDir = Resolve(root, cfg.Paths.ReportsDir)
	return cfg, nil
}

// Resolve joins p onto root unless p is already absolute.
func Resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func withPath(err error, path string) error {
	if oe, ok := err.(*domain.OpError); ok && oe.Path == "" {
		oe.Path = path
	}
	return err
}
