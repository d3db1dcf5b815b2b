// Package config reads fundingcall.yaml.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pingfanfan/FundingCall-UK/internal/domain"
)

// FileName is the workspace marker and config file.
const FileName = "fundingcall.yaml"

func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}
