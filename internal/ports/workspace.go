package ports

import "github.com/pingfanfan/FundingCall-UK/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
