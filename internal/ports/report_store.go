package ports

import "github.com/pingfanfan/FundingCall-UK/internal/domain"

// ReportStore persists dashboard snapshots.
type ReportStore interface {
	SaveReport(report domain.Report) (id string, err error)
}
