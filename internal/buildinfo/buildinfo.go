// Package buildinfo carries values stamped in at link time with -ldflags -X.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("fundingcall %s (commit=%s, date=%s)", Version, Commit, Date)
}

// UserAgent identifies HTTP data fetches.
func UserAgent() string {
	return "fundingcall/" + Version
}
