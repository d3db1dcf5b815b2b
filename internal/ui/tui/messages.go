package tui

import "github.com/pingfanfan/FundingCall-UK/internal/usecase"

type repositoryLoadedMsg struct {
	res usecase.LoadResult
	err error
}

// searchSettledMsg fires once the search input has been quiet for the debounce interval.
// Only the message carrying the latest seq is acted on.
type searchSettledMsg struct {
	seq int
}

type dataChangedMsg struct{}

type reportSavedMsg struct {
	id  string
	err error
}
