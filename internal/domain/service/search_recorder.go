package service

// SearchRecorder observes proximity searches
type SearchRecorder interface {
	// ObserveSearch records the candidate set size and the number of matches of one search
	ObserveSearch(candidates, matches int)
}
