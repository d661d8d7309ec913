package search

import "github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"

// paginate cuts one 1-indexed page out of the ranked list. A page past
// the end yields an empty slice, never an error.
func paginate(items []candidate.Candidate, page, pageSize int) []candidate.Candidate {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []candidate.Candidate{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
