package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveCandidateUpsertsInPlace(t *testing.T) {
	r := NewRecruiterProfile("user-1", "Acme")

	r.SaveCandidate("cand-1", "strong Go background", []string{"go"})
	r.SaveCandidate("cand-2", "", nil)
	r.SaveCandidate("cand-1", "updated notes", []string{"go", "senior"})

	assert.Len(t, r.SavedCandidates, 2)
	assert.Equal(t, "updated notes", r.SavedCandidates[0].Notes)
	assert.Equal(t, []string{"go", "senior"}, r.SavedCandidates[0].Tags)
	assert.NotNil(t, r.SavedCandidates[1].Tags)
}

func TestRemoveSavedCandidate(t *testing.T) {
	r := NewRecruiterProfile("user-1", "Acme")
	r.SaveCandidate("cand-1", "", nil)
	r.SaveCandidate("cand-2", "", nil)

	assert.True(t, r.RemoveSavedCandidate("cand-1"))
	assert.Len(t, r.SavedCandidates, 1)
	assert.Equal(t, "cand-2", r.SavedCandidates[0].CandidateID)

	assert.False(t, r.RemoveSavedCandidate("cand-1"))
}

func TestRecordSearchBoundsHistory(t *testing.T) {
	r := NewRecruiterProfile("user-1", "Acme")

	for i := 0; i < MaxSearchHistory+10; i++ {
		r.RecordSearch(fmt.Sprintf("query-%d", i), nil, i)
	}

	assert.Len(t, r.SearchHistory, MaxSearchHistory)
	// Oldest entries evicted first
	assert.Equal(t, "query-10", r.SearchHistory[0].Query)
	assert.Equal(t, fmt.Sprintf("query-%d", MaxSearchHistory+9), r.SearchHistory[MaxSearchHistory-1].Query)
	// The counter keeps growing past the truncation bound
	assert.Equal(t, MaxSearchHistory+10, r.TotalSearches)
}

func TestRecordSearchKeepsFilters(t *testing.T) {
	r := NewRecruiterProfile("user-1", "Acme")

	r.RecordSearch("golang berlin", map[string]interface{}{"location": "Berlin"}, 7)

	assert.Len(t, r.SearchHistory, 1)
	record := r.SearchHistory[0]
	assert.Equal(t, "golang berlin", record.Query)
	assert.Equal(t, "Berlin", record.Filters["location"])
	assert.Equal(t, 7, record.ResultsCount)
	assert.False(t, record.SearchedAt.IsZero())
}

func TestRecordSearchLabelsEmptyQuery(t *testing.T) {
	r := NewRecruiterProfile("user-1", "Acme")

	// Filter-only searches carry no query string
	r.RecordSearch("", map[string]interface{}{"skills": "go"}, 0)

	assert.Equal(t, "Advanced search", r.SearchHistory[0].Query)
	assert.Equal(t, 0, r.SearchHistory[0].ResultsCount)
	assert.Equal(t, 1, r.TotalSearches)
}

func TestSortedSearchHistoryNewestFirst(t *testing.T) {
	r := NewRecruiterProfile("user-1", "Acme")
	r.RecordSearch("first", nil, 1)
	r.RecordSearch("second", nil, 2)
	r.RecordSearch("third", nil, 3)

	history := r.SortedSearchHistory()

	assert.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].SearchedAt.After(history[i-1].SearchedAt))
	}

	// The original slice keeps insertion order
	assert.Equal(t, "first", r.SearchHistory[0].Query)
}
