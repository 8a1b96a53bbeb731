package models

import (
	"sort"
	"time"
)

// MaxSearchHistory bounds the recruiter search history; the oldest
// entries are evicted first.
const MaxSearchHistory = 50

// SavedCandidate is a bookmark on a candidate profile, unique per
// candidate within one recruiter profile
type SavedCandidate struct {
	CandidateID string    `json:"candidateId" firestore:"candidateId"`
	SavedAt     time.Time `json:"savedAt" firestore:"savedAt"`
	Notes       string    `json:"notes" firestore:"notes"`
	Tags        []string  `json:"tags" firestore:"tags"`
}

// SearchRecord is one entry of a recruiter's search history
type SearchRecord struct {
	Query        string                 `json:"query" firestore:"query"`
	Filters      map[string]interface{} `json:"filters" firestore:"filters"`
	SearchedAt   time.Time              `json:"searchedAt" firestore:"searchedAt"`
	ResultsCount int                    `json:"resultsCount" firestore:"resultsCount"`
}

// RecruiterProfile represents a recruiter profile in Firestore
// @Description Recruiter profile with saved candidates and search history
type RecruiterProfile struct {
	ID     string `json:"id" firestore:"-"`
	UserID string `json:"userId" firestore:"userId"`

	CompanyName    string `json:"companyName" firestore:"companyName"`
	CompanyWebsite string `json:"companyWebsite,omitempty" firestore:"companyWebsite"`
	CompanySize    string `json:"companySize,omitempty" firestore:"companySize"`
	Industry       string `json:"industry,omitempty" firestore:"industry"`
	Designation    string `json:"designation,omitempty" firestore:"designation"`

	SavedCandidates []SavedCandidate `json:"savedCandidates" firestore:"savedCandidates"`
	SearchHistory   []SearchRecord   `json:"searchHistory" firestore:"searchHistory"`

	IsVerified bool `json:"isVerified" firestore:"isVerified"`

	TotalSearches       int `json:"totalSearches" firestore:"totalSearches"`
	CandidatesContacted int `json:"candidatesContacted" firestore:"candidatesContacted"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// NewRecruiterProfile creates an empty recruiter profile
func NewRecruiterProfile(userID, companyName string) *RecruiterProfile {
	return &RecruiterProfile{
		UserID:          userID,
		CompanyName:     companyName,
		SavedCandidates: []SavedCandidate{},
		SearchHistory:   []SearchRecord{},
		IsVerified:      true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

// SaveCandidate bookmarks a candidate. Re-saving an already bookmarked
// candidate updates notes and tags in place instead of duplicating.
func (r *RecruiterProfile) SaveCandidate(candidateID, notes string, tags []string) {
	if tags == nil {
		tags = []string{}
	}
	for i := range r.SavedCandidates {
		if r.SavedCandidates[i].CandidateID == candidateID {
			r.SavedCandidates[i].Notes = notes
			r.SavedCandidates[i].Tags = tags
			return
		}
	}
	r.SavedCandidates = append(r.SavedCandidates, SavedCandidate{
		CandidateID: candidateID,
		SavedAt:     time.Now(),
		Notes:       notes,
		Tags:        tags,
	})
}

// RemoveSavedCandidate drops a bookmark, reporting whether it existed
func (r *RecruiterProfile) RemoveSavedCandidate(candidateID string) bool {
	kept := r.SavedCandidates[:0]
	removed := false
	for _, c := range r.SavedCandidates {
		if c.CandidateID == candidateID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	r.SavedCandidates = kept
	return removed
}

// RecordSearch appends a search history entry and bumps TotalSearches.
// Filter-only searches without a query string are labeled "Advanced
// search". History is bounded to MaxSearchHistory entries with FIFO
// eviction; the counter keeps growing regardless of truncation.
func (r *RecruiterProfile) RecordSearch(query string, filters map[string]interface{}, resultsCount int) {
	if query == "" {
		query = "Advanced search"
	}
	r.SearchHistory = append(r.SearchHistory, SearchRecord{
		Query:        query,
		Filters:      filters,
		SearchedAt:   time.Now(),
		ResultsCount: resultsCount,
	})
	if len(r.SearchHistory) > MaxSearchHistory {
		r.SearchHistory = r.SearchHistory[len(r.SearchHistory)-MaxSearchHistory:]
	}
	r.TotalSearches++
}

// SortedSearchHistory returns the history newest first
func (r *RecruiterProfile) SortedSearchHistory() []SearchRecord {
	history := make([]SearchRecord, len(r.SearchHistory))
	copy(history, r.SearchHistory)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].SearchedAt.After(history[j].SearchedAt)
	})
	return history
}
