package models

import "math"

// Suggestion is a single profile improvement hint with its score impact
type Suggestion struct {
	Type    string `json:"type"` // critical, high, medium, low
	Message string `json:"message"`
	Impact  int    `json:"impact"` // points gained by acting on it
}

// ComputeScore calculates the profile completeness score in [0,100].
// Pure and deterministic: each term is capped independently, the sum is
// capped at 100. Callers must reassign ProfileScore after any mutation
// of a scored field.
func (p *CandidateProfile) ComputeScore() int {
	score := 10.0 // base

	if p.CVUrl != "" {
		score += 20
	}

	score += math.Min(float64(len(p.Skills))*2, 20)
	score += math.Min(float64(len(p.Experience))*10, 20)
	score += math.Min(float64(len(p.Education))*7.5, 15)
	score += math.Min(float64(len(p.Projects))*5, 10)

	if p.Bio != "" {
		score += 5
	}
	if p.LinkedinURL != "" {
		score += 3
	}
	if p.GithubURL != "" {
		score += 3
	}
	if p.PortfolioURL != "" {
		score += 2
	}
	if p.AISummary != nil {
		score += 2
	}

	return int(math.Min(score, 100))
}

// Refresh recomputes the derived fields from the profile contents.
// Used after manual profile edits, where totalExperienceYears follows
// the experience entries.
func (p *CandidateProfile) Refresh() {
	p.TotalExperienceYears = p.TotalYears()
	p.ProfileScore = p.ComputeScore()
	p.Touch()
}

// RefreshScore recomputes the score and timestamp without touching
// totalExperienceYears. The CV and summary paths use this: a merged
// extraction total can exceed the per-entry sum and must not be
// clobbered back down.
func (p *CandidateProfile) RefreshScore() {
	p.ProfileScore = p.ComputeScore()
	p.Touch()
}

// ImprovementSuggestions derives suggestions from missing profile
// fields. Impact values mirror the ComputeScore terms.
func (p *CandidateProfile) ImprovementSuggestions() []Suggestion {
	var suggestions []Suggestion

	if p.CVUrl == "" {
		suggestions = append(suggestions, Suggestion{
			Type:    "critical",
			Message: "Upload your CV to increase profile visibility",
			Impact:  20,
		})
	}

	if len(p.Skills) < 5 {
		suggestions = append(suggestions, Suggestion{
			Type:    "high",
			Message: "Add more skills to your profile (target: 10+ skills)",
			Impact:  10,
		})
	}

	if len(p.Experience) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:    "critical",
			Message: "Add your work experience",
			Impact:  20,
		})
	}

	if len(p.Projects) == 0 {
		suggestions = append(suggestions, Suggestion{
			Type:    "medium",
			Message: "Add projects to showcase your work",
			Impact:  10,
		})
	}

	if p.Bio == "" {
		suggestions = append(suggestions, Suggestion{
			Type:    "medium",
			Message: "Write a professional bio/summary",
			Impact:  5,
		})
	}

	if p.LinkedinURL == "" && p.GithubURL == "" {
		suggestions = append(suggestions, Suggestion{
			Type:    "low",
			Message: "Add your LinkedIn or GitHub profile",
			Impact:  3,
		})
	}

	return suggestions
}

// PotentialScore is the score the candidate could reach by acting on
// every suggestion, capped at 100.
func (p *CandidateProfile) PotentialScore(suggestions []Suggestion) int {
	potential := p.ProfileScore
	for _, s := range suggestions {
		potential += s.Impact
	}
	if potential > 100 {
		potential = 100
	}
	return potential
}
