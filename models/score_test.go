package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScoreEmptyProfile(t *testing.T) {
	p := NewCandidateProfile("user-1")
	assert.Equal(t, 10, p.ComputeScore())
	assert.Equal(t, 10, p.ProfileScore)
}

func TestComputeScoreProgression(t *testing.T) {
	p := NewCandidateProfile("user-1")

	p.CVUrl = "https://storage.googleapis.com/bucket/cvs/user-1/cv.pdf"
	assert.Equal(t, 30, p.ComputeScore())

	p.Skills = []string{"Go", "Python", "React", "Docker", "SQL", "AWS"}
	assert.Equal(t, 42, p.ComputeScore())

	p.Bio = "Backend engineer with a focus on distributed systems."
	assert.Equal(t, 47, p.ComputeScore())
}

func TestComputeScoreTermCaps(t *testing.T) {
	p := NewCandidateProfile("user-1")

	// 30 skills cap at 20 points, not 60
	for i := 0; i < 30; i++ {
		p.Skills = append(p.Skills, "Skill")
	}
	assert.Equal(t, 30, p.ComputeScore())

	// 5 experience entries cap at 20 points
	for i := 0; i < 5; i++ {
		p.Experience = append(p.Experience, Experience{Company: "Acme", Role: "Dev", Years: 1})
	}
	assert.Equal(t, 50, p.ComputeScore())

	// 4 education entries cap at 15 points
	for i := 0; i < 4; i++ {
		p.Education = append(p.Education, Education{Institution: "MIT", Degree: "BSc"})
	}
	assert.Equal(t, 65, p.ComputeScore())

	// 3 projects cap at 10 points
	for i := 0; i < 3; i++ {
		p.Projects = append(p.Projects, Project{Name: "Tool"})
	}
	assert.Equal(t, 75, p.ComputeScore())
}

func TestComputeScoreNeverExceeds100(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.CVUrl = "https://example.com/cv.pdf"
	p.Bio = "bio"
	p.LinkedinURL = "https://linkedin.com/in/x"
	p.GithubURL = "https://github.com/x"
	p.PortfolioURL = "https://x.dev"
	p.AISummary = &AISummary{OverallSummary: "strong"}
	for i := 0; i < 20; i++ {
		p.Skills = append(p.Skills, "Skill")
		p.Experience = append(p.Experience, Experience{Company: "Acme", Role: "Dev", Years: 1})
		p.Education = append(p.Education, Education{Institution: "MIT", Degree: "BSc"})
		p.Projects = append(p.Projects, Project{Name: "Tool"})
	}

	assert.Equal(t, 100, p.ComputeScore())
}

func TestComputeScoreDeterministic(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.Skills = []string{"Go", "SQL"}
	p.CVUrl = "https://example.com/cv.pdf"

	first := p.ComputeScore()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.ComputeScore())
	}
}

func TestRefreshRecomputesDerivedFields(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.Experience = []Experience{
		{Company: "Acme", Role: "Dev", Years: 2.5},
		{Company: "Globex", Role: "Senior Dev", Years: 3},
	}
	before := p.LastUpdated

	p.Refresh()

	assert.InDelta(t, 5.5, p.TotalExperienceYears, 0.001)
	assert.Equal(t, p.ComputeScore(), p.ProfileScore)
	assert.False(t, p.LastUpdated.Before(before))
}

func TestImprovementSuggestionsEmptyProfile(t *testing.T) {
	p := NewCandidateProfile("user-1")
	suggestions := p.ImprovementSuggestions()

	types := map[string]int{}
	total := 0
	for _, s := range suggestions {
		types[s.Type]++
		total += s.Impact
	}

	// CV and experience are critical, skills high, projects and bio
	// medium, social links low
	assert.Equal(t, 2, types["critical"])
	assert.Equal(t, 1, types["high"])
	assert.Equal(t, 2, types["medium"])
	assert.Equal(t, 1, types["low"])
	assert.Equal(t, 68, total)
}

func TestImprovementSuggestionsCompleteProfile(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.CVUrl = "https://example.com/cv.pdf"
	p.Skills = []string{"Go", "Python", "React", "Docker", "SQL"}
	p.Experience = []Experience{{Company: "Acme", Role: "Dev", Years: 2}}
	p.Projects = []Project{{Name: "Tool"}}
	p.Bio = "bio"
	p.LinkedinURL = "https://linkedin.com/in/x"

	assert.Empty(t, p.ImprovementSuggestions())
}

func TestPotentialScoreCappedAt100(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.ProfileScore = 90

	potential := p.PotentialScore([]Suggestion{
		{Impact: 20},
		{Impact: 10},
	})

	assert.Equal(t, 100, potential)
}

func TestPotentialScoreSumsImpacts(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.ProfileScore = 40

	potential := p.PotentialScore([]Suggestion{
		{Impact: 20},
		{Impact: 5},
	})

	assert.Equal(t, 65, potential)
}
