package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talenthub/backend/models"
)

func TestStatisticsEmptyPool(t *testing.T) {
	stats := Statistics(nil)

	assert.Equal(t, 0, stats.TotalCandidates)
	assert.Equal(t, 0.0, stats.AverageProfileScore)
	assert.NotNil(t, stats.TopSkills)
	assert.NotNil(t, stats.TopLocations)
}

func TestStatisticsAggregates(t *testing.T) {
	pool := []*models.CandidateProfile{
		candidate("a", func(p *models.CandidateProfile) {
			p.Skills = []string{"Go", "Docker"}
			p.Location = "Berlin"
			p.ProfileScore = 80
			p.TotalExperienceYears = 4
		}),
		candidate("b", func(p *models.CandidateProfile) {
			p.Skills = []string{"go", "React"}
			p.Location = "berlin"
			p.ProfileScore = 60
			p.TotalExperienceYears = 2
			p.IsOpenToWork = false
		}),
	}

	stats := Statistics(pool)

	assert.Equal(t, 2, stats.TotalCandidates)
	assert.Equal(t, 1, stats.OpenToWork)
	assert.Equal(t, 70.0, stats.AverageProfileScore)
	assert.Equal(t, 3.0, stats.AverageExperience)

	// Case-insensitive grouping keeps the first-seen casing
	assert.Equal(t, "Go", stats.TopSkills[0].Skill)
	assert.Equal(t, 2, stats.TopSkills[0].Count)

	assert.Len(t, stats.TopLocations, 1)
	assert.Equal(t, "Berlin", stats.TopLocations[0].Location)
	assert.Equal(t, 2, stats.TopLocations[0].Count)
}

func TestStatisticsTieBreaksAlphabetically(t *testing.T) {
	pool := []*models.CandidateProfile{
		candidate("a", func(p *models.CandidateProfile) {
			p.Skills = []string{"Zig", "Ada"}
		}),
	}

	stats := Statistics(pool)

	assert.Equal(t, "Ada", stats.TopSkills[0].Skill)
	assert.Equal(t, "Zig", stats.TopSkills[1].Skill)
}
