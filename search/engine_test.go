package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/talenthub/backend/models"
)

func candidate(id string, mutate func(*models.CandidateProfile)) *models.CandidateProfile {
	p := models.NewCandidateProfile("user-" + id)
	p.ID = id
	if mutate != nil {
		mutate(p)
	}
	return p
}

func testPool() []*models.CandidateProfile {
	return []*models.CandidateProfile{
		candidate("react-berlin", func(p *models.CandidateProfile) {
			p.Skills = []string{"React.js", "TypeScript"}
			p.Location = "Berlin, Germany"
			p.TotalExperienceYears = 4
			p.ProfileScore = 70
			p.ExpectedSalary = 60000
			p.PreferredJobTypes = []string{"remote"}
		}),
		candidate("vue-munich", func(p *models.CandidateProfile) {
			p.Skills = []string{"Vue", "JavaScript"}
			p.Location = "Munich"
			p.TotalExperienceYears = 2
			p.ProfileScore = 55
		}),
		candidate("go-berlin", func(p *models.CandidateProfile) {
			p.Skills = []string{"Go", "Kubernetes"}
			p.Location = "berlin"
			p.TotalExperienceYears = 7
			p.ProfileScore = 90
			p.Education = []models.Education{{Degree: "Master of Science", Institution: "TU"}}
		}),
		candidate("closed", func(p *models.CandidateProfile) {
			p.Skills = []string{"React.js"}
			p.IsOpenToWork = false
			p.ProfileScore = 99
		}),
	}
}

func TestRunFiltersAreConjunctive(t *testing.T) {
	result := Run(testPool(), Criteria{
		Skills:   []string{"react"},
		Location: "berlin",
	})

	assert.Equal(t, 1, result.Pagination.Total)
	assert.Equal(t, "react-berlin", result.Candidates[0].ID)
}

func TestSkillsMatchIsCaseInsensitiveSubstring(t *testing.T) {
	assert.True(t, SkillsMatch([]string{"React.js"}, []string{"react"}))
	assert.True(t, SkillsMatch([]string{"Node.js", "Go"}, []string{"GO"}))
	assert.False(t, SkillsMatch([]string{"Vue"}, []string{"react"}))
}

func TestRunExcludesClosedCandidates(t *testing.T) {
	result := Run(testPool(), Criteria{})

	assert.Equal(t, 3, result.Pagination.Total)
	for _, c := range result.Candidates {
		assert.True(t, c.IsOpenToWork)
	}
}

func TestRunExperienceBoundsAreInclusive(t *testing.T) {
	min, max := 4.0, 7.0
	result := Run(testPool(), Criteria{MinExperience: &min, MaxExperience: &max})

	assert.Equal(t, 2, result.Pagination.Total)
}

func TestRunImpossibleBoundsYieldEmptyPage(t *testing.T) {
	min, max := 10.0, 2.0
	result := Run(testPool(), Criteria{MinExperience: &min, MaxExperience: &max})

	assert.Equal(t, 0, result.Pagination.Total)
	assert.NotNil(t, result.Candidates)
	assert.Empty(t, result.Candidates)
	assert.Equal(t, 0, result.Pagination.TotalPages)
}

func TestRunEducationKeyword(t *testing.T) {
	result := Run(testPool(), Criteria{Education: "master"})

	assert.Equal(t, 1, result.Pagination.Total)
	assert.Equal(t, "go-berlin", result.Candidates[0].ID)
}

func TestRunJobTypes(t *testing.T) {
	result := Run(testPool(), Criteria{JobTypes: []string{"Remote"}})

	assert.Equal(t, 1, result.Pagination.Total)
	assert.Equal(t, "react-berlin", result.Candidates[0].ID)
}

func TestRunFreeTextQueryMatchesAcrossFields(t *testing.T) {
	pool := testPool()
	pool[1].Experience = []models.Experience{{Role: "Frontend Developer", Company: "Acme", Years: 2}}

	result := Run(pool, Criteria{Query: "frontend"})

	assert.Equal(t, 1, result.Pagination.Total)
	assert.Equal(t, "vue-munich", result.Candidates[0].ID)
}

func TestRunDefaultSortIsProfileScoreDesc(t *testing.T) {
	result := Run(testPool(), Criteria{})

	scores := make([]int, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		scores = append(scores, c.ProfileScore)
	}
	assert.Equal(t, []int{90, 70, 55}, scores)
}

func TestRunSortByExperienceAsc(t *testing.T) {
	result := Run(testPool(), Criteria{SortBy: SortByExperience, SortOrder: SortAsc})

	years := make([]float64, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		years = append(years, c.TotalExperienceYears)
	}
	assert.Equal(t, []float64{2, 4, 7}, years)
}

func TestRunSortByRecent(t *testing.T) {
	pool := testPool()
	now := time.Now()
	pool[0].LastUpdated = now.Add(-2 * time.Hour)
	pool[1].LastUpdated = now
	pool[2].LastUpdated = now.Add(-1 * time.Hour)

	result := Run(pool, Criteria{SortBy: SortByRecent})

	assert.Equal(t, "vue-munich", result.Candidates[0].ID)
	assert.Equal(t, "react-berlin", result.Candidates[2].ID)
}

func TestRunPagination(t *testing.T) {
	pool := make([]*models.CandidateProfile, 0, 25)
	for i := 0; i < 25; i++ {
		pool = append(pool, candidate(fmt.Sprintf("c%02d", i), func(p *models.CandidateProfile) {
			p.ProfileScore = i
		}))
	}

	page2 := Run(pool, Criteria{Page: 2, Limit: 10})
	assert.Equal(t, 25, page2.Pagination.Total)
	assert.Equal(t, 3, page2.Pagination.TotalPages)
	assert.Len(t, page2.Candidates, 10)
	assert.True(t, page2.Pagination.HasNext)
	assert.True(t, page2.Pagination.HasPrev)

	page3 := Run(pool, Criteria{Page: 3, Limit: 10})
	assert.Len(t, page3.Candidates, 5)
	assert.False(t, page3.Pagination.HasNext)

	beyond := Run(pool, Criteria{Page: 4, Limit: 10})
	assert.NotNil(t, beyond.Candidates)
	assert.Empty(t, beyond.Candidates)
}

func TestNormalizeClampsPaging(t *testing.T) {
	c := Criteria{Page: -3, Limit: 500, SortBy: "bogus", SortOrder: "sideways"}
	c.Normalize()

	assert.Equal(t, 1, c.Page)
	assert.Equal(t, maxLimit, c.Limit)
	assert.Equal(t, SortByProfileScore, c.SortBy)
	assert.Equal(t, SortDesc, c.SortOrder)
}

func TestTopReturnsHighestScores(t *testing.T) {
	top := Top(testPool(), 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "go-berlin", top[0].ID)
	assert.Equal(t, "react-berlin", top[1].ID)
}

func TestBySkills(t *testing.T) {
	found := BySkills(testPool(), []string{"kubernetes"}, 10)

	assert.Len(t, found, 1)
	assert.Equal(t, "go-berlin", found[0].ID)
}
