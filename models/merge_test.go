package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleExtraction() *ExtractedProfile {
	return &ExtractedProfile{
		Bio:                  "Backend engineer.",
		Location:             "Berlin, Germany",
		Phone:                "+49 151 1234567",
		TotalExperienceYears: 4,
		Skills:               FlexibleStringSlice{"Go", "Docker", "PostgreSQL"},
		Experience: []ExtractedExperience{
			{Role: "Backend Developer", Company: "Acme", Years: 2, Description: "APIs"},
			{Role: "Junior Developer", Company: "Globex", Years: 2},
		},
		Education: []ExtractedEducation{
			{Degree: "BSc Computer Science", Institution: "TU Berlin", GraduationYear: 2019},
		},
		Projects: []ExtractedProject{
			{Name: "cli-tool", Description: "CLI utility", Technologies: FlexibleStringSlice{"Go"}},
		},
	}
}

func TestMergeExtractedIntoEmptyProfile(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.MergeExtracted(sampleExtraction())

	assert.Equal(t, []string{"Go", "Docker", "PostgreSQL"}, p.Skills)
	assert.Len(t, p.Experience, 2)
	assert.Len(t, p.Education, 1)
	assert.Len(t, p.Projects, 1)
	assert.Equal(t, "Backend engineer.", p.Bio)
	assert.Equal(t, "Berlin, Germany", p.Location)
	assert.Equal(t, 4.0, p.TotalExperienceYears)
}

func TestMergeExtractedIsIdempotent(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.MergeExtracted(sampleExtraction())

	skills := len(p.Skills)
	experience := len(p.Experience)
	education := len(p.Education)
	projects := len(p.Projects)

	// A repeated upload of the same CV must not inflate the profile
	p.MergeExtracted(sampleExtraction())

	assert.Len(t, p.Skills, skills)
	assert.Len(t, p.Experience, experience)
	assert.Len(t, p.Education, education)
	assert.Len(t, p.Projects, projects)
}

func TestMergeSkillsDedupsCaseInsensitively(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.Skills = []string{"go", "React"}

	p.MergeExtracted(&ExtractedProfile{
		Skills: FlexibleStringSlice{"Go", "react", "Kubernetes"},
	})

	assert.Equal(t, []string{"go", "React", "Kubernetes"}, p.Skills)
}

func TestMergeDoesNotOverwritePopulatedScalars(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.Bio = "Existing bio"
	p.Location = "Munich"

	p.MergeExtracted(&ExtractedProfile{
		Bio:      "Extracted bio",
		Location: "Berlin",
		Phone:    "+49 151 1234567",
	})

	assert.Equal(t, "Existing bio", p.Bio)
	assert.Equal(t, "Munich", p.Location)
	assert.Equal(t, "+49 151 1234567", p.Phone)
}

func TestMergeExperienceSkipsIncompleteEntries(t *testing.T) {
	p := NewCandidateProfile("user-1")

	p.MergeExtracted(&ExtractedProfile{
		Experience: []ExtractedExperience{
			{Role: "Developer"},
			{Company: "Acme"},
			{Role: "Developer", Company: "Acme", Years: 1},
		},
	})

	assert.Len(t, p.Experience, 1)
}

func TestMergeExperienceDedupsByRoleAndCompany(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.Experience = []Experience{{Role: "Backend Developer", Company: "Acme", Years: 2}}

	p.MergeExtracted(&ExtractedProfile{
		Experience: []ExtractedExperience{
			{Role: "backend developer", Company: "ACME", Years: 3},
			{Role: "Backend Developer", Company: "Globex", Years: 1},
		},
	})

	assert.Len(t, p.Experience, 2)
	// The duplicate entry keeps its original years
	assert.Equal(t, 2.0, p.Experience[0].Years)
}

func TestMergeTotalExperienceNeverDecreases(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.TotalExperienceYears = 6

	p.MergeExtracted(&ExtractedProfile{TotalExperienceYears: 3})
	assert.Equal(t, 6.0, p.TotalExperienceYears)

	p.MergeExtracted(&ExtractedProfile{TotalExperienceYears: 8})
	assert.Equal(t, 8.0, p.TotalExperienceYears)
}

func TestRefreshScoreKeepsMergedTotalYears(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.Experience = []Experience{{Role: "Backend Developer", Company: "Acme", Years: 3}}

	// The extraction reports more experience than the entries sum to
	p.MergeExtracted(&ExtractedProfile{TotalExperienceYears: 8})
	assert.Equal(t, 8.0, p.TotalExperienceYears)

	// Recomputing derived fields after the merge must not drop the
	// total back to the entry sum
	p.RefreshScore()
	assert.Equal(t, 8.0, p.TotalExperienceYears)
	assert.Equal(t, p.ComputeScore(), p.ProfileScore)
}

func TestMergeNilExtractionIsNoOp(t *testing.T) {
	p := NewCandidateProfile("user-1")
	p.Skills = []string{"Go"}

	p.MergeExtracted(nil)

	assert.Equal(t, []string{"Go"}, p.Skills)
}
