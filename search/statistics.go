package search

import (
	"sort"
	"strings"

	"github.com/talenthub/backend/models"
)

const (
	topSkillsLimit    = 20
	topLocationsLimit = 10
)

// SkillCount is one entry of the skill frequency ranking
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// LocationCount is one entry of the location frequency ranking
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// Stats aggregates the candidate pool
type Stats struct {
	TotalCandidates     int             `json:"totalCandidates"`
	OpenToWork          int             `json:"openToWork"`
	AverageProfileScore float64         `json:"averageProfileScore"`
	AverageExperience   float64         `json:"averageExperience"`
	TopSkills           []SkillCount    `json:"topSkills"`
	TopLocations        []LocationCount `json:"topLocations"`
}

// Statistics computes pool-wide aggregates over all candidates.
// Grouping happens in process; Firestore offers no equivalent of the
// unwind/group aggregation pipeline.
func Statistics(candidates []*models.CandidateProfile) Stats {
	stats := Stats{
		TotalCandidates: len(candidates),
		TopSkills:       []SkillCount{},
		TopLocations:    []LocationCount{},
	}
	if len(candidates) == 0 {
		return stats
	}

	var scoreSum, expSum float64
	skillFreq := map[string]int{}
	skillName := map[string]string{}
	locationFreq := map[string]int{}
	locationName := map[string]string{}

	for _, c := range candidates {
		if c.IsOpenToWork {
			stats.OpenToWork++
		}
		scoreSum += float64(c.ProfileScore)
		expSum += c.TotalExperienceYears

		for _, skill := range c.Skills {
			key := strings.ToLower(skill)
			skillFreq[key]++
			if _, ok := skillName[key]; !ok {
				skillName[key] = skill
			}
		}

		if c.Location != "" {
			key := strings.ToLower(c.Location)
			locationFreq[key]++
			if _, ok := locationName[key]; !ok {
				locationName[key] = c.Location
			}
		}
	}

	stats.AverageProfileScore = scoreSum / float64(len(candidates))
	stats.AverageExperience = expSum / float64(len(candidates))

	for key, count := range skillFreq {
		stats.TopSkills = append(stats.TopSkills, SkillCount{Skill: skillName[key], Count: count})
	}
	sort.SliceStable(stats.TopSkills, func(i, j int) bool {
		if stats.TopSkills[i].Count != stats.TopSkills[j].Count {
			return stats.TopSkills[i].Count > stats.TopSkills[j].Count
		}
		return stats.TopSkills[i].Skill < stats.TopSkills[j].Skill
	})
	if len(stats.TopSkills) > topSkillsLimit {
		stats.TopSkills = stats.TopSkills[:topSkillsLimit]
	}

	for key, count := range locationFreq {
		stats.TopLocations = append(stats.TopLocations, LocationCount{Location: locationName[key], Count: count})
	}
	sort.SliceStable(stats.TopLocations, func(i, j int) bool {
		if stats.TopLocations[i].Count != stats.TopLocations[j].Count {
			return stats.TopLocations[i].Count > stats.TopLocations[j].Count
		}
		return stats.TopLocations[i].Location < stats.TopLocations[j].Location
	})
	if len(stats.TopLocations) > topLocationsLimit {
		stats.TopLocations = stats.TopLocations[:topLocationsLimit]
	}

	return stats
}
