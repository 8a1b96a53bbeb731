// Package search implements the in-process candidate search engine:
// multi-criteria filtering, sorting and pagination over the candidate
// set. Firestore cannot express case-insensitive substring predicates,
// so the store supplies the open-to-work candidates and all criteria
// are applied here.
package search

import (
	"math"
	"sort"
	"strings"

	"github.com/talenthub/backend/models"
)

// Sort keys and orders
const (
	SortByProfileScore = "profileScore"
	SortByExperience   = "experience"
	SortByRecent       = "recent"

	SortAsc  = "asc"
	SortDesc = "desc"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Criteria describes a candidate search. Nil numeric fields mean
// "no bound".
type Criteria struct {
	Query           string   `json:"query,omitempty" form:"query"`
	Skills          []string `json:"skills,omitempty" form:"skills"`
	Location        string   `json:"location,omitempty" form:"location"`
	MinExperience   *float64 `json:"minExperience,omitempty" form:"minExperience"`
	MaxExperience   *float64 `json:"maxExperience,omitempty" form:"maxExperience"`
	MinSalary       *float64 `json:"minSalary,omitempty" form:"minSalary"`
	MaxSalary       *float64 `json:"maxSalary,omitempty" form:"maxSalary"`
	Education       string   `json:"education,omitempty" form:"education"`
	MinProfileScore *int     `json:"minProfileScore,omitempty" form:"minProfileScore"`
	JobTypes        []string `json:"jobTypes,omitempty" form:"jobTypes"`

	Page      int    `json:"page,omitempty" form:"page"`
	Limit     int    `json:"limit,omitempty" form:"limit"`
	SortBy    string `json:"sortBy,omitempty" form:"sortBy"`
	SortOrder string `json:"sortOrder,omitempty" form:"sortOrder"`
}

// Pagination describes the position of a result page in the full
// filtered set
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Result is one page of matching candidates with pagination metadata
type Result struct {
	Candidates []*models.CandidateProfile `json:"candidates"`
	Pagination Pagination                 `json:"pagination"`
}

// Normalize applies defaults and clamps paging values
func (c *Criteria) Normalize() {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.Limit < 1 {
		c.Limit = defaultLimit
	}
	if c.Limit > maxLimit {
		c.Limit = maxLimit
	}
	switch c.SortBy {
	case SortByExperience, SortByRecent:
	default:
		c.SortBy = SortByProfileScore
	}
	if c.SortOrder != SortAsc {
		c.SortOrder = SortDesc
	}
}

// Run filters, sorts and paginates the candidate set. All supplied
// criteria are AND-ed; candidates not open to work never match.
func Run(candidates []*models.CandidateProfile, criteria Criteria) Result {
	criteria.Normalize()

	matched := make([]*models.CandidateProfile, 0, len(candidates))
	for _, candidate := range candidates {
		if Matches(candidate, criteria) {
			matched = append(matched, candidate)
		}
	}

	sortCandidates(matched, criteria.SortBy, criteria.SortOrder)

	total := len(matched)
	totalPages := int(math.Ceil(float64(total) / float64(criteria.Limit)))

	skip := (criteria.Page - 1) * criteria.Limit
	page := []*models.CandidateProfile{}
	if skip < total {
		end := skip + criteria.Limit
		if end > total {
			end = total
		}
		page = matched[skip:end]
	}

	return Result{
		Candidates: page,
		Pagination: Pagination{
			Total:      total,
			Page:       criteria.Page,
			Limit:      criteria.Limit,
			TotalPages: totalPages,
			HasNext:    criteria.Page < totalPages,
			HasPrev:    criteria.Page > 1,
		},
	}
}

// Matches reports whether a candidate satisfies every supplied
// criterion
func Matches(p *models.CandidateProfile, c Criteria) bool {
	if !p.IsOpenToWork {
		return false
	}

	if c.Query != "" && !matchesQuery(p, c.Query) {
		return false
	}

	if len(c.Skills) > 0 && !SkillsMatch(p.Skills, c.Skills) {
		return false
	}

	if c.Location != "" && !containsFold(p.Location, c.Location) {
		return false
	}

	if c.MinExperience != nil && p.TotalExperienceYears < *c.MinExperience {
		return false
	}
	if c.MaxExperience != nil && p.TotalExperienceYears > *c.MaxExperience {
		return false
	}

	if c.MinSalary != nil && p.ExpectedSalary < *c.MinSalary {
		return false
	}
	if c.MaxSalary != nil && p.ExpectedSalary > *c.MaxSalary {
		return false
	}

	if c.Education != "" && !matchesEducation(p, c.Education) {
		return false
	}

	if c.MinProfileScore != nil && p.ProfileScore < *c.MinProfileScore {
		return false
	}

	if len(c.JobTypes) > 0 && !intersects(p.PreferredJobTypes, c.JobTypes) {
		return false
	}

	return true
}

// matchesQuery OR-matches the free-text query across skills,
// experience roles/companies, education degrees/fields and bio
func matchesQuery(p *models.CandidateProfile, query string) bool {
	for _, skill := range p.Skills {
		if containsFold(skill, query) {
			return true
		}
	}
	for _, exp := range p.Experience {
		if containsFold(exp.Role, query) || containsFold(exp.Company, query) {
			return true
		}
	}
	for _, edu := range p.Education {
		if containsFold(edu.Degree, query) || containsFold(edu.Field, query) {
			return true
		}
	}
	return containsFold(p.Bio, query)
}

func matchesEducation(p *models.CandidateProfile, keyword string) bool {
	for _, edu := range p.Education {
		if containsFold(edu.Degree, keyword) {
			return true
		}
	}
	return false
}

// SkillsMatch reports whether any wanted skill is a case-insensitive
// substring of any candidate skill, e.g. wanted "react" matches
// candidate "React.js".
func SkillsMatch(candidateSkills, wanted []string) bool {
	for _, w := range wanted {
		for _, s := range candidateSkills {
			if containsFold(s, w) {
				return true
			}
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if strings.EqualFold(x, y) {
				return true
			}
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortCandidates(candidates []*models.CandidateProfile, sortBy, sortOrder string) {
	less := func(i, j int) bool { return false }

	switch sortBy {
	case SortByExperience:
		less = func(i, j int) bool {
			return candidates[i].TotalExperienceYears < candidates[j].TotalExperienceYears
		}
	case SortByRecent:
		less = func(i, j int) bool {
			return candidates[i].LastUpdated.Before(candidates[j].LastUpdated)
		}
	default:
		less = func(i, j int) bool {
			return candidates[i].ProfileScore < candidates[j].ProfileScore
		}
	}

	if sortOrder == SortDesc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(candidates, less)
}

// Top returns the highest-scoring open-to-work candidates
func Top(candidates []*models.CandidateProfile, limit int) []*models.CandidateProfile {
	result := Run(candidates, Criteria{Limit: clampLimit(limit)})
	return result.Candidates
}

// BySkills returns open-to-work candidates matching any of the given
// skills, highest score first
func BySkills(candidates []*models.CandidateProfile, skills []string, limit int) []*models.CandidateProfile {
	result := Run(candidates, Criteria{Skills: skills, Limit: clampLimit(limit)})
	return result.Candidates
}

func clampLimit(limit int) int {
	if limit < 1 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
