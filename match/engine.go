// Package match ranks candidates against free-text job requirements.
// With AI available, requirements are extracted into structured form
// and candidates are scored with a weighted formula; on any AI failure
// the engine degrades to a plain profile-score ranking.
package match

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/talenthub/backend/gemini"
	"github.com/talenthub/backend/models"
	"github.com/talenthub/backend/search"
)

const (
	candidatePoolSize = 20
	resultLimit       = 10
)

// Score weights: skills 40, experience 30, profile completeness 30
const (
	skillsWeight     = 40.0
	experienceWeight = 30.0
	profileWeight    = 30.0
)

// Match is one ranked candidate with its score and reason
type Match struct {
	Candidate   *models.CandidateProfile `json:"candidate"`
	MatchScore  int                      `json:"matchScore"`
	MatchReason string                   `json:"matchReason"`
}

// requirementsExtractor is the slice of the Gemini client the engine needs
type requirementsExtractor interface {
	ExtractRequirements(ctx context.Context, requirements string) (*models.JobRequirements, error)
}

// CandidateSource supplies the open-to-work candidate pool
type CandidateSource interface {
	ListOpenToWork(ctx context.Context) ([]*models.CandidateProfile, error)
}

// Engine matches candidates against job requirements
type Engine struct {
	ai     requirementsExtractor
	source CandidateSource
}

// NewEngine creates a match engine. A nil Gemini client pins the
// engine to the profile-score fallback.
func NewEngine(client *gemini.Client, source CandidateSource) *Engine {
	e := &Engine{source: source}
	if client != nil {
		e.ai = client
	}
	return e
}

// Match ranks candidates against the free-text requirements. AI
// failures are recovered with the fallback ranking; storage failures
// propagate.
func (e *Engine) Match(ctx context.Context, requirements string) ([]Match, error) {
	if e.ai == nil {
		return e.fallback(ctx)
	}

	extracted, err := e.ai.ExtractRequirements(ctx, requirements)
	if err != nil {
		log.Printf("[Match] Requirements extraction failed, using profile-score ranking: %v", err)
		return e.fallback(ctx)
	}

	candidates, err := e.source.ListOpenToWork(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	pool := filterPool(candidates, extracted)

	matches := make([]Match, 0, len(pool))
	for _, candidate := range pool {
		matches = append(matches, Match{
			Candidate:   candidate,
			MatchScore:  Score(candidate, extracted),
			MatchReason: Reason(candidate, extracted),
		})
	}

	sortMatches(matches)
	if len(matches) > resultLimit {
		matches = matches[:resultLimit]
	}

	return matches, nil
}

// fallback ranks by profile score alone
func (e *Engine) fallback(ctx context.Context) ([]Match, error) {
	candidates, err := e.source.ListOpenToWork(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	top := search.Top(candidates, resultLimit)
	matches := make([]Match, 0, len(top))
	for _, candidate := range top {
		matches = append(matches, Match{
			Candidate:   candidate,
			MatchScore:  candidate.ProfileScore,
			MatchReason: "High profile score",
		})
	}
	return matches, nil
}

// filterPool applies the extracted requirements as a base filter and
// keeps the highest-scoring candidates for detailed scoring
func filterPool(candidates []*models.CandidateProfile, req *models.JobRequirements) []*models.CandidateProfile {
	criteria := search.Criteria{Limit: candidatePoolSize}
	if len(req.Skills) > 0 {
		criteria.Skills = req.Skills
	}
	if req.MinExperience > 0 {
		min := float64(req.MinExperience)
		criteria.MinExperience = &min
	}
	return search.Run(candidates, criteria).Candidates
}

// Score computes the weighted match score in [0,100], rounded to the
// nearest integer.
func Score(candidate *models.CandidateProfile, req *models.JobRequirements) int {
	var score float64

	// Skills match (40 points)
	if len(req.Skills) > 0 {
		matched := matchedSkillCount(candidate.Skills, req.Skills)
		score += float64(matched) / float64(len(req.Skills)) * skillsWeight
	}

	// Experience match (30 points)
	if minExp := float64(req.MinExperience); minExp > 0 {
		if candidate.TotalExperienceYears >= minExp {
			score += experienceWeight
		} else {
			score += candidate.TotalExperienceYears / minExp * experienceWeight
		}
	}

	// Profile completeness (30 points)
	score += float64(candidate.ProfileScore) / 100 * profileWeight

	return int(math.Round(score))
}

// Reason builds a human-readable explanation from the satisfied
// conditions
func Reason(candidate *models.CandidateProfile, req *models.JobRequirements) string {
	var reasons []string

	if len(req.Skills) > 0 {
		if matched := matchedSkillCount(candidate.Skills, req.Skills); matched > 0 {
			reasons = append(reasons, fmt.Sprintf("Matches %d required skills", matched))
		}
	}

	if candidate.TotalExperienceYears >= float64(req.MinExperience) && candidate.TotalExperienceYears > 0 {
		years := strconv.FormatFloat(candidate.TotalExperienceYears, 'f', -1, 64)
		reasons = append(reasons, years+" years experience")
	}

	if candidate.ProfileScore >= 80 {
		reasons = append(reasons, "High profile score")
	}

	if len(reasons) == 0 {
		return "Good overall match"
	}
	return strings.Join(reasons, ", ")
}

// matchedSkillCount counts candidate skills containing any required
// skill, case-insensitively
func matchedSkillCount(candidateSkills, required []string) int {
	count := 0
	for _, skill := range candidateSkills {
		lower := strings.ToLower(skill)
		for _, req := range required {
			if strings.Contains(lower, strings.ToLower(req)) {
				count++
				break
			}
		}
	}
	return count
}

// sortMatches orders by score descending; stable so equal scores keep
// pool order
func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
}
