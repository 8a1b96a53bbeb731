package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talenthub/backend/auth"
	"github.com/talenthub/backend/gemini"
	"github.com/talenthub/backend/match"
	"github.com/talenthub/backend/models"
	"github.com/talenthub/backend/storage"
)

// AIHandler handles AI-backed matching and summary requests
type AIHandler struct {
	firestoreClient *storage.FirestoreClient
	geminiClient    *gemini.Client
	matchEngine     *match.Engine
}

// NewAIHandler creates a new AI handler. The Gemini client may be nil,
// in which case every endpoint uses its deterministic fallback.
func NewAIHandler(firestoreClient *storage.FirestoreClient, geminiClient *gemini.Client, matchEngine *match.Engine) *AIHandler {
	return &AIHandler{
		firestoreClient: firestoreClient,
		geminiClient:    geminiClient,
		matchEngine:     matchEngine,
	}
}

// MatchCandidates ranks candidates against free-text job requirements
// @Summary Match candidates to job requirements
// @Description Rank open-to-work candidates against free-text job requirements
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MatchRequest true "Job requirements"
// @Success 200 {array} match.Match
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/match [post]
func (h *AIHandler) MatchCandidates(c *gin.Context) {
	var req models.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	matches, err := h.matchEngine.Match(c.Request.Context(), req.Requirements)
	if err != nil {
		log.Printf("[AIHandler] Match failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Matching failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"matches": matches,
		"count":   len(matches),
	})
}

// GenerateSummary generates and stores an AI summary for a candidate
// @Summary Generate candidate AI summary
// @Description Generate and store AI insights for a candidate profile
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.CandidateProfile
// @Failure 400 {object} models.ErrorResponse "Invalid candidate ID"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidates/{id}/summary [post]
func (h *AIHandler) GenerateSummary(c *gin.Context) {
	id := c.Param("id")
	if !validDocumentID(id) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid candidate ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	profile, err := h.firestoreClient.GetCandidateByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Candidate not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[AIHandler] Failed to get candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	candidateName := ""
	if user, err := h.firestoreClient.GetUserByID(c.Request.Context(), profile.UserID); err == nil {
		candidateName = user.Name
	}

	summary := h.buildSummary(c, profile, candidateName)
	summary.GeneratedAt = time.Now()
	profile.AISummary = summary
	profile.RefreshScore()

	if err := h.firestoreClient.UpdateCandidate(c.Request.Context(), profile); err != nil {
		log.Printf("[AIHandler] Failed to store summary: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to store summary",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// buildSummary asks Gemini for profile insights, degrading to a
// template-based summary without AI or on any AI failure
func (h *AIHandler) buildSummary(c *gin.Context, profile *models.CandidateProfile, candidateName string) *models.AISummary {
	if h.geminiClient != nil {
		summary, err := h.geminiClient.GenerateInsights(c.Request.Context(), profile, candidateName)
		if err == nil {
			return summary
		}
		log.Printf("[AIHandler] Insight generation failed, using template summary: %v", err)
	}
	return mockSummary(profile)
}

// mockSummary derives a summary from the profile contents alone
func mockSummary(p *models.CandidateProfile) *models.AISummary {
	strengths := []string{}
	weakAreas := []string{}

	if len(p.Skills) >= 5 {
		strengths = append(strengths, fmt.Sprintf("Broad skill set covering %d technologies", len(p.Skills)))
	} else {
		weakAreas = append(weakAreas, "Limited number of listed skills")
	}
	if p.TotalExperienceYears >= 3 {
		strengths = append(strengths, fmt.Sprintf("%.0f years of professional experience", p.TotalExperienceYears))
	} else {
		weakAreas = append(weakAreas, "Limited professional experience")
	}
	if len(p.Projects) > 0 {
		strengths = append(strengths, "Demonstrated project work")
	}
	if p.CVUrl == "" {
		weakAreas = append(weakAreas, "No CV uploaded")
	}

	experienceSummary := "No work experience listed yet."
	if len(p.Experience) > 0 {
		latest := p.Experience[len(p.Experience)-1]
		experienceSummary = fmt.Sprintf("%d positions held, most recently %s at %s.",
			len(p.Experience), latest.Role, latest.Company)
	}

	return &models.AISummary{
		SkillExtraction:   p.Skills,
		ExperienceSummary: experienceSummary,
		Strengths:         strengths,
		WeakAreas:         weakAreas,
		OverallSummary: fmt.Sprintf("Candidate with %d skills and %.1f years of experience. Profile completeness score: %d/100.",
			len(p.Skills), p.TotalExperienceYears, p.ProfileScore),
	}
}

// GetSuggestions returns profile improvement suggestions for the
// authenticated job seeker
// @Summary Get profile improvement suggestions
// @Description Get suggestions to improve the authenticated job seeker's profile score
// @Tags AI
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SuggestionsResponse
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobseeker/suggestions [get]
func (h *AIHandler) GetSuggestions(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	profile, err := h.firestoreClient.GetCandidateByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Profile not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[AIHandler] Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	suggestions := profile.ImprovementSuggestions()
	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}

	c.JSON(http.StatusOK, models.SuggestionsResponse{
		CurrentScore:   profile.ProfileScore,
		PotentialScore: profile.PotentialScore(suggestions),
		Suggestions:    suggestions,
	})
}
