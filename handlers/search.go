package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talenthub/backend/auth"
	"github.com/talenthub/backend/models"
	"github.com/talenthub/backend/search"
	"github.com/talenthub/backend/storage"
)

// SearchHandler handles candidate search requests
type SearchHandler struct {
	firestoreClient *storage.FirestoreClient
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(firestoreClient *storage.FirestoreClient) *SearchHandler {
	return &SearchHandler{firestoreClient: firestoreClient}
}

// Search runs a multi-criteria candidate search and records it on the
// recruiter's search history
// @Summary Search candidates
// @Description Search open-to-work candidates by skills, location, experience, salary and more
// @Tags Search
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body search.Criteria true "Search criteria"
// @Success 200 {object} search.Result
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/search [post]
func (h *SearchHandler) Search(c *gin.Context) {
	var criteria search.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	candidates, err := h.firestoreClient.ListOpenToWork(c.Request.Context())
	if err != nil {
		log.Printf("[SearchHandler] Failed to load candidates: %v", err)
		// Failed attempts still land on the history
		h.recordSearch(c, criteria, 0)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Search failed",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	result := search.Run(candidates, criteria)

	h.recordSearch(c, criteria, result.Pagination.Total)

	c.JSON(http.StatusOK, result)
}

// recordSearch appends the search to the recruiter's history.
// Best-effort: a history failure never fails the search itself.
func (h *SearchHandler) recordSearch(c *gin.Context, criteria search.Criteria, total int) {
	claims := auth.GetAuthClaims(c)
	if claims == nil || claims.Role != models.RoleRecruiter {
		return
	}

	profile, err := h.firestoreClient.GetRecruiterByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("[SearchHandler] Failed to load recruiter for history: %v", err)
		}
		return
	}

	profile.RecordSearch(criteria.Query, searchFilters(criteria), total)
	profile.UpdatedAt = time.Now()

	if err := h.firestoreClient.UpdateRecruiter(c.Request.Context(), profile); err != nil {
		log.Printf("[SearchHandler] Failed to record search: %v", err)
	}
}

// searchFilters flattens the non-empty criteria fields for the history
// record
func searchFilters(c search.Criteria) map[string]interface{} {
	filters := map[string]interface{}{}
	if len(c.Skills) > 0 {
		filters["skills"] = strings.Join(c.Skills, ",")
	}
	if c.Location != "" {
		filters["location"] = c.Location
	}
	if c.MinExperience != nil {
		filters["minExperience"] = *c.MinExperience
	}
	if c.MaxExperience != nil {
		filters["maxExperience"] = *c.MaxExperience
	}
	if c.MinSalary != nil {
		filters["minSalary"] = *c.MinSalary
	}
	if c.MaxSalary != nil {
		filters["maxSalary"] = *c.MaxSalary
	}
	if c.Education != "" {
		filters["education"] = c.Education
	}
	if c.MinProfileScore != nil {
		filters["minProfileScore"] = *c.MinProfileScore
	}
	if len(c.JobTypes) > 0 {
		filters["jobTypes"] = strings.Join(c.JobTypes, ",")
	}
	return filters
}

// TopCandidates returns the highest-scoring open-to-work candidates
// @Summary Top candidates
// @Description Get the highest-scoring open-to-work candidates
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Result limit" default(10)
// @Success 200 {array} models.CandidateProfile
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidates/top [get]
func (h *SearchHandler) TopCandidates(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	candidates, err := h.firestoreClient.ListOpenToWork(c.Request.Context())
	if err != nil {
		log.Printf("[SearchHandler] Failed to load candidates: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load candidates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, search.Top(candidates, limit))
}

// CandidatesBySkills returns candidates matching any of the given skills
// @Summary Candidates by skills
// @Description Get open-to-work candidates matching any of the given skills
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Param skills query string true "Comma-separated skills"
// @Param limit query int false "Result limit" default(20)
// @Success 200 {array} models.CandidateProfile
// @Failure 400 {object} models.ErrorResponse "Missing skills parameter"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidates/by-skills [get]
func (h *SearchHandler) CandidatesBySkills(c *gin.Context) {
	skillsParam := c.Query("skills")
	if skillsParam == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "skills query parameter is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	skills := []string{}
	for _, s := range strings.Split(skillsParam, ",") {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	candidates, err := h.firestoreClient.ListOpenToWork(c.Request.Context())
	if err != nil {
		log.Printf("[SearchHandler] Failed to load candidates: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load candidates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, search.BySkills(candidates, skills, limit))
}

// Statistics returns pool-wide candidate aggregates
// @Summary Candidate pool statistics
// @Description Get aggregate statistics over all candidate profiles
// @Tags Search
// @Produce json
// @Security BearerAuth
// @Success 200 {object} search.Stats
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidates/statistics [get]
func (h *SearchHandler) Statistics(c *gin.Context) {
	candidates, err := h.firestoreClient.ListCandidates(c.Request.Context())
	if err != nil {
		log.Printf("[SearchHandler] Failed to load candidates: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load candidates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, search.Statistics(candidates))
}
