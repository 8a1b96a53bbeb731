package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/talenthub/backend/auth"
	"github.com/talenthub/backend/models"
	"github.com/talenthub/backend/storage"
)

// RecruiterHandler handles recruiter profile requests
type RecruiterHandler struct {
	firestoreClient *storage.FirestoreClient
}

// NewRecruiterHandler creates a new recruiter handler
func NewRecruiterHandler(firestoreClient *storage.FirestoreClient) *RecruiterHandler {
	return &RecruiterHandler{firestoreClient: firestoreClient}
}

// GetMyProfile returns the authenticated recruiter's profile
// @Summary Get own recruiter profile
// @Description Get the authenticated recruiter's profile
// @Tags Recruiter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.RecruiterProfile
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/profile [get]
func (h *RecruiterHandler) GetMyProfile(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile applies a partial update to the recruiter profile
// @Summary Update own recruiter profile
// @Description Partially update the authenticated recruiter's profile
// @Tags Recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateRecruiterRequest true "Profile update"
// @Success 200 {object} models.RecruiterProfile
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/profile [put]
func (h *RecruiterHandler) UpdateMyProfile(c *gin.Context) {
	var req models.UpdateRecruiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	req.Apply(profile)
	profile.UpdatedAt = time.Now()

	if err := h.firestoreClient.UpdateRecruiter(c.Request.Context(), profile); err != nil {
		log.Printf("[RecruiterHandler] Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveCandidate bookmarks a candidate on the recruiter profile
// @Summary Save a candidate
// @Description Bookmark a candidate with optional notes and tags
// @Tags Recruiter
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SaveCandidateRequest true "Save candidate request"
// @Success 200 {object} models.RecruiterProfile
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/saved [post]
func (h *RecruiterHandler) SaveCandidate(c *gin.Context) {
	var req models.SaveCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	// The bookmark must point at an existing candidate
	if _, err := h.firestoreClient.GetCandidateByID(c.Request.Context(), req.CandidateID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Candidate not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		log.Printf("[RecruiterHandler] Failed to check candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	profile.SaveCandidate(req.CandidateID, req.Notes, req.Tags)
	profile.UpdatedAt = time.Now()

	if err := h.firestoreClient.UpdateRecruiter(c.Request.Context(), profile); err != nil {
		log.Printf("[RecruiterHandler] Failed to save candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to save candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveSavedCandidate drops a bookmark
// @Summary Remove a saved candidate
// @Description Remove a bookmarked candidate from the recruiter profile
// @Tags Recruiter
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.RecruiterProfile
// @Failure 404 {object} models.ErrorResponse "Saved candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/saved/{id} [delete]
func (h *RecruiterHandler) RemoveSavedCandidate(c *gin.Context) {
	candidateID := c.Param("id")

	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	if !profile.RemoveSavedCandidate(candidateID) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Saved candidate not found",
			Code:  http.StatusNotFound,
		})
		return
	}
	profile.UpdatedAt = time.Now()

	if err := h.firestoreClient.UpdateRecruiter(c.Request.Context(), profile); err != nil {
		log.Printf("[RecruiterHandler] Failed to remove saved candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to remove saved candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListSavedCandidates returns the recruiter's bookmarks with resolved
// profiles. Bookmarks whose candidate no longer exists are skipped.
// @Summary List saved candidates
// @Description List bookmarked candidates with resolved profile details
// @Tags Recruiter
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SavedCandidateDetail
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/saved [get]
func (h *RecruiterHandler) ListSavedCandidates(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	details := []models.SavedCandidateDetail{}
	for _, saved := range profile.SavedCandidates {
		candidate, err := h.firestoreClient.GetCandidateByID(c.Request.Context(), saved.CandidateID)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				log.Printf("[RecruiterHandler] Failed to resolve saved candidate %s: %v", saved.CandidateID, err)
			}
			continue
		}
		details = append(details, models.SavedCandidateDetail{
			Candidate: candidate,
			SavedAt:   saved.SavedAt.Format(time.RFC3339),
			Notes:     saved.Notes,
			Tags:      saved.Tags,
		})
	}

	c.JSON(http.StatusOK, details)
}

// GetSearchHistory returns the recruiter's search history, newest first
// @Summary Get search history
// @Description Get the recruiter's recent searches, newest first
// @Tags Recruiter
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SearchRecord
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /recruiter/searches [get]
func (h *RecruiterHandler) GetSearchHistory(c *gin.Context) {
	profile, ok := h.loadProfile(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalSearches": profile.TotalSearches,
		"searches":      profile.SortedSearchHistory(),
	})
}

// loadProfile fetches the authenticated recruiter's profile and writes
// the error response when it cannot
func (h *RecruiterHandler) loadProfile(c *gin.Context) (*models.RecruiterProfile, bool) {
	claims := auth.GetAuthClaims(c)

	profile, err := h.firestoreClient.GetRecruiterByUserID(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Recruiter profile not found",
				Code:  http.StatusNotFound,
			})
			return nil, false
		}
		log.Printf("[RecruiterHandler] Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get profile",
			Code:  http.StatusInternalServerError,
		})
		return nil, false
	}

	return profile, true
}
