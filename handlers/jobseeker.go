package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talenthub/backend/auth"
	"github.com/talenthub/backend/models"
	"github.com/talenthub/backend/storage"
)

// JobSeekerHandler handles candidate profile requests
type JobSeekerHandler struct {
	firestoreClient *storage.FirestoreClient
}

// NewJobSeekerHandler creates a new job seeker handler
func NewJobSeekerHandler(firestoreClient *storage.FirestoreClient) *JobSeekerHandler {
	return &JobSeekerHandler{firestoreClient: firestoreClient}
}

// GetMyProfile returns the authenticated job seeker's profile, creating
// an empty one on first access
// @Summary Get own candidate profile
// @Description Get the authenticated job seeker's profile
// @Tags JobSeeker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CandidateProfile
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobseeker/profile [get]
func (h *JobSeekerHandler) GetMyProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	profile, err := h.profileForUser(c, claims.UserID)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile applies a partial update to the authenticated job
// seeker's profile and recomputes the derived fields
// @Summary Update own candidate profile
// @Description Partially update the authenticated job seeker's profile
// @Tags JobSeeker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateCandidateRequest true "Profile update"
// @Success 200 {object} models.CandidateProfile
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobseeker/profile [put]
func (h *JobSeekerHandler) UpdateMyProfile(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	var req models.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	profile, err := h.profileForUser(c, claims.UserID)
	if err != nil {
		return
	}

	req.Apply(profile)
	profile.Refresh()

	if err := h.firestoreClient.UpdateCandidate(c.Request.Context(), profile); err != nil {
		log.Printf("[JobSeekerHandler] Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[JobSeekerHandler] Profile updated: %s (score %d)", profile.ID, profile.ProfileScore)
	c.JSON(http.StatusOK, profile)
}

// GetCandidate returns a candidate profile by ID. Views by anyone but
// the owner bump the profile view counter.
// @Summary Get candidate by ID
// @Description Get a candidate profile by its document ID
// @Tags JobSeeker
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} models.CandidateProfile
// @Failure 400 {object} models.ErrorResponse "Invalid candidate ID"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidates/{id} [get]
func (h *JobSeekerHandler) GetCandidate(c *gin.Context) {
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
		log.Printf("[JobSeekerHandler] Failed to get candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	claims := auth.GetAuthClaims(c)
	if claims != nil && claims.UserID != profile.UserID {
		if err := h.firestoreClient.IncrementCandidateViews(c.Request.Context(), profile.ID); err != nil {
			log.Printf("[JobSeekerHandler] Failed to increment views: %v", err)
		} else {
			profile.ProfileViews++
		}
	}

	c.JSON(http.StatusOK, profile)
}

// profileForUser loads the user's candidate profile, creating an empty
// one when none exists yet. Writes the error response itself; a nil
// profile means the response has been sent.
func (h *JobSeekerHandler) profileForUser(c *gin.Context, userID string) (*models.CandidateProfile, error) {
	return loadOrCreateCandidate(c, h.firestoreClient, userID)
}

// loadOrCreateCandidate fetches a user's candidate profile, creating an
// empty one on first access. Writes the error response itself; a nil
// profile means the response has been sent.
func loadOrCreateCandidate(c *gin.Context, fs *storage.FirestoreClient, userID string) (*models.CandidateProfile, error) {
	profile, err := fs.GetCandidateByUserID(c.Request.Context(), userID)
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("[JobSeekerHandler] Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to get profile",
			Code:  http.StatusInternalServerError,
		})
		return nil, err
	}

	profile = models.NewCandidateProfile(userID)
	if err := fs.CreateCandidate(c.Request.Context(), profile); err != nil {
		log.Printf("[JobSeekerHandler] Failed to create profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create profile",
			Code:  http.StatusInternalServerError,
		})
		return nil, err
	}

	log.Printf("[JobSeekerHandler] Created empty profile for user %s", userID)
	return profile, nil
}

// validDocumentID rejects empty IDs and the string artifacts frontend
// frameworks send for undefined values
func validDocumentID(id string) bool {
	return id != "" && id != "undefined" && id != "null"
}
