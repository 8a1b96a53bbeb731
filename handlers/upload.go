package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talenthub/backend/auth"
	"github.com/talenthub/backend/config"
	"github.com/talenthub/backend/extractor"
	"github.com/talenthub/backend/models"
	"github.com/talenthub/backend/storage"
	"github.com/talenthub/backend/utils"
)

// UploadHandler handles CV upload and the extraction pipeline
type UploadHandler struct {
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	extractor       extractor.ProfileExtractor
	docExtractor    *utils.DocumentExtractor
	maxUploadBytes  int64
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	profileExtractor extractor.ProfileExtractor,
	cfg *config.Config,
) *UploadHandler {
	return &UploadHandler{
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		extractor:       profileExtractor,
		docExtractor:    utils.NewDocumentExtractor(),
		maxUploadBytes:  int64(cfg.MaxUploadSizeMB) * 1024 * 1024,
	}
}

// UploadCV stores a CV file and runs the extraction pipeline over it.
// The file always lands on the profile; extraction is best-effort and
// its failure never fails the upload.
// @Summary Upload CV
// @Description Upload a CV file, extract profile data from it and merge into the profile
// @Tags JobSeeker
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param cv formData file true "CV file (PDF, DOC, DOCX)"
// @Success 200 {object} models.CVUploadResponse
// @Failure 400 {object} models.ErrorResponse "Invalid file"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobseeker/cv [post]
func (h *UploadHandler) UploadCV(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	file, header, err := c.Request.FormFile("cv")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "CV file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	if !h.docExtractor.IsSupportedFormat(header.Filename) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Unsupported file format. Allowed: PDF, DOC, DOCX",
			Code:  http.StatusBadRequest,
		})
		return
	}

	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error: fmt.Sprintf("File exceeds the %dMB size limit", h.maxUploadBytes/(1024*1024)),
			Code:  http.StatusRequestEntityTooLarge,
		})
		return
	}

	content, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		log.Printf("[UploadHandler] Failed to read file: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to read file",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	if int64(len(content)) > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
			Error: fmt.Sprintf("File exceeds the %dMB size limit", h.maxUploadBytes/(1024*1024)),
			Code:  http.StatusRequestEntityTooLarge,
		})
		return
	}

	profile, err := loadOrCreateCandidate(c, h.firestoreClient, claims.UserID)
	if err != nil {
		return
	}

	cvUrl, err := h.storageClient.UploadCV(c.Request.Context(), claims.UserID, content, header.Filename)
	if err != nil {
		log.Printf("[UploadHandler] Failed to upload CV: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to upload CV",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	// Replace the previous CV after the new one is safely stored
	if profile.CVUrl != "" && profile.CVUrl != cvUrl {
		if err := h.storageClient.DeleteCV(c.Request.Context(), profile.CVUrl); err != nil {
			log.Printf("[UploadHandler] Failed to delete old CV: %v", err)
		}
	}

	profile.CVUrl = cvUrl
	profile.CVFileName = header.Filename

	summary := h.runExtraction(c, profile, content, header.Filename)

	profile.RefreshScore()

	if err := h.firestoreClient.UpdateCandidate(c.Request.Context(), profile); err != nil {
		log.Printf("[UploadHandler] Failed to persist profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	log.Printf("[UploadHandler] CV uploaded for user %s: %s (score %d)", claims.UserID, header.Filename, profile.ProfileScore)
	c.JSON(http.StatusOK, models.CVUploadResponse{
		Message:      "CV uploaded successfully",
		CVUrl:        cvUrl,
		FileName:     header.Filename,
		ProfileScore: profile.ProfileScore,
		Extracted:    summary,
	})
}

// runExtraction extracts profile data from the CV text and merges it
// into the profile. Any failure leaves the profile untouched beyond the
// CV metadata already set.
func (h *UploadHandler) runExtraction(c *gin.Context, profile *models.CandidateProfile, content []byte, filename string) models.ExtractionSummary {
	summary := models.ExtractionSummary{}

	cvText, err := h.docExtractor.ExtractText(content, filename)
	if err != nil {
		log.Printf("[UploadHandler] Text extraction skipped: %v", err)
		return summary
	}

	extracted, err := h.extractor.Extract(c.Request.Context(), cvText)
	if err != nil {
		log.Printf("[UploadHandler] Profile extraction failed: %v", err)
		return summary
	}

	skillsBefore := len(profile.Skills)
	experienceBefore := len(profile.Experience)
	educationBefore := len(profile.Education)
	projectsBefore := len(profile.Projects)
	bioBefore := profile.Bio
	locationBefore := profile.Location
	phoneBefore := profile.Phone

	profile.MergeExtracted(extracted)

	summary.SkillsCount = len(profile.Skills) - skillsBefore
	summary.ExperienceCount = len(profile.Experience) - experienceBefore
	summary.EducationCount = len(profile.Education) - educationBefore
	summary.ProjectsCount = len(profile.Projects) - projectsBefore
	summary.BioAdded = bioBefore == "" && profile.Bio != ""
	summary.LocationAdded = locationBefore == "" && profile.Location != ""
	summary.PhoneAdded = phoneBefore == "" && profile.Phone != ""
	summary.TotalExperienceYears = profile.TotalExperienceYears

	return summary
}

// DeleteCV removes the profile's CV file and clears its CV metadata
// @Summary Delete CV
// @Description Delete the uploaded CV from the profile
// @Tags JobSeeker
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CandidateProfile
// @Failure 404 {object} models.ErrorResponse "No CV uploaded"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /jobseeker/cv [delete]
func (h *UploadHandler) DeleteCV(c *gin.Context) {
	claims := auth.GetAuthClaims(c)

	profile, err := loadOrCreateCandidate(c, h.firestoreClient, claims.UserID)
	if err != nil {
		return
	}

	if profile.CVUrl == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No CV uploaded",
			Code:  http.StatusNotFound,
		})
		return
	}

	if err := h.storageClient.DeleteCV(c.Request.Context(), profile.CVUrl); err != nil {
		log.Printf("[UploadHandler] Failed to delete CV object: %v", err)
	}

	profile.CVUrl = ""
	profile.CVFileName = ""
	profile.RefreshScore()

	if err := h.firestoreClient.UpdateCandidate(c.Request.Context(), profile); err != nil {
		log.Printf("[UploadHandler] Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update profile",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, profile)
}
