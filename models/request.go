package models

// ErrorResponse represents an API error response
// @Description Standard error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"email is required"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// UpdateCandidateRequest represents a job seeker profile update.
// Pointer fields distinguish "leave unchanged" from "clear".
// @Description Job seeker profile update request
type UpdateCandidateRequest struct {
	Skills            *[]string     `json:"skills,omitempty"`
	Experience        *[]Experience `json:"experience,omitempty"`
	Education         *[]Education  `json:"education,omitempty"`
	Projects          *[]Project    `json:"projects,omitempty"`
	Certifications    *[]string     `json:"certifications,omitempty"`
	Languages         *[]string     `json:"languages,omitempty"`
	Bio               *string       `json:"bio,omitempty"`
	Location          *string       `json:"location,omitempty"`
	Phone             *string       `json:"phone,omitempty"`
	LinkedinURL       *string       `json:"linkedinUrl,omitempty"`
	GithubURL         *string       `json:"githubUrl,omitempty"`
	PortfolioURL      *string       `json:"portfolioUrl,omitempty"`
	ExpectedSalary    *float64      `json:"expectedSalary,omitempty"`
	IsOpenToWork      *bool         `json:"isOpenToWork,omitempty"`
	PreferredJobTypes *[]string     `json:"preferredJobTypes,omitempty"`
}

// Apply copies the provided fields onto the profile. Derived fields
// are recomputed by the caller via Refresh.
func (r *UpdateCandidateRequest) Apply(p *CandidateProfile) {
	if r.Skills != nil {
		p.Skills = *r.Skills
	}
	if r.Experience != nil {
		p.Experience = *r.Experience
	}
	if r.Education != nil {
		p.Education = *r.Education
	}
	if r.Projects != nil {
		p.Projects = *r.Projects
	}
	if r.Certifications != nil {
		p.Certifications = *r.Certifications
	}
	if r.Languages != nil {
		p.Languages = *r.Languages
	}
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Phone != nil {
		p.Phone = *r.Phone
	}
	if r.LinkedinURL != nil {
		p.LinkedinURL = *r.LinkedinURL
	}
	if r.GithubURL != nil {
		p.GithubURL = *r.GithubURL
	}
	if r.PortfolioURL != nil {
		p.PortfolioURL = *r.PortfolioURL
	}
	if r.ExpectedSalary != nil {
		p.ExpectedSalary = *r.ExpectedSalary
	}
	if r.IsOpenToWork != nil {
		p.IsOpenToWork = *r.IsOpenToWork
	}
	if r.PreferredJobTypes != nil {
		p.PreferredJobTypes = *r.PreferredJobTypes
	}
}

// UpdateRecruiterRequest represents a recruiter profile update
// @Description Recruiter profile update request
type UpdateRecruiterRequest struct {
	CompanyName    *string `json:"companyName,omitempty"`
	CompanyWebsite *string `json:"companyWebsite,omitempty"`
	CompanySize    *string `json:"companySize,omitempty"`
	Industry       *string `json:"industry,omitempty"`
	Designation    *string `json:"designation,omitempty"`
}

// Apply copies the provided fields onto the recruiter profile
func (r *UpdateRecruiterRequest) Apply(p *RecruiterProfile) {
	if r.CompanyName != nil && *r.CompanyName != "" {
		p.CompanyName = *r.CompanyName
	}
	if r.CompanyWebsite != nil {
		p.CompanyWebsite = *r.CompanyWebsite
	}
	if r.CompanySize != nil {
		p.CompanySize = *r.CompanySize
	}
	if r.Industry != nil {
		p.Industry = *r.Industry
	}
	if r.Designation != nil {
		p.Designation = *r.Designation
	}
}

// SaveCandidateRequest bookmarks a candidate for a recruiter
// @Description Save candidate request
type SaveCandidateRequest struct {
	CandidateID string   `json:"candidateId" binding:"required"`
	Notes       string   `json:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// SavedCandidateDetail is a saved candidate with its resolved profile
// @Description Saved candidate with resolved profile details
type SavedCandidateDetail struct {
	Candidate *CandidateProfile `json:"candidate"`
	SavedAt   string            `json:"savedAt"`
	Notes     string            `json:"notes"`
	Tags      []string          `json:"tags"`
}

// MatchRequest carries free-text job requirements for AI matching
// @Description AI candidate matching request
type MatchRequest struct {
	Requirements string `json:"requirements" binding:"required" example:"Senior Go developer, 5+ years, Kubernetes"`
}

// CVUploadResponse summarizes a CV upload and what was extracted
// @Description CV upload response with extraction summary
type CVUploadResponse struct {
	Message      string            `json:"message" example:"CV uploaded successfully"`
	CVUrl        string            `json:"cvUrl"`
	FileName     string            `json:"fileName"`
	ProfileScore int               `json:"profileScore"`
	Extracted    ExtractionSummary `json:"extractedData"`
}

// ExtractionSummary counts what the extraction pipeline contributed
type ExtractionSummary struct {
	SkillsCount          int     `json:"skillsCount"`
	ExperienceCount      int     `json:"experienceCount"`
	EducationCount       int     `json:"educationCount"`
	ProjectsCount        int     `json:"projectsCount"`
	BioAdded             bool    `json:"bioAdded"`
	LocationAdded        bool    `json:"locationAdded"`
	PhoneAdded           bool    `json:"phoneAdded"`
	TotalExperienceYears float64 `json:"totalExperienceYears"`
}

// SuggestionsResponse reports profile improvement suggestions
// @Description Profile improvement suggestions
type SuggestionsResponse struct {
	CurrentScore   int          `json:"currentScore" example:"47"`
	PotentialScore int          `json:"potentialScore" example:"90"`
	Suggestions    []Suggestion `json:"suggestions"`
}
