package models

import "time"

// Experience represents a single work experience entry
type Experience struct {
	Company     string    `json:"company" firestore:"company"`
	Role        string    `json:"role" firestore:"role"`
	Years       float64   `json:"years" firestore:"years"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	StartDate   time.Time `json:"startDate,omitempty" firestore:"startDate,omitempty"`
	EndDate     time.Time `json:"endDate,omitempty" firestore:"endDate,omitempty"`
	IsCurrent   bool      `json:"isCurrent" firestore:"isCurrent"`
}

// Education represents an education entry
type Education struct {
	Institution    string `json:"institution" firestore:"institution"`
	Degree         string `json:"degree" firestore:"degree"`
	Field          string `json:"field,omitempty" firestore:"field,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty" firestore:"graduationYear,omitempty"`
	Grade          string `json:"grade,omitempty" firestore:"grade,omitempty"`
}

// Project represents a personal or professional project
type Project struct {
	Name         string   `json:"name" firestore:"name"`
	Description  string   `json:"description,omitempty" firestore:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty" firestore:"technologies,omitempty"`
	URL          string   `json:"url,omitempty" firestore:"url,omitempty"`
}

// AISummary is the AI-generated insight block stored on a profile
type AISummary struct {
	SkillExtraction   []string  `json:"skillExtraction" firestore:"skillExtraction"`
	ExperienceSummary string    `json:"experienceSummary" firestore:"experienceSummary"`
	Strengths         []string  `json:"strengths" firestore:"strengths"`
	WeakAreas         []string  `json:"weakAreas" firestore:"weakAreas"`
	OverallSummary    string    `json:"overallSummary" firestore:"overallSummary"`
	GeneratedAt       time.Time `json:"generatedAt" firestore:"generatedAt"`
}

// CandidateProfile represents a job seeker profile in Firestore
// @Description Job seeker profile with skills, experience and derived scores
type CandidateProfile struct {
	ID     string `json:"id" firestore:"-"`
	UserID string `json:"userId" firestore:"userId"`

	Skills         []string     `json:"skills" firestore:"skills"`
	Experience     []Experience `json:"experience" firestore:"experience"`
	Education      []Education  `json:"education" firestore:"education"`
	Projects       []Project    `json:"projects" firestore:"projects"`
	Certifications []string     `json:"certifications" firestore:"certifications"`
	Languages      []string     `json:"languages" firestore:"languages"`

	CVUrl      string `json:"cvUrl,omitempty" firestore:"cvUrl"`
	CVFileName string `json:"cvFileName,omitempty" firestore:"cvFileName"`

	Bio          string `json:"bio,omitempty" firestore:"bio"`
	Location     string `json:"location,omitempty" firestore:"location"`
	Phone        string `json:"phone,omitempty" firestore:"phone"`
	LinkedinURL  string `json:"linkedinUrl,omitempty" firestore:"linkedinUrl"`
	GithubURL    string `json:"githubUrl,omitempty" firestore:"githubUrl"`
	PortfolioURL string `json:"portfolioUrl,omitempty" firestore:"portfolioUrl"`

	ExpectedSalary float64 `json:"expectedSalary,omitempty" firestore:"expectedSalary"`

	// Derived fields, never taken from client input directly.
	TotalExperienceYears float64 `json:"totalExperienceYears" firestore:"totalExperienceYears"`
	ProfileScore         int     `json:"profileScore" firestore:"profileScore"`

	AISummary *AISummary `json:"aiSummary,omitempty" firestore:"aiSummary"`

	IsOpenToWork      bool     `json:"isOpenToWork" firestore:"isOpenToWork"`
	PreferredJobTypes []string `json:"preferredJobTypes" firestore:"preferredJobTypes"` // full-time, part-time, contract, remote

	ProfileViews int64 `json:"profileViews" firestore:"profileViews"`

	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	LastUpdated time.Time `json:"lastUpdated" firestore:"lastUpdated"`
}

// NewCandidateProfile creates an empty profile for a freshly registered
// job seeker. The base score of 10 comes from ComputeScore on the empty
// profile.
func NewCandidateProfile(userID string) *CandidateProfile {
	p := &CandidateProfile{
		UserID:            userID,
		Skills:            []string{},
		Experience:        []Experience{},
		Education:         []Education{},
		Projects:          []Project{},
		Certifications:    []string{},
		Languages:         []string{},
		PreferredJobTypes: []string{},
		IsOpenToWork:      true,
		CreatedAt:         time.Now(),
		LastUpdated:       time.Now(),
	}
	p.ProfileScore = p.ComputeScore()
	return p
}

// TotalYears sums the years of all experience entries. It is the only
// source for TotalExperienceYears on manual profile updates.
func (p *CandidateProfile) TotalYears() float64 {
	var total float64
	for _, exp := range p.Experience {
		total += exp.Years
	}
	return total
}

// Touch refreshes the LastUpdated timestamp
func (p *CandidateProfile) Touch() {
	p.LastUpdated = time.Now()
}
