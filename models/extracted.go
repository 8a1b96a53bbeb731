package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexibleStringSlice can unmarshal from either a string or []string.
// Gemini occasionally returns a single string where an array was asked
// for, so every AI-facing list field uses this type.
type FlexibleStringSlice []string

func (f *FlexibleStringSlice) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as []string first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*f = arr
		return nil
	}

	// Try to unmarshal as string
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*f = []string{str}
		} else {
			*f = []string{}
		}
		return nil
	}

	// If both fail, return empty slice
	*f = []string{}
	return nil
}

// FlexibleNumber can unmarshal from a JSON number or a numeric string.
// Defaults to 0 on anything unparseable.
type FlexibleNumber float64

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*n = FlexibleNumber(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*n = FlexibleNumber(parsed)
			return nil
		}
	}

	*n = 0
	return nil
}

// ExtractedExperience is a work entry as produced by CV extraction
type ExtractedExperience struct {
	Role        string         `json:"role"`
	Company     string         `json:"company"`
	Years       FlexibleNumber `json:"years"`
	Description string         `json:"description"`
}

// ExtractedEducation is an education entry as produced by CV extraction
type ExtractedEducation struct {
	Degree         string         `json:"degree"`
	Institution    string         `json:"institution"`
	Field          string         `json:"field"`
	GraduationYear FlexibleNumber `json:"graduationYear"`
}

// ExtractedProject is a project entry as produced by CV extraction
type ExtractedProject struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Technologies FlexibleStringSlice `json:"technologies"`
}

// ExtractedCertification is a certification as produced by CV extraction
type ExtractedCertification struct {
	Name   string         `json:"name"`
	Issuer string         `json:"issuer"`
	Year   FlexibleNumber `json:"year"`
}

// ExtractedProfile is the uniform payload both extraction strategies
// produce from raw CV text. Every field is always present (empty
// defaults), so the merge logic never branches on strategy.
type ExtractedProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`

	TotalExperienceYears FlexibleNumber `json:"totalYears"`

	Skills         FlexibleStringSlice      `json:"skills"`
	Experience     []ExtractedExperience    `json:"experience"`
	Education      []ExtractedEducation     `json:"education"`
	Projects       []ExtractedProject       `json:"projects"`
	Certifications []ExtractedCertification `json:"certifications"`
}

// Normalize replaces nil collections with empty ones so downstream
// consumers can rely on the output contract.
func (e *ExtractedProfile) Normalize() {
	if e.Skills == nil {
		e.Skills = FlexibleStringSlice{}
	}
	if e.Experience == nil {
		e.Experience = []ExtractedExperience{}
	}
	if e.Education == nil {
		e.Education = []ExtractedEducation{}
	}
	if e.Projects == nil {
		e.Projects = []ExtractedProject{}
	}
	if e.Certifications == nil {
		e.Certifications = []ExtractedCertification{}
	}
}

// JobRequirements is the structured form of free-text job requirements
// extracted by the AI match engine.
type JobRequirements struct {
	Skills         FlexibleStringSlice `json:"skills"`
	MinExperience  FlexibleNumber      `json:"minExperience"`
	Location       string              `json:"location"`
	MustHaveSkills FlexibleStringSlice `json:"mustHaveSkills"`
}
