package models

import "strings"

// MergeExtracted combines an extraction payload into the profile
// without overwriting populated fields and without duplicating list
// entries. Re-running the same extraction is a no-op, so a repeated CV
// upload never inflates the profile.
//
// Derived fields are NOT recomputed here; callers run RefreshScore
// after merging (not Refresh, which would rebuild the experience total
// from the entries and could lower it below the merged value).
func (p *CandidateProfile) MergeExtracted(data *ExtractedProfile) {
	if data == nil {
		return
	}

	p.mergeSkills(data.Skills)
	p.mergeExperience(data.Experience)
	p.mergeEducation(data.Education)
	p.mergeProjects(data.Projects)

	// Scalar fields: fill only when currently empty.
	if p.Bio == "" && data.Bio != "" {
		p.Bio = data.Bio
	}
	if p.Location == "" && data.Location != "" {
		p.Location = data.Location
	}
	if p.Phone == "" && data.Phone != "" {
		p.Phone = data.Phone
	}

	// Total experience never decreases.
	if extracted := float64(data.TotalExperienceYears); extracted > p.TotalExperienceYears {
		p.TotalExperienceYears = extracted
	}
}

func (p *CandidateProfile) mergeSkills(skills []string) {
	existing := make(map[string]bool, len(p.Skills))
	for _, s := range p.Skills {
		existing[strings.ToLower(s)] = true
	}
	for _, s := range skills {
		if s == "" || existing[strings.ToLower(s)] {
			continue
		}
		p.Skills = append(p.Skills, s)
		existing[strings.ToLower(s)] = true
	}
}

func (p *CandidateProfile) mergeExperience(entries []ExtractedExperience) {
	for _, entry := range entries {
		if entry.Role == "" || entry.Company == "" {
			continue
		}
		exists := false
		for _, exp := range p.Experience {
			if strings.EqualFold(exp.Role, entry.Role) && strings.EqualFold(exp.Company, entry.Company) {
				exists = true
				break
			}
		}
		if !exists {
			p.Experience = append(p.Experience, Experience{
				Role:        entry.Role,
				Company:     entry.Company,
				Years:       float64(entry.Years),
				Description: entry.Description,
			})
		}
	}
}

func (p *CandidateProfile) mergeEducation(entries []ExtractedEducation) {
	for _, entry := range entries {
		if entry.Degree == "" || entry.Institution == "" {
			continue
		}
		exists := false
		for _, edu := range p.Education {
			if strings.EqualFold(edu.Degree, entry.Degree) && strings.EqualFold(edu.Institution, entry.Institution) {
				exists = true
				break
			}
		}
		if !exists {
			p.Education = append(p.Education, Education{
				Degree:         entry.Degree,
				Institution:    entry.Institution,
				Field:          entry.Field,
				GraduationYear: int(entry.GraduationYear),
			})
		}
	}
}

func (p *CandidateProfile) mergeProjects(entries []ExtractedProject) {
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		exists := false
		for _, proj := range p.Projects {
			if strings.EqualFold(proj.Name, entry.Name) {
				exists = true
				break
			}
		}
		if !exists {
			p.Projects = append(p.Projects, Project{
				Name:         entry.Name,
				Description:  entry.Description,
				Technologies: entry.Technologies,
			})
		}
	}
}
