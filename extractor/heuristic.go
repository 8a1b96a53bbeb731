package extractor

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/talenthub/backend/models"
)

// Limits of the heuristic strategy
const (
	maxEntriesPerSection = 5
	maxFieldLen          = 100
	maxDescriptionLen    = 200
	maxNameLen           = 50
	minExperienceSection = 20
	minEducationSection  = 10
)

// commonSkills is the reference list the heuristic skill scan matches
// against. Matches are returned in this order.
var commonSkills = []string{
	"JavaScript", "Python", "Java", "React", "Node.js", "Angular", "Vue",
	"TypeScript", "MongoDB", "SQL", "AWS", "Docker", "Kubernetes",
	"Git", "REST API", "GraphQL", "HTML", "CSS", "Tailwind",
}

var (
	experienceSectionRe = regexp.MustCompile(`(?is)(?:WORK\s+EXPERIENCE|PROFESSIONAL\s+EXPERIENCE|EMPLOYMENT\s+HISTORY|WORK\s+HISTORY|EXPERIENCE)(.*?)(?:EDUCATION|SKILLS|PROJECTS|CERTIFICATIONS|$)`)
	educationSectionRe  = regexp.MustCompile(`(?is)(?:EDUCATION|ACADEMIC\s+BACKGROUND|EDUCATIONAL\s+QUALIFICATIONS?)(.*?)(?:WORK|EXPERIENCE|SKILLS|PROJECTS|CERTIFICATIONS|$)`)

	// Month-name + year, or a year range ending in a year or "present"
	dateLineRe = regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec|January|February|March|April|June|July|August|September|October|November|December)[\s,]*\d{4}|(?:19|20)\d{2}\s*[-–—]\s*(?:(?:19|20)\d{2}|Present|Current)`)

	degreeRe      = regexp.MustCompile(`(?i)(Bachelor|Master|PhD|Doctorate|B\.?S\.?C?\.?|M\.?S\.?C?\.?|B\.?A\.?|M\.?A\.?|B\.?Tech|M\.?Tech|B\.?E\.?|M\.?E\.?|Diploma|Associate|Degree|High\s+School|Secondary)`)
	institutionRe = regexp.MustCompile(`(?i)(University|College|School|Institute|Academy)`)
	yearRe        = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	emailRe      = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRe      = regexp.MustCompile(`[0-9\s\-\+\(\)]{10,}`)
	blankLinesRe = regexp.MustCompile(`\n\s*\n`)
)

// HeuristicExtractor extracts profile data with section-header regexes.
// It has no basis to infer bio, title, projects, certifications or
// total experience, so those stay empty.
type HeuristicExtractor struct{}

// NewHeuristicExtractor creates the regex-based extraction strategy
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Extract never fails: an unrecognizable document simply yields a
// payload of empty fields.
func (e *HeuristicExtractor) Extract(_ context.Context, cvText string) (*models.ExtractedProfile, error) {
	extracted := &models.ExtractedProfile{
		Name:           firstLine(cvText),
		Email:          firstMatch(emailRe, cvText),
		Phone:          strings.TrimSpace(firstMatch(phoneRe, cvText)),
		Skills:         extractSkills(cvText),
		Experience:     extractExperience(cvText),
		Education:      extractEducation(cvText),
		Projects:       []models.ExtractedProject{},
		Certifications: []models.ExtractedCertification{},
	}
	extracted.Normalize()
	return extracted, nil
}

// extractSkills returns the subset of the reference list found in the
// text, case-insensitively, in reference-list order.
func extractSkills(cvText string) []string {
	lower := strings.ToLower(cvText)
	found := []string{}
	for _, skill := range commonSkills {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}

func extractExperience(cvText string) []models.ExtractedExperience {
	section := captureSection(experienceSectionRe, cvText, minExperienceSection)
	if section == "" {
		return []models.ExtractedExperience{}
	}

	experiences := []models.ExtractedExperience{}
	for _, block := range splitBlocks(section) {
		if len(experiences) >= maxEntriesPerSection {
			break
		}

		lines := nonEmptyLines(block)
		if len(lines) < 2 {
			continue
		}

		var role, company string
		for i, line := range lines {
			if dateLineRe.MatchString(line) {
				// Date line found: role is right above it, company above that
				if i > 0 {
					role = lines[i-1]
				}
				if i > 1 {
					company = lines[i-2]
				} else if i == 1 {
					company = lines[0]
				}
			}
		}

		// No date line: first line is the role, second the company
		if role == "" {
			role = lines[0]
			company = strings.TrimSpace(dateLineRe.ReplaceAllString(lines[1], ""))
			if company == "" {
				company = lines[1]
			}
		}

		if len(role) <= 3 || len(role) >= 150 {
			continue
		}
		if company == "" {
			company = "Company"
		}

		experiences = append(experiences, models.ExtractedExperience{
			Role:    truncate(role, maxFieldLen),
			Company: truncate(company, maxFieldLen),
			// Duration cannot be inferred reliably; one year per entry
			// is the agreed placeholder.
			Years:       1,
			Description: truncate(strings.Join(sliceLines(lines, 2, 5), " "), maxDescriptionLen),
		})
	}

	return experiences
}

func extractEducation(cvText string) []models.ExtractedEducation {
	section := captureSection(educationSectionRe, cvText, minEducationSection)
	if section == "" {
		return []models.ExtractedEducation{}
	}

	education := []models.ExtractedEducation{}
	for _, block := range splitBlocks(section) {
		if len(education) >= maxEntriesPerSection {
			break
		}

		lines := nonEmptyLines(block)
		if len(lines) == 0 {
			continue
		}

		var degree, institution string
		for _, line := range lines {
			if degreeRe.MatchString(line) {
				degree = line
				break
			}
		}
		for _, line := range lines {
			if institutionRe.MatchString(line) && line != degree {
				institution = line
				break
			}
		}
		if institution == "" && len(lines) > 1 {
			institution = lines[1]
		}
		if institution == "" {
			institution = "University"
		}
		if degree == "" {
			degree = lines[0]
		}
		if len(degree) <= 2 {
			continue
		}

		year := time.Now().Year()
		if years := yearRe.FindAllString(block, -1); len(years) > 0 {
			if parsed, err := strconv.Atoi(years[len(years)-1]); err == nil {
				year = parsed
			}
		}

		education = append(education, models.ExtractedEducation{
			Degree:         truncate(degree, maxFieldLen),
			Institution:    truncate(institution, maxFieldLen),
			GraduationYear: models.FlexibleNumber(year),
		})
	}

	return education
}

// captureSection runs a section regex and returns the captured span if
// it clears the minimum length, else ""
func captureSection(re *regexp.Regexp, cvText string, minLen int) string {
	match := re.FindStringSubmatch(cvText)
	if match == nil {
		return ""
	}
	if len(strings.TrimSpace(match[1])) <= minLen {
		return ""
	}
	return match[1]
}

func splitBlocks(section string) []string {
	blocks := []string{}
	for _, block := range blankLinesRe.Split(section, -1) {
		if len(strings.TrimSpace(block)) > 5 {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func nonEmptyLines(block string) []string {
	lines := []string{}
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func sliceLines(lines []string, from, to int) []string {
	if from >= len(lines) {
		return nil
	}
	if to > len(lines) {
		to = len(lines)
	}
	return lines[from:to]
}

func firstLine(cvText string) string {
	for _, line := range strings.Split(cvText, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return truncate(trimmed, maxNameLen)
		}
	}
	return ""
}

func firstMatch(re *regexp.Regexp, text string) string {
	return re.FindString(text)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
