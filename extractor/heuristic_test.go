package extractor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const sampleCV = `Jane Doe
jane.doe@example.com
+1 (555) 123-4567

WORK EXPERIENCE

Acme Corp
Senior Backend Developer
Jan 2020 - Present
Built REST APIs in Go and Python
Led a team of four engineers

Globex
Junior Developer
2017 - 2020
Maintained React frontend and Node.js services

EDUCATION

Bachelor of Science in Computer Science
State University
2013 - 2017

SKILLS
JavaScript, Python, Go, React, Docker, SQL
`

func TestHeuristicExtractContactDetails(t *testing.T) {
	extracted, err := NewHeuristicExtractor().Extract(context.Background(), sampleCV)

	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", extracted.Name)
	assert.Equal(t, "jane.doe@example.com", extracted.Email)
	assert.NotEmpty(t, extracted.Phone)
}

func TestHeuristicExtractSkillsInReferenceOrder(t *testing.T) {
	extracted, err := NewHeuristicExtractor().Extract(context.Background(), sampleCV)

	assert.NoError(t, err)
	// Matches come back in reference-list order, not document order.
	// "Java" rides along as a substring of "JavaScript", "REST API"
	// matches the plural "REST APIs".
	assert.Equal(t,
		[]string{"JavaScript", "Python", "Java", "React", "Node.js", "SQL", "Docker", "REST API"},
		[]string(extracted.Skills))
}

func TestHeuristicExtractExperience(t *testing.T) {
	extracted, err := NewHeuristicExtractor().Extract(context.Background(), sampleCV)

	assert.NoError(t, err)
	assert.Len(t, extracted.Experience, 2)

	first := extracted.Experience[0]
	assert.Equal(t, "Senior Backend Developer", first.Role)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, float64(1), float64(first.Years))
}

func TestHeuristicExtractEducation(t *testing.T) {
	extracted, err := NewHeuristicExtractor().Extract(context.Background(), sampleCV)

	assert.NoError(t, err)
	assert.Len(t, extracted.Education, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", extracted.Education[0].Degree)
	assert.Equal(t, "State University", extracted.Education[0].Institution)
	assert.Equal(t, float64(2017), float64(extracted.Education[0].GraduationYear))
}

func TestHeuristicExtractMissingSections(t *testing.T) {
	text := `John Smith
john@example.com

I write Go and use Docker daily.
`
	extracted, err := NewHeuristicExtractor().Extract(context.Background(), text)

	assert.NoError(t, err)
	assert.Empty(t, extracted.Experience)
	assert.Empty(t, extracted.Education)
	assert.Contains(t, []string(extracted.Skills), "Docker")
}

func TestHeuristicExtractEmptyInput(t *testing.T) {
	extracted, err := NewHeuristicExtractor().Extract(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, "", extracted.Name)
	assert.Empty(t, extracted.Skills)
	assert.Empty(t, extracted.Experience)
	assert.Empty(t, extracted.Education)
	assert.NotNil(t, extracted.Projects)
	assert.NotNil(t, extracted.Certifications)
}

func TestHeuristicEducationYearFallsBackToCurrentYear(t *testing.T) {
	text := `Jane Doe

EDUCATION

Bachelor of Engineering
Technical College
`
	extracted, err := NewHeuristicExtractor().Extract(context.Background(), text)

	assert.NoError(t, err)
	assert.Len(t, extracted.Education, 1)
	assert.Equal(t, float64(time.Now().Year()), float64(extracted.Education[0].GraduationYear))
}

func TestHeuristicCapsEntriesPerSection(t *testing.T) {
	text := "WORK EXPERIENCE\n"
	for i := 0; i < 10; i++ {
		text += "\nSoftware Engineer Position\nSome Company Name\nJan 2020 - Dec 2020\nDid engineering work here\n"
	}

	extracted, err := NewHeuristicExtractor().Extract(context.Background(), text)

	assert.NoError(t, err)
	assert.LessOrEqual(t, len(extracted.Experience), maxEntriesPerSection)
}
