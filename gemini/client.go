package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/talenthub/backend/config"
	"github.com/talenthub/backend/models"
)

// maxCVPromptChars bounds how much CV text is sent to the model
const maxCVPromptChars = 10000

// Client wraps the Vertex AI Gemini client
type Client struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	projectID string
	location  string
	modelName string
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	client, err := genai.NewClient(ctx, cfg.ProjectID, cfg.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.GeminiModel)

	// Configure model parameters
	model.SetTemperature(0.2) // Lower temperature for more consistent outputs
	model.SetTopP(0.8)
	model.SetMaxOutputTokens(8192)

	return &Client{
		client:    client,
		model:     model,
		projectID: cfg.ProjectID,
		location:  cfg.Location,
		modelName: cfg.GeminiModel,
	}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.client.Close()
}

// ExtractProfile extracts a structured candidate profile from raw CV
// text. Any error here (service, response shape, JSON parsing) is a
// signal for the caller to fall back to heuristic extraction.
func (c *Client) ExtractProfile(ctx context.Context, cvText string) (*models.ExtractedProfile, error) {
	if len(cvText) > maxCVPromptChars {
		cvText = cvText[:maxCVPromptChars]
	}

	prompt := fmt.Sprintf(`Extract all information from this CV/resume and return ONLY a valid JSON object.

Required JSON structure:
{
  "name": "Full Name",
  "email": "email@example.com",
  "phone": "+1234567890",
  "location": "City, Country",
  "title": "Current Job Title",
  "bio": "Professional summary in 2-3 sentences",
  "totalYears": 5.5,
  "skills": ["JavaScript", "Python", "React"],
  "experience": [
    {
      "role": "Senior Developer",
      "company": "Tech Company Inc",
      "years": 2.5,
      "description": "Key responsibilities and achievements"
    }
  ],
  "education": [
    {
      "degree": "Bachelor of Science in Computer Science",
      "institution": "University Name",
      "field": "Computer Science",
      "graduationYear": 2020
    }
  ],
  "projects": [
    {
      "name": "Project Name",
      "description": "What the project does",
      "technologies": ["React", "Node.js"]
    }
  ],
  "certifications": [
    {
      "name": "Certification Name",
      "issuer": "Issuing Organization",
      "year": 2023
    }
  ]
}

Rules:
- Extract ALL work experience entries with complete details
- Extract ALL education entries with degrees and schools
- Extract ALL technical skills mentioned
- Use empty array [] if section not found
- Use empty string "" for missing text fields
- Return ONLY the JSON object, no markdown formatting, no explanations

CV TEXT:
%s`, cvText)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}
	text = extractJSONObject(cleanJSON(text))

	var extracted models.ExtractedProfile
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		log.Printf("[Gemini] Failed to parse CV extraction response: %.300s", text)
		return nil, fmt.Errorf("failed to parse extraction JSON: %w", err)
	}

	extracted.Normalize()
	log.Printf("[Gemini] Extracted CV data: skills=%d, experience=%d, education=%d, projects=%d",
		len(extracted.Skills), len(extracted.Experience), len(extracted.Education), len(extracted.Projects))

	return &extracted, nil
}

// ExtractRequirements extracts structured job requirements from
// free-text job description
func (c *Client) ExtractRequirements(ctx context.Context, requirements string) (*models.JobRequirements, error) {
	prompt := "Extract key requirements from the job description. Return ONLY valid JSON with fields: skills[], minExperience, location, mustHaveSkills[]. No markdown, just JSON.\n\nJob Description:\n" + requirements

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}
	text = extractJSONObject(cleanJSON(text))

	var extracted models.JobRequirements
	if err := json.Unmarshal([]byte(text), &extracted); err != nil {
		log.Printf("[Gemini] Failed to parse requirements response: %.300s", text)
		return nil, fmt.Errorf("failed to parse requirements JSON: %w", err)
	}

	return &extracted, nil
}

// GenerateInsights produces the structured AI summary block for a
// candidate profile
func (c *Client) GenerateInsights(ctx context.Context, candidate *models.CandidateProfile, candidateName string) (*models.AISummary, error) {
	prompt := buildInsightsPrompt(candidate, candidateName)

	resp, err := c.model.GenerateContent(ctx,
		genai.Text("You are an expert HR analyst. Analyze the candidate profile and provide structured insights."),
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return nil, fmt.Errorf("no response from Gemini")
	}
	text = extractJSONObject(cleanJSON(text))

	var summary models.AISummary
	if err := json.Unmarshal([]byte(text), &summary); err != nil {
		log.Printf("[Gemini] Failed to parse insights response: %.300s", text)
		return nil, fmt.Errorf("failed to parse insights JSON: %w", err)
	}

	return &summary, nil
}

func buildInsightsPrompt(candidate *models.CandidateProfile, candidateName string) string {
	var sb strings.Builder

	sb.WriteString("Analyze this candidate profile and provide insights:\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", candidateName)
	fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(candidate.Skills, ", "))
	fmt.Fprintf(&sb, "Experience: %.1f years\n", candidate.TotalExperienceYears)

	degrees := make([]string, 0, len(candidate.Education))
	for _, edu := range candidate.Education {
		degrees = append(degrees, fmt.Sprintf("%s in %s", edu.Degree, edu.Field))
	}
	fmt.Fprintf(&sb, "Education: %s\n", strings.Join(degrees, ", "))
	fmt.Fprintf(&sb, "Projects: %d projects\n\n", len(candidate.Projects))

	sb.WriteString("Experience Details:\n")
	for _, exp := range candidate.Experience {
		fmt.Fprintf(&sb, "- %s at %s (%.1f years)\n", exp.Role, exp.Company, exp.Years)
	}

	sb.WriteString(`
Provide:
1. Top 5-7 extracted skills
2. Brief experience summary (2-3 sentences)
3. Top 3 strengths
4. 2-3 areas for improvement
5. Overall professional summary (2 sentences)

Format as JSON with fields: skillExtraction, experienceSummary, strengths, weakAreas, overallSummary
`)

	return sb.String()
}

// Helper functions

func extractText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}

// extractJSONObject returns the first top-level {...} object in text,
// matched by brace depth so trailing prose never reaches the parser.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return text
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}

	return text[start:]
}
