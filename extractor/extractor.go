// Package extractor turns raw CV text into a structured profile
// payload. Two interchangeable strategies exist: an AI-backed one and
// a regex/heuristic one. The heuristic strategy is always available
// and serves as the unconditional fallback whenever the AI strategy
// fails for any reason.
package extractor

import (
	"context"
	"log"

	"github.com/talenthub/backend/gemini"
	"github.com/talenthub/backend/models"
)

// ProfileExtractor extracts a structured profile payload from raw CV text
type ProfileExtractor interface {
	Extract(ctx context.Context, cvText string) (*models.ExtractedProfile, error)
}

// profileGenerator is the slice of the Gemini client the AI strategy needs
type profileGenerator interface {
	ExtractProfile(ctx context.Context, cvText string) (*models.ExtractedProfile, error)
}

// New selects the extraction strategy at construction time. With no
// Gemini client configured the heuristic strategy is the sole
// implementation.
func New(client *gemini.Client) ProfileExtractor {
	if client == nil {
		log.Println("[Extractor] AI not configured, using heuristic extraction only")
		return NewHeuristicExtractor()
	}
	return &AIExtractor{
		ai:       client,
		fallback: NewHeuristicExtractor(),
	}
}

// AIExtractor asks the generative-language service for a structured
// profile and degrades to heuristic extraction on any failure.
type AIExtractor struct {
	ai       profileGenerator
	fallback *HeuristicExtractor
}

// Extract never surfaces AI failures to the caller; a single failed
// attempt routes straight to the heuristic strategy.
func (e *AIExtractor) Extract(ctx context.Context, cvText string) (*models.ExtractedProfile, error) {
	extracted, err := e.ai.ExtractProfile(ctx, cvText)
	if err != nil {
		log.Printf("[Extractor] AI extraction failed, falling back to heuristics: %v", err)
		return e.fallback.Extract(ctx, cvText)
	}
	return extracted, nil
}
