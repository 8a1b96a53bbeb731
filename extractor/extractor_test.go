package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talenthub/backend/models"
)

type stubGenerator struct {
	profile *models.ExtractedProfile
	err     error
	calls   int
}

func (s *stubGenerator) ExtractProfile(_ context.Context, _ string) (*models.ExtractedProfile, error) {
	s.calls++
	return s.profile, s.err
}

func TestNewWithoutClientUsesHeuristics(t *testing.T) {
	e := New(nil)

	_, ok := e.(*HeuristicExtractor)
	assert.True(t, ok)
}

func TestAIExtractorReturnsAIResult(t *testing.T) {
	want := &models.ExtractedProfile{Name: "Jane Doe", Skills: models.FlexibleStringSlice{"Go"}}
	stub := &stubGenerator{profile: want}
	e := &AIExtractor{ai: stub, fallback: NewHeuristicExtractor()}

	got, err := e.Extract(context.Background(), "some cv text")

	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, stub.calls)
}

func TestAIExtractorFallsBackOnError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("model unavailable")}
	e := &AIExtractor{ai: stub, fallback: NewHeuristicExtractor()}

	got, err := e.Extract(context.Background(), sampleCV)

	// The AI failure is swallowed; heuristics produce the result
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.NotEmpty(t, got.Skills)
}
