package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexibleStringSliceAcceptsStringOrArray(t *testing.T) {
	var fromArray FlexibleStringSlice
	assert.NoError(t, json.Unmarshal([]byte(`["Go","React"]`), &fromArray))
	assert.Equal(t, FlexibleStringSlice{"Go", "React"}, fromArray)

	var fromString FlexibleStringSlice
	assert.NoError(t, json.Unmarshal([]byte(`"Go"`), &fromString))
	assert.Equal(t, FlexibleStringSlice{"Go"}, fromString)

	var fromEmpty FlexibleStringSlice
	assert.NoError(t, json.Unmarshal([]byte(`""`), &fromEmpty))
	assert.Empty(t, fromEmpty)

	var fromGarbage FlexibleStringSlice
	assert.NoError(t, json.Unmarshal([]byte(`42`), &fromGarbage))
	assert.Empty(t, fromGarbage)
}

func TestFlexibleNumberAcceptsNumberOrNumericString(t *testing.T) {
	var fromNumber FlexibleNumber
	assert.NoError(t, json.Unmarshal([]byte(`5.5`), &fromNumber))
	assert.Equal(t, FlexibleNumber(5.5), fromNumber)

	var fromString FlexibleNumber
	assert.NoError(t, json.Unmarshal([]byte(`"3"`), &fromString))
	assert.Equal(t, FlexibleNumber(3), fromString)

	var fromGarbage FlexibleNumber
	assert.NoError(t, json.Unmarshal([]byte(`"five"`), &fromGarbage))
	assert.Equal(t, FlexibleNumber(0), fromGarbage)
}

func TestExtractedProfileToleratesSloppyPayload(t *testing.T) {
	// Shapes Gemini has actually produced: single string for an array
	// field, numeric string for a number
	payload := `{
		"name": "Jane Doe",
		"totalYears": "4.5",
		"skills": "Go",
		"experience": [{"role": "Dev", "company": "Acme", "years": "2"}]
	}`

	var extracted ExtractedProfile
	assert.NoError(t, json.Unmarshal([]byte(payload), &extracted))
	extracted.Normalize()

	assert.Equal(t, "Jane Doe", extracted.Name)
	assert.Equal(t, FlexibleNumber(4.5), extracted.TotalExperienceYears)
	assert.Equal(t, FlexibleStringSlice{"Go"}, extracted.Skills)
	assert.Equal(t, FlexibleNumber(2), extracted.Experience[0].Years)
	assert.NotNil(t, extracted.Education)
	assert.NotNil(t, extracted.Projects)
}
