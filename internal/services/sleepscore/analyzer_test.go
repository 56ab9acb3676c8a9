package sleepscore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeContentNeutral(t *testing.T) {
	analysis := AnalyzeContent(ContentInput{
		Title:       "Weekly Review",
		PodcastName: "The Roundup",
		Duration:    30 * 60,
	})
	assert.Equal(t, 100, analysis.Score)
	assert.Equal(t, "excellent", analysis.Level.Level)
	assert.Equal(t, 30.0, analysis.DurationMinutes)
	assert.Empty(t, analysis.Details.NegativeKeywords)
}

func TestAnalyzeContentDurationDeductions(t *testing.T) {
	// Just over two hours: -20, and the single negative factor draws no
	// extra penalty.
	analysis := AnalyzeContent(ContentInput{Title: "Marathon", Duration: 121 * 60})
	assert.Equal(t, 80, analysis.Score)
	assert.Equal(t, -20, analysis.Details.DurationDeduction)
	assert.Equal(t, 0, analysis.Details.ExtraPenalty)

	// 90 minutes up to two hours: -10.
	analysis = AnalyzeContent(ContentInput{Title: "Long Form", Duration: 95 * 60})
	assert.Equal(t, 90, analysis.Score)
	assert.Equal(t, -10, analysis.Details.DurationDeduction)

	// Exactly at the two hour mark stays in the lighter bracket.
	analysis = AnalyzeContent(ContentInput{Title: "Two Hours", Duration: 120 * 60})
	assert.Equal(t, 90, analysis.Score)
}

func TestAnalyzeContentKeywordCategories(t *testing.T) {
	// A negative keyword costs 15 exactly once, however often it appears.
	analysis := AnalyzeContent(ContentInput{
		Title:       "Comedy hour of comedy",
		PodcastName: "More comedy",
		Duration:    30 * 60,
	})
	assert.Equal(t, 85, analysis.Score)
	require.Len(t, analysis.Details.NegativeKeywords, 1)
	assert.Equal(t, "comedy", analysis.Details.NegativeKeywords[0])

	// Positive keyword +10 is clamped at 100.
	analysis = AnalyzeContent(ContentInput{Title: "冥想与睡眠", Duration: 30 * 60})
	assert.Equal(t, 100, analysis.Score)
	require.Len(t, analysis.Details.PositiveKeywords, 1)

	// Intense and calm keywords only count inside the description.
	analysis = AnalyzeContent(ContentInput{Title: "frenzy", Duration: 30 * 60})
	assert.Empty(t, analysis.Details.IntenseEmotions)

	analysis = AnalyzeContent(ContentInput{
		Title:       "Evening",
		Description: "a quiet wind-down",
		Duration:    30 * 60,
	})
	assert.Equal(t, 100, analysis.Score)
	require.Len(t, analysis.Details.CalmKeywords, 1)
	assert.Equal(t, "quiet", analysis.Details.CalmKeywords[0])
}

func TestAnalyzeContentStackedNegatives(t *testing.T) {
	// Negative keyword plus over-two-hours: 100-20-15 = 65, then an extra
	// penalty of min(15, 2*5) = 10.
	analysis := AnalyzeContent(ContentInput{
		Title:    "Comedy marathon",
		Duration: 121 * 60,
	})
	assert.Equal(t, 55, analysis.Score)
	assert.Equal(t, -10, analysis.Details.ExtraPenalty)
	assert.Equal(t, "fair", analysis.Level.Level)

	// All three negative factors: 100-20-15-10 = 55, extra penalty capped
	// at 15.
	analysis = AnalyzeContent(ContentInput{
		Title:       "Comedy marathon",
		Description: "an intense live frenzy",
		Duration:    121 * 60,
	})
	assert.Equal(t, 40, analysis.Score)
	assert.Equal(t, -15, analysis.Details.ExtraPenalty)
	assert.Equal(t, "poor", analysis.Level.Level)
}

func TestScoreLevelBands(t *testing.T) {
	assert.Equal(t, "excellent", ScoreLevelFor(85).Level)
	assert.Equal(t, "good", ScoreLevelFor(84).Level)
	assert.Equal(t, "good", ScoreLevelFor(70).Level)
	assert.Equal(t, "fair", ScoreLevelFor(69).Level)
	assert.Equal(t, "fair", ScoreLevelFor(50).Level)
	assert.Equal(t, "poor", ScoreLevelFor(49).Level)
}

func TestExplanations(t *testing.T) {
	analysis := AnalyzeContent(ContentInput{
		Title:       "Comedy marathon",
		Description: "an intense live frenzy",
		Duration:    121 * 60,
	})
	explanations := Explanations(analysis)
	require.Len(t, explanations, 3)
	for _, e := range explanations {
		assert.Equal(t, "warning", e.Type)
		assert.NotEmpty(t, e.Text)
	}

	analysis = AnalyzeContent(ContentInput{Title: "Sleep stories", Description: "calm reading", Duration: 30 * 60})
	explanations = Explanations(analysis)
	require.Len(t, explanations, 2)
	assert.Equal(t, "success", explanations[0].Type)
	assert.Equal(t, "success", explanations[1].Type)
}
