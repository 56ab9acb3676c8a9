package sleepscore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dreamecho/feed-api/internal/models"
)

func recordAt(hour, playedMinutes, durationMinutes int) *models.HistoryRecord {
	return &models.HistoryRecord{
		EpisodeTitle:   "Weekly Review",
		PodcastName:    "The Roundup",
		Duration:       durationMinutes * 60,
		PlayedDuration: playedMinutes * 60,
		PlayedAt:       time.Date(2026, 3, 10, hour, 30, 0, 0, time.Local),
	}
}

func TestBehaviorScoreTimeOfDay(t *testing.T) {
	tests := []struct {
		hour int
		want int
	}{
		{23, 40}, // late night
		{1, 40},
		{21, 30}, // evening
		{3, 30},  // early morning
		{8, 10},  // morning
		{14, 0},  // daytime
	}
	for _, tt := range tests {
		// 200-minute episode keeps session-length and completion at zero.
		record := recordAt(tt.hour, 2, 200)
		assert.Equal(t, tt.want, BehaviorScore(record), "hour %d", tt.hour)
	}
}

func TestBehaviorScoreSessionLength(t *testing.T) {
	tests := []struct {
		playedMinutes int
		want          int
	}{
		{30, 40},  // ideal range
		{15, 40},  // lower edge of ideal
		{60, 40},  // upper edge of ideal
		{12, 25},  // a bit short
		{75, 30},  // a bit long
		{120, 15}, // far too long
		{5, 0},    // too short to judge
	}
	for _, tt := range tests {
		// Daytime play and a huge episode keep the other components at zero.
		record := recordAt(14, tt.playedMinutes, 2000)
		assert.Equal(t, tt.want, BehaviorScore(record), "%d minutes", tt.playedMinutes)
	}
}

func TestBehaviorScoreCompletion(t *testing.T) {
	tests := []struct {
		playedMinutes int
		want          int
	}{
		{100, 20}, // 50%
		{70, 15},  // 35%
		{30, 10},  // 15%
		{10, 0},   // 5%
	}
	for _, tt := range tests {
		record := recordAt(14, tt.playedMinutes, 200)
		// Strip the session-length component to isolate completion.
		got := BehaviorScore(record) - sessionLengthComponent(tt.playedMinutes)
		assert.Equal(t, tt.want, got, "%d of 200 minutes", tt.playedMinutes)
	}
}

func sessionLengthComponent(playedMinutes int) int {
	switch {
	case playedMinutes >= 15 && playedMinutes <= 60:
		return 40
	case playedMinutes >= 10 && playedMinutes < 15:
		return 25
	case playedMinutes > 60 && playedMinutes <= 90:
		return 30
	case playedMinutes > 90:
		return 15
	}
	return 0
}

func TestBehaviorScorePerfectSession(t *testing.T) {
	// 23:30, 30 of 45 minutes: 40 + 40 + 20.
	record := recordAt(23, 30, 45)
	assert.Equal(t, 100, BehaviorScore(record))
}

func TestCalculateRecordScoreBlend(t *testing.T) {
	record := recordAt(23, 30, 45)
	score := CalculateRecordScore(record)

	assert.Equal(t, 100, score.ContentScore)
	assert.Equal(t, 100, score.BehaviorScore)
	assert.Equal(t, 100, score.TotalScore)

	// Content 80 (just over two hours). Behavior: 40 for the hour, 40 for a
	// 45-minute session, 15 for 37% progress = 95.
	// round(80*0.6 + 95*0.4) = 86.
	record = recordAt(23, 45, 121)
	score = CalculateRecordScore(record)
	assert.Equal(t, 80, score.ContentScore)
	assert.Equal(t, 95, score.BehaviorScore)
	assert.Equal(t, 86, score.TotalScore)

	assert.Equal(t, 23, score.BehaviorDetails.PlayHour)
	assert.True(t, score.BehaviorDetails.IsNightTime)
	assert.True(t, score.BehaviorDetails.IsIdealDuration)
}
