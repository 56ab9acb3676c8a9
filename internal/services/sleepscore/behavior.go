package sleepscore

import (
	"math"

	"github.com/dreamecho/feed-api/internal/models"
)

// BehaviorDetails describes the playback habits behind a behavior score.
type BehaviorDetails struct {
	PlayHour        int     `json:"playHour"`
	DurationMinutes float64 `json:"durationMinutes"` // rounded to 0.1
	Progress        int     `json:"progress"`
	IsNightTime     bool    `json:"isNightTime"`
	IsIdealDuration bool    `json:"isIdealDuration"`
}

// RecordScore blends content and behavior analysis for one listening session.
type RecordScore struct {
	ContentScore    int              `json:"contentScore"`
	BehaviorScore   int              `json:"behaviorScore"`
	TotalScore      int              `json:"totalScore"`
	ContentAnalysis *ContentAnalysis `json:"contentAnalysis"`
	BehaviorDetails BehaviorDetails  `json:"behaviorDetails"`
}

// CalculateRecordScore scores one session: content analysis weighted 60%,
// playback behavior 40%.
func CalculateRecordScore(record *models.HistoryRecord) *RecordScore {
	contentAnalysis := AnalyzeContent(ContentInput{
		Title:       record.EpisodeTitle,
		Description: record.Description,
		PodcastName: record.PodcastName,
		Duration:    record.Duration,
	})
	behaviorScore := BehaviorScore(record)

	return &RecordScore{
		ContentScore:    contentAnalysis.Score,
		BehaviorScore:   behaviorScore,
		TotalScore:      int(math.Round(float64(contentAnalysis.Score)*0.6 + float64(behaviorScore)*0.4)),
		ContentAnalysis: contentAnalysis,
		BehaviorDetails: behaviorDetails(record),
	}
}

// BehaviorScore rates playback habits 0-100: time of day up to 40, session
// length up to 40, completion up to 20. Late-night sessions of 15 to 60
// minutes played at least halfway through score best.
func BehaviorScore(record *models.HistoryRecord) int {
	score := 0

	hour := record.PlayedAt.Hour()
	switch {
	case hour >= 22 || hour < 2:
		score += 40
	case hour >= 20 || (hour >= 2 && hour < 6):
		score += 30
	case hour >= 6 && hour < 12:
		score += 10
	}

	durationMinutes := float64(record.PlayedDuration) / 60
	switch {
	case durationMinutes >= 15 && durationMinutes <= 60:
		score += 40
	case durationMinutes >= 10 && durationMinutes < 15:
		score += 25
	case durationMinutes > 60 && durationMinutes <= 90:
		score += 30
	case durationMinutes > 90:
		score += 15
	}

	progress := record.Progress()
	switch {
	case progress >= 50:
		score += 20
	case progress >= 30:
		score += 15
	case progress >= 15:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func behaviorDetails(record *models.HistoryRecord) BehaviorDetails {
	hour := record.PlayedAt.Hour()
	durationMinutes := float64(record.PlayedDuration) / 60

	return BehaviorDetails{
		PlayHour:        hour,
		DurationMinutes: math.Round(durationMinutes*10) / 10,
		Progress:        record.Progress(),
		IsNightTime:     hour >= 20 || hour < 6,
		IsIdealDuration: durationMinutes >= 15 && durationMinutes <= 60,
	}
}
