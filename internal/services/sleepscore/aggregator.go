package sleepscore

import (
	"math"
	"sort"
	"time"

	"github.com/dreamecho/feed-api/internal/models"
)

// Distribution buckets session scores into quality bands.
type Distribution struct {
	Poor      int `json:"poor"`      // 0-49
	Fair      int `json:"fair"`      // 50-69
	Good      int `json:"good"`      // 70-84
	Excellent int `json:"excellent"` // 85-100
}

// DailyScore is the per-calendar-day average.
type DailyScore struct {
	Date         string `json:"date"` // 2006-01-02, local time
	AverageScore int    `json:"averageScore"`
	Count        int    `json:"count"`
}

// Recommendation is one habit suggestion derived from the period.
type Recommendation struct {
	Type    string `json:"type"` // warning or info
	Message string `json:"message"`
}

// ScoredRecord pairs a session with its score breakdown.
type ScoredRecord struct {
	Record models.HistoryRecord `json:"record"`
	Score  *RecordScore         `json:"score"`
}

// PeriodStats aggregates scores across a set of sessions.
type PeriodStats struct {
	TotalRecords      int              `json:"totalRecords"`
	AverageScore      int              `json:"averageScore"`
	AvgContentScore   int              `json:"avgContentScore"`
	AvgBehaviorScore  int              `json:"avgBehaviorScore"`
	TotalScore        int              `json:"totalScore"`
	ScoreDistribution Distribution     `json:"scoreDistribution"`
	DailyScores       []DailyScore     `json:"dailyScores"`
	Recommendations   []Recommendation `json:"recommendations"`
	Records           []ScoredRecord   `json:"records,omitempty"`
}

// Aggregate scores every session within the optional [start, end] bounds and
// summarizes the period. No matching records is a valid result with zeroed
// stats, never an error.
func Aggregate(records []models.HistoryRecord, start, end *time.Time) *PeriodStats {
	filtered := make([]models.HistoryRecord, 0, len(records))
	for _, record := range records {
		if start != nil && record.PlayedAt.Before(*start) {
			continue
		}
		if end != nil && record.PlayedAt.After(*end) {
			continue
		}
		filtered = append(filtered, record)
	}

	if len(filtered) == 0 {
		return &PeriodStats{
			DailyScores:     []DailyScore{},
			Recommendations: []Recommendation{},
		}
	}

	scored := make([]ScoredRecord, len(filtered))
	totalScore, contentSum, behaviorSum := 0, 0, 0
	for i, record := range filtered {
		score := CalculateRecordScore(&record)
		scored[i] = ScoredRecord{Record: record, Score: score}
		totalScore += score.TotalScore
		contentSum += score.ContentScore
		behaviorSum += score.BehaviorScore
	}

	n := float64(len(scored))
	stats := &PeriodStats{
		TotalRecords:     len(filtered),
		AverageScore:     int(math.Round(float64(totalScore) / n)),
		AvgContentScore:  int(math.Round(float64(contentSum) / n)),
		AvgBehaviorScore: int(math.Round(float64(behaviorSum) / n)),
		TotalScore:       totalScore,
		Records:          scored,
	}

	for _, item := range scored {
		switch {
		case item.Score.TotalScore <= 49:
			stats.ScoreDistribution.Poor++
		case item.Score.TotalScore <= 69:
			stats.ScoreDistribution.Fair++
		case item.Score.TotalScore <= 84:
			stats.ScoreDistribution.Good++
		default:
			stats.ScoreDistribution.Excellent++
		}
	}

	stats.DailyScores = dailyScores(scored)
	stats.Recommendations = recommendations(scored, stats.AverageScore)
	return stats
}

// dailyScores groups sessions by local calendar date, newest day first.
func dailyScores(scored []ScoredRecord) []DailyScore {
	type bucket struct {
		sum   int
		count int
	}
	buckets := make(map[string]*bucket)
	for _, item := range scored {
		date := item.Record.PlayedAt.Local().Format("2006-01-02")
		b, ok := buckets[date]
		if !ok {
			b = &bucket{}
			buckets[date] = b
		}
		b.sum += item.Score.TotalScore
		b.count++
	}

	daily := make([]DailyScore, 0, len(buckets))
	for date, b := range buckets {
		daily = append(daily, DailyScore{
			Date:         date,
			AverageScore: int(math.Round(float64(b.sum) / float64(b.count))),
			Count:        b.count,
		})
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date > daily[j].Date })
	return daily
}

// recommendations applies fixed habit rules over the scored period.
func recommendations(scored []ScoredRecord, averageScore int) []Recommendation {
	recs := []Recommendation{}
	n := float64(len(scored))

	if averageScore < 50 {
		recs = append(recs, Recommendation{
			Type:    "warning",
			Message: "平均睡眠评分较低，建议选择更适合睡眠的播客内容",
		})
	}

	lowContent := 0
	nightCount := 0
	var minutesSum float64
	for _, item := range scored {
		if item.Score.ContentScore < 50 {
			lowContent++
		}
		hour := item.Record.PlayedAt.Hour()
		if hour >= 20 || hour < 6 {
			nightCount++
		}
		minutesSum += float64(item.Record.PlayedDuration) / 60
	}

	if float64(lowContent)/n > 0.3 {
		recs = append(recs, Recommendation{
			Type:    "warning",
			Message: "部分播客内容可能不适合睡眠（如脱口秀、辩论等），建议选择冥想、故事、历史类播客",
		})
	}

	if float64(nightCount)/n < 0.5 {
		recs = append(recs, Recommendation{
			Type:    "info",
			Message: "建议在晚上8点后或凌晨播放，有助于提高睡眠质量",
		})
	}

	avgMinutes := minutesSum / n
	if avgMinutes < 15 {
		recs = append(recs, Recommendation{
			Type:    "info",
			Message: "建议每次播放至少15分钟，有助于更好地放松",
		})
	} else if avgMinutes > 90 {
		recs = append(recs, Recommendation{
			Type:    "warning",
			Message: "播放时间过长可能影响睡眠质量，建议控制在90分钟以内",
		})
	}

	return recs
}
