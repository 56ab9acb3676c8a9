package sleepscore

import (
	"fmt"
	"math"
	"strings"
)

// ContentInput is the episode metadata the analyzer works from.
type ContentInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PodcastName string `json:"podcastName"`
	Duration    int    `json:"duration"` // seconds
}

// ContentDetails itemizes every adjustment applied to the base score.
type ContentDetails struct {
	BaseScore         int      `json:"baseScore"`
	DurationDeduction int      `json:"durationDeduction"`
	NegativeKeywords  []string `json:"negativeKeywords"`
	PositiveKeywords  []string `json:"positiveKeywords"`
	IntenseEmotions   []string `json:"intenseEmotions"`
	CalmKeywords      []string `json:"calmKeywords"`
	ExtraPenalty      int      `json:"extraPenalty,omitempty"`
	FinalScore        int      `json:"finalScore"`
}

// ScoreLevel is the qualitative band a score falls into.
type ScoreLevel struct {
	Level       string `json:"level"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// ContentAnalysis is the full result of analyzing one episode's metadata.
type ContentAnalysis struct {
	Score           int            `json:"score"`
	Details         ContentDetails `json:"details"`
	Level           ScoreLevel     `json:"level"`
	DurationMinutes float64        `json:"durationMinutes"` // rounded to 0.1
}

// Explanation is one human-readable line about an analysis result.
type Explanation struct {
	Type string `json:"type"` // warning, info or success
	Text string `json:"text"`
}

// AnalyzeContent scores how sleep-friendly an episode looks from its
// metadata, on a 0-100 scale starting at 100. Long runtimes and keyword
// categories each adjust the score once; stacked negative factors draw an
// extra penalty on top.
func AnalyzeContent(input ContentInput) *ContentAnalysis {
	score := 100.0
	details := ContentDetails{BaseScore: 100}

	title := strings.ToLower(input.Title)
	description := strings.ToLower(input.Description)
	podcastName := strings.ToLower(input.PodcastName)
	durationMinutes := float64(input.Duration) / 60

	allText := title + " " + description + " " + podcastName

	if durationMinutes > 120 {
		details.DurationDeduction = -20
		score -= 20
	} else if durationMinutes >= 90 {
		details.DurationDeduction = -10
		score -= 10
	}

	hasNegative := false
	if keyword, ok := firstKeyword(allText, negativeKeywords); ok {
		details.NegativeKeywords = append(details.NegativeKeywords, keyword)
		score -= 15
		hasNegative = true
	}

	if keyword, ok := firstKeyword(allText, positiveKeywords); ok {
		details.PositiveKeywords = append(details.PositiveKeywords, keyword)
		score += 10
	}

	hasIntense := false
	if keyword, ok := firstKeyword(description, intenseEmotionKeywords); ok {
		details.IntenseEmotions = append(details.IntenseEmotions, keyword)
		score -= 10
		hasIntense = true
	}

	if keyword, ok := firstKeyword(description, calmKeywords); ok {
		details.CalmKeywords = append(details.CalmKeywords, keyword)
		score += 5
	}

	score = clamp(score)

	// Stacked negative factors compound beyond their individual deductions.
	negativeCount := 0
	if hasNegative {
		negativeCount++
	}
	if hasIntense {
		negativeCount++
	}
	if durationMinutes > 120 {
		negativeCount++
	}
	if negativeCount >= 2 {
		extraPenalty := math.Min(15, float64(negativeCount)*5)
		score -= extraPenalty
		details.ExtraPenalty = -int(extraPenalty)
	}

	score = clamp(score)
	details.FinalScore = int(math.Round(score))

	return &ContentAnalysis{
		Score:           details.FinalScore,
		Details:         details,
		Level:           ScoreLevelFor(score),
		DurationMinutes: math.Round(durationMinutes*10) / 10,
	}
}

// firstKeyword returns the first list entry contained in text. Text is
// already lowercased; list entries are lowercase by construction.
func firstKeyword(text string, keywords []string) (string, bool) {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return keyword, true
		}
	}
	return "", false
}

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

// ScoreLevelFor maps a score to its qualitative band.
func ScoreLevelFor(score float64) ScoreLevel {
	switch {
	case score >= 85:
		return ScoreLevel{
			Level:       "excellent",
			Label:       "极度适合",
			Icon:        "🌙",
			Color:       "green",
			Description: "非常适合睡眠，内容平和舒缓",
		}
	case score >= 70:
		return ScoreLevel{
			Level:       "good",
			Label:       "较为适合",
			Icon:        "😴",
			Color:       "blue",
			Description: "较为适合睡眠，内容相对平稳",
		}
	case score >= 50:
		return ScoreLevel{
			Level:       "fair",
			Label:       "一般",
			Icon:        "🤔",
			Color:       "yellow",
			Description: "可能有一定起伏，建议调低音量",
		}
	default:
		return ScoreLevel{
			Level:       "poor",
			Label:       "不适合",
			Icon:        "⚠️",
			Color:       "red",
			Description: "内容较为激烈或刺激，不建议睡前听",
		}
	}
}

// Explanations renders an analysis into display-ready lines.
func Explanations(analysis *ContentAnalysis) []Explanation {
	var explanations []Explanation
	minutes := int(math.Round(analysis.DurationMinutes))

	if analysis.DurationMinutes > 120 {
		explanations = append(explanations, Explanation{
			Type: "warning",
			Text: fmt.Sprintf("播客时长 %d 分钟，超过2小时，可能中途醒来", minutes),
		})
	} else if analysis.DurationMinutes >= 90 {
		explanations = append(explanations, Explanation{
			Type: "info",
			Text: fmt.Sprintf("播客时长 %d 分钟，稍长，建议睡前听完", minutes),
		})
	}

	if len(analysis.Details.NegativeKeywords) > 0 {
		explanations = append(explanations, Explanation{
			Type: "warning",
			Text: "检测到不适合睡眠的内容：" + strings.Join(analysis.Details.NegativeKeywords, "、"),
		})
	}
	if len(analysis.Details.PositiveKeywords) > 0 {
		explanations = append(explanations, Explanation{
			Type: "success",
			Text: "检测到适合睡眠的内容：" + strings.Join(analysis.Details.PositiveKeywords, "、"),
		})
	}
	if len(analysis.Details.IntenseEmotions) > 0 {
		explanations = append(explanations, Explanation{
			Type: "warning",
			Text: "包含情绪激烈词汇：" + strings.Join(analysis.Details.IntenseEmotions, "、"),
		})
	}
	if len(analysis.Details.CalmKeywords) > 0 {
		explanations = append(explanations, Explanation{
			Type: "success",
			Text: "包含平静氛围词汇：" + strings.Join(analysis.Details.CalmKeywords, "、"),
		})
	}

	return explanations
}
