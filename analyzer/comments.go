package analyzer

import (
	"strings"
	"time"
)

// Comment 는 뉴스/유튜브 댓글 한 건이다.
type Comment struct {
	Source             string  `json:"source"`
	Title              string  `json:"title"`
	Content            string  `json:"content"`
	Score              int     `json:"score"`
	NumComments        int     `json:"num_comments"`
	DataType           string  `json:"data_type"`
	SpeechPattern      string  `json:"speech_pattern"`
	EmotionalIntensity float64 `json:"emotional_intensity"`
	Stance             string  `json:"stance"`
}

// CommentSample 은 댓글 하나를 태깅한 학습 샘플이다.
type CommentSample struct {
	RawData                Comment  `json:"raw_data"`
	ProcessedAt            string   `json:"processed_at"`
	PlatformType           string   `json:"platform_type"`
	SpeechPattern          string   `json:"speech_pattern"`
	EmotionalIntensity     float64  `json:"emotional_intensity"`
	PsychologicalDrivers   []string `json:"psychological_drivers"`
	ViralPotential         float64  `json:"viral_potential"`
	RecommendedAdaptations []string `json:"recommended_adaptations"`
}

// CommentInsights 는 댓글 샘플 묶음의 집계다.
type CommentInsights struct {
	TotalSamples            int            `json:"total_samples"`
	PlatformDistribution    map[string]int `json:"platform_distribution"`
	TopPsychologicalDrivers []LabelCount   `json:"top_psychological_drivers"`
	ViralPotentialAnalysis  struct {
		AverageViralScore float64 `json:"average_viral_score"`
		HighViralCount    int     `json:"high_viral_count"`
		ViralRate         float64 `json:"viral_rate"`
	} `json:"viral_potential_analysis"`
	EmotionalIntensityStats struct {
		Average      float64 `json:"average"`
		ExtremeCount int     `json:"extreme_count"`
		ExtremeRate  float64 `json:"extreme_rate"`
	} `json:"emotional_intensity_stats"`
	RecommendedTones []LabelCount `json:"recommended_tones"`
}

const (
	highViralThreshold        = 0.7
	extremeIntensityThreshold = 8.5
)

// CommentProcessor 는 댓글을 플랫폼/심리/바이럴 관점으로 태깅한다.
type CommentProcessor struct{}

func NewCommentProcessor() *CommentProcessor { return &CommentProcessor{} }

// IdentifyPlatform 은 소스 문자열에서 플랫폼을 식별한다.
func IdentifyPlatform(source string) string {
	switch {
	case strings.Contains(source, "naver"):
		return "naver_news"
	case strings.Contains(source, "youtube"):
		return "youtube"
	case strings.Contains(source, "daum"):
		return "daum_news"
	default:
		return "unknown"
	}
}

// Process 는 댓글들을 학습 샘플로 변환한다.
func (p *CommentProcessor) Process(comments []Comment) []CommentSample {
	samples := make([]CommentSample, 0, len(comments))
	for _, c := range comments {
		intensity := c.EmotionalIntensity
		if intensity == 0 {
			intensity = 5.0
		}
		speech := c.SpeechPattern
		if speech == "" {
			speech = "unknown"
		}
		samples = append(samples, CommentSample{
			RawData:                c,
			ProcessedAt:            time.Now().Format(time.RFC3339),
			PlatformType:           IdentifyPlatform(c.Source),
			SpeechPattern:          speech,
			EmotionalIntensity:     intensity,
			PsychologicalDrivers:   p.psychologicalDrivers(c),
			ViralPotential:         p.viralPotential(c, intensity),
			RecommendedAdaptations: p.suggestAdaptations(c),
		})
	}
	return samples
}

func (p *CommentProcessor) psychologicalDrivers(c Comment) []string {
	drivers := []string{}
	content := strings.ToLower(c.Content)

	switch c.Stance {
	case "negative":
		drivers = append(drivers, "frustration_release")
	case "positive":
		drivers = append(drivers, "validation_seeking")
	}

	if strings.Contains(content, "진짜") || strings.Contains(content, "완전") {
		drivers = append(drivers, "emphasis_need")
	}
	if strings.Contains(content, "감사") || strings.Contains(content, "고마") {
		drivers = append(drivers, "gratitude_expression")
	}
	if strings.Contains(content, "걱정") || strings.Contains(content, "조심") {
		drivers = append(drivers, "care_showing")
	}
	return drivers
}

func (p *CommentProcessor) viralPotential(c Comment, intensity float64) float64 {
	score := (float64(c.Score)*0.4 + float64(c.NumComments)*0.3 + intensity*1000*0.3) / 10000
	if score > 1.0 {
		return 1.0
	}
	return score
}

func (p *CommentProcessor) suggestAdaptations(c Comment) []string {
	switch IdentifyPlatform(c.Source) {
	case "naver_news":
		return []string{"냉소 톤", "논리적으로 반박하는"}
	case "youtube":
		return []string{"유머러스하게", "MZ 반말 톤"}
	case "daum_news":
		return []string{"감성 에세이 톤", "에겐톤"}
	default:
		return []string{}
	}
}

// Insights 는 댓글 샘플 묶음에서 집계를 만든다.
func (p *CommentProcessor) Insights(samples []CommentSample) CommentInsights {
	platforms := newCounter()
	drivers := newCounter()
	tones := newCounter()
	var viralSum, intensitySum float64
	var highViral, extreme int

	for _, s := range samples {
		platforms.Add(s.PlatformType)
		drivers.Add(s.PsychologicalDrivers...)
		tones.Add(s.RecommendedAdaptations...)
		viralSum += s.ViralPotential
		intensitySum += s.EmotionalIntensity
		if s.ViralPotential > highViralThreshold {
			highViral++
		}
		if s.EmotionalIntensity > extremeIntensityThreshold {
			extreme++
		}
	}

	insights := CommentInsights{
		TotalSamples:            len(samples),
		PlatformDistribution:    platforms.Distribution(),
		TopPsychologicalDrivers: drivers.Sorted(0),
		RecommendedTones:        tones.Sorted(0),
	}
	if n := len(samples); n > 0 {
		insights.ViralPotentialAnalysis.AverageViralScore = viralSum / float64(n)
		insights.ViralPotentialAnalysis.HighViralCount = highViral
		insights.ViralPotentialAnalysis.ViralRate = float64(highViral) / float64(n)
		insights.EmotionalIntensityStats.Average = intensitySum / float64(n)
		insights.EmotionalIntensityStats.ExtremeCount = extreme
		insights.EmotionalIntensityStats.ExtremeRate = float64(extreme) / float64(n)
	}
	return insights
}
