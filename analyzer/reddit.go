// Package analyzer 는 수집된 커뮤니티/댓글 데이터를 키워드 태깅으로
// 학습용 샘플로 바꾼다. ML 은 없고 전부 부분 문자열 매칭과 산술이다.
package analyzer

import (
	"strings"
	"time"
)

// RedditPost 는 수집기에서 넘어오는 게시물 한 건이다.
type RedditPost struct {
	Source        string `json:"source"`
	Subreddit     string `json:"subreddit"`
	Title         string `json:"title"`
	Content       string `json:"content"`
	Score         int    `json:"score"`
	NumComments   int    `json:"num_comments"`
	CreatedUTC    int64  `json:"created_utc"`
	SpeechPattern string `json:"speech_pattern,omitempty"`
}

// RedditSample 은 게시물 하나를 태깅한 학습 샘플이다.
type RedditSample struct {
	RawData          RedditPost `json:"raw_data"`
	ProcessedAt      string     `json:"processed_at"`
	TrendCategory    string     `json:"trend_category"`
	EmotionTriggers  []string   `json:"emotion_triggers"`
	ViralPotential   float64    `json:"viral_potential"`
	RecommendedTones []string   `json:"recommended_tones"`
}

// RedditInsights 는 샘플 묶음의 집계 결과다.
type RedditInsights struct {
	TotalSamples        int            `json:"total_samples"`
	TrendDistribution   map[string]int `json:"trend_distribution"`
	TopEmotionTriggers  []LabelCount   `json:"top_emotion_triggers"`
	RecommendedTones    []LabelCount   `json:"recommended_tones"`
	QualityDistribution struct {
		Average float64 `json:"average"`
	} `json:"quality_distribution"`
}

// RedditProcessor 는 게시물을 트렌드/감정/바이럴 관점으로 태깅한다.
type RedditProcessor struct{}

func NewRedditProcessor() *RedditProcessor { return &RedditProcessor{} }

// 카테고리 검사 순서가 분류 결과를 좌우하므로 슬라이스로 고정한다.
var redditTrendCategories = []struct {
	category string
	keywords []string
}{
	{"cost_of_living", []string{"월세", "물가", "생활비", "집값", "경제"}},
	{"entertainment", []string{"영화", "드라마", "아이돌", "연예인"}},
	{"social_dynamics", []string{"세대", "직장", "문화", "mz"}},
	{"politics", []string{"정부", "정책", "법", "민주주의"}},
	{"inequality", []string{"부동산", "상대적 박탈감", "서민"}},
}

var emotionTriggerPatterns = []struct {
	trigger  string
	patterns []string
}{
	{"frustration", []string{"진짜", "정말", "숨이 막히다", "스트레스"}},
	{"empathy", []string{"다들", "여러분", "우리"}},
	{"superiority", []string{"차이", "수준", "격차"}},
	{"validation", []string{"맞다", "공감", "동감"}},
}

// Process 는 게시물들을 학습 샘플로 변환한다. 입력 순서를 보존한다.
func (p *RedditProcessor) Process(posts []RedditPost) []RedditSample {
	samples := make([]RedditSample, 0, len(posts))
	for _, post := range posts {
		samples = append(samples, RedditSample{
			RawData:          post,
			ProcessedAt:      time.Now().Format(time.RFC3339),
			TrendCategory:    p.categorizeTrend(post.Content),
			EmotionTriggers:  p.extractEmotionTriggers(post.Content),
			ViralPotential:   p.viralPotential(post),
			RecommendedTones: p.suggestTones(post.Content),
		})
	}
	return samples
}

func (p *RedditProcessor) categorizeTrend(content string) string {
	lower := strings.ToLower(content)
	for _, group := range redditTrendCategories {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.category
			}
		}
	}
	return "general"
}

func (p *RedditProcessor) extractEmotionTriggers(content string) []string {
	lower := strings.ToLower(content)
	triggers := []string{}
	for _, group := range emotionTriggerPatterns {
		for _, pat := range group.patterns {
			if strings.Contains(lower, pat) {
				triggers = append(triggers, group.trigger)
				break
			}
		}
	}
	return triggers
}

func (p *RedditProcessor) viralPotential(post RedditPost) float64 {
	score := (float64(post.Score)*0.7 + float64(post.NumComments)*0.3) / 1000
	if score > 10.0 {
		return 10.0
	}
	return score
}

func (p *RedditProcessor) suggestTones(content string) []string {
	lower := strings.ToLower(content)
	tones := []string{}
	if strings.Contains(lower, "스트레스") || strings.Contains(lower, "힘들다") {
		tones = append(tones, "공감 톤")
	}
	if strings.Contains(lower, "차이") || strings.Contains(lower, "세대") {
		tones = append(tones, "풍자적")
	}
	if strings.Contains(lower, "진짜") || strings.Contains(lower, "정말") {
		tones = append(tones, "MZ 반말 톤")
	}
	if len(tones) > 3 {
		tones = tones[:3]
	}
	return tones
}

// Insights 는 처리된 샘플들에서 분포/빈도 집계를 만든다.
func (p *RedditProcessor) Insights(samples []RedditSample) RedditInsights {
	trends := newCounter()
	triggers := newCounter()
	tones := newCounter()
	var viralSum float64

	for _, s := range samples {
		trends.Add(s.TrendCategory)
		triggers.Add(s.EmotionTriggers...)
		tones.Add(s.RecommendedTones...)
		viralSum += s.ViralPotential
	}

	insights := RedditInsights{
		TotalSamples:       len(samples),
		TrendDistribution:  trends.Distribution(),
		TopEmotionTriggers: triggers.Sorted(0),
		RecommendedTones:   tones.Sorted(0),
	}
	if len(samples) > 0 {
		insights.QualityDistribution.Average = viralSum / float64(len(samples))
	}
	return insights
}
