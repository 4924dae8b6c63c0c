package scraper

import (
	"strings"
	"time"
)

// PostAnalysis 는 게시물 한 건에 대한 패턴 분석 결과다.
// 모델 분석과 규칙 기반 분석이 같은 형태를 공유한다.
type PostAnalysis struct {
	SpeechPatterns          []string `json:"speech_patterns"`
	EmotionalHooks          []string `json:"emotional_hooks"`
	ViralElements           []string `json:"viral_elements"`
	PsychologicalMechanisms string   `json:"psychological_mechanisms"`
	ToneClassification      string   `json:"tone_classification"`
	EffectivenessScore      float64  `json:"effectiveness_score"`
	UsageRecommendations    string   `json:"usage_recommendations"`
}

// AnalyzedPost 는 원본 게시물과 분석 결과의 묶음이다.
type AnalyzedPost struct {
	OriginalData CommunityPost `json:"original_data"`
	Analysis     PostAnalysis  `json:"ai_analysis"`
	AnalysisDate string        `json:"analysis_date"`
	CostUsed     float64       `json:"cost_used"`
}

// SimulateAnalysis 는 모델 호출 없이 규칙만으로 게시물들을 분석한다.
// API 키가 없거나 예산이 없을 때의 대체 경로다.
func (s *Scraper) SimulateAnalysis(posts []CommunityPost) []AnalyzedPost {
	out := make([]AnalyzedPost, 0, len(posts))
	for _, post := range posts {
		tone := post.SpeechPattern
		if tone == "" {
			tone = "일반톤"
		}
		out = append(out, AnalyzedPost{
			OriginalData: post,
			Analysis: PostAnalysis{
				SpeechPatterns:          extractSpeechPatterns(post),
				EmotionalHooks:          identifyEmotionalHooks(post),
				ViralElements:           findViralElements(post),
				PsychologicalMechanisms: "시뮬레이션된 심리적 메커니즘 분석",
				ToneClassification:      tone,
				EffectivenessScore:      6.0 + s.rng.Float64()*3.5,
				UsageRecommendations:    "시뮬레이션된 활용 권장사항",
			},
			AnalysisDate: time.Now().Format(time.RFC3339),
			CostUsed:     0,
		})
	}
	return out
}

func extractSpeechPatterns(post CommunityPost) []string {
	text := post.Title + " " + post.Content
	patterns := []string{}
	if strings.Contains(text, "ㅋㅋ") {
		patterns = append(patterns, "웃음표현")
	}
	if containsAny(text, "진짜", "완전", "개") {
		patterns = append(patterns, "강화어")
	}
	if containsAny(text, "미쳤다", "레전드", "대박") {
		patterns = append(patterns, "극찬표현")
	}
	if strings.Contains(text, "?") {
		patterns = append(patterns, "의문형")
	}
	if len(patterns) == 0 {
		return []string{"일반패턴"}
	}
	return patterns
}

func identifyEmotionalHooks(post CommunityPost) []string {
	text := post.Title + " " + post.Content
	hooks := []string{}
	if post.Score > 100 {
		hooks = append(hooks, "공감대형성")
	}
	if containsAny(text, "충격", "반전", "설마") {
		hooks = append(hooks, "호기심유발")
	}
	if containsAny(text, "웃기", "어이없") {
		hooks = append(hooks, "우월감자극")
	}
	if len(hooks) == 0 {
		return []string{"일반감정"}
	}
	return hooks
}

func findViralElements(post CommunityPost) []string {
	text := post.Title + " " + post.Content
	elements := []string{}
	if post.NumComments > 50 {
		elements = append(elements, "높은참여도")
	}
	if containsAny(text, "실화", "진짜", "헐") {
		elements = append(elements, "충격성")
	}
	if len([]rune(text)) < 100 {
		elements = append(elements, "간결성")
	}
	if len(elements) == 0 {
		return []string{"기본요소"}
	}
	return elements
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
