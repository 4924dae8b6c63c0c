package analyzer

import (
	"regexp"
	"strings"
)

// ViralSignals 는 점수 구간 기반의 바이럴 지표다.
// ViralPotential 과 달리 단계형 정수 점수를 쓰며, 관리자 화면의
// 우선순위 표시에 사용된다.
type ViralSignals struct {
	ViralScore      int      `json:"viral_score"`
	EmotionTriggers []string `json:"emotion_triggers"`
	EngagementRatio float64  `json:"engagement_ratio"`
	TrendCategory   string   `json:"trend_category"`
}

var trendingKeywords = []struct {
	category string
	keywords []string
}{
	{"cost_of_living", []string{"월세", "물가", "생활비", "집값", "부동산", "경제", "인플레이션"}},
	{"travel_tips", []string{"여행", "ktx", "교통카드", "t-money", "naver maps", "부산", "경주"}},
	{"social_culture", []string{"데이팅 앱", "세대 갈등", "mz세대", "직장", "회식", "문화"}},
	{"korean_lifestyle", []string{"한국", "서울", "외국인", "치안", "캐리어", "혼자 여행"}},
}

// AnalyzeViralSignals 는 게시물 지표와 본문에서 단계형 바이럴 신호를 뽑는다.
func AnalyzeViralSignals(post RedditPost) ViralSignals {
	score := 0
	switch {
	case post.Score > 500:
		score += 3
	case post.Score > 100:
		score += 2
	case post.Score > 50:
		score += 1
	}
	switch {
	case post.NumComments > 100:
		score += 2
	case post.NumComments > 50:
		score += 1
	}

	text := strings.ToLower(post.Title + " " + post.Content)

	triggers := []string{}
	if containsAny(text, "실화", "진짜", "미쳤다", "헐", "대박") {
		triggers = append(triggers, "충격성")
	}
	if containsAny(text, "ㅋㅋ", "웃기", "개웃김", "레전드") {
		triggers = append(triggers, "유머성")
	}
	if containsAny(text, "공감", "저도", "맞아", "같은") {
		triggers = append(triggers, "공감성")
	}

	denom := post.Score
	if denom < 1 {
		denom = 1
	}

	return ViralSignals{
		ViralScore:      score,
		EmotionTriggers: triggers,
		EngagementRatio: float64(post.NumComments) / float64(denom),
		TrendCategory:   categorizeTrending(text),
	}
}

func categorizeTrending(text string) string {
	for _, group := range trendingKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.category
			}
		}
	}
	return "general"
}

// RecommendTones 는 바이럴 신호에 따라 생성용 톤 후보를 추천한다.
// 카테고리 기반과 점수 기반 추천을 합치고 중복만 제거한다.
func RecommendTones(post RedditPost) []string {
	signals := AnalyzeViralSignals(post)

	recommendations := []string{}
	switch signals.TrendCategory {
	case "cost_of_living":
		recommendations = append(recommendations, "냉소 톤", "논리적으로 반박하는", "현실적 톤")
	case "travel_tips":
		recommendations = append(recommendations, "친절한 톤", "정보 제공 톤", "경험 공유 톤")
	case "social_culture":
		recommendations = append(recommendations, "풍자적", "세대 공감 톤", "MZ 반말 톤")
	}

	if signals.ViralScore > 4 {
		recommendations = append(recommendations, "말줄임 밈 톤", "정신나간 톤", "틱톡 트렌드 톤")
	} else if signals.ViralScore > 2 {
		recommendations = append(recommendations, "유머러스하게", "풍자적", "MZ 반말 톤")
	}

	seen := map[string]bool{}
	unique := recommendations[:0]
	for _, tone := range recommendations {
		if !seen[tone] {
			seen[tone] = true
			unique = append(unique, tone)
		}
	}
	return unique
}

// LinguisticFeatures 는 텍스트의 표면적 언어 특징이다.
type LinguisticFeatures struct {
	Length           int      `json:"length"`
	SentenceCount    int      `json:"sentence_count"`
	QuestionMarks    int      `json:"question_marks"`
	ExclamationMarks int      `json:"exclamation_marks"`
	LaughExpressions int      `json:"laugh_expressions"`
	SlangIntensity   int      `json:"slang_intensity"`
	FormalityLevel   string   `json:"formality_level"`
	SpeechPattern    string   `json:"speech_pattern,omitempty"`
	EmotionMapping   []string `json:"emotion_mapping,omitempty"`
}

var (
	sentenceSplit = regexp.MustCompile(`[.!?]`)
	laughPattern  = regexp.MustCompile(`ㅋ+`)
)

var slangWords = []string{"개", "완전", "진짜", "미쳤다", "헐", "대박", "ㄹㅇ", "ㅇㅈ"}

// 커뮤니티 화법별 주/보조 감정 전략.
var speechPatternEmotions = map[string][]string{
	"theqoo_style":  {"empathy", "social_validation"},
	"mlbpark_style": {"superiority", "catharsis"},
	"instiz_style":  {"social_validation", "empathy"},
	"dc_style":      {"catharsis", "superiority"},
	"pann_style":    {"empathy", "social_validation"},
}

// ExtractLinguisticFeatures 는 텍스트의 길이/문장부호/슬랭 특징을 센다.
func ExtractLinguisticFeatures(text, speechPattern string) LinguisticFeatures {
	features := LinguisticFeatures{
		Length:           len([]rune(text)),
		SentenceCount:    len(sentenceSplit.Split(text, -1)),
		QuestionMarks:    strings.Count(text, "?"),
		ExclamationMarks: strings.Count(text, "!"),
		LaughExpressions: len(laughPattern.FindAllString(text, -1)),
		FormalityLevel:   "medium",
	}

	for _, w := range slangWords {
		if strings.Contains(text, w) {
			features.SlangIntensity++
		}
	}

	if containsAny(text, "습니다", "였습니다", "입니다") {
		features.FormalityLevel = "high"
	} else if containsAny(text, "해", "야", "지", "ㅋㅋ") {
		features.FormalityLevel = "low"
	}

	if speechPattern != "" {
		features.SpeechPattern = speechPattern
		features.EmotionMapping = speechPatternEmotions[speechPattern]
	}
	return features
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
