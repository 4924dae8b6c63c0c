// Package metadata 는 생성 결과에 붙는 감정/품질 메타데이터를 계산한다.
// 전부 룩업 테이블과 산술로만 결정되며 생성된 텍스트 내용과는 무관하다.
package metadata

import (
	"math"

	"taunt-letter/prompt"
)

// EmotionAnalysis 는 톤과 길이에서 유도한 감정선 분석이다.
type EmotionAnalysis struct {
	PrimaryEmotion        string   `json:"primary_emotion"`
	IntensityLevel        string   `json:"intensity_level"`
	RecommendedApproaches []string `json:"recommended_approaches"`
	PsychologicalTarget   string   `json:"psychological_target"`
	EmotionStrategy       []string `json:"emotion_strategy"`
}

// QualityAnalysis 는 톤 복잡도 점수 기반 품질 예측치다.
type QualityAnalysis struct {
	ReadabilityScore      int     `json:"readability_score"`
	OriginalityScore      int     `json:"originality_score"`
	HumorRating           float64 `json:"humor_rating"`
	EmotionTargetingScore int     `json:"emotion_targeting_score"`
	PredictedVirality     string  `json:"predicted_virality"`
}

var primaryEmotions = map[prompt.EmotionStrategy]string{
	prompt.Superiority:      "우월감 자극",
	prompt.Empathy:          "공감대 형성",
	prompt.Catharsis:        "카타르시스",
	prompt.SocialValidation: "사회적 승인",
}

// toneTechniques 에는 프롬프트 테이블에 없는 톤도 몇 개 들어 있다.
// 과거 실험에서 쓰던 라벨이 메타데이터 쪽에만 남은 것으로, 지우지 않는다.
var toneTechniques = map[string][]string{
	"유머러스하게":      {"과장법", "상황 비유", "일상 연결"},
	"풍자적":         {"은유법", "아이러니", "사회 비판"},
	"비꼬는 듯이":      {"반어법", "암시", "간접 표현"},
	"논리적으로 반박하는":  {"팩트 체크", "논리적 구조", "근거 제시"},
	"MZ 반말 톤":     {"슬랭 활용", "줄임말", "세대 공감"},
	"애교 톤":        {"의인법", "귀여운 표현", "부드러운 비판"},
	"헬창 톤":        {"운동 비유", "에너지 표현", "동기부여 요소"},
	"감성 에세이 톤":    {"감정 이입", "시적 표현", "내면 묘사"},
	"해시태그 스타일":    {"키워드 나열", "SNS 문법", "트렌드 반영"},
	"에겐톤":         {"고급 어휘", "품격 있는 비판", "우아한 표현"},
	"소심한 공격 톤":    {"Aposiopesis 기법", "말줄임 조롱", "위선적 수습"},
	"말줄임 밈 톤":     {"Aposiopesis 기법", "밈 문화 융합", "바이럴 최적화"},
	"인지 부조화 유발 톤": {"논리적 모순 노출", "인지 부조화 유발", "신념 체계 공격"},
	"감정 조작 역공 톤":  {"감정 조작 탐지", "심리적 방어", "주도권 역전"},
	"논리적 해체 톤":    {"체계적 분석", "단계별 논박", "허점 드러내기"},
	"심리적 우위 점령 톤": {"약점 파악", "심리적 압박", "우위 점령"},
	"인지적 우위 과시 톤": {"지적 격차 부각", "사고 깊이 과시", "인지 능력 우월감"},
}

var toneComplexityScores = map[string]int{
	"유머러스하게":     80,
	"풍자적":        90,
	"비꼬는 듯이":     85,
	"논리적으로 반박하는": 95,
	"MZ 반말 톤":    75,
	"애교 톤":       70,
	"헬창 톤":       75,
	"감성 에세이 톤":   88,
	"해시태그 스타일":   72,
	"에겐톤":        98,
	"정신나간 톤":     85,
	"테토 톤":       82,
}

const defaultComplexity = 80

func intensityLevel(length int) string {
	// 네 구간 밖의 길이는 음수를 포함해 전부 기본값이다.
	if length < 0 || length >= 2000 {
		return "보통"
	}
	switch {
	case length < 300:
		return "보통"
	case length < 600:
		return "높음"
	case length < 1000:
		return "매우 높음"
	default:
		return "극도로 높음"
	}
}

// AnalyzeEmotion 은 톤 설정과 길이만으로 감정선 분석을 만든다.
func AnalyzeEmotion(tone string, length int) EmotionAnalysis {
	tc := prompt.ToneFor(tone)

	primary := "유머러스"
	if len(tc.EmotionStrategies) > 0 {
		if label, ok := primaryEmotions[tc.EmotionStrategies[0]]; ok {
			primary = label
		}
	}

	approaches, ok := toneTechniques[tone]
	if !ok {
		approaches = []string{"과장법", "아이러니", "비유"}
	}

	strategies := make([]string, len(tc.EmotionStrategies))
	for i, s := range tc.EmotionStrategies {
		strategies[i] = string(s)
	}

	return EmotionAnalysis{
		PrimaryEmotion:        primary,
		IntensityLevel:        intensityLevel(length),
		RecommendedApproaches: approaches,
		PsychologicalTarget:   tc.PsychologicalHook,
		EmotionStrategy:       strategies,
	}
}

// AnalyzeQuality 는 톤 복잡도와 길이 보너스로 품질 예측치를 만든다.
func AnalyzeQuality(tone string, length int) QualityAnalysis {
	base, ok := toneComplexityScores[tone]
	if !ok {
		base = defaultComplexity
	}
	strategyCount := len(prompt.ToneFor(tone).EmotionStrategies)

	lengthBonus := length / 100 * 2
	if lengthBonus > 20 {
		lengthBonus = 20
	}

	readability := base + lengthBonus
	if readability > 100 {
		readability = 100
	}
	originality := base + strategyCount*5
	if originality > 100 {
		originality = 100
	}
	humor := float64(base) / 20
	if humor > 5.0 {
		humor = 5.0
	}
	// 소수 첫째 자리 반올림은 짝수 쪽으로 붙인다 (4.25 → 4.2).
	humor = math.RoundToEven(humor*10) / 10

	virality := "Medium"
	if strategyCount >= 2 {
		virality = "High"
	}

	return QualityAnalysis{
		ReadabilityScore:      readability,
		OriginalityScore:      originality,
		HumorRating:           humor,
		EmotionTargetingScore: strategyCount * 25,
		PredictedVirality:     virality,
	}
}
