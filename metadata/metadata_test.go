package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmotionKnownTone(t *testing.T) {
	got := AnalyzeEmotion("유머러스하게", 500)

	assert.Equal(t, "공감대 형성", got.PrimaryEmotion)
	assert.Equal(t, "높음", got.IntensityLevel)
	assert.Equal(t, []string{"과장법", "상황 비유", "일상 연결"}, got.RecommendedApproaches)
	assert.Equal(t, []string{"empathy", "social_validation"}, got.EmotionStrategy)
}

func TestAnalyzeEmotionUnknownTone(t *testing.T) {
	got := AnalyzeEmotion("없는 톤", 100)

	assert.Equal(t, "공감대 형성", got.PrimaryEmotion) // 폴백 프로필의 empathy
	assert.Equal(t, []string{"과장법", "아이러니", "비유"}, got.RecommendedApproaches)
	assert.Equal(t, "독자의 공감과 재미 유발", got.PsychologicalTarget)
}

func TestIntensityLevelBands(t *testing.T) {
	cases := []struct {
		length int
		want   string
	}{
		{0, "보통"},
		{299, "보통"},
		{300, "높음"},
		{599, "높음"},
		{600, "매우 높음"},
		{999, "매우 높음"},
		{1000, "극도로 높음"},
		{1999, "극도로 높음"},
		{2000, "보통"}, // 범위 밖은 기본값
		{-5, "보통"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, intensityLevel(tc.length), "length=%d", tc.length)
	}
}

func TestAnalyzeQualityArithmetic(t *testing.T) {
	// 풍자적: base 90, 전략 2개, length 500 → bonus 10
	got := AnalyzeQuality("풍자적", 500)

	assert.Equal(t, 100, got.ReadabilityScore) // 90+10 캡 100
	assert.Equal(t, 100, got.OriginalityScore) // 90+10 캡 100
	assert.Equal(t, 4.5, got.HumorRating)
	assert.Equal(t, 50, got.EmotionTargetingScore)
	assert.Equal(t, "High", got.PredictedVirality)
}

func TestAnalyzeQualityLengthBonusCap(t *testing.T) {
	// 애교 톤: base 70. length 5000 → bonus 캡 20
	got := AnalyzeQuality("애교 톤", 5000)

	assert.Equal(t, 90, got.ReadabilityScore)
	assert.Equal(t, 3.5, got.HumorRating)
}

func TestAnalyzeQualityHumorHalfEvenRounding(t *testing.T) {
	// base 85 → 4.25, 짝수 반올림이라 4.3이 아니라 4.2
	assert.Equal(t, 4.2, AnalyzeQuality("비꼬는 듯이", 500).HumorRating)
	assert.Equal(t, 4.2, AnalyzeQuality("정신나간 톤", 500).HumorRating)
}

func TestAnalyzeQualityUnknownToneDefaults(t *testing.T) {
	got := AnalyzeQuality("없는 톤", 150)

	// base 80, bonus 2, 폴백 프로필 전략 1개
	assert.Equal(t, 82, got.ReadabilityScore)
	assert.Equal(t, 85, got.OriginalityScore)
	assert.Equal(t, 4.0, got.HumorRating)
	assert.Equal(t, 25, got.EmotionTargetingScore)
	assert.Equal(t, "Medium", got.PredictedVirality)
}

func TestAnalyzeQualityDeterministic(t *testing.T) {
	a := AnalyzeQuality("냉소 톤", 700)
	b := AnalyzeQuality("냉소 톤", 700)
	assert.Equal(t, a, b)
}
