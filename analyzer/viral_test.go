package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeViralSignalsTiers(t *testing.T) {
	cases := []struct {
		name      string
		score     int
		comments  int
		wantScore int
	}{
		{"바닥", 10, 10, 0},
		{"점수 1티어", 60, 10, 1},
		{"점수 2티어", 150, 10, 2},
		{"점수 3티어", 600, 10, 3},
		{"댓글 1티어", 10, 60, 1},
		{"댓글 2티어", 10, 150, 2},
		{"최대", 600, 150, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AnalyzeViralSignals(RedditPost{Score: tc.score, NumComments: tc.comments})
			assert.Equal(t, tc.wantScore, got.ViralScore)
		})
	}
}

func TestAnalyzeViralSignalsTriggersAndRatio(t *testing.T) {
	got := AnalyzeViralSignals(RedditPost{
		Title:       "실화냐 ㅋㅋ",
		Content:     "공감 가는 얘기",
		Score:       0,
		NumComments: 30,
	})

	assert.ElementsMatch(t, []string{"충격성", "유머성", "공감성"}, got.EmotionTriggers)
	assert.Equal(t, 30.0, got.EngagementRatio) // 분모는 최소 1
}

func TestRecommendTonesDeduplicates(t *testing.T) {
	// social_culture 매칭 + 바이럴 2점대 → "풍자적"이 양쪽에서 나와도 한 번만.
	tones := RecommendTones(RedditPost{
		Title:       "직장 회식 문화",
		Content:     "직장 얘기",
		Score:       150,
		NumComments: 60,
	})

	count := 0
	for _, tone := range tones {
		if tone == "풍자적" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Contains(t, tones, "MZ 반말 톤")
}

func TestRecommendTonesHighViral(t *testing.T) {
	tones := RecommendTones(RedditPost{Score: 600, NumComments: 150})
	assert.Contains(t, tones, "말줄임 밈 톤")
	assert.NotContains(t, tones, "유머러스하게")
}

func TestExtractLinguisticFeatures(t *testing.T) {
	got := ExtractLinguisticFeatures("진짜 대박! 이게 맞나? ㅋㅋㅋ 완전 좋습니다.", "theqoo_style")

	assert.Equal(t, 1, got.QuestionMarks)
	assert.Equal(t, 1, got.ExclamationMarks)
	assert.Equal(t, 1, got.LaughExpressions)
	assert.GreaterOrEqual(t, got.SlangIntensity, 3) // 진짜, 대박, 완전
	assert.Equal(t, "high", got.FormalityLevel)     // "습니다" 우선
	assert.Equal(t, "theqoo_style", got.SpeechPattern)
	assert.Equal(t, []string{"empathy", "social_validation"}, got.EmotionMapping)
}

func TestExtractLinguisticFeaturesInformal(t *testing.T) {
	got := ExtractLinguisticFeatures("그냥 해 ㅋㅋ", "")

	assert.Equal(t, "low", got.FormalityLevel)
	assert.Empty(t, got.SpeechPattern)
	assert.Nil(t, got.EmotionMapping)
}
