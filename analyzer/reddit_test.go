package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedditProcessorTagsPost(t *testing.T) {
	p := NewRedditProcessor()

	samples := p.Process([]RedditPost{{
		Source:      "reddit",
		Title:       "월세 인상",
		Content:     "진짜 월세 스트레스 때문에 숨이 막히다",
		Score:       900,
		NumComments: 150,
	}})
	require.Len(t, samples, 1)

	s := samples[0]
	assert.Equal(t, "cost_of_living", s.TrendCategory)
	assert.Contains(t, s.EmotionTriggers, "frustration")
	assert.Contains(t, s.RecommendedTones, "공감 톤")
	assert.Contains(t, s.RecommendedTones, "MZ 반말 톤")
	// (900*0.7 + 150*0.3) / 1000
	assert.InDelta(t, 0.675, s.ViralPotential, 1e-9)
}

func TestRedditCategoryOrderFirstWins(t *testing.T) {
	p := NewRedditProcessor()
	// "경제"(cost_of_living)와 "정부"(politics)가 모두 있으면 앞 카테고리.
	assert.Equal(t, "cost_of_living", p.categorizeTrend("정부 경제 정책"))
	assert.Equal(t, "general", p.categorizeTrend("아무 관련 없음"))
}

func TestRedditViralPotentialCap(t *testing.T) {
	p := NewRedditProcessor()
	s := p.Process([]RedditPost{{Score: 100000, NumComments: 50000}})
	assert.Equal(t, 10.0, s[0].ViralPotential)
}

func TestRedditInsights(t *testing.T) {
	p := NewRedditProcessor()
	samples := p.Process([]RedditPost{
		{Content: "월세가 진짜 힘들다", Score: 100},
		{Content: "집값 얘기", Score: 200},
		{Content: "드라마 정주행", Score: 50},
	})

	insights := p.Insights(samples)

	assert.Equal(t, 3, insights.TotalSamples)
	assert.Equal(t, 2, insights.TrendDistribution["cost_of_living"])
	assert.Equal(t, 1, insights.TrendDistribution["entertainment"])
	require.NotEmpty(t, insights.TopEmotionTriggers)
	assert.Equal(t, "frustration", insights.TopEmotionTriggers[0].Label)
	assert.Greater(t, insights.QualityDistribution.Average, 0.0)
}

func TestRedditInsightsEmpty(t *testing.T) {
	p := NewRedditProcessor()
	insights := p.Insights(nil)
	assert.Equal(t, 0, insights.TotalSamples)
	assert.Equal(t, 0.0, insights.QualityDistribution.Average)
}
