package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taunt-letter/db"
	"taunt-letter/repositories"
	"taunt-letter/scraper"
)

type countingGenerator struct {
	calls    int
	response string
	err      error
}

func (g *countingGenerator) GenerateJSON(_ context.Context, _ string) (string, error) {
	g.calls++
	return g.response, g.err
}

const learningResponse = `{
	"batch_analysis": [{"viral_keywords":["월세"],"meme_potential":"7"}],
	"batch_insights": {
		"common_patterns":["강화어 사용"],
		"optimization_suggestions":["배치 크기 유지"],
		"trend_predictions":["경제 불만 지속"]
	}
}`

func TestBudgetReserve(t *testing.T) {
	b := NewBudget(3.0, 0.005)
	assert.Equal(t, 600, b.MaxCalls())

	b = NewBudget(0.02, 0.005)
	for i := 0; i < 4; i++ {
		assert.True(t, b.Reserve(), "call %d", i)
	}
	assert.False(t, b.Reserve())
	assert.Equal(t, 4, b.Used())
	assert.InDelta(t, 0.02, b.CostUsed(), 1e-9)
	assert.InDelta(t, 0.0, b.Remaining(), 1e-9)
}

func TestBudgetZeroCost(t *testing.T) {
	b := NewBudget(1.0, 0)
	assert.Equal(t, 0, b.MaxCalls())
	assert.False(t, b.Reserve())
}

func TestLearningRunStopsAtBudget(t *testing.T) {
	gen := &countingGenerator{response: learningResponse}
	// 예산상 호출 2회, 배치 3개 분량의 데이터.
	p := NewLearningPipeline(gen, 0.01, 0.005, 2)

	items := make([]LearningItem, 6)
	for i := range items {
		items[i] = LearningItem{Source: "test", Content: fmt.Sprintf("내용 %d", i)}
	}

	summary := p.Run(context.Background(), items)

	// 정확히 최대 호출 수만큼만 호출하고 나머지는 버린다.
	assert.Equal(t, 2, gen.calls)
	assert.Equal(t, "success", summary.Status)
	assert.Equal(t, 4, summary.DataProcessed)
	assert.Equal(t, 2, summary.RequestsUsed)
	assert.InDelta(t, 0.01, summary.TotalCost, 1e-9)
	assert.InDelta(t, 2.0, summary.EfficiencyScore, 1e-9)
	// 배치마다 인사이트가 누적된다.
	assert.Len(t, summary.PatternAnalysis.CommonPatterns, 2)
}

func TestLearningRunProcessesAll(t *testing.T) {
	gen := &countingGenerator{response: learningResponse}
	p := NewLearningPipeline(gen, 3.0, 0.005, 20)

	items := DefaultLearningItems()
	summary := p.Run(context.Background(), items)

	assert.Equal(t, 1, gen.calls) // 10건이면 배치 하나
	assert.Equal(t, len(items), summary.DataProcessed)
	assert.Equal(t, "success", summary.Status)
}

func TestLearningRunSkipsBadBatch(t *testing.T) {
	gen := &countingGenerator{response: "JSON 아님"}
	p := NewLearningPipeline(gen, 3.0, 0.005, 20)

	// 파싱에 실패한 배치는 버리고 실행 자체는 성공으로 끝난다.
	summary := p.Run(context.Background(), []LearningItem{{Content: "x"}})
	assert.Equal(t, "success", summary.Status)
	assert.Equal(t, 0, summary.DataProcessed)
	assert.Equal(t, 1, summary.RequestsUsed)
}

func TestDefaultLearningItems(t *testing.T) {
	items := DefaultLearningItems()
	// Reddit 표본 2건 + 댓글 표본 8건
	assert.Len(t, items, 10)
	assert.Equal(t, "reddit_korea", items[0].Source)
}

func TestExportWritesLearningFile(t *testing.T) {
	gen := &countingGenerator{response: learningResponse}
	p := NewLearningPipeline(gen, 3.0, 0.005, 20)
	items := DefaultLearningItems()
	summary := p.Run(context.Background(), items)

	path := filepath.Join(t.TempDir(), "learning.json")
	require.NoError(t, Export(path, items, summary))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "metadata")
	assert.Contains(t, payload, "processed_data")
	assert.Contains(t, payload, "learning_insights")

	var meta struct {
		DataProcessed int `json:"data_processed"`
	}
	require.NoError(t, json.Unmarshal(payload["metadata"], &meta))
	assert.Equal(t, len(items), meta.DataProcessed)
}

func TestCollectionPipelineSavesTrainingData(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	repo := repositories.NewTrainingDataRepository(conn)
	s := scraper.New("http://127.0.0.1:1", "test-agent", 50) // Reddit 실패 → 시뮬레이션
	p := NewCollectionPipeline(s, nil, repo, 4.0, 0.01)

	summary := p.Run(context.Background())

	assert.Equal(t, 105, summary.ScrapedItems)
	assert.Equal(t, 105, summary.AnalyzedItems)
	assert.Equal(t, 105, summary.SavedItems)
	assert.Zero(t, summary.TotalCostUsed)
	assert.InDelta(t, 4.0, summary.RemainingBudget, 1e-9)
	assert.NotEmpty(t, summary.DataSources)
	assert.Greater(t, summary.AverageEffectiveness, 5.9)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 105, n)
}

func TestCollectionPipelineWithoutStore(t *testing.T) {
	s := scraper.New("http://127.0.0.1:1", "test-agent", 50)
	p := NewCollectionPipeline(s, nil, nil, 4.0, 0.01)

	summary := p.Run(context.Background())
	assert.Equal(t, 105, summary.AnalyzedItems)
	assert.Zero(t, summary.SavedItems)
}

func TestCollectionPipelineSavesNewsArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
	<title>테스트 뉴스</title>
	<item>
		<title>전세 사기 또 적발</title>
		<link>http://example.com/a</link>
		<description>진짜 피해자만 수백명이라는데 완전 충격이다</description>
	</item>
</channel></rss>`))
	}))
	defer srv.Close()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	repo := repositories.NewTrainingDataRepository(conn)
	s := scraper.New("http://127.0.0.1:1", "test-agent", 50)
	feeds := []scraper.NewsFeed{{Name: "테스트", RSSURL: srv.URL}}
	p := NewCollectionPipeline(s, feeds, repo, 4.0, 0.01)

	summary := p.Run(context.Background())

	// 커뮤니티 105건 + 뉴스 기사 1건
	assert.Equal(t, 106, summary.ScrapedItems)
	assert.Equal(t, 106, summary.AnalyzedItems)
	assert.Equal(t, 106, summary.SavedItems)
	assert.Contains(t, summary.DataSources, "news_테스트")

	var n int
	require.NoError(t, conn.QueryRow(
		`SELECT COUNT(*) FROM training_datasets WHERE content_type = 'news_article_data'`,
	).Scan(&n))
	assert.Equal(t, 1, n)
}
