package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taunt-letter/db"
	"taunt-letter/models"
)

func TestQAHistoryInsert(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	repo := NewQAHistoryRepository(conn)
	ctx := context.Background()

	id, err := repo.Insert(ctx, models.QARecord{
		SessionID:         "sess-1",
		QuestionText:      "회사 선배 / 지각",
		QuestionType:      "taunt_generation",
		UserInput:         map[string]any{"tone": "유머러스하게"},
		GeneratedResponse: "생성된 텍스트",
		ToneUsed:          "유머러스하게",
		TargetSubject:     "회사 선배",
		Keywords:          []string{"지각"},
		ResponseLength:    7,
		SafetyAnalysis:    map[string]any{"is_safe": true},
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	n, err := repo.CountBySession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTrainingDataApprovalFlow(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	repo := NewTrainingDataRepository(conn)
	ctx := context.Background()

	lowID, err := repo.Insert(ctx, models.TrainingDataset{
		DatasetName:  "저품질",
		ContentType:  "reddit_community_data",
		QualityScore: 5.0,
	})
	require.NoError(t, err)
	highID, err := repo.Insert(ctx, models.TrainingDataset{
		DatasetName:   "고품질",
		ContentType:   "reddit_community_data",
		ProcessedData: map[string]any{"trend_category": "cost_of_living"},
		QualityScore:  8.5,
	})
	require.NoError(t, err)

	// 승인 전에는 아무것도 안 나온다.
	samples, err := repo.ApprovedForLearning(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, samples)

	require.NoError(t, repo.Approve(ctx, lowID))
	require.NoError(t, repo.Approve(ctx, highID))

	// 승인돼도 품질 7.0 미만은 제외.
	samples, err = repo.ApprovedForLearning(ctx, 10)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "고품질", samples[0].DatasetName)
	assert.Contains(t, samples[0].ProcessedData, "cost_of_living")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDarknessLevelsOrderedByNumber(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	repo := NewDarknessLevelRepository(conn)
	ctx := context.Background()

	for _, lvl := range []models.DarknessLevel{
		{LevelName: "날카로운 지적", LevelNumber: 3, IntensityScore: 6, SafetyLevel: 3},
		{LevelName: "순수 유머", LevelNumber: 1, IntensityScore: 1, SafetyLevel: 5},
		{LevelName: "가벼운 놀림", LevelNumber: 2, IntensityScore: 3, SafetyLevel: 4},
	} {
		_, err := repo.Insert(ctx, lvl)
		require.NoError(t, err)
	}

	levels, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, levels, 3)
	assert.Equal(t, "순수 유머", levels[0].LevelName)
	assert.Equal(t, "가벼운 놀림", levels[1].LevelName)
	assert.Equal(t, "날카로운 지적", levels[2].LevelName)
}

func TestDevelopmentQueueOrdering(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	repo := NewDevelopmentQueueRepository(conn)
	ctx := context.Background()

	_, err = repo.Insert(ctx, models.DevelopmentRequest{FeatureName: "보통 우선순위", PriorityLevel: 5})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, models.DevelopmentRequest{FeatureName: "긴급", PriorityLevel: 9})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, models.DevelopmentRequest{FeatureName: "기본값", PriorityLevel: 0}) // 5로 저장
	require.NoError(t, err)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "긴급", pending[0].FeatureName)
	assert.Equal(t, 5, pending[1].PriorityLevel)
	assert.Equal(t, 5, pending[2].PriorityLevel) // 우선순위 미지정은 5로 저장
}

func TestTechniqueDetectionStatistics(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer conn.Close()

	repo := NewTechniqueDetectionRepository(conn)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(ctx, models.TechniqueDetection{
			TechniqueName:       "aposiopesis",
			TechniqueType:       "rhetorical",
			DetectionConfidence: 0.9,
			TextSample:          "하려다가 말았...",
			ToneUsed:            "소심한 공격 톤",
		})
		require.NoError(t, err)
	}
	_, err = repo.Insert(ctx, models.TechniqueDetection{
		TechniqueName:       "irony",
		DetectionConfidence: 0.5,
	})
	require.NoError(t, err)

	stats, err := repo.UsageStatistics(ctx, "")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "aposiopesis", stats[0].TechniqueName)
	assert.Equal(t, 3, stats[0].UsageCount)
	assert.InDelta(t, 0.9, stats[0].AvgConfidence, 1e-9)

	only, err := repo.UsageStatistics(ctx, "irony")
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, 1, only[0].UsageCount)
}
