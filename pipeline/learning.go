package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"taunt-letter/analyzer"
	"taunt-letter/generation"
	"taunt-letter/internal/logger"
)

// LearningItem 은 학습 루프에 들어가는 최소 단위다.
type LearningItem struct {
	Source  string `json:"source"`
	Content string `json:"content"`
}

// BatchAnalysis 는 배치 내 텍스트 하나에 대한 모델 분석이다.
type BatchAnalysis struct {
	ViralKeywords        []string `json:"viral_keywords"`
	EmotionalTriggers    []string `json:"emotional_triggers"`
	TonePatterns         []string `json:"tone_patterns"`
	PsychologicalHooks   []string `json:"psychological_hooks"`
	MemePotential        string   `json:"meme_potential"`
	PlatformOptimization string   `json:"platform_optimization"`
}

// BatchInsights 는 배치 단위의 공통 패턴 요약이다.
type BatchInsights struct {
	CommonPatterns          []string `json:"common_patterns"`
	OptimizationSuggestions []string `json:"optimization_suggestions"`
	TrendPredictions        []string `json:"trend_predictions"`
}

type batchLearningResult struct {
	BatchAnalysis []BatchAnalysis `json:"batch_analysis"`
	BatchInsights BatchInsights   `json:"batch_insights"`
}

// LearningSummary 는 학습 실행 한 번의 결과 요약이다.
type LearningSummary struct {
	Status          string          `json:"status"`
	DataProcessed   int             `json:"data_processed"`
	RequestsUsed    int             `json:"requests_used"`
	TotalCost       float64         `json:"total_cost"`
	RemainingBudget float64         `json:"remaining_budget"`
	EfficiencyScore float64         `json:"efficiency_score"`
	PatternAnalysis BatchInsights   `json:"pattern_analysis"`
	BatchAnalyses   []BatchAnalysis `json:"batch_analyses,omitempty"`
}

// LearningPipeline 은 수집/시뮬레이션 데이터를 배치로 묶어 모델에 보내고
// 패턴 인사이트를 누적한다.
type LearningPipeline struct {
	gen       generation.TextGenerator
	budget    *Budget
	batchSize int
}

func NewLearningPipeline(gen generation.TextGenerator, budgetUSD, costPerCall float64, batchSize int) *LearningPipeline {
	if batchSize <= 0 {
		batchSize = 20
	}
	p := &LearningPipeline{
		gen:       gen,
		budget:    NewBudget(budgetUSD, costPerCall),
		batchSize: batchSize,
	}
	logger.InfoWithFields("AI 학습 파이프라인 준비", logger.Fields{
		"budget_usd": budgetUSD,
		"max_calls":  p.budget.MaxCalls(),
		"batch_size": batchSize,
	})
	return p
}

// DefaultLearningItems 는 외부 입력이 없을 때 쓰는 기본 학습 데이터다.
// Reddit 게시물과 뉴스/유튜브 댓글 표본을 분석기로 태깅한 뒤 합친다.
func DefaultLearningItems() []LearningItem {
	redditSeed := []analyzer.RedditPost{
		{
			Source:      "reddit_korea",
			Title:       "2025년 서울 월세 실화인가요?",
			Content:     "집 알아보는데 정말 숨이 턱 막히네요.",
			Score:       850,
			NumComments: 452,
			Subreddit:   "korea",
		},
		{
			Source:      "reddit_korea",
			Title:       "한국 직장 내 세대 갈등",
			Content:     "MZ세대랑 기성세대랑 일하는 방식 차이",
			Score:       510,
			NumComments: 288,
			Subreddit:   "korea",
		},
	}

	items := []LearningItem{}
	for _, s := range analyzer.NewRedditProcessor().Process(redditSeed) {
		items = append(items, LearningItem{Source: s.RawData.Source, Content: s.RawData.Content})
	}
	for _, s := range analyzer.NewCommentProcessor().Process(analyzer.SimulatedComments) {
		items = append(items, LearningItem{Source: s.RawData.Source, Content: s.RawData.Content})
	}
	return items
}

// Run 은 항목들을 배치로 나눠 예산이 허락하는 만큼 학습 호출을 돌린다.
// 예산 소진은 실패가 아니라 부분 완료다. 호출이나 파싱에 실패한 배치는
// 건너뛰고 다음 배치를 계속 처리한다.
func (p *LearningPipeline) Run(ctx context.Context, items []LearningItem) LearningSummary {
	accumulated := BatchInsights{}
	var analyses []BatchAnalysis
	processed := 0

	for start := 0; start < len(items); start += p.batchSize {
		if !p.budget.Reserve() {
			logger.WarnWithFields("예산 한도 도달, 학습 중단", logger.Fields{
				"requests_used": p.budget.Used(),
				"cost_used":     p.budget.CostUsed(),
			})
			break
		}

		end := start + p.batchSize
		if end > len(items) {
			end = len(items)
		}
		batch := items[start:end]

		raw, err := p.gen.GenerateJSON(ctx, batchLearningPrompt(batch))
		if err != nil {
			logger.ErrorWithFields("학습 배치 호출 실패, 건너뜀", logger.Fields{"error": err.Error()})
			continue
		}

		var result batchLearningResult
		if err := json.Unmarshal([]byte(raw), &result); err != nil {
			logger.ErrorWithFields("학습 결과 파싱 실패, 건너뜀", logger.Fields{"error": err.Error()})
			continue
		}

		accumulated.CommonPatterns = append(accumulated.CommonPatterns, result.BatchInsights.CommonPatterns...)
		accumulated.OptimizationSuggestions = append(accumulated.OptimizationSuggestions, result.BatchInsights.OptimizationSuggestions...)
		accumulated.TrendPredictions = append(accumulated.TrendPredictions, result.BatchInsights.TrendPredictions...)
		analyses = append(analyses, result.BatchAnalysis...)
		processed += len(batch)

		logger.InfoWithFields("학습 배치 완료", logger.Fields{
			"batch_size":    len(batch),
			"requests_used": p.budget.Used(),
			"cost_used":     p.budget.CostUsed(),
		})
	}

	return p.summary(processed, accumulated, analyses)
}

func (p *LearningPipeline) summary(processed int, insights BatchInsights, analyses []BatchAnalysis) LearningSummary {
	requests := p.budget.Used()
	efficiency := float64(processed)
	if requests > 0 {
		efficiency = float64(processed) / float64(requests)
	}
	return LearningSummary{
		Status:          "success",
		DataProcessed:   processed,
		RequestsUsed:    requests,
		TotalCost:       p.budget.CostUsed(),
		RemainingBudget: p.budget.Remaining(),
		EfficiencyScore: efficiency,
		PatternAnalysis: insights,
		BatchAnalyses:   analyses,
	}
}

func batchLearningPrompt(batch []LearningItem) string {
	texts := make([]string, len(batch))
	for i, item := range batch {
		source := item.Source
		if source == "" {
			source = "unknown"
		}
		texts[i] = fmt.Sprintf("소스: %s\n내용: %s", source, item.Content)
	}
	combined := strings.Join(texts, "\n\n---\n\n")

	return fmt.Sprintf(`
다음 한국 온라인 커뮤니티 데이터를 분석하여 조롱/유머 생성 최적화를 위한 패턴을 추출해주세요:

%s

각 텍스트에 대해 다음을 JSON 배열 형식으로 분석해주세요:
{
  "batch_analysis": [
    {
      "viral_keywords": ["바이럴 키워드1", "키워드2"],
      "emotional_triggers": ["감정유발요소1", "요소2"],
      "tone_patterns": ["톤패턴1", "패턴2"],
      "psychological_hooks": ["심리적훅1", "훅2"],
      "meme_potential": "점수(1-10)",
      "platform_optimization": "플랫폼최적화방안"
    }
  ],
  "batch_insights": {
    "common_patterns": ["공통패턴1", "패턴2"],
    "optimization_suggestions": ["최적화제안1", "제안2"],
    "trend_predictions": ["트렌드예측1", "예측2"]
  }
}
`, combined)
}
