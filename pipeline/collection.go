package pipeline

import (
	"context"
	"time"

	"taunt-letter/analyzer"
	"taunt-letter/internal/logger"
	"taunt-letter/models"
	"taunt-letter/repositories"
	"taunt-letter/scraper"
)

// CollectionSummary 는 수집 파이프라인 실행 한 번의 요약이다.
type CollectionSummary struct {
	ScrapedItems         int      `json:"scraped_items"`
	AnalyzedItems        int      `json:"analyzed_items"`
	SavedItems           int      `json:"saved_items"`
	TotalCostUsed        float64  `json:"total_cost_used"`
	RemainingBudget      float64  `json:"remaining_budget"`
	DataSources          []string `json:"data_sources"`
	AverageEffectiveness float64  `json:"average_effectiveness"`
}

// CollectionPipeline 은 수집 → 분석 → 학습 데이터 저장을 한 번에 돌린다.
// 모델 분석 없이 규칙 기반 분석만 쓰므로 예산은 소비하지 않지만,
// 요약에는 남은 예산을 같이 보여준다.
type CollectionPipeline struct {
	scraper *scraper.Scraper
	feeds   []scraper.NewsFeed
	budget  *Budget
	repo    *repositories.TrainingDataRepository
}

func NewCollectionPipeline(s *scraper.Scraper, feeds []scraper.NewsFeed, repo *repositories.TrainingDataRepository, budgetUSD, costPerCall float64) *CollectionPipeline {
	return &CollectionPipeline{
		scraper: s,
		feeds:   feeds,
		budget:  NewBudget(budgetUSD, costPerCall),
		repo:    repo,
	}
}

// Run 은 전체 수집 파이프라인을 실행한다. 저장소가 없으면 저장 단계만 건너뛴다.
func (p *CollectionPipeline) Run(ctx context.Context) CollectionSummary {
	logger.Log.Info("커뮤니티 데이터 수집 파이프라인 시작")

	posts := p.scraper.Scrape(ctx)
	analyzed := p.scraper.SimulateAnalysis(posts)

	saved := 0
	sources := map[string]bool{}
	var effectivenessSum float64

	for _, item := range analyzed {
		sources[item.OriginalData.Source] = true
		effectivenessSum += item.Analysis.EffectivenessScore

		if p.repo == nil {
			continue
		}
		_, err := p.repo.Insert(ctx, models.TrainingDataset{
			DatasetName:   "스크래핑_데이터_" + item.OriginalData.Source,
			ContentType:   "scraped_community_data",
			RawData:       item.OriginalData,
			ProcessedData: item.Analysis,
			Metadata: map[string]any{
				"scraping_date": time.Now().Format(time.RFC3339),
				"analysis_cost": item.CostUsed,
				"data_source":   item.OriginalData.Source,
				"viral_score":   item.OriginalData.Score,
			},
			QualityScore: item.Analysis.EffectivenessScore,
		})
		if err != nil {
			logger.ErrorWithFields("학습 데이터 저장 실패", logger.Fields{"error": err.Error()})
			continue
		}
		saved++
	}

	// 뉴스 피드 기사는 댓글 처리기로 태깅해 같은 저장소에 쌓는다.
	articles := scraper.FetchNewsArticles(ctx, p.feeds)
	newsSamples := analyzer.NewCommentProcessor().Process(newsComments(articles))

	for _, sample := range newsSamples {
		sources[sample.RawData.Source] = true

		if p.repo == nil {
			continue
		}
		_, err := p.repo.Insert(ctx, models.TrainingDataset{
			DatasetName:   "뉴스_데이터_" + sample.RawData.Source,
			ContentType:   "news_article_data",
			RawData:       sample.RawData,
			ProcessedData: sample,
			Metadata: map[string]any{
				"scraping_date": time.Now().Format(time.RFC3339),
				"data_source":   sample.RawData.Source,
				"platform_type": sample.PlatformType,
			},
			QualityScore: sample.ViralPotential * 10,
		})
		if err != nil {
			logger.ErrorWithFields("뉴스 학습 데이터 저장 실패", logger.Fields{"error": err.Error()})
			continue
		}
		saved++
	}

	sourceList := make([]string, 0, len(sources))
	for s := range sources {
		sourceList = append(sourceList, s)
	}

	avg := 0.0
	if len(analyzed) > 0 {
		avg = effectivenessSum / float64(len(analyzed))
	}

	summary := CollectionSummary{
		ScrapedItems:         len(posts) + len(articles),
		AnalyzedItems:        len(analyzed) + len(newsSamples),
		SavedItems:           saved,
		TotalCostUsed:        p.budget.CostUsed(),
		RemainingBudget:      p.budget.Remaining(),
		DataSources:          sourceList,
		AverageEffectiveness: avg,
	}

	logger.InfoWithFields("수집 파이프라인 완료", logger.Fields{
		"scraped":  summary.ScrapedItems,
		"saved":    summary.SavedItems,
		"cost_usd": summary.TotalCostUsed,
	})
	return summary
}

// 수집한 기사를 댓글 처리기가 받는 형태로 바꾼다.
func newsComments(articles []scraper.NewsArticle) []analyzer.Comment {
	comments := make([]analyzer.Comment, len(articles))
	for i, a := range articles {
		comments[i] = analyzer.Comment{
			Source:   "news_" + a.Feed,
			Title:    a.Title,
			Content:  a.Content,
			DataType: "news_article",
		}
	}
	return comments
}
