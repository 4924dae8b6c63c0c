package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"taunt-letter/analytics"
	"taunt-letter/config"
	"taunt-letter/db"
	"taunt-letter/generation"
	"taunt-letter/internal/logger"
	"taunt-letter/models"
	"taunt-letter/pipeline"
	"taunt-letter/prompt"
	"taunt-letter/repositories"
	"taunt-letter/scraper"
)

func main() {
	budget := flag.Float64("budget", 0, "학습 예산(USD), 0이면 설정 파일 값")
	report := flag.Bool("report", false, "수집/학습 대신 사용 분석 보고서를 출력")
	skipLearn := flag.Bool("skip-learn", false, "모델 학습 호출 없이 수집만 수행")
	exportPath := flag.String("export", "", "학습 결과를 저장할 JSON 파일 경로")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	conn, err := db.Open(config.DatabasePath())
	if err != nil {
		log.Fatal("연구 데이터베이스 열기 실패: ", err)
	}
	defer conn.Close()

	ctx := context.Background()

	if *report {
		printReport(ctx, analytics.NewReporter(conn))
		return
	}

	if err := seedDarknessLevels(ctx, repositories.NewDarknessLevelRepository(conn)); err != nil {
		logger.ErrorWithFields("흑화 단계 시드 실패", logger.Fields{"error": err.Error()})
	}

	budgetUSD := cfg.Pipeline.BudgetUSD
	if *budget > 0 {
		budgetUSD = *budget
	}

	// 1) 커뮤니티 데이터 수집 → 규칙 기반 분석 → 학습 데이터 저장
	collection := pipeline.NewCollectionPipeline(
		scraper.New(cfg.Scraper.RedditURL, cfg.Scraper.UserAgent, cfg.Scraper.MaxPosts),
		newsFeeds(cfg.Scraper.NewsFeeds),
		repositories.NewTrainingDataRepository(conn),
		budgetUSD, cfg.Pipeline.CostPerCall,
	)
	summary := collection.Run(ctx)
	fmt.Printf("수집 완료: %d건 수집, %d건 분석, %d건 저장 (출처: %v)\n",
		summary.ScrapedItems, summary.AnalyzedItems, summary.SavedItems, summary.DataSources)

	if *skipLearn {
		return
	}

	// 2) 예산 한도 안에서 배치 학습 호출
	key := config.GeminiAPIKey()
	if key == "" {
		logger.Log.Warn("GEMINI_API_KEY 가 없어 학습 단계를 건너뜁니다.")
		return
	}
	client, err := generation.NewClient(ctx, key, cfg.GeminiModel, generation.WithTemperature(0.3))
	if err != nil {
		log.Fatal("Gemini 클라이언트 초기화 실패: ", err)
	}

	learning := pipeline.NewLearningPipeline(client, budgetUSD, cfg.Pipeline.CostPerCall, cfg.Pipeline.BatchSize)
	items := pipeline.DefaultLearningItems()
	result := learning.Run(ctx, items)
	fmt.Printf("학습 완료: 데이터 %d건, 요청 %d회, 비용 $%.3f, 잔여 예산 $%.3f\n",
		result.DataProcessed, result.RequestsUsed, result.TotalCost, result.RemainingBudget)
	for _, p := range result.PatternAnalysis.CommonPatterns {
		fmt.Printf("  공통 패턴: %s\n", p)
	}

	if *exportPath != "" {
		if err := pipeline.Export(*exportPath, items, result); err != nil {
			logger.ErrorWithFields("학습 결과 내보내기 실패", logger.Fields{"error": err.Error()})
		}
	}
}

func newsFeeds(sources []config.NewsSource) []scraper.NewsFeed {
	feeds := make([]scraper.NewsFeed, len(sources))
	for i, s := range sources {
		feeds[i] = scraper.NewsFeed{Name: s.Name, RSSURL: s.RSSURL}
	}
	return feeds
}

// 흑화 단계 테이블이 비어 있으면 프롬프트 테이블 기준으로 채운다.
func seedDarknessLevels(ctx context.Context, repo *repositories.DarknessLevelRepository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for level := 1; level <= len(prompt.IntensityProfiles); level++ {
		p := prompt.IntensityFor(level)
		if _, err := repo.Insert(ctx, models.DarknessLevel{
			LevelName:       p.Name,
			LevelNumber:     level,
			Description:     p.Approach,
			IntensityScore:  level * 2,
			SafetyLevel:     6 - level,
			UsageGuidelines: p.Persona,
		}); err != nil {
			return err
		}
	}
	logger.InfoWithFields("흑화 단계 시드 완료", logger.Fields{"levels": len(prompt.IntensityProfiles)})
	return nil
}

func printReport(ctx context.Context, reporter *analytics.Reporter) {
	report, err := reporter.ComprehensiveReport(ctx)
	if err != nil {
		log.Fatal("보고서 생성 실패: ", err)
	}

	fmt.Println("============================================================")
	fmt.Println("조롱 프로젝트 사용자 분석 보고서")
	fmt.Println("============================================================")
	fmt.Printf("\n전체 요약:\n")
	fmt.Printf("  - 총 사용자 수: %d명\n", report.Summary.TotalUsers)
	fmt.Printf("  - 총 요청 수: %d회\n", report.Summary.TotalRequests)
	fmt.Printf("  - 가장 인기있는 톤: %s\n", report.Summary.MostPopularTone)
	fmt.Printf("  - 고급 기법 사용 종류: %d가지\n", report.Summary.AdvancedTechniqueKind)

	if len(report.UsagePatterns.ToneStats) > 0 {
		fmt.Printf("\n톤별 사용 통계 (상위 5개):\n")
		for i, s := range report.UsagePatterns.ToneStats {
			if i == 5 {
				break
			}
			fmt.Printf("  %d. %s: %d회 사용 (품질: %.1f, 평균길이: %.0f자)\n",
				i+1, s.Tone, s.UsageCount, s.AvgQuality, s.AvgLength)
		}
	}

	if len(report.SafetyAnalysis.SafetyStats) > 0 {
		fmt.Printf("\n안전성 통계:\n")
		for i, s := range report.SafetyAnalysis.SafetyStats {
			if i == 3 {
				break
			}
			status := "위험"
			if s.IsSafe {
				status = "안전"
			}
			fmt.Printf("  - %s: %d회 (%s 톤)\n", status, s.Count, s.Tone)
		}
	}

	if len(report.Insights) > 0 {
		fmt.Printf("\n주요 인사이트:\n")
		for _, in := range report.Insights {
			fmt.Printf("  [%s] %s\n", in.Category, in.Insight)
			fmt.Printf("    권장사항: %s\n", in.Recommendation)
		}
	}
}
