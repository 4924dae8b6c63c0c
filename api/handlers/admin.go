package handlers

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"taunt-letter/analyzer"
	"taunt-letter/api/middleware"
	"taunt-letter/dto"
	"taunt-letter/generation"
	"taunt-letter/internal/logger"
	"taunt-letter/models"
	"taunt-letter/pipeline"
	"taunt-letter/repositories"
	"taunt-letter/scraper"
	"taunt-letter/session"
)

const (
	keyRedditInsights      = "reddit_insights"
	keyNewsYoutubeInsights = "news_youtube_insights"
	keyLearningResults     = "ai_learning_results"

	maxLearningBudget = 5.0
)

// 2025년 한국 커뮤니티 트렌드 표본. 수집기가 실패해도 로드 엔드포인트는
// 이 표본으로 동작한다.
var redditSeedPosts = []analyzer.RedditPost{
	{
		Source:      "reddit_korea",
		Title:       "2025년 서울 월세 실화인가요? 종로에서 5평에 100만원이라는데…",
		Content:     "최근에 집 알아보는데 정말 숨이 턱 막히네요. 다들 이정도 내고 사시는 건가요?",
		Score:       850,
		NumComments: 452,
		Subreddit:   "korea",
	},
	{
		Source:      "reddit_korea",
		Title:       "한국 직장 내 세대 갈등, 여러분 회사는 어떤가요?",
		Content:     "요즘 MZ세대랑 기성세대랑 일하는 방식 차이 때문에 스트레스 받네요.",
		Score:       510,
		NumComments: 288,
		Subreddit:   "korea",
	},
}

func topN(counts []analyzer.LabelCount, n int) []analyzer.LabelCount {
	if len(counts) > n {
		return counts[:n]
	}
	return counts
}

func maxKey(dist map[string]int) string {
	best, bestCount := "", -1
	for k, v := range dist {
		if v > bestCount || (v == bestCount && k < best) {
			best, bestCount = k, v
		}
	}
	return best
}

// LoadRedditTrainingDataHandler godoc
// @Summary      Load reddit training data
// @Description  Tag the reddit trend sample and cache the insights in the session
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin/load_reddit_training_data [post]
func LoadRedditTrainingDataHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		processor := analyzer.NewRedditProcessor()
		samples := processor.Process(redditSeedPosts)
		insights := processor.Insights(samples)

		store.Set(middleware.SessionID(c), keyRedditInsights, insights)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Reddit 학습 데이터 로드 완료",
			"data": gin.H{
				"total_samples":        insights.TotalSamples,
				"trend_distribution":   insights.TrendDistribution,
				"top_emotion_triggers": topN(insights.TopEmotionTriggers, 5),
				"recommended_tones":    topN(insights.RecommendedTones, 5),
			},
		})
	}
}

// RedditInsightsHandler godoc
// @Summary      Reddit insights
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/reddit_insights [get]
func RedditInsightsHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := store.Get(middleware.SessionID(c), keyRedditInsights)
		insights, cast := v.(analyzer.RedditInsights)
		if !ok || !cast || insights.TotalSamples == 0 {
			c.JSON(http.StatusBadRequest, dto.NewError("Reddit 데이터를 먼저 로드해주세요."))
			return
		}

		recommendations := []gin.H{
			{
				"category":       "트렌드 반영",
				"insight":        fmt.Sprintf("가장 인기있는 트렌드는 '%s'입니다.", maxKey(insights.TrendDistribution)),
				"recommendation": "이 트렌드에 특화된 톤과 표현을 개발하세요.",
			},
		}
		if len(insights.TopEmotionTriggers) > 0 {
			recommendations = append(recommendations, gin.H{
				"category":       "감정 타겟팅",
				"insight":        fmt.Sprintf("가장 효과적인 감정 트리거는 '%s'입니다.", insights.TopEmotionTriggers[0].Label),
				"recommendation": "이 감정 트리거를 활용한 콘텐츠 생성을 강화하세요.",
			})
		}
		recommendations = append(recommendations, gin.H{
			"category":       "품질 최적화",
			"insight":        fmt.Sprintf("평균 품질 점수는 %.2f점입니다.", insights.QualityDistribution.Average),
			"recommendation": "고품질 데이터 비율을 높이기 위한 필터링 기준을 강화하세요.",
		})

		c.JSON(http.StatusOK, gin.H{
			"status":          "success",
			"insights":        insights,
			"recommendations": recommendations,
			"viral_signals":   viralSignals(redditSeedPosts),
		})
	}
}

// 게시물별 단계형 바이럴 신호. 점수 내림차순이라 앞에 오는 게시물이
// 우선순위가 높다.
type postViralSignals struct {
	Title            string   `json:"title"`
	ViralScore       int      `json:"viral_score"`
	EmotionTriggers  []string `json:"emotion_triggers"`
	EngagementRatio  float64  `json:"engagement_ratio"`
	TrendCategory    string   `json:"trend_category"`
	RecommendedTones []string `json:"recommended_tones"`
}

func viralSignals(posts []analyzer.RedditPost) []postViralSignals {
	signals := make([]postViralSignals, 0, len(posts))
	for _, post := range posts {
		sig := analyzer.AnalyzeViralSignals(post)
		signals = append(signals, postViralSignals{
			Title:            post.Title,
			ViralScore:       sig.ViralScore,
			EmotionTriggers:  sig.EmotionTriggers,
			EngagementRatio:  sig.EngagementRatio,
			TrendCategory:    sig.TrendCategory,
			RecommendedTones: analyzer.RecommendTones(post),
		})
	}
	sort.Slice(signals, func(i, j int) bool { return signals[i].ViralScore > signals[j].ViralScore })
	return signals
}

// LoadNewsYoutubeDataHandler godoc
// @Summary      Load news/youtube comment training data
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin/load_news_youtube_data [post]
func LoadNewsYoutubeDataHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		processor := analyzer.NewCommentProcessor()
		samples := processor.Process(analyzer.SimulatedComments)
		insights := processor.Insights(samples)

		store.Set(middleware.SessionID(c), keyNewsYoutubeInsights, insights)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "뉴스/유튜브 댓글 학습 데이터 로드 완료",
			"data": gin.H{
				"total_samples":             insights.TotalSamples,
				"platform_distribution":     insights.PlatformDistribution,
				"top_psychological_drivers": topN(insights.TopPsychologicalDrivers, 5),
				"recommended_tones":         topN(insights.RecommendedTones, 5),
				"viral_analysis":            insights.ViralPotentialAnalysis,
			},
		})
	}
}

// NewsYoutubeInsightsHandler godoc
// @Summary      News/youtube insights
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/news_youtube_insights [get]
func NewsYoutubeInsightsHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := store.Get(middleware.SessionID(c), keyNewsYoutubeInsights)
		insights, cast := v.(analyzer.CommentInsights)
		if !ok || !cast || insights.TotalSamples == 0 {
			c.JSON(http.StatusBadRequest, dto.NewError("뉴스/유튜브 데이터를 먼저 로드해주세요."))
			return
		}

		recommendations := []gin.H{
			{
				"category":       "플랫폼별 특성",
				"insight":        fmt.Sprintf("가장 많은 데이터가 수집된 플랫폼은 '%s'입니다.", maxKey(insights.PlatformDistribution)),
				"recommendation": "각 플랫폼의 고유한 언어적 특성을 반영한 톤 개발이 필요합니다.",
			},
		}
		if len(insights.TopPsychologicalDrivers) > 0 {
			recommendations = append(recommendations, gin.H{
				"category":       "심리적 동기",
				"insight":        fmt.Sprintf("가장 강한 심리적 동기는 '%s'입니다.", insights.TopPsychologicalDrivers[0].Label),
				"recommendation": "이 심리적 동기를 자극하는 콘텐츠 생성 전략을 강화하세요.",
			})
		}
		recommendations = append(recommendations,
			gin.H{
				"category":       "바이럴 잠재력",
				"insight":        fmt.Sprintf("평균 바이럴 점수는 %.3f입니다.", insights.ViralPotentialAnalysis.AverageViralScore),
				"recommendation": fmt.Sprintf("고바이럴 콘텐츠 %d개의 패턴을 분석하여 적용하세요.", insights.ViralPotentialAnalysis.HighViralCount),
			},
			gin.H{
				"category":       "감정 강도",
				"insight":        fmt.Sprintf("극강 감정 댓글이 %d개 발견되었습니다.", insights.EmotionalIntensityStats.ExtremeCount),
				"recommendation": "감정 강도가 높은 콘텐츠의 특성을 분석하여 효과적인 조롱 전략을 수립하세요.",
			},
		)

		c.JSON(http.StatusOK, gin.H{
			"status":          "success",
			"insights":        insights,
			"recommendations": recommendations,
		})
	}
}

// RunAILearningHandler godoc
// @Summary      Run budget-capped learning pipeline
// @Tags         admin
// @Accept       json
// @Param        request  body  dto.LearningRequest  false  "Budget in USD (max 5)"
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/run_ai_learning [post]
func RunAILearningHandler(gen generation.TextGenerator, costPerCall float64, batchSize int, store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gen == nil {
			c.JSON(http.StatusInternalServerError, dto.NewError("서버 설정 오류: Gemini API 키가 설정되지 않았습니다."))
			return
		}

		var req dto.LearningRequest
		_ = c.ShouldBindJSON(&req)
		budget := req.Budget
		if budget == 0 {
			budget = 3.0
		}
		if budget > maxLearningBudget {
			c.JSON(http.StatusBadRequest, dto.NewError("예산은 최대 $5까지 설정 가능합니다."))
			return
		}

		logger.InfoWithFields("AI 학습 시작", logger.Fields{"budget_usd": budget})

		p := pipeline.NewLearningPipeline(gen, budget, costPerCall, batchSize)
		results := p.Run(c.Request.Context(), pipeline.DefaultLearningItems())

		store.Set(middleware.SessionID(c), keyLearningResults, results)

		costPerData := 0.0
		if results.DataProcessed > 0 {
			costPerData = results.TotalCost / float64(results.DataProcessed)
		}
		rating := "good"
		if results.EfficiencyScore > 15 {
			rating = "excellent"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("AI 학습 완료! 총 비용: $%.3f", results.TotalCost),
			"results": gin.H{
				"data_processed":   results.DataProcessed,
				"requests_used":    results.RequestsUsed,
				"total_cost":       results.TotalCost,
				"remaining_budget": results.RemainingBudget,
				"efficiency_score": results.EfficiencyScore,
				"cost_per_data":    costPerData,
			},
			"performance": gin.H{
				"efficiency_rating":  rating,
				"budget_utilization": results.TotalCost / budget * 100,
				"data_density":       fmt.Sprintf("%d 데이터 / $%.3f", results.DataProcessed, results.TotalCost),
			},
		})
	}
}

// AILearningStatusHandler godoc
// @Summary      Learning run status
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin/ai_learning_status [get]
func AILearningStatusHandler(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := store.Get(middleware.SessionID(c), keyLearningResults)
		results, cast := v.(pipeline.LearningSummary)
		if !ok || !cast {
			c.JSON(http.StatusOK, gin.H{
				"status":  "no_data",
				"message": "AI 학습이 아직 실행되지 않았습니다.",
				"suggestions": []string{
					"/admin/run_ai_learning 엔드포인트로 학습을 시작하세요.",
					"예산은 $1-5 사이로 설정 가능합니다.",
					"학습 데이터는 Reddit + 뉴스/유튜브 댓글 통합 데이터를 사용합니다.",
				},
			})
			return
		}

		roi := "N/A"
		if results.DataProcessed > 0 {
			roi = fmt.Sprintf("데이터당 비용: $%.4f", results.TotalCost/float64(results.DataProcessed))
		}
		rating := "good"
		if results.EfficiencyScore > 15 {
			rating = "excellent"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":           "success",
			"learning_results": results,
			"insights": gin.H{
				"cost_efficiency":    fmt.Sprintf("$%.3f로 %d개 데이터 처리", results.TotalCost, results.DataProcessed),
				"roi_analysis":       roi,
				"budget_management":  fmt.Sprintf("예산 사용률: %.1f%%", results.TotalCost/3.0*100),
				"performance_rating": rating,
			},
			"next_actions": []string{
				"학습된 패턴을 프롬프트에 적용하여 성능 개선",
				"A/B 테스트로 개선 효과 측정",
				"사용자 피드백 수집 및 추가 학습",
			},
		})
	}
}

// ScrapeTrainingDataHandler godoc
// @Summary      Scrape community data into training datasets
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /admin/scrape_training_data [post]
func ScrapeTrainingDataHandler(scr *scraper.Scraper, feeds []scraper.NewsFeed, repo *repositories.TrainingDataRepository, budgetUSD, costPerCall float64) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary := pipeline.NewCollectionPipeline(scr, feeds, repo, budgetUSD, costPerCall).Run(c.Request.Context())

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "커뮤니티 데이터 수집 완료",
			"summary": summary,
		})
	}
}

// AddDevelopmentRequestHandler godoc
// @Summary      Queue a feature development request
// @Tags         admin
// @Accept       json
// @Param        request  body  dto.DevelopmentRequestDTO  true  "Feature request"
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/add_development_request [post]
func AddDevelopmentRequestHandler(repo *repositories.DevelopmentQueueRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if repo == nil {
			c.JSON(http.StatusInternalServerError, dto.NewError("연구 데이터베이스를 사용할 수 없습니다."))
			return
		}

		var req dto.DevelopmentRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil || req.FeatureName == "" {
			c.JSON(http.StatusBadRequest, dto.NewError("기능 이름을 입력해주세요."))
			return
		}

		id, err := repo.Insert(c.Request.Context(), models.DevelopmentRequest{
			FeatureName:         req.FeatureName,
			FeatureType:         req.FeatureType,
			Description:         req.Description,
			PriorityLevel:       req.PriorityLevel,
			EstimatedComplexity: req.EstimatedComplexity,
		})
		if err != nil {
			logger.ErrorWithFields("개발 요청 저장 실패", logger.Fields{"error": err.Error()})
			c.JSON(http.StatusInternalServerError, dto.NewError("개발 요청 저장에 실패했습니다."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":     "success",
			"message":    "개발 요청이 큐에 등록되었습니다.",
			"request_id": id,
		})
	}
}

// ViewDevelopmentQueueHandler godoc
// @Summary      List pending development requests
// @Tags         admin
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /admin/view_development_queue [get]
func ViewDevelopmentQueueHandler(repo *repositories.DevelopmentQueueRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if repo == nil {
			c.JSON(http.StatusInternalServerError, dto.NewError("연구 데이터베이스를 사용할 수 없습니다."))
			return
		}

		queue, err := repo.ListPending(c.Request.Context())
		if err != nil {
			logger.ErrorWithFields("개발 큐 조회 실패", logger.Fields{"error": err.Error()})
			c.JSON(http.StatusInternalServerError, dto.NewError("개발 큐 조회에 실패했습니다."))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":        "success",
			"total_pending": len(queue),
			"queue":         queue,
		})
	}
}
