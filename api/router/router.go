package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"taunt-letter/api/handlers"
	"taunt-letter/api/middleware"
	_ "taunt-letter/docs"
	"taunt-letter/generation"
	"taunt-letter/repositories"
	"taunt-letter/scraper"
	"taunt-letter/session"
)

// Deps 는 라우터가 핸들러에 주입하는 의존성 묶음이다.
// Generator 와 DB 는 설정에 따라 nil 일 수 있고, 핸들러가 각자 대응한다.
type Deps struct {
	Generator generation.TextGenerator
	ModelName string
	DB        *sql.DB
	Sessions  *session.Store
	Scraper   *scraper.Scraper
	NewsFeeds []scraper.NewsFeed

	QARepo       *repositories.QAHistoryRepository
	TechRepo     *repositories.TechniqueDetectionRepository
	TrainingRepo *repositories.TrainingDataRepository
	DevQueueRepo *repositories.DevelopmentQueueRepository

	BudgetUSD   float64
	CostPerCall float64
	BatchSize   int
}

func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Session(deps.Sessions))

	r.GET("/health", handlers.HealthHandler(deps.DB))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	generate := handlers.GenerateTauntHandler(deps.Generator, deps.ModelName, deps.QARepo, deps.TechRepo)
	analyze := handlers.AnalyzeTauntHandler(deps.Generator)
	darkness := handlers.DarknessLevelsHandler()

	r.POST("/generate_taunt_text", generate)
	r.POST("/generate", generate)
	r.POST("/analyze_taunt", analyze)
	r.POST("/analyze", analyze)
	r.GET("/get_darkness_levels", darkness)
	r.GET("/darkness_levels", darkness)

	project := r.Group("/api")
	{
		project.GET("/project/status", handlers.ProjectStatusHandler(deps.Generator != nil, deps.DB != nil))
		project.GET("/project/categories", handlers.ProjectCategoriesHandler())
		project.GET("/notion/dashboard", handlers.NotionDashboardHandler())
	}

	admin := r.Group("/admin")
	{
		admin.POST("/load_reddit_training_data", handlers.LoadRedditTrainingDataHandler(deps.Sessions))
		admin.GET("/reddit_insights", handlers.RedditInsightsHandler(deps.Sessions))
		admin.POST("/load_news_youtube_data", handlers.LoadNewsYoutubeDataHandler(deps.Sessions))
		admin.GET("/news_youtube_insights", handlers.NewsYoutubeInsightsHandler(deps.Sessions))
		admin.POST("/run_ai_learning", handlers.RunAILearningHandler(deps.Generator, deps.CostPerCall, deps.BatchSize, deps.Sessions))
		admin.GET("/ai_learning_status", handlers.AILearningStatusHandler(deps.Sessions))
		admin.POST("/scrape_training_data", handlers.ScrapeTrainingDataHandler(deps.Scraper, deps.NewsFeeds, deps.TrainingRepo, deps.BudgetUSD, deps.CostPerCall))
		admin.POST("/add_development_request", handlers.AddDevelopmentRequestHandler(deps.DevQueueRepo))
		admin.GET("/view_development_queue", handlers.ViewDevelopmentQueueHandler(deps.DevQueueRepo))
	}

	return r
}
