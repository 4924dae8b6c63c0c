package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"taunt-letter/api/router"
	"taunt-letter/config"
	"taunt-letter/db"
	"taunt-letter/generation"
	"taunt-letter/internal/logger"
	"taunt-letter/repositories"
	"taunt-letter/scraper"
	"taunt-letter/session"
)

// @title           Taunt Letter API
// @version         2.0
// @description     조롱 편지 생성/분석 백엔드 API
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	// 연구 데이터베이스는 선택 사항이다. 열기에 실패하면 저장 없이 돈다.
	var conn *sql.DB
	if path := config.DatabasePath(); path != "" {
		c, err := db.Open(path)
		if err != nil {
			logger.ErrorWithFields("연구 데이터베이스 초기화 실패", logger.Fields{"error": err.Error()})
		} else {
			conn = c
			defer conn.Close()
		}
	}
	if conn == nil {
		logger.Log.Warn("연구 데이터베이스 시스템을 사용할 수 없습니다. 기본 모드로 실행합니다.")
	}

	var gen generation.TextGenerator
	if key := config.GeminiAPIKey(); key == "" {
		logger.Log.Error("GEMINI_API_KEY 환경 변수가 설정되지 않았습니다.")
	} else {
		client, err := generation.NewClient(context.Background(), key, cfg.GeminiModel)
		if err != nil {
			logger.ErrorWithFields("Gemini 클라이언트 초기화 실패", logger.Fields{"error": err.Error()})
		} else {
			gen = client
		}
	}

	deps := router.Deps{
		Generator:   gen,
		ModelName:   cfg.GeminiModel,
		DB:          conn,
		Sessions:    session.NewStore(cfg.Session.TTLMinutes),
		Scraper:     scraper.New(cfg.Scraper.RedditURL, cfg.Scraper.UserAgent, cfg.Scraper.MaxPosts),
		NewsFeeds:   newsFeeds(cfg.Scraper.NewsFeeds),
		BudgetUSD:   cfg.Pipeline.BudgetUSD,
		CostPerCall: cfg.Pipeline.CostPerCall,
		BatchSize:   cfg.Pipeline.BatchSize,
	}
	if conn != nil {
		deps.QARepo = repositories.NewQAHistoryRepository(conn)
		deps.TechRepo = repositories.NewTechniqueDetectionRepository(conn)
		deps.TrainingRepo = repositories.NewTrainingDataRepository(conn)
		deps.DevQueueRepo = repositories.NewDevelopmentQueueRepository(conn)
	}

	r := router.New(deps)

	logger.InfoWithFields("API 서버 시작", logger.Fields{"addr": cfg.Server.Addr})
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

func newsFeeds(sources []config.NewsSource) []scraper.NewsFeed {
	feeds := make([]scraper.NewsFeed, len(sources))
	for i, s := range sources {
		feeds[i] = scraper.NewsFeed{Name: s.Name, RSSURL: s.RSSURL}
	}
	return feeds
}
