package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig  `yaml:"logging"`
	Server      ServerConfig   `yaml:"server"`
	GeminiModel string         `yaml:"gemini_model"`
	Database    DatabaseConfig `yaml:"database"`
	Pipeline    PipelineConfig `yaml:"pipeline"`
	Scraper     ScraperConfig  `yaml:"scraper"`
	Session     SessionConfig  `yaml:"session"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig 는 연구용 SQLite 저장소 설정이다.
// Path 가 비어 있으면 저장소 없이 기본 모드로 동작한다.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// PipelineConfig 는 배치 학습 파이프라인의 예산 기본값을 정의한다.
// LLM 호출 횟수 상한은 budget_usd / cost_per_call 로 계산된다.
type PipelineConfig struct {
	BudgetUSD   float64 `yaml:"budget_usd"`
	CostPerCall float64 `yaml:"cost_per_call"`
	BatchSize   int     `yaml:"batch_size"`
}

type ScraperConfig struct {
	RedditURL string       `yaml:"reddit_url"`
	UserAgent string       `yaml:"user_agent"`
	MaxPosts  int          `yaml:"max_posts"`
	NewsFeeds []NewsSource `yaml:"news_feeds"`
}

// NewsSource is a single news feed configuration item
type NewsSource struct {
	Name   string `yaml:"name"`
	RSSURL string `yaml:"rss_url"`
}

type SessionConfig struct {
	TTLMinutes int `yaml:"ttl_minutes"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// GeminiAPIKey 는 .env 또는 환경변수에서 읽는다. 설정 파일에는 두지 않는다.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// DatabasePath 는 DATABASE_PATH 환경변수가 있으면 그것을 우선한다.
func DatabasePath() string {
	if p := os.Getenv("DATABASE_PATH"); p != "" {
		return p
	}
	return GetConfig().Database.Path
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
