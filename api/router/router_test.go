package router_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taunt-letter/api/router"
	"taunt-letter/db"
	"taunt-letter/dto"
	"taunt-letter/generation"
	"taunt-letter/repositories"
	"taunt-letter/session"
)

type stubGenerator struct {
	response string
	err      error
}

func (s stubGenerator) GenerateJSON(context.Context, string) (string, error) {
	return s.response, s.err
}

const safeContract = `{
	"generated_text": "야근의 제왕께 바치는 찬사, 오늘도 사무실 불빛이 외롭지 않겠군요.",
	"safety_analysis": {"is_safe": true, "safety_message": "생성된 텍스트가 안전합니다."}
}`

func newRouter(gen generation.TextGenerator, conn *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	deps := router.Deps{
		Generator:   gen,
		ModelName:   "gemini-2.0-flash",
		DB:          conn,
		Sessions:    session.NewStore(30),
		BudgetUSD:   3.0,
		CostPerCall: 0.005,
		BatchSize:   20,
	}
	if conn != nil {
		deps.QARepo = repositories.NewQAHistoryRepository(conn)
		deps.TechRepo = repositories.NewTechniqueDetectionRepository(conn)
		deps.TrainingRepo = repositories.NewTrainingDataRepository(conn)
		deps.DevQueueRepo = repositories.NewDevelopmentQueueRepository(conn)
	}
	return router.New(deps)
}

func postJSON(r *gin.Engine, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateEndToEnd(t *testing.T) {
	r := newRouter(stubGenerator{response: safeContract}, nil)

	w := postJSON(r, "/generate_taunt_text", gin.H{
		"target":   "특정 공무원",
		"keywords": "늦은 퇴근",
		"tone":     "유머러스하게",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, resp.Letter, "야근의 제왕")
	assert.Equal(t, "공감대 형성", resp.EmotionAnalysis.PrimaryEmotion)
	assert.Equal(t, "High", resp.QualityAnalysis.PredictedVirality)
	assert.True(t, resp.PostGenerationSafetyAnalysis.IsSafe)
	assert.Nil(t, resp.QAHistoryID)
	assert.False(t, resp.GeminiModelInfo.QALoggingEnabled)

	// 세션 쿠키가 새로 발급됐는지 확인한다.
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "session_id", cookies[0].Name)
}

func TestGenerateSavesHistory(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "api_test.db"))
	require.NoError(t, err)
	defer conn.Close()

	r := newRouter(stubGenerator{response: safeContract}, conn)

	w := postJSON(r, "/generate", gin.H{
		"target":   "직장 상사",
		"keywords": "야근, 회식",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.QAHistoryID)
	assert.True(t, resp.GeminiModelInfo.QALoggingEnabled)

	var n int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM qa_history`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestGenerateLogsAposiopesisTechnique(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "api_test.db"))
	require.NoError(t, err)
	defer conn.Close()

	r := newRouter(stubGenerator{response: safeContract}, conn)

	// 말줄임 계열 톤만 기법 탐지 로그를 남긴다.
	w := postJSON(r, "/generate", gin.H{
		"target":   "집주인",
		"keywords": "월세 인상",
		"tone":     "소심한 공격 톤",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/generate", gin.H{
		"target":   "집주인",
		"keywords": "월세 인상",
		"tone":     "유머러스하게",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var name string
	var n int
	require.NoError(t, conn.QueryRow(
		`SELECT technique_name, COUNT(*) FROM technique_detection_log GROUP BY technique_name`,
	).Scan(&name, &n))
	assert.Equal(t, "aposiopesis", name)
	assert.Equal(t, 1, n)
}

func TestGenerateValidation(t *testing.T) {
	r := newRouter(stubGenerator{response: safeContract}, nil)

	w := postJSON(r, "/generate_taunt_text", gin.H{"target": "직장 상사"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "조롱 대상과 내용을 입력해주세요.", resp.Message)
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	r := newRouter(nil, nil)

	w := postJSON(r, "/generate_taunt_text", gin.H{"target": "집주인", "keywords": "월세"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "서버 설정 오류: Gemini API 키가 설정되지 않았습니다.", resp.Message)
}

func TestGenerateAuthError(t *testing.T) {
	r := newRouter(stubGenerator{err: errAuth{}}, nil)

	w := postJSON(r, "/generate_taunt_text", gin.H{"target": "집주인", "keywords": "월세"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "API 키 문제: Google Gemini API 키를 확인해주세요.", resp.Message)
}

type errAuth struct{}

func (errAuth) Error() string { return "API key not valid. Please pass a valid API key." }

func TestAnalyzeValidation(t *testing.T) {
	r := newRouter(stubGenerator{response: `{"humor_level": "4"}`}, nil)

	w := postJSON(r, "/analyze_taunt", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "분석할 텍스트가 없습니다.", resp.Message)
}

func TestAnalyzeTaunt(t *testing.T) {
	r := newRouter(stubGenerator{response: `{"humor_level": "4", "wit_score": "5"}`}, nil)

	w := postJSON(r, "/analyze", gin.H{"taunt_text": "야근의 제왕께 바치는 찬사"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	analysis, ok := resp["analysis"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "4", analysis["humor_level"])
}

func TestDarknessLevels(t *testing.T) {
	r := newRouter(nil, nil)

	w := getPath(r, "/get_darkness_levels")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string                 `json:"status"`
		Levels []dto.DarknessLevelDTO `json:"levels"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Levels, 5)
	assert.Equal(t, 1, resp.Levels[0].Level)
	assert.Equal(t, "순수 유머", resp.Levels[0].Name)
	assert.Equal(t, "신랄한 비평", resp.Levels[4].Name)
}

func TestAdminInsightFlow(t *testing.T) {
	r := newRouter(nil, nil)

	// 로드 전에는 인사이트가 없다.
	w := getPath(r, "/admin/reddit_insights")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/admin/load_reddit_training_data", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	var loaded struct {
		Status string `json:"status"`
		Data   struct {
			TotalSamples      int            `json:"total_samples"`
			TrendDistribution map[string]int `json:"trend_distribution"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, 2, loaded.Data.TotalSamples)
	assert.Equal(t, 1, loaded.Data.TrendDistribution["cost_of_living"])

	// 같은 세션 쿠키로 다시 조회하면 인사이트가 나온다.
	w = getPath(r, "/admin/reddit_insights", cookies...)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.NotEmpty(t, resp["recommendations"])

	// 게시물별 바이럴 신호가 점수 내림차순으로 붙는다.
	signals, ok := resp["viral_signals"].([]any)
	require.True(t, ok)
	require.Len(t, signals, 2)
	categories := map[string]bool{}
	var prev float64 = 99
	for _, raw := range signals {
		sig := raw.(map[string]any)
		score := sig["viral_score"].(float64)
		assert.LessOrEqual(t, score, prev)
		prev = score
		categories[sig["trend_category"].(string)] = true
		assert.NotEmpty(t, sig["recommended_tones"])
	}
	assert.True(t, categories["cost_of_living"])
	assert.True(t, categories["social_culture"])
}

func TestAdminNewsYoutubeFlow(t *testing.T) {
	r := newRouter(nil, nil)

	w := postJSON(r, "/admin/load_news_youtube_data", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	var loaded struct {
		Data struct {
			TotalSamples         int            `json:"total_samples"`
			PlatformDistribution map[string]int `json:"platform_distribution"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loaded))
	assert.Equal(t, 8, loaded.Data.TotalSamples)
	assert.Equal(t, 4, loaded.Data.PlatformDistribution["youtube"])

	w = getPath(r, "/admin/news_youtube_insights", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRunAILearningBudgetCap(t *testing.T) {
	r := newRouter(stubGenerator{response: `{"batch_analysis": [], "batch_insights": {}}`}, nil)

	w := postJSON(r, "/admin/run_ai_learning", gin.H{"budget": 10.0})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "예산은 최대 $5까지 설정 가능합니다.", resp.Message)
}

func TestRunAILearningAndStatus(t *testing.T) {
	r := newRouter(stubGenerator{response: `{"batch_analysis": [], "batch_insights": {"common_patterns": ["과장법"]}}`}, nil)

	// 학습 전 상태 조회는 no_data 다.
	w := getPath(r, "/admin/ai_learning_status")
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "no_data", status["status"])

	w = postJSON(r, "/admin/run_ai_learning", gin.H{"budget": 1.0})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	var run struct {
		Status  string `json:"status"`
		Results struct {
			DataProcessed int `json:"data_processed"`
			RequestsUsed  int `json:"requests_used"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, "success", run.Status)
	assert.Equal(t, 10, run.Results.DataProcessed)
	assert.Equal(t, 1, run.Results.RequestsUsed)

	w = getPath(r, "/admin/ai_learning_status", cookies...)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "success", status["status"])
}

func TestDevelopmentQueueEndpoints(t *testing.T) {
	conn, err := db.Open(filepath.Join(t.TempDir(), "queue_test.db"))
	require.NoError(t, err)
	defer conn.Close()

	r := newRouter(nil, conn)

	w := postJSON(r, "/admin/add_development_request", gin.H{
		"feature_name":   "실시간 트렌드 반영",
		"feature_type":   "analyzer",
		"priority_level": 8,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = getPath(r, "/admin/view_development_queue")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalPending int `json:"total_pending"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalPending)
}

func TestDevelopmentQueueWithoutDatabase(t *testing.T) {
	r := newRouter(nil, nil)

	w := getPath(r, "/admin/view_development_queue")
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProjectEndpoints(t *testing.T) {
	r := newRouter(nil, nil)

	for _, path := range []string{"/api/project/status", "/api/project/categories", "/api/notion/dashboard"} {
		w := getPath(r, path)
		require.Equal(t, http.StatusOK, w.Code, path)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp["status"], path)
	}
}

func TestHealthWithoutDatabase(t *testing.T) {
	r := newRouter(nil, nil)

	w := getPath(r, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "disabled", resp["database"])
}
