package handlers

import (
	"database/sql"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"taunt-letter/api/middleware"
	"taunt-letter/dto"
	"taunt-letter/generation"
	"taunt-letter/internal/logger"
	"taunt-letter/metadata"
	"taunt-letter/models"
	"taunt-letter/prompt"
	"taunt-letter/repositories"
)

// GenerateTauntHandler godoc
// @Summary      Generate taunt letter
// @Description  Build a prompt from target/keywords/tone and generate a taunt letter with safety analysis
// @Tags         generation
// @Accept       json
// @Param        request  body  dto.GenerateRequest  true  "Generation request"
// @Produce      json
// @Success      200  {object}  dto.GenerateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /generate_taunt_text [post]
func GenerateTauntHandler(gen generation.TextGenerator, modelName string, qaRepo *repositories.QAHistoryRepository, techRepo *repositories.TechniqueDetectionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gen == nil {
			logger.Log.Error("API 키가 설정되지 않아 텍스트 생성을 수행할 수 없습니다")
			c.JSON(http.StatusInternalServerError, dto.NewError("서버 설정 오류: Gemini API 키가 설정되지 않았습니다."))
			return
		}

		var req dto.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewError("조롱 대상과 내용을 입력해주세요."))
			return
		}
		if req.Tone == "" {
			req.Tone = "유머러스하게"
		}
		if req.Length == 0 {
			req.Length = 500
		}
		if req.DarknessLevel == 0 {
			req.DarknessLevel = 2
		}

		if req.Target == "" || req.Keywords == "" {
			logger.Log.Warn("필수 입력 필드 누락: 대상 또는 키워드")
			c.JSON(http.StatusBadRequest, dto.NewError("조롱 대상과 내용을 입력해주세요."))
			return
		}

		logger.InfoWithFields("조롱 텍스트 생성 요청", logger.Fields{
			"target":         req.Target,
			"tone":           req.Tone,
			"darkness_level": req.DarknessLevel,
			"length":         req.Length,
		})

		promptText := prompt.Build(prompt.Request{
			Target:          req.Target,
			Keywords:        req.Keywords,
			Tone:            req.Tone,
			Length:          req.Length,
			DarknessLevel:   req.DarknessLevel,
			OptimizeForJSON: true,
		})

		raw, err := gen.GenerateJSON(c.Request.Context(), promptText)
		if err != nil {
			logger.ErrorWithFields("조롱 텍스트 생성 중 서버 오류", logger.Fields{"error": err.Error()})
			if generation.IsAuthError(err) {
				c.JSON(http.StatusInternalServerError, dto.NewError("API 키 문제: Google Gemini API 키를 확인해주세요."))
				return
			}
			c.JSON(http.StatusInternalServerError, dto.NewError("텍스트 생성 중 오류가 발생했습니다: "+err.Error()))
			return
		}

		result := generation.Interpret(raw)
		emotion := metadata.AnalyzeEmotion(req.Tone, req.Length)
		quality := metadata.AnalyzeQuality(req.Tone, req.Length)

		var qaID *int64
		if qaRepo != nil {
			id, err := qaRepo.Insert(c.Request.Context(), models.QARecord{
				SessionID:    middleware.SessionID(c),
				QuestionText: req.Keywords,
				QuestionType: "taunt_generation",
				UserInput: map[string]any{
					"target":         req.Target,
					"keywords":       req.Keywords,
					"tone":           req.Tone,
					"length":         req.Length,
					"darkness_level": req.DarknessLevel,
				},
				GeneratedResponse: result.GeneratedText,
				ResponseMetadata:  map[string]any{"model_name": modelName},
				QualityMetrics:    quality,
				EmotionAnalysis:   emotion,
				ToneUsed:          req.Tone,
				TargetSubject:     req.Target,
				Keywords:          splitKeywords(req.Keywords),
				ResponseLength:    len([]rune(result.GeneratedText)),
				SafetyAnalysis:    result.SafetyAnalysis,
			})
			if err != nil {
				logger.ErrorWithFields("생성 기록 저장 실패", logger.Fields{"error": err.Error()})
			} else {
				qaID = &id
			}
		}

		if qaID != nil && techRepo != nil && prompt.UsesAposiopesis(req.Tone) {
			logTechniqueDetection(c, techRepo, *qaID, req, result.GeneratedText)
		}

		c.JSON(http.StatusOK, dto.GenerateResponse{
			Status:                       "success",
			Letter:                       result.GeneratedText,
			EmotionAnalysis:              emotion,
			QualityAnalysis:              quality,
			PostGenerationSafetyAnalysis: result.SafetyAnalysis,
			QAHistoryID:                  qaID,
			GeminiModelInfo: dto.ModelInfo{
				ModelName:                    modelName,
				Version:                      "2.0",
				EmotionTargetingEnabled:      true,
				PsychologicalAnalysisEnabled: true,
				QALoggingEnabled:             qaRepo != nil,
			},
		})
	}
}

// 말줄임 계열 톤으로 생성된 텍스트는 기법 탐지 로그에 남긴다.
func logTechniqueDetection(c *gin.Context, techRepo *repositories.TechniqueDetectionRepository, qaID int64, req dto.GenerateRequest, text string) {
	sample := text
	if runes := []rune(sample); len(runes) > 200 {
		sample = string(runes[:200])
	}
	_, err := techRepo.Insert(c.Request.Context(), models.TechniqueDetection{
		QAHistoryID:         qaID,
		TechniqueName:       "aposiopesis",
		TechniqueType:       "aposiopesis_taunt",
		DetectionConfidence: detectionConfidence(text),
		DetectedElements:    []string{"말줄임표", "급작스런 중단", "위선적 수습", "가짜 당황"},
		TextSample:          sample,
		ToneUsed:            req.Tone,
		TargetSubject:       req.Target,
	})
	if err != nil {
		logger.ErrorWithFields("기법 탐지 기록 저장 실패", logger.Fields{"error": err.Error()})
	}
}

// 말줄임표가 실제로 쓰였으면 높은 확신도, 아니면 톤 지시만 있었던 것으로 본다.
func detectionConfidence(text string) float64 {
	if strings.Contains(text, "...") || strings.Contains(text, "…") {
		return 0.9
	}
	return 0.5
}

// 자유 입력 키워드를 저장용 목록으로 나눈다. 쉼표가 없으면 한 덩어리.
func splitKeywords(keywords string) []string {
	parts := strings.Split(keywords, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AnalyzeTauntHandler godoc
// @Summary      Analyze a taunt text
// @Description  Ask the model to rate humor, wit and safety of a generated text
// @Tags         generation
// @Accept       json
// @Param        request  body  dto.AnalyzeRequest  true  "Analysis request"
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /analyze_taunt [post]
func AnalyzeTauntHandler(gen generation.TextGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if gen == nil {
			logger.Log.Error("API 키가 설정되지 않아 텍스트 분석을 수행할 수 없습니다")
			c.JSON(http.StatusInternalServerError, dto.NewError("API 키가 설정되지 않았습니다."))
			return
		}

		var req dto.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.TauntText == "" {
			c.JSON(http.StatusBadRequest, dto.NewError("분석할 텍스트가 없습니다."))
			return
		}

		analysis, err := generation.AnalyzeTaunt(c.Request.Context(), gen, req.TauntText)
		if err != nil {
			logger.ErrorWithFields("조롱 텍스트 분석 실패", logger.Fields{"error": err.Error()})
			if strings.Contains(err.Error(), "파싱 실패") {
				c.JSON(http.StatusInternalServerError, dto.NewError("분석 결과를 처리하는데 실패했습니다."))
				return
			}
			c.JSON(http.StatusInternalServerError, dto.NewError("분석 중 오류가 발생했습니다: "+err.Error()))
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "analysis": analysis})
	}
}

// DarknessLevelsHandler godoc
// @Summary      List darkness levels
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /get_darkness_levels [get]
func DarknessLevelsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		levels := make([]dto.DarknessLevelDTO, 0, len(prompt.IntensityProfiles))
		for level, p := range prompt.IntensityProfiles {
			levels = append(levels, dto.DarknessLevelDTO{
				Level:       level,
				Name:        p.Name,
				Description: p.Approach,
			})
		}
		sort.Slice(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level })

		c.JSON(http.StatusOK, gin.H{"status": "success", "levels": levels})
	}
}

// HealthHandler godoc
// @Summary      Health check
// @Tags         meta
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /health [get]
func HealthHandler(conn *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if conn == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "disabled"})
			return
		}
		if err := conn.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
	}
}
