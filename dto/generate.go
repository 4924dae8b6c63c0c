// Package dto 는 API 입출력 형태 정의다. 내부 처리용 필드는 노출하지 않는다.
package dto

import (
	"taunt-letter/generation"
	"taunt-letter/metadata"
)

// GenerateRequest 는 조롱 텍스트 생성 요청 본문이다.
// tone/length/darkness_level 은 생략 시 핸들러가 기본값을 채운다.
type GenerateRequest struct {
	Target        string `json:"target"`
	Keywords      string `json:"keywords"`
	Tone          string `json:"tone"`
	Length        int    `json:"length"`
	DarknessLevel int    `json:"darkness_level"`
}

// ModelInfo 는 생성에 쓰인 모델 관련 부가 정보다.
type ModelInfo struct {
	ModelName                    string `json:"model_name"`
	Version                      string `json:"version"`
	EmotionTargetingEnabled      bool   `json:"emotion_targeting_enabled"`
	PsychologicalAnalysisEnabled bool   `json:"psychological_analysis_enabled"`
	QALoggingEnabled             bool   `json:"qa_logging_enabled"`
}

// GenerateResponse 는 생성 성공 응답이다.
type GenerateResponse struct {
	Status                       string                    `json:"status"`
	Letter                       string                    `json:"letter"`
	EmotionAnalysis              metadata.EmotionAnalysis  `json:"emotion_analysis"`
	QualityAnalysis              metadata.QualityAnalysis  `json:"quality_analysis"`
	PostGenerationSafetyAnalysis generation.SafetyAnalysis `json:"post_generation_safety_analysis"`
	QAHistoryID                  *int64                    `json:"qa_history_id"`
	GeminiModelInfo              ModelInfo                 `json:"gemini_model_info"`
}

// AnalyzeRequest 는 생성된 텍스트 분석 요청 본문이다.
type AnalyzeRequest struct {
	TauntText string `json:"taunt_text"`
}

// DarknessLevelDTO 는 흑화 단계 목록 항목이다.
type DarknessLevelDTO struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LearningRequest 는 AI 학습 실행 요청 본문이다.
type LearningRequest struct {
	Budget float64 `json:"budget"`
}

// DevelopmentRequestDTO 는 기능 개발 요청 본문이다.
type DevelopmentRequestDTO struct {
	FeatureName         string `json:"feature_name"`
	FeatureType         string `json:"feature_type"`
	Description         string `json:"description"`
	PriorityLevel       int    `json:"priority_level"`
	EstimatedComplexity int    `json:"estimated_complexity"`
}

// ErrorResponse 는 모든 실패 응답의 공통 형태다.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewError(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}
