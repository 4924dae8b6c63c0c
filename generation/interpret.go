package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"taunt-letter/internal/logger"
)

// SafetyAnalysis 는 생성 결과에 동봉되는 안전성 평가다.
type SafetyAnalysis struct {
	IsSafe        bool   `json:"is_safe"`
	SafetyMessage string `json:"safety_message"`
}

// Result 는 모델 응답을 해석한 최종 산출물이다.
type Result struct {
	GeneratedText  string
	SafetyAnalysis SafetyAnalysis
}

// Interpret 는 모델의 원문 응답을 JSON 계약에 따라 해석한다.
//
// 응답 전체가 JSON 이 아니면 원문을 생성 텍스트로 쓰고 기본 검사 통과로
// 간주한다. 반대로 JSON 파싱에는 성공했는데 safety_analysis 키가 없으면
// 모델이 계약을 어긴 것이므로 실패로 간주한다. 두 방향이 다른 것은
// 의도된 동작이다.
func Interpret(raw string) Result {
	var payload struct {
		GeneratedText  string          `json:"generated_text"`
		SafetyAnalysis *SafetyAnalysis `json:"safety_analysis"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		logger.ErrorWithFields("응답 JSON 파싱 실패", logger.Fields{
			"raw_prefix": truncate(raw, 200),
		})
		return Result{
			GeneratedText:  strings.TrimSpace(raw),
			SafetyAnalysis: SafetyAnalysis{IsSafe: true, SafetyMessage: "기본 안전성 검사를 통과했습니다."},
		}
	}

	res := Result{GeneratedText: payload.GeneratedText}
	if res.GeneratedText == "" {
		res.GeneratedText = "오류: 텍스트를 생성하지 못했습니다."
	}
	if payload.SafetyAnalysis != nil {
		res.SafetyAnalysis = *payload.SafetyAnalysis
	} else {
		res.SafetyAnalysis = SafetyAnalysis{IsSafe: false, SafetyMessage: "안전성 분석에 실패했습니다."}
	}
	return res
}

// TauntAnalysis 는 생성된 텍스트에 대한 2차 분석 결과다.
// 모델이 돌려주는 값의 타입이 들쑥날쑥해서 (숫자가 문자열로 오는 등)
// 원본 JSON 구조를 그대로 보존한다.
type TauntAnalysis map[string]any

const analysisPromptFormat = `
다음 조롱 텍스트를 한국어로 분석해주세요. 모든 응답은 반드시 한국어로 작성해주세요:

"%s"

다음 항목들을 JSON 형식으로 한국어로 분석해주세요:
{
  "humor_level": "1-5점 사이의 숫자",
  "wit_score": "1-5점 사이의 숫자",
  "safety_concern": "안전성 우려사항을 한국어로 간단히 요약",
  "safety_details": "안전성 관련 상세 설명을 한국어로 작성",
  "improvement_suggestions": ["개선 제안을 한국어로 작성", "두 번째 개선 제안을 한국어로 작성"]
}

중요: 모든 텍스트는 반드시 한국어로 작성하고, 영어 단어나 문장은 사용하지 마세요.`

// AnalyzeTaunt 는 생성된 텍스트를 모델에 다시 보내 유머/재치/안전성 평가를 받는다.
func AnalyzeTaunt(ctx context.Context, gen TextGenerator, text string) (TauntAnalysis, error) {
	raw, err := gen.GenerateJSON(ctx, fmt.Sprintf(analysisPromptFormat, text))
	if err != nil {
		return nil, err
	}

	var analysis TauntAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, fmt.Errorf("분석 결과 파싱 실패: %w", err)
	}
	return analysis, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
