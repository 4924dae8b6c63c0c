package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestInterpretFullContract(t *testing.T) {
	raw := `{"generated_text":"적당히 놀리는 글","safety_analysis":{"is_safe":true,"safety_message":"안전합니다."}}`

	res := Interpret(raw)

	assert.Equal(t, "적당히 놀리는 글", res.GeneratedText)
	assert.True(t, res.SafetyAnalysis.IsSafe)
	assert.Equal(t, "안전합니다.", res.SafetyAnalysis.SafetyMessage)
}

func TestInterpretNonJSONFallsBackOptimistic(t *testing.T) {
	res := Interpret("  그냥 평문 응답입니다  ")

	assert.Equal(t, "그냥 평문 응답입니다", res.GeneratedText)
	assert.True(t, res.SafetyAnalysis.IsSafe)
	assert.Equal(t, "기본 안전성 검사를 통과했습니다.", res.SafetyAnalysis.SafetyMessage)
}

func TestInterpretMissingSafetyKeyIsPessimistic(t *testing.T) {
	res := Interpret(`{"generated_text":"텍스트만 있음"}`)

	assert.Equal(t, "텍스트만 있음", res.GeneratedText)
	assert.False(t, res.SafetyAnalysis.IsSafe)
	assert.Equal(t, "안전성 분석에 실패했습니다.", res.SafetyAnalysis.SafetyMessage)
}

func TestInterpretMissingTextUsesPlaceholder(t *testing.T) {
	res := Interpret(`{"safety_analysis":{"is_safe":true,"safety_message":"안전합니다."}}`)

	assert.Equal(t, "오류: 텍스트를 생성하지 못했습니다.", res.GeneratedText)
	assert.True(t, res.SafetyAnalysis.IsSafe)
}

func TestAnalyzeTaunt(t *testing.T) {
	stub := &stubGenerator{response: `{"humor_level":"4","wit_score":"3","safety_concern":"없음"}`}

	analysis, err := AnalyzeTaunt(context.Background(), stub, "분석 대상 텍스트")
	require.NoError(t, err)

	assert.Equal(t, "4", analysis["humor_level"])
	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "분석 대상 텍스트")
	assert.Contains(t, stub.prompts[0], "humor_level")
}

func TestAnalyzeTauntParseError(t *testing.T) {
	stub := &stubGenerator{response: "JSON 아님"}

	_, err := AnalyzeTaunt(context.Background(), stub, "텍스트")
	assert.ErrorContains(t, err, "분석 결과 파싱 실패")
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(errors.New("rpc error: API key not valid. Please pass a valid API key.")))
	assert.False(t, IsAuthError(errors.New("deadline exceeded")))
	assert.False(t, IsAuthError(nil))
}
