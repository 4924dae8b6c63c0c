package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLevel5IgnoresTone(t *testing.T) {
	base := Request{Target: "회사 선배", Keywords: "지각", Length: 200, DarknessLevel: 5}

	a := base
	a.Tone = "유머러스하게"
	b := base
	b.Tone = "냉소 톤"

	pa := Build(a)
	pb := Build(b)

	// 5단계는 고정 비평 모드라 톤은 대상 분석 라인에만 찍힌다.
	assert.Contains(t, pa, "5단계 신랄한 비평 모드")
	assert.NotContains(t, pa, "감정선 겨냥 전략")
	assert.NotContains(t, pa, "마스터피스 조롱 예시")
	assert.Equal(t,
		strings.ReplaceAll(pa, "유머러스하게", "X"),
		strings.ReplaceAll(pb, "냉소 톤", "X"))
}

func TestBuildUnknownToneFallsBack(t *testing.T) {
	p := Build(Request{Target: "친구", Keywords: "아무거나", Tone: "존재하지 않는 톤", Length: 150, DarknessLevel: 2})

	assert.Contains(t, p, DefaultToneProfile.Style)
	assert.Contains(t, p, "empathy")
}

func TestBuildAposiopesisBlock(t *testing.T) {
	with := Build(Request{Target: "동료", Keywords: "회의", Tone: "소심한 공격 톤", Length: 100, DarknessLevel: 3})
	without := Build(Request{Target: "동료", Keywords: "회의", Tone: "풍자적", Length: 100, DarknessLevel: 3})

	assert.Contains(t, with, "Aposiopesis Taunt")
	assert.Contains(t, with, "소심한 복수자")
	assert.NotContains(t, without, "Aposiopesis Taunt")
}

func TestBuildPersonaAddons(t *testing.T) {
	egen := Build(Request{Target: "팀장", Keywords: "보고서", Tone: "에겐톤", Length: 100, DarknessLevel: 2})
	teto := Build(Request{Target: "팀장", Keywords: "보고서", Tone: "테토 톤", Length: 100, DarknessLevel: 2})

	assert.Contains(t, egen, "에겐 페르소나 특화 지침")
	assert.NotContains(t, egen, "테토 페르소나 특화 지침")
	assert.Contains(t, teto, "테토 페르소나 특화 지침")
}

func TestMatchTrendFirstWins(t *testing.T) {
	// "연예인"은 entertainment_culture 와 social_inequality 양쪽 키워드지만
	// 선언 순서상 entertainment_culture 가 먼저다.
	trend := MatchTrend("연예인 근황")
	require.NotNil(t, trend)
	assert.Equal(t, "entertainment_culture", trend.Category)

	assert.Nil(t, MatchTrend("전혀 관련 없는 키워드"))
}

func TestBuildTrendFallbackLines(t *testing.T) {
	p := Build(Request{Target: "친구", Keywords: "무매칭키워드", Tone: "유머러스하게", Length: 100, DarknessLevel: 2})

	assert.Contains(t, p, "**일반 트렌드 적용**")
	assert.Contains(t, p, "**기본 댓글 스타일 적용**")
	assert.NotContains(t, p, "**매칭된 트렌드**")
}

func TestAnalyzeWeakness(t *testing.T) {
	cases := []struct {
		keywords string
		want     string
	}{
		{"박사 논문 자랑", WeaknessIntellectualVanity},
		{"SNS 좋아요 중독", WeaknessApprovalSeeking},
		{"명품 플렉스", WeaknessVanity},
		{"하루종일 빈둥거림", WeaknessLethargy},
		{"독특한 취향", WeaknessIsolation},
		{"평범한 일상", WeaknessGeneral},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AnalyzeWeakness(tc.keywords), tc.keywords)
	}
}

func TestBuildJSONInstruction(t *testing.T) {
	plain := Build(Request{Target: "친구", Keywords: "지각", Tone: "유머러스하게", Length: 100, DarknessLevel: 2})
	optimized := Build(Request{Target: "친구", Keywords: "지각", Tone: "유머러스하게", Length: 100, DarknessLevel: 2, OptimizeForJSON: true})

	assert.NotContains(t, plain, "최종 출력 형식 (JSON)")
	assert.Contains(t, optimized, `"generated_text"`)
	assert.Contains(t, optimized, `"safety_analysis"`)
	assert.True(t, strings.HasPrefix(optimized, plain))
}

func TestMasterpieceFormattingCapsAtTwo(t *testing.T) {
	out := formatMasterpieceExamples(RelevantMasterpieces(WeaknessIntellectualVanity))
	assert.Contains(t, out, "**예시 1**")
	assert.Contains(t, out, "**예시 2**")
	assert.NotContains(t, out, "**예시 3**")

	assert.Equal(t, "해당 분야의 마스터피스 사례 준비 중...", formatMasterpieceExamples(nil))
}
