package prompt

import (
	"fmt"
	"strings"
)

// 심리적 약점 유형 라벨. 한국어 라벨이 그대로 데이터 키로 쓰인다.
const (
	WeaknessIntellectualVanity = "지적_허영심"
	WeaknessApprovalSeeking    = "인정_욕구"
	WeaknessVanity             = "허영심"
	WeaknessLethargy           = "무기력감"
	WeaknessIsolation          = "소외감"
	WeaknessGeneral            = "일반적_약점"
)

var weaknessKeywords = []struct {
	weakness string
	words    []string
}{
	{WeaknessIntellectualVanity, []string{"똑똑", "지식", "박사", "전문가", "분석"}},
	{WeaknessApprovalSeeking, []string{"인정", "관심", "칭찬", "좋아요", "sns"}},
	{WeaknessVanity, []string{"돈", "명품", "자랑", "과시", "성공"}},
	{WeaknessLethargy, []string{"게으름", "암것도", "빈둥", "놀림"}},
	{WeaknessIsolation, []string{"특이", "이상", "독특"}},
}

var weaknessEnhancements = map[string]string{
	WeaknessIntellectualVanity: "상대방의 지식 자랑이나 아는 척하는 행동을 미묘하게 지적하여 지적 우월감을 자극",
	WeaknessApprovalSeeking:    "관심받고 싶어하는 행동 패턴을 드러내어 독자의 심리적 우위감 조성",
	WeaknessVanity:             "겉치레나 과시에 치중하는 모습을 대비시켜 내실의 중요성 부각",
	WeaknessLethargy:           "소극적이고 수동적인 태도를 지적하여 행동력의 중요성 강조",
	WeaknessIsolation:          "독특함을 추구하는 모습을 통해 소통의 어려움 부각",
	WeaknessGeneral:            "보편적인 인간의 약점을 재치있게 지적하여 공감대 형성",
}

// AnalyzeWeakness 는 키워드 문자열에서 심리적 약점 유형을 추정한다.
// 매칭 그룹의 선언 순서대로 검사하며, 어디에도 걸리지 않으면 일반 유형이다.
func AnalyzeWeakness(keywords string) string {
	lower := strings.ToLower(keywords)
	for _, group := range weaknessKeywords {
		for _, w := range group.words {
			if strings.Contains(lower, w) {
				return group.weakness
			}
		}
	}
	return WeaknessGeneral
}

// WeaknessEnhancement 는 약점 유형에 대응하는 강화 전략 문구를 반환한다.
func WeaknessEnhancement(weaknessType string) string {
	if s, ok := weaknessEnhancements[weaknessType]; ok {
		return s
	}
	return "일반적인 약점 지적을 통한 우월감 자극"
}

// MatchTrend 는 키워드와 겹치는 첫 트렌드를 반환한다. 없으면 nil.
// TrendProfiles 의 선언 순서가 우선순위다.
func MatchTrend(keywords string) *TrendProfile {
	lower := strings.ToLower(keywords)
	for i := range TrendProfiles {
		for _, kw := range TrendProfiles[i].Keywords {
			if strings.Contains(lower, kw) {
				return &TrendProfiles[i]
			}
		}
	}
	return nil
}

// RelevantMasterpieces 는 약점 유형에 대응하는 예시 목록을 반환한다.
func RelevantMasterpieces(weaknessType string) []Masterpiece {
	if list, ok := MasterpieceTaunts[weaknessType]; ok {
		return list
	}
	return MasterpieceTaunts[WeaknessGeneral]
}

func formatMasterpieceExamples(examples []Masterpiece) string {
	if len(examples) == 0 {
		return "해당 분야의 마스터피스 사례 준비 중..."
	}
	var b strings.Builder
	for i, ex := range examples {
		if i >= 2 { // 최대 2개
			break
		}
		fmt.Fprintf(&b, `
**예시 %d**: "%s"
- 상황: %s
- 심리 전술: %s
- 자극 지수: %d/10
`, i+1, ex.Text, ex.Context, ex.Tactic, ex.StimulationIndex)
	}
	return b.String()
}

// UsesAposiopesis 는 말줄임 조롱 기법을 쓰는 톤인지 판별한다.
func UsesAposiopesis(tone string) bool {
	return tone == "소심한 공격 톤" || tone == "말줄임 밈 톤"
}

func aposiopesisAddition(tone, target, keywords string) string {
	if !UsesAposiopesis(tone) {
		return ""
	}
	return fmt.Sprintf(`

**Aposiopesis Taunt (말줄임 조롱) 기법 적용**

당신은 이제 **소심한 복수자** 페르소나로 변신합니다. 하고 싶은 말은 많지만 대놓고 말할 용기는 없는 척하며, 상대방이 스스로 모욕을 완성하게 만드는 고도의 심리전을 구사합니다.

**3단계 Aposiopesis 생성 규칙:**

**1단계: 공격 시동** - %s의 %s와 관련된 가장 아픈 부분을 찌를 수 있는 공격적인 단어나 문장을 시작하되, 가장 핵심적인 단어는 절대 먼저 말하지 마세요
**2단계: 급작스러운 중단** - 핵심 단어가 나오기 직전에 "..." 또는 "어?" 등을 사용하여 말을 끊으세요
**3단계: 위선적 수습** - 마치 큰 실수를 한 것처럼 급하게 말을 수습하세요

**심리적 효과 목표:** 독자가 스스로 모욕을 완성하게 만들면서 당신은 끝까지 착한 사람으로 남기
`, target, keywords)
}

// marketingEnhancement 는 과거 마케팅 분석 모듈의 자리이며 현재는 고정 문구만 낸다.
func marketingEnhancement(tone, target, keywords string) string {
	return "마케팅 전략 분석 기능은 현재 비활성화 상태입니다."
}

// Request 는 프롬프트 조립에 필요한 입력 전부다.
type Request struct {
	Target        string
	Keywords      string
	Tone          string
	Length        int
	DarknessLevel int
	// OptimizeForJSON 이 켜지면 JSON 스키마 출력 지시가 덧붙는다.
	OptimizeForJSON bool
}

// Build 는 요청을 완성된 프롬프트 텍스트로 조립한다.
// 5단계는 톤과 무관한 고정 비평 모드로 분기하며, 1~4단계는
// 약점 분석 → 트렌드 매칭 → 예시 → 커뮤니티 화법 → 톤 전략 순서로 쌓는다.
func Build(req Request) string {
	darkness := IntensityFor(req.DarknessLevel)
	var b strings.Builder

	if req.DarknessLevel == 5 {
		fmt.Fprintf(&b, `
당신은 날카로운 비평가입니다. 다음 정보를 바탕으로 '%s'에 대한 신랄하지만 재치있는 비평 텍스트를 생성해주세요.

**🔥 5단계 신랄한 비평 모드**
이 단계에서는 강한 풍자와 날카로운 지적을 포함하되, 창의적 표현으로 작성합니다.

**대상 분석:**
- 조롱 대상: %s
- 핵심 키워드: %s
- 목표 톤: %s
- 흑화 단계: %s (%s)

**5단계 비평 지침:**
1. 날카로운 관찰과 신랄한 지적 활용
2. 창의적 비유와 풍자로 약점 부각
3. 강한 어조와 직설적 표현 사용
4. 심리적 임팩트를 극대화하는 내용 작성
5. 사회적 현실을 반영한 냉정한 분석

**길이:** 약 %d자
`, req.Target, req.Target, req.Keywords, req.Tone, darkness.Name, darkness.Intensity, req.Length)
	} else {
		weaknessType := AnalyzeWeakness(req.Keywords)
		examples := formatMasterpieceExamples(RelevantMasterpieces(weaknessType))
		trend := MatchTrend(req.Keywords)

		trendLines := []string{"**일반 트렌드 적용**", "**기본 톤 적용**", "**기본 패턴 적용**", "**기본 댓글 스타일 적용**"}
		if trend != nil {
			trendLines = []string{
				fmt.Sprintf("**매칭된 트렌드**: %s", trend.Category),
				fmt.Sprintf("**톤 스타일**: %s", trend.ToneStyle),
				fmt.Sprintf("**바이럴 패턴**: %s", trend.ViralPattern),
				fmt.Sprintf("**댓글 문화 반영**: %s", trend.CommentStyle),
			}
		}

		fmt.Fprintf(&b, `
당신은 **%s**입니다. 다음 정보를 바탕으로 '%s'에 대한 %s 스타일의 텍스트를 생성해주세요.

**대상 분석:**
- 조롱 대상: %s
- 핵심 키워드: %s
- 목표 톤: %s
- 흑화 단계: %s (%s)
- 추정 심리적 특성: %s

**2025년 한국 온라인 문화 트렌드 반영:**
%s
%s
%s
%s

**참고: 마스터피스 조롱 예시:**
%s

**2025년 인기 커뮤니티 화법 적용:**
- **더쿠 스타일**: 감정 강화어 활용 (진짜, 완전, 개, 미친) + 반응 패턴 (ㅋㅋㅋ, ㅠㅠ, 헐)
- **엠팍 스타일**: 논리적 권위 표현 (팩트, 객관적으로, 경험상) + 경쟁 언어 (압도, 완승, 우위)
- **인스티즈 스타일**: 미적 언어 (레전드, 찰떡, 취향저격) + 감정 표현 (심쿵, 개좋아)

**세부 지침:**
1. 제시된 심리적 약점을 활용하여 비판적 시각을 강화하세요.
2. 2025년 Reddit 트렌드와 한국 커뮤니티 화법을 적극 반영하세요.
3. 마스터피스 조롱 예시를 참고하여 창의적 표현을 구사하세요.
4. [대상]의 [구체적인 행동]에 대해 [톤]을 사용하여 조롱하세요.
5. [흑화 단계]에 맞는 강도로 감정적 임팩트를 극대화하세요.
6. 바이럴 확산 가능성을 고려한 공감대 형성과 공유 욕구 자극 요소 포함하세요.

**길이:** 약 %d자
`, darkness.Persona, req.Target, req.Tone,
			req.Target, req.Keywords, req.Tone, darkness.Name, darkness.Intensity, weaknessType,
			trendLines[0], trendLines[1], trendLines[2], trendLines[3],
			examples, req.Length)

		switch req.Tone {
		case "에겐톤":
			fmt.Fprintf(&b, `

**🎭 에겐 페르소나 특화 지침**

당신은 이제 **감수성이 높고 관계 지향적인 에겐 페르소나**로 변신합니다.

**핵심 언어적 전략:**
1. **해요체 중심 사용**: 기본적으로 '해요체'를 사용하여 심리적 거리를 좁히면서도 예의를 지킴
2. **완곡어법 활용**: "혹시", "저기", "...인 것 같아요", "...라고 볼 수도 있겠네요" 등으로 단정을 피함
3. **감정적 배려**: 상대방의 감정 상태를 세심하게 고려한 표현 사용
4. **관계 노동**: 갈등을 회피하고 조화로운 분위기 조성에 집중

이제 '%s'에 대해 에겐 페르소나의 섬세하고 배려 깊은 방식으로 표현해주세요.
`, req.Target)
		case "테토 톤":
			fmt.Fprintf(&b, `

**⚡ 테토 페르소나 특화 지침**

당신은 이제 **논리적이고 효율성을 중시하는 테토 페르소나**로 변신합니다.

**핵심 언어적 전략:**
1. **직설적 표현**: 해체나 평서문을 사용하여 명확하고 단정적으로 표현
2. **사실 중심**: 감정적 수식어보다는 객관적 사실과 논리에 기반
3. **효율성 우선**: 불필요한 완곡어법 없이 핵심만 간결하게 전달
4. **문제 해결 지향**: 감정적 위로보다는 실질적 해결책 제시

이제 '%s'에 대해 테토 페르소나의 직설적이고 효율적인 방식으로 표현해주세요.
`, req.Target)
		}

		tc := ToneFor(req.Tone)
		strategies := make([]string, len(tc.EmotionStrategies))
		for i, s := range tc.EmotionStrategies {
			strategies[i] = string(s)
		}

		fmt.Fprintf(&b, `

**감정선 겨냥 전략:**
- 스타일: %s
- 감정 전략: %s
- 타겟팅 방법: %s
- 심리적 훅: %s

**마케팅 전략 최적화:**
%s

%s

**창작 가이드라인:**
- 건전한 수준의 놀림과 지적은 허용
- 유머러스한 과장과 재치있는 비판 활용
- 한글, 영문, 숫자, 기본 문장부호 사용
- 창의적 비유와 풍자로 재미 창출
`, tc.Style, strings.Join(strategies, ", "), tc.TargetingMethod, tc.PsychologicalHook,
			marketingEnhancement(req.Tone, req.Target, req.Keywords),
			aposiopesisAddition(req.Tone, req.Target, req.Keywords))
	}

	if req.OptimizeForJSON {
		b.WriteString(`

---
**최종 출력 형식 (JSON)**

이제까지의 모든 지침을 종합하여, 다음 JSON 스키마에 맞춰 결과를 생성해주세요.
모든 텍스트는 반드시 한국어로 작성되어야 합니다.

` + "```json" + `
{
  "generated_text": "[여기에 최종적으로 생성된 조롱 텍스트를 작성]",
  "safety_analysis": {
    "is_safe": [true 또는 false],
    "safety_message": "[안전성 평가 메시지. '안전합니다.' 또는 구체적인 우려 사항을 작성]"
  }
}
` + "```" + `

이제 JSON 형식으로 최종 결과물을 생성해주세요:
`)
	}

	return b.String()
}
