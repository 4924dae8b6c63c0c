package analyzer

// SimulatedComments 는 수집기가 없을 때 쓰는 뉴스/유튜브 댓글 표본이다.
// 실제 플랫폼별 댓글 문화를 본뜬 고정 데이터로, 관리자 학습 적재
// 엔드포인트의 기본 입력이 된다.
var SimulatedComments = []Comment{
	{
		Source:             "simulated_naver_news_comment",
		Title:              "[속보] 정부, 3기 신도시 추가 공급 및 DSR 규제 완화 발표",
		Content:            "이게 대책이라고 내놓은건가? 집값 잡을 생각은 없고 그냥 건설사들 배만 불려주자는 거잖아. 서민들은 어차피 대출도 안나와서 그림의 떡임.",
		Score:              5820,
		NumComments:        1250,
		DataType:           "policy_criticism",
		SpeechPattern:      "news_comment_cynical",
		EmotionalIntensity: 9.3,
		Stance:             "negative",
	},
	{
		Source:             "simulated_youtube_comment",
		Title:              "영화 '광해 2' 예고편 최초 공개! 배우 이병헌 1인 2역 복귀",
		Content:            "와... 예고편만 봤는데 벌써 명작 스멜이 난다. 이병헌 연기는 진짜 국보급이네. 천만 관객 그냥 넘을 듯 ㄷㄷ",
		Score:              12000,
		NumComments:        3400,
		DataType:           "entertainment_reaction",
		SpeechPattern:      "youtube_comment_praise",
		EmotionalIntensity: 9.0,
		Stance:             "positive",
	},
	{
		Source:             "simulated_daum_news_comment",
		Title:              "역대급 폭염에 전력수급 '경고'… 7월인데 벌써 38도",
		Content:            "지구가 진짜 아프긴 한가 보네요... 다들 더위 조심하시고, 특히 야외에서 일하시는 분들 정말 고생 많으십니다. 정부는 전기세 지원 같은 대책 좀 세워주세요.",
		Score:              3500,
		NumComments:        880,
		DataType:           "social_concern",
		SpeechPattern:      "news_comment_empathetic",
		EmotionalIntensity: 7.5,
		Stance:             "concerned_neutral",
	},
	{
		Source:             "simulated_youtube_comment",
		Title:              "요즘 MZ 신입사원 특징.mp4 (feat. 라떼는 말이야)",
		Content:            "ㅋㅋㅋㅋㅋ 개웃기네 진짜 우리 회사 부장님 보는 줄. 근데 솔직히 서로 이해하려는 노력이 필요함. 저렇게까지 하는 신입은 없지만 어느 정도 공감은 간다.",
		Score:              8800,
		NumComments:        2100,
		DataType:           "generational_humor",
		SpeechPattern:      "youtube_comment_relatable",
		EmotionalIntensity: 8.2,
		Stance:             "humorous_neutral",
	},
	{
		Source:             "simulated_naver_news_comment",
		Title:              "논란의 'OOO법' 국회 통과… 시민단체 강력 반발",
		Content:            "이게 민주주의 국가 맞냐? 국민 의견은 싹 다 무시하고 그냥 밀어붙이네. 다음 선거 때 보자.",
		Score:              7600,
		NumComments:        3200,
		DataType:           "political_opposition",
		SpeechPattern:      "news_comment_aggressive",
		EmotionalIntensity: 9.8,
		Stance:             "strong_negative",
	},
	{
		Source:             "simulated_youtube_comment",
		Title:              "[4K 직캠] XXX 아이돌 신곡 'FANTASY' 쇼케이스 무대",
		Content:            "알고리즘님, 저를 이곳으로 인도해주셔서 감사합니다... 매일 보러 오겠습니다. 1일 1직캠 필수.",
		Score:              25000,
		NumComments:        5500,
		DataType:           "fandom_worship",
		SpeechPattern:      "youtube_comment_fandom",
		EmotionalIntensity: 9.5,
		Stance:             "strong_positive",
	},
	{
		Source:             "simulated_daum_news_comment",
		Title:              "[단독] 유명 연예인 OOO, 100억대 건물 매입",
		Content:            "이런 기사 좀 안 보고 싶다. 상대적 박탈감만 드네. 서민들은 한 평생 모아도 대출 갚기 힘든데...",
		Score:              4100,
		NumComments:        1500,
		DataType:           "social_criticism",
		SpeechPattern:      "news_comment_despair",
		EmotionalIntensity: 8.0,
		Stance:             "negative",
	},
	{
		Source:             "simulated_youtube_comment",
		Title:              "10분만에 이해하는 양자역학",
		Content:            "와... 설명을 너무 잘해주셔서 문과생인데 처음으로 이해했어요. 10분 순삭이네요. 구독하고 갑니다!",
		Score:              15000,
		NumComments:        2800,
		DataType:           "educational_feedback",
		SpeechPattern:      "youtube_comment_appreciation",
		EmotionalIntensity: 7.0,
		Stance:             "positive",
	},
}
