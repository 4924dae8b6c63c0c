package prompt

// EmotionStrategy 는 톤마다 부여되는 감정선 겨냥 카테고리다.
type EmotionStrategy string

const (
	Superiority      EmotionStrategy = "superiority"
	Empathy          EmotionStrategy = "empathy"
	Catharsis        EmotionStrategy = "catharsis"
	SocialValidation EmotionStrategy = "social_validation"
)

// ToneProfile 은 하나의 톤에 대한 스타일/전략 설정이다.
// 프로세스 시작 시 로드되는 불변 데이터로, 요청 간에 읽기 전용으로 공유된다.
type ToneProfile struct {
	Style             string
	EmotionStrategies []EmotionStrategy
	TargetingMethod   string
	PsychologicalHook string
}

// DefaultToneProfile 은 등록되지 않은 톤 라벨에 대한 폴백이다.
var DefaultToneProfile = ToneProfile{
	Style:             "친근하고 유머러스한 어조",
	EmotionStrategies: []EmotionStrategy{Empathy},
	TargetingMethod:   "공통 경험 기반 공감대 형성",
	PsychologicalHook: "독자의 공감과 재미 유발",
}

// ToneProfiles 는 톤 라벨별 설정 테이블이다.
var ToneProfiles = map[string]ToneProfile{
	"유머러스하게": {
		Style:             "재미있고 밝은 분위기로, 독자가 웃을 수 있는 유머 요소를 포함하여 작성",
		EmotionStrategies: []EmotionStrategy{Empathy, SocialValidation},
		TargetingMethod:   "공통 경험을 우스꽝스럽게 과장하여 공감대 형성 후 공유욕구 자극",
		PsychologicalHook: `독자가 "이거 완전 우리 회사 이야기네 ㅋㅋ" 하며 주변에 보여주고 싶게 만들기`,
	},
	"풍자적": {
		Style:             "비유와 비판을 담아, 간접적으로 놀리는 듯한 느낌으로 작성",
		EmotionStrategies: []EmotionStrategy{Superiority, Catharsis},
		TargetingMethod:   "지적인 비유를 통해 독자의 우월감 자극하며 직접 말하기 어려운 비판 대신 표현",
		PsychologicalHook: `독자가 "역시 이렇게 말해야 품격 있지" 하며 자신의 지적 수준을 확인받는 느낌`,
	},
	"비꼬는 듯이": {
		Style:             "은근히 놀리는 듯한, 살짝 빈정거리는 듯한 어조로 작성",
		EmotionStrategies: []EmotionStrategy{Catharsis, Superiority},
		TargetingMethod:   "간접적 비꼬기로 독자의 억압된 감정 해소 및 도덕적 우위감 제공",
		PsychologicalHook: `독자가 "이렇게 돌려서 말하니까 더 임팩트 있네" 하며 만족감 느끼기`,
	},
	"논리적으로 반박하는": {
		Style:             "팩트와 논리를 기반으로, 상대방의 주장을 차분하지만 효과적으로 반박하는 어조로 작성",
		EmotionStrategies: []EmotionStrategy{Superiority, Catharsis},
		TargetingMethod:   "논리적 근거 제시로 독자의 지적 우월감 충족 및 정의감 만족",
		PsychologicalHook: `독자가 "역시 팩트로 때려야 제맛이지" 하며 지적 만족감 획득`,
	},
	"MZ 반말 톤": {
		Style:             "인터넷 슬랭과 줄임말을 사용하는 친근하고 솔직한 친구 같은 느낌으로 작성",
		EmotionStrategies: []EmotionStrategy{Empathy, SocialValidation},
		TargetingMethod:   "MZ세대 공통 언어로 강한 소속감과 세대 연대감 형성",
		PsychologicalHook: `독자가 "완전 내 또래 말투네 ㅋㅋ 완전 공감" 하며 세대적 동질감 느끼기`,
	},
	"애교 톤": {
		Style:             "귀엽고 사랑스러운 느낌을 주며, 어미를 늘리거나 부드러운 표현을 사용하여 작성",
		EmotionStrategies: []EmotionStrategy{Catharsis, SocialValidation},
		TargetingMethod:   "귀여운 표현으로 독자의 모성/부성본능 자극하며 부드러운 비판으로 카타르시스 제공",
		PsychologicalHook: `독자가 "이렇게 귀엽게 말해도 뼈 있는 말이네" 하며 애정어린 비판으로 받아들이기`,
	},
	"헬창 톤": {
		Style:             "운동 문화 슬랭과 에너지 넘치는 동기부여, 자신감을 표현하는 어조로 작성",
		EmotionStrategies: []EmotionStrategy{Superiority, SocialValidation},
		TargetingMethod:   "운동 문화의 긍정 에너지로 독자의 자신감 부스팅 및 건강한 우월감 제공",
		PsychologicalHook: `독자가 "역시 운동하는 사람 마인드가 다르네" 하며 라이프스타일 우월감 느끼기`,
	},
	"감성 에세이 톤": {
		Style:             "깊이 있고 시적인 표현, 인스타그램 감성 캡션과 같은 문학적인 느낌으로 작성",
		EmotionStrategies: []EmotionStrategy{Catharsis, SocialValidation},
		TargetingMethod:   "감성적 표현으로 독자의 내면 감정 건드리며 심미적 만족감 제공",
		PsychologicalHook: `독자가 "이 글 진짜 감성적이네, 인스타에 올려야지" 하며 감성 공유욕구 자극`,
	},
	"해시태그 스타일": {
		Style:             "인스타그램에서 해시태그를 여러 개 나열하듯이, 트렌디하고 간결하게 작성",
		EmotionStrategies: []EmotionStrategy{SocialValidation, Empathy},
		TargetingMethod:   "SNS 문화 반영으로 트렌드 민감성 자극 및 즉시 공유 가능한 형태 제공",
		PsychologicalHook: `독자가 "이거 완전 인스타 감성이네, 스토리에 올려야지" 하며 즉시 공유 욕구 발생`,
	},
	"초성체 스타일": {
		Style:             "한국어 자음 줄임말(예: ㅇㅈ, ㄹㅇ, ㅊㅋ)을 사용하여 젊은 세대의 대화처럼 작성",
		EmotionStrategies: []EmotionStrategy{Empathy, SocialValidation},
		TargetingMethod:   "세대 특화 언어로 강한 소속감과 세대 연대감 형성",
		PsychologicalHook: `독자가 "ㅋㅋㅋ 이 표현 완전 찰떡" 하며 세대 공감대와 언어적 즐거움 동시 충족`,
	},
	"야민정음 스타일": {
		Style:             "의도적인 오타나 단어 변형(예: 띵작, 커여워)을 활용하여 재미있고 유머러스하게 작성",
		EmotionStrategies: []EmotionStrategy{SocialValidation, Empathy},
		TargetingMethod:   "인터넷 문화의 창의적 언어유희로 독자의 문화 이해도 자랑욕구 및 재미 제공",
		PsychologicalHook: `독자가 "이 표현 알아듣는 나도 인터넷 고수 ㅋㅋ" 하며 문화적 우월감과 재미 동시 획득`,
	},
	"냉소 톤": {
		Style:             "쿨하고 현실적이며, 미묘한 아이러니와 재치를 사용하여 비판적인 시각을 드러내는 어조로 작성",
		EmotionStrategies: []EmotionStrategy{Superiority, Catharsis},
		TargetingMethod:   "현실 인식의 깊이로 독자의 지적 우월감 충족 및 냉정한 비판으로 카타르시스 제공",
		PsychologicalHook: `독자가 "역시 현실을 제대로 아는 사람의 시각이네" 하며 현실 인식력 우월감 느끼기`,
	},
	"정신나간 톤": {
		Style:             "완전 자유분방하고 예측 불가능하며, 밈(meme)과 혼란스러운 에너지를 활용하여 작성",
		EmotionStrategies: []EmotionStrategy{SocialValidation, Catharsis},
		TargetingMethod:   "예측 불가능한 유머로 독자의 일상 스트레스 해소 및 밈 문화 공유욕구 자극",
		PsychologicalHook: `독자가 "이거 완전 미친 거 아니야? ㅋㅋㅋ 친구들한테 보여줘야지" 하며 충격과 재미로 공유 충동 발생`,
	},
	"유튜브 쇼츠 톤": {
		Style:             "짧은 영상 콘텐츠처럼 시선을 사로잡는 오프닝(예: 잠깐! 이거 안보면 후회함)과 간결한 전달 방식으로 작성",
		EmotionStrategies: []EmotionStrategy{SocialValidation, Superiority},
		TargetingMethod:   "어텐션 그래빙으로 즉시 관심 집중 후 쇼츠 문화 이해도로 트렌드 우월감 제공",
		PsychologicalHook: `독자가 "와 이거 완전 쇼츠 감성이네, 진짜 요즘 트렌드 제대로 아는구나" 하며 트렌드 감각 우월감 느끼기`,
	},
	"틱톡 트렌드 톤": {
		Style:             "#hopecore, #coquette 등 틱톡의 바이럴 트렌드와 유행하는 표현을 적극적으로 사용하여 작성",
		EmotionStrategies: []EmotionStrategy{SocialValidation, Empathy},
		TargetingMethod:   "최신 바이럴 트렌드 반영으로 독자의 트렌드 민감성 자극 및 글로벌 문화 동참감 제공",
		PsychologicalHook: `독자가 "오 이 트렌드 나도 알아, 완전 글로벌 감성" 하며 문화적 동참감과 우월감 동시 충족`,
	},
	"에겐톤": {
		Style:             "감수성이 높고 섬세하며, 관계의 조화를 중시하는 간접적이고 부드러운 표현으로 작성. 해요체를 기본으로 하며 완곡어법과 감정적 배려가 풍부함",
		EmotionStrategies: []EmotionStrategy{Empathy, SocialValidation},
		TargetingMethod:   "상대방의 감정을 세심하게 배려하며 갈등을 회피하고 정서적 유대감을 형성하는 관계 지향적 소통",
		PsychologicalHook: `독자가 "이렇게 배려깊게 말해주니 마음이 따뜻해진다" 하며 정서적 안정감과 소속감을 느끼게 함`,
	},
	"테토 톤": {
		Style:             "논리적이고 직설적이며 효율성을 중시하는 단정적 표현으로 작성. 해체나 해라체를 편안하게 사용하며 사실 중심의 명료한 소통을 선호함",
		EmotionStrategies: []EmotionStrategy{Superiority, Catharsis},
		TargetingMethod:   "감정적 위로보다 실질적 해결책 제시를 통해 문제를 효율적으로 해결하려는 행동 지향적 소통",
		PsychologicalHook: `독자가 "역시 이렇게 명확하게 말해야 문제가 해결되지" 하며 논리적 명쾌함과 효율성에 만족감을 느끼게 함`,
	},
	"소심한 공격 톤": {
		Style:             "Aposiopesis 기법을 활용하여 하고 싶은 말은 많지만 용기가 없는 척하며 상대를 더 효과적으로 조롱하는 말줄임 방식으로 작성",
		EmotionStrategies: []EmotionStrategy{Superiority, Catharsis, SocialValidation},
		TargetingMethod:   "직접 공격을 회피하면서도 상대가 스스로 모욕을 완성하게 만드는 고도의 심리전으로 지적 우월감과 카타르시스 동시 제공",
		PsychologicalHook: `독자가 "이런 식으로 공격하는 것도 있구나, 완전 고급 기술이네" 하며 언어적 기교에 대한 감탄과 공유욕구 발생`,
	},
	"말줄임 밈 톤": {
		Style:             "인터넷 밈 문화와 결합된 Aposiopesis 기법으로 바이럴 잠재력을 극대화하며 의도적 미완성 문장과 가짜 당황으로 작성",
		EmotionStrategies: []EmotionStrategy{SocialValidation, Empathy, Catharsis},
		TargetingMethod:   "SNS 밈 문화 반영으로 MZ세대 공감대 형성 및 바이럴 확산 욕구 자극하며 계산된 실수로 재미 창출",
		PsychologicalHook: `독자가 "이거 완전 밈 될 것 같은데? 친구들한테 보여줘야지" 하며 밈 문화 이해도와 트렌드 감각 우월감 느끼기`,
	},
}

// IntensityProfile 은 흑화 단계(1~5)별 설정이다.
type IntensityProfile struct {
	Name      string
	Intensity string
	Approach  string
	Persona   string
}

// IntensityProfiles 는 흑화 단계 테이블이다. 범위를 벗어나면 2단계로 폴백한다.
var IntensityProfiles = map[int]IntensityProfile{
	1: {Name: "순수 유머", Intensity: "매우 약함", Approach: "완전히 건전하고 밝은 유머로만 작성", Persona: "순수한 유머 전문가"},
	2: {Name: "가벼운 놀림", Intensity: "약함", Approach: "친구 사이의 장난스러운 놀림 수준으로 작성", Persona: "친근한 장난 전문가"},
	3: {Name: "날카로운 지적", Intensity: "보통", Approach: "문제점을 명확히 짚어내되 건설적 의도를 포함하여 작성", Persona: "객관적인 비평가"},
	4: {Name: "강한 조롱", Intensity: "강함", Approach: "상당한 감정적 타격을 주되 인격 모독은 피하여 작성", Persona: "신랄한 풍자 작가"},
	5: {Name: "신랄한 비평", Intensity: "매우 강함", Approach: "강한 풍자와 날카로운 지적을 포함하되 창의적 표현으로 작성", Persona: "날카로운 비평가"},
}

// IntensityFor 는 단계별 프로필을 반환한다. 범위 밖이면 2단계.
func IntensityFor(level int) IntensityProfile {
	if p, ok := IntensityProfiles[level]; ok {
		return p
	}
	return IntensityProfiles[2]
}

// ToneFor 는 톤 프로필을 반환한다. 미등록 라벨은 기본 프로필.
func ToneFor(tone string) ToneProfile {
	if p, ok := ToneProfiles[tone]; ok {
		return p
	}
	return DefaultToneProfile
}

// TrendProfile 은 키워드 매칭용 한국 온라인 트렌드 항목이다.
type TrendProfile struct {
	Category     string
	Keywords     []string
	ToneStyle    string
	ViralPattern string
	CommentStyle string
}

// TrendProfiles 는 선언 순서대로 순회한다. 첫 매칭이 승리하며,
// 순서 자체가 동작의 일부이므로 임의로 재배열하지 않는다.
var TrendProfiles = []TrendProfile{
	{
		Category:     "cost_of_living",
		Keywords:     []string{"월세", "물가", "생활비", "집값", "경제", "DSR", "신도시", "대출"},
		ToneStyle:    "현실적이고 냉소적인 톤으로 경제적 어려움에 대한 공감대 형성",
		ViralPattern: "구체적인 금액과 실제 경험담을 통한 충격적 현실 제시",
		CommentStyle: `뉴스 댓글 냉소톤: "이게 대책이라고", "서민들은 그림의 떡"`,
	},
	{
		Category:     "entertainment_culture",
		Keywords:     []string{"영화", "드라마", "아이돌", "연예인", "직캠", "쇼케이스"},
		ToneStyle:    "과몰입과 극찬을 통한 팬덤 감정 표현",
		ViralPattern: "극찬 표현과 감탄사를 통한 감정 폭발",
		CommentStyle: `유튜브 극찬톤: "국보급", "명작 스멜", "알고리즘님 감사"`,
	},
	{
		Category:     "social_dynamics",
		Keywords:     []string{"세대", "직장", "문화", "MZ", "신입사원", "라떼"},
		ToneStyle:    "세대 간 차이를 재치있게 지적하는 풍자적 톤",
		ViralPattern: "공통 경험에 대한 공감대 형성과 세대별 특징 부각",
		CommentStyle: `유튜브 공감톤: "개웃기네", "공감은 간다", "서로 이해하려는 노력"`,
	},
	{
		Category:     "political_social_issues",
		Keywords:     []string{"정부", "정책", "법", "민주주의", "선거", "시민"},
		ToneStyle:    "강한 정치적 비판과 분노 표출",
		ViralPattern: "직접적인 정치 비판과 감정적 반발",
		CommentStyle: `뉴스 분노톤: "민주주의 맞냐", "다음 선거 때 보자", "밀어붙이네"`,
	},
	{
		Category:     "social_inequality",
		Keywords:     []string{"부동산", "연예인", "상대적 박탈감", "서민", "격차"},
		ToneStyle:    "사회적 불평등에 대한 절망과 비관",
		ViralPattern: "현실적 좌절감과 사회 구조적 문제 지적",
		CommentStyle: `뉴스 절망톤: "상대적 박탈감", "한 평생 모아도", "이런 기사 안 보고 싶다"`,
	},
}

// Masterpiece 는 약점 유형별 참고 예시 한 건이다.
type Masterpiece struct {
	Text             string
	Context          string
	Tactic           string
	StimulationIndex int
}

// MasterpieceTaunts 는 심리적 약점 유형별 예시 은행이다.
var MasterpieceTaunts = map[string][]Masterpiece{
	WeaknessIntellectualVanity: {
		{Text: "자네 글은 마치 학사 논문 같군. 아무도 읽지 않겠지만.", Context: "지식을 과시하는 사람에게", Tactic: "지적 자존심 깎아내리기", StimulationIndex: 7},
		{Text: "박사 학위는 있으신가? 아니면 그냥 아는 척하는 건가?", Context: "전문가인 척하는 사람에게", Tactic: "권위에 대한 의문 제기", StimulationIndex: 8},
	},
	WeaknessApprovalSeeking: {
		{Text: "좋아요 구걸하는 것도 능력이라 쳐주자.", Context: "SNS 중독자에게", Tactic: "관심 갈구 비판", StimulationIndex: 6},
		{Text: "인정받고 싶어서 안달난 모습, 보기 안쓰럽네.", Context: "관심을 원하는 사람에게", Tactic: "동정심 유발", StimulationIndex: 7},
	},
	WeaknessVanity: {
		{Text: "그 돈으로 책이라도 사보지 그래?", Context: "사치스러운 사람에게", Tactic: "가치관 비판", StimulationIndex: 5},
		{Text: "명품으로 포장해도 네 속은 텅 비었잖아.", Context: "겉치레에만 신경 쓰는 사람에게", Tactic: "내면의 공허함 지적", StimulationIndex: 8},
	},
	WeaknessLethargy: {
		{Text: "숨 쉬는 것 빼고 뭘 할 수 있지?", Context: "무기력한 사람에게", Tactic: "존재 가치 폄하", StimulationIndex: 6},
		{Text: "그렇게 살 거면 그냥 누워 있는 게 낫지 않아?", Context: "게으른 사람에게", Tactic: "삶의 의욕 저하", StimulationIndex: 7},
	},
	WeaknessIsolation: {
		{Text: "너만 이해할 수 있는 유머는 대체 뭔데?", Context: "특이한 유머를 구사하는 사람에게", Tactic: "소통 단절 비판", StimulationIndex: 5},
		{Text: "혼자만 다른 세상 사는 것 같아.", Context: "튀는 행동을 하는 사람에게", Tactic: "고립감 조성", StimulationIndex: 7},
	},
	WeaknessGeneral: {
		{Text: "그러니까 네가 [문제점]인 거야.", Context: "일반적인 문제점을 지적할 때", Tactic: "단순 비판", StimulationIndex: 4},
		{Text: "세상에 너 같은 사람은 처음 봐.", Context: "특이한 사람에게", Tactic: "관심 집중 (부정적)", StimulationIndex: 5},
	},
}
