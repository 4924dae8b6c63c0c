// Package models 는 연구 저장소와 API 사이에서 오가는 레코드 정의다.
package models

// QARecord 는 생성 요청 한 건의 전체 기록이다.
// 구조가 유동적인 필드(메타데이터, 분석 결과)는 JSON 으로 직렬화해 담는다.
type QARecord struct {
	ID                int64          `json:"id"`
	SessionID         string         `json:"session_id"`
	QuestionText      string         `json:"question_text"`
	QuestionType      string         `json:"question_type"`
	UserInput         map[string]any `json:"user_input"`
	GeneratedResponse string         `json:"generated_response"`
	ResponseMetadata  map[string]any `json:"response_metadata"`
	QualityMetrics    any            `json:"quality_metrics"`
	EmotionAnalysis   any            `json:"emotion_analysis"`
	ToneUsed          string         `json:"tone_used"`
	TargetSubject     string         `json:"target_subject"`
	Keywords          []string       `json:"keywords"`
	ResponseLength    int            `json:"response_length"`
	SafetyAnalysis    any            `json:"safety_analysis"`
	DevelopmentNotes  string         `json:"development_notes,omitempty"`
	CreatedAt         string         `json:"created_at,omitempty"`
}

// TrainingDataset 은 학습 데이터 한 건이다.
type TrainingDataset struct {
	ID            int64   `json:"id"`
	DatasetName   string  `json:"dataset_name"`
	ContentType   string  `json:"content_type"`
	RawData       any     `json:"raw_data"`
	ProcessedData any     `json:"processed_data"`
	Metadata      any     `json:"metadata"`
	QualityScore  float64 `json:"quality_score"`
	CreatedAt     string  `json:"created_at,omitempty"`
}

// DarknessLevel 은 흑화 단계 한 건의 저장 형태다.
type DarknessLevel struct {
	ID                     int64    `json:"id"`
	LevelName              string   `json:"level_name"`
	LevelNumber            int      `json:"level_number"`
	Description            string   `json:"description"`
	IntensityScore         int      `json:"intensity_score"`
	SafetyLevel            int      `json:"safety_level"`
	PsychologicalEffects   any      `json:"psychological_effects,omitempty"`
	TargetEmotions         []string `json:"target_emotions,omitempty"`
	ExampleCharacteristics []string `json:"example_characteristics,omitempty"`
	UsageGuidelines        string   `json:"usage_guidelines,omitempty"`
}

// DevelopmentRequest 는 기능 개발 요청 큐의 항목이다.
type DevelopmentRequest struct {
	ID                    int64   `json:"id"`
	FeatureName           string  `json:"feature_name"`
	FeatureType           string  `json:"feature_type"`
	Description           string  `json:"description"`
	PriorityLevel         int     `json:"priority_level"`
	TechnicalRequirements any     `json:"technical_requirements,omitempty"`
	ExpectedBenefits      any     `json:"expected_benefits,omitempty"`
	EstimatedComplexity   int     `json:"estimated_complexity"`
	RelatedQAIDs          []int64 `json:"related_qa_ids,omitempty"`
	ApprovalStatus        string  `json:"approval_status,omitempty"`
	ImplementationStatus  string  `json:"implementation_status,omitempty"`
	CreatedAt             string  `json:"created_at,omitempty"`
}

// TechniqueDetection 은 생성 텍스트에서 탐지된 고급 기법 기록이다.
type TechniqueDetection struct {
	ID                  int64   `json:"id"`
	QAHistoryID         int64   `json:"qa_history_id"`
	TechniqueName       string  `json:"technique_name"`
	TechniqueType       string  `json:"technique_type"`
	DetectionConfidence float64 `json:"detection_confidence"`
	DetectedElements    any     `json:"detected_elements,omitempty"`
	TextSample          string  `json:"text_sample"`
	ToneUsed            string  `json:"tone_used"`
	TargetSubject       string  `json:"target_subject"`
	EffectivenessScore  float64 `json:"effectiveness_score,omitempty"`
}
