package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"taunt-letter/models"
)

// QAHistoryRepository 는 생성 요청/응답 기록을 다룬다.
type QAHistoryRepository struct {
	db *sql.DB
}

func NewQAHistoryRepository(db *sql.DB) *QAHistoryRepository {
	return &QAHistoryRepository{db: db}
}

// Insert 는 기록 한 건을 저장하고 생성된 id 를 반환한다.
func (r *QAHistoryRepository) Insert(ctx context.Context, rec models.QARecord) (int64, error) {
	userInput, err := jsonText(rec.UserInput)
	if err != nil {
		return 0, fmt.Errorf("user_input 직렬화 실패: %w", err)
	}
	responseMeta, err := jsonText(rec.ResponseMetadata)
	if err != nil {
		return 0, fmt.Errorf("response_metadata 직렬화 실패: %w", err)
	}
	quality, err := jsonText(rec.QualityMetrics)
	if err != nil {
		return 0, fmt.Errorf("quality_metrics 직렬화 실패: %w", err)
	}
	emotion, err := jsonText(rec.EmotionAnalysis)
	if err != nil {
		return 0, fmt.Errorf("emotion_analysis 직렬화 실패: %w", err)
	}
	safety, err := jsonText(rec.SafetyAnalysis)
	if err != nil {
		return 0, fmt.Errorf("safety_analysis 직렬화 실패: %w", err)
	}
	keywords, err := jsonText(rec.Keywords)
	if err != nil {
		return 0, fmt.Errorf("keywords 직렬화 실패: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO qa_history
			(session_id, question_text, question_type, user_input, generated_response,
			 response_metadata, quality_metrics, emotion_analysis, tone_used,
			 target_subject, keywords, response_length, safety_analysis, development_notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.QuestionText, rec.QuestionType, userInput, rec.GeneratedResponse,
		responseMeta, quality, emotion, rec.ToneUsed,
		rec.TargetSubject, keywords, rec.ResponseLength, safety, rec.DevelopmentNotes,
	)
	if err != nil {
		return 0, fmt.Errorf("qa_history 저장 실패: %w", err)
	}
	return res.LastInsertId()
}

// CountBySession 은 세션별 기록 수를 센다.
func (r *QAHistoryRepository) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM qa_history WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}
