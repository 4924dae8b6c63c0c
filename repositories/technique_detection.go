package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"taunt-letter/models"
)

// TechniqueDetectionRepository 는 고급 기법 탐지 로그를 다룬다.
type TechniqueDetectionRepository struct {
	db *sql.DB
}

func NewTechniqueDetectionRepository(db *sql.DB) *TechniqueDetectionRepository {
	return &TechniqueDetectionRepository{db: db}
}

// Insert 는 탐지 결과 한 건을 저장한다.
func (r *TechniqueDetectionRepository) Insert(ctx context.Context, det models.TechniqueDetection) (int64, error) {
	elements, err := jsonText(det.DetectedElements)
	if err != nil {
		return 0, fmt.Errorf("detected_elements 직렬화 실패: %w", err)
	}

	var qaID any
	if det.QAHistoryID > 0 {
		qaID = det.QAHistoryID
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO technique_detection_log
			(qa_history_id, technique_name, technique_type, detection_confidence,
			 detected_elements, text_sample, tone_used, target_subject, effectiveness_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		qaID, det.TechniqueName, det.TechniqueType, det.DetectionConfidence,
		elements, det.TextSample, det.ToneUsed, det.TargetSubject, det.EffectivenessScore,
	)
	if err != nil {
		return 0, fmt.Errorf("technique_detection_log 저장 실패: %w", err)
	}
	return res.LastInsertId()
}

// TechniqueUsage 는 기법별 사용 통계 한 줄이다.
type TechniqueUsage struct {
	TechniqueName    string  `json:"technique_name"`
	UsageCount       int     `json:"usage_count"`
	AvgConfidence    float64 `json:"avg_confidence"`
	AvgEffectiveness float64 `json:"avg_effectiveness"`
}

// UsageStatistics 는 기법별 사용 횟수와 평균 신뢰도를 집계한다.
// name 이 비어 있으면 전체 기법을 대상으로 한다.
func (r *TechniqueDetectionRepository) UsageStatistics(ctx context.Context, name string) ([]TechniqueUsage, error) {
	query := `
		SELECT technique_name, COUNT(*) AS usage_count,
		       COALESCE(AVG(detection_confidence), 0),
		       COALESCE(AVG(effectiveness_score), 0)
		FROM technique_detection_log`
	args := []any{}
	if name != "" {
		query += ` WHERE technique_name = ?`
		args = append(args, name)
	}
	query += `
		GROUP BY technique_name
		ORDER BY usage_count DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("기법 통계 조회 실패: %w", err)
	}
	defer rows.Close()

	var out []TechniqueUsage
	for rows.Next() {
		var u TechniqueUsage
		if err := rows.Scan(&u.TechniqueName, &u.UsageCount, &u.AvgConfidence, &u.AvgEffectiveness); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
