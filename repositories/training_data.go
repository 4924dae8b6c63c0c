package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"taunt-letter/models"
)

// TrainingDataRepository 는 학습 데이터 세트를 다룬다.
type TrainingDataRepository struct {
	db *sql.DB
}

func NewTrainingDataRepository(db *sql.DB) *TrainingDataRepository {
	return &TrainingDataRepository{db: db}
}

// Insert 는 학습 샘플 한 건을 저장한다.
func (r *TrainingDataRepository) Insert(ctx context.Context, ds models.TrainingDataset) (int64, error) {
	raw, err := jsonText(ds.RawData)
	if err != nil {
		return 0, fmt.Errorf("raw_data 직렬화 실패: %w", err)
	}
	processed, err := jsonText(ds.ProcessedData)
	if err != nil {
		return 0, fmt.Errorf("processed_data 직렬화 실패: %w", err)
	}
	meta, err := jsonText(ds.Metadata)
	if err != nil {
		return 0, fmt.Errorf("metadata 직렬화 실패: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO training_datasets
			(dataset_name, content_type, raw_data, processed_data, metadata, quality_score)
		VALUES (?, ?, ?, ?, ?, ?)`,
		ds.DatasetName, ds.ContentType, raw, processed, meta, ds.QualityScore,
	)
	if err != nil {
		return 0, fmt.Errorf("training_datasets 저장 실패: %w", err)
	}
	return res.LastInsertId()
}

// ApprovedSample 은 학습 루프에 들어가는 승인된 샘플 요약이다.
type ApprovedSample struct {
	ID            int64
	DatasetName   string
	ContentType   string
	ProcessedData string
	QualityScore  float64
}

// ApprovedForLearning 은 승인 완료에 품질 7.0 이상인 샘플을 최신순으로 가져온다.
func (r *TrainingDataRepository) ApprovedForLearning(ctx context.Context, limit int) ([]ApprovedSample, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, dataset_name, content_type, processed_data, quality_score
		FROM training_datasets
		WHERE validation_status = 'approved' AND quality_score >= 7.0
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("학습 데이터 조회 실패: %w", err)
	}
	defer rows.Close()

	var out []ApprovedSample
	for rows.Next() {
		var s ApprovedSample
		var processed sql.NullString
		if err := rows.Scan(&s.ID, &s.DatasetName, &s.ContentType, &processed, &s.QualityScore); err != nil {
			return nil, err
		}
		s.ProcessedData = processed.String
		out = append(out, s)
	}
	return out, rows.Err()
}

// Approve 는 샘플을 승인 상태로 바꾼다.
func (r *TrainingDataRepository) Approve(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE training_datasets
		SET validation_status = 'approved', updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, id)
	return err
}

// Count 는 전체 샘플 수를 센다.
func (r *TrainingDataRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM training_datasets`).Scan(&n)
	return n, err
}
