package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"taunt-letter/models"
)

// DevelopmentQueueRepository 는 기능 개발 요청 큐를 다룬다.
type DevelopmentQueueRepository struct {
	db *sql.DB
}

func NewDevelopmentQueueRepository(db *sql.DB) *DevelopmentQueueRepository {
	return &DevelopmentQueueRepository{db: db}
}

// Insert 는 개발 요청 한 건을 큐에 넣는다.
func (r *DevelopmentQueueRepository) Insert(ctx context.Context, req models.DevelopmentRequest) (int64, error) {
	requirements, err := jsonText(req.TechnicalRequirements)
	if err != nil {
		return 0, fmt.Errorf("technical_requirements 직렬화 실패: %w", err)
	}
	benefits, err := jsonText(req.ExpectedBenefits)
	if err != nil {
		return 0, fmt.Errorf("expected_benefits 직렬화 실패: %w", err)
	}
	related, err := jsonText(req.RelatedQAIDs)
	if err != nil {
		return 0, fmt.Errorf("related_qa_ids 직렬화 실패: %w", err)
	}

	priority := req.PriorityLevel
	if priority == 0 {
		priority = 5
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO development_queue
			(feature_name, feature_type, description, priority_level,
			 technical_requirements, expected_benefits, estimated_complexity, related_qa_ids)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.FeatureName, req.FeatureType, req.Description, priority,
		requirements, benefits, req.EstimatedComplexity, related,
	)
	if err != nil {
		return 0, fmt.Errorf("development_queue 저장 실패: %w", err)
	}
	return res.LastInsertId()
}

// ListPending 은 승인 대기 요청을 우선순위 내림차순, 등록 오름차순으로 가져온다.
func (r *DevelopmentQueueRepository) ListPending(ctx context.Context) ([]models.DevelopmentRequest, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, feature_name, feature_type, description, priority_level,
		       estimated_complexity, approval_status, implementation_status, created_at
		FROM development_queue
		WHERE approval_status = 'pending'
		ORDER BY priority_level DESC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("development_queue 조회 실패: %w", err)
	}
	defer rows.Close()

	var out []models.DevelopmentRequest
	for rows.Next() {
		var req models.DevelopmentRequest
		var featureType, desc, createdAt sql.NullString
		if err := rows.Scan(&req.ID, &req.FeatureName, &featureType, &desc, &req.PriorityLevel,
			&req.EstimatedComplexity, &req.ApprovalStatus, &req.ImplementationStatus, &createdAt); err != nil {
			return nil, err
		}
		req.FeatureType = featureType.String
		req.Description = desc.String
		req.CreatedAt = createdAt.String
		out = append(out, req)
	}
	return out, rows.Err()
}
