package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"taunt-letter/models"
)

// DarknessLevelRepository 는 흑화 단계 연구 데이터를 다룬다.
type DarknessLevelRepository struct {
	db *sql.DB
}

func NewDarknessLevelRepository(db *sql.DB) *DarknessLevelRepository {
	return &DarknessLevelRepository{db: db}
}

// Insert 는 흑화 단계 한 건을 저장한다.
func (r *DarknessLevelRepository) Insert(ctx context.Context, lvl models.DarknessLevel) (int64, error) {
	effects, err := jsonText(lvl.PsychologicalEffects)
	if err != nil {
		return 0, fmt.Errorf("psychological_effects 직렬화 실패: %w", err)
	}
	emotions, err := jsonText(lvl.TargetEmotions)
	if err != nil {
		return 0, fmt.Errorf("target_emotions 직렬화 실패: %w", err)
	}
	examples, err := jsonText(lvl.ExampleCharacteristics)
	if err != nil {
		return 0, fmt.Errorf("example_characteristics 직렬화 실패: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO darkness_levels
			(level_name, level_number, description, intensity_score, safety_level,
			 psychological_effects, target_emotions, example_characteristics, usage_guidelines)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		lvl.LevelName, lvl.LevelNumber, lvl.Description, lvl.IntensityScore, lvl.SafetyLevel,
		effects, emotions, examples, lvl.UsageGuidelines,
	)
	if err != nil {
		return 0, fmt.Errorf("darkness_levels 저장 실패: %w", err)
	}
	return res.LastInsertId()
}

// List 는 전체 단계를 번호 오름차순으로 가져온다.
func (r *DarknessLevelRepository) List(ctx context.Context) ([]models.DarknessLevel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, level_name, level_number, description, intensity_score, safety_level
		FROM darkness_levels
		ORDER BY level_number ASC`)
	if err != nil {
		return nil, fmt.Errorf("darkness_levels 조회 실패: %w", err)
	}
	defer rows.Close()

	var out []models.DarknessLevel
	for rows.Next() {
		var lvl models.DarknessLevel
		var desc sql.NullString
		if err := rows.Scan(&lvl.ID, &lvl.LevelName, &lvl.LevelNumber, &desc,
			&lvl.IntensityScore, &lvl.SafetyLevel); err != nil {
			return nil, err
		}
		lvl.Description = desc.String
		out = append(out, lvl)
	}
	return out, rows.Err()
}
