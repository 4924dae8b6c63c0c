package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"taunt-letter/internal/logger"
)

// exportPayload 는 학습 결과 파일의 최상위 구조다.
type exportPayload struct {
	Metadata struct {
		ExportedAt    string  `json:"exported_at"`
		DataProcessed int     `json:"data_processed"`
		RequestsUsed  int     `json:"requests_used"`
		TotalCost     float64 `json:"total_cost"`
	} `json:"metadata"`
	ProcessedData    []LearningItem  `json:"processed_data"`
	LearningInsights LearningSummary `json:"learning_insights"`
}

// Export 는 학습 실행 결과를 JSON 파일로 저장한다.
func Export(path string, items []LearningItem, summary LearningSummary) error {
	var payload exportPayload
	payload.Metadata.ExportedAt = time.Now().Format(time.RFC3339)
	payload.Metadata.DataProcessed = summary.DataProcessed
	payload.Metadata.RequestsUsed = summary.RequestsUsed
	payload.Metadata.TotalCost = summary.TotalCost
	payload.ProcessedData = items
	payload.LearningInsights = summary

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("학습 결과 직렬화 실패: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("학습 결과 저장 실패: %w", err)
	}

	logger.InfoWithFields("학습 결과 내보내기 완료", logger.Fields{"path": path})
	return nil
}
