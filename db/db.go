// Package db 는 연구 데이터 저장용 SQLite 데이터베이스를 연다.
// 저장은 선택 사항이라, 여기서 실패해도 서버는 저장 없이 동작한다.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"taunt-letter/internal/logger"
)

// Open 은 경로에 SQLite 파일을 열고 스키마를 준비한다.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("데이터 디렉터리 생성 실패: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite 열기 실패: %w", err)
	}
	// modernc sqlite 는 단일 커넥션으로 쓴다.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite 연결 확인 실패: %w", err)
	}

	if err := InitSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	logger.InfoWithFields("연구 데이터베이스 준비 완료", logger.Fields{"path": path})
	return conn, nil
}

// InitSchema 는 연구 테이블 전체를 생성한다. 이미 있으면 그대로 둔다.
func InitSchema(conn *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS emotion_patterns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			emotion_type TEXT NOT NULL,
			trigger_words TEXT,
			psychological_effect TEXT,
			intensity_level INTEGER CHECK (intensity_level BETWEEN 1 AND 10),
			target_demographic TEXT,
			success_rate REAL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS taunt_tone_analysis (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tone_name TEXT NOT NULL,
			description TEXT,
			emotion_triggers TEXT,
			linguistic_features TEXT,
			effectiveness_score REAL,
			age_group TEXT,
			cultural_context TEXT,
			sample_phrases TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS emotion_response_data (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			content_sample TEXT NOT NULL,
			primary_emotion TEXT,
			secondary_emotions TEXT,
			arousal_level INTEGER CHECK (arousal_level BETWEEN 1 AND 10),
			valence_score INTEGER CHECK (valence_score BETWEEN -5 AND 5),
			engagement_metrics TEXT,
			demographic_data TEXT,
			response_time_ms INTEGER,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS taunt_techniques (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			technique_name TEXT NOT NULL,
			category TEXT,
			description TEXT,
			example_usage TEXT,
			psychological_mechanism TEXT,
			effectiveness_rating REAL,
			safety_level INTEGER CHECK (safety_level BETWEEN 1 AND 5),
			cultural_appropriateness TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS training_datasets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			dataset_name TEXT NOT NULL,
			content_type TEXT,
			raw_data TEXT,
			processed_data TEXT,
			metadata TEXT,
			quality_score REAL,
			validation_status TEXT DEFAULT 'pending',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS qa_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT,
			question_text TEXT NOT NULL,
			question_type TEXT,
			user_input TEXT,
			generated_response TEXT,
			response_metadata TEXT,
			quality_metrics TEXT,
			emotion_analysis TEXT,
			tone_used TEXT,
			target_subject TEXT,
			keywords TEXT,
			response_length INTEGER,
			safety_analysis TEXT,
			user_feedback TEXT,
			development_notes TEXT,
			approval_status TEXT DEFAULT 'pending',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS darkness_levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_name TEXT NOT NULL,
			level_number INTEGER NOT NULL,
			description TEXT,
			intensity_score INTEGER CHECK (intensity_score BETWEEN 1 AND 10),
			safety_level INTEGER CHECK (safety_level BETWEEN 1 AND 5),
			psychological_effects TEXT,
			target_emotions TEXT,
			example_characteristics TEXT,
			usage_guidelines TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS development_queue (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			feature_name TEXT NOT NULL,
			feature_type TEXT,
			description TEXT,
			priority_level INTEGER DEFAULT 5,
			technical_requirements TEXT,
			expected_benefits TEXT,
			estimated_complexity INTEGER,
			related_qa_ids TEXT,
			approval_status TEXT DEFAULT 'pending',
			implementation_status TEXT DEFAULT 'queued',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			scheduled_date TEXT,
			completed_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS technique_detection_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			qa_history_id INTEGER,
			technique_name TEXT NOT NULL,
			technique_type TEXT,
			detection_confidence REAL,
			detected_elements TEXT,
			text_sample TEXT,
			tone_used TEXT,
			target_subject TEXT,
			effectiveness_score REAL,
			user_feedback TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (qa_history_id) REFERENCES qa_history(id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("스키마 생성 실패: %w", err)
		}
	}
	return nil
}
