// Package analytics 는 qa_history 와 기법 탐지 로그를 집계해
// 사용 패턴 보고서를 만든다.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DailyStat 은 일자별 요청 집계다.
type DailyStat struct {
	Date              string  `json:"date"`
	TotalRequests     int     `json:"total_requests"`
	UniqueUsers       int     `json:"unique_users"`
	AvgResponseLength float64 `json:"avg_response_length"`
}

// ToneStat 은 톤별 사용 집계다.
type ToneStat struct {
	Tone       string  `json:"tone"`
	UsageCount int     `json:"usage_count"`
	AvgQuality float64 `json:"avg_quality"`
	AvgLength  float64 `json:"avg_length"`
}

// TargetStat 은 조롱 대상과 톤 조합의 빈도다.
type TargetStat struct {
	TargetSubject string `json:"target_subject"`
	Tone          string `json:"tone"`
	Frequency     int    `json:"frequency"`
}

// UsagePatternReport 는 기본 사용 패턴 묶음이다.
type UsagePatternReport struct {
	DailyStats  []DailyStat  `json:"daily_stats"`
	ToneStats   []ToneStat   `json:"tone_stats"`
	TargetStats []TargetStat `json:"target_stats"`
}

// TechniqueStat 은 고급 기법별 탐지 집계다.
type TechniqueStat struct {
	TechniqueName    string  `json:"technique_name"`
	Tone             string  `json:"tone"`
	UsageCount       int     `json:"usage_count"`
	AvgConfidence    float64 `json:"avg_confidence"`
	AvgEffectiveness float64 `json:"avg_effectiveness"`
}

// RecentDetection 은 최근 7일 내 탐지된 기법 한 건이다.
type RecentDetection struct {
	TechniqueName string  `json:"technique_name"`
	Tone          string  `json:"tone"`
	TargetSubject string  `json:"target_subject"`
	Confidence    float64 `json:"confidence"`
	TextSample    string  `json:"text_sample"`
	DetectedAt    string  `json:"detected_at"`
}

// TechniqueReport 는 고급 기법 분석 묶음이다.
type TechniqueReport struct {
	TechniqueStats   []TechniqueStat   `json:"technique_stats"`
	RecentDetections []RecentDetection `json:"recent_detections"`
}

// SafetyStat 은 안전성 판정별 집계다.
type SafetyStat struct {
	IsSafe    bool    `json:"is_safe"`
	Count     int     `json:"count"`
	Tone      string  `json:"tone"`
	AvgLength float64 `json:"avg_length"`
}

// RiskPattern 은 위험 판정된 요청의 사유 집계다.
type RiskPattern struct {
	SafetyMessage string `json:"safety_message"`
	Frequency     int    `json:"frequency"`
	Tone          string `json:"tone"`
}

// SafetyReport 는 안전성 분석 묶음이다.
type SafetyReport struct {
	SafetyStats  []SafetyStat  `json:"safety_stats"`
	RiskPatterns []RiskPattern `json:"risk_patterns"`
}

// PreferenceStat 은 세션별 반복 사용 톤 집계다. 같은 톤을 두 번 이상
// 쓴 세션만 센다.
type PreferenceStat struct {
	SessionID      string  `json:"session_id"`
	Tone           string  `json:"tone"`
	UsageCount     int     `json:"usage_count"`
	AvgHumorRating float64 `json:"avg_humor_rating"`
}

// KeywordTrend 는 최근 30일 키워드 출현 빈도다.
type KeywordTrend struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
	Date      string `json:"date"`
}

// PreferenceReport 는 선호도 분석 묶음이다.
type PreferenceReport struct {
	UserPreferences []PreferenceStat `json:"user_preferences"`
	KeywordTrends   []KeywordTrend   `json:"keyword_trends"`
}

// Insight 는 집계 결과에서 뽑은 한 줄 해석이다.
type Insight struct {
	Category       string `json:"category"`
	Insight        string `json:"insight"`
	Recommendation string `json:"recommendation"`
}

// ReportSummary 는 종합 보고서 머리 요약이다.
type ReportSummary struct {
	TotalUsers            int    `json:"total_users"`
	TotalRequests         int    `json:"total_requests"`
	MostPopularTone       string `json:"most_popular_tone"`
	AdvancedTechniqueKind int    `json:"advanced_technique_usage"`
}

// Report 는 종합 분석 보고서다.
type Report struct {
	GeneratedAt        string             `json:"report_generated"`
	Summary            ReportSummary      `json:"summary"`
	UsagePatterns      UsagePatternReport `json:"usage_patterns"`
	TechniqueAnalysis  TechniqueReport    `json:"technique_analysis"`
	SafetyAnalysis     SafetyReport       `json:"safety_analysis"`
	PreferenceAnalysis PreferenceReport   `json:"preference_analysis"`
	Insights           []Insight          `json:"insights"`
}

// Reporter 는 연구 데이터베이스 위에서 집계 쿼리를 돌린다.
type Reporter struct {
	db *sql.DB
}

func NewReporter(db *sql.DB) *Reporter {
	return &Reporter{db: db}
}

// UsagePatterns 는 일자/톤/대상 기준 사용 통계를 모은다.
func (r *Reporter) UsagePatterns(ctx context.Context) (UsagePatternReport, error) {
	var report UsagePatternReport

	rows, err := r.db.QueryContext(ctx, `
		SELECT DATE(created_at) AS day,
		       COUNT(*) AS total_requests,
		       COUNT(DISTINCT session_id) AS unique_users,
		       COALESCE(AVG(response_length), 0) AS avg_response_length
		FROM qa_history
		GROUP BY DATE(created_at)
		ORDER BY day DESC`)
	if err != nil {
		return report, fmt.Errorf("일자별 통계 조회 실패: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s DailyStat
		if err := rows.Scan(&s.Date, &s.TotalRequests, &s.UniqueUsers, &s.AvgResponseLength); err != nil {
			return report, err
		}
		report.DailyStats = append(report.DailyStats, s)
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	toneRows, err := r.db.QueryContext(ctx, `
		SELECT tone_used,
		       COUNT(*) AS usage_count,
		       COALESCE(AVG(json_extract(quality_metrics, '$.readability_score')), 0) AS avg_quality,
		       COALESCE(AVG(response_length), 0) AS avg_length
		FROM qa_history
		WHERE tone_used IS NOT NULL AND tone_used <> ''
		GROUP BY tone_used
		ORDER BY usage_count DESC`)
	if err != nil {
		return report, fmt.Errorf("톤별 통계 조회 실패: %w", err)
	}
	defer toneRows.Close()
	for toneRows.Next() {
		var s ToneStat
		if err := toneRows.Scan(&s.Tone, &s.UsageCount, &s.AvgQuality, &s.AvgLength); err != nil {
			return report, err
		}
		report.ToneStats = append(report.ToneStats, s)
	}
	if err := toneRows.Err(); err != nil {
		return report, err
	}

	targetRows, err := r.db.QueryContext(ctx, `
		SELECT target_subject, tone_used, COUNT(*) AS frequency
		FROM qa_history
		WHERE target_subject IS NOT NULL AND target_subject <> ''
		GROUP BY target_subject, tone_used
		ORDER BY frequency DESC
		LIMIT 20`)
	if err != nil {
		return report, fmt.Errorf("대상별 통계 조회 실패: %w", err)
	}
	defer targetRows.Close()
	for targetRows.Next() {
		var s TargetStat
		if err := targetRows.Scan(&s.TargetSubject, &s.Tone, &s.Frequency); err != nil {
			return report, err
		}
		report.TargetStats = append(report.TargetStats, s)
	}
	return report, targetRows.Err()
}

// TechniquePatterns 는 기법 탐지 로그를 집계한다.
func (r *Reporter) TechniquePatterns(ctx context.Context) (TechniqueReport, error) {
	var report TechniqueReport

	rows, err := r.db.QueryContext(ctx, `
		SELECT technique_name,
		       COALESCE(tone_used, '') AS tone_used,
		       COUNT(*) AS usage_count,
		       COALESCE(AVG(detection_confidence), 0) AS avg_confidence,
		       COALESCE(AVG(effectiveness_score), 0) AS avg_effectiveness
		FROM technique_detection_log
		GROUP BY technique_name, tone_used
		ORDER BY usage_count DESC`)
	if err != nil {
		return report, fmt.Errorf("기법 통계 조회 실패: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s TechniqueStat
		if err := rows.Scan(&s.TechniqueName, &s.Tone, &s.UsageCount, &s.AvgConfidence, &s.AvgEffectiveness); err != nil {
			return report, err
		}
		report.TechniqueStats = append(report.TechniqueStats, s)
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	recentRows, err := r.db.QueryContext(ctx, `
		SELECT t.technique_name,
		       COALESCE(t.tone_used, ''),
		       COALESCE(q.target_subject, ''),
		       COALESCE(t.detection_confidence, 0),
		       COALESCE(t.text_sample, ''),
		       t.created_at
		FROM technique_detection_log t
		JOIN qa_history q ON t.qa_history_id = q.id
		WHERE t.created_at >= datetime('now', '-7 days')
		ORDER BY t.created_at DESC
		LIMIT 10`)
	if err != nil {
		return report, fmt.Errorf("최근 기법 조회 실패: %w", err)
	}
	defer recentRows.Close()
	for recentRows.Next() {
		var d RecentDetection
		if err := recentRows.Scan(&d.TechniqueName, &d.Tone, &d.TargetSubject, &d.Confidence, &d.TextSample, &d.DetectedAt); err != nil {
			return report, err
		}
		report.RecentDetections = append(report.RecentDetections, d)
	}
	return report, recentRows.Err()
}

// SafetyPatterns 는 안전성 판정 분포와 위험 판정 사유를 집계한다.
// is_safe 는 safety_analysis JSON 안에 들어 있다.
func (r *Reporter) SafetyPatterns(ctx context.Context) (SafetyReport, error) {
	var report SafetyReport

	rows, err := r.db.QueryContext(ctx, `
		SELECT json_extract(safety_analysis, '$.is_safe') AS is_safe,
		       COUNT(*) AS count,
		       tone_used,
		       COALESCE(AVG(response_length), 0) AS avg_length
		FROM qa_history
		WHERE safety_analysis IS NOT NULL AND safety_analysis <> ''
		GROUP BY is_safe, tone_used
		ORDER BY count DESC`)
	if err != nil {
		return report, fmt.Errorf("안전성 통계 조회 실패: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s SafetyStat
		var isSafe sql.NullInt64
		if err := rows.Scan(&isSafe, &s.Count, &s.Tone, &s.AvgLength); err != nil {
			return report, err
		}
		s.IsSafe = isSafe.Valid && isSafe.Int64 != 0
		report.SafetyStats = append(report.SafetyStats, s)
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	riskRows, err := r.db.QueryContext(ctx, `
		SELECT COALESCE(json_extract(safety_analysis, '$.safety_message'), '') AS safety_message,
		       COUNT(*) AS frequency,
		       tone_used
		FROM qa_history
		WHERE json_extract(safety_analysis, '$.is_safe') = 0
		GROUP BY safety_message, tone_used
		ORDER BY frequency DESC`)
	if err != nil {
		return report, fmt.Errorf("위험 패턴 조회 실패: %w", err)
	}
	defer riskRows.Close()
	for riskRows.Next() {
		var p RiskPattern
		if err := riskRows.Scan(&p.SafetyMessage, &p.Frequency, &p.Tone); err != nil {
			return report, err
		}
		report.RiskPatterns = append(report.RiskPatterns, p)
	}
	return report, riskRows.Err()
}

// UserPreferences 는 세션별 톤 선호와 최근 30일 키워드 트렌드를 집계한다.
func (r *Reporter) UserPreferences(ctx context.Context) (PreferenceReport, error) {
	var report PreferenceReport

	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id,
		       tone_used,
		       COUNT(*) AS usage_count,
		       COALESCE(AVG(json_extract(quality_metrics, '$.humor_rating')), 0) AS avg_humor_rating
		FROM qa_history
		WHERE session_id IS NOT NULL AND session_id <> ''
		  AND tone_used IS NOT NULL AND tone_used <> ''
		GROUP BY session_id, tone_used
		HAVING COUNT(*) >= 2
		ORDER BY usage_count DESC`)
	if err != nil {
		return report, fmt.Errorf("선호도 조회 실패: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s PreferenceStat
		if err := rows.Scan(&s.SessionID, &s.Tone, &s.UsageCount, &s.AvgHumorRating); err != nil {
			return report, err
		}
		report.UserPreferences = append(report.UserPreferences, s)
	}
	if err := rows.Err(); err != nil {
		return report, err
	}

	// keywords 컬럼은 JSON 배열 텍스트라 json_each 로 푼다.
	trendRows, err := r.db.QueryContext(ctx, `
		SELECT kw.value AS keyword,
		       COUNT(*) AS frequency,
		       DATE(q.created_at) AS day
		FROM qa_history q, json_each(q.keywords) kw
		WHERE q.keywords IS NOT NULL AND q.keywords <> ''
		  AND q.created_at >= datetime('now', '-30 days')
		GROUP BY kw.value, DATE(q.created_at)
		ORDER BY frequency DESC
		LIMIT 50`)
	if err != nil {
		return report, fmt.Errorf("키워드 트렌드 조회 실패: %w", err)
	}
	defer trendRows.Close()
	for trendRows.Next() {
		var t KeywordTrend
		if err := trendRows.Scan(&t.Keyword, &t.Frequency, &t.Date); err != nil {
			return report, err
		}
		report.KeywordTrends = append(report.KeywordTrends, t)
	}
	return report, trendRows.Err()
}

// ComprehensiveReport 는 모든 집계를 모아 요약과 인사이트를 붙인다.
func (r *Reporter) ComprehensiveReport(ctx context.Context) (Report, error) {
	usage, err := r.UsagePatterns(ctx)
	if err != nil {
		return Report{}, err
	}
	techniques, err := r.TechniquePatterns(ctx)
	if err != nil {
		return Report{}, err
	}
	safety, err := r.SafetyPatterns(ctx)
	if err != nil {
		return Report{}, err
	}
	preferences, err := r.UserPreferences(ctx)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		GeneratedAt:        time.Now().Format(time.RFC3339),
		UsagePatterns:      usage,
		TechniqueAnalysis:  techniques,
		SafetyAnalysis:     safety,
		PreferenceAnalysis: preferences,
	}

	report.Summary = ReportSummary{
		MostPopularTone:       "N/A",
		AdvancedTechniqueKind: len(techniques.TechniqueStats),
	}
	for _, d := range usage.DailyStats {
		report.Summary.TotalRequests += d.TotalRequests
		report.Summary.TotalUsers += d.UniqueUsers
	}
	if len(usage.ToneStats) > 0 {
		report.Summary.MostPopularTone = usage.ToneStats[0].Tone
	}

	report.Insights = generateInsights(report)
	return report, nil
}

func generateInsights(report Report) []Insight {
	var insights []Insight

	if len(report.UsagePatterns.ToneStats) > 0 {
		top := report.UsagePatterns.ToneStats[0]
		insights = append(insights, Insight{
			Category:       "톤 사용 패턴",
			Insight:        fmt.Sprintf("가장 인기있는 톤은 '%s'로 %d회 사용되었습니다.", top.Tone, top.UsageCount),
			Recommendation: "이 톤의 성공 요소를 다른 톤에도 적용해보세요.",
		})
	}

	if len(report.SafetyAnalysis.SafetyStats) > 0 {
		var safe, total int
		for _, s := range report.SafetyAnalysis.SafetyStats {
			total += s.Count
			if s.IsSafe {
				safe += s.Count
			}
		}
		ratio := float64(safe) / float64(total)
		recommendation := "안전성 필터를 강화할 필요가 있습니다."
		if ratio > 0.9 {
			recommendation = "위험 요소 탐지 시스템이 효과적으로 작동하고 있습니다."
		}
		insights = append(insights, Insight{
			Category:       "안전성",
			Insight:        fmt.Sprintf("전체 요청의 %.1f%%가 안전한 것으로 판정되었습니다.", ratio*100),
			Recommendation: recommendation,
		})
	}

	if n := len(report.TechniqueAnalysis.TechniqueStats); n > 0 {
		insights = append(insights, Insight{
			Category:       "고급 기법",
			Insight:        fmt.Sprintf("%d가지 고급 기법이 탐지되었습니다.", n),
			Recommendation: "사용자들이 다양한 고급 기법을 활용하고 있어 시스템이 성숙해지고 있습니다.",
		})
	}

	return insights
}
