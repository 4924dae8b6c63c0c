// Package repositories 는 연구 테이블별 삽입/조회 계층이다.
// 저장 실패는 호출부 기능을 막지 않도록 에러만 돌려준다.
package repositories

import "encoding/json"

// jsonText 는 유동 구조 필드를 TEXT 컬럼용 JSON 문자열로 바꾼다.
// nil 은 빈 객체가 아니라 NULL 로 남기고 싶을 때가 많아 빈 문자열을 쓴다.
func jsonText(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
