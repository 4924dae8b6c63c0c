// Package middleware 는 공통 gin 미들웨어 묶음이다.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"taunt-letter/internal/logger"
	"taunt-letter/session"
)

// SessionKey 는 gin 컨텍스트에 세션 ID 를 담는 키다.
const SessionKey = "session_id"

const sessionCookie = "session_id"

// RequestLogger 는 요청 한 건마다 메서드/경로/상태/소요시간을 남긴다.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"elapsed_ms": time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			logger.ErrorWithFields("요청 처리 실패", fields)
			return
		}
		logger.InfoWithFields("요청 처리", fields)
	}
}

// Session 은 세션 쿠키를 보장한다. 쿠키가 없거나 만료됐으면 새 ID 를
// 발급해 내려보내고, 핸들러는 컨텍스트에서 SessionKey 로 꺼내 쓴다.
func Session(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Cookie(sessionCookie)
		id, fresh := store.Ensure(current)
		if fresh {
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID 는 컨텍스트에서 세션 ID 를 꺼낸다.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
