package generation

import (
	"context"
	"errors"
	"strings"
	"time"

	"google.golang.org/genai"

	"taunt-letter/internal/logger"
)

const defaultTimeout = 60 * time.Second

// TextGenerator 는 모델 호출 한 번을 추상화한다. 핸들러와 파이프라인은
// 이 인터페이스만 보고, 테스트에서는 스텁으로 대체한다.
type TextGenerator interface {
	// GenerateJSON 은 JSON 응답 모드로 프롬프트를 보내고 원문 텍스트를 돌려준다.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

// Client 는 Gemini 기반 TextGenerator 구현체다.
type Client struct {
	client      *genai.Client
	model       string
	timeout     time.Duration
	temperature *float32
}

// Option 은 Client 생성 옵션이다.
type Option func(*Client)

// WithTemperature 는 호출에 고정 temperature 를 쓴다. 학습 파이프라인은
// 일관된 패턴 추출을 위해 0.3 을 쓴다.
func WithTemperature(t float32) Option {
	return func(c *Client) { c.temperature = genai.Ptr(t) }
}

func NewClient(ctx context.Context, apiKey, model string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, err
	}
	c := &Client{client: client, model: model, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      c.temperature,
	})
	if err != nil {
		logger.ErrorWithFields("Gemini 호출 실패", logger.Fields{
			"model": c.model,
			"error": err.Error(),
		})
		return "", err
	}

	text := result.Text()
	logger.DebugWithFields("Gemini 호출 완료", logger.Fields{
		"model":        c.model,
		"elapsed_ms":   time.Since(start).Milliseconds(),
		"prompt_len":   len(prompt),
		"response_len": len(text),
	})
	return text, nil
}

// IsAuthError 는 API 키 문제로 인한 실패인지 판별한다.
func IsAuthError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "API key not valid")
}
