package scraper

import (
	"context"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"

	"taunt-letter/internal/logger"
)

// NewsFeed 는 구독할 뉴스 RSS 피드 하나다.
type NewsFeed struct {
	Name   string
	RSSURL string
}

// NewsArticle 은 피드에서 수집한 기사 한 건이다.
type NewsArticle struct {
	Feed        string `json:"feed"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	PublishedAt string `json:"published_at"`
	Content     string `json:"content"`
}

const maxArticlesPerFeed = 10

// FetchNewsArticles 는 피드들을 돌며 최신 기사를 수집한다.
// 본문이 피드에 없으면 원문 페이지에서 추출을 시도하고,
// 피드 하나가 실패해도 나머지는 계속 진행한다.
func FetchNewsArticles(ctx context.Context, feeds []NewsFeed) []NewsArticle {
	parser := gofeed.NewParser()
	articles := []NewsArticle{}

	for _, feed := range feeds {
		parsed, err := parser.ParseURLWithContext(feed.RSSURL, ctx)
		if err != nil {
			logger.WarnWithFields("뉴스 피드 파싱 실패", logger.Fields{
				"feed":  feed.Name,
				"error": err.Error(),
			})
			continue
		}

		count := 0
		for _, item := range parsed.Items {
			if count >= maxArticlesPerFeed {
				break
			}
			articles = append(articles, NewsArticle{
				Feed:        feed.Name,
				Title:       item.Title,
				Link:        item.Link,
				PublishedAt: item.Published,
				Content:     articleContent(item),
			})
			count++
		}

		logger.InfoWithFields("뉴스 피드 수집", logger.Fields{
			"feed":  feed.Name,
			"count": count,
		})
	}
	return articles
}

// articleContent 는 피드 항목에서 본문을 고른다. 피드 자체에 본문이
// 있으면 그걸 쓰고, 없으면 기사 페이지에서 본문 추출을 시도한다.
func articleContent(item *gofeed.Item) string {
	if text := strings.TrimSpace(item.Content); text != "" {
		return text
	}
	if text := strings.TrimSpace(item.Description); text != "" {
		return text
	}
	if item.Link == "" {
		return ""
	}

	article, err := readability.FromURL(item.Link, 10*time.Second)
	if err != nil {
		logger.DebugWithFields("기사 본문 추출 실패", logger.Fields{
			"link":  item.Link,
			"error": err.Error(),
		})
		return ""
	}
	return strings.TrimSpace(article.TextContent)
}
