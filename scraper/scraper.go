// Package scraper 는 공개 소스에서 한국어 커뮤니티 데이터를 수집한다.
// 외부 수집이 막히면 시뮬레이션 데이터로 대체해 파이프라인이 끊기지 않게 한다.
package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"time"

	"taunt-letter/analyzer"
	"taunt-letter/internal/logger"
)

// CommunityPost 는 수집된 커뮤니티 게시물 한 건이다.
type CommunityPost struct {
	Source             string  `json:"source"`
	Title              string  `json:"title"`
	Content            string  `json:"content"`
	Score              int     `json:"score"`
	NumComments        int     `json:"num_comments"`
	CreatedUTC         float64 `json:"created_utc"`
	URL                string  `json:"url,omitempty"`
	Subreddit          string  `json:"subreddit,omitempty"`
	DataType           string  `json:"data_type"`
	SpeechPattern      string  `json:"speech_pattern,omitempty"`
	EmotionalIntensity float64 `json:"emotional_intensity,omitempty"`
}

// Scraper 는 Reddit 공개 JSON 과 시뮬레이션 뱅크에서 게시물을 모은다.
type Scraper struct {
	client    *http.Client
	redditURL string
	userAgent string
	maxPosts  int
	rng       *rand.Rand
}

func New(redditURL, userAgent string, maxPosts int) *Scraper {
	if maxPosts <= 0 {
		maxPosts = 50
	}
	return &Scraper{
		client:    &http.Client{Timeout: 15 * time.Second},
		redditURL: redditURL,
		userAgent: userAgent,
		maxPosts:  maxPosts,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var koreanPattern = regexp.MustCompile(`[ㄱ-ㅎㅏ-ㅣ가-힣]`)

// ContainsKorean 은 텍스트에 한글이 포함되어 있는지 본다.
func ContainsKorean(text string) bool {
	return koreanPattern.MatchString(text)
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
				CreatedUTC  float64 `json:"created_utc"`
				URL         string  `json:"url"`
				Subreddit   string  `json:"subreddit"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// FetchRedditPosts 는 공개 JSON 엔드포인트에서 한국어 게시물을 수집한다.
// 네트워크 실패 시 에러를 돌려주고, 대체 데이터 판단은 호출부가 한다.
func (s *Scraper) FetchRedditPosts(ctx context.Context) ([]CommunityPost, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.redditURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reddit 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit 응답 코드 %d", resp.StatusCode)
	}

	var listing redditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("reddit 응답 파싱 실패: %w", err)
	}

	posts := []CommunityPost{}
	for _, child := range listing.Data.Children {
		if len(posts) >= s.maxPosts {
			break
		}
		d := child.Data
		if !ContainsKorean(d.Title) && !ContainsKorean(d.Selftext) {
			continue
		}
		posts = append(posts, CommunityPost{
			Source:      "reddit_korea",
			Title:       d.Title,
			Content:     d.Selftext,
			Score:       d.Score,
			NumComments: d.NumComments,
			CreatedUTC:  d.CreatedUTC,
			URL:         d.URL,
			Subreddit:   d.Subreddit,
			DataType:    "community_post",
		})
	}

	logger.InfoWithFields("Reddit 한국어 게시물 수집", logger.Fields{"count": len(posts)})
	return posts, nil
}

// communityBank 는 국내 커뮤니티별 화법을 본뜬 기준 패턴이다.
var communityBank = []CommunityPost{
	{
		Source:             "simulated_theqoo",
		Title:              "이거 진짜 개웃기네 ㅋㅋㅋ",
		Content:            "완전 레전드 아니냐 미쳤다 진짜로",
		Score:              156,
		NumComments:        23,
		DataType:           "viral_reaction",
		SpeechPattern:      "theqoo_style",
		EmotionalIntensity: 8.5,
	},
	{
		Source:             "simulated_mlbpark",
		Title:              "이거 진짜 팩트임?",
		Content:            "객관적으로 봤을 때 이해가 안 감. 근거가 있나?",
		Score:              89,
		NumComments:        45,
		DataType:           "logical_debate",
		SpeechPattern:      "mlbpark_style",
		EmotionalIntensity: 6.2,
	},
	{
		Source:             "simulated_instiz",
		Title:              "완전 심쿵 포인트",
		Content:            "이거 실화냐 헐 완전 내 취향저격",
		Score:              234,
		NumComments:        67,
		DataType:           "fandom_reaction",
		SpeechPattern:      "instiz_style",
		EmotionalIntensity: 9.1,
	},
	{
		Source:             "simulated_dc",
		Title:              "ㅋㅋㅋㅋ 개웃기네",
		Content:            "이거 ㄹㅇ 찐임? 어이없네 ㅋㅋㅋ",
		Score:              78,
		NumComments:        123,
		DataType:           "anonymous_humor",
		SpeechPattern:      "dc_style",
		EmotionalIntensity: 7.8,
	},
	{
		Source:             "simulated_pann",
		Title:              "이거 진짜 충격적이다",
		Content:            "완전 반전 아니야? 이런 일이 실제로?",
		Score:              445,
		NumComments:        89,
		DataType:           "gossip_reaction",
		SpeechPattern:      "pann_style",
		EmotionalIntensity: 8.9,
	},
}

const simulatedVariations = 100

// SimulatedCommunityData 는 기준 패턴과 그 변형 100건을 만든다.
// 변형은 지표만 흔들고 텍스트는 기준 패턴을 그대로 따른다.
func (s *Scraper) SimulatedCommunityData() []CommunityPost {
	out := make([]CommunityPost, 0, len(communityBank)+simulatedVariations)
	out = append(out, communityBank...)

	now := float64(time.Now().Unix())
	for i := 0; i < simulatedVariations; i++ {
		v := communityBank[s.rng.Intn(len(communityBank))]
		v.CreatedUTC = now - float64(s.rng.Intn(86400))
		v.Score = 10 + s.rng.Intn(491)
		v.NumComments = 5 + s.rng.Intn(196)
		out = append(out, v)
	}
	return out
}

// Scrape 는 Reddit 수집 결과에 시뮬레이션 데이터를 합친다.
// Reddit 이 실패하면 시뮬레이션 데이터만으로 대체한다.
func (s *Scraper) Scrape(ctx context.Context) []CommunityPost {
	posts, err := s.FetchRedditPosts(ctx)
	if err != nil {
		logger.WarnWithFields("Reddit 수집 실패, 시뮬레이션 데이터로 대체", logger.Fields{"error": err.Error()})
		return s.SimulatedCommunityData()
	}
	return append(posts, s.SimulatedCommunityData()...)
}

// AsRedditPosts 는 수집 게시물을 분석기 입력 형태로 바꾼다.
func AsRedditPosts(posts []CommunityPost) []analyzer.RedditPost {
	out := make([]analyzer.RedditPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, analyzer.RedditPost{
			Source:        p.Source,
			Subreddit:     p.Subreddit,
			Title:         p.Title,
			Content:       p.Content,
			Score:         p.Score,
			NumComments:   p.NumComments,
			CreatedUTC:    int64(p.CreatedUTC),
			SpeechPattern: p.SpeechPattern,
		})
	}
	return out
}
