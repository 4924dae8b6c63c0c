package analyzer

import "sort"

// LabelCount 는 빈도 집계 한 줄이다.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// counter 는 첫 등장 순서를 기억하는 빈도 집계기.
// 동률일 때 결과 순서가 입력 순서를 따라가게 하려는 것이다.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) Add(labels ...string) {
	for _, l := range labels {
		if _, seen := c.counts[l]; !seen {
			c.order = append(c.order, l)
		}
		c.counts[l]++
	}
}

// Sorted 는 빈도 내림차순으로 정렬한 결과를 반환한다. limit<=0 이면 전체.
func (c *counter) Sorted(limit int) []LabelCount {
	out := make([]LabelCount, 0, len(c.order))
	for _, l := range c.order {
		out = append(out, LabelCount{Label: l, Count: c.counts[l]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Distribution 은 라벨→빈도 맵을 반환한다.
func (c *counter) Distribution() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}
