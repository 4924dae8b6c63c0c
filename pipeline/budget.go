// Package pipeline 은 예산 상한이 걸린 배치 학습/수집 루프를 돌린다.
// 호출 비용은 고정 단가로 추정하며, 예산이 바닥나면 그때까지의
// 부분 결과를 들고 정상 종료한다.
package pipeline

// Budget 은 모델 호출 예산을 추적한다. 호출 전에 Reserve 로 자리를
// 확보하는 방식이라 한도를 넘겨 호출하는 일이 없다.
type Budget struct {
	budgetUSD   float64
	costPerCall float64
	maxCalls    int
	used        int
}

func NewBudget(budgetUSD, costPerCall float64) *Budget {
	maxCalls := 0
	if costPerCall > 0 {
		maxCalls = int(budgetUSD / costPerCall)
	}
	return &Budget{budgetUSD: budgetUSD, costPerCall: costPerCall, maxCalls: maxCalls}
}

// Reserve 는 호출 한 번 분량을 선점한다. 예산이 남아 있지 않으면 false.
func (b *Budget) Reserve() bool {
	if b.used >= b.maxCalls {
		return false
	}
	b.used++
	return true
}

func (b *Budget) MaxCalls() int { return b.maxCalls }

func (b *Budget) Used() int { return b.used }

// CostUsed 는 지금까지 추정 사용 금액이다.
func (b *Budget) CostUsed() float64 { return float64(b.used) * b.costPerCall }

// Remaining 은 남은 추정 예산이다.
func (b *Budget) Remaining() float64 { return b.budgetUSD - b.CostUsed() }
