package currency

import (
	"math"
	"sync"
)

// DefaultUSDToNGN is the bootstrap USD to Naira rate used until an
// explicit update arrives.
const DefaultUSDToNGN = 1500

// Provider holds the process-wide exchange rate. The rate is mutable by
// replacement only: readers call Rate, the single writer calls Update.
// Consumers pass the rate explicitly into conversion calls so two reads
// within one session may legitimately observe different rates.
type Provider struct {
	mu   sync.RWMutex
	rate float64
}

func NewProvider(rate float64) *Provider {
	if rate <= 0 {
		rate = DefaultUSDToNGN
	}
	return &Provider{rate: rate}
}

func (p *Provider) Rate() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rate
}

// Update replaces the rate. Non-positive or non-finite rates are rejected.
func (p *Provider) Update(rate float64) bool {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return false
	}
	p.mu.Lock()
	p.rate = rate
	p.mu.Unlock()
	return true
}

// Convert turns a USD major-unit amount into NGN at the given rate,
// rounded to whole naira. Invalid input converts to zero rather than
// erroring; callers render the zero-currency string instead of failing
// a whole page over one bad amount.
func Convert(usdAmount, rate float64) float64 {
	if math.IsNaN(usdAmount) || math.IsInf(usdAmount, 0) || usdAmount < 0 {
		return 0
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0
	}
	return math.Round(usdAmount * rate)
}

// ConvertAndFormat converts usdAmount at rate and formats the result.
func ConvertAndFormat(usdAmount, rate float64) string {
	return FormatNaira(Convert(usdAmount, rate))
}
