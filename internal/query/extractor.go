package query

import "go.uber.org/zap"

// Extractor bundles the count, price and total pipelines
type Extractor struct {
	Count *Pipeline[int]
	Price *Pipeline[float64]
	Total *Pipeline[float64]
}

// NewExtractor creates an extractor with the default strategies. A nil logger
// disables logging.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		Count: NewPipeline(logger.Named("cart-count"), CountStrategies()...),
		Price: NewPipeline(logger.Named("price"), PriceStrategies()...),
		Total: NewPipeline(logger.Named("total"), TotalStrategies()...),
	}
}

// ExtractCount returns the cart's item count, or 0 when no strategy matches
func (e *Extractor) ExtractCount(s *Snapshot) int {
	return e.Count.Run(s).Value
}

// ExtractPrice returns the first displayed price
func (e *Extractor) ExtractPrice(s *Snapshot) (float64, bool) {
	r := e.Price.Run(s)
	return r.Value, r.Found
}

// ExtractTotal returns the order total, preferring the designated total element
func (e *Extractor) ExtractTotal(s *Snapshot) (float64, bool) {
	r := e.Total.Run(s)
	return r.Value, r.Found
}

// Summary is every value the extractor can read from one snapshot
type Summary struct {
	CartCount       int      `json:"cartCount"`
	Price           *float64 `json:"price,omitempty"`
	Total           *float64 `json:"total,omitempty"`
	TotalStrategy   string   `json:"totalStrategy,omitempty"`
	CartRows        int      `json:"cartRows"`
	CalculatedTotal *float64 `json:"calculatedTotal,omitempty"`
	EmptyCart       bool     `json:"emptyCart"`
}

// Summarize runs every extraction against s
func (e *Extractor) Summarize(s *Snapshot) Summary {
	sum := Summary{
		CartCount: e.ExtractCount(s),
		CartRows:  CartRowCount(s),
		EmptyCart: IsEmptyCart(s),
	}
	if v, ok := e.ExtractPrice(s); ok {
		sum.Price = &v
	}
	if r := e.Total.Run(s); r.Found {
		sum.Total = &r.Value
		sum.TotalStrategy = r.Strategy
	}
	if v, ok := CalculatedTotal(s); ok {
		sum.CalculatedTotal = &v
	}
	return sum
}

var defaultExtractor = NewExtractor(nil)

// ExtractCount reads the cart count with the default strategies
func ExtractCount(s *Snapshot) int {
	return defaultExtractor.ExtractCount(s)
}

// ExtractPrice reads the first displayed price with the default strategies
func ExtractPrice(s *Snapshot) (float64, bool) {
	return defaultExtractor.ExtractPrice(s)
}

// ExtractTotal reads the order total with the default strategies
func ExtractTotal(s *Snapshot) (float64, bool) {
	return defaultExtractor.ExtractTotal(s)
}
