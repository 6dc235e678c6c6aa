package query

import (
	"go.uber.org/zap"
)

// Matcher extracts a value from a snapshot, reporting whether it found one.
// Matchers must not modify the snapshot.
type Matcher[T any] func(*Snapshot) (T, bool)

// Strategy is a named matcher
type Strategy[T any] struct {
	Name  string
	Match Matcher[T]
}

// Result is the outcome of running a pipeline
type Result[T any] struct {
	Value    T
	Strategy string
	Found    bool
}

// Pipeline tries its strategies in order and keeps the first match
type Pipeline[T any] struct {
	strategies []Strategy[T]
	logger     *zap.Logger
}

// NewPipeline creates a pipeline. A nil logger disables logging.
func NewPipeline[T any](logger *zap.Logger, strategies ...Strategy[T]) *Pipeline[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline[T]{strategies: strategies, logger: logger}
}

// Run evaluates the strategies in order. Without a match it returns a Result
// holding T's zero value with Found false.
func (p *Pipeline[T]) Run(s *Snapshot) Result[T] {
	if s == nil {
		return Result[T]{}
	}
	for _, st := range p.strategies {
		if v, ok := st.Match(s); ok {
			p.logger.Debug("strategy matched", zap.String("strategy", st.Name), zap.Any("value", v))
			return Result[T]{Value: v, Strategy: st.Name, Found: true}
		}
		p.logger.Debug("strategy missed", zap.String("strategy", st.Name))
	}
	return Result[T]{}
}

// With returns a new pipeline with extra strategies appended after the existing ones
func (p *Pipeline[T]) With(strategies ...Strategy[T]) *Pipeline[T] {
	combined := make([]Strategy[T], 0, len(p.strategies)+len(strategies))
	combined = append(combined, p.strategies...)
	combined = append(combined, strategies...)
	return &Pipeline[T]{strategies: combined, logger: p.logger}
}

// Names returns the strategy names in evaluation order
func (p *Pipeline[T]) Names() []string {
	names := make([]string, len(p.strategies))
	for i, st := range p.strategies {
		names[i] = st.Name
	}
	return names
}
