package hmm

import (
	"math"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Estimator derives maximum-likelihood emission and transition
// probabilities from a CountTable.
type Estimator struct {
	counts *CountTable
	tags   *TagSet
	log    *zap.Logger

	anomalies atomic.Int64
	reported  sync.Map
}

func NewEstimator(counts *CountTable, tags *TagSet, logger *zap.Logger) *Estimator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{counts: counts, tags: tags, log: logger}
}

func (e *Estimator) Counts() *CountTable { return e.counts }

func (e *Estimator) TagSet() *TagSet { return e.tags }

func (e *Estimator) Tags() []Tag { return e.tags.Tags() }

// Anomalies is the number of estimates that hit a zero denominator.
func (e *Estimator) Anomalies() int64 { return e.anomalies.Load() }

// Emission is e(word|tag) = count(tag word) / count(tag).
func (e *Estimator) Emission(word string, tag Tag) float64 {
	if !e.counts.HasWordTag(tag, word) {
		return 0
	}
	return e.ratio(e.counts.WordTag(tag, word), e.counts.NGram(tag), tag.String())
}

// Transition is q(w|u,v) = count(u v w) / count(u v).
func (e *Estimator) Transition(u, v, w Tag) float64 {
	if !e.counts.HasNGram(u, v, w) {
		return 0
	}
	return e.ratio(e.counts.NGram(u, v, w), e.counts.NGram(u, v), tagKey([]Tag{u, v}))
}

func (e *Estimator) LogEmission(word string, tag Tag) float64 {
	return math.Log(e.Emission(word, tag))
}

func (e *Estimator) LogTransition(u, v, w Tag) float64 {
	return math.Log(e.Transition(u, v, w))
}

// LogJoint is the log probability of words tagged with tags, including the
// final transition to STOP. Mismatched lengths score -Inf.
func (e *Estimator) LogJoint(words []string, tags []Tag) float64 {
	if len(words) != len(tags) {
		return math.Inf(-1)
	}
	var (
		total float64
		u, v  = Start, Start
	)
	for i, word := range words {
		total += e.LogTransition(u, v, tags[i]) + e.LogEmission(word, tags[i])
		u, v = v, tags[i]
	}
	return total + e.LogTransition(u, v, Stop)
}

func (e *Estimator) ratio(numerator, denominator float64, denominatorKey string) float64 {
	if denominator == 0 {
		e.anomalies.Add(1)
		if _, seen := e.reported.LoadOrStore(denominatorKey, true); !seen {
			e.log.Warn("Zero count for conditioning context, estimating 0",
				zap.String("key", denominatorKey),
				zap.Float64("numerator", numerator))
		}
		return 0
	}
	return numerator / denominator
}
