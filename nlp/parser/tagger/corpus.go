package tagger

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"

	"go.uber.org/zap"
)

// SentenceError is the failure to tag one sentence of a corpus.
type SentenceError struct {
	Index int
	Err   error
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("sentence %d: %v", e.Index, e.Err)
}

func (e *SentenceError) Unwrap() error { return e.Err }

// TagCorpus tags sents with a pool of workers. The i-th result belongs to
// the i-th sentence; a failed sentence leaves a nil result and a
// SentenceError, and does not stop the others. Once ctx is done no new
// sentence is started. workers <= 0 uses GOMAXPROCS workers.
func TagCorpus(ctx context.Context, t Tagger, sents []nlp.BasicSentence, workers int, logger *zap.Logger) ([]nlp.BasicTaggedSentence, []*SentenceError) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(sents) {
		workers = len(sents)
	}

	var (
		results = make([]nlp.BasicTaggedSentence, len(sents))
		failed  = make([]error, len(sents))
		jobs    = make(chan int, workers)
		wg      sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := range jobs {
				tagged, err := t.Tag(sents[i])
				if err != nil {
					var noTag *hmm.NoViableTagError
					if errors.As(err, &noTag) {
						noTag.Sentence = i
					}
					logger.Debug("Failed tagging sentence", zap.Int("worker", id), zap.Int("sentence", i), zap.Error(err))
					failed[i] = err
					continue
				}
				results[i] = tagged
			}
		}(w)
	}

	dispatched := len(sents)
dispatch:
	for i := range sents {
		if ctx.Err() != nil {
			dispatched = i
			break
		}
		select {
		case <-ctx.Done():
			dispatched = i
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for i := dispatched; i < len(sents); i++ {
		failed[i] = ctx.Err()
	}
	var errs []*SentenceError
	for i, err := range failed {
		if err != nil {
			errs = append(errs, &SentenceError{Index: i, Err: err})
		}
	}
	return results, errs
}
