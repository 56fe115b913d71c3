package tagger

import (
	"context"
	"errors"
	"testing"

	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagCorpusKeepsOrder(t *testing.T) {
	var (
		sents []nlp.BasicSentence
		gold  []nlp.BasicTaggedSentence
	)
	for i := 0; i < 60; i++ {
		g := parse(corpus[i%len(corpus)])
		sents = append(sents, g.Untagged())
		gold = append(gold, g)
	}
	const failing = 17
	sents[failing] = nlp.BasicSentence{"the", "cat", "barks"}

	tagged, errs := TagCorpus(context.Background(), NewViterbi(defaultEstimator(t), nil), sents, 4, nil)
	require.Len(t, tagged, len(sents))
	require.Len(t, errs, 1)
	assert.Equal(t, failing, errs[0].Index)
	var noTag *hmm.NoViableTagError
	require.True(t, errors.As(errs[0], &noTag))
	assert.Equal(t, failing, noTag.Sentence)
	assert.Equal(t, "cat", noTag.Word)
	assert.EqualError(t, errs[0], `sentence 17: no viable tag for word "cat" at position 1`)

	for i := range sents {
		if i == failing {
			assert.Nil(t, tagged[i])
			continue
		}
		assert.Equal(t, gold[i], tagged[i], "sentence %d", i)
	}
}

func TestTagCorpusCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sents := []nlp.BasicSentence{{"the", "dog", "barks"}, {"we", "can", "swim"}}
	tagged, errs := TagCorpus(ctx, &ArgMax{Estimator: defaultEstimator(t)}, sents, 2, nil)
	require.Len(t, errs, 2)
	for i, err := range errs {
		assert.Equal(t, i, err.Index)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, tagged[i])
	}
}

func TestTagCorpusEmpty(t *testing.T) {
	tagged, errs := TagCorpus(context.Background(), &ArgMax{Estimator: defaultEstimator(t)}, nil, 0, nil)
	assert.Empty(t, tagged)
	assert.Empty(t, errs)
}
