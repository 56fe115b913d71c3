package tagger

import (
	"strings"
	"testing"

	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"

	"github.com/stretchr/testify/require"
)

// parse reads "word/TAG word/TAG ..." into a tagged sentence.
func parse(line string) nlp.BasicTaggedSentence {
	var sent nlp.BasicTaggedSentence
	for _, field := range strings.Fields(line) {
		i := strings.LastIndex(field, "/")
		sent = append(sent, nlp.TaggedToken{Token: field[:i], POS: field[i+1:]})
	}
	return sent
}

// countCorpus produces the counts a trigram counter would produce for
// sents: tag n-grams over sentences padded with * * and STOP, and the
// word-tag pairs.
func countCorpus(t *testing.T, sents []nlp.BasicTaggedSentence) *hmm.CountTable {
	type entry struct {
		kind hmm.CountKind
		key  string
	}
	counts := make(map[entry]float64)
	for _, sent := range sents {
		tags := []string{hmm.START_SYMBOL, hmm.START_SYMBOL}
		for _, token := range sent {
			tags = append(tags, token.POS)
			counts[entry{hmm.WordTagCount, hmm.Key(token.POS, token.Token)}]++
			counts[entry{hmm.UnigramCount, token.POS}]++
		}
		tags = append(tags, hmm.STOP_SYMBOL)
		counts[entry{hmm.BigramCount, hmm.Key(tags[0], tags[1])}]++
		for i := 2; i < len(tags); i++ {
			counts[entry{hmm.BigramCount, hmm.Key(tags[i-1], tags[i])}]++
			counts[entry{hmm.TrigramCount, hmm.Key(tags[i-2], tags[i-1], tags[i])}]++
		}
	}
	b := hmm.NewCountBuilder()
	for e, count := range counts {
		require.NoError(t, b.Add(e.kind, strings.Split(e.key, " "), count))
	}
	return b.Table()
}

var corpus = []string{
	"they/PRON can/MODAL fish/VERB",
	"we/PRON can/MODAL swim/VERB",
	"the/DET can/NOUN rusts/VERB",
	"the/DET fish/NOUN swim/VERB",
	"the/DET dog/NOUN barks/VERB",
	"_RARE_/NOUN barks/VERB",
}

func estimator(t *testing.T, tags ...string) *hmm.Estimator {
	sents := make([]nlp.BasicTaggedSentence, len(corpus))
	for i, line := range corpus {
		sents[i] = parse(line)
	}
	tagSet, err := hmm.NewTagSet(tags)
	require.NoError(t, err)
	return hmm.NewEstimator(countCorpus(t, sents), tagSet, nil)
}

func defaultEstimator(t *testing.T) *hmm.Estimator {
	return estimator(t, "DET", "NOUN", "VERB", "PRON", "MODAL")
}
