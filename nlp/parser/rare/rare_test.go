package rare

import (
	"testing"

	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frequencies(t *testing.T) *CountFrequencies {
	b := hmm.NewCountBuilder()
	require.NoError(t, b.Add(hmm.WordTagCount, []string{"O", "the"}, 6))
	require.NoError(t, b.Add(hmm.WordTagCount, []string{"O", "gene"}, 2))
	require.NoError(t, b.Add(hmm.WordTagCount, []string{"I-GENE", "gene"}, 3))
	require.NoError(t, b.Add(hmm.WordTagCount, []string{"I-GENE", "BRCA1"}, 1))
	// a tag outside the vocabulary does not add to a word's frequency
	require.NoError(t, b.Add(hmm.WordTagCount, []string{"X", "BRCA1"}, 10))
	tags, err := hmm.NewTagSet([]string{"O", "I-GENE"})
	require.NoError(t, err)
	return &CountFrequencies{Counts: b.Table(), Tags: tags}
}

func TestCountFrequencies(t *testing.T) {
	f := frequencies(t)
	assert.Equal(t, 6.0, f.Frequency("the"))
	assert.Equal(t, 5.0, f.Frequency("gene"))
	assert.Equal(t, 1.0, f.Frequency("BRCA1"))
	assert.Equal(t, 0.0, f.Frequency("unseen"))
}

func TestUntagged(t *testing.T) {
	n := &Normalizer{Frequencies: frequencies(t), Threshold: 5, Replacement: "_RARE_"}
	sent := nlp.BasicSentence{"the", "gene", "BRCA1", "unseen", "", "_RARE_"}
	normalized := n.Untagged(sent)

	assert.Equal(t, nlp.BasicSentence{"the", "gene", "_RARE_", "_RARE_", "", "_RARE_"}, normalized)
	assert.Equal(t, nlp.BasicSentence{"the", "gene", "BRCA1", "unseen", "", "_RARE_"}, sent, "input is not modified")
	assert.Equal(t, normalized, n.Untagged(normalized), "normalizing twice changes nothing")
}

func TestTagged(t *testing.T) {
	n := &Normalizer{Frequencies: frequencies(t), Threshold: 5}
	sent := nlp.BasicTaggedSentence{{Token: "the", POS: "O"}, {Token: "BRCA1", POS: "I-GENE"}}
	normalized := n.Tagged(sent)

	assert.Equal(t, nlp.BasicTaggedSentence{{Token: "the", POS: "O"}, {Token: DEFAULT_TOKEN, POS: "I-GENE"}}, normalized)
	assert.Equal(t, "BRCA1", sent[1].Token)
	assert.Equal(t, normalized, n.Tagged(normalized))
}

func TestThresholdIsStrict(t *testing.T) {
	n := &Normalizer{Frequencies: frequencies(t), Threshold: 6}
	assert.False(t, n.IsRare("the"))
	assert.True(t, n.IsRare("gene"))
	assert.False(t, n.IsRare(""))
}

func TestCorpus(t *testing.T) {
	sents := []nlp.BasicSentence{{"a", "b", "a"}, {}, {"c", "a"}}
	freqs := NewCorpusFrequencies(sents)
	assert.Equal(t, 3.0, freqs.Frequency("a"))
	assert.Equal(t, 1.0, freqs.Frequency("c"))

	n := &Normalizer{Frequencies: freqs, Threshold: 2, Replacement: "_RARE_"}
	normalized, replaced := n.UntaggedCorpus(sents)
	assert.Equal(t, 2, replaced)
	assert.Equal(t, []nlp.BasicSentence{{"a", "_RARE_", "a"}, {}, {"_RARE_", "a"}}, normalized)

	tagged, replaced := n.TaggedCorpus([]nlp.BasicTaggedSentence{{{Token: "a", POS: "X"}, {Token: "b", POS: "Y"}}})
	assert.Equal(t, 1, replaced)
	assert.Equal(t, []nlp.BasicTaggedSentence{{{Token: "a", POS: "X"}, {Token: "_RARE_", POS: "Y"}}}, tagged)
}
