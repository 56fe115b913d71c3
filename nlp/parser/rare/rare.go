// Package rare replaces low frequency words with a sentinel token so that
// unseen words share the statistics of words seen only a few times.
package rare

import (
	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"
)

const DEFAULT_TOKEN = "_RARE_"

type Frequencies interface {
	Frequency(word string) float64
}

// CountFrequencies is the frequency of a word summed over every tag it
// was counted with.
type CountFrequencies struct {
	Counts *hmm.CountTable
	Tags   *hmm.TagSet
}

var _ Frequencies = &CountFrequencies{}

func (c *CountFrequencies) Frequency(word string) float64 {
	var total float64
	for _, tag := range c.Tags.Tags() {
		total += c.Counts.WordTag(tag, word)
	}
	return total
}

// CorpusFrequencies counts word occurrences in an untagged corpus.
type CorpusFrequencies map[string]float64

var _ Frequencies = CorpusFrequencies{}

func NewCorpusFrequencies(sents []nlp.BasicSentence) CorpusFrequencies {
	freqs := make(CorpusFrequencies)
	for _, sent := range sents {
		for _, token := range sent {
			if len(token) > 0 {
				freqs[string(token)]++
			}
		}
	}
	return freqs
}

func (c CorpusFrequencies) Frequency(word string) float64 {
	return c[word]
}

// Normalizer replaces every word with a frequency below Threshold by
// Replacement. The replacement token itself and empty tokens are kept.
type Normalizer struct {
	Frequencies Frequencies
	Threshold   float64
	Replacement string
}

func (n *Normalizer) token() string {
	if len(n.Replacement) == 0 {
		return DEFAULT_TOKEN
	}
	return n.Replacement
}

type memo struct {
	n     *Normalizer
	rare  map[string]bool
	token string
}

func (n *Normalizer) newMemo() *memo {
	return &memo{n: n, rare: make(map[string]bool), token: n.token()}
}

func (m *memo) replace(word string) (string, bool) {
	if len(word) == 0 || word == m.token {
		return word, false
	}
	isRare, seen := m.rare[word]
	if !seen {
		isRare = m.n.Frequencies.Frequency(word) < m.n.Threshold
		m.rare[word] = isRare
	}
	if isRare {
		return m.token, true
	}
	return word, false
}

func (n *Normalizer) IsRare(word string) bool {
	_, replaced := n.newMemo().replace(word)
	return replaced
}

func (n *Normalizer) Untagged(sent nlp.BasicSentence) nlp.BasicSentence {
	retval, _ := n.untagged(n.newMemo(), sent)
	return retval
}

func (n *Normalizer) untagged(m *memo, sent nlp.BasicSentence) (nlp.BasicSentence, int) {
	var replaced int
	retval := make(nlp.BasicSentence, len(sent))
	for i, token := range sent {
		word, isRare := m.replace(string(token))
		if isRare {
			replaced++
		}
		retval[i] = nlp.Token(word)
	}
	return retval, replaced
}

func (n *Normalizer) Tagged(sent nlp.BasicTaggedSentence) nlp.BasicTaggedSentence {
	retval, _ := n.tagged(n.newMemo(), sent)
	return retval
}

func (n *Normalizer) tagged(m *memo, sent nlp.BasicTaggedSentence) (nlp.BasicTaggedSentence, int) {
	var replaced int
	retval := make(nlp.BasicTaggedSentence, len(sent))
	for i, token := range sent {
		word, isRare := m.replace(token.Token)
		if isRare {
			replaced++
		}
		retval[i] = nlp.TaggedToken{Token: word, POS: token.POS}
	}
	return retval, replaced
}

// UntaggedCorpus normalizes every sentence and reports how many tokens
// were replaced.
func (n *Normalizer) UntaggedCorpus(sents []nlp.BasicSentence) ([]nlp.BasicSentence, int) {
	var total int
	m := n.newMemo()
	retval := make([]nlp.BasicSentence, len(sents))
	for i, sent := range sents {
		var replaced int
		retval[i], replaced = n.untagged(m, sent)
		total += replaced
	}
	return retval, total
}

func (n *Normalizer) TaggedCorpus(sents []nlp.BasicTaggedSentence) ([]nlp.BasicTaggedSentence, int) {
	var total int
	m := n.newMemo()
	retval := make([]nlp.BasicTaggedSentence, len(sents))
	for i, sent := range sents {
		var replaced int
		retval[i], replaced = n.tagged(m, sent)
		total += replaced
	}
	return retval, total
}
