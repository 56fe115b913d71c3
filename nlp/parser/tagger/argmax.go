package tagger

import (
	"hmmtag/alg/hmm"
	"hmmtag/nlp/parser/rare"
	nlp "hmmtag/nlp/types"

	"gonum.org/v1/gonum/floats"
)

// ArgMax tags every word with its highest emission tag, ignoring context.
// Words never counted with any tag are tagged as the Rare token.
type ArgMax struct {
	Estimator *hmm.Estimator
	Rare      string
}

var _ Tagger = &ArgMax{}

func (a *ArgMax) rareToken() string {
	if len(a.Rare) == 0 {
		return rare.DEFAULT_TOKEN
	}
	return a.Rare
}

func (a *ArgMax) seen(word string) bool {
	counts := a.Estimator.Counts()
	for _, tag := range a.Estimator.Tags() {
		if counts.HasWordTag(tag, word) {
			return true
		}
	}
	return false
}

// TagWord returns the arg-max emission tag of word. Ties go to the tag
// declared first in the vocabulary.
func (a *ArgMax) TagWord(word string) (hmm.Tag, error) {
	scored := word
	if !a.seen(word) {
		scored = a.rareToken()
	}
	tags := a.Estimator.Tags()
	probs := make([]float64, len(tags))
	for i, tag := range tags {
		probs[i] = a.Estimator.Emission(scored, tag)
	}
	best := floats.MaxIdx(probs)
	if probs[best] == 0 {
		return hmm.Tag{}, &hmm.NoViableTagError{Sentence: -1, Position: -1, Word: word}
	}
	return tags[best], nil
}

func (a *ArgMax) Tag(sent nlp.BasicSentence) (nlp.BasicTaggedSentence, error) {
	tags := make([]hmm.Tag, len(sent))
	for i, token := range sent {
		tag, err := a.TagWord(string(token))
		if err != nil {
			return nil, blame(err, i, string(token))
		}
		tags[i] = tag
	}
	return pair(sent, tags), nil
}
