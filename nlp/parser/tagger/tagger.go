// Package tagger assigns tags to sentences with a trigram HMM, either
// greedily per token (ArgMax) or exactly per sentence (Viterbi).
package tagger

import (
	"errors"

	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"
)

type Tagger interface {
	Tag(sent nlp.BasicSentence) (nlp.BasicTaggedSentence, error)
}

func pair(sent nlp.BasicSentence, tags []hmm.Tag) nlp.BasicTaggedSentence {
	tagged := make(nlp.BasicTaggedSentence, len(sent))
	for i, token := range sent {
		tagged[i] = nlp.TaggedToken{Token: string(token), POS: tags[i].String()}
	}
	return tagged
}

// blame fills in the position and word of a NoViableTagError.
func blame(err error, position int, word string) error {
	var noTag *hmm.NoViableTagError
	if errors.As(err, &noTag) {
		noTag.Position, noTag.Word = position, word
	}
	return err
}
