package tagger

import (
	"errors"

	"hmmtag/alg/hmm"
	"hmmtag/nlp/parser/rare"
	nlp "hmmtag/nlp/types"
)

// Viterbi tags whole sentences with the most probable tag sequence.
// When Normalizer is set, rare words are scored as its replacement token
// while the output keeps the original words.
type Viterbi struct {
	Decoder    *hmm.Decoder
	Normalizer *rare.Normalizer
}

var _ Tagger = &Viterbi{}

func NewViterbi(params hmm.Parameters, normalizer *rare.Normalizer) *Viterbi {
	return &Viterbi{
		Decoder:    hmm.NewDecoder(params),
		Normalizer: normalizer,
	}
}

func (v *Viterbi) Decode(sent nlp.BasicSentence) (*hmm.Path, error) {
	scored := sent
	if v.Normalizer != nil {
		scored = v.Normalizer.Untagged(sent)
	}
	path, err := v.Decoder.Decode(scored.Tokens())
	if err != nil {
		var noTag *hmm.NoViableTagError
		if errors.As(err, &noTag) && noTag.Position >= 0 {
			noTag.Word = string(sent[noTag.Position])
		}
		return nil, err
	}
	return path, nil
}

func (v *Viterbi) Tag(sent nlp.BasicSentence) (nlp.BasicTaggedSentence, error) {
	path, err := v.Decode(sent)
	if err != nil {
		return nil, err
	}
	return pair(sent, path.Tags), nil
}
