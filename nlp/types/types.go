package types

import (
	"fmt"
	"reflect"

	"hmmtag/util"
)

type Token string

type TaggedToken struct {
	Token, POS string
}

// IndexError reports an out of range access into a sentence.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0..%d]", e.Index, e.Len-1)
}

type Sentence interface {
	util.Equaler
	Tokens() []string
}

type TaggedSentence interface {
	Sentence
	TaggedTokens() []TaggedToken
}

type BasicSentence []Token

var _ Sentence = BasicSentence{}

func (b BasicSentence) Tokens() []string {
	retval := make([]string, len(b))
	for i, val := range b {
		retval[i] = string(val)
	}
	return retval
}

func (b BasicSentence) At(i int) (Token, error) {
	if i < 0 || i >= len(b) {
		return "", &IndexError{i, len(b)}
	}
	return b[i], nil
}

func (b BasicSentence) Equal(otherEq util.Equaler) bool {
	asBasic, ok := otherEq.(BasicSentence)
	return ok && reflect.DeepEqual(b, asBasic)
}

type BasicTaggedSentence []TaggedToken

var _ TaggedSentence = BasicTaggedSentence{}

func (b BasicTaggedSentence) Tokens() []string {
	tokens := make([]string, len(b))
	for i, token := range b {
		tokens[i] = token.Token
	}
	return tokens
}

func (b BasicTaggedSentence) Tags() []string {
	tags := make([]string, len(b))
	for i, token := range b {
		tags[i] = token.POS
	}
	return tags
}

func (b BasicTaggedSentence) TaggedTokens() []TaggedToken {
	return []TaggedToken(b)
}

func (b BasicTaggedSentence) At(i int) (TaggedToken, error) {
	if i < 0 || i >= len(b) {
		return TaggedToken{}, &IndexError{i, len(b)}
	}
	return b[i], nil
}

func (b BasicTaggedSentence) Word(i int) (string, error) {
	token, err := b.At(i)
	return token.Token, err
}

func (b BasicTaggedSentence) Tag(i int) (string, error) {
	token, err := b.At(i)
	return token.POS, err
}

func (b BasicTaggedSentence) Equal(otherEq util.Equaler) bool {
	asTagged, ok := otherEq.(BasicTaggedSentence)
	return ok && reflect.DeepEqual(b, asTagged)
}

// Untagged strips the tags off a tagged sentence.
func (b BasicTaggedSentence) Untagged() BasicSentence {
	sent := make(BasicSentence, len(b))
	for i, token := range b {
		sent[i] = Token(token.Token)
	}
	return sent
}
