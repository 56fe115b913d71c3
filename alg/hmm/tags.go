package hmm

import (
	"fmt"

	"hmmtag/util"
)

const (
	START_SYMBOL = "*"
	STOP_SYMBOL  = "STOP"
)

type TagKind uint8

const (
	Ordinary TagKind = iota
	StartKind
	StopKind
)

// Tag is either an ordinary label from the vocabulary or one of the two
// boundary sentinels. Sentinels are distinct values, never labels.
type Tag struct {
	kind  TagKind
	label string
}

var (
	Start = Tag{kind: StartKind}
	Stop  = Tag{kind: StopKind}
)

func NewTag(label string) Tag {
	return Tag{kind: Ordinary, label: label}
}

func (t Tag) IsSentinel() bool { return t.kind != Ordinary }

// String is the spelling of the tag inside count keys.
func (t Tag) String() string {
	switch t.kind {
	case StartKind:
		return START_SYMBOL
	case StopKind:
		return STOP_SYMBOL
	default:
		return t.label
	}
}

// TagSet is the ordered tag vocabulary. Declaration order is the order
// in which decoders iterate and break ties.
type TagSet struct {
	enum *util.EnumSet
	tags []Tag
}

func NewTagSet(labels []string) (*TagSet, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("empty tag vocabulary")
	}
	enum := util.NewEnumSet(len(labels))
	tags := make([]Tag, 0, len(labels))
	for _, label := range labels {
		if len(label) == 0 {
			return nil, fmt.Errorf("empty tag label in vocabulary")
		}
		if label == START_SYMBOL || label == STOP_SYMBOL {
			return nil, fmt.Errorf("tag vocabulary must not contain sentinel %q", label)
		}
		if _, added := enum.Add(label); !added {
			return nil, fmt.Errorf("duplicate tag %q in vocabulary", label)
		}
		tags = append(tags, NewTag(label))
	}
	enum.Freeze()
	return &TagSet{enum: enum, tags: tags}, nil
}

// Tags returns the vocabulary in declaration order. Callers must not modify it.
func (s *TagSet) Tags() []Tag { return s.tags }

func (s *TagSet) Len() int { return len(s.tags) }

// Lookup resolves a label to its vocabulary tag.
func (s *TagSet) Lookup(label string) (Tag, bool) {
	i, exists := s.enum.IndexOf(label)
	if !exists {
		return Tag{}, false
	}
	return s.tags[i], true
}

func (s *TagSet) Labels() []string { return s.enum.Values() }
