package hmm

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type CountKind uint8

const (
	WordTagCount CountKind = iota
	UnigramCount
	BigramCount
	TrigramCount
)

var countKindNames = [...]string{
	WordTagCount: "WORDTAG",
	UnigramCount: "1-GRAM",
	BigramCount:  "2-GRAM",
	TrigramCount: "3-GRAM",
}

func (k CountKind) String() string {
	if int(k) < len(countKindNames) {
		return countKindNames[k]
	}
	return fmt.Sprintf("CountKind(%d)", k)
}

// Arity is the number of whitespace separated fields in a key of this kind.
func (k CountKind) Arity() int {
	switch k {
	case WordTagCount, BigramCount:
		return 2
	case UnigramCount:
		return 1
	case TrigramCount:
		return 3
	}
	return 0
}

func ParseCountKind(name string) (CountKind, bool) {
	for i, n := range countKindNames {
		if n == name {
			return CountKind(i), true
		}
	}
	return 0, false
}

// Key joins key fields the same way for storage and lookup.
func Key(fields ...string) string {
	return strings.Join(fields, " ")
}

func tagKey(tags []Tag) string {
	fields := make([]string, len(tags))
	for i, t := range tags {
		fields[i] = t.String()
	}
	return Key(fields...)
}

// CountTable holds n-gram and word-tag frequencies. It is immutable once
// returned by a CountBuilder, so it can be shared between goroutines.
// Word-tag keys live apart from n-gram keys: the word-tag "O O" (the word
// "O" tagged O) and the bigram "O O" are different counts.
type CountTable struct {
	ngrams   map[string]float64
	wordtags map[string]float64
}

// Lookup returns the count stored under key, or 0 if there is none.
// N-gram entries take precedence over word-tag entries with the same key.
func (c *CountTable) Lookup(key string) float64 {
	if count, exists := c.ngrams[key]; exists {
		return count
	}
	return c.wordtags[key]
}

func (c *CountTable) NGram(tags ...Tag) float64 {
	return c.ngrams[tagKey(tags)]
}

func (c *CountTable) HasNGram(tags ...Tag) bool {
	_, exists := c.ngrams[tagKey(tags)]
	return exists
}

func (c *CountTable) WordTag(tag Tag, word string) float64 {
	return c.wordtags[Key(tag.String(), word)]
}

func (c *CountTable) HasWordTag(tag Tag, word string) bool {
	_, exists := c.wordtags[Key(tag.String(), word)]
	return exists
}

func (c *CountTable) Len() int {
	return len(c.ngrams) + len(c.wordtags)
}

type CountEntry struct {
	Kind  CountKind
	Key   string
	Count float64
}

// Entries lists every count ordered by kind and then key.
func (c *CountTable) Entries() []CountEntry {
	entries := make([]CountEntry, 0, c.Len())
	for key, count := range c.wordtags {
		entries = append(entries, CountEntry{WordTagCount, key, count})
	}
	for key, count := range c.ngrams {
		kind := CountKind(uint8(UnigramCount) + uint8(strings.Count(key, " ")))
		entries = append(entries, CountEntry{kind, key, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// CountBuilder accumulates entries for a new CountTable.
type CountBuilder struct {
	table *CountTable
}

func NewCountBuilder() *CountBuilder {
	return &CountBuilder{
		table: &CountTable{
			ngrams:   make(map[string]float64),
			wordtags: make(map[string]float64),
		},
	}
}

// Add stores count under the key formed by fields. A repeated key keeps the
// last count added.
func (b *CountBuilder) Add(kind CountKind, fields []string, count float64) error {
	if b.table == nil {
		panic("Cannot add to a built count table")
	}
	if kind.Arity() == 0 {
		return fmt.Errorf("unknown count kind %v", kind)
	}
	if len(fields) != kind.Arity() {
		return fmt.Errorf("%v expects %d fields, got %d", kind, kind.Arity(), len(fields))
	}
	if math.IsNaN(count) || math.IsInf(count, 0) || count < 0 {
		return fmt.Errorf("invalid count %v", count)
	}
	for _, f := range fields {
		if len(f) == 0 || strings.ContainsAny(f, " \t") {
			return fmt.Errorf("invalid key field %q", f)
		}
	}
	key := Key(fields...)
	if kind == WordTagCount {
		b.table.wordtags[key] = count
	} else {
		b.table.ngrams[key] = count
	}
	return nil
}

// Table returns the built table; the builder cannot be used afterwards.
func (b *CountBuilder) Table() *CountTable {
	table := b.table
	b.table = nil
	return table
}
