package hmm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func mustTags(t *testing.T, labels ...string) *TagSet {
	t.Helper()
	tags, err := NewTagSet(labels)
	require.NoError(t, err)
	return tags
}

func americans(t *testing.T) *CountTable {
	return buildTable(t,
		CountEntry{WordTagCount, "O Americans", 3},
		CountEntry{UnigramCount, "O", 5},
		CountEntry{UnigramCount, "NNP", 2},
		CountEntry{WordTagCount, "NNP Americans", 2},
	)
}

func TestEmission(t *testing.T) {
	est := NewEstimator(americans(t), mustTags(t, "O", "NNP"), nil)
	assert.Equal(t, 0.6, est.Emission("Americans", NewTag("O")))
	assert.Equal(t, 1.0, est.Emission("Americans", NewTag("NNP")))
	assert.Equal(t, 0.0, est.Emission("Britons", NewTag("O")))
	assert.Equal(t, 0.0, est.Emission("Americans", NewTag("VB")))
	assert.True(t, math.IsInf(est.LogEmission("Britons", NewTag("O")), -1))
	assert.InDelta(t, math.Log(0.6), est.LogEmission("Americans", NewTag("O")), 1e-12)
	assert.Zero(t, est.Anomalies())
}

func TestTransition(t *testing.T) {
	o, n := NewTag("O"), NewTag("NNP")
	table := buildTable(t,
		CountEntry{BigramCount, "* *", 4},
		CountEntry{TrigramCount, "* * O", 3},
		CountEntry{TrigramCount, "* * NNP", 1},
		CountEntry{BigramCount, "* O", 3},
		CountEntry{TrigramCount, "* O STOP", 3},
	)
	est := NewEstimator(table, mustTags(t, "O", "NNP"), nil)
	assert.Equal(t, 0.75, est.Transition(Start, Start, o))
	assert.Equal(t, 0.25, est.Transition(Start, Start, n))
	assert.Equal(t, 1.0, est.Transition(Start, o, Stop))
	assert.Equal(t, 0.0, est.Transition(Start, o, n))
	assert.Equal(t, 0.0, est.Transition(o, n, Stop))
	assert.Zero(t, est.Anomalies())
}

func TestZeroDenominator(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	table := buildTable(t,
		CountEntry{WordTagCount, "X foo", 2},
		CountEntry{TrigramCount, "* * X", 1},
	)
	est := NewEstimator(table, mustTags(t, "X"), zap.New(core))

	assert.Equal(t, 0.0, est.Emission("foo", NewTag("X")))
	assert.Equal(t, 0.0, est.Emission("foo", NewTag("X")))
	assert.Equal(t, 0.0, est.Transition(Start, Start, NewTag("X")))
	assert.EqualValues(t, 3, est.Anomalies())
	assert.Equal(t, 2, logs.Len(), "one warning per conditioning key")
}

func TestProbabilitiesInRange(t *testing.T) {
	table := dogBarks(t)
	tags := mustTags(t, "DET", "NOUN", "VERB")
	est := NewEstimator(table, tags, nil)
	all := append([]Tag{Start}, tags.Tags()...)
	for _, word := range []string{"the", "dog", "barks", "cat"} {
		for _, tag := range tags.Tags() {
			p := est.Emission(word, tag)
			assert.True(t, p >= 0 && p <= 1, "e(%s|%s) = %v", word, tag, p)
		}
	}
	for _, u := range all {
		for _, v := range all {
			for _, w := range append(tags.Tags(), Stop) {
				p := est.Transition(u, v, w)
				assert.True(t, p >= 0 && p <= 1, "q(%s|%s,%s) = %v", w, u, v, p)
			}
		}
	}
}

func TestLogJoint(t *testing.T) {
	est := NewEstimator(dogBarks(t), mustTags(t, "DET", "NOUN", "VERB"), nil)
	words := []string{"the", "dog", "barks"}
	det, noun, verb := NewTag("DET"), NewTag("NOUN"), NewTag("VERB")

	assert.InDelta(t, 0.0, est.LogJoint(words, []Tag{det, noun, verb}), 1e-12)
	assert.True(t, math.IsInf(est.LogJoint(words, []Tag{det, verb, noun}), -1))
	assert.True(t, math.IsInf(est.LogJoint(words, []Tag{det}), -1))
}
