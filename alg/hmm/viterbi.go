package hmm

import "math"

// Parameters are the log-probabilities a Decoder needs. *Estimator
// satisfies it.
type Parameters interface {
	Tags() []Tag
	LogEmission(word string, tag Tag) float64
	LogTransition(u, v, w Tag) float64
}

type Path struct {
	Tags    []Tag
	LogProb float64
}

// Decoder finds the most probable tag sequence of a trigram HMM.
//
// Tags are addressed by their vocabulary index; -1 stands for the start
// sentinel in the two context slots and len(tags) for STOP as a target.
// Transition log-probabilities of every reachable context are computed once
// by NewDecoder, so a Decoder reflects its Parameters at construction time.
type Decoder struct {
	tags   []Tag
	params Parameters
	trans  []float64
}

func NewDecoder(params Parameters) *Decoder {
	d := &Decoder{
		tags:   params.Tags(),
		params: params,
	}
	d.trans = d.transitions()
	return d
}

func (d *Decoder) tag(i int) Tag {
	if i < 0 {
		return Start
	}
	return d.tags[i]
}

func (d *Decoder) ctx(u, v int) int {
	return (u+1)*(len(d.tags)+1) + v + 1
}

func (d *Decoder) transition(u, v, w int) float64 {
	return d.trans[d.ctx(u, v)*(len(d.tags)+1)+w]
}

func (d *Decoder) transitions() []float64 {
	m := len(d.tags)
	trans := make([]float64, (m+1)*(m+1)*(m+1))
	for i := range trans {
		trans[i] = math.Inf(-1)
	}
	fill := func(u, v int) {
		base := d.ctx(u, v) * (m + 1)
		for w := 0; w < m; w++ {
			trans[base+w] = d.params.LogTransition(d.tag(u), d.tag(v), d.tags[w])
		}
		trans[base+m] = d.params.LogTransition(d.tag(u), d.tag(v), Stop)
	}
	// reachable contexts: (*, *), (*, v) and (u, v)
	fill(-1, -1)
	for v := 0; v < m; v++ {
		fill(-1, v)
		for u := 0; u < m; u++ {
			fill(u, v)
		}
	}
	return trans
}

// states lists the tag indexes possible at word position k.
func (d *Decoder) states(k int) []int {
	if k < 0 {
		return []int{-1}
	}
	all := make([]int, len(d.tags))
	for i := range all {
		all[i] = i
	}
	return all
}

// Decode returns the maximum probability tagging of words. An empty input
// yields an empty path. If every tagging has probability zero a
// *NoViableTagError is returned, naming the first word no path survives.
func (d *Decoder) Decode(words []string) (*Path, error) {
	n, m := len(words), len(d.tags)
	if n == 0 {
		return &Path{Tags: []Tag{}}, nil
	}
	negInf := math.Inf(-1)

	// pi[k][ui*m+v] is the best log-probability of words[:k+1] ending in
	// (u, v), u indexing states(k-1); bp[k] holds the index of the best w
	// in states(k-2).
	pi := make([][]float64, n)
	bp := make([][]int, n)
	emit := make([]float64, m)
	for k := 0; k < n; k++ {
		for v := 0; v < m; v++ {
			emit[v] = d.params.LogEmission(words[k], d.tags[v])
		}
		prevU, prevW := d.states(k-1), d.states(k-2)
		pi[k] = make([]float64, len(prevU)*m)
		bp[k] = make([]int, len(prevU)*m)
		viable := false
		for ui, u := range prevU {
			for v := 0; v < m; v++ {
				cell := ui*m + v
				best, bestW := negInf, 0
				if !math.IsInf(emit[v], -1) {
					for wi, w := range prevW {
						prev := 0.0
						if k > 0 {
							prev = pi[k-1][wi*m+u]
						}
						if math.IsInf(prev, -1) {
							continue
						}
						score := prev + d.transition(w, u, v) + emit[v]
						if score > best {
							best, bestW = score, wi
						}
					}
				}
				pi[k][cell], bp[k][cell] = best, bestW
				if !math.IsInf(best, -1) {
					viable = true
				}
			}
		}
		if !viable {
			return nil, &NoViableTagError{Sentence: -1, Position: k, Word: words[k]}
		}
	}

	best, bestU, bestV := negInf, 0, 0
	for ui, u := range d.states(n - 2) {
		for v := 0; v < m; v++ {
			score := pi[n-1][ui*m+v] + d.transition(u, v, m)
			if score > best {
				best, bestU, bestV = score, ui, v
			}
		}
	}
	if math.IsInf(best, -1) {
		return nil, &NoViableTagError{Sentence: -1, Position: -1}
	}

	seq := make([]int, n)
	seq[n-1] = bestV
	if n > 1 {
		seq[n-2] = bestU
	}
	for k := n - 1; k >= 2; k-- {
		seq[k-2] = bp[k][seq[k-1]*m+seq[k]]
	}
	path := &Path{Tags: make([]Tag, n), LogProb: best}
	for i, t := range seq {
		path.Tags[i] = d.tags[t]
	}
	return path, nil
}
