package eval

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

func Precision(truePositives, testPositives int) float64 {
	if testPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(testPositives)
}

func Recall(truePositives, conditionPositives int) float64 {
	if conditionPositives == 0 {
		return 0
	}
	return float64(truePositives) / float64(conditionPositives)
}

func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2.0 * (precision * recall) / (precision + recall)
}

type Error interface {
	String() string
	Class() string
}

type Errors []Error

func (ers Errors) ByType() map[string]int {
	retval := make(map[string]int)
	for _, e := range ers {
		retval[e.Class()]++
	}
	return retval
}

type Result struct {
	TP, FP, TN, FN int
	Errors         Errors
}

func (r *Result) Add(other *Result) {
	r.TP += other.TP
	r.FP += other.FP
	r.TN += other.TN
	r.FN += other.FN
}

func (r *Result) All() int {
	return r.TP + r.FP + r.TN + r.FN
}

func (r *Result) Correct() int {
	return r.TP + r.TN
}

func (r *Result) Incorrect() int {
	return r.FP + r.FN
}

func (r *Result) TestPositives() int {
	return r.TP + r.FP
}

func (r *Result) ConditionPositives() int {
	return r.TP + r.FN
}

func (r *Result) Precision() float64 {
	return Precision(r.TP, r.TestPositives())
}

func (r *Result) Recall() float64 {
	return Recall(r.TP, r.ConditionPositives())
}

func (r *Result) Accuracy() float64 {
	if r.All() == 0 {
		return 0
	}
	return float64(r.Correct()) / float64(r.All())
}

func (r *Result) F1() float64 {
	return F1(r.Precision(), r.Recall())
}

// Total accumulates per-instance results, overall and per class.
type Total struct {
	Result
	Classes           map[string]*Result
	Exact, Population int
}

func NewTotal() *Total {
	return &Total{Classes: make(map[string]*Result)}
}

func (t *Total) Add(r *Result) {
	t.Result.Add(r)
	if r.Incorrect() == 0 {
		t.Exact += 1
	}
	t.Population += 1
	t.Result.Errors = append(t.Result.Errors, r.Errors...)
}

// Class returns the accumulator of a single class, creating it on demand.
func (t *Total) Class(name string) *Result {
	r, exists := t.Classes[name]
	if !exists {
		r = &Result{}
		t.Classes[name] = r
	}
	return r
}

func (t *Total) ClassNames() []string {
	names := make([]string, 0, len(t.Classes))
	for name := range t.Classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Total) ExactMatch() float64 {
	if t.Population == 0 {
		return 0
	}
	return float64(t.Exact) / float64(t.Population)
}

// MacroF1 is the unweighted mean F1 over all classes.
func (t *Total) MacroF1() float64 {
	if len(t.Classes) == 0 {
		return 0
	}
	scores := make([]float64, 0, len(t.Classes))
	for _, name := range t.ClassNames() {
		scores = append(scores, t.Classes[name].F1())
	}
	return floats.Sum(scores) / float64(len(scores))
}
