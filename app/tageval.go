package app

import (
	"fmt"
	"sort"

	"hmmtag/eval"
	"hmmtag/nlp/format/taggedsentence"
	nlp "hmmtag/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
)

type TagError struct {
	Word, Test, Gold string
}

func (e *TagError) String() string {
	return fmt.Sprintf("%s: %s instead of %s", e.Word, e.Test, e.Gold)
}

func (e *TagError) Class() string {
	return e.Gold + "->" + e.Test
}

// TagEvalSentence compares the tags of test against gold token by token.
// Test tokens beyond the gold length count as false positives and missing
// ones as false negatives.
func TagEvalSentence(test, gold nlp.BasicTaggedSentence, total *eval.Total) *eval.Result {
	retval := &eval.Result{}
	testTags, goldTags := test.Tags(), gold.Tags()
	for i, goldTag := range goldTags {
		if i >= len(testTags) {
			retval.FN++
			total.Class(goldTag).FN++
			continue
		}
		testTag := testTags[i]
		if testTag == goldTag {
			retval.TP++
			total.Class(goldTag).TP++
			continue
		}
		retval.FP++
		total.Class(testTag).FP++
		total.Class(goldTag).FN++
		retval.Errors = append(retval.Errors, &TagError{gold[i].Token, testTag, goldTag})
	}
	for _, testTag := range testTags[min(len(goldTags), len(testTags)):] {
		retval.FP++
		total.Class(testTag).FP++
	}
	return retval
}

func TagEvalCorpus(test, gold []nlp.BasicTaggedSentence) *eval.Total {
	total := eval.NewTotal()
	for i, goldSent := range gold {
		var testSent nlp.BasicTaggedSentence
		if i < len(test) {
			testSent = test[i]
		}
		total.Add(TagEvalSentence(testSent, goldSent, total))
	}
	return total
}

func TagEvalConfigOut() {
	logger.Info("Data",
		zap.String("tagged result", input),
		zap.String("gold", inputGold))
}

func TagEval(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"in", "gold"}); err != nil {
		return err
	}
	if err := VerifyFiles(input, inputGold); err != nil {
		return err
	}
	TagEvalConfigOut()

	test, err := taggedsentence.ReadFile(input, limit)
	if err != nil {
		return err
	}
	gold, err := taggedsentence.ReadFile(inputGold, limit)
	if err != nil {
		return err
	}
	if len(test) != len(gold) {
		logger.Warn("Sentence counts differ", zap.Int("test", len(test)), zap.Int("gold", len(gold)))
	}

	total := TagEvalCorpus(test, gold)
	fmt.Printf("Accuracy:\t%.4f\n", total.Accuracy())
	fmt.Printf("Exact match:\t%.4f (%d/%d)\n", total.ExactMatch(), total.Exact, total.Population)
	fmt.Printf("Macro F1:\t%.4f\n", total.MacroF1())
	fmt.Println()
	fmt.Println("Tag\tPrecision\tRecall\tF1")
	for _, name := range total.ClassNames() {
		r := total.Classes[name]
		fmt.Printf("%s\t%.4f\t%.4f\t%.4f\n", name, r.Precision(), r.Recall(), r.F1())
	}
	if showErrors {
		fmt.Println()
		fmt.Println("Errors (gold->test)\tCount")
		byType := total.Errors.ByType()
		classes := make([]string, 0, len(byType))
		for class := range byType {
			classes = append(classes, class)
		}
		sort.Strings(classes)
		for _, class := range classes {
			fmt.Printf("%s\t%d\n", class, byType[class])
		}
	}
	return nil
}

var showErrors bool

func TagEvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       TagEval,
		UsageLine: "tageval <file options> [arguments]",
		Short:     "evaluates a tagged file against a gold tagged file",
		Long: `
evaluates a tagged file against a gold tagged file

	$ ./hmmtag tageval -in <tagged file> -gold <gold tagged file> [options]

`,
		Flag: *flag.NewFlagSet("tageval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "in", "", "Tagged result file")
	cmd.Flag.StringVar(&inputGold, "gold", "", "Gold tagged file")
	cmd.Flag.BoolVar(&showErrors, "errors", false, "Show tag confusion counts")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit evaluated sentences")
	return cmd
}
