package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hmmtag/alg/hmm"
	"hmmtag/nlp/format/raw"
	"hmmtag/nlp/format/taggedsentence"
	"hmmtag/nlp/parser/tagger"
	nlp "hmmtag/nlp/types"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
)

func TagConfigOut(m *Model, decoder string) {
	ModelConfigOut(m)
	logger.Info("Data",
		zap.String("decoder", decoder),
		zap.String("input (raw)", input),
		zap.String("output (tagged)", output),
		zap.Int("limit", limit))
}

// TagAndWrite tags the raw input file and writes the tagged output.
// Sentences that cannot be tagged are written as empty blocks so that the
// output stays aligned with the input; their errors are joined into the
// returned error.
func TagAndWrite(t tagger.Tagger, m *Model) error {
	sents, err := raw.ReadFile(input, limit)
	if err != nil {
		return err
	}
	logger.Info("Read raw sentences", zap.Int("sentences", len(sents)), zap.String("file", input))

	startTime := time.Now()
	tagged, errs := tagger.TagCorpus(context.Background(), t, sents, m.Conf.Workers, logger)
	logger.Info("TAG Total Time", zap.Duration("elapsed", time.Since(startTime)))

	for _, sentErr := range errs {
		fields := []zap.Field{zap.Int("sentence", sentErr.Index)}
		var noTag *hmm.NoViableTagError
		if errors.As(sentErr, &noTag) && noTag.Position >= 0 {
			fields = append(fields, zap.Int("position", noTag.Position), zap.String("word", noTag.Word))
		}
		logger.Error("Failed tagging sentence", append(fields, zap.Error(sentErr.Err))...)
		tagged[sentErr.Index] = nlp.BasicTaggedSentence{}
	}
	if anomalies := m.Estimator.Anomalies(); anomalies > 0 {
		logger.Warn("Estimates hit zero denominators", zap.Int64("anomalies", anomalies))
	}
	if err := taggedsentence.WriteFile(output, tagged); err != nil {
		return err
	}
	logger.Info("Wrote tagged sentences", zap.Int("sentences", len(tagged)), zap.String("file", output))
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d sentences could not be tagged, first: %w", len(errs), len(sents), errs[0])
	}
	return nil
}

func ArgMax(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"counts", "in", "out"}); err != nil {
		return err
	}
	if err := VerifyFiles(countsFile, confFile, input); err != nil {
		return err
	}
	m, err := LoadModel()
	if err != nil {
		return err
	}
	TagConfigOut(m, "argmax")
	return TagAndWrite(&tagger.ArgMax{Estimator: m.Estimator, Rare: m.Conf.Rare.Token}, m)
}

func Viterbi(cmd *commander.Command, args []string) error {
	if err := VerifyFlags(cmd, []string{"counts", "in", "out"}); err != nil {
		return err
	}
	if err := VerifyFiles(countsFile, confFile, input); err != nil {
		return err
	}
	m, err := LoadModel()
	if err != nil {
		return err
	}
	TagConfigOut(m, "viterbi")
	return TagAndWrite(tagger.NewViterbi(m.Estimator, m.Normalizer()), m)
}

func tagFlags(cmd *commander.Command) {
	modelFlags(cmd)
	cmd.Flag.StringVar(&input, "in", "", "Input raw file (token per line, blank line between sentences)")
	cmd.Flag.StringVar(&output, "out", "", "Output tagged file")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit input sentences")
}

func ArgMaxCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       ArgMax,
		UsageLine: "argmax <file options> [arguments]",
		Short:     "tags each word with its arg-max emission tag",
		Long: `
tags each word with its arg-max emission tag, unseen words as the rare token

	$ ./hmmtag argmax -counts <counts file> -tags <t1,t2,...> -in <raw file> -out <tagged file> [options]

`,
		Flag: *flag.NewFlagSet("argmax", flag.ExitOnError),
	}
	tagFlags(cmd)
	return cmd
}

func ViterbiCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Viterbi,
		UsageLine: "viterbi <file options> [arguments]",
		Short:     "tags sentences with the most probable trigram HMM tag sequence",
		Long: `
tags sentences with the most probable trigram HMM tag sequence
words rarer than -threshold in the counts are scored as the rare token

	$ ./hmmtag viterbi -counts <counts file> -conf <model.yaml> -in <raw file> -out <tagged file> [options]

`,
		Flag: *flag.NewFlagSet("viterbi", flag.ExitOnError),
	}
	tagFlags(cmd)
	return cmd
}
