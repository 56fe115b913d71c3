package app

import (
	"hmmtag/nlp/format/raw"
	"hmmtag/nlp/format/taggedsentence"
	"hmmtag/nlp/parser/rare"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
)

var rawInput bool

func RareConfigOut(normalizer *rare.Normalizer, frequencies string) {
	logger.Info("Configuration",
		zap.String("frequencies", frequencies),
		zap.Float64("rare threshold", normalizer.Threshold),
		zap.String("rare token", normalizer.Replacement))
	logger.Info("Data",
		zap.Bool("raw input", rawInput),
		zap.String("input", input),
		zap.String("output", output))
}

// Rare replaces rare words of a tagged training file, or of a raw file
// with -raw. Tagged input needs the counts of the full vocabulary; raw
// input without -counts is measured against its own word frequencies.
func Rare(cmd *commander.Command, args []string) error {
	required := []string{"in", "out", "counts"}
	if rawInput {
		required = required[:2]
	}
	if err := VerifyFlags(cmd, required); err != nil {
		return err
	}
	if err := VerifyFiles(countsFile, confFile, input); err != nil {
		return err
	}

	if rawInput {
		return rareRaw()
	}
	m, err := LoadModel()
	if err != nil {
		return err
	}
	normalizer := m.Normalizer()
	RareConfigOut(normalizer, countsFile)

	sents, err := taggedsentence.ReadFile(input, limit)
	if err != nil {
		return err
	}
	logger.Info("Read tagged sentences", zap.Int("sentences", len(sents)))
	normalized, replaced := normalizer.TaggedCorpus(sents)
	logger.Info("Replaced rare words", zap.Int("tokens", replaced))
	if err := taggedsentence.WriteFile(output, normalized); err != nil {
		return err
	}
	logger.Info("Wrote tagged sentences", zap.Int("sentences", len(normalized)), zap.String("file", output))
	return nil
}

func rareRaw() error {
	sents, err := raw.ReadFile(input, limit)
	if err != nil {
		return err
	}
	logger.Info("Read raw sentences", zap.Int("sentences", len(sents)))

	var (
		normalizer  *rare.Normalizer
		frequencies = input
	)
	if len(countsFile) > 0 {
		m, err := LoadModel()
		if err != nil {
			return err
		}
		normalizer, frequencies = m.Normalizer(), countsFile
	} else {
		c, err := LoadConf()
		if err != nil {
			return err
		}
		normalizer = &rare.Normalizer{
			Frequencies: rare.NewCorpusFrequencies(sents),
			Threshold:   c.Rare.Threshold,
			Replacement: c.Rare.Token,
		}
	}
	RareConfigOut(normalizer, frequencies)

	normalized, replaced := normalizer.UntaggedCorpus(sents)
	logger.Info("Replaced rare words", zap.Int("tokens", replaced))
	if err := raw.WriteFile(output, normalized); err != nil {
		return err
	}
	logger.Info("Wrote raw sentences", zap.Int("sentences", len(normalized)), zap.String("file", output))
	return nil
}

func RareCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Rare,
		UsageLine: "rare <file options> [arguments]",
		Short:     "replaces rare words with the rare token",
		Long: `
replaces words occurring less than -threshold times with the rare token

	$ ./hmmtag rare -counts <counts file> -tags <t1,t2,...> -in <tagged file> -out <tagged file> [options]
	$ ./hmmtag rare -raw -in <raw file> -out <raw file> [options]

`,
		Flag: *flag.NewFlagSet("rare", flag.ExitOnError),
	}
	modelFlags(cmd)
	cmd.Flag.StringVar(&input, "in", "", "Input file")
	cmd.Flag.StringVar(&output, "out", "", "Output file")
	cmd.Flag.BoolVar(&rawInput, "raw", false, "Input is a raw (untagged) file")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit input sentences")
	return cmd
}
