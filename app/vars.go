package app

import (
	"fmt"
	"os"
	"strings"

	"hmmtag/alg/hmm"
	"hmmtag/nlp/format/counts"
	"hmmtag/nlp/parser/rare"
	"hmmtag/util/conf"

	"github.com/gonuts/commander"
	"go.uber.org/zap"
)

var (
	// file names
	countsFile string
	confFile   string
	input      string
	inputGold  string
	output     string

	// model options; negative or empty values defer to the conf file
	tagList   string
	threshold float64
	rareToken string
	workers   int
	limit     int
)

// Model is everything loaded from the count and configuration files.
type Model struct {
	Conf      *conf.Conf
	Tags      *hmm.TagSet
	Counts    *hmm.CountTable
	Estimator *hmm.Estimator
}

func (m *Model) Normalizer() *rare.Normalizer {
	return &rare.Normalizer{
		Frequencies: &rare.CountFrequencies{Counts: m.Counts, Tags: m.Tags},
		Threshold:   m.Conf.Rare.Threshold,
		Replacement: m.Conf.Rare.Token,
	}
}

func LoadConf() (*conf.Conf, error) {
	c := conf.Default()
	if len(confFile) > 0 {
		var err error
		if c, err = conf.ReadFile(confFile); err != nil {
			return nil, fmt.Errorf("conf %s: %w", confFile, err)
		}
	}
	c.SetTags(tagList)
	if threshold >= 0 {
		c.Rare.Threshold = threshold
	}
	if len(rareToken) > 0 {
		c.Rare.Token = rareToken
	}
	if workers >= 0 {
		c.Workers = workers
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadModel() (*Model, error) {
	c, err := LoadConf()
	if err != nil {
		return nil, err
	}
	tags, err := hmm.NewTagSet(c.Tags)
	if err != nil {
		return nil, fmt.Errorf("tag vocabulary (-tags or conf): %w", err)
	}
	logger.Info("Loading counts", zap.String("file", countsFile))
	table, err := counts.ReadFile(countsFile)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded counts", zap.Int("entries", table.Len()))
	for _, tag := range tags.Tags() {
		if table.NGram(tag) == 0 {
			logger.Warn("Tag has no unigram count", zap.Stringer("tag", tag))
		}
	}
	return &Model{
		Conf:      c,
		Tags:      tags,
		Counts:    table,
		Estimator: hmm.NewEstimator(table, tags, logger),
	}, nil
}

func ModelConfigOut(m *Model) {
	logger.Info("Configuration",
		zap.String("counts", countsFile),
		zap.String("conf", confFile),
		zap.String("tags", strings.Join(m.Tags.Labels(), ",")),
		zap.Float64("rare threshold", m.Conf.Rare.Threshold),
		zap.String("rare token", m.Conf.Rare.Token),
		zap.Int("workers", m.Conf.Workers),
		zap.Int("cpus", CPUs))
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		logger.Error("Error accessing file", zap.String("file", filename), zap.Error(err))
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("required flag -%s not set", name)
		}
	}
	return nil
}

func VerifyFiles(filenames ...string) error {
	for _, filename := range filenames {
		if len(filename) > 0 && !VerifyExists(filename) {
			return fmt.Errorf("cannot access %s", filename)
		}
	}
	return nil
}

func modelFlags(cmd *commander.Command) {
	cmd.Flag.StringVar(&countsFile, "counts", "", "Counts file (<count> <TYPE> <fields>)")
	cmd.Flag.StringVar(&confFile, "conf", "", "Optional - YAML model configuration file")
	cmd.Flag.StringVar(&tagList, "tags", "", "Comma separated tag vocabulary (overrides conf)")
	cmd.Flag.Float64Var(&threshold, "threshold", -1, "Rare word frequency threshold (overrides conf)")
	cmd.Flag.StringVar(&rareToken, "rare", "", "Rare word replacement token (overrides conf)")
	cmd.Flag.IntVar(&workers, "workers", -1, "Tagging workers, 0 = one per CPU (overrides conf)")
}
