package taggedsentence

// Package taggedsentence reads and writes word-tag files
// every line holds a word and its tag separated by whitespace
// sentences end with a new line

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"
)

func Read(reader io.Reader, limit int) ([]nlp.BasicTaggedSentence, error) {
	return read(reader, "", limit)
}

func read(reader io.Reader, filename string, limit int) ([]nlp.BasicTaggedSentence, error) {
	var (
		sentences []nlp.BasicTaggedSentence
		lineNum   int
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sent := make(nlp.BasicTaggedSentence, 0, 10)
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			sentences = append(sentences, sent)
			if limit > 0 && len(sentences) >= limit {
				return sentences, nil
			}
			sent = make(nlp.BasicTaggedSentence, 0, 10)
			continue
		}
		if len(fields) != 2 {
			return nil, &hmm.LoadError{
				File: filename,
				Line: lineNum,
				Err:  fmt.Errorf("expected <word> <tag>, got %d fields", len(fields)),
			}
		}
		sent = append(sent, nlp.TaggedToken{Token: fields[0], POS: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, &hmm.LoadError{File: filename, Line: lineNum, Err: err}
	}
	if len(sent) > 0 {
		sentences = append(sentences, sent)
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]nlp.BasicTaggedSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &hmm.LoadError{File: filename, Err: err}
	}
	defer file.Close()

	return read(file, filename, limit)
}

func Write(writer io.Writer, sents []nlp.BasicTaggedSentence) error {
	bufWriter := bufio.NewWriter(writer)
	for _, sent := range sents {
		writeSentence(bufWriter, sent)
	}
	return bufWriter.Flush()
}

func writeSentence(bufWriter *bufio.Writer, sent nlp.TaggedSentence) {
	for _, token := range sent.TaggedTokens() {
		bufWriter.WriteString(token.Token)
		bufWriter.WriteByte(' ')
		bufWriter.WriteString(token.POS)
		bufWriter.WriteByte('\n')
	}
	bufWriter.WriteByte('\n')
}

func WriteFile(filename string, sents []nlp.BasicTaggedSentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, sents)
}
