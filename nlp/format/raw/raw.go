package raw

// Package raw reads raw format files
// raw files contain a token per line
// sentences end with a new line

import (
	"bufio"
	"io"
	"os"
	"strings"

	"hmmtag/alg/hmm"
	nlp "hmmtag/nlp/types"
)

func Read(reader io.Reader, limit int) ([]nlp.BasicSentence, error) {
	return read(reader, "", limit)
}

func read(reader io.Reader, filename string, limit int) ([]nlp.BasicSentence, error) {
	var (
		sentences []nlp.BasicSentence
		lineNum   int
	)
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	currentSent := make(nlp.BasicSentence, 0, 10)
	for scanner.Scan() {
		lineNum++
		curLine := strings.TrimSpace(scanner.Text())
		// an empty line indicates a new record
		if len(curLine) == 0 {
			sentences = append(sentences, currentSent)
			if limit > 0 && len(sentences) >= limit {
				return sentences, nil
			}
			currentSent = make(nlp.BasicSentence, 0, 10)
		} else {
			currentSent = append(currentSent, nlp.Token(curLine))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &hmm.LoadError{File: filename, Line: lineNum, Err: err}
	}
	// last sentence without a trailing blank line
	if len(currentSent) > 0 {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]nlp.BasicSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &hmm.LoadError{File: filename, Err: err}
	}
	defer file.Close()

	return read(file, filename, limit)
}

func Write(writer io.Writer, sents []nlp.BasicSentence) error {
	bufWriter := bufio.NewWriter(writer)
	for _, sent := range sents {
		for _, token := range sent {
			bufWriter.WriteString(string(token))
			bufWriter.WriteByte('\n')
		}
		bufWriter.WriteByte('\n')
	}
	return bufWriter.Flush()
}

func WriteFile(filename string, sents []nlp.BasicSentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, sents)
}
