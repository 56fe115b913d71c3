package counts

// Package counts reads and writes n-gram count files
// every line is <count> <TYPE> <field> [<field> ...]
// where TYPE is one of WORDTAG, 1-GRAM, 2-GRAM, 3-GRAM

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"hmmtag/alg/hmm"
)

func Read(reader io.Reader) (*hmm.CountTable, error) {
	return read(reader, "")
}

func read(reader io.Reader, filename string) (*hmm.CountTable, error) {
	builder := hmm.NewCountBuilder()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := parseLine(builder, fields); err != nil {
			return nil, &hmm.LoadError{File: filename, Line: lineNum, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &hmm.LoadError{File: filename, Line: lineNum, Err: err}
	}
	return builder.Table(), nil
}

func parseLine(builder *hmm.CountBuilder, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("expected <count> <TYPE> <fields...>, got %d fields", len(fields))
	}
	count, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("bad count %q: %w", fields[0], err)
	}
	kind, exists := hmm.ParseCountKind(fields[1])
	if !exists {
		return fmt.Errorf("unknown count type %q", fields[1])
	}
	return builder.Add(kind, fields[2:], count)
}

func ReadFile(filename string) (*hmm.CountTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &hmm.LoadError{File: filename, Err: err}
	}
	defer file.Close()

	return read(file, filename)
}

func Write(writer io.Writer, table *hmm.CountTable) error {
	bufWriter := bufio.NewWriter(writer)
	for _, entry := range table.Entries() {
		count := strconv.FormatFloat(entry.Count, 'f', -1, 64)
		if _, err := fmt.Fprintf(bufWriter, "%s %s %s\n", count, entry.Kind, entry.Key); err != nil {
			return err
		}
	}
	return bufWriter.Flush()
}

func WriteFile(filename string, table *hmm.CountTable) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, table)
}
