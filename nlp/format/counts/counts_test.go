package counts

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"hmmtag/alg/hmm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const AMERICANS = `3 WORDTAG O Americans
5 1-GRAM O

2 1-GRAM NNP
2 WORDTAG NNP Americans
4 2-GRAM * *
1.5 3-GRAM * * O
`

func TestRead(t *testing.T) {
	table, err := Read(strings.NewReader(AMERICANS))
	require.NoError(t, err)
	assert.Equal(t, 6, table.Len())
	assert.Equal(t, 3.0, table.Lookup("O Americans"))
	assert.Equal(t, 5.0, table.Lookup("O"))
	assert.Equal(t, 2.0, table.Lookup("NNP Americans"))
	assert.Equal(t, 1.5, table.Lookup("* * O"))
	assert.Equal(t, 0.0, table.Lookup("O Britons"))
	assert.Equal(t, 4.0, table.NGram(hmm.Start, hmm.Start))
}

func TestReadMalformed(t *testing.T) {
	for _, line := range []string{
		"x WORDTAG O word",
		"-1 1-GRAM O",
		"3 4-GRAM A B C D",
		"3 WORDTAG O",
		"3 2-GRAM O",
		"3",
	} {
		_, err := Read(strings.NewReader("5 1-GRAM O\n" + line + "\n"))
		var loadErr *hmm.LoadError
		require.True(t, errors.As(err, &loadErr), line)
		assert.Equal(t, 2, loadErr.Line, line)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.counts"))
	var loadErr *hmm.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestWriteFile(t *testing.T) {
	table, err := Read(strings.NewReader(AMERICANS))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table))
	assert.Equal(t, `2 WORDTAG NNP Americans
3 WORDTAG O Americans
2 1-GRAM NNP
5 1-GRAM O
4 2-GRAM * *
1.5 3-GRAM * * O
`, buf.String())

	filename := filepath.Join(t.TempDir(), "out.counts")
	require.NoError(t, WriteFile(filename, table))
	reread, err := ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, table.Entries(), reread.Entries())
}
