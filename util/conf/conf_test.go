package conf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	c, err := Read(strings.NewReader(`
tags: [O, I-GENE]
rare:
  threshold: 3
workers: 4
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"O", "I-GENE"}, c.Tags)
	assert.Equal(t, 3.0, c.Rare.Threshold)
	assert.Equal(t, DEFAULT_RARE_TOKEN, c.Rare.Token)
	assert.Equal(t, 4, c.Workers)
}

func TestReadInvalid(t *testing.T) {
	for _, data := range []string{
		"tags: [O, O]",
		"rare: {threshold: -1}",
		"rare: {replacement: 'a b'}",
		"workers: -2",
		"tags: {",
	} {
		_, err := Read(strings.NewReader(data))
		assert.Error(t, err, data)
	}
}

func TestSetTags(t *testing.T) {
	c := Default()
	c.Tags = []string{"O"}
	c.SetTags("")
	assert.Equal(t, []string{"O"}, c.Tags)
	c.SetTags(" DET, NOUN ,,VERB")
	assert.Equal(t, []string{"DET", "NOUN", "VERB"}, c.Tags)
}
