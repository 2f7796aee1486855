package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldtlabs/finmat/recog"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadInput_Rational parses a rational problem file with scalar entries.
func TestLoadInput_Rational(t *testing.T) {
	path := writeTemp(t, `
matrices:
  - [["0", "-1"], ["1", "0"]]
  - [["1/2", "0"], ["0", "2"]]
`)
	in, err := loadInput(path)
	require.NoError(t, err)
	assert.False(t, in.isNumberField())

	mats, err := in.buildRational()
	require.NoError(t, err)
	require.Len(t, mats, 2)
	assert.Equal(t, "1/2", mats[1].At(0, 0).RatString())
}

// TestLoadInput_NumberField parses coordinate-vector entries with minpoly.
func TestLoadInput_NumberField(t *testing.T) {
	path := writeTemp(t, `
minpoly: [1, 0, 1]
start_above: 2
matrices:
  - [[["0", "1"], "0"], ["0", ["0", "-1"]]]
`)
	in, err := loadInput(path)
	require.NoError(t, err)
	assert.True(t, in.isNumberField())
	assert.Equal(t, uint64(2), in.StartAbove)

	k, mats, err := in.buildNumberField()
	require.NoError(t, err)
	assert.Equal(t, 2, k.Degree())
	require.Len(t, mats, 1)
	assert.True(t, k.Equal(mats[0].At(0, 0), k.Gen()), "entry (0,0) is α")
}

// TestLoadInput_Errors covers missing matrices and malformed entries.
func TestLoadInput_Errors(t *testing.T) {
	_, err := loadInput(writeTemp(t, `matrices: []`))
	assert.Error(t, err, "empty matrix list")

	in, err := loadInput(writeTemp(t, `
matrices:
  - [["x"], ["1"]]
`))
	require.NoError(t, err)
	_, err = in.buildRational()
	assert.Error(t, err, "non-numeric entry")
}

// TestRecognize_InfiniteVerdictReportedOnce drives the recognize command
// on an infinite shear: the error must surface for the exit-code switch in
// main, without cobra printing a second report of its own.
func TestRecognize_InfiniteVerdictReportedOnce(t *testing.T) {
	path := writeTemp(t, `
matrices:
  - [["1", "1"], ["0", "1"]]
`)
	var errOut bytes.Buffer
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"recognize", path})

	err := rootCmd.Execute()
	assert.ErrorIs(t, err, recog.ErrGroupInfinite)
	assert.Empty(t, errOut.String(), "cobra must not echo the error")
}
