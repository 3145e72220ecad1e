package input

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/readhuman/parse"
)

func TestReadCustomNonEmpty_ParsesFirstValidLine(t *testing.T) {
	p, out := newTestPrompter("42\n")

	age, err := ReadCustomNonEmpty(p, "How old are you", parse.Uint16)
	require.NoError(t, err)
	assert.Equal(t, uint16(42), age)
	assert.Equal(t, "How old are you: ", out.String())
}

func TestReadCustomNonEmpty_RetriesOnParseFailure(t *testing.T) {
	p, out := newTestPrompter("abc\n42\n")

	age, err := ReadCustomNonEmpty(p, "How old are you", parse.Uint16)
	require.NoError(t, err)
	assert.Equal(t, uint16(42), age)
	assert.Contains(t, out.String(), "abc is not valid")
}

func TestReadCustomNonEmpty_RetriesOnEmptyThenParseFailure(t *testing.T) {
	p, out := newTestPrompter("\nxyz\n7\n")

	n, err := ReadCustomNonEmpty(p, "How many", parse.Int)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Contains(t, out.String(), "Input must not be empty.")
	assert.Contains(t, out.String(), "xyz is not valid")
}

func TestReadCustom_EmptyLineSkipsImmediately(t *testing.T) {
	p, out := newTestPrompter("\n")

	n, ok, err := ReadCustom(p, "Visits", parse.Int)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, n)

	// No retry diagnostic; just the one prompt.
	assert.Equal(t, "Visits: ", out.String())
}

func TestReadCustom_RetriesOnlyOnParseFailure(t *testing.T) {
	p, out := newTestPrompter("soon\n90s\n")

	d, ok, err := ReadCustom(p, "Timeout", parse.Duration)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 90*time.Second, d)
	assert.Contains(t, out.String(), "soon is not valid")
}

func TestReadCustomNoQuestion_PrintsNoPrompt(t *testing.T) {
	p, out := newTestPrompter("3.5\n")

	f, ok, err := ReadCustomNoQuestion(p, parse.Float64)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.5, f)
	assert.Equal(t, "", out.String())
}

func TestReadCustomNoQuestion_EmptySkips(t *testing.T) {
	p, out := newTestPrompter("\n")

	_, ok, err := ReadCustomNoQuestion(p, parse.Float64)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", out.String())
}

func TestReadCustom_EOFPropagates(t *testing.T) {
	p, _ := newTestPrompter("")

	_, _, err := ReadCustom(p, "Visits", parse.Int)
	require.ErrorIs(t, err, io.EOF)
}
