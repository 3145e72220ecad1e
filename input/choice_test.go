package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var genders = []string{"male", "female", "other"}

func TestReadChoice_PicksByNumber(t *testing.T) {
	p, out := newTestPrompter("2\n")

	idx, err := p.ReadChoice("What is your gender", genders, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, `What is your gender [1: "male", 2: "female", 3: "other"]: `, out.String())
}

func TestReadChoice_DefaultShownInMenu(t *testing.T) {
	p, out := newTestPrompter("1\n")

	_, err := p.ReadChoice("What is your gender", genders, 1)
	require.NoError(t, err)
	assert.Equal(t, `What is your gender [1: "male", 2: "female", 3: "other" (default: 2)]: `, out.String())
}

func TestReadChoice_EmptyLineTakesDefault(t *testing.T) {
	p, _ := newTestPrompter("\n9\n")

	idx, err := p.ReadChoice("What is your gender", genders, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	// Only the empty line was consumed.
	next, err := p.ReadStringNoQuestion()
	require.NoError(t, err)
	assert.Equal(t, "9", next)
}

func TestReadChoice_RetriesWhenTooBig(t *testing.T) {
	p, out := newTestPrompter("5\n1\n")

	idx, err := p.ReadChoice("What is your gender", genders, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	assert.Contains(t, out.String(), "4 is not a valid option (too big)")
	// The full menu is printed again for the retry.
	assert.Equal(t, 2, strings.Count(out.String(), `[1: "male"`))
}

func TestReadChoice_RejectsZero(t *testing.T) {
	p, out := newTestPrompter("0\n2\n")

	idx, err := p.ReadChoice("What is your gender", genders, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Contains(t, out.String(), "0 is not a valid option")
	assert.NotContains(t, out.String(), "too big")
}

func TestReadChoice_RejectsNonNumbersAndNegatives(t *testing.T) {
	p, out := newTestPrompter("abc\n-3\n3\n")

	idx, err := p.ReadChoice("What is your gender", genders, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Contains(t, out.String(), "abc is not a valid option")
	assert.Contains(t, out.String(), "-3 is not a valid option")
}

func TestReadChoice_EmptyLineWithoutDefaultRetries(t *testing.T) {
	p, out := newTestPrompter("\n1\n")

	idx, err := p.ReadChoice("What is your gender", genders, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Contains(t, out.String(), "is not a valid option")
}

func TestReadChoice_DefaultOutOfRangePanics(t *testing.T) {
	p, _ := newTestPrompter("1\n")

	assert.Panics(t, func() {
		_, _ = p.ReadChoice("What is your gender", genders, 5)
	})
	assert.Panics(t, func() {
		_, _ = p.ReadChoice("What is your gender", genders, len(genders))
	})
}

func TestReadChoice_EOFPropagates(t *testing.T) {
	p, _ := newTestPrompter("")

	_, err := p.ReadChoice("What is your gender", genders, -1)
	require.ErrorIs(t, err, io.EOF)
}
