package textdiff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/textdiff"
)

func TestUnifiedIdenticalTexts(t *testing.T) {
	out, err := textdiff.Unified("v0", "v1", "same\ntext", "same\ntext")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestUnifiedShowsChanges(t *testing.T) {
	from := "the hook line\nthe body line\nthe closing line"
	to := "the hook line\na rewritten body line\nthe closing line"

	out, err := textdiff.Unified("v0 (original)", "v1", from, to)
	assert.NoError(t, err)
	assert.Contains(t, out, "--- v0 (original)")
	assert.Contains(t, out, "+++ v1")
	assert.Contains(t, out, "-the body line")
	assert.Contains(t, out, "+a rewritten body line")
	// context lines survive
	assert.Contains(t, out, " the hook line")
}

func TestUnifiedHandlesAddedLines(t *testing.T) {
	out, err := textdiff.Unified("a", "b", "one", "one\ntwo")
	assert.NoError(t, err)
	assert.True(t, strings.Contains(out, "+two"))
}
