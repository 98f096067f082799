package keywords_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/keywords"
)

func TestLexicalExtractsByFrequency(t *testing.T) {
	l := keywords.NewLexical()
	text := "Sunset over the ocean. The sunset paints the ocean orange while seagulls circle the lighthouse."
	res, err := l.Extract(context.Background(), text, 3)

	assert.NoError(t, err)
	assert.Len(t, res.Keywords, 3)
	// sunset and ocean appear twice, first-seen order breaks the tie
	assert.Equal(t, "sunset", res.Keywords[0])
	assert.Equal(t, "ocean", res.Keywords[1])
}

func TestLexicalSkipsGenericAndShortWords(t *testing.T) {
	l := keywords.NewLexical()
	res, err := l.Extract(context.Background(), "this is a very good thing about people", 5)

	assert.NoError(t, err)
	// everything filtered, fallback keywords returned
	assert.Equal(t, []string{"scene", "background", "visual"}, res.Keywords)
}

func TestLexicalSkipsNonASCIIWords(t *testing.T) {
	l := keywords.NewLexical()
	res, err := l.Extract(context.Background(), "바닷가의 아름다운 석양 sunset moment", 5)

	assert.NoError(t, err)
	assert.Contains(t, res.Keywords, "sunset")
	assert.Contains(t, res.Keywords, "moment")
	assert.NotContains(t, res.Keywords, "석양")
}

func TestLexicalIsDeterministic(t *testing.T) {
	l := keywords.NewLexical()
	text := "mountain lake reflection forest mountain hiking trail forest"
	a, _ := l.Extract(context.Background(), text, 5)
	b, _ := l.Extract(context.Background(), text, 5)
	assert.Equal(t, a.Keywords, b.Keywords)
}

// countingExtractor records how many times Extract really runs.
type countingExtractor struct {
	calls int
	err   error
}

func (c *countingExtractor) Name() string { return "counting" }

func (c *countingExtractor) Extract(_ context.Context, text string, _ int) (keywords.Result, error) {
	c.calls++
	if c.err != nil {
		return keywords.Result{}, c.err
	}
	return keywords.Result{Keywords: []string{"echo", text}}, nil
}

func TestCachedMemoizesPerTextAndMax(t *testing.T) {
	inner := &countingExtractor{}
	cached := keywords.NewCached(inner)

	first, err := cached.Extract(context.Background(), "hello", 5)
	assert.NoError(t, err)
	second, err := cached.Extract(context.Background(), "hello", 5)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls)

	// different max is a different cache entry
	_, err = cached.Extract(context.Background(), "hello", 10)
	assert.NoError(t, err)
	assert.Equal(t, 2, inner.calls)

	_, err = cached.Extract(context.Background(), "other", 5)
	assert.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}

func TestCachedDoesNotCacheErrors(t *testing.T) {
	inner := &countingExtractor{err: errors.New("flaky")}
	cached := keywords.NewCached(inner)

	_, err := cached.Extract(context.Background(), "hello", 5)
	assert.Error(t, err)

	inner.err = nil
	res, err := cached.Extract(context.Background(), "hello", 5)
	assert.NoError(t, err)
	assert.NotEmpty(t, res.Keywords)
	assert.Equal(t, 2, inner.calls)
}
