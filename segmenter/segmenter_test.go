package segmenter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/segmenter"
)

func TestSplitEmptyScript(t *testing.T) {
	_, err := segmenter.Split("", 500)
	assert.ErrorIs(t, err, segmenter.ErrEmptyScript)

	_, err = segmenter.Split("   \n\n  \t ", 500)
	assert.ErrorIs(t, err, segmenter.ErrEmptyScript)
}

func TestSplitByParagraphs(t *testing.T) {
	script := "첫 번째 문단입니다.\n\n두 번째 문단입니다.\n\n세 번째 문단입니다."
	segs, err := segmenter.Split(script, 500)
	assert.NoError(t, err)
	assert.Len(t, segs, 3)
	assert.Equal(t, "첫 번째 문단입니다.", segs[0])
	assert.Equal(t, "세 번째 문단입니다.", segs[2])
}

func TestSplitSkipsBlankParagraphs(t *testing.T) {
	script := "one\n\n   \n\ntwo"
	segs, err := segmenter.Split(script, 500)
	assert.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, segs)
}

func TestSplitBlankLineWithSpacesIsABoundary(t *testing.T) {
	script := "one\n   \ntwo"
	segs, err := segmenter.Split(script, 500)
	assert.NoError(t, err)
	assert.Len(t, segs, 2)
}

func TestLongParagraphIsRepackedBySentence(t *testing.T) {
	sentence := "This is a fairly ordinary sentence that keeps going for a while."
	para := strings.TrimSpace(strings.Repeat(sentence+" ", 20))

	segs, err := segmenter.Split(para, 200)
	assert.NoError(t, err)
	assert.Greater(t, len(segs), 1)
	for _, s := range segs {
		assert.LessOrEqual(t, len([]rune(s)), 200)
		assert.NotEmpty(t, strings.TrimSpace(s))
	}
	// no text lost
	joined := strings.Join(segs, " ")
	assert.Equal(t, para, joined)
}

func TestSplitZeroMaxLengthUsesDefault(t *testing.T) {
	segs, err := segmenter.Split("short paragraph", 0)
	assert.NoError(t, err)
	assert.Equal(t, []string{"short paragraph"}, segs)
}

func TestSplitSentences(t *testing.T) {
	out := segmenter.SplitSentences("Hello there. How are you? Fine! 좋아요. 끝")
	assert.Equal(t, []string{"Hello there.", "How are you?", "Fine!", "좋아요.", "끝"}, out)
}

func TestSplitSentencesKeepsTrailingPunctuation(t *testing.T) {
	out := segmenter.SplitSentences("One. Two.")
	assert.Equal(t, []string{"One.", "Two."}, out)
}
