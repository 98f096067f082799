package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/services"
)

func TestDetectModeURLWins(t *testing.T) {
	mode, url := services.DetectMode("이 글 참고해서 써줘 https://example.com/article?id=3")
	assert.Equal(t, services.ModeLink, mode)
	assert.Equal(t, "https://example.com/article?id=3", url)
}

func TestDetectModeURLBeatsSearchTrigger(t *testing.T) {
	// both a URL and a search word: URL has priority
	mode, url := services.DetectMode("search this page https://example.com/post")
	assert.Equal(t, services.ModeLink, mode)
	assert.Equal(t, "https://example.com/post", url)
}

func TestDetectModeStripsTrailingPunctuation(t *testing.T) {
	mode, url := services.DetectMode("읽어봐: https://example.com/a.")
	assert.Equal(t, services.ModeLink, mode)
	assert.Equal(t, "https://example.com/a", url)
}

func TestDetectModeSearchTriggers(t *testing.T) {
	for _, prompt := range []string{
		"제주도 맛집 검색해서 정리해줘",
		"find recent statistics on remote work",
		"Look up the history of jazz",
		"이 주제 좀 조사해줘",
	} {
		mode, url := services.DetectMode(prompt)
		assert.Equal(t, services.ModeSearch, mode, "prompt: %s", prompt)
		assert.Empty(t, url)
	}
}

func TestDetectModeDefaultsToEnhance(t *testing.T) {
	mode, url := services.DetectMode("이 문단을 더 자연스럽게 다듬어줘")
	assert.Equal(t, services.ModeEnhance, mode)
	assert.Empty(t, url)

	mode, _ = services.DetectMode("make this paragraph punchier")
	assert.Equal(t, services.ModeEnhance, mode)
}

func TestDetectModeHTTPAlsoMatches(t *testing.T) {
	mode, url := services.DetectMode("http://example.com/plain")
	assert.Equal(t, services.ModeLink, mode)
	assert.Equal(t, "http://example.com/plain", url)
}
