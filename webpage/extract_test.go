package webpage_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/webpage"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Test Article</title><style>body { color: red; }</style></head>
<body>
<script>console.log("noise");</script>
<article>
<h1>The Quiet Harbor</h1>
<p>Fishing boats return to the quiet harbor every evening just before sunset.</p>
<p>Local vendors sell the day's catch along the waterfront until the lights come on.</p>
</article>
</body>
</html>`

func TestExtractTextFromArticle(t *testing.T) {
	text, err := webpage.ExtractText(articleHTML, "https://example.com/harbor")
	assert.NoError(t, err)
	assert.Contains(t, text, "quiet harbor")
	assert.Contains(t, text, "waterfront")
	// script and style bodies never leak into the text
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
}

func TestExtractTextEmptyDocument(t *testing.T) {
	_, err := webpage.ExtractText("<html><body></body></html>", "https://example.com/empty")
	assert.Error(t, err)
}

func TestExtractTextTruncates(t *testing.T) {
	long := strings.Repeat("word ", 3000)
	html := "<html><body><article><p>" + long + "</p></article></body></html>"

	text, err := webpage.ExtractText(html, "https://example.com/long")
	assert.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(text)), 5000)
}
