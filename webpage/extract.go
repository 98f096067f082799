package webpage

import (
	"fmt"
	"strings"

	"github.com/advancedlogic/GoOse/pkg/goose"
	readability "github.com/go-shiori/go-readability"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

const maxExtractedRunes = 5000

// ExtractText 는 HTML 에서 본문 텍스트를 추출한다.
// trafilatura → readability → GoOse 순서로 시도하고, 모두 실패하면
// 텍스트 노드를 그대로 긁어낸다. 결과는 maxExtractedRunes 로 잘린다.
func ExtractText(htmlStr string, pageURL string) (string, error) {
	if text, err := extractWithTrafilatura(htmlStr); err == nil && text != "" {
		return truncate(text), nil
	}
	if text, err := extractWithReadability(htmlStr); err == nil && text != "" {
		return truncate(text), nil
	}
	if text, err := extractWithGoose(htmlStr, pageURL); err == nil && text != "" {
		return truncate(text), nil
	}
	if text := extractPlainText(htmlStr); text != "" {
		return truncate(text), nil
	}
	return "", fmt.Errorf("webpage: no readable content")
}

func extractWithTrafilatura(htmlStr string) (string, error) {
	article, err := trafilatura.Extract(strings.NewReader(htmlStr), trafilatura.Options{})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(article.ContentText), nil
}

func extractWithReadability(htmlStr string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return "", err
	}
	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(article.TextContent), nil
}

func extractWithGoose(htmlStr string, pageURL string) (string, error) {
	g := goose.New()
	article, err := g.ExtractFromRawHTML(htmlStr, pageURL)
	if err != nil {
		return "", err
	}
	if article == nil {
		return "", fmt.Errorf("webpage: goose returned nil article")
	}
	return strings.TrimSpace(article.CleanedText), nil
}

// extractPlainText 는 최후 수단으로 모든 텍스트 노드를 이어 붙인다.
func extractPlainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return strings.TrimSpace(b.String())
}

func truncate(s string) string {
	rs := []rune(s)
	if len(rs) <= maxExtractedRunes {
		return s
	}
	return string(rs[:maxExtractedRunes])
}
