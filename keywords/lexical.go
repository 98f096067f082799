package keywords

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// genericTerms 는 검색어로 쓸모없는 일반 단어 목록이다.
var genericTerms = map[string]struct{}{
	"thing": {}, "things": {}, "good": {}, "great": {}, "nice": {},
	"person": {}, "people": {}, "idea": {}, "ideas": {}, "very": {},
	"really": {}, "just": {}, "about": {}, "with": {}, "from": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "what": {},
	"when": {}, "where": {}, "which": {}, "there": {}, "here": {},
	"have": {}, "been": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "them": {}, "they": {}, "their": {}, "your": {},
	"some": {}, "many": {}, "much": {}, "more": {}, "most": {},
	"also": {}, "because": {}, "into": {}, "over": {}, "then": {},
	"than": {}, "like": {}, "make": {}, "made": {}, "time": {},
	"other": {}, "only": {}, "even": {}, "such": {}, "being": {},
}

// fallbackKeywords 는 추출 결과가 비었을 때의 기본 키워드다.
var fallbackKeywords = []string{"scene", "background", "visual"}

// Lexical 은 빈도 기반 결정적 키워드 추출 전략이다.
// 외부 협력자 없이 동작하며 LLM 전략의 폴백으로도 쓰인다.
type Lexical struct{}

func NewLexical() *Lexical { return &Lexical{} }

func (l *Lexical) Name() string { return "lexical" }

func (l *Lexical) Extract(_ context.Context, text string, max int) (Result, error) {
	max = clampMax(max)

	freq := make(map[string]int)
	order := make(map[string]int)
	idx := 0

	for _, word := range strings.Fields(text) {
		clean := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r)
		}))
		if len(clean) < 4 || !isASCIIWord(clean) {
			continue
		}
		if _, generic := genericTerms[clean]; generic {
			continue
		}
		if _, seen := freq[clean]; !seen {
			order[clean] = idx
			idx++
		}
		freq[clean]++
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	// 빈도 내림차순, 동률이면 등장 순서
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return order[terms[i]] < order[terms[j]]
	})

	if len(terms) > max {
		terms = terms[:max]
	}
	if len(terms) == 0 {
		terms = append(terms, fallbackKeywords...)
	}
	return Result{Keywords: terms}, nil
}

func isASCIIWord(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
