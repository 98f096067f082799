// Package segmenter 는 원본 스크립트를 순서 있는 세그먼트 텍스트로 분할한다.
//
// 분할 정책:
//  1. 빈 줄(공백 라인) 기준으로 문단 분할
//  2. 문단이 maxLength 초과 시 문장 단위로 추가 분할 후 재결합
package segmenter

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultMaxLength 는 문장 분할이 시작되는 기본 문단 길이다.
const DefaultMaxLength = 500

// ErrEmptyScript 는 빈 스크립트 입력에 대한 검증 오류다.
var ErrEmptyScript = errors.New("script is empty")

var (
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
	// 한국어/영어 문장 종결 부호 뒤 공백에서 분리한다.
	sentenceRe = regexp.MustCompile(`([.!?。？！…])\s+`)
)

// Split 은 스크립트를 세그먼트 텍스트 목록으로 분할한다.
// maxLength 가 0 이하면 DefaultMaxLength 를 사용한다.
func Split(scriptRaw string, maxLength int) ([]string, error) {
	if strings.TrimSpace(scriptRaw) == "" {
		return nil, ErrEmptyScript
	}
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	paragraphs := paragraphRe.Split(strings.TrimSpace(scriptRaw), -1)
	var segments []string

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if len([]rune(para)) <= maxLength {
			segments = append(segments, para)
			continue
		}

		// 문단이 너무 길면 문장 단위로 나눠 maxLength 이하로 다시 채운다.
		var current strings.Builder
		for _, sent := range SplitSentences(para) {
			if current.Len() > 0 && len([]rune(current.String()))+len([]rune(sent))+1 > maxLength {
				segments = append(segments, strings.TrimSpace(current.String()))
				current.Reset()
			}
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(sent)
		}
		if current.Len() > 0 {
			segments = append(segments, strings.TrimSpace(current.String()))
		}
	}

	if len(segments) == 0 {
		return nil, ErrEmptyScript
	}
	return segments, nil
}

// SplitSentences 는 텍스트를 문장 단위로 분할한다.
func SplitSentences(text string) []string {
	// 종결 부호를 보존하기 위해 마커를 끼워 넣은 뒤 자른다.
	marked := sentenceRe.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
