// Package textdiff 는 두 스크립트 본문의 unified diff 를 생성한다.
package textdiff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified 는 from/to 본문의 unified diff 문자열을 반환한다.
// 본문이 동일하면 빈 문자열을 반환한다.
func Unified(fromLabel, toLabel, from, to string) (string, error) {
	if from == to {
		return "", nil
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(from),
		B:        difflib.SplitLines(to),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
