// Package ordering 은 fractional indexing 기반 세그먼트 순서 계산을 담당한다.
//
// order 값을 float64 로 유지하므로 중간 삽입 시 이웃의 order 만 읽고
// 자신의 order 하나만 쓰면 된다. 기존 세그먼트는 수정되지 않는다.
package ordering

import "sort"

// OrderGap 은 맨 뒤 추가 시 사용하는 기본 간격이다.
const OrderGap = 1.0

// OrderFor 는 오름차순 order 목록에서 pos 위치에 삽입할 새 order 를 계산한다.
//
//   - pos <= 0: 첫 order 의 절반 (목록이 비어 있으면 1.0)
//   - pos >= len: 마지막 order + 1.0
//   - 그 외: 양쪽 이웃의 중간값
func OrderFor(orders []float64, pos int) float64 {
	if len(orders) == 0 {
		return OrderGap
	}
	if pos <= 0 {
		return orders[0] / 2
	}
	if pos >= len(orders) {
		return orders[len(orders)-1] + OrderGap
	}
	return Midpoint(orders[pos-1], orders[pos])
}

// Midpoint 는 두 order 의 중간값을 반환한다.
func Midpoint(a, b float64) float64 {
	return (a + b) / 2
}

// OrderAfter 는 order 가 prev 인 세그먼트 바로 뒤에 삽입할 값을 계산한다.
// next 가 없으면 hasNext=false 로 호출한다.
func OrderAfter(prev float64, next float64, hasNext bool) float64 {
	if !hasNext {
		return prev + OrderGap
	}
	return Midpoint(prev, next)
}

// ContiguousRun 은 병합 대상 위치 목록이 간격 없이 이어지는 오름차순
// 구간인지 검증한다. 빈 목록과 길이 1 목록은 유효하다.
func ContiguousRun(positions []int) bool {
	if len(positions) < 2 {
		return true
	}
	sorted := make([]int, len(positions))
	copy(sorted, positions)
	sort.Ints(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

// Reindex 는 order 목록을 정수 간격(1.0, 2.0, ...)으로 다시 매긴 값을
// 반환한다. 반복 삽입으로 중간값 정밀도가 소진되면 주기적으로 호출한다.
// (정밀도 대응은 별도 임의 정밀도 키 대신 재정렬 방식을 택했다)
func Reindex(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i+1) * OrderGap
	}
	return out
}
