// Package providers 는 외부 이미지/영상 검색 프로바이더 클라이언트를 제공한다.
package providers

import (
	"context"

	"photoscript/models"
)

// Candidate 는 프로바이더가 반환한 에셋 후보다. 아직 저장 전 상태이며,
// retriever 가 중복 제거한 뒤 ranker 가 점수를 매긴다.
type Candidate struct {
	Provider     string
	AssetType    models.AssetType
	SourceURL    string
	ThumbnailURL string
	Title        string
	License      string
	Meta         map[string]any
}

// Provider 는 단일 검색 프로바이더 계약이다.
// Search 의 오류는 일시적 프로바이더 장애로 취급되어 호출측(retriever)에서
// 건너뛰며, 세그먼트 전체 실패로 전파되지 않는다.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, kind models.AssetType, limit int) ([]Candidate, error)
}
