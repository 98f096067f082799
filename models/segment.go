package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SegmentStatus 는 세그먼트 처리 상태다.
type SegmentStatus string

const (
	SegmentDraft    SegmentStatus = "DRAFT"     // 분할 완료, 매칭 대기 (편집 가능)
	SegmentPending  SegmentStatus = "PENDING"   // 매칭 진행 중
	SegmentMatched  SegmentStatus = "MATCHED"   // 자동 매칭 완료
	SegmentNoResult SegmentStatus = "NO_RESULT" // 검색 결과 없음
	SegmentCustom   SegmentStatus = "CUSTOM"    // 사용자 선택
)

// Segment 는 스크립트를 의미 단위로 나눈 조각이다.
//
// 순서 관리는 fractional indexing 방식이다. Order 를 float64 로 두어
// 중간 삽입 시 다른 세그먼트를 수정할 필요가 없다.
// 예: 1.0 과 2.0 사이에 삽입 → 1.5
// Collection: segments
type Segment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"project_id"`
	Order     float64            `bson:"order" json:"order"`
	Text      string             `bson:"text" json:"text"`
	Keywords  []string           `bson:"keywords" json:"keywords"`
	Status    SegmentStatus      `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
