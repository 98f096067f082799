package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChosenBy 는 대표 에셋 선택 주체다.
type ChosenBy string

const (
	ChosenAuto ChosenBy = "AUTO"
	ChosenUser ChosenBy = "USER"
)

// SegmentAsset 은 세그먼트-에셋 연결이다.
// 세그먼트당 is_primary=true 인 연결은 최대 하나만 존재한다.
// Collection: segment_assets
type SegmentAsset struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SegmentID primitive.ObjectID `bson:"segment_id" json:"segment_id"`
	AssetID   primitive.ObjectID `bson:"asset_id" json:"asset_id"`
	Score     float64            `bson:"score" json:"score"`
	IsPrimary bool               `bson:"is_primary" json:"is_primary"`
	ChosenBy  ChosenBy           `bson:"chosen_by" json:"chosen_by"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
