package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AssetType 은 에셋 종류다.
type AssetType string

const (
	AssetImage AssetType = "IMAGE"
	AssetVideo AssetType = "VIDEO"
)

// Asset 은 외부 프로바이더에서 가져온 이미지/영상 후보다.
// (provider, source_url) 기준으로 중복 제거되며 저장 후에는 불변이다.
// Collection: assets
type Asset struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Provider     string             `bson:"provider" json:"provider"`
	AssetType    AssetType          `bson:"asset_type" json:"asset_type"`
	SourceURL    string             `bson:"source_url" json:"source_url"`
	ThumbnailURL string             `bson:"thumbnail_url" json:"thumbnail_url"`
	Title        string             `bson:"title" json:"title"`
	License      string             `bson:"license" json:"license"`
	Meta         map[string]any     `bson:"meta,omitempty" json:"meta,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
