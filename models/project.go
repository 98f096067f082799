package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project 는 하나의 영상 제작 단위다. 원본 스크립트와
// 분할된 세그먼트, QA 버전 이력을 소유한다.
// Collection: projects
type Project struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	ScriptRaw string             `bson:"script_raw" json:"script_raw"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
