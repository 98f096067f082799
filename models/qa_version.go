package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Diagnosis 는 스크립트 진단 결과다. (문제점/장점 목록)
type Diagnosis struct {
	Problems  []string `bson:"problems" json:"problems"`
	Strengths []string `bson:"strengths" json:"strengths"`
}

// StructureCheck 는 5블록 구조(Hook/맥락/Promise/Body/Wrap-up) 점검 결과다.
type StructureCheck struct {
	HasHook           bool   `bson:"has_hook" json:"has_hook"`
	HasContext        bool   `bson:"has_context" json:"has_context"`
	HasPromiseOutline bool   `bson:"has_promise_outline" json:"has_promise_outline"`
	HasBody           bool   `bson:"has_body" json:"has_body"`
	HasWrapup         bool   `bson:"has_wrapup" json:"has_wrapup"`
	OverallPass       bool   `bson:"overall_pass" json:"overall_pass"`
	Comments          string `bson:"comments" json:"comments"`
}

// ChangeLogItem 은 보정 시 세그먼트별 변경 내역이다.
type ChangeLogItem struct {
	SegmentIndex int    `bson:"segment_index" json:"segment_index"`
	ChangeType   string `bson:"change_type" json:"change_type"` // 수정/추가/삭제
	Description  string `bson:"description" json:"description"`
}

// QAVersion 은 QA 검증이 생성한 불변 스냅샷이다.
// VersionNumber 는 프로젝트별로 1부터 단조 증가하며 수정되지 않는다.
// version 0 은 프로젝트 원본 스크립트를 가리키는 가상 버전으로, DB 에 저장하지 않는다.
// Collection: qa_versions
type QAVersion struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID       primitive.ObjectID `bson:"project_id" json:"project_id"`
	VersionNumber   int                `bson:"version_number" json:"version_number"`
	VersionName     string             `bson:"version_name,omitempty" json:"version_name,omitempty"`
	Memo            string             `bson:"memo,omitempty" json:"memo,omitempty"`
	CorrectedScript string             `bson:"corrected_script" json:"corrected_script"`
	Diagnosis       Diagnosis          `bson:"diagnosis" json:"diagnosis"`
	StructureCheck  StructureCheck     `bson:"structure_check" json:"structure_check"`
	ChangeLogs      []ChangeLogItem    `bson:"change_logs" json:"change_logs"`
	Model           string             `bson:"model" json:"model"`
	InputTokens     int                `bson:"input_tokens" json:"input_tokens"`
	OutputTokens    int                `bson:"output_tokens" json:"output_tokens"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}
