package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QAJobStatus 는 비동기 QA 작업 상태다.
type QAJobStatus string

const (
	JobQueued    QAJobStatus = "queued"
	JobRunning   QAJobStatus = "running"
	JobCompleted QAJobStatus = "completed"
	JobFailed    QAJobStatus = "failed"
)

// Terminal 은 작업이 종료 상태인지 반환한다.
func (s QAJobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed
}

// QAResult 는 작업 완료 시 QAVersion 으로 저장되는 검증 결과 본문이다.
type QAResult struct {
	Diagnosis       Diagnosis       `bson:"diagnosis" json:"diagnosis"`
	StructureCheck  StructureCheck  `bson:"structure_check" json:"structure_check"`
	CorrectedScript string          `bson:"corrected_script" json:"corrected_script"`
	ChangeLogs      []ChangeLogItem `bson:"change_logs" json:"change_logs"`
	Model           string          `bson:"model" json:"model"`
	InputTokens     int             `bson:"input_tokens" json:"input_tokens"`
	OutputTokens    int             `bson:"output_tokens" json:"output_tokens"`
}

// QAJob 은 백그라운드 QA 검증 작업이다.
// 실패한 작업은 자동 재시도하지 않는다.
// Collection: qa_jobs
type QAJob struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProjectID        primitive.ObjectID `bson:"project_id" json:"project_id"`
	Status           QAJobStatus        `bson:"status" json:"status"`
	Progress         int                `bson:"progress" json:"progress"` // 0-100
	AdditionalPrompt string             `bson:"additional_prompt,omitempty" json:"additional_prompt,omitempty"`
	CustomGuideline  string             `bson:"custom_guideline,omitempty" json:"custom_guideline,omitempty"`
	Result           *QAResult          `bson:"result,omitempty" json:"result,omitempty"`
	VersionID        primitive.ObjectID `bson:"version_id,omitempty" json:"version_id,omitempty"`
	ErrorMessage     string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
	CompletedAt      *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
