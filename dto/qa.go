package dto

import (
	"time"

	"photoscript/models"
)

// QAVersionDTO is the API representation of a QA snapshot.
type QAVersionDTO struct {
	ID              string                 `json:"id"`
	ProjectID       string                 `json:"project_id"`
	VersionNumber   int                    `json:"version_number"`
	VersionName     string                 `json:"version_name,omitempty"`
	Memo            string                 `json:"memo,omitempty"`
	CorrectedScript string                 `json:"corrected_script"`
	Diagnosis       models.Diagnosis       `json:"diagnosis"`
	StructureCheck  models.StructureCheck  `json:"structure_check"`
	ChangeLogs      []models.ChangeLogItem `json:"change_logs"`
	Model           string                 `json:"model"`
	InputTokens     int                    `json:"input_tokens"`
	OutputTokens    int                    `json:"output_tokens"`
	CreatedAt       time.Time              `json:"created_at"`
}

func NewQAVersionDTO(v models.QAVersion) QAVersionDTO {
	return QAVersionDTO{
		ID:              v.ID.Hex(),
		ProjectID:       v.ProjectID.Hex(),
		VersionNumber:   v.VersionNumber,
		VersionName:     v.VersionName,
		Memo:            v.Memo,
		CorrectedScript: v.CorrectedScript,
		Diagnosis:       v.Diagnosis,
		StructureCheck:  v.StructureCheck,
		ChangeLogs:      v.ChangeLogs,
		Model:           v.Model,
		InputTokens:     v.InputTokens,
		OutputTokens:    v.OutputTokens,
		CreatedAt:       v.CreatedAt,
	}
}

func NewQAVersionDTOs(versions []models.QAVersion) []QAVersionDTO {
	out := make([]QAVersionDTO, 0, len(versions))
	for _, v := range versions {
		out = append(out, NewQAVersionDTO(v))
	}
	return out
}

// QAJobDTO is the API representation of an async validation job.
type QAJobDTO struct {
	ID           string            `json:"id"`
	ProjectID    string            `json:"project_id"`
	Status       string            `json:"status"`
	Progress     int               `json:"progress"`
	Result       *models.QAResult  `json:"result,omitempty"`
	VersionID    string            `json:"version_id,omitempty"`
	ErrorMessage string            `json:"error_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	CompletedAt  *time.Time        `json:"completed_at,omitempty"`
}

func NewQAJobDTO(j models.QAJob) QAJobDTO {
	d := QAJobDTO{
		ID:           j.ID.Hex(),
		ProjectID:    j.ProjectID.Hex(),
		Status:       string(j.Status),
		Progress:     j.Progress,
		Result:       j.Result,
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		CompletedAt:  j.CompletedAt,
	}
	if !j.VersionID.IsZero() {
		d.VersionID = j.VersionID.Hex()
	}
	return d
}

func NewQAJobDTOs(jobs []models.QAJob) []QAJobDTO {
	out := make([]QAJobDTO, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewQAJobDTO(j))
	}
	return out
}

type SubmitQAJobRequest struct {
	AdditionalPrompt string `json:"additional_prompt"`
	CustomGuideline  string `json:"custom_guideline"`
}

type UpdateVersionMetaRequest struct {
	VersionName string `json:"version_name"`
	Memo        string `json:"memo"`
}

// DiffResponse wraps a unified diff between two versions.
type DiffResponse struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Diff string `json:"diff"`
}

type GenerateTextRequest struct {
	SegmentID string `json:"segment_id"`
	Prompt    string `json:"prompt" binding:"required"`
}
