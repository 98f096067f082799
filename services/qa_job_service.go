package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoscript/eventbus"
	"photoscript/logger"
	"photoscript/models"
	"photoscript/repositories"
)

// QAJobPayload 는 이벤트 버스로 전달되는 작업 식별자다.
type QAJobPayload struct {
	JobID string `json:"job_id"`
}

// QAJobService runs QA validation asynchronously. Submit stores a queued job
// and publishes its id; a worker consumes the topic and drives the job
// through running -> completed | failed. Failed jobs are not retried; the
// event lands in the DLQ for inspection.
type QAJobService struct {
	jobs       *repositories.QAJobRepository
	projects   *repositories.ProjectRepository
	segments   *repositories.SegmentRepository
	qa         *QAService
	versionSvc *QAVersionService
	bus        eventbus.EventBus
}

func NewQAJobService(
	jobs *repositories.QAJobRepository,
	projects *repositories.ProjectRepository,
	segments *repositories.SegmentRepository,
	qa *QAService,
	versionSvc *QAVersionService,
	bus eventbus.EventBus,
) *QAJobService {
	return &QAJobService{jobs: jobs, projects: projects, segments: segments, qa: qa, versionSvc: versionSvc, bus: bus}
}

// AssembleScript 는 검증 입력 문서를 만든다. 세그먼트 텍스트를 순서대로
// "\n\n" 로 이어 붙이고, 세그먼트가 없으면 원본 스크립트를 사용한다.
func AssembleScript(segments []models.Segment, scriptRaw string) string {
	if len(segments) == 0 {
		return scriptRaw
	}
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		parts = append(parts, seg.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Submit queues a validation job for the project. A project can have at most
// one queued or running job at a time.
func (s *QAJobService) Submit(ctx context.Context, projectHexID, additionalPrompt, customGuideline string) (*models.QAJob, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		return nil, mapNotFound(err)
	}

	active, err := s.jobs.HasActive(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, fmt.Errorf("%w: project already has an active qa job", ErrConflict)
	}

	job := &models.QAJob{
		ProjectID:        projectID,
		Status:           models.JobQueued,
		Progress:         0,
		AdditionalPrompt: additionalPrompt,
		CustomGuideline:  customGuideline,
	}
	if err := s.jobs.Insert(ctx, job); err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(QAJobPayload{JobID: job.ID.Hex()})
	event := eventbus.Event{ID: uuid.NewString(), Payload: payload}
	if err := s.bus.Publish(ctx, eventbus.TopicQAJobs.Base(), event); err != nil {
		// 발행 실패 시 작업을 고아로 남기지 않는다.
		_ = s.jobs.Fail(ctx, job.ID, "event publish failed: "+err.Error())
		return nil, err
	}
	logger.InfoWithFields("qa job queued", logger.Fields{
		"job_id":     job.ID.Hex(),
		"project_id": projectHexID,
	})
	return job, nil
}

func (s *QAJobService) Get(ctx context.Context, hexID string) (*models.QAJob, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return job, nil
}

func (s *QAJobService) ListByProject(ctx context.Context, projectHexID string) ([]models.QAJob, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return nil, err
	}
	return s.jobs.ListByProject(ctx, projectID)
}

// HandleEvent is the eventbus handler for the QA jobs topic. A returned error
// sends the event to the DLQ; jobs that already left the queued state are
// acknowledged silently so redeliveries are no-ops.
func (s *QAJobService) HandleEvent(ctx context.Context, event eventbus.Event) error {
	var payload QAJobPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("bad qa job payload: %w", err)
	}
	jobID, err := primitive.ObjectIDFromHex(payload.JobID)
	if err != nil {
		return fmt.Errorf("bad qa job id %q: %w", payload.JobID, err)
	}
	return s.Execute(ctx, jobID)
}

// Execute drives one job to a terminal state. Any failure marks the job
// failed with its message; the job itself is never retried.
func (s *QAJobService) Execute(ctx context.Context, jobID primitive.ObjectID) error {
	claimed, err := s.jobs.MarkRunning(ctx, jobID)
	if err != nil {
		return err
	}
	if !claimed {
		logger.Log.Debugf("qa job %s already claimed, skipping", jobID.Hex())
		return nil
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}

	project, err := s.projects.FindByID(ctx, job.ProjectID)
	if err != nil {
		return s.fail(ctx, jobID, fmt.Errorf("project lookup failed: %w", err))
	}
	_ = s.jobs.SetProgress(ctx, jobID, 10)

	// 검증 대상은 사용자가 편집한 세그먼트들이다. 원본 스크립트는
	// 세그먼트가 아직 없을 때만 쓴다.
	segs, err := s.segments.ListByProject(ctx, job.ProjectID)
	if err != nil {
		return s.fail(ctx, jobID, fmt.Errorf("segment lookup failed: %w", err))
	}
	script := AssembleScript(segs, project.ScriptRaw)

	result, err := s.qa.Validate(ctx, script, job.AdditionalPrompt, job.CustomGuideline)
	if err != nil {
		return s.fail(ctx, jobID, fmt.Errorf("validation failed: %w", err))
	}
	_ = s.jobs.SetProgress(ctx, jobID, 80)

	version, err := s.versionSvc.Create(ctx, job.ProjectID, result, "", "")
	if err != nil {
		return s.fail(ctx, jobID, fmt.Errorf("version create failed: %w", err))
	}

	if err := s.jobs.Complete(ctx, jobID, result, version.ID); err != nil {
		return err
	}
	logger.InfoWithFields("qa job completed", logger.Fields{
		"job_id":  jobID.Hex(),
		"version": version.VersionNumber,
	})
	return nil
}

func (s *QAJobService) fail(ctx context.Context, jobID primitive.ObjectID, cause error) error {
	if err := s.jobs.Fail(ctx, jobID, cause.Error()); err != nil {
		logger.Log.Errorf("qa job %s: failed to record failure: %v", jobID.Hex(), err)
	}
	logger.ErrorWithFields("qa job failed", logger.Fields{
		"job_id": jobID.Hex(),
		"error":  cause.Error(),
	})
	return fmt.Errorf("%w: %v", ErrJobFailed, cause)
}
