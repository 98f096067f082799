package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"photoscript/models"
	"photoscript/repositories"
	"photoscript/textdiff"
)

// versionAllocRetries bounds the insert-retry loop under concurrent creates.
const versionAllocRetries = 5

// QAVersionService manages the immutable QA snapshots of a project.
// Version numbers start at 1 and increase monotonically; version 0 is a
// virtual version that resolves to the project's raw script and is never
// stored.
type QAVersionService struct {
	versions *repositories.QAVersionRepository
	projects *repositories.ProjectRepository
}

func NewQAVersionService(versions *repositories.QAVersionRepository, projects *repositories.ProjectRepository) *QAVersionService {
	return &QAVersionService{versions: versions, projects: projects}
}

// Create stores a new version as max+1. Concurrent creates race on the
// unique (project_id, version_number) index; on a duplicate key the number
// is re-read and the insert retried.
func (s *QAVersionService) Create(ctx context.Context, projectID primitive.ObjectID, result *models.QAResult, versionName, memo string) (*models.QAVersion, error) {
	for attempt := 0; attempt < versionAllocRetries; attempt++ {
		max, err := s.versions.MaxVersionNumber(ctx, projectID)
		if err != nil {
			return nil, err
		}
		v := &models.QAVersion{
			ProjectID:       projectID,
			VersionNumber:   max + 1,
			VersionName:     versionName,
			Memo:            memo,
			CorrectedScript: result.CorrectedScript,
			Diagnosis:       result.Diagnosis,
			StructureCheck:  result.StructureCheck,
			ChangeLogs:      result.ChangeLogs,
			Model:           result.Model,
			InputTokens:     result.InputTokens,
			OutputTokens:    result.OutputTokens,
		}
		err = s.versions.Insert(ctx, v)
		if err == nil {
			return v, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: version number allocation kept conflicting", ErrConflict)
}

func (s *QAVersionService) List(ctx context.Context, projectHexID string) ([]models.QAVersion, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return nil, err
	}
	return s.versions.ListByProject(ctx, projectID)
}

func (s *QAVersionService) Get(ctx context.Context, hexID string) (*models.QAVersion, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	v, err := s.versions.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return v, nil
}

// UpdateMeta renames a version or edits its memo. The snapshot body is
// immutable.
func (s *QAVersionService) UpdateMeta(ctx context.Context, hexID, versionName, memo string) (*models.QAVersion, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	if err := s.versions.UpdateMeta(ctx, id, versionName, memo); err != nil {
		return nil, mapNotFound(err)
	}
	return s.versions.FindByID(ctx, id)
}

func (s *QAVersionService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	return mapNotFound(s.versions.Delete(ctx, id))
}

// scriptOf resolves a version number to its script text. Number 0 returns
// the project's raw script.
func (s *QAVersionService) scriptOf(ctx context.Context, projectID primitive.ObjectID, number int) (string, string, error) {
	if number < 0 {
		return "", "", fmt.Errorf("%w: version number must be >= 0", ErrValidation)
	}
	if number == 0 {
		p, err := s.projects.FindByID(ctx, projectID)
		if err != nil {
			return "", "", mapNotFound(err)
		}
		return p.ScriptRaw, "v0 (original)", nil
	}
	v, err := s.versions.FindByNumber(ctx, projectID, number)
	if err != nil {
		return "", "", mapNotFound(err)
	}
	return v.CorrectedScript, fmt.Sprintf("v%d", number), nil
}

// OrderVersionPair sorts a diff request so the lower version number is
// always the "from" side. Version 0 (the original script) can never be the
// "to" side of a pair that includes a real version.
func OrderVersionPair(from, to int) (int, int) {
	if from > to {
		return to, from
	}
	return from, to
}

// Diff renders a unified diff between two versions of a project. Either side
// may be 0 to compare against the original script. The pair is ordered by
// version number, so the lower version is always the "from" side.
func (s *QAVersionService) Diff(ctx context.Context, projectHexID string, fromNumber, toNumber int) (string, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return "", err
	}
	fromNumber, toNumber = OrderVersionPair(fromNumber, toNumber)
	fromText, fromLabel, err := s.scriptOf(ctx, projectID, fromNumber)
	if err != nil {
		return "", err
	}
	toText, toLabel, err := s.scriptOf(ctx, projectID, toNumber)
	if err != nil {
		return "", err
	}
	return textdiff.Unified(fromLabel, toLabel, fromText, toText)
}
