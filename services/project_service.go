package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"photoscript/keywords"
	"photoscript/logger"
	"photoscript/models"
	"photoscript/ordering"
	"photoscript/ranker"
	"photoscript/repositories"
	"photoscript/retriever"
	"photoscript/segmenter"
)

const defaultMatchWorkers = 4

// ProjectService owns project CRUD and the generate pipeline:
// split (script -> DRAFT segments), match (keywords -> candidates -> ranked
// links), and the combined generate workflow.
type ProjectService struct {
	projects *repositories.ProjectRepository
	segments *repositories.SegmentRepository
	links    *repositories.SegmentAssetRepository
	versions *repositories.QAVersionRepository
	jobs     *repositories.QAJobRepository
	assetSvc *AssetService

	extractor keywords.Extractor
	fallback  keywords.Extractor
	retriever *retriever.Retriever
	ranker    *ranker.Ranker

	maxSegmentLength int
	maxKeywords      int
	matchWorkers     int
}

type ProjectServiceDeps struct {
	Projects *repositories.ProjectRepository
	Segments *repositories.SegmentRepository
	Links    *repositories.SegmentAssetRepository
	Versions *repositories.QAVersionRepository
	Jobs     *repositories.QAJobRepository
	AssetSvc *AssetService

	Extractor keywords.Extractor
	Fallback  keywords.Extractor
	Retriever *retriever.Retriever
	Ranker    *ranker.Ranker

	MaxSegmentLength int
	MaxKeywords      int
	MatchWorkers     int
}

func NewProjectService(d ProjectServiceDeps) *ProjectService {
	if d.MaxSegmentLength <= 0 {
		d.MaxSegmentLength = segmenter.DefaultMaxLength
	}
	if d.MaxKeywords <= 0 {
		d.MaxKeywords = keywords.DefaultMaxKeywords
	}
	if d.MatchWorkers <= 0 {
		d.MatchWorkers = defaultMatchWorkers
	}
	return &ProjectService{
		projects:         d.Projects,
		segments:         d.Segments,
		links:            d.Links,
		versions:         d.Versions,
		jobs:             d.Jobs,
		assetSvc:         d.AssetSvc,
		extractor:        d.Extractor,
		fallback:         d.Fallback,
		retriever:        d.Retriever,
		ranker:           d.Ranker,
		maxSegmentLength: d.MaxSegmentLength,
		maxKeywords:      d.MaxKeywords,
		matchWorkers:     d.MatchWorkers,
	}
}

func (s *ProjectService) Create(ctx context.Context, title, scriptRaw string) (*models.Project, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is empty", ErrValidation)
	}
	if strings.TrimSpace(scriptRaw) == "" {
		return nil, fmt.Errorf("%w: script is empty", ErrValidation)
	}
	return s.projects.Insert(ctx, &models.Project{Title: title, ScriptRaw: scriptRaw})
}

func (s *ProjectService) Get(ctx context.Context, hexID string) (*models.Project, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return p, nil
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

// UpdateScript replaces the title/script. Existing segments are kept; the
// caller re-runs split when the new script should take effect.
func (s *ProjectService) UpdateScript(ctx context.Context, hexID, title, scriptRaw string) (*models.Project, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.projects.UpdateScript(ctx, id, title, scriptRaw); err != nil {
		return nil, err
	}
	return s.projects.FindByID(ctx, id)
}

// Delete removes the project and everything it owns: segments, asset links,
// QA versions and jobs. The shared asset cache is left alone.
func (s *ProjectService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return mapNotFound(err)
	}

	segs, err := s.segments.ListByProject(ctx, id)
	if err != nil {
		return err
	}
	segIDs := make([]primitive.ObjectID, len(segs))
	for i, seg := range segs {
		segIDs[i] = seg.ID
	}
	if err := s.links.DeleteBySegments(ctx, segIDs); err != nil {
		return err
	}
	if err := s.segments.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.versions.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.jobs.DeleteByProject(ctx, id); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}

// SplitScript segments the project's raw script and replaces any existing
// segments. New segments start as DRAFT with orders 1.0, 2.0, ...
func (s *ProjectService) SplitScript(ctx context.Context, hexID string) ([]models.Segment, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	texts, err := segmenter.Split(p.ScriptRaw, s.maxSegmentLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	old, err := s.segments.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}
	oldIDs := make([]primitive.ObjectID, len(old))
	for i, seg := range old {
		oldIDs[i] = seg.ID
	}
	if err := s.links.DeleteBySegments(ctx, oldIDs); err != nil {
		return nil, err
	}
	if err := s.segments.DeleteByProject(ctx, id); err != nil {
		return nil, err
	}

	orders := ordering.Reindex(len(texts))
	out := make([]models.Segment, 0, len(texts))
	for i, text := range texts {
		seg := &models.Segment{
			ProjectID: id,
			Order:     orders[i],
			Text:      text,
			Keywords:  []string{},
			Status:    models.SegmentDraft,
		}
		if _, err := s.segments.Insert(ctx, seg); err != nil {
			return nil, err
		}
		out = append(out, *seg)
	}
	_ = s.projects.Touch(ctx, id)
	logger.InfoWithFields("script split", logger.Fields{
		"project_id": hexID,
		"segments":   len(out),
	})
	return out, nil
}

// MatchProject runs the match pipeline for every segment of the project that
// is not CUSTOM. Segments run concurrently through a bounded worker pool and
// fail independently: one segment's error never aborts the rest.
func (s *ProjectService) MatchProject(ctx context.Context, hexID string) ([]models.Segment, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	if _, err := s.projects.FindByID(ctx, id); err != nil {
		return nil, mapNotFound(err)
	}
	segs, err := s.segments.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.matchWorkers)
	for i := range segs {
		seg := &segs[i]
		if seg.Status == models.SegmentCustom {
			// 사용자 선택은 파이프라인이 덮어쓰지 않는다.
			continue
		}
		g.Go(func() error {
			s.matchOne(gctx, seg)
			return nil
		})
	}
	_ = g.Wait()
	_ = s.projects.Touch(ctx, id)
	return segs, nil
}

// MatchSegment re-runs the pipeline for a single segment, including CUSTOM
// ones when explicitly asked.
func (s *ProjectService) MatchSegment(ctx context.Context, segmentHexID string) (*models.Segment, error) {
	id, err := parseID(segmentHexID)
	if err != nil {
		return nil, err
	}
	seg, err := s.segments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	s.matchOne(ctx, seg)
	return seg, nil
}

// Generate is the end-to-end workflow: split the script, then match every
// segment.
func (s *ProjectService) Generate(ctx context.Context, hexID string) ([]models.Segment, error) {
	if _, err := s.SplitScript(ctx, hexID); err != nil {
		return nil, err
	}
	return s.MatchProject(ctx, hexID)
}

// matchOne drives one segment through PENDING -> MATCHED | NO_RESULT and
// mutates seg in place. Errors are absorbed: the segment ends as NO_RESULT
// with a log line rather than failing the batch.
func (s *ProjectService) matchOne(ctx context.Context, seg *models.Segment) {
	if err := s.segments.UpdateStatus(ctx, seg.ID, models.SegmentPending); err != nil {
		logger.Log.Errorf("segment %s: status update failed: %v", seg.ID.Hex(), err)
		return
	}
	seg.Status = models.SegmentPending

	kws := seg.Keywords
	if len(kws) == 0 {
		kws = s.extractKeywords(ctx, seg)
	}

	candidates := s.retriever.Retrieve(ctx, kws)
	if len(candidates) == 0 {
		s.finishMatch(ctx, seg, models.SegmentNoResult)
		return
	}

	scored := s.ranker.Rank(ctx, candidates, kws)
	stored, err := s.assetSvc.StoreMatches(ctx, seg.ID, scored)
	if err != nil || stored == 0 {
		if err != nil {
			logger.Log.Errorf("segment %s: storing matches failed: %v", seg.ID.Hex(), err)
		}
		s.finishMatch(ctx, seg, models.SegmentNoResult)
		return
	}
	s.finishMatch(ctx, seg, models.SegmentMatched)
}

// extractKeywords runs the configured extractor with a lexical fallback, so a
// provider outage degrades quality instead of failing the segment.
func (s *ProjectService) extractKeywords(ctx context.Context, seg *models.Segment) []string {
	res, err := s.extractor.Extract(ctx, seg.Text, s.maxKeywords)
	if err != nil && s.fallback != nil {
		logger.Log.Warnf("segment %s: %s extraction failed, falling back to %s: %v",
			seg.ID.Hex(), s.extractor.Name(), s.fallback.Name(), err)
		res, err = s.fallback.Extract(ctx, seg.Text, s.maxKeywords)
	}
	if err != nil || len(res.Keywords) == 0 {
		return nil
	}
	if err := s.segments.UpdateKeywords(ctx, seg.ID, res.Keywords, seg.Status); err != nil {
		logger.Log.Warnf("segment %s: keyword persist failed: %v", seg.ID.Hex(), err)
	}
	seg.Keywords = res.Keywords
	return res.Keywords
}

func (s *ProjectService) finishMatch(ctx context.Context, seg *models.Segment, status models.SegmentStatus) {
	if err := s.segments.UpdateStatus(ctx, seg.ID, status); err != nil {
		logger.Log.Errorf("segment %s: status update failed: %v", seg.ID.Hex(), err)
		return
	}
	seg.Status = status
}
