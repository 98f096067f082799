package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"photoscript/logger"
	"photoscript/models"
	"photoscript/ordering"
)

// SegmentStore is the segment persistence surface the editing service needs.
// *repositories.SegmentRepository satisfies it.
type SegmentStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Segment, error)
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]models.Segment, error)
	NextAfter(ctx context.Context, projectID primitive.ObjectID, order float64) (*models.Segment, error)
	Insert(ctx context.Context, s *models.Segment) (*models.Segment, error)
	UpdateText(ctx context.Context, id primitive.ObjectID, text string, status models.SegmentStatus) error
	UpdateKeywords(ctx context.Context, id primitive.ObjectID, kws []string, status models.SegmentStatus) error
	UpdateOrder(ctx context.Context, id primitive.ObjectID, order float64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) error
}

// SegmentLinkStore drops segment-asset links when edits invalidate them.
// *repositories.SegmentAssetRepository satisfies it.
type SegmentLinkStore interface {
	DeleteBySegment(ctx context.Context, segmentID primitive.ObjectID) error
	DeleteBySegments(ctx context.Context, segmentIDs []primitive.ObjectID) error
}

// ProjectToucher bumps a project's updated_at after segment edits.
// *repositories.ProjectRepository satisfies it.
type ProjectToucher interface {
	Touch(ctx context.Context, id primitive.ObjectID) error
}

// SegmentService encapsulates segment editing: insert, text/keyword updates,
// split, merge, move and reindex. Edits that change a segment's text or
// keywords reset it to DRAFT and drop its asset links, since matches no
// longer describe the segment.
type SegmentService struct {
	segments SegmentStore
	links    SegmentLinkStore
	projects ProjectToucher
}

func NewSegmentService(
	segments SegmentStore,
	links SegmentLinkStore,
	projects ProjectToucher,
) *SegmentService {
	return &SegmentService{segments: segments, links: links, projects: projects}
}

func (s *SegmentService) List(ctx context.Context, projectHexID string) ([]models.Segment, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return nil, err
	}
	return s.segments.ListByProject(ctx, projectID)
}

func (s *SegmentService) Get(ctx context.Context, hexID string) (*models.Segment, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	seg, err := s.segments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return seg, nil
}

// InsertAt creates a DRAFT segment at the given zero-based position.
// Position is clamped to [0, len]; the order value is the midpoint of its
// neighbors so no other segment moves.
func (s *SegmentService) InsertAt(ctx context.Context, projectHexID string, position int, text string) (*models.Segment, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: segment text is empty", ErrValidation)
	}

	existing, err := s.segments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	orders := make([]float64, len(existing))
	for i, seg := range existing {
		orders[i] = seg.Order
	}

	seg := &models.Segment{
		ProjectID: projectID,
		Order:     ordering.OrderFor(orders, position),
		Text:      text,
		Keywords:  []string{},
		Status:    models.SegmentDraft,
	}
	if _, err := s.segments.Insert(ctx, seg); err != nil {
		return nil, err
	}
	_ = s.projects.Touch(ctx, projectID)
	return seg, nil
}

// UpdateText replaces the segment text, resets it to DRAFT and drops its
// asset links.
func (s *SegmentService) UpdateText(ctx context.Context, hexID string, text string) (*models.Segment, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: segment text is empty", ErrValidation)
	}
	seg, err := s.segments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.segments.UpdateText(ctx, id, text, models.SegmentDraft); err != nil {
		return nil, err
	}
	if err := s.links.DeleteBySegment(ctx, id); err != nil {
		logger.Log.Warnf("failed to drop asset links for segment %s: %v", hexID, err)
	}
	seg.Text = text
	seg.Status = models.SegmentDraft
	return seg, nil
}

// UpdateKeywords sets the keywords manually, resets the segment to DRAFT and
// drops its asset links so the next match run starts from the new keywords.
func (s *SegmentService) UpdateKeywords(ctx context.Context, hexID string, kws []string) (*models.Segment, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	cleaned := make([]string, 0, len(kws))
	for _, k := range kws {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("%w: keywords are empty", ErrValidation)
	}
	seg, err := s.segments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.segments.UpdateKeywords(ctx, id, cleaned, models.SegmentDraft); err != nil {
		return nil, err
	}
	if err := s.links.DeleteBySegment(ctx, id); err != nil {
		logger.Log.Warnf("failed to drop asset links for segment %s: %v", hexID, err)
	}
	seg.Keywords = cleaned
	seg.Status = models.SegmentDraft
	return seg, nil
}

// Delete removes the segment and its asset links. Ordering of the remaining
// segments is untouched; fractional orders stay valid with gaps.
func (s *SegmentService) Delete(ctx context.Context, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	seg, err := s.segments.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.segments.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	if err := s.links.DeleteBySegment(ctx, id); err != nil {
		logger.Log.Warnf("failed to drop asset links for segment %s: %v", hexID, err)
	}
	_ = s.projects.Touch(ctx, seg.ProjectID)
	return nil
}

// Split cuts the segment at a rune offset into two DRAFT segments. The
// original keeps its id and order and gets the head text; the tail becomes a
// new segment ordered between the original and its successor. Both ends must
// be non-empty after trimming.
// SplitSegmentText 는 룬 오프셋에서 텍스트를 둘로 나누고 양쪽 끝 공백을
// 정리한다. 공백 경계에서 나눈 결과를 MergeSegmentTexts 로 합치면 원문이
// 그대로 복원된다. 단어 한가운데에서 나누면 병합 시 이음새에 공백 하나가
// 남는다.
func SplitSegmentText(text string, offset int) (head, tail string, err error) {
	runes := []rune(text)
	if offset <= 0 || offset >= len(runes) {
		return "", "", fmt.Errorf("%w: split offset %d out of range (1..%d)", ErrValidation, offset, len(runes)-1)
	}
	head = strings.TrimSpace(string(runes[:offset]))
	tail = strings.TrimSpace(string(runes[offset:]))
	if head == "" || tail == "" {
		return "", "", fmt.Errorf("%w: split produces an empty segment", ErrValidation)
	}
	return head, tail, nil
}

// MergeSegmentTexts 는 세그먼트 텍스트를 공백 하나로 이어 붙인다.
func MergeSegmentTexts(parts []string) string {
	return strings.Join(parts, " ")
}

func (s *SegmentService) Split(ctx context.Context, hexID string, offset int) ([]models.Segment, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	seg, err := s.segments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	head, tail, err := SplitSegmentText(seg.Text, offset)
	if err != nil {
		return nil, err
	}

	next, err := s.segments.NextAfter(ctx, seg.ProjectID, seg.Order)
	if err != nil {
		return nil, err
	}
	var tailOrder float64
	if next != nil {
		tailOrder = ordering.Midpoint(seg.Order, next.Order)
	} else {
		tailOrder = seg.Order + ordering.OrderGap
	}

	if err := s.segments.UpdateText(ctx, id, head, models.SegmentDraft); err != nil {
		return nil, err
	}
	if err := s.links.DeleteBySegment(ctx, id); err != nil {
		logger.Log.Warnf("failed to drop asset links for segment %s: %v", hexID, err)
	}

	tailSeg := &models.Segment{
		ProjectID: seg.ProjectID,
		Order:     tailOrder,
		Text:      tail,
		Keywords:  []string{},
		Status:    models.SegmentDraft,
	}
	if _, err := s.segments.Insert(ctx, tailSeg); err != nil {
		return nil, err
	}

	seg.Text = head
	seg.Status = models.SegmentDraft
	_ = s.projects.Touch(ctx, seg.ProjectID)
	return []models.Segment{*seg, *tailSeg}, nil
}

// Merge joins segments occupying a contiguous ascending run of positions into
// one. The run is validated against the project's current order; any gap or
// out-of-order id is rejected. The segment at the lowest position survives
// with the concatenated text, the rest are deleted with their links.
func (s *SegmentService) Merge(ctx context.Context, projectHexID string, segmentHexIDs []string) (*models.Segment, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return nil, err
	}
	if len(segmentHexIDs) < 2 {
		return nil, fmt.Errorf("%w: merge needs at least two segments", ErrValidation)
	}
	ids := make([]primitive.ObjectID, len(segmentHexIDs))
	for i, hex := range segmentHexIDs {
		if ids[i], err = parseID(hex); err != nil {
			return nil, err
		}
	}

	all, err := s.segments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	posByID := make(map[primitive.ObjectID]int, len(all))
	for pos, seg := range all {
		posByID[seg.ID] = pos
	}

	positions := make([]int, len(ids))
	for i, id := range ids {
		pos, ok := posByID[id]
		if !ok {
			return nil, fmt.Errorf("%w: segment %s not in project", ErrNotFound, id.Hex())
		}
		positions[i] = pos
	}
	if !ordering.ContiguousRun(positions) {
		return nil, fmt.Errorf("%w: segments must form a contiguous ascending run", ErrValidation)
	}

	sort.Ints(positions)
	parts := make([]string, len(positions))
	for i, pos := range positions {
		parts[i] = all[pos].Text
	}
	survivor := all[positions[0]]
	merged := MergeSegmentTexts(parts)

	if err := s.segments.UpdateText(ctx, survivor.ID, merged, models.SegmentDraft); err != nil {
		return nil, err
	}

	doomed := make([]primitive.ObjectID, 0, len(positions)-1)
	for _, pos := range positions[1:] {
		doomed = append(doomed, all[pos].ID)
	}
	if err := s.segments.DeleteMany(ctx, doomed); err != nil {
		return nil, err
	}
	if err := s.links.DeleteBySegments(ctx, append(doomed, survivor.ID)); err != nil {
		logger.Log.Warnf("failed to drop asset links after merge: %v", err)
	}

	survivor.Text = merged
	survivor.Status = models.SegmentDraft
	_ = s.projects.Touch(ctx, projectID)
	return &survivor, nil
}

// Move places the segment at a new zero-based position among its siblings.
// Only the moved segment's order changes.
func (s *SegmentService) Move(ctx context.Context, hexID string, position int) (*models.Segment, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	seg, err := s.segments.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}

	all, err := s.segments.ListByProject(ctx, seg.ProjectID)
	if err != nil {
		return nil, err
	}
	// Compute the target order against the list without the moved segment.
	orders := make([]float64, 0, len(all)-1)
	for _, other := range all {
		if other.ID != id {
			orders = append(orders, other.Order)
		}
	}
	newOrder := ordering.OrderFor(orders, position)

	if err := s.segments.UpdateOrder(ctx, id, newOrder); err != nil {
		return nil, err
	}
	seg.Order = newOrder
	_ = s.projects.Touch(ctx, seg.ProjectID)
	return seg, nil
}

// Reindex rewrites all orders of the project to 1.0, 2.0, ... preserving the
// current sequence. Run when repeated midpoint inserts exhaust float
// precision; it is safe to run any time.
func (s *SegmentService) Reindex(ctx context.Context, projectHexID string) ([]models.Segment, error) {
	projectID, err := parseID(projectHexID)
	if err != nil {
		return nil, err
	}
	all, err := s.segments.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	fresh := ordering.Reindex(len(all))
	for i := range all {
		if all[i].Order == fresh[i] {
			continue
		}
		if err := s.segments.UpdateOrder(ctx, all[i].ID, fresh[i]); err != nil {
			return nil, err
		}
		all[i].Order = fresh[i]
	}
	return all, nil
}

func parseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid id %q", ErrValidation, hex)
	}
	return id, nil
}

func mapNotFound(err error) error {
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	return err
}
