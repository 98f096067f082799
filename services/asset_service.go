package services

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"photoscript/models"
	"photoscript/providers"
	"photoscript/ranker"
	"photoscript/repositories"
)

// AssetService owns the asset cache and segment-asset links. Primary changes
// for one segment are serialized through a per-segment mutex; the partial
// unique index on (segment_id, is_primary=true) is the backstop.
type AssetService struct {
	assets   *repositories.AssetRepository
	links    *repositories.SegmentAssetRepository
	segments *repositories.SegmentRepository

	mu        sync.Mutex
	segmentMu map[primitive.ObjectID]*sync.Mutex
}

func NewAssetService(
	assets *repositories.AssetRepository,
	links *repositories.SegmentAssetRepository,
	segments *repositories.SegmentRepository,
) *AssetService {
	return &AssetService{
		assets:    assets,
		links:     links,
		segments:  segments,
		segmentMu: make(map[primitive.ObjectID]*sync.Mutex),
	}
}

func (s *AssetService) lockSegment(id primitive.ObjectID) func() {
	s.mu.Lock()
	m, ok := s.segmentMu[id]
	if !ok {
		m = &sync.Mutex{}
		s.segmentMu[id] = m
	}
	s.mu.Unlock()
	m.Lock()
	return m.Unlock
}

// CandidateView joins a link with its asset for API responses.
type CandidateView struct {
	Link  models.SegmentAsset `json:"link"`
	Asset models.Asset        `json:"asset"`
}

// ListCandidates returns the segment's candidates best-first with asset
// details attached.
func (s *AssetService) ListCandidates(ctx context.Context, segmentHexID string) ([]CandidateView, error) {
	segmentID, err := parseID(segmentHexID)
	if err != nil {
		return nil, err
	}
	links, err := s.links.ListBySegment(ctx, segmentID)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, len(links))
	for i, l := range links {
		ids[i] = l.AssetID
	}
	byID, err := s.assets.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]CandidateView, 0, len(links))
	for _, l := range links {
		out = append(out, CandidateView{Link: l, Asset: byID[l.AssetID]})
	}
	return out, nil
}

// StoreMatches persists ranked candidates for a segment: assets are
// get-or-created by (provider, source_url), previous links are replaced, and
// the top candidate becomes the AUTO primary. Returns the number of stored
// links.
func (s *AssetService) StoreMatches(ctx context.Context, segmentID primitive.ObjectID, scored []ranker.Scored) (int, error) {
	unlock := s.lockSegment(segmentID)
	defer unlock()

	if err := s.links.DeleteBySegment(ctx, segmentID); err != nil {
		return 0, err
	}

	links := make([]models.SegmentAsset, 0, len(scored))
	for i, sc := range scored {
		asset, err := s.assets.GetOrCreate(ctx, candidateToAsset(sc.Candidate))
		if err != nil {
			return 0, fmt.Errorf("asset upsert failed: %w", err)
		}
		links = append(links, models.SegmentAsset{
			SegmentID: segmentID,
			AssetID:   asset.ID,
			Score:     sc.Score,
			IsPrimary: i == 0,
			ChosenBy:  models.ChosenAuto,
		})
	}
	if err := s.links.InsertMany(ctx, links); err != nil {
		return 0, err
	}
	return len(links), nil
}

// SetPrimary marks the given asset as the segment's primary by user choice.
// The segment moves to CUSTOM unconditionally, whatever its current status;
// a user pick always wins over the pipeline. The asset must already be a
// candidate of the segment.
func (s *AssetService) SetPrimary(ctx context.Context, segmentHexID, assetHexID string) (*models.Segment, error) {
	segmentID, err := parseID(segmentHexID)
	if err != nil {
		return nil, err
	}
	assetID, err := parseID(assetHexID)
	if err != nil {
		return nil, err
	}

	seg, err := s.segments.FindByID(ctx, segmentID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	unlock := s.lockSegment(segmentID)
	defer unlock()

	link, err := s.links.FindBySegmentAndAsset(ctx, segmentID, assetID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, fmt.Errorf("%w: asset %s is not a candidate of segment %s", ErrNotFound, assetHexID, segmentHexID)
	}

	// Demote first so the partial unique index never sees two primaries.
	if err := s.links.DemotePrimary(ctx, segmentID); err != nil {
		return nil, err
	}
	if err := s.links.SetPrimary(ctx, link.ID, models.ChosenUser); err != nil {
		return nil, err
	}
	if err := s.segments.UpdateStatus(ctx, segmentID, models.SegmentCustom); err != nil {
		return nil, err
	}
	seg.Status = models.SegmentCustom
	return seg, nil
}

// Primary returns the segment's current primary candidate, or nil when the
// segment has none.
func (s *AssetService) Primary(ctx context.Context, segmentHexID string) (*CandidateView, error) {
	segmentID, err := parseID(segmentHexID)
	if err != nil {
		return nil, err
	}
	link, err := s.links.FindPrimary(ctx, segmentID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, nil
	}
	asset, err := s.assets.FindByID(ctx, link.AssetID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &CandidateView{Link: *link, Asset: *asset}, nil
}

func candidateToAsset(c providers.Candidate) *models.Asset {
	return &models.Asset{
		Provider:     c.Provider,
		AssetType:    c.AssetType,
		SourceURL:    c.SourceURL,
		ThumbnailURL: c.ThumbnailURL,
		Title:        c.Title,
		License:      c.License,
		Meta:         c.Meta,
	}
}
