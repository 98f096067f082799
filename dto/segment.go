package dto

import (
	"time"

	"photoscript/models"
	"photoscript/services"
)

// SegmentDTO is the API representation of a segment.
type SegmentDTO struct {
	ID        string   `json:"id"`
	ProjectID string   `json:"project_id"`
	Order     float64  `json:"order"`
	Text      string   `json:"text"`
	Keywords  []string `json:"keywords"`
	Status    string   `json:"status"`
}

func NewSegmentDTO(s models.Segment) SegmentDTO {
	return SegmentDTO{
		ID:        s.ID.Hex(),
		ProjectID: s.ProjectID.Hex(),
		Order:     s.Order,
		Text:      s.Text,
		Keywords:  s.Keywords,
		Status:    string(s.Status),
	}
}

func NewSegmentDTOs(segs []models.Segment) []SegmentDTO {
	out := make([]SegmentDTO, 0, len(segs))
	for _, s := range segs {
		out = append(out, NewSegmentDTO(s))
	}
	return out
}

// CandidateDTO joins a segment-asset link with its asset.
type CandidateDTO struct {
	LinkID       string    `json:"link_id"`
	AssetID      string    `json:"asset_id"`
	Provider     string    `json:"provider"`
	AssetType    string    `json:"asset_type"`
	SourceURL    string    `json:"source_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Title        string    `json:"title"`
	License      string    `json:"license"`
	Score        float64   `json:"score"`
	IsPrimary    bool      `json:"is_primary"`
	ChosenBy     string    `json:"chosen_by"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewCandidateDTO(v services.CandidateView) CandidateDTO {
	return CandidateDTO{
		LinkID:       v.Link.ID.Hex(),
		AssetID:      v.Asset.ID.Hex(),
		Provider:     v.Asset.Provider,
		AssetType:    string(v.Asset.AssetType),
		SourceURL:    v.Asset.SourceURL,
		ThumbnailURL: v.Asset.ThumbnailURL,
		Title:        v.Asset.Title,
		License:      v.Asset.License,
		Score:        v.Link.Score,
		IsPrimary:    v.Link.IsPrimary,
		ChosenBy:     string(v.Link.ChosenBy),
		CreatedAt:    v.Link.CreatedAt,
	}
}

func NewCandidateDTOs(views []services.CandidateView) []CandidateDTO {
	out := make([]CandidateDTO, 0, len(views))
	for _, v := range views {
		out = append(out, NewCandidateDTO(v))
	}
	return out
}

type InsertSegmentRequest struct {
	Position int    `json:"position"`
	Text     string `json:"text" binding:"required"`
}

type UpdateSegmentTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type UpdateKeywordsRequest struct {
	Keywords []string `json:"keywords" binding:"required"`
}

type SplitSegmentRequest struct {
	// Offset is the rune index to cut at; must be inside the text.
	Offset int `json:"offset" binding:"required"`
}

type MergeSegmentsRequest struct {
	SegmentIDs []string `json:"segment_ids" binding:"required"`
}

type MoveSegmentRequest struct {
	Position int `json:"position"`
}

type SetPrimaryRequest struct {
	AssetID string `json:"asset_id" binding:"required"`
}
