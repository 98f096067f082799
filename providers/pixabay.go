package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"photoscript/models"
)

const (
	pixabayImageURL = "https://pixabay.com/api/"
	pixabayVideoURL = "https://pixabay.com/api/videos/"
	pixabayLicense  = "Pixabay Content License"
)

// Pixabay 는 Pixabay 검색 API 클라이언트다.
type Pixabay struct {
	apiKey string
	client *http.Client
}

func NewPixabay(apiKey string) *Pixabay {
	return &Pixabay{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *Pixabay) Name() string { return "pixabay" }

func (p *Pixabay) Search(ctx context.Context, query string, kind models.AssetType, limit int) ([]Candidate, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("pixabay: api key not configured")
	}
	if kind == models.AssetVideo {
		return p.searchVideos(ctx, query, limit)
	}
	return p.searchImages(ctx, query, limit)
}

type pixabayImageResp struct {
	Hits []struct {
		ID            int64  `json:"id"`
		Tags          string `json:"tags"`
		User          string `json:"user"`
		LargeImageURL string `json:"largeImageURL"`
		WebformatURL  string `json:"webformatURL"`
		ImageWidth    int    `json:"imageWidth"`
		ImageHeight   int    `json:"imageHeight"`
	} `json:"hits"`
}

func (p *Pixabay) searchImages(ctx context.Context, query string, limit int) ([]Candidate, error) {
	var resp pixabayImageResp
	if err := p.get(ctx, pixabayImageURL, query, limit, &resp); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		out = append(out, Candidate{
			Provider:     p.Name(),
			AssetType:    models.AssetImage,
			SourceURL:    h.LargeImageURL,
			ThumbnailURL: h.WebformatURL,
			Title:        h.Tags,
			License:      pixabayLicense,
			Meta: map[string]any{
				"pixabay_id": h.ID,
				"user":       h.User,
				"width":      h.ImageWidth,
				"height":     h.ImageHeight,
			},
		})
	}
	return out, nil
}

type pixabayVideoResp struct {
	Hits []struct {
		ID       int64  `json:"id"`
		Tags     string `json:"tags"`
		User     string `json:"user"`
		Duration int    `json:"duration"`
		Videos   struct {
			Medium struct {
				URL       string `json:"url"`
				Width     int    `json:"width"`
				Height    int    `json:"height"`
				Thumbnail string `json:"thumbnail"`
			} `json:"medium"`
		} `json:"videos"`
	} `json:"hits"`
}

func (p *Pixabay) searchVideos(ctx context.Context, query string, limit int) ([]Candidate, error) {
	var resp pixabayVideoResp
	if err := p.get(ctx, pixabayVideoURL, query, limit, &resp); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(resp.Hits))
	for _, h := range resp.Hits {
		if h.Videos.Medium.URL == "" {
			continue
		}
		out = append(out, Candidate{
			Provider:     p.Name(),
			AssetType:    models.AssetVideo,
			SourceURL:    h.Videos.Medium.URL,
			ThumbnailURL: h.Videos.Medium.Thumbnail,
			Title:        h.Tags,
			License:      pixabayLicense,
			Meta: map[string]any{
				"pixabay_id": h.ID,
				"user":       h.User,
				"duration":   h.Duration,
				"width":      h.Videos.Medium.Width,
				"height":     h.Videos.Medium.Height,
			},
		})
	}
	return out, nil
}

func (p *Pixabay) get(ctx context.Context, endpoint, query string, limit int, into any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("key", p.apiKey)
	q.Set("q", query)
	q.Set("per_page", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pixabay: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}
