package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"photoscript/models"
)

const (
	pexelsPhotoURL = "https://api.pexels.com/v1/search"
	pexelsVideoURL = "https://api.pexels.com/videos/search"
	pexelsLicense  = "Pexels License"
)

// Pexels 는 Pexels 검색 API 클라이언트다.
type Pexels struct {
	apiKey string
	client *http.Client
}

func NewPexels(apiKey string) *Pexels {
	return &Pexels{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *Pexels) Name() string { return "pexels" }

func (p *Pexels) Search(ctx context.Context, query string, kind models.AssetType, limit int) ([]Candidate, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("pexels: api key not configured")
	}
	if kind == models.AssetVideo {
		return p.searchVideos(ctx, query, limit)
	}
	return p.searchPhotos(ctx, query, limit)
}

type pexelsPhotoResp struct {
	Photos []struct {
		ID           int64  `json:"id"`
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		Alt          string `json:"alt"`
		Photographer string `json:"photographer"`
		Src          struct {
			Original string `json:"original"`
			Medium   string `json:"medium"`
		} `json:"src"`
	} `json:"photos"`
}

func (p *Pexels) searchPhotos(ctx context.Context, query string, limit int) ([]Candidate, error) {
	var resp pexelsPhotoResp
	if err := p.get(ctx, pexelsPhotoURL, query, limit, &resp); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(resp.Photos))
	for _, ph := range resp.Photos {
		out = append(out, Candidate{
			Provider:     p.Name(),
			AssetType:    models.AssetImage,
			SourceURL:    ph.Src.Original,
			ThumbnailURL: ph.Src.Medium,
			Title:        ph.Alt,
			License:      pexelsLicense,
			Meta: map[string]any{
				"pexels_id":    ph.ID,
				"photographer": ph.Photographer,
				"width":        ph.Width,
				"height":       ph.Height,
			},
		})
	}
	return out, nil
}

type pexelsVideoResp struct {
	Videos []struct {
		ID       int64  `json:"id"`
		URL      string `json:"url"`
		Image    string `json:"image"`
		Duration int    `json:"duration"`
		User     struct {
			Name string `json:"name"`
		} `json:"user"`
		VideoFiles []struct {
			Link    string `json:"link"`
			Quality string `json:"quality"`
			Width   int    `json:"width"`
			Height  int    `json:"height"`
		} `json:"video_files"`
	} `json:"videos"`
}

func (p *Pexels) searchVideos(ctx context.Context, query string, limit int) ([]Candidate, error) {
	var resp pexelsVideoResp
	if err := p.get(ctx, pexelsVideoURL, query, limit, &resp); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(resp.Videos))
	for _, v := range resp.Videos {
		// HD 파일 우선, 없으면 첫 번째 파일을 사용한다.
		best := -1
		for i, vf := range v.VideoFiles {
			if vf.Quality == "hd" {
				best = i
				break
			}
		}
		if best < 0 {
			if len(v.VideoFiles) == 0 {
				continue
			}
			best = 0
		}
		vf := v.VideoFiles[best]

		// 영상 API 는 제목 필드가 없어 페이지 URL 슬러그에서 복원한다.
		title := titleFromSlugURL(v.URL)
		if title == "" {
			title = v.User.Name
		}

		out = append(out, Candidate{
			Provider:     p.Name(),
			AssetType:    models.AssetVideo,
			SourceURL:    vf.Link,
			ThumbnailURL: v.Image,
			Title:        title,
			License:      pexelsLicense,
			Meta: map[string]any{
				"pexels_id": v.ID,
				"duration":  v.Duration,
				"user":      v.User.Name,
				"width":     vf.Width,
				"height":    vf.Height,
			},
		})
	}
	return out, nil
}

// titleFromSlugURL 은 Pexels 페이지 URL 의 슬러그를 제목으로 되돌린다.
// 예: https://www.pexels.com/video/a-woman-doing-yoga-855386/ -> "a woman doing yoga"
func titleFromSlugURL(pageURL string) string {
	slug := path.Base(strings.TrimRight(pageURL, "/"))
	if slug == "." || slug == "/" {
		return ""
	}
	words := strings.Split(slug, "-")
	// 마지막 토큰은 숫자 id 다.
	if len(words) > 1 {
		if _, err := strconv.Atoi(words[len(words)-1]); err == nil {
			words = words[:len(words)-1]
		}
	}
	return strings.Join(words, " ")
}

func (p *Pexels) get(ctx context.Context, endpoint, query string, limit int, into any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	q := u.Query()
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pexels: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}
