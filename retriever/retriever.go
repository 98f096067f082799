// Package retriever 는 세그먼트 키워드로 외부 프로바이더를 병렬 조회해
// 후보 에셋을 수집한다. 개별 프로바이더 장애는 건너뛰며 세그먼트 전체를
// 실패시키지 않는다. 모든 프로바이더가 비거나 실패해도 오류가 아니다.
package retriever

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"photoscript/logger"
	"photoscript/models"
	"photoscript/providers"
)

const (
	DefaultMaxCandidates = 10
	DefaultTimeout       = 10 * time.Second
)

// Options 는 단일 세그먼트 검색 옵션이다.
type Options struct {
	// MaxCandidates 는 집계 후 반환할 후보 수 상한이다. (8~12 권장, 기본 10)
	MaxCandidates int
	// Timeout 은 프로바이더 호출당 제한 시간이다.
	Timeout time.Duration
	// VideoPriority 가 true 면 영상 후보를 이미지보다 앞에 정렬한다.
	VideoPriority bool
}

// Retriever 는 설정된 프로바이더 집합에 대한 후보 수집기다.
type Retriever struct {
	providers []providers.Provider
	opts      Options
}

func New(ps []providers.Provider, opts Options) *Retriever {
	if opts.MaxCandidates <= 0 {
		opts.MaxCandidates = DefaultMaxCandidates
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Retriever{providers: ps, opts: opts}
}

// Providers 는 설정된 프로바이더 이름을 우선순위 순서로 반환한다.
func (r *Retriever) Providers() []string {
	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}

// Retrieve 는 키워드로 모든 프로바이더를 병렬 조회해 후보를 집계한다.
// 프로바이더당 한 번의 논리 호출(이미지+영상), 타임아웃 초과/오류 시
// 1회 재시도 후 해당 프로바이더만 건너뛴다.
func (r *Retriever) Retrieve(ctx context.Context, keywords []string) []providers.Candidate {
	if len(keywords) == 0 || len(r.providers) == 0 {
		return nil
	}
	query := strings.Join(keywords, " ")

	imageLimit, videoLimit := r.kindLimits()

	var mu sync.Mutex
	// 프로바이더 우선순위를 보존하기 위해 인덱스별 슬롯에 수집한다.
	slots := make([][]providers.Candidate, len(r.providers))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range r.providers {
		g.Go(func() error {
			var got []providers.Candidate

			images, err := r.searchWithRetry(gctx, p, query, models.AssetImage, imageLimit)
			if err != nil {
				logger.Log.Warnf("provider %s image search skipped: %v", p.Name(), err)
			} else {
				got = append(got, images...)
			}

			videos, err := r.searchWithRetry(gctx, p, query, models.AssetVideo, videoLimit)
			if err != nil {
				logger.Log.Warnf("provider %s video search skipped: %v", p.Name(), err)
			} else {
				got = append(got, videos...)
			}

			mu.Lock()
			slots[i] = got
			mu.Unlock()
			return nil
		})
	}
	// 워커는 오류를 반환하지 않는다. 프로바이더 실패는 스킵으로 처리된다.
	_ = g.Wait()

	var all []providers.Candidate
	for _, s := range slots {
		all = append(all, s...)
	}

	deduped := DedupBySourceURL(all)
	ordered := orderByKind(deduped, r.opts.VideoPriority)

	if len(ordered) > r.opts.MaxCandidates {
		ordered = ordered[:r.opts.MaxCandidates]
	}
	logger.Log.Infof("retrieved %d candidates for query %q", len(ordered), query)
	return ordered
}

func (r *Retriever) searchWithRetry(ctx context.Context, p providers.Provider, query string, kind models.AssetType, limit int) ([]providers.Candidate, error) {
	attempt := func() ([]providers.Candidate, error) {
		callCtx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
		return p.Search(callCtx, query, kind, limit)
	}

	got, err := attempt()
	if err == nil {
		return got, nil
	}
	if ctx.Err() != nil {
		return nil, err
	}
	// 일시 장애 가정, 1회만 재시도
	return attempt()
}

// kindLimits 는 우선 타입에 후보 수의 약 2/3 를 배정한다.
func (r *Retriever) kindLimits() (imageLimit, videoLimit int) {
	major := r.opts.MaxCandidates * 2 / 3
	if major < 1 {
		major = 1
	}
	minor := r.opts.MaxCandidates - major
	if minor < 1 {
		minor = 1
	}
	if r.opts.VideoPriority {
		return minor, major
	}
	return major, minor
}

// DedupBySourceURL 은 source_url 기준으로 첫 후보만 남긴다.
func DedupBySourceURL(in []providers.Candidate) []providers.Candidate {
	seen := make(map[string]struct{}, len(in))
	out := make([]providers.Candidate, 0, len(in))
	for _, c := range in {
		if c.SourceURL == "" {
			continue
		}
		if _, ok := seen[c.SourceURL]; ok {
			continue
		}
		seen[c.SourceURL] = struct{}{}
		out = append(out, c)
	}
	return out
}

// orderByKind 는 우선 타입의 후보를 앞으로 옮기되 타입 내 순서는 유지한다.
func orderByKind(in []providers.Candidate, videoFirst bool) []providers.Candidate {
	first := models.AssetImage
	if videoFirst {
		first = models.AssetVideo
	}

	out := make([]providers.Candidate, 0, len(in))
	for _, c := range in {
		if c.AssetType == first {
			out = append(out, c)
		}
	}
	for _, c := range in {
		if c.AssetType != first {
			out = append(out, c)
		}
	}
	return out
}
