// Package keywords 는 세그먼트 텍스트에서 검색용 키워드를 추출한다.
// 추출 전략은 교체 가능하며, 동일한 (텍스트, 전략) 쌍에 대해
// 항상 같은 결과를 반환해야 한다.
package keywords

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"sync"
)

const (
	// MinKeywords / MaxKeywords 는 세그먼트당 키워드 수 범위다.
	MinKeywords = 3
	MaxKeywords = 10

	DefaultMaxKeywords = 5
)

// Result 는 추출 결과다. SceneGloss 는 LLM 전략이 생성하는
// 한 문장짜리 장면 요약으로, lexical 전략에서는 비어 있다.
type Result struct {
	SceneGloss string   `json:"scene_gloss"`
	Keywords   []string `json:"keywords"`
}

// Extractor 는 키워드 추출 전략 계약이다.
type Extractor interface {
	Name() string
	Extract(ctx context.Context, text string, max int) (Result, error)
}

// clampMax 는 max 를 허용 범위로 제한한다.
func clampMax(max int) int {
	if max <= 0 {
		return DefaultMaxKeywords
	}
	if max < MinKeywords {
		return MinKeywords
	}
	if max > MaxKeywords {
		return MaxKeywords
	}
	return max
}

// Cached 는 (텍스트, 전략) 쌍을 키로 결과를 메모이즈해
// 전략의 멱등성을 보장하는 래퍼다.
type Cached struct {
	inner Extractor

	mu    sync.RWMutex
	cache map[string]Result
}

func NewCached(inner Extractor) *Cached {
	return &Cached{inner: inner, cache: make(map[string]Result)}
}

func (c *Cached) Name() string { return c.inner.Name() }

func (c *Cached) Extract(ctx context.Context, text string, max int) (Result, error) {
	key := cacheKey(c.inner.Name(), text, max)

	c.mu.RLock()
	if r, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return r, nil
	}
	c.mu.RUnlock()

	r, err := c.inner.Extract(ctx, text, max)
	if err != nil {
		return Result{}, err
	}

	c.mu.Lock()
	c.cache[key] = r
	c.mu.Unlock()
	return r, nil
}

func cacheKey(strategy, text string, max int) string {
	h := sha256.Sum256([]byte(text))
	return strategy + ":" + hex.EncodeToString(h[:]) + ":" + strconv.Itoa(max)
}
