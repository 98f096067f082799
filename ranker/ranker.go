// Package ranker 는 후보 에셋에 점수를 매기고 대표 후보를 고른다.
package ranker

import (
	"context"
	"math"
	"sort"
	"strings"

	"photoscript/providers"

	"photoscript/models"
)

// Embedder 는 선택적 의미 유사도 협력자다. 설정되지 않으면
// 키워드 겹침 점수만 사용한다.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Scored 는 점수가 매겨진 후보다.
type Scored struct {
	providers.Candidate
	Score float64
}

// Ranker 는 프로바이더 우선순위와 선택적 임베더를 보유한다.
type Ranker struct {
	providerPriority map[string]int
	embedder         Embedder
}

// New 는 우선순위 순서의 프로바이더 이름 목록으로 Ranker 를 만든다.
func New(providerOrder []string, embedder Embedder) *Ranker {
	prio := make(map[string]int, len(providerOrder))
	for i, name := range providerOrder {
		prio[name] = i
	}
	return &Ranker{providerPriority: prio, embedder: embedder}
}

// Rank 는 후보를 점수 내림차순으로 정렬해 반환한다. 첫 번째가 대표 후보다.
// 동점은 프로바이더 우선순위, 그다음 수집 순서(먼저 본 것 우선)로 가른다.
// 빈 후보 집합은 빈 결과를 반환한다. (NO_RESULT 판정은 호출측 몫)
func (r *Ranker) Rank(ctx context.Context, candidates []providers.Candidate, keywords []string) []Scored {
	if len(candidates) == 0 {
		return nil
	}

	scored := make([]Scored, len(candidates))
	for i, c := range candidates {
		scored[i] = Scored{Candidate: c, Score: keywordOverlap(c, keywords)}
		// 이미지 약간 선호 (로딩 속도)
		if c.AssetType == models.AssetImage {
			scored[i].Score += 0.1
		}
	}

	if r.embedder != nil && len(keywords) > 0 {
		r.blendSemantic(ctx, scored, keywords)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return r.priority(scored[i].Provider) < r.priority(scored[j].Provider)
	})
	return scored
}

func (r *Ranker) priority(name string) int {
	if p, ok := r.providerPriority[name]; ok {
		return p
	}
	return len(r.providerPriority)
}

// keywordOverlap 은 후보 제목/태그에 등장하는 키워드 수를 센다.
func keywordOverlap(c providers.Candidate, keywords []string) float64 {
	title := strings.ToLower(c.Title)
	count := 0.0
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(title, kw) {
			count++
		}
	}
	return count
}

// blendSemantic 은 키워드 문장과 후보 제목의 코사인 유사도를 점수에 더한다.
// 임베딩 실패 시 키워드 점수만 유지한다.
func (r *Ranker) blendSemantic(ctx context.Context, scored []Scored, keywords []string) {
	texts := make([]string, 0, len(scored)+1)
	texts = append(texts, strings.Join(keywords, " "))
	for _, s := range scored {
		texts = append(texts, s.Title)
	}

	vecs, err := r.embedder.Embed(ctx, texts)
	if err != nil || len(vecs) != len(texts) {
		return
	}

	query := vecs[0]
	for i := range scored {
		scored[i].Score += cosine(query, vecs[i+1])
	}
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
