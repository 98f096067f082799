package ranker_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/models"
	"photoscript/providers"
	"photoscript/ranker"
)

func TestRankEmptyCandidates(t *testing.T) {
	r := ranker.New([]string{"pexels"}, nil)
	assert.Nil(t, r.Rank(context.Background(), nil, []string{"beach"}))
}

func TestRankKeywordOverlapWins(t *testing.T) {
	r := ranker.New([]string{"pexels", "pixabay"}, nil)
	candidates := []providers.Candidate{
		{Provider: "pexels", AssetType: models.AssetVideo, Title: "city skyline", SourceURL: "u1"},
		{Provider: "pexels", AssetType: models.AssetVideo, Title: "sunset beach waves", SourceURL: "u2"},
		{Provider: "pexels", AssetType: models.AssetVideo, Title: "unrelated", SourceURL: "u3"},
	}
	scored := r.Rank(context.Background(), candidates, []string{"sunset", "beach"})

	assert.Len(t, scored, 3)
	assert.Equal(t, "u2", scored[0].SourceURL)
	assert.Equal(t, 2.0, scored[0].Score)
	assert.Equal(t, 0.0, scored[2].Score)
}

func TestRankImageBonusBreaksKindTie(t *testing.T) {
	r := ranker.New([]string{"pexels"}, nil)
	candidates := []providers.Candidate{
		{Provider: "pexels", AssetType: models.AssetVideo, Title: "sunset", SourceURL: "video"},
		{Provider: "pexels", AssetType: models.AssetImage, Title: "sunset", SourceURL: "image"},
	}
	scored := r.Rank(context.Background(), candidates, []string{"sunset"})
	assert.Equal(t, "image", scored[0].SourceURL)
	assert.InDelta(t, 1.1, scored[0].Score, 1e-9)
}

func TestRankProviderPriorityBreaksTie(t *testing.T) {
	r := ranker.New([]string{"pexels", "pixabay"}, nil)
	candidates := []providers.Candidate{
		{Provider: "pixabay", AssetType: models.AssetImage, Title: "sunset", SourceURL: "pix"},
		{Provider: "pexels", AssetType: models.AssetImage, Title: "sunset", SourceURL: "pex"},
	}
	scored := r.Rank(context.Background(), candidates, []string{"sunset"})
	assert.Equal(t, "pex", scored[0].SourceURL)
}

func TestRankStableForEqualScoreAndProvider(t *testing.T) {
	r := ranker.New([]string{"pexels"}, nil)
	candidates := []providers.Candidate{
		{Provider: "pexels", AssetType: models.AssetImage, Title: "sunset a", SourceURL: "first"},
		{Provider: "pexels", AssetType: models.AssetImage, Title: "sunset b", SourceURL: "second"},
	}
	scored := r.Rank(context.Background(), candidates, []string{"sunset"})
	assert.Equal(t, "first", scored[0].SourceURL)
	assert.Equal(t, "second", scored[1].SourceURL)
}

// fixedEmbedder returns prepared vectors for the query plus each title.
type fixedEmbedder struct {
	vecs [][]float32
}

func (f *fixedEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	return f.vecs[:len(texts)], nil
}

func TestRankBlendsSemanticScore(t *testing.T) {
	emb := &fixedEmbedder{vecs: [][]float32{
		{1, 0}, // query
		{1, 0}, // aligned title
		{0, 1}, // orthogonal title
	}}
	r := ranker.New([]string{"pexels"}, emb)
	candidates := []providers.Candidate{
		{Provider: "pexels", AssetType: models.AssetImage, Title: "aligned", SourceURL: "a"},
		{Provider: "pexels", AssetType: models.AssetImage, Title: "orthogonal", SourceURL: "b"},
	}
	scored := r.Rank(context.Background(), candidates, []string{"query"})
	assert.Equal(t, "a", scored[0].SourceURL)
	assert.InDelta(t, 1.1, scored[0].Score, 1e-9) // image bonus + cosine 1.0
	assert.InDelta(t, 0.1, scored[1].Score, 1e-9)
}
