package retriever_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"photoscript/models"
	"photoscript/providers"
	"photoscript/retriever"
)

// fakeProvider returns canned candidates or a fixed error.
type fakeProvider struct {
	name  string
	err   error
	calls int32
	make  func(kind models.AssetType, limit int) []providers.Candidate
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(_ context.Context, _ string, kind models.AssetType, limit int) ([]providers.Candidate, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	if f.make == nil {
		return nil, nil
	}
	return f.make(kind, limit), nil
}

func canned(provider string, kind models.AssetType, n int) []providers.Candidate {
	out := make([]providers.Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, providers.Candidate{
			Provider:  provider,
			AssetType: kind,
			SourceURL: fmt.Sprintf("https://%s.example/%s/%d", provider, kind, i),
			Title:     fmt.Sprintf("%s %d", provider, i),
		})
	}
	return out
}

func TestRetrieveEmptyKeywords(t *testing.T) {
	r := retriever.New([]providers.Provider{&fakeProvider{name: "a"}}, retriever.Options{})
	assert.Nil(t, r.Retrieve(context.Background(), nil))
}

func TestRetrieveSurvivesProviderFailure(t *testing.T) {
	broken := &fakeProvider{name: "broken", err: errors.New("upstream down")}
	healthy := &fakeProvider{name: "healthy", make: func(kind models.AssetType, limit int) []providers.Candidate {
		if kind == models.AssetImage {
			return canned("healthy", kind, 5)
		}
		return nil
	}}

	r := retriever.New([]providers.Provider{broken, healthy}, retriever.Options{
		MaxCandidates: 10,
		Timeout:       time.Second,
	})
	got := r.Retrieve(context.Background(), []string{"sunset", "beach"})
	assert.Len(t, got, 5)
	for _, c := range got {
		assert.Equal(t, "healthy", c.Provider)
	}
	// broken provider is retried once per kind: 2 kinds * 2 attempts
	assert.Equal(t, int32(4), atomic.LoadInt32(&broken.calls))
}

func TestRetrieveTrimsToMaxCandidates(t *testing.T) {
	big := &fakeProvider{name: "big", make: func(kind models.AssetType, limit int) []providers.Candidate {
		return canned("big", kind, 8)
	}}
	r := retriever.New([]providers.Provider{big}, retriever.Options{MaxCandidates: 10, Timeout: time.Second})

	got := r.Retrieve(context.Background(), []string{"city"})
	assert.Len(t, got, 10)
}

func TestRetrieveImagesFirstByDefault(t *testing.T) {
	p := &fakeProvider{name: "p", make: func(kind models.AssetType, limit int) []providers.Candidate {
		return canned("p", kind, 2)
	}}
	r := retriever.New([]providers.Provider{p}, retriever.Options{MaxCandidates: 10, Timeout: time.Second})

	got := r.Retrieve(context.Background(), []string{"city"})
	assert.Len(t, got, 4)
	assert.Equal(t, models.AssetImage, got[0].AssetType)
	assert.Equal(t, models.AssetImage, got[1].AssetType)
	assert.Equal(t, models.AssetVideo, got[2].AssetType)
}

func TestRetrieveVideoPriority(t *testing.T) {
	p := &fakeProvider{name: "p", make: func(kind models.AssetType, limit int) []providers.Candidate {
		return canned("p", kind, 2)
	}}
	r := retriever.New([]providers.Provider{p}, retriever.Options{
		MaxCandidates: 10,
		Timeout:       time.Second,
		VideoPriority: true,
	})

	got := r.Retrieve(context.Background(), []string{"city"})
	assert.Equal(t, models.AssetVideo, got[0].AssetType)
}

func TestDedupBySourceURL(t *testing.T) {
	in := []providers.Candidate{
		{Provider: "a", SourceURL: "https://x/1", Title: "first"},
		{Provider: "b", SourceURL: "https://x/1", Title: "dup"},
		{Provider: "b", SourceURL: "https://x/2"},
		{Provider: "c", SourceURL: ""},
	}
	out := retriever.DedupBySourceURL(in)
	assert.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Title)
	assert.Equal(t, "https://x/2", out[1].SourceURL)
}

func TestProvidersReturnsNamesInOrder(t *testing.T) {
	r := retriever.New([]providers.Provider{
		&fakeProvider{name: "pexels"},
		&fakeProvider{name: "pixabay"},
	}, retriever.Options{})
	assert.Equal(t, []string{"pexels", "pixabay"}, r.Providers())
}
