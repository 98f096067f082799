package services_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"photoscript/models"
	"photoscript/services"
)

type fakeSegmentStore struct {
	segs map[primitive.ObjectID]*models.Segment
}

func newFakeSegmentStore(segs ...*models.Segment) *fakeSegmentStore {
	f := &fakeSegmentStore{segs: make(map[primitive.ObjectID]*models.Segment)}
	for _, s := range segs {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		cp := *s
		f.segs[s.ID] = &cp
	}
	return f
}

func (f *fakeSegmentStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Segment, error) {
	s, ok := f.segs[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSegmentStore) ListByProject(_ context.Context, projectID primitive.ObjectID) ([]models.Segment, error) {
	var out []models.Segment
	for _, s := range f.segs {
		if s.ProjectID == projectID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeSegmentStore) NextAfter(_ context.Context, projectID primitive.ObjectID, order float64) (*models.Segment, error) {
	var next *models.Segment
	for _, s := range f.segs {
		if s.ProjectID != projectID || s.Order <= order {
			continue
		}
		if next == nil || s.Order < next.Order {
			next = s
		}
	}
	if next == nil {
		return nil, nil
	}
	cp := *next
	return &cp, nil
}

func (f *fakeSegmentStore) Insert(_ context.Context, s *models.Segment) (*models.Segment, error) {
	s.ID = primitive.NewObjectID()
	cp := *s
	f.segs[s.ID] = &cp
	return s, nil
}

func (f *fakeSegmentStore) UpdateText(_ context.Context, id primitive.ObjectID, text string, status models.SegmentStatus) error {
	s, ok := f.segs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.Text = text
	s.Status = status
	return nil
}

func (f *fakeSegmentStore) UpdateKeywords(_ context.Context, id primitive.ObjectID, kws []string, status models.SegmentStatus) error {
	s, ok := f.segs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.Keywords = kws
	s.Status = status
	return nil
}

func (f *fakeSegmentStore) UpdateOrder(_ context.Context, id primitive.ObjectID, order float64) error {
	s, ok := f.segs[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	s.Order = order
	return nil
}

func (f *fakeSegmentStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.segs, id)
	return nil
}

func (f *fakeSegmentStore) DeleteMany(_ context.Context, ids []primitive.ObjectID) error {
	for _, id := range ids {
		delete(f.segs, id)
	}
	return nil
}

type fakeLinkStore struct {
	dropped []primitive.ObjectID
}

func (f *fakeLinkStore) DeleteBySegment(_ context.Context, segmentID primitive.ObjectID) error {
	f.dropped = append(f.dropped, segmentID)
	return nil
}

func (f *fakeLinkStore) DeleteBySegments(_ context.Context, segmentIDs []primitive.ObjectID) error {
	f.dropped = append(f.dropped, segmentIDs...)
	return nil
}

type fakeToucher struct{}

func (fakeToucher) Touch(context.Context, primitive.ObjectID) error { return nil }

func TestUpdateKeywordsDropsAssetLinks(t *testing.T) {
	seg := &models.Segment{
		ProjectID: primitive.NewObjectID(),
		Order:     1.0,
		Text:      "도심의 야경",
		Status:    models.SegmentMatched,
	}
	store := newFakeSegmentStore(seg)
	links := &fakeLinkStore{}
	svc := services.NewSegmentService(store, links, fakeToucher{})

	got, err := svc.UpdateKeywords(context.Background(), seg.ID.Hex(), []string{"city", " night "})
	assert.NoError(t, err)
	assert.Equal(t, models.SegmentDraft, got.Status)
	assert.Equal(t, []string{"city", "night"}, got.Keywords)
	assert.Contains(t, links.dropped, seg.ID)
}

func TestUpdateTextDropsAssetLinks(t *testing.T) {
	seg := &models.Segment{
		ProjectID: primitive.NewObjectID(),
		Order:     1.0,
		Text:      "원래 문장",
		Status:    models.SegmentMatched,
	}
	store := newFakeSegmentStore(seg)
	links := &fakeLinkStore{}
	svc := services.NewSegmentService(store, links, fakeToucher{})

	got, err := svc.UpdateText(context.Background(), seg.ID.Hex(), "바뀐 문장")
	assert.NoError(t, err)
	assert.Equal(t, models.SegmentDraft, got.Status)
	assert.Contains(t, links.dropped, seg.ID)
}

func TestSplitThenMergeRestoresText(t *testing.T) {
	projectID := primitive.NewObjectID()
	original := "hello world"
	seg := &models.Segment{ProjectID: projectID, Order: 1.0, Text: original, Status: models.SegmentMatched}
	store := newFakeSegmentStore(seg)
	svc := services.NewSegmentService(store, &fakeLinkStore{}, fakeToucher{})

	halves, err := svc.Split(context.Background(), seg.ID.Hex(), 5)
	assert.NoError(t, err)
	assert.Len(t, halves, 2)
	assert.Equal(t, "hello", halves[0].Text)
	assert.Equal(t, "world", halves[1].Text)
	assert.Less(t, halves[0].Order, halves[1].Order)

	merged, err := svc.Merge(context.Background(), projectID.Hex(),
		[]string{halves[0].ID.Hex(), halves[1].ID.Hex()})
	assert.NoError(t, err)
	assert.Equal(t, original, merged.Text)
	assert.Equal(t, models.SegmentDraft, merged.Status)

	remaining, _ := store.ListByProject(context.Background(), projectID)
	assert.Len(t, remaining, 1)
}

func TestMergeRejectsNonContiguousRun(t *testing.T) {
	projectID := primitive.NewObjectID()
	a := &models.Segment{ProjectID: projectID, Order: 1.0, Text: "a"}
	b := &models.Segment{ProjectID: projectID, Order: 2.0, Text: "b"}
	c := &models.Segment{ProjectID: projectID, Order: 3.0, Text: "c"}
	store := newFakeSegmentStore(a, b, c)
	svc := services.NewSegmentService(store, &fakeLinkStore{}, fakeToucher{})

	_, err := svc.Merge(context.Background(), projectID.Hex(), []string{a.ID.Hex(), c.ID.Hex()})
	assert.ErrorIs(t, err, services.ErrValidation)
}

// 단어 한가운데에서 나누면 병합 이음새에 공백 하나가 남는다.
func TestSplitSegmentTextMidWordSeam(t *testing.T) {
	head, tail, err := services.SplitSegmentText("abcdef", 3)
	assert.NoError(t, err)
	assert.Equal(t, "abc", head)
	assert.Equal(t, "def", tail)
	assert.Equal(t, "abc def", services.MergeSegmentTexts([]string{head, tail}))
}

func TestSplitSegmentTextRejectsBadOffsets(t *testing.T) {
	_, _, err := services.SplitSegmentText("abc", 0)
	assert.ErrorIs(t, err, services.ErrValidation)
	_, _, err = services.SplitSegmentText("abc", 3)
	assert.ErrorIs(t, err, services.ErrValidation)
	_, _, err = services.SplitSegmentText(" ab", 1)
	assert.ErrorIs(t, err, services.ErrValidation)
}
