package pagecache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/deskhub-cloud/deskhub/internal/db"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/candidate"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/filter"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/request"
	"github.com/deskhub-cloud/deskhub/internal/domain/search/result"
)

type fakeStore struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (s *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (s *fakeStore) SetWithTTL(_ context.Context, key string, value []byte, _ time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.data[key] = value
	return nil
}

func mustRequest(t *testing.T, query string, page int) request.Request {
	t.Helper()
	req, err := request.New(query, filter.Default(), page, 5)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return req
}

func samplePage(t *testing.T) result.Page {
	t.Helper()
	doc := candidate.MustNew("doc-1", candidate.Document, "Отчет", "сниппет", 90, 1700000000000).
		WithAuthor("Анна Иванова").WithRating(4.8).WithAIAnalyzed(true).
		WithDocumentInfo("PDF", "12 страниц")
	img := candidate.MustNew("img-1", candidate.Image, "photo.jpg", "", 80, 1700000100000).
		WithImageInfo("1920x1080", true)
	return result.New([]candidate.Candidate{doc, img}, 7, 42*time.Millisecond)
}

func TestCacheRoundTrip(t *testing.T) {
	store := newFakeStore()
	cache := New(store, "", 30*time.Second, nil, zap.NewNop())
	req := mustRequest(t, "отчет", 1)

	if _, ok := cache.Get(context.Background(), &req); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	want := samplePage(t)
	cache.Put(context.Background(), &req, want)

	got, ok := cache.Get(context.Background(), &req)
	if !ok {
		t.Fatal("expected hit after put")
	}
	if got.Total() != 7 {
		t.Errorf("total = %d, want 7", got.Total())
	}
	if got.Took() != 42*time.Millisecond {
		t.Errorf("took = %v, want 42ms", got.Took())
	}

	items := got.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].ID() != "doc-1" || items[0].Author() != "Анна Иванова" {
		t.Errorf("first item = %s/%s", items[0].ID(), items[0].Author())
	}
	if d := items[0].DocumentInfo(); d == nil || d.Format != "PDF" {
		t.Errorf("document info lost: %+v", d)
	}
	if im := items[1].ImageInfo(); im == nil || !im.OCR {
		t.Errorf("image info lost: %+v", im)
	}
}

func TestCacheKeyDependsOnRequest(t *testing.T) {
	store := newFakeStore()
	cache := New(store, "", 30*time.Second, nil, zap.NewNop())

	req1 := mustRequest(t, "отчет", 1)
	req2 := mustRequest(t, "отчет", 2)

	cache.Put(context.Background(), &req1, samplePage(t))

	if _, ok := cache.Get(context.Background(), &req2); ok {
		t.Error("different page number must not share a cache entry")
	}
	if _, ok := cache.Get(context.Background(), &req1); !ok {
		t.Error("original request must still hit")
	}
}

func TestCacheGetErrorIsMiss(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	cache := New(store, "", time.Second, nil, zap.NewNop())
	req := mustRequest(t, "q", 1)

	if _, ok := cache.Get(context.Background(), &req); ok {
		t.Error("store failure must read as a miss")
	}
}

func TestCachePutErrorIsSwallowed(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("connection refused")
	cache := New(store, "", time.Second, nil, zap.NewNop())
	req := mustRequest(t, "q", 1)

	// Must not panic or surface the error.
	cache.Put(context.Background(), &req, samplePage(t))
}

func TestCacheCorruptEntryIsMiss(t *testing.T) {
	store := newFakeStore()
	cache := New(store, "", time.Second, nil, zap.NewNop())
	req := mustRequest(t, "q", 1)

	cache.Put(context.Background(), &req, samplePage(t))
	for k := range store.data {
		store.data[k] = []byte("{broken")
	}

	if _, ok := cache.Get(context.Background(), &req); ok {
		t.Error("corrupt entry must read as a miss")
	}
}
