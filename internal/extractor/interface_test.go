package extractor

import (
	"context"
	"testing"

	"github.com/voxpage/voxpage/internal/article"
)

// Verify interfaces are satisfied at compile time
var _ Backend = (*HeuristicBackend)(nil)
var _ Backend = (*ReadabilityBackend)(nil)

// mockBackend for testing
type mockBackend struct {
	name      string
	available bool
	result    *ExtractResult
	err       error
}

func (m *mockBackend) Name() string      { return m.name }
func (m *mockBackend) IsAvailable() bool { return m.available }
func (m *mockBackend) Extract(ctx context.Context, url string) (*ExtractResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func TestMockBackendInterface(t *testing.T) {
	var _ Backend = &mockBackend{}

	mock := &mockBackend{
		name:      "mock",
		available: true,
		result: &ExtractResult{
			Article: &article.Result{Title: "Example", Content: "Hello, world!"},
		},
	}

	result, err := mock.Extract(context.Background(), "https://example.com")
	if err != nil {
		t.Fatalf("mock extract failed: %v", err)
	}
	if result.Article.Title != "Example" {
		t.Errorf("unexpected title: %q", result.Article.Title)
	}
}
