package service

import (
	"fmt"
	"testing"

	"github.com/tempizhere/golinks/internal/models"
	"github.com/tempizhere/golinks/internal/repository"
	"go.uber.org/zap"
)

func BenchmarkCreateLink(b *testing.B) {
	svc := NewService(repository.NewMemoryRepository(), "http://localhost:8080", 4, zap.NewNop())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		code := fmt.Sprintf("code%d", i)
		_, _ = svc.CreateLink(code, "https://example.com/long-url", nil)
	}
}

func BenchmarkResolve(b *testing.B) {
	repo := repository.NewMemoryRepository()
	svc := NewService(repo, "http://localhost:8080", 4, zap.NewNop())
	_ = repo.Insert("docs", "https://example.com/docs", nil, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = svc.Resolve("docs")
	}
}

func BenchmarkCreateBatch(b *testing.B) {
	items := make([]models.BatchCreateItem, 100)
	for i := range items {
		items[i] = models.BatchCreateItem{URL: fmt.Sprintf("https://example.com/%d", i)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc := NewService(repository.NewMemoryRepository(), "http://localhost:8080", 4, zap.NewNop())
		_, _ = svc.CreateBatch(items)
	}
}
