package server

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
)

// --- Mocks ---

type mockMockupGenerator struct {
	mu      sync.Mutex
	lastReq domain.GenerationRequest
	calls   int
	fn      func(ctx context.Context, req domain.GenerationRequest) (*domain.ImageAsset, error)
}

func (m *mockMockupGenerator) GenerateMockup(ctx context.Context, req domain.GenerationRequest) (*domain.ImageAsset, error) {
	m.mu.Lock()
	m.lastReq = req
	m.calls++
	m.mu.Unlock()
	if m.fn != nil {
		return m.fn(ctx, req)
	}
	return &domain.ImageAsset{MimeType: domain.MimeTypePNG, Data: []byte("mockup")}, nil
}

type mockCopyGenerator struct {
	lastReq domain.CopyRequest
	calls   int
	fn      func(ctx context.Context, req domain.CopyRequest) ([]string, error)
}

func (m *mockCopyGenerator) GenerateCopy(ctx context.Context, req domain.CopyRequest) ([]string, error) {
	m.lastReq = req
	m.calls++
	if m.fn != nil {
		return m.fn(ctx, req)
	}
	return []string{"one", "two", "three"}, nil
}

type mockLoader struct {
	mu      sync.Mutex
	sources []string
	err     error
}

func (m *mockLoader) Load(ctx context.Context, source string) (domain.ImageAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, source)
	if m.err != nil {
		return domain.ImageAsset{}, m.err
	}
	return domain.ImageAsset{MimeType: domain.MimeTypeJPEG, Data: []byte("loaded:" + source)}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
