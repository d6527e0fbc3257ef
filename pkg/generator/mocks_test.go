package generator

import (
	"context"
	"sync"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

// mockInvoker は Invoker の呼び出し回数と最後のリクエストを記録するスパイです。
type mockInvoker struct {
	mu         sync.Mutex
	calls      int
	lastReq    ModelRequest
	invokeFunc func(ctx context.Context, req ModelRequest) (*genai.GenerateContentResponse, error)
}

func (m *mockInvoker) Invoke(ctx context.Context, req ModelRequest) (*genai.GenerateContentResponse, error) {
	m.mu.Lock()
	m.calls++
	m.lastReq = req
	m.mu.Unlock()

	if m.invokeFunc != nil {
		return m.invokeFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockInvoker) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockModels は genai.Models の GenerateContent を差し替えます。
type mockModels struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (m *mockModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.model = model
	m.contents = contents
	m.config = config
	return m.resp, m.err
}

// mockGeminiClient は gemini.GenerativeModel のテスト用モックです。
// 使わないメソッドは埋め込んだインターフェースで解決します。
type mockGeminiClient struct {
	gemini.GenerativeModel
	generateWithPartsFunc func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}

func (m *mockGeminiClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	if m.generateWithPartsFunc != nil {
		return m.generateWithPartsFunc(ctx, model, parts, opts)
	}
	return nil, nil
}

// --- Fixtures ---

func imageResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content:      &genai.Content{Parts: parts},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}
}

func textResponse(text string) *genai.GenerateContentResponse {
	return imageResponse(&genai.Part{Text: text})
}

func inlinePart(mime, data string) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: mime, Data: []byte(data)}}
}
