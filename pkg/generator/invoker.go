package generator

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// contentGenerator は genai.Models のうち利用するメソッドだけを切り出したものです。
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// NewGenAIClient は Gemini API バックエンドの genai.Client を生成します。
func NewGenAIClient(ctx context.Context, apiKey string, httpClient *http.Client) (*genai.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("genai クライアントの初期化に失敗しました: %w", err)
	}
	return client, nil
}

// GenAIInvoker は google.golang.org/genai を直接使う Invoker です。
type GenAIInvoker struct {
	models contentGenerator
}

// NewGenAIInvoker は client.Models などを受け取って GenAIInvoker を生成します。
func NewGenAIInvoker(models contentGenerator) (*GenAIInvoker, error) {
	if models == nil {
		return nil, fmt.Errorf("models is required")
	}
	return &GenAIInvoker{models: models}, nil
}

// Invoke はリクエストを genai の Content と GenerateContentConfig に変換して送信します。
func (i *GenAIInvoker) Invoke(ctx context.Context, req ModelRequest) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{genai.NewContentFromParts(req.Parts, genai.RoleUser)}
	return i.models.GenerateContent(ctx, req.Model, contents, buildConfig(req))
}

func buildConfig(req ModelRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.ResponseSchema != nil {
		cfg.ResponseMIMEType = mimeTypeJSON
		cfg.ResponseSchema = req.ResponseSchema
	}
	if len(req.ResponseModalities) > 0 {
		cfg.ResponseModalities = req.ResponseModalities
	}
	if req.AspectRatio != "" {
		cfg.ImageConfig = &genai.ImageConfig{AspectRatio: req.AspectRatio}
	}
	return cfg
}

// ClientInvoker は go-gemini-client の GenerativeModel を Invoker として使うアダプターです。
// GenerateWithParts は出力スキーマを受け取れないため、構造化出力はプロンプトの指示だけに頼ります。
type ClientInvoker struct {
	client gemini.GenerativeModel
}

// NewClientInvoker は既存の go-gemini-client を包んで ClientInvoker を生成します。
func NewClientInvoker(client gemini.GenerativeModel) (*ClientInvoker, error) {
	if client == nil {
		return nil, fmt.Errorf("client (gemini.GenerativeModel) is required")
	}
	return &ClientInvoker{client: client}, nil
}

// Invoke は GenerateWithParts を 1 回呼び出し、SDK の生レスポンスを返します。
func (i *ClientInvoker) Invoke(ctx context.Context, req ModelRequest) (*genai.GenerateContentResponse, error) {
	if req.ResponseSchema != nil {
		slog.DebugContext(ctx, "go-gemini-client ではレスポンススキーマを送信できないため省略します", "model", req.Model)
	}

	resp, err := i.client.GenerateWithParts(ctx, req.Model, req.Parts, gemini.GenerateOptions{
		AspectRatio: req.AspectRatio,
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	return resp.RawResponse, nil
}
