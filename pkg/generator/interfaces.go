package generator

import (
	"context"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
	"google.golang.org/genai"
)

// ModelRequest はモデルへ送る 1 回分のリクエストです。
type ModelRequest struct {
	Model string
	// Parts はモデルに渡す順序そのままのパーツ列です。
	Parts []*genai.Part
	// ResponseSchema が nil でなければ JSON での構造化出力を要求します。
	ResponseSchema     *genai.Schema
	ResponseModalities []string
	AspectRatio        string
}

// Invoker は外部の生成モデルを呼び出すトランスポートです。
// 1 回の Invoke につき外部呼び出しはちょうど 1 回で、リトライは行いません。
type Invoker interface {
	Invoke(ctx context.Context, req ModelRequest) (*genai.GenerateContentResponse, error)
}

// MockupGenerator は広告モックアップ画像を生成します。
type MockupGenerator interface {
	GenerateMockup(ctx context.Context, req domain.GenerationRequest) (*domain.ImageAsset, error)
}

// CopyGenerator は広告コピーを生成します。
type CopyGenerator interface {
	GenerateCopy(ctx context.Context, req domain.CopyRequest) ([]string, error)
}

// Observer は呼び出しの状態遷移を受け取ります。
// Pending が 1 回、その後 Succeeded か Failed のどちらかが 1 回だけ通知されます。
type Observer func(ctx context.Context, pipeline Pipeline, state State)
