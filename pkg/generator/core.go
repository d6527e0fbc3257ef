package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
	"github.com/shouni/gemini-ad-kit/pkg/prompt"
	"google.golang.org/genai"
)

// AdGenerator はモックアップ生成とコピー生成の両パイプラインを束ねるコンポーネントです。
// 呼び出し間で状態を持たないため、並行して呼び出しても安全です。
// 同時に走らせるかどうかは呼び出し元が決めます。
type AdGenerator struct {
	invoker      Invoker
	imageModel   string
	textModel    string
	timeout      time.Duration
	captionCount int
	observer     Observer
}

// NewAdGenerator は依存関係を注入して AdGenerator を初期化します。
func NewAdGenerator(invoker Invoker, opts Options) (*AdGenerator, error) {
	if invoker == nil {
		return nil, fmt.Errorf("invoker is required")
	}

	g := &AdGenerator{
		invoker:      invoker,
		imageModel:   opts.ImageModel,
		textModel:    opts.TextModel,
		timeout:      opts.Timeout,
		captionCount: opts.CaptionCount,
		observer:     opts.Observer,
	}
	if g.imageModel == "" {
		g.imageModel = DefaultImageModel
	}
	if g.textModel == "" {
		g.textModel = DefaultTextModel
	}
	if g.timeout == 0 {
		g.timeout = DefaultTimeout
	}
	if g.captionCount <= 0 {
		g.captionCount = prompt.DefaultCaptionCount
	}
	return g, nil
}

// invoke は 1 回の呼び出しを実行し、通信層の失敗を TransportError に分類します。
// extract はレスポンスの解析で、その失敗もこの呼び出しの Failed として通知されます。
func (g *AdGenerator) invoke(ctx context.Context, pipeline Pipeline, req ModelRequest, extract func(*genai.GenerateContentResponse) error) error {
	op := "generate " + string(pipeline)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.notify(ctx, pipeline, StatePending)
	start := time.Now()

	resp, err := g.invoker.Invoke(ctx, req)
	if err != nil {
		err = domain.NewTransportError(op, "model call failed", err)
	} else {
		err = extract(resp)
	}

	if err != nil {
		slog.WarnContext(ctx, "生成リクエストが失敗しました",
			"pipeline", pipeline, "model", req.Model, "kind", domain.KindOf(err), "elapsed", time.Since(start), "error", err)
		g.notify(ctx, pipeline, StateFailed)
		return err
	}

	slog.InfoContext(ctx, "生成リクエストが完了しました", "pipeline", pipeline, "model", req.Model, "elapsed", time.Since(start))
	g.notify(ctx, pipeline, StateSucceeded)
	return nil
}

func (g *AdGenerator) notify(ctx context.Context, pipeline Pipeline, state State) {
	if g.observer != nil {
		g.observer(ctx, pipeline, state)
	}
}
