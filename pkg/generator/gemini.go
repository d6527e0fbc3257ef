package generator

import (
	"context"
	"log/slog"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
	"github.com/shouni/gemini-ad-kit/pkg/prompt"
	"google.golang.org/genai"
)

// captionSchema はコピー生成で要求する出力形式（文字列の配列）です。
var captionSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: &genai.Schema{Type: genai.TypeString},
}

// GenerateMockup は商品画像と背景指定から広告モックアップ画像を生成します。
func (g *AdGenerator) GenerateMockup(ctx context.Context, req domain.GenerationRequest) (*domain.ImageAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	built := prompt.BuildMockup(req)
	modelReq := ModelRequest{
		Model:              g.imageModel,
		Parts:              assembleParts(built),
		ResponseModalities: []string{"IMAGE", "TEXT"},
		AspectRatio:        req.AspectRatio,
	}
	slog.InfoContext(ctx, "モックアップ生成リクエストを準備しました",
		"model", g.imageModel, "images", len(built.Images), "background", req.Background.Mode, "channel", req.ChannelName)

	var out *domain.ImageAsset
	err := g.invoke(ctx, PipelineMockup, modelReq, func(resp *genai.GenerateContentResponse) error {
		img, err := ExtractImage(resp)
		out = img
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GenerateCopy は商品情報から広告キャプションの一覧を生成します。
// 空の一覧は成功として返します。
func (g *AdGenerator) GenerateCopy(ctx context.Context, req domain.CopyRequest) ([]string, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	modelReq := ModelRequest{
		Model:          g.textModel,
		Parts:          []*genai.Part{{Text: prompt.BuildCopy(req, g.captionCount)}},
		ResponseSchema: captionSchema,
	}
	slog.InfoContext(ctx, "コピー生成リクエストを準備しました", "model", g.textModel, "channel", req.ChannelName, "tone", req.ToneName)

	var captions []string
	err := g.invoke(ctx, PipelineCopy, modelReq, func(resp *genai.GenerateContentResponse) error {
		c, err := ExtractCaptions(resp)
		captions = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return captions, nil
}

// assembleParts は画像パーツを先に、指示文を最後に並べます。
// モデルによっては先頭のパーツを主として扱うため、商品画像は常に先頭です。
func assembleParts(m prompt.Mockup) []*genai.Part {
	parts := make([]*genai.Part, 0, len(m.Images)+1)
	for _, img := range m.Images {
		parts = append(parts, toPart(img))
	}
	return append(parts, &genai.Part{Text: m.Text})
}

func toPart(img domain.ImageAsset) *genai.Part {
	return &genai.Part{InlineData: &genai.Blob{MIMEType: domain.NormalizeMimeType(img.MimeType), Data: img.Data}}
}
