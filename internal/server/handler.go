package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
	"github.com/shouni/gemini-ad-kit/pkg/generator"
)

// AssetLoader は URL 形式の画像参照を読み込みます。
type AssetLoader interface {
	Load(ctx context.Context, source string) (domain.ImageAsset, error)
}

// Handler は HTTP リクエストを生成処理に橋渡しします。
type Handler struct {
	mockups generator.MockupGenerator
	copies  generator.CopyGenerator
	loader  AssetLoader
}

// NewHandler は Handler を初期化します。loader が nil なら URL 指定の画像は受け付けません。
func NewHandler(mockups generator.MockupGenerator, copies generator.CopyGenerator, loader AssetLoader) (*Handler, error) {
	if mockups == nil {
		return nil, fmt.Errorf("mockup generator is required")
	}
	if copies == nil {
		return nil, fmt.Errorf("copy generator is required")
	}
	return &Handler{mockups: mockups, copies: copies, loader: loader}, nil
}

// Health は GET /healthz です。
func (h *Handler) Health(c *gin.Context) {
	success(c, gin.H{"status": "ok"})
}

// Catalog は GET /v1/catalog です。
func (h *Handler) Catalog(c *gin.Context) {
	success(c, CatalogResponse{
		Scenes:   domain.Scenes,
		Channels: domain.Channels,
		Tones:    domain.Tones,
	})
}

// CreateMockup は POST /v1/mockups です。
func (h *Handler) CreateMockup(c *gin.Context) {
	var req MockupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidRequest, "invalid request body", err.Error())
		return
	}

	channel, ok := lookupChannel(req.ChannelID)
	if !ok {
		fail(c, http.StatusBadRequest, CodeUnknownCatalog, "unknown channel", req.ChannelID)
		return
	}

	mode := domain.BackgroundMode(req.Background.Mode)
	if mode == "" {
		mode = domain.BackgroundScene
	}
	background := domain.BackgroundSpec{Mode: mode}
	if req.Background.SceneID != "" {
		scene, ok := domain.FindScene(req.Background.SceneID)
		if !ok {
			fail(c, http.StatusBadRequest, CodeUnknownCatalog, "unknown scene", req.Background.SceneID)
			return
		}
		background.Scene = scene.Name
	}

	ctx := c.Request.Context()
	var product domain.ImageAsset
	g, gctx := errgroup.WithContext(ctx)
	if !req.ProductImage.empty() {
		g.Go(func() error {
			asset, err := h.resolveImage(gctx, req.ProductImage)
			if err != nil {
				return fmt.Errorf("product_image: %w", err)
			}
			product = asset
			return nil
		})
	}
	if mode == domain.BackgroundCustom && !req.Background.Image.empty() {
		g.Go(func() error {
			asset, err := h.resolveImage(gctx, req.Background.Image)
			if err != nil {
				return fmt.Errorf("background.image: %w", err)
			}
			background.Custom = &asset
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if domain.KindOf(err) == domain.KindValidation {
			fail(c, http.StatusBadRequest, CodeValidation, "invalid input", err.Error())
			return
		}
		slog.WarnContext(ctx, "画像の読み込みに失敗しました", "error", err)
		fail(c, http.StatusBadRequest, CodeAssetFailed, "failed to load image", err.Error())
		return
	}

	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = channel.AspectRatio
	}

	image, err := h.mockups.GenerateMockup(ctx, domain.GenerationRequest{
		ProductImage:          product,
		Background:            background,
		ChannelName:           channel.Name,
		AdText:                req.AdText,
		PlacementInstructions: req.PlacementInstructions,
		AspectRatio:           aspectRatio,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	success(c, MockupResponse{Image: imagePayloadOf(*image)})
}

// CreateCopy は POST /v1/copy です。
func (h *Handler) CreateCopy(c *gin.Context) {
	var req CopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, CodeInvalidRequest, "invalid request body", err.Error())
		return
	}

	channel, ok := lookupChannel(req.ChannelID)
	if !ok {
		fail(c, http.StatusBadRequest, CodeUnknownCatalog, "unknown channel", req.ChannelID)
		return
	}
	var toneName string
	if req.ToneID != "" {
		tone, ok := domain.FindTone(req.ToneID)
		if !ok {
			fail(c, http.StatusBadRequest, CodeUnknownCatalog, "unknown tone", req.ToneID)
			return
		}
		toneName = tone.Name
	}

	captions, err := h.copies.GenerateCopy(c.Request.Context(), domain.CopyRequest{
		ChannelName:    channel.Name,
		ProductType:    req.ProductType,
		ProductDetails: req.ProductDetails,
		ToneName:       toneName,
	})
	if err != nil {
		writeGenerationError(c, err)
		return
	}
	if captions == nil {
		captions = []string{}
	}
	success(c, CopyResponse{Captions: captions})
}

func (h *Handler) resolveImage(ctx context.Context, p *ImagePayload) (domain.ImageAsset, error) {
	if p.Data != "" {
		// インラインの画像は呼び出し元の入力そのものなので検証エラーとして扱う
		asset, err := domain.ImageAssetFromBase64(p.MimeType, p.Data)
		if err != nil {
			return domain.ImageAsset{}, domain.NewValidationError("resolve image", err.Error())
		}
		return asset, nil
	}
	if h.loader == nil {
		return domain.ImageAsset{}, fmt.Errorf("image urls are not supported by this server")
	}
	return h.loader.Load(ctx, p.URL)
}

// lookupChannel は空の ID を「チャンネル指定なし」として扱います。
func lookupChannel(id string) (domain.Channel, bool) {
	if id == "" {
		return domain.Channel{}, true
	}
	return domain.FindChannel(id)
}

// writeGenerationError はエラー分類を HTTP ステータスに対応付けます。
func writeGenerationError(c *gin.Context, err error) {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		fail(c, http.StatusBadRequest, CodeValidation, "invalid input", err.Error())
	case domain.KindContent:
		fail(c, http.StatusUnprocessableEntity, CodeNoContent, "the model returned no usable content", err.Error())
	case domain.KindTransport:
		if errors.Is(err, context.DeadlineExceeded) {
			fail(c, http.StatusGatewayTimeout, CodeUpstreamTimeout, "the model call timed out", err.Error())
			return
		}
		fail(c, http.StatusBadGateway, CodeUpstream, "the model call failed", err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "分類されていないエラー", "error", err)
		fail(c, http.StatusInternalServerError, CodeInternal, "internal server error", "")
	}
}
