package server

import (
	"github.com/gin-gonic/gin"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
)

// Response は成功時の共通レスポンスです。
type Response[T any] struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      T      `json:"data,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorDetail はエラーの詳細です。
type ErrorDetail struct {
	ErrorCode string `json:"error_code,omitempty"`
	Details   string `json:"details,omitempty"`
}

// ErrorResponse は失敗時の共通レスポンスです。
type ErrorResponse struct {
	Code      int          `json:"code"`
	Message   string       `json:"message"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// エラーコード
const (
	CodeInvalidRequest  = "invalid_request"
	CodeUnknownCatalog  = "unknown_catalog_id"
	CodeAssetFailed     = "asset_unavailable"
	CodeValidation      = "validation_failed"
	CodeNoContent       = "no_usable_content"
	CodeUpstream        = "upstream_failed"
	CodeUpstreamTimeout = "upstream_timeout"
	CodeInternal        = "internal_error"
)

func success[T any](c *gin.Context, data T) {
	c.JSON(200, Response[T]{
		Code:      200,
		Message:   "success",
		Data:      data,
		RequestID: c.GetString(requestIDKey),
	})
}

func fail(c *gin.Context, status int, errorCode, message, details string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    status,
		Message: message,
		Error: &ErrorDetail{
			ErrorCode: errorCode,
			Details:   details,
		},
		RequestID: c.GetString(requestIDKey),
	})
}

// ImagePayload は画像の入出力形式です。Data (base64) か URL のどちらかを指定します。
// URL には http(s):// と data: のほか、設定されていれば gs:// も使えます。
type ImagePayload struct {
	MimeType string `json:"mime_type,omitempty"`
	Data     string `json:"data,omitempty"`
	URL      string `json:"url,omitempty"`
}

func (p *ImagePayload) empty() bool {
	return p == nil || (p.Data == "" && p.URL == "")
}

func imagePayloadOf(a domain.ImageAsset) ImagePayload {
	return ImagePayload{MimeType: a.MimeType, Data: a.Base64()}
}

// BackgroundPayload は背景指定です。
type BackgroundPayload struct {
	Mode    string        `json:"mode"` // "scene" または "custom"。空なら "scene"
	SceneID string        `json:"scene_id,omitempty"`
	Image   *ImagePayload `json:"image,omitempty"`
}

// MockupRequest は POST /v1/mockups のリクエストです。
type MockupRequest struct {
	ProductImage          *ImagePayload     `json:"product_image"`
	Background            BackgroundPayload `json:"background"`
	ChannelID             string            `json:"channel_id,omitempty"`
	AdText                string            `json:"ad_text,omitempty"`
	PlacementInstructions string            `json:"placement_instructions,omitempty"`
	// AspectRatio が空ならチャンネルの推奨比率を使います。
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

// MockupResponse は生成されたモックアップ画像です。
type MockupResponse struct {
	Image ImagePayload `json:"image"`
}

// CopyRequest は POST /v1/copy のリクエストです。
type CopyRequest struct {
	ChannelID      string `json:"channel_id,omitempty"`
	ProductType    string `json:"product_type"`
	ProductDetails string `json:"product_details"`
	ToneID         string `json:"tone_id,omitempty"`
}

// CopyResponse は生成されたキャプションです。0 件でも成功として返します。
type CopyResponse struct {
	Captions []string `json:"captions"`
}

// CatalogResponse は選択肢の一覧です。
type CatalogResponse struct {
	Scenes   []domain.Scene   `json:"scenes"`
	Channels []domain.Channel `json:"channels"`
	Tones    []domain.Tone    `json:"tones"`
}
