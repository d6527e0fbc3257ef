package domain

import "strings"

// GenerationRequest は広告モックアップ画像の生成要求です。
type GenerationRequest struct {
	ProductImage          ImageAsset
	Background            BackgroundSpec
	ChannelName           string
	AdText                string // 空なら画像内テキストなし
	PlacementInstructions string // 空なら追加指示なし
	AspectRatio           string // 空ならモデル任せ
}

// Validate はモックアップ生成の前提条件を検証します。
func (r GenerationRequest) Validate() error {
	const op = "GenerationRequest.Validate"

	if r.ProductImage.IsZero() {
		return NewValidationError(op, "product image is required")
	}
	if err := r.ProductImage.Validate(); err != nil {
		return NewValidationError(op, "product image: "+err.Error())
	}

	switch r.Background.Mode {
	case BackgroundScene:
		if strings.TrimSpace(r.Background.Scene) == "" {
			return NewValidationError(op, "scene name is required in scene mode")
		}
	case BackgroundCustom:
		if r.Background.Custom == nil || r.Background.Custom.IsZero() {
			return NewValidationError(op, "custom background image is required in custom mode")
		}
		if err := r.Background.Custom.Validate(); err != nil {
			return NewValidationError(op, "custom background: "+err.Error())
		}
	default:
		return NewValidationError(op, "unknown background mode "+string(r.Background.Mode))
	}
	return nil
}

// CopyRequest は広告コピー（キャプション）の生成要求です。
type CopyRequest struct {
	ChannelName    string
	ProductType    string
	ProductDetails string
	ToneName       string
}

// Validate はコピー生成の前提条件を検証します。
func (r CopyRequest) Validate() error {
	const op = "CopyRequest.Validate"

	if strings.TrimSpace(r.ProductType) == "" {
		return NewValidationError(op, "product type is required")
	}
	if strings.TrimSpace(r.ProductDetails) == "" {
		return NewValidationError(op, "product details are required")
	}
	return nil
}
