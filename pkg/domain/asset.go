package domain

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
)

// モデルが受け付ける画像の MIME タイプです。
const (
	MimeTypePNG  = "image/png"
	MimeTypeJPEG = "image/jpeg"
	MimeTypeWEBP = "image/webp"
)

// ImageAsset はアップロードされた画像、または生成された画像を表す不変の値です。
type ImageAsset struct {
	MimeType string
	Data     []byte
}

// IsSupportedMimeType は mimeType がモデルに渡せる画像形式かどうかを返します。
func IsSupportedMimeType(mimeType string) bool {
	switch NormalizeMimeType(mimeType) {
	case MimeTypePNG, MimeTypeJPEG, MimeTypeWEBP:
		return true
	}
	return false
}

// NewImageAsset は MIME タイプとバイト列を検証して ImageAsset を生成します。
// data は呼び出し元から切り離すためにコピーされます。
func NewImageAsset(mimeType string, data []byte) (ImageAsset, error) {
	mimeType = NormalizeMimeType(mimeType)
	if !IsSupportedMimeType(mimeType) {
		return ImageAsset{}, fmt.Errorf("unsupported image mime type %q", mimeType)
	}
	if len(data) == 0 {
		return ImageAsset{}, fmt.Errorf("image data is empty")
	}
	return ImageAsset{MimeType: mimeType, Data: bytes.Clone(data)}, nil
}

// ImageAssetFromBase64 は base64 文字列から ImageAsset を生成します。
func ImageAssetFromBase64(mimeType, encoded string) (ImageAsset, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return ImageAsset{}, fmt.Errorf("image data is not valid base64: %w", err)
	}
	return NewImageAsset(mimeType, data)
}

// ImageAssetFromDataURL は "data:image/png;base64,..." 形式の文字列を解析します。
func ImageAssetFromDataURL(dataURL string) (ImageAsset, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(dataURL), "data:")
	if !ok {
		return ImageAsset{}, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return ImageAsset{}, fmt.Errorf("data URL has no payload")
	}
	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return ImageAsset{}, fmt.Errorf("data URL must be base64 encoded")
	}
	return ImageAssetFromBase64(mimeType, payload)
}

// IsZero は値が未設定かどうかを返します。
func (a ImageAsset) IsZero() bool {
	return a.MimeType == "" && len(a.Data) == 0
}

// Validate は ImageAsset の不変条件を検証します。
func (a ImageAsset) Validate() error {
	if !IsSupportedMimeType(a.MimeType) {
		return fmt.Errorf("unsupported image mime type %q", a.MimeType)
	}
	if len(a.Data) == 0 {
		return fmt.Errorf("image data is empty")
	}
	return nil
}

// Base64 はデータを標準 base64 でエンコードした文字列を返します。
func (a ImageAsset) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// DataURL はブラウザでそのまま表示できる data URL を返します。
func (a ImageAsset) DataURL() string {
	return "data:" + a.MimeType + ";base64," + a.Base64()
}

// NormalizeMimeType は大文字小文字やパラメータ（"; charset=..."）の揺れを取り除き、
// image/jpg を image/jpeg に揃えます。
func NormalizeMimeType(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if mimeType == "image/jpg" {
		return MimeTypeJPEG
	}
	return mimeType
}
