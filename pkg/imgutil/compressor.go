package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Info は画像のフォーマットとサイズです。
type Info struct {
	Format   string // "png", "jpeg", "gif", "webp"
	MimeType string
	Width    int
	Height   int
}

// Inspect は画像全体をデコードせずにフォーマットとサイズを読み取ります。
// デコードできないデータはエラーになります。
func Inspect(data []byte) (Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("画像として解釈できません: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return Info{}, fmt.Errorf("画像サイズが不正です: %dx%d", cfg.Width, cfg.Height)
	}
	return Info{
		Format:   format,
		MimeType: "image/" + format,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}

// CompressToJPEG は画像データ（PNG, GIF, WebP, JPEG）をJPEG形式に圧縮します。
// 透過情報は失われるため、呼び出し側で必要な時だけ使います。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
