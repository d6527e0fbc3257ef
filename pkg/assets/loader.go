// Package assets は画像の参照先（data URL、HTTP(S) URL、gs:// URI）を
// モデルに渡せる domain.ImageAsset に変換します。
package assets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/shouni/gemini-ad-kit/pkg/domain"
	"github.com/shouni/gemini-ad-kit/pkg/imgutil"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

const (
	DefaultCompressionQuality = 75
	// MaxImageBytes を超える画像は読み込みません。
	MaxImageBytes = 20 << 20

	cacheKeyPrefix = "asset:"
)

// HTTPClient は、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// ImageCacher は、取得済みの画像データをキャッシュするためのインターフェースです。
type ImageCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// Options は Loader の挙動を調整します。
type Options struct {
	CacheTTL           time.Duration
	Compress           bool // true なら JPEG に再圧縮する
	CompressionQuality int
}

// Loader は画像の参照先を ImageAsset に変換します。
type Loader struct {
	httpClient HTTPClient
	reader     remoteio.InputReader
	cache      ImageCacher
	opts       Options
}

// NewLoader は依存関係を注入して Loader を初期化します。
// reader が nil なら gs:// は扱えず、cache が nil ならキャッシュなしで動作します。
func NewLoader(httpClient HTTPClient, reader remoteio.InputReader, cache ImageCacher, opts Options) (*Loader, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if opts.CompressionQuality <= 0 || opts.CompressionQuality > 100 {
		opts.CompressionQuality = DefaultCompressionQuality
	}
	return &Loader{
		httpClient: httpClient,
		reader:     reader,
		cache:      cache,
		opts:       opts,
	}, nil
}

// Load は source を読み込み、検証済みの ImageAsset を返します。
func (l *Loader) Load(ctx context.Context, source string) (domain.ImageAsset, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return domain.ImageAsset{}, fmt.Errorf("画像の参照先が空です")
	}

	if strings.HasPrefix(source, "data:") {
		asset, err := domain.ImageAssetFromDataURL(source)
		if err != nil {
			return domain.ImageAsset{}, err
		}
		return l.finalize(asset.Data)
	}

	if l.cache != nil {
		if cached, found := l.cache.Get(cacheKeyPrefix + source); found {
			if data, ok := cached.([]byte); ok {
				return l.finalize(data)
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "source", source, "type", fmt.Sprintf("%T", cached))
		}
	}

	data, err := l.fetch(ctx, source)
	if err != nil {
		return domain.ImageAsset{}, err
	}

	asset, err := l.finalize(data)
	if err != nil {
		return domain.ImageAsset{}, err
	}
	if l.cache != nil {
		l.cache.Set(cacheKeyPrefix+source, data, l.opts.CacheTTL)
	}
	return asset, nil
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if remoteio.IsGCSURI(source) {
		if l.reader == nil {
			return nil, fmt.Errorf("gs:// の読み込みは設定されていません: %s", source)
		}
		rc, err := l.reader.Open(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("GCS からの読み込みに失敗しました: %w", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(io.LimitReader(rc, MaxImageBytes+1))
		if err != nil {
			return nil, fmt.Errorf("GCS からの読み込みに失敗しました: %w", err)
		}
		return data, nil
	}

	if safe, err := IsSafeURL(source); err != nil || !safe {
		slog.WarnContext(ctx, "SSRFの可能性がある、または不正なURLをブロックしました", "url", source, "error", err)
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}

	data, err := l.httpClient.FetchBytes(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("画像のダウンロードに失敗しました: %w", err)
	}
	return data, nil
}

// finalize はサイズと形式を検証し、必要なら JPEG に圧縮して ImageAsset にします。
func (l *Loader) finalize(data []byte) (domain.ImageAsset, error) {
	if len(data) > MaxImageBytes {
		return domain.ImageAsset{}, fmt.Errorf("画像が大きすぎます: %d bytes", len(data))
	}

	info, err := imgutil.Inspect(data)
	if err != nil {
		return domain.ImageAsset{}, err
	}

	mimeType := info.MimeType
	if l.opts.Compress {
		if compressed, err := imgutil.CompressToJPEG(data, l.opts.CompressionQuality); err == nil {
			data = compressed
			mimeType = domain.MimeTypeJPEG
		} else {
			slog.Warn("JPEG への圧縮に失敗したため元の画像を使います", "error", err)
		}
	}

	return domain.NewImageAsset(mimeType, data)
}
