package main

import (
	"context"
	"fmt"

	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// newIOFactory は差し替え用です。
var newIOFactory = gcsfactory.New

// newAssetReader は gs:// 用の InputReader を返します。
// 無効なら reader は nil で、Loader は gs:// をエラーにします。
// 返す cleanup は常に呼び出して構いません。
func newAssetReader(ctx context.Context, enabled bool) (remoteio.InputReader, func() error, error) {
	noop := func() error { return nil }
	if !enabled {
		return nil, noop, nil
	}

	factory, err := newIOFactory(ctx)
	if err != nil {
		return nil, noop, err
	}
	reader, err := factory.InputReader()
	if err != nil {
		_ = factory.Close()
		return nil, noop, fmt.Errorf("GCS リーダーの生成に失敗しました: %w", err)
	}
	return reader, factory.Close, nil
}
