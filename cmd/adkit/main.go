// Command adkit は広告モックアップとコピー生成の HTTP サーバーです。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-http-kit/pkg/httpkit"

	"github.com/shouni/gemini-ad-kit/internal/config"
	"github.com/shouni/gemini-ad-kit/internal/server"
	"github.com/shouni/gemini-ad-kit/pkg/assets"
	"github.com/shouni/gemini-ad-kit/pkg/generator"
)

func main() {
	configPath := flag.String("config", "", "YAML 設定ファイルのパス（省略可）")
	flag.Parse()

	// .env は任意
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	client, err := generator.NewGenAIClient(ctx, cfg.Gemini.APIKey, nil)
	if err != nil {
		return err
	}
	invoker, err := generator.NewGenAIInvoker(client.Models)
	if err != nil {
		return err
	}
	gen, err := generator.NewAdGenerator(invoker, generator.Options{
		ImageModel:   cfg.Gemini.ImageModel,
		TextModel:    cfg.Gemini.TextModel,
		Timeout:      cfg.Gemini.Timeout,
		CaptionCount: cfg.Copy.CaptionCount,
		Observer: func(ctx context.Context, pipeline generator.Pipeline, state generator.State) {
			logger.DebugContext(ctx, "generation state", "pipeline", pipeline, "state", state)
		},
	})
	if err != nil {
		return err
	}

	reader, closeReader, err := newAssetReader(ctx, cfg.Assets.GCSEnabled)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeReader(); err != nil {
			logger.Warn("GCS クライアントのクローズに失敗しました", "error", err)
		}
	}()

	loader, err := assets.NewLoader(
		httpkit.New(cfg.Assets.FetchTimeout),
		reader,
		cache.New(cfg.Assets.CacheTTL, 2*cfg.Assets.CacheTTL),
		assets.Options{
			CacheTTL:           cfg.Assets.CacheTTL,
			Compress:           cfg.Assets.Compress,
			CompressionQuality: cfg.Assets.CompressionQuality,
		},
	)
	if err != nil {
		return err
	}

	handler, err := server.NewHandler(gen, gen, loader)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, server.NewRouter(handler, logger), logger)

	logger.Info("starting adkit",
		"addr", cfg.Server.Addr,
		"image_model", cfg.Gemini.ImageModel,
		"text_model", cfg.Gemini.TextModel,
		"gcs_enabled", cfg.Assets.GCSEnabled,
	)
	return srv.Run(ctx)
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
