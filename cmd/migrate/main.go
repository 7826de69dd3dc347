package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"hotel-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the desired schema in MIGRATE_DIR to the configured database using
// the atlas CLI, which must be on PATH.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		slog.Error("atlasクライアントの初期化に失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          "file://" + cfg.Migrate.Dir,
		DevURL:      cfg.Migrate.DevURL,
		AutoApprove: true,
	})
	if err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	slog.Info("マイグレーションが完了しました", "applied", len(res.Changes.Applied))
}
