package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"mrbs/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/cockroachdb/errors"
)

// Applies migrations/schema.sql declaratively: atlas diffs the live database
// against the desired schema and runs the difference.
func main() {
	var (
		dir     = flag.String("dir", "migrations", "directory holding schema.sql")
		devURL  = flag.String("dev-url", "docker://postgres/17/dev", "atlas dev database used for diffing")
		dryRun  = flag.Bool("dry-run", false, "print the plan without applying it")
		timeout = flag.Duration("timeout", 2*time.Minute, "overall timeout")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	applied, err := apply(ctx, cfg.DB, *dir, *devURL, *dryRun)
	if err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}

	for _, stmt := range applied {
		slog.Info("applied", "statement", stmt)
	}
	slog.Info("マイグレーションが完了しました", "statements", len(applied), "dry_run", *dryRun)
}

func apply(ctx context.Context, db config.DBConfig, dir, devURL string, dryRun bool) ([]string, error) {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return nil, errors.Wrap(err, "prepare atlas working dir")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return nil, errors.Wrap(err, "create atlas client")
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         db.BuildDSN(),
		To:          "file://migrations/schema.sql",
		DevURL:      devURL,
		DryRun:      dryRun,
		AutoApprove: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "atlas schema apply")
	}
	if dryRun {
		return res.Changes.Pending, nil
	}
	return res.Changes.Applied, nil
}
