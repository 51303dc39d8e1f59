package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spacesedan/sentijob/config"
	"github.com/spacesedan/sentijob/internal/classifier"
	"github.com/spacesedan/sentijob/internal/job"
	"github.com/spacesedan/sentijob/internal/logging"
	"github.com/spacesedan/sentijob/internal/models"
	"github.com/spacesedan/sentijob/internal/output"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg := config.FromEnv()
	logging.InitLogger(cfg.LogLevel)

	slog.Info("[Main] Starting sentiment job",
		slog.String("backend", cfg.Backend),
		slog.String("output", cfg.OutputPath))

	ctx := context.Background()
	writer := output.NewWriter(cfg.OutputPath)

	clf, err := classifier.ForBackend(cfg)
	if err != nil {
		// Backend setup counts as a classification failure: the record
		// still gets written and the process still exits cleanly.
		slog.Error("[Main] Failed to build classifier",
			slog.String("error", err.Error()))
		if werr := writer.Write(models.Failure(cfg.InputText, err)); werr != nil {
			slog.Error("[Main] Failed to write result",
				slog.String("error", werr.Error()))
			os.Exit(1)
		}
		return
	}

	if err := job.Run(ctx, clf, writer, cfg.InputText); err != nil {
		slog.Error("[Main] Failed to write result",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[Main] Result written", slog.String("path", cfg.OutputPath))
}
