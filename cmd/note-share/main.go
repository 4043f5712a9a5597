package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-note-share/internal/clipboard"
	"github.com/MKhiriev/go-note-share/internal/config"
	"github.com/MKhiriev/go-note-share/internal/logger"
	"github.com/MKhiriev/go-note-share/internal/op"
	"github.com/MKhiriev/go-note-share/internal/service"
	"github.com/MKhiriev/go-note-share/internal/utils"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewFileLogger("note-share").WithRunID(utils.NewRunID())
	logBuildInfo(log)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fail(log, "error getting configs", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		fail(log, "error getting working directory", err)
	}

	svc := service.NewShareNoteService(
		cfg,
		op.NewClient(cfg.Op.Binary, op.ExecRunner{}),
		clipboard.System(),
		service.RunEnv{
			In:      os.Stdin,
			Out:     os.Stdout,
			ErrOut:  os.Stderr,
			WorkDir: workDir,
			Now:     time.Now,
		},
		log,
	)

	if err := svc.Run(context.Background()); err != nil {
		fail(log, "run error", err)
	}
}

// fail reports an unrecoverable error on stderr and in the log file, then
// exits non-zero. Expected failure branches never reach here; they are
// reported inside the pipeline and exit zero.
func fail(log *logger.Logger, msg string, err error) {
	fmt.Fprintf(os.Stderr, "note-share: %s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}

func logBuildInfo(log *logger.Logger) {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	log.Info().
		Str("build_version", buildVersion).
		Str("build_date", buildDate).
		Str("build_commit", buildCommit).
		Msg("starting note-share")
}
