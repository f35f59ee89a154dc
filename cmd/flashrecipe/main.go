// flashrecipe is a terminal recipe manager: keep a collection, import
// recipes from text and photos with an AI assistant, and cook with
// step-by-step timers.
package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"flashrecipe/internal/cli"
	"flashrecipe/internal/config"
	"flashrecipe/internal/importer"
	"flashrecipe/internal/logger"
	"flashrecipe/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: resolving config path: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}

	// Direct logs to a file by default so command output stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		if dir := filepath.Dir(cfg.LogFile); dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party libs that use Go's default log package write to the
	// same place.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logger.ParseLevel(cfg.LogLevel), logOut)
	log.Debug("config: %s", cfg)

	kv, err := storage.NewFileKV(cfg.DataDir, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening data dir %s: %v\n", cfg.DataDir, err)
		os.Exit(1)
	}
	store := storage.NewRecipeStore(kv, log)
	stash := storage.NewDraftStash(kv, log)

	// The importer exists only when an AI endpoint is configured; the
	// import command explains the setup otherwise.
	var imp *importer.Importer
	if cfg.AIEnabled() {
		client := importer.NewClient(cfg.AIEndpoint, cfg.AIKey, log,
			importer.WithModel(cfg.AIModel),
		)
		imp = importer.New(client, log)
		log.Info("AI import enabled (model=%s)", cfg.AIModel)
	}

	cli.Setup(cli.Services{
		Store:    store,
		Stash:    stash,
		Importer: imp,
		Config:   cfg,
		Log:      log,
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
