package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/taskpad/taskpad/internal/auth"
	"github.com/taskpad/taskpad/internal/config"
	"github.com/taskpad/taskpad/internal/genai"
	"github.com/taskpad/taskpad/internal/i18n"
	"github.com/taskpad/taskpad/internal/logger"
	"github.com/taskpad/taskpad/internal/notify"
	"github.com/taskpad/taskpad/internal/storage"
	"github.com/taskpad/taskpad/internal/taskstore"
	"github.com/taskpad/taskpad/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "taskpad failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if !cfg.Validate() {
		return fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	log, err := logger.New(logger.Config{Level: cfg.Logger.Level, Path: cfg.Logger.Path})
	if err != nil {
		return fmt.Errorf("open logger: %w", err)
	}
	defer log.Sync()

	kv, err := openStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer kv.Close()

	if cfg.Locale != "" {
		if _, ok, _ := kv.Load(storage.LanguageKey); !ok {
			if err := i18n.SaveLocale(kv, cfg.Locale); err != nil {
				log.Warn("failed to persist initial locale", zap.Error(err))
			}
		}
	}

	authSvc := auth.New(kv, log,
		auth.WithLatency(cfg.Auth.Latency),
		auth.WithWipeTasksOnLogout(cfg.Auth.WipeTasksOnLogout),
	)
	authSvc.Restore()

	notices := notify.NewEngine(16)
	notices.Start()
	defer notices.Stop()

	deps := update.Deps{
		Auth:  authSvc,
		Tasks: taskstore.New(kv, log),
		Generator: genai.FromConfig(genai.Config{
			APIKey:    cfg.AI.APIKey,
			BaseURL:   cfg.AI.BaseURL,
			Model:     cfg.AI.Model,
			Timeout:   cfg.AI.Timeout,
			MockDelay: cfg.AI.MockDelay,
		}, log),
		Notices:   notices,
		KV:        kv,
		Log:       log,
		NoticeTTL: 4 * time.Second,
	}

	log.Info("starting taskpad",
		zap.String("backend", string(cfg.Storage.Backend)),
		zap.String("path", cfg.Storage.Path),
	)

	program := tea.NewProgram(update.New(deps), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func openStore(cfg config.StorageConfig) (storage.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, err
		}
		return storage.OpenSQLite(cfg.Path)
	case config.BackendBolt:
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, err
		}
		return storage.OpenBolt(cfg.Path)
	default:
		return storage.NewMemStore(), nil
	}
}
