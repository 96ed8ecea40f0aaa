// Package cli implements the interactive front-end: a small REPL that
// collects input, calls into the task engine, and prints outcomes. All
// user-facing text lives here; the engine only returns typed results.
package cli

import (
	"bufio"
	"context"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/taskkeeper/internal/accounts"
	"github.com/dmitrijs2005/taskkeeper/internal/audit"
	"github.com/dmitrijs2005/taskkeeper/internal/config"
	"github.com/dmitrijs2005/taskkeeper/internal/engine"
	"github.com/dmitrijs2005/taskkeeper/internal/filex"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/storage/jsonstore"
	"github.com/dmitrijs2005/taskkeeper/internal/tasks"
)

const (
	userStoreFile = "users.json"
	taskStoreFile = "tasks.json"
	auditFile     = "audit.log"
)

type App struct {
	config *config.Config
	engine *engine.Engine
	log    logging.Logger
	reader *bufio.Reader
}

// NewApp prepares the data directory, loads both stores into memory, and
// wires the engine. A store that exists but cannot be parsed is a fatal
// error: continuing would not reflect persisted reality.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	registry := accounts.NewRegistry(jsonstore.New(filepath.Join(dir, userStoreFile)))
	if err := registry.Load(ctx); err != nil {
		return nil, err
	}

	ledger := tasks.NewLedger(jsonstore.New(filepath.Join(dir, taskStoreFile)))
	if err := ledger.Load(ctx); err != nil {
		return nil, err
	}

	var trail *audit.Trail
	if cfg.AuditEnabled {
		trail = audit.NewTrail(filepath.Join(dir, auditFile))
	}

	eng := engine.New(registry, ledger, trail, log)
	log.Info(ctx, "stores loaded", "dir", dir, "audit", cfg.AuditEnabled)

	return &App{
		config: cfg,
		engine: eng,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	printlnFn("TaskKeeper (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	_, ok := a.engine.CurrentUser()
	return ok
}

func (a *App) status() string {
	user, ok := a.engine.CurrentUser()
	if !ok {
		return "anonymous"
	}
	return user
}
