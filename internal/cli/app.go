// Package cli is the terminal front end: a REPL whose commands drive the
// view controller and the form adapter.
package cli

import (
	"bufio"
	"context"
	"os"

	"bukuku/internal/config"
	"bukuku/internal/filestore"
	"bukuku/internal/gateway"
	"bukuku/internal/gateway/rest"
	"bukuku/internal/logging"
	"bukuku/internal/view"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session gateway.Session
	ctrl    *view.Controller
	reader  *bufio.Reader

	loggedIn bool
}

// NewApp wires the gateway client, the file store picked by config and the
// view controller.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	client := rest.NewClient(cfg.GatewayBaseURL, cfg.HTTPTimeout, log)

	var store filestore.Store = client
	if cfg.FileStore == config.StoreS3 {
		store = filestore.NewS3Store(cfg.S3)
	}

	return &App{
		config:  cfg,
		log:     log,
		session: client,
		ctrl:    view.NewController(client, store, log),
		reader:  bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

func (a *App) getStatus() string {
	if u, ok := a.ctrl.User(); ok {
		return "(" + u.Email + ")"
	}
	return ""
}

// Run performs the initial load and enters the REPL.
func (a *App) Run(ctx context.Context) {
	printlnFn("Memuat koleksi buku...")
	a.ctrl.Load(ctx)
	if _, ok := a.ctrl.User(); ok {
		a.loggedIn = true
	}

	stats := a.ctrl.Stats()
	printlnFn("Perpustakaan", a.ctrl.Greeting(), "-", stats.Total, "buku (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
