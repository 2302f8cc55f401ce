package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/astrogid/astrogid/internal/admin"
	"github.com/astrogid/astrogid/internal/catalog"
	"github.com/astrogid/astrogid/internal/config"
	"github.com/astrogid/astrogid/internal/feedback"
	"github.com/astrogid/astrogid/internal/logging"
	"github.com/astrogid/astrogid/internal/notify"
	"github.com/astrogid/astrogid/internal/repository"
	"github.com/astrogid/astrogid/internal/session"
	"github.com/astrogid/astrogid/internal/storage"
)

// App wires the store, repositories and services behind the interactive CLI.
type App struct {
	config    *config.Config
	log       logging.Logger
	store     *storage.Store
	repo      *repository.Repository
	sessions  *session.Manager
	catalog   *catalog.Catalog
	feedback  *feedback.Log
	admin     *admin.Utilities
	composer  notify.Composer
	deliverer notify.Deliverer

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the database, loads the collections and the persisted session,
// and returns a ready-to-run App reading from stdin.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error opening database", "error", err)
		return nil, err
	}

	repo := repository.New(store, log)
	if err := repo.Load(ctx); err != nil {
		store.Close()
		return nil, err
	}

	sessions := session.NewManager(repo, store, log)
	if err := sessions.Load(ctx); err != nil {
		store.Close()
		return nil, err
	}

	fb := feedback.New(store, log, cfg.FeedbackRetention)

	return &App{
		config:    cfg,
		log:       log,
		store:     store,
		repo:      repo,
		sessions:  sessions,
		catalog:   catalog.New(repo),
		feedback:  fb,
		admin:     admin.New(repo, sessions, fb),
		composer:  notify.Composer{SiteName: cfg.SiteName, ContactEmail: cfg.ContactEmail},
		deliverer: notify.LogDeliverer{Log: log},
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().State == session.Authenticated
}
