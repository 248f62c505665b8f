// Package container provides dependency injection for the grana
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"rcampos/grana/internal/categorizer"
	"rcampos/grana/internal/config"
	"rcampos/grana/internal/csvparse"
	"rcampos/grana/internal/csvutil"
	"rcampos/grana/internal/fetch"
	"rcampos/grana/internal/importer"
	"rcampos/grana/internal/insights"
	"rcampos/grana/internal/normalize"
	"rcampos/grana/internal/repository"
	"rcampos/grana/internal/settings"
	"rcampos/grana/internal/store"
	"rcampos/grana/internal/syncer"
)

// Container holds all application dependencies. It is immutable after
// creation; components are reached through getters only.
type Container struct {
	logger   *logrus.Logger
	config   *config.Config
	kv       store.KV
	repo     *repository.Repository
	settings *settings.Settings
	cat      *categorizer.Categorizer
	syncer   *syncer.Syncer
	importer *importer.Importer
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}
	propagateLogger(logger)

	kv, err := store.NewFileStore(cfg.Data.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to open data store: %w", err)
	}

	repo, err := repository.New(kv)
	if err != nil {
		return nil, fmt.Errorf("failed to load repository state: %w", err)
	}

	sett, err := settings.Load(kv)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	cat, err := categorizer.LoadFromFile(cfg.Categories.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load category rules: %w", err)
	}

	fetcher := fetch.NewClient(
		time.Duration(cfg.Sync.TimeoutSeconds)*time.Second,
		uint64(cfg.Sync.Retries))

	return &Container{
		logger:   logger,
		config:   cfg,
		kv:       kv,
		repo:     repo,
		settings: sett,
		cat:      cat,
		syncer:   syncer.New(fetcher, repo, cat),
		importer: importer.New(repo, cat),
	}, nil
}

// propagateLogger hands the configured logger to every package-level log.
func propagateLogger(logger *logrus.Logger) {
	store.SetLogger(logger)
	repository.SetLogger(logger)
	csvparse.SetLogger(logger)
	csvutil.SetLogger(logger)
	normalize.SetLogger(logger)
	categorizer.SetLogger(logger)
	fetch.SetLogger(logger)
	syncer.SetLogger(logger)
	importer.SetLogger(logger)
	insights.SetLogger(logger)
}

// Logger returns the configured application logger.
func (c *Container) Logger() *logrus.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// Store returns the persistence capability.
func (c *Container) Store() store.KV { return c.kv }

// Repository returns the transaction repository.
func (c *Container) Repository() *repository.Repository { return c.repo }

// Settings returns the persisted user settings.
func (c *Container) Settings() *settings.Settings { return c.settings }

// Categorizer returns the keyword categorizer.
func (c *Container) Categorizer() *categorizer.Categorizer { return c.cat }

// Syncer returns the sync orchestrator.
func (c *Container) Syncer() *syncer.Syncer { return c.syncer }

// Importer returns the file importer.
func (c *Container) Importer() *importer.Importer { return c.importer }
