package main

import (
	"fmt"

	"github.com/custodia-labs/hitlist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hitlist/internal/adapters/driven/source/algolia"
	"github.com/custodia-labs/hitlist/internal/adapters/driven/source/github"
	"github.com/custodia-labs/hitlist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hitlist/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hitlist/internal/adapters/driving/cli"
	"github.com/custodia-labs/hitlist/internal/config"
	"github.com/custodia-labs/hitlist/internal/core/domain"
	"github.com/custodia-labs/hitlist/internal/core/ports/driven"
	"github.com/custodia-labs/hitlist/internal/core/services"
	"github.com/custodia-labs/hitlist/internal/logger"
)

// wire builds the services for one command run from cfg.
func wire(cfg config.Config) (*cli.Services, error) {
	logger.Section("Wiring")

	source, err := openSource(cfg)
	if err != nil {
		return nil, err
	}

	history, closeHistory, err := openHistory(cfg)
	if err != nil {
		return nil, err
	}

	state, err := openState(cfg)
	if err != nil {
		_ = closeHistory()
		return nil, err
	}

	browser := services.NewBrowser(services.NewFetchController(source, services.NewListStore()), history)
	browser.SetStateStore(state)

	if err := applyDefaultSort(browser, cfg, state); err != nil {
		_ = closeHistory()
		return nil, err
	}

	return &cli.Services{
		Browser:  browser,
		History:  services.NewHistoryService(history),
		LastTerm: browser.LastTerm,
		Close:    closeHistory,
	}, nil
}

// openSource builds the item source named by source.kind.
func openSource(cfg config.Config) (driven.ItemSource, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	switch cfg.Source.Kind {
	case config.SourceGitHub:
		client, err := github.NewClient(github.Config{
			Token:   cfg.Source.Token,
			BaseURL: cfg.Source.GitHubURL,
			PerPage: cfg.Source.HitsPerPage,
			Timeout: timeout,
			Rate:    githubRate(cfg.Source.RateLimit),
		})
		if err != nil {
			return nil, err
		}
		logger.Info("item source: github %s", client.Endpoint())
		return client, nil

	default:
		client := algolia.NewClient(algolia.Config{
			Endpoint:    cfg.Source.Endpoint,
			HitsPerPage: cfg.Source.HitsPerPage,
			Timeout:     timeout,
			Rate:        cfg.Source.RateLimit,
		})
		logger.Info("item source: %s", client.Endpoint())
		return client, nil
	}
}

// githubRate caps the configured rate at the search API quota.
func githubRate(configured float64) float64 {
	if configured <= 0 || configured > github.DefaultRate {
		return github.DefaultRate
	}
	return configured
}

// openHistory selects the history backend named by data.history.
// The returned function closes it.
func openHistory(cfg config.Config) (driven.HistoryStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Data.History {
	case config.HistoryOff:
		logger.Info("history: off")
		return nil, noop, nil

	case config.HistoryMemory:
		logger.Info("history: memory")
		return memory.NewHistoryStore(0), noop, nil

	default:
		store, err := sqlite.NewStore(cfg.Data.Dir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening history: %w", err)
		}
		logger.Info("history: %s", store.Path())
		return store.HistoryStore(), store.Close, nil
	}
}

// openState returns the TOML state file when state is remembered and
// a throwaway in-memory store otherwise.
func openState(cfg config.Config) (driven.StateStore, error) {
	if !cfg.UI.RememberState {
		return memory.NewStateStore(), nil
	}
	store, err := file.NewStateStore(cfg.Data.Dir)
	if err != nil {
		return nil, fmt.Errorf("opening state: %w", err)
	}
	logger.Debug("state: %s", store.Path())
	return store, nil
}

// applyDefaultSort selects ui.default_sort unless a sort is remembered.
func applyDefaultSort(browser *services.Browser, cfg config.Config, state driven.StateStore) error {
	key, err := cfg.DefaultSortKey()
	if err != nil {
		return err
	}
	if key == domain.SortNone || state.LastSort().Key != domain.SortNone {
		return nil
	}
	browser.Dispatch(domain.SortBy{Key: key})
	return nil
}
