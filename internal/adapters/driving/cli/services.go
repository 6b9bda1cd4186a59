package cli

import (
	"github.com/custodia-labs/hitlist/internal/config"
	"github.com/custodia-labs/hitlist/internal/core/ports/driving"
)

// Services holds the core services driven by the commands.
type Services struct {
	// Browser is the list state engine. Required by search and tui.
	Browser driving.ListBrowser

	// History is the search history. Optional.
	History driving.HistoryService

	// LastTerm returns the remembered search term. Optional.
	LastTerm func() string

	// Close releases stores opened for the services. Optional.
	Close func() error
}

// Wiring builds services from the loaded configuration.
type Wiring func(cfg config.Config) (*Services, error)

var (
	services *Services
	wiring   Wiring

	// wired is true when services came from wiring and must be released.
	wired bool
)

// SetWiring sets the function used to build services once the
// configuration is loaded.
func SetWiring(w Wiring) {
	wiring = w
}

// SetServices installs prebuilt services. Installed services are
// never built again nor released by the command tree.
func SetServices(s *Services) {
	services = s
	wired = false
}

func wire(cfg config.Config) error {
	if services != nil || wiring == nil {
		return nil
	}
	s, err := wiring(cfg)
	if err != nil {
		return err
	}
	services = s
	wired = true
	return nil
}

func release() error {
	if !wired || services == nil {
		return nil
	}
	s := services
	services = nil
	wired = false
	if s.Close != nil {
		return s.Close()
	}
	return nil
}

func browserService() (driving.ListBrowser, error) {
	if services == nil || services.Browser == nil {
		return nil, ErrBrowserNotConfigured
	}
	return services.Browser, nil
}

func historyService() (driving.HistoryService, error) {
	if services == nil || services.History == nil {
		return nil, ErrHistoryNotConfigured
	}
	return services.History, nil
}

func lastTerm() string {
	if services == nil || services.LastTerm == nil {
		return ""
	}
	return services.LastTerm()
}
