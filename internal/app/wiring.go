package app

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/config"
	"github.com/five82/facet/internal/confirm"
	"github.com/five82/facet/internal/flow"
	"github.com/five82/facet/internal/persist"
	"github.com/five82/facet/internal/selection"
	"github.com/five82/facet/internal/state"
)

// Components is everything the UI needs, built from one Config.
type Components struct {
	Flow    *flow.Controller
	Catalog *state.Store
	Fetcher catalog.Fetcher
	Persist persist.Store
}

// Close releases the persistence backend.
func (c *Components) Close() error {
	if c == nil || c.Persist == nil {
		return nil
	}
	return c.Persist.Close()
}

// Build opens persistence, restores the committed selection and wires the
// selection store, gate, controller and catalog fetcher.
func Build(cfg config.Config, logger zerolog.Logger) (*Components, error) {
	dismiss, err := flow.ParseDismissPolicy(cfg.ConfirmDismiss)
	if err != nil {
		return nil, err
	}

	fetcher, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}

	records, err := persist.Open(cfg)
	if err != nil {
		return nil, err
	}

	initial := loadSelection(records, logger)
	store := selection.NewStore(initial, selection.WithCommitHook(saveOnCommit(records, logger)))
	ctrl := flow.New(store, confirm.New[flow.Action](),
		flow.WithDismissPolicy(dismiss),
		flow.WithLogger(logger),
	)

	return &Components{
		Flow:    ctrl,
		Catalog: &state.Store{},
		Fetcher: fetcher,
		Persist: records,
	}, nil
}

// newFetcher prefers a catalog file over the HTTP endpoint. Either is
// wrapped in a stale-time cache.
func newFetcher(cfg config.Config) (catalog.Fetcher, error) {
	var src catalog.Fetcher
	if cfg.CatalogFile != "" {
		src = catalog.FileSource(cfg.CatalogFile)
	} else {
		client, err := catalog.NewClient(cfg.CatalogURL)
		if err != nil {
			return nil, err
		}
		src = client
	}
	return catalog.NewCached(src, cfg.CatalogStale), nil
}

// loadSelection restores the committed selection. A record that cannot be
// read starts the session empty.
func loadSelection(records persist.Store, logger zerolog.Logger) selection.Selection {
	sel, err := records.Load()
	switch {
	case err == nil:
		return sel
	case errors.Is(err, persist.ErrMalformed):
		logger.Warn().Err(err).Msg("ignoring malformed selection record")
	default:
		logger.Warn().Err(err).Msg("could not load selection record")
	}
	return nil
}

// saveOnCommit persists every committed selection. Save failures are logged;
// the in-memory selection stays authoritative for the session.
func saveOnCommit(records persist.Store, logger zerolog.Logger) selection.CommitHook {
	return func(sel selection.Selection) {
		if err := records.Save(sel); err != nil {
			logger.Warn().Err(err).Msg("could not save selection record")
			return
		}
		logger.Debug().Int("filters", sel.Len()).Msg("selection saved")
	}
}
