package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/facet/internal/catalog"
	"github.com/five82/facet/internal/config"
	"github.com/five82/facet/internal/flow"
	"github.com/five82/facet/internal/persist"
	"github.com/five82/facet/internal/selection"
)

func testConfig(t *testing.T, backend string) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.StateBackend = backend
	cfg.StateDir = t.TempDir()
	cfg.LogFile = filepath.Join(t.TempDir(), "facet.log")
	return cfg
}

func TestBuild_CommitPersistsAcrossSessions(t *testing.T) {
	for _, backend := range []string{config.BackendFile, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig(t, backend)

			c, err := Build(cfg, zerolog.Nop())
			require.NoError(t, err)

			store := c.Flow.Store()
			store.OpenModal()
			store.ToggleOption("color", "red")
			require.True(t, c.Flow.Apply())
			assert.Equal(t, flow.ActionApplyDraft, c.Flow.Confirm())
			require.NoError(t, c.Close())

			next, err := Build(cfg, zerolog.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = next.Close() })

			got := next.Flow.Store().Selection()
			assert.True(t, selection.Equal(selection.Selection{{ID: "color", OptionIDs: []string{"red"}}}, got))
		})
	}
}

func TestBuild_DraftIsNeverPersisted(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)

	c, err := Build(cfg, zerolog.Nop())
	require.NoError(t, err)
	store := c.Flow.Store()
	store.OpenModal()
	store.ToggleOption("color", "red")
	require.True(t, c.Flow.Apply())
	assert.Equal(t, flow.ActionDiscardDraft, c.Flow.Cancel())

	_, err = os.Stat(filepath.Join(cfg.StateDir, cfg.StateName+".toml"))
	assert.True(t, os.IsNotExist(err), "record written without a commit")
}

func TestBuild_ResetAllPersistsEmpty(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	records := persist.NewFileStore(filepath.Join(cfg.StateDir, cfg.StateName+".toml"))
	require.NoError(t, records.Save(selection.Selection{{ID: "size", OptionIDs: []string{"m"}}}))

	c, err := Build(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, c.Flow.Store().HasSelection())

	require.True(t, c.Flow.RequestReset())
	assert.Equal(t, flow.ActionResetAll, c.Flow.Confirm())

	got, err := records.Load()
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestBuild_MalformedRecordStartsEmptyAndLogs(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	path := filepath.Join(cfg.StateDir, cfg.StateName+".toml")
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0o644))

	var logs bytes.Buffer
	c, err := Build(cfg, zerolog.New(&logs))
	require.NoError(t, err)

	assert.True(t, c.Flow.Store().Selection().IsEmpty())
	assert.Contains(t, logs.String(), "malformed selection record")
}

func TestBuild_RejectsBadDismissPolicy(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	cfg.ConfirmDismiss = "maybe"

	_, err := Build(cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestBuild_FetcherPrefersCatalogFile(t *testing.T) {
	cfg := testConfig(t, config.BackendFile)
	cfg.CatalogFile = filepath.Join(t.TempDir(), "filters.json")
	doc := catalog.Document{FilterItems: []catalog.Filter{{ID: "color", Name: "Color"}}}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg.CatalogFile, data, 0o644))

	c, err := Build(cfg, zerolog.Nop())
	require.NoError(t, err)

	filters, err := c.Fetcher.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, filters, 1)
	assert.Equal(t, "Color", filters[0].Name)
}

func TestApplyOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := config.Default()
	cfg.CatalogFile = "/etc/facet/filters.json"

	got, err := applyOverrides(cfg, Options{
		StateDir:   "~/state",
		CatalogURL: "10.0.0.2:7488",
		Theme:      "Slate",
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "state"), got.StateDir)
	assert.Equal(t, "10.0.0.2:7488", got.CatalogURL)
	assert.Empty(t, got.CatalogFile, "a catalog url flag should win over the configured file")
	assert.Equal(t, "Slate", got.Theme)

	got, err = applyOverrides(cfg, Options{CatalogFile: "~/filters.json"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got.CatalogFile, home))
}
