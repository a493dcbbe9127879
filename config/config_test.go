package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPathXDG(t *testing.T) {
	path := DefaultPath()

	expectedBase := filepath.Join(xdg.ConfigHome, AppName)
	if !strings.HasPrefix(path, expectedBase) {
		t.Errorf("expected path under %s, got %s", expectedBase, path)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("expected filename config.yaml, got %s", filepath.Base(path))
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultSheetRange, cfg.SheetRange)
	assert.Equal(t, []string{"Admin", "Finance"}, cfg.PinnedTeams)
	assert.Equal(t, int64(16), cfg.Layout.LastCellIndex)
	assert.Equal(t, int64(1), cfg.Layout.AnchorIndex)
	assert.Equal(t, float64(140), cfg.Layout.ImageSize)
	assert.Equal(t, DefaultPlaceholderURL, cfg.PlaceholderURL)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
sheet_id: sheet-1
photos_folder_id: folder-1
document_id: doc-1
pinned_teams: [Board]
layout:
  anchor_index: 1
  last_cell_index: 16
  image_size: 120
  hide_borders: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "sheet-1", cfg.SheetID)
	assert.Equal(t, []string{"Board"}, cfg.PinnedTeams)
	assert.Equal(t, float64(120), cfg.Layout.ImageSize)
	assert.True(t, cfg.Layout.HideBorders)
	assert.Equal(t, DefaultSheetRange, cfg.SheetRange)
	assert.Equal(t, DefaultColumns(), cfg.Columns)
	require.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sheet_id: [unterminated"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PHOTODIR_SHEET_ID", "env-sheet")
	t.Setenv("PHOTODIR_DOCUMENT_ID", "env-doc")
	t.Setenv("PHOTODIR_HIDE_BORDERS", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "env-sheet", cfg.SheetID)
	assert.Equal(t, "env-doc", cfg.DocumentID)
	assert.True(t, cfg.Layout.HideBorders)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.SheetID = "sheet-9"

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sheet-9", loaded.SheetID)
}

func TestValidateNamesMissingIDs(t *testing.T) {
	cfg := Default()
	cfg.SheetID = "s"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingID))
	assert.Contains(t, err.Error(), "photos_folder_id")
	assert.Contains(t, err.Error(), "document_id")
	assert.NotContains(t, err.Error(), "sheet_id")
}

func TestRequireSelectedIDs(t *testing.T) {
	cfg := Default()
	cfg.DocumentID = "doc"

	require.NoError(t, cfg.Require(false, false, true))
	require.NoError(t, cfg.Require(false, false, false))

	err := cfg.Require(true, false, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sheet_id")
	assert.NotContains(t, err.Error(), "photos_folder_id")
}
