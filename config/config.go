// ABOUTME: Run configuration for the photo directory updater
// ABOUTME: Loads YAML from XDG config paths, applies env overrides, and validates object ids
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "photodir"

	DefaultSheetRange     = "Sheet1!A1:Z500"
	DefaultPlaceholderURL = "https://www.gstatic.com/images/branding/product/2x/avatar_square_grey_512dp.png"
	DefaultAnchorIndex    = 1
	DefaultLastCellIndex  = 16
	DefaultImageSize      = 140
)

var ErrMissingID = errors.New("missing google object id")

// Columns maps contact attributes to header names. Single-valued attributes use
// the first header that is present; emails and phones collect every match.
type Columns struct {
	Team      []string `yaml:"team"`
	Role      []string `yaml:"role"`
	LastName  []string `yaml:"last_name"`
	FirstName []string `yaml:"first_name"`
	Email     []string `yaml:"email"`
	Skype     []string `yaml:"skype"`
	Phone     []string `yaml:"phone"`
}

type Layout struct {
	AnchorIndex   int64   `yaml:"anchor_index"`
	LastCellIndex int64   `yaml:"last_cell_index"`
	ImageSize     float64 `yaml:"image_size"`
	HideBorders   bool    `yaml:"hide_borders"`
	FontSize      float64 `yaml:"font_size,omitempty"`
}

type Config struct {
	SheetID         string   `yaml:"sheet_id"`
	SheetRange      string   `yaml:"sheet_range"`
	PhotosFolderID  string   `yaml:"photos_folder_id"`
	DocumentID      string   `yaml:"document_id"`
	PlaceholderURL  string   `yaml:"placeholder_url"`
	CredentialsFile string   `yaml:"credentials_file,omitempty"`
	PinnedTeams     []string `yaml:"pinned_teams"`
	Columns         Columns  `yaml:"columns"`
	Layout          Layout   `yaml:"layout"`
}

// DefaultColumns matches the contact sheet header used by the directory.
func DefaultColumns() Columns {
	return Columns{
		Team:      []string{"Team"},
		Role:      []string{"Role"},
		LastName:  []string{"Last Name", "Name 1"},
		FirstName: []string{"First Name", "Name 2"},
		Email:     []string{"Email", "Email 1", "Email 2"},
		Skype:     []string{"Skype Name", "Skype"},
		Phone:     []string{"Phone", "Phone 1", "Phone 2"},
	}
}

func Default() *Config {
	return &Config{
		SheetRange:     DefaultSheetRange,
		PlaceholderURL: DefaultPlaceholderURL,
		PinnedTeams:    []string{"Admin", "Finance"},
		Columns:        DefaultColumns(),
		Layout: Layout{
			AnchorIndex:   DefaultAnchorIndex,
			LastCellIndex: DefaultLastCellIndex,
			ImageSize:     DefaultImageSize,
		},
	}
}

// DefaultPath returns the XDG-compliant config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load reads the config file at path (DefaultPath when empty). A missing file
// yields defaults. Environment variables override file values:
// - PHOTODIR_SHEET_ID
// - PHOTODIR_SHEET_RANGE
// - PHOTODIR_PHOTOS_FOLDER_ID
// - PHOTODIR_DOCUMENT_ID
// - PHOTODIR_PLACEHOLDER_URL
// - PHOTODIR_CREDENTIALS_FILE
// - PHOTODIR_HIDE_BORDERS.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PHOTODIR_SHEET_ID"); v != "" {
		cfg.SheetID = v
	}
	if v := os.Getenv("PHOTODIR_SHEET_RANGE"); v != "" {
		cfg.SheetRange = v
	}
	if v := os.Getenv("PHOTODIR_PHOTOS_FOLDER_ID"); v != "" {
		cfg.PhotosFolderID = v
	}
	if v := os.Getenv("PHOTODIR_DOCUMENT_ID"); v != "" {
		cfg.DocumentID = v
	}
	if v := os.Getenv("PHOTODIR_PLACEHOLDER_URL"); v != "" {
		cfg.PlaceholderURL = v
	}
	if v := os.Getenv("PHOTODIR_CREDENTIALS_FILE"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("PHOTODIR_HIDE_BORDERS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Layout.HideBorders = b
		}
	}
}

// Save writes the config as YAML, creating the parent directory.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks that the ids needed for a full update are set.
func (c *Config) Validate() error {
	return c.Require(true, true, true)
}

// Require checks the selected ids and names every missing one.
func (c *Config) Require(sheet, folder, document bool) error {
	var missing []string
	if sheet && c.SheetID == "" {
		missing = append(missing, "sheet_id")
	}
	if folder && c.PhotosFolderID == "" {
		missing = append(missing, "photos_folder_id")
	}
	if document && c.DocumentID == "" {
		missing = append(missing, "document_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingID, strings.Join(missing, ", "))
	}
	return nil
}
