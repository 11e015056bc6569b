package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Hachi2308/coloring/internal/domain"
)

// File names for the settings documents kept under the settings directory.
const (
	defaultsFile       = "generation_defaults.json"
	customStylesFile   = "custom_styles.json"
	customPalettesFile = "custom_palettes.json"
	hiddenStylesFile   = "hidden_styles.json"
)

// Store persists user settings as JSON documents on disk, one file per
// document. A missing file yields the document's default value rather than
// an error, so a fresh install needs no setup step.
type Store struct {
	dir string
}

// NewStore creates a settings store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultGenerationConfig returns the job configuration used when the user
// has never saved their own defaults.
func DefaultGenerationConfig() domain.JobConfig {
	return domain.JobConfig{
		PrintSize:  "A4",
		StyleID:    "classic",
		ColorMode:  domain.ColorModeBW,
		Resolution: "1k",
	}
}

// LoadDefaults reads the saved generation defaults.
func (s *Store) LoadDefaults() (domain.JobConfig, error) {
	cfg := DefaultGenerationConfig()
	if err := s.load(defaultsFile, &cfg); err != nil {
		return domain.JobConfig{}, err
	}
	return cfg, nil
}

// SaveDefaults persists the generation defaults.
func (s *Store) SaveDefaults(cfg domain.JobConfig) error {
	return s.save(defaultsFile, cfg)
}

// LoadCustomStyles reads the user-defined styles.
func (s *Store) LoadCustomStyles() ([]domain.Style, error) {
	var styles []domain.Style
	if err := s.load(customStylesFile, &styles); err != nil {
		return nil, err
	}
	return styles, nil
}

// SaveCustomStyles persists the user-defined styles.
func (s *Store) SaveCustomStyles(styles []domain.Style) error {
	return s.save(customStylesFile, styles)
}

// LoadCustomPalettes reads the user-defined palettes.
func (s *Store) LoadCustomPalettes() ([]domain.Palette, error) {
	var palettes []domain.Palette
	if err := s.load(customPalettesFile, &palettes); err != nil {
		return nil, err
	}
	return palettes, nil
}

// SaveCustomPalettes persists the user-defined palettes.
func (s *Store) SaveCustomPalettes(palettes []domain.Palette) error {
	return s.save(customPalettesFile, palettes)
}

// LoadHiddenStyles reads the IDs of styles the user has hidden from the
// style list.
func (s *Store) LoadHiddenStyles() ([]string, error) {
	var ids []string
	if err := s.load(hiddenStylesFile, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// SaveHiddenStyles persists the hidden style IDs.
func (s *Store) SaveHiddenStyles(ids []string) error {
	return s.save(hiddenStylesFile, ids)
}

// load reads one document into out. A missing file leaves out untouched.
func (s *Store) load(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return nil
}

// save writes one document as indented JSON, creating the settings
// directory on first use.
func (s *Store) save(name string, doc any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}
