package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hachi2308/coloring/internal/domain"
)

func TestStoreDefaultsRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())

	// Fresh install: the built-in defaults come back.
	cfg, err := s.LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, DefaultGenerationConfig(), cfg)

	cfg.StyleID = "mandala"
	cfg.ColorMode = domain.ColorModeColor
	cfg.Resolution = "2k"
	require.NoError(t, s.SaveDefaults(cfg))

	loaded, err := s.LoadDefaults()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestStoreCreatesDirectoryOnSave(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "settings")
	s := NewStore(dir)

	require.NoError(t, s.SaveHiddenStyles([]string{"kawaii"}))

	_, err := os.Stat(filepath.Join(dir, hiddenStylesFile))
	require.NoError(t, err)

	ids, err := s.LoadHiddenStyles()
	require.NoError(t, err)
	assert.Equal(t, []string{"kawaii"}, ids)
}

func TestStoreRejectsCorruptDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, customStylesFile), []byte("{not json"), 0o644))

	_, err := NewStore(dir).LoadCustomStyles()
	assert.Error(t, err)
}

func TestStoreCustomDocumentsRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir())

	styles := []domain.Style{{ID: "sketch", Name: "Sketch", Instruction: "loose pencil lines"}}
	palettes := []domain.Palette{{ID: "neon", Name: "Neon", Colors: []string{"#39FF14"}}}

	require.NoError(t, s.SaveCustomStyles(styles))
	require.NoError(t, s.SaveCustomPalettes(palettes))

	gotStyles, err := s.LoadCustomStyles()
	require.NoError(t, err)
	assert.Equal(t, styles, gotStyles)

	gotPalettes, err := s.LoadCustomPalettes()
	require.NoError(t, err)
	assert.Equal(t, palettes, gotPalettes)
}
