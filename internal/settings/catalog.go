package settings

import "github.com/Hachi2308/coloring/internal/domain"

// Catalog combines the built-in styles and palettes with the user's custom
// documents. Hidden style IDs remove entries from listing but not from
// lookup, so history entries that reference a hidden style still resolve.
type Catalog struct {
	styles       map[string]domain.Style
	palettes     map[string]domain.Palette
	hidden       map[string]struct{}
	styleOrder   []string
	paletteOrder []string
}

// LoadCatalog builds a Catalog from the settings store. Custom entries with
// the same ID as a built-in override it but keep its list position.
func LoadCatalog(store *Store) (*Catalog, error) {
	customStyles, err := store.LoadCustomStyles()
	if err != nil {
		return nil, err
	}

	customPalettes, err := store.LoadCustomPalettes()
	if err != nil {
		return nil, err
	}

	hiddenIDs, err := store.LoadHiddenStyles()
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		styles:   make(map[string]domain.Style),
		palettes: make(map[string]domain.Palette),
		hidden:   make(map[string]struct{}, len(hiddenIDs)),
	}

	for _, s := range append(domain.BuiltinStyles(), customStyles...) {
		if _, seen := c.styles[s.ID]; !seen {
			c.styleOrder = append(c.styleOrder, s.ID)
		}
		c.styles[s.ID] = s
	}
	for _, p := range append(domain.BuiltinPalettes(), customPalettes...) {
		if _, seen := c.palettes[p.ID]; !seen {
			c.paletteOrder = append(c.paletteOrder, p.ID)
		}
		c.palettes[p.ID] = p
	}
	for _, id := range hiddenIDs {
		c.hidden[id] = struct{}{}
	}

	return c, nil
}

// StyleByID resolves a style, hidden or not.
func (c *Catalog) StyleByID(id string) (domain.Style, bool) {
	s, ok := c.styles[id]
	return s, ok
}

// PaletteByID resolves a palette.
func (c *Catalog) PaletteByID(id string) (domain.Palette, bool) {
	p, ok := c.palettes[id]
	return p, ok
}

// Styles lists the visible styles in catalog order.
func (c *Catalog) Styles() []domain.Style {
	out := make([]domain.Style, 0, len(c.styleOrder))
	for _, id := range c.styleOrder {
		if _, isHidden := c.hidden[id]; isHidden {
			continue
		}
		out = append(out, c.styles[id])
	}
	return out
}

// Palettes lists every palette in catalog order.
func (c *Catalog) Palettes() []domain.Palette {
	out := make([]domain.Palette, 0, len(c.paletteOrder))
	for _, id := range c.paletteOrder {
		out = append(out, c.palettes[id])
	}
	return out
}
