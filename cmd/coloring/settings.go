package main

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/Hachi2308/coloring/internal/domain"
)

// cmdDefaults saves the given generation flags as the new defaults for
// future invocations.
func (a *App) cmdDefaults(args []string) error {
	fs := flag.NewFlagSet("defaults", flag.ContinueOnError)
	style, color, palette, size, resolution, frame := addConfigFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	base, err := a.baseConfig(fs, style, color, palette, size, resolution, frame)
	if err != nil {
		return err
	}

	if err := a.settings.SaveDefaults(base); err != nil {
		return err
	}
	fmt.Println("generation defaults saved")
	return nil
}

// cmdStyleAdd appends a custom style to the settings documents.
func (a *App) cmdStyleAdd(args []string) error {
	fs := flag.NewFlagSet("style-add", flag.ContinueOnError)
	id := fs.String("id", "", "style ID")
	name := fs.String("name", "", "display name")
	instruction := fs.String("instruction", "", "prompt instruction block")
	negative := fs.String("negative", "", "negative prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *instruction == "" {
		return fmt.Errorf("style-add requires -id and -instruction")
	}

	styles, err := a.settings.LoadCustomStyles()
	if err != nil {
		return err
	}

	next := domain.Style{ID: *id, Name: *name, Instruction: *instruction, NegativePrompt: *negative}
	replaced := false
	for i, s := range styles {
		if s.ID == *id {
			styles[i] = next
			replaced = true
		}
	}
	if !replaced {
		styles = append(styles, next)
	}

	if err := a.settings.SaveCustomStyles(styles); err != nil {
		return err
	}
	fmt.Printf("style %q saved\n", *id)
	return nil
}

// cmdPaletteAdd appends a custom palette to the settings documents.
func (a *App) cmdPaletteAdd(args []string) error {
	fs := flag.NewFlagSet("palette-add", flag.ContinueOnError)
	id := fs.String("id", "", "palette ID")
	name := fs.String("name", "", "display name")
	colors := fs.String("colors", "", "comma-separated color list")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *colors == "" {
		return fmt.Errorf("palette-add requires -id and -colors")
	}

	var colorList []string
	for _, c := range strings.Split(*colors, ",") {
		if c = strings.TrimSpace(c); c != "" {
			colorList = append(colorList, c)
		}
	}

	palettes, err := a.settings.LoadCustomPalettes()
	if err != nil {
		return err
	}

	next := domain.Palette{ID: *id, Name: *name, Colors: colorList}
	replaced := false
	for i, p := range palettes {
		if p.ID == *id {
			palettes[i] = next
			replaced = true
		}
	}
	if !replaced {
		palettes = append(palettes, next)
	}

	if err := a.settings.SaveCustomPalettes(palettes); err != nil {
		return err
	}
	fmt.Printf("palette %q saved\n", *id)
	return nil
}

// cmdStyleHide toggles a style's visibility in listings.
func (a *App) cmdStyleHide(args []string, hide bool) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one style ID")
	}
	id := args[0]

	if _, ok := a.catalog.StyleByID(id); !ok {
		return fmt.Errorf("unknown style %q", id)
	}

	hidden, err := a.settings.LoadHiddenStyles()
	if err != nil {
		return err
	}

	if hide {
		if !slices.Contains(hidden, id) {
			hidden = append(hidden, id)
		}
	} else {
		hidden = slices.DeleteFunc(hidden, func(h string) bool { return h == id })
	}

	if err := a.settings.SaveHiddenStyles(hidden); err != nil {
		return err
	}

	if hide {
		fmt.Printf("style %q hidden\n", id)
	} else {
		fmt.Printf("style %q visible\n", id)
	}
	return nil
}
