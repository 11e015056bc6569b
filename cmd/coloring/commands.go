package main

import (
	"context"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Hachi2308/coloring/internal/archive"
	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/planner"
)

// dispatch routes one parsed command to its handler.
func (a *App) dispatch(ctx context.Context, command string, args []string) error {
	switch command {
	case "generate":
		return a.cmdGenerate(ctx, args)
	case "edit":
		return a.cmdEdit(ctx, args)
	case "upscale":
		return a.cmdUpscale(ctx, args)
	case "colorize":
		return a.cmdTransform(ctx, args, domain.TransformColorize)
	case "decolorize":
		return a.cmdTransform(ctx, args, domain.TransformDecolorize)
	case "retry":
		return a.cmdRetry(ctx, args)
	case "retry-all":
		return a.cmdRetryAll(ctx)
	case "history":
		return a.cmdHistory(ctx)
	case "failed":
		return a.cmdFailed(ctx)
	case "export":
		return a.cmdExport(ctx, args)
	case "clear":
		return a.cmdClear(ctx, args)
	case "styles":
		return a.cmdStyles()
	case "defaults":
		return a.cmdDefaults(args)
	case "style-add":
		return a.cmdStyleAdd(args)
	case "style-hide":
		return a.cmdStyleHide(args, true)
	case "style-unhide":
		return a.cmdStyleHide(args, false)
	case "palette-add":
		return a.cmdPaletteAdd(args)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
}

// baseConfig loads the saved generation defaults and overlays any flags the
// user set on this invocation.
func (a *App) baseConfig(fs *flag.FlagSet, style, color, palette, size, resolution, frame *string) (domain.JobConfig, error) {
	base, err := a.settings.LoadDefaults()
	if err != nil {
		return domain.JobConfig{}, fmt.Errorf("failed to load generation defaults: %w", err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "style":
			base.StyleID = *style
		case "color":
			base.ColorMode = domain.ColorMode(*color)
		case "palette":
			base.PaletteID = *palette
		case "size":
			base.PrintSize = *size
		case "resolution":
			base.Resolution = *resolution
		case "frame":
			base.UseFrame = *frame != ""
			base.FrameStyle = *frame
		}
	})

	// The prompt is supplied per task, so only the mode fields are checked
	// here.
	switch base.ColorMode {
	case domain.ColorModeColor, domain.ColorModeBW:
	default:
		return domain.JobConfig{}, domain.ErrJobColorModeInvalid
	}
	return base, nil
}

func addConfigFlags(fs *flag.FlagSet) (style, color, palette, size, resolution, frame *string) {
	style = fs.String("style", "", "style ID (see 'coloring styles')")
	color = fs.String("color", "", "color mode: bw or color")
	palette = fs.String("palette", "", "palette ID for color mode")
	size = fs.String("size", "", "print size, e.g. A4")
	resolution = fs.String("resolution", "", "output resolution, e.g. 1k, 2k, 4k")
	frame = fs.String("frame", "", "decorative frame style, empty for none")
	return
}

func (a *App) cmdGenerate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	count := fs.Int("n", 1, "pages per prompt")
	refs := fs.String("ref", "", "comma-separated reference image files")
	style, color, palette, size, resolution, frame := addConfigFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	base, err := a.baseConfig(fs, style, color, palette, size, resolution, frame)
	if err != nil {
		return err
	}

	references, err := loadReferenceImages(*refs)
	if err != nil {
		return err
	}

	err = a.service.NewGeneration(ctx, a.session, planner.NewGenerationRequest{
		Prompts:         fs.Args(),
		BatchCount:      *count,
		Base:            base,
		ReferenceImages: references,
	})
	if err != nil {
		return err
	}

	a.printJournal()
	return nil
}

func (a *App) cmdEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	instruction := fs.String("i", "", "edit instruction applied to each selected page")
	style, color, palette, size, resolution, frame := addConfigFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *instruction == "" {
		return fmt.Errorf("edit requires -i <instruction>")
	}

	base, err := a.baseConfig(fs, style, color, palette, size, resolution, frame)
	if err != nil {
		return err
	}

	selected, err := a.resolveImages(ctx, fs.Args())
	if err != nil {
		return err
	}

	if err := a.service.BatchEdit(ctx, a.session, selected, *instruction, base); err != nil {
		return err
	}

	a.printJournal()
	return nil
}

func (a *App) cmdUpscale(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upscale", flag.ContinueOnError)
	target := fs.String("resolution", "2k", "target resolution")
	if err := fs.Parse(args); err != nil {
		return err
	}

	base, err := a.settings.LoadDefaults()
	if err != nil {
		return err
	}

	selected, err := a.resolveImages(ctx, fs.Args())
	if err != nil {
		return err
	}

	if err := a.service.BatchUpscale(ctx, a.session, selected, *target, base); err != nil {
		return err
	}

	a.printJournal()
	return nil
}

func (a *App) cmdTransform(ctx context.Context, args []string, transform domain.TransformType) error {
	base, err := a.settings.LoadDefaults()
	if err != nil {
		return err
	}

	selected, err := a.resolveImages(ctx, args)
	if err != nil {
		return err
	}

	switch transform {
	case domain.TransformColorize:
		err = a.service.BatchColorize(ctx, a.session, selected, base)
	case domain.TransformDecolorize:
		err = a.service.BatchDecolorize(ctx, a.session, selected, base)
	}
	if err != nil {
		return err
	}

	a.printJournal()
	return nil
}

func (a *App) cmdRetry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("retry requires exactly one failed-job ID")
	}

	var match *domain.FailedJob
	for _, job := range a.session.FailedJobs() {
		if strings.HasPrefix(job.ID, args[0]) {
			if match != nil {
				return fmt.Errorf("failed-job ID %q is ambiguous", args[0])
			}
			match = job
		}
	}
	if match == nil {
		return fmt.Errorf("no failed job matches %q", args[0])
	}

	if err := a.service.RetryOne(ctx, a.session, match); err != nil {
		return err
	}

	a.printJournal()
	return nil
}

func (a *App) cmdRetryAll(ctx context.Context) error {
	if err := a.service.RetryAll(ctx, a.session); err != nil {
		return err
	}
	a.printJournal()
	return nil
}

func (a *App) cmdHistory(ctx context.Context) error {
	images, err := a.images.GetAllImages(ctx)
	if err != nil {
		return err
	}

	if len(images) == 0 {
		fmt.Println("history is empty")
		return nil
	}

	for _, img := range images {
		fmt.Printf("%s  %s  %-4s %-3s  %s\n",
			img.ID,
			img.Timestamp.Local().Format("2006-01-02 15:04"),
			img.Resolution,
			img.PrintSize,
			img.Prompt)
	}
	return nil
}

func (a *App) cmdFailed(ctx context.Context) error {
	jobs, err := a.failed.GetAllFailedJobs(ctx)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Println("no failed jobs")
		return nil
	}

	for _, job := range jobs {
		fmt.Printf("%s  %s  %q\n    %s\n",
			job.ID,
			job.Timestamp.Local().Format("2006-01-02 15:04"),
			job.Config.Prompt,
			job.ErrorMessage)
	}
	return nil
}

func (a *App) cmdExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	out := fs.String("out", "coloring-pages.zip", "output archive path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	images, err := a.images.GetAllImages(ctx)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("history is empty, nothing to export")
	}

	failed, err := archive.ExportImages(*out, images)
	if err != nil {
		return err
	}

	fmt.Printf("exported %d pages to %s\n", len(images)-len(failed), *out)
	for _, f := range failed {
		fmt.Fprintf(os.Stderr, "skipped: %s\n", f)
	}
	return nil
}

func (a *App) cmdClear(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "history" && args[0] != "failed") {
		return fmt.Errorf("clear requires 'history' or 'failed'")
	}

	if args[0] == "history" {
		if err := a.images.ClearImages(ctx); err != nil {
			return err
		}
		fmt.Println("history cleared")
		return nil
	}

	if err := a.failed.ClearFailedJobs(ctx); err != nil {
		return err
	}
	a.session.SetFailedJobs(nil)
	fmt.Println("failed-job queue cleared")
	return nil
}

func (a *App) cmdStyles() error {
	fmt.Println("Styles:")
	for _, s := range a.catalog.Styles() {
		fmt.Printf("  %-12s %s\n", s.ID, s.Name)
	}
	fmt.Println("Palettes:")
	for _, p := range a.catalog.Palettes() {
		fmt.Printf("  %-12s %s (%s)\n", p.ID, p.Name, strings.Join(p.Colors, ", "))
	}
	return nil
}

// resolveImages matches ID prefixes against the history. Every argument must
// resolve to exactly one entry.
func (a *App) resolveImages(ctx context.Context, ids []string) ([]*domain.GeneratedImage, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no pages selected, pass one or more history IDs")
	}

	images, err := a.images.GetAllImages(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.GeneratedImage, 0, len(ids))
	for _, id := range ids {
		var match *domain.GeneratedImage
		for _, img := range images {
			if strings.HasPrefix(img.ID.String(), id) {
				if match != nil {
					return nil, fmt.Errorf("page ID %q is ambiguous", id)
				}
				match = img
			}
		}
		if match == nil {
			return nil, fmt.Errorf("no page matches %q", id)
		}
		out = append(out, match)
	}
	return out, nil
}

// loadReferenceImages reads local image files and encodes them as data URIs.
// Arguments that already look like data URIs pass through untouched.
func loadReferenceImages(list string) ([]string, error) {
	if list == "" {
		return nil, nil
	}

	var out []string
	for _, path := range strings.Split(list, ",") {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if strings.HasPrefix(path, "data:") {
			out = append(out, path)
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read reference image %s: %w", path, err)
		}
		out = append(out, fmt.Sprintf("data:%s;base64,%s",
			mimeTypeForFile(path), base64.StdEncoding.EncodeToString(data)))
	}
	return out, nil
}

func mimeTypeForFile(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

// printJournal echoes the session journal so batch progress is visible
// without digging through the structured logs.
func (a *App) printJournal() {
	for _, entry := range a.journal.Entries() {
		fmt.Printf("[%s] %s\n", entry.Level, entry.Message)
	}
}
