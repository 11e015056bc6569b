package gemini

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Hachi2308/coloring/internal/domain"
)

// Catalog resolves the active style and palette for a job. The settings
// layer implements it over the built-in catalogs plus the user's custom
// documents.
type Catalog interface {
	// StyleByID returns the style with the given ID, or false when unknown.
	StyleByID(id string) (domain.Style, bool)

	// PaletteByID returns the palette with the given ID, or false when unknown.
	PaletteByID(id string) (domain.Palette, bool)
}

// promptTemplateText assembles the final instruction sent to the model. The
// ordering matters: style first, then subject, then the color/frame/size
// directives, negatives last.
const promptTemplateText = `{{.StyleInstruction}}

Subject: {{.Subject}}.
{{- if .TransformDirective}}
{{.TransformDirective}}
{{- else if .IsEditing}}
Edit the provided reference image to match the subject instruction while preserving its overall composition.
{{- end}}
{{- if .ColorDirective}}
{{.ColorDirective}}
{{- end}}
{{- if .FrameDirective}}
{{.FrameDirective}}
{{- end}}
Output sized for {{.PrintSize}} printing at {{.Resolution}} resolution.
{{- if .Negative}}
Do not include: {{.Negative}}.
{{- end}}
`

// promptData carries the resolved fields for one template execution.
type promptData struct {
	StyleInstruction   string
	Subject            string
	IsEditing          bool
	TransformDirective string
	ColorDirective     string
	FrameDirective     string
	PrintSize          string
	Resolution         string
	Negative           string
}

// PromptBuilder turns a job descriptor into the full model prompt.
type PromptBuilder struct {
	catalog  Catalog
	template *template.Template
}

// NewPromptBuilder creates a builder over the given style/palette catalog.
func NewPromptBuilder(catalog Catalog) (*PromptBuilder, error) {
	tmpl, err := template.New("coloring-prompt").Parse(promptTemplateText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &PromptBuilder{
		catalog:  catalog,
		template: tmpl,
	}, nil
}

// Build assembles the prompt for one descriptor. An unknown style or palette
// ID degrades to no style instruction / no palette clause rather than
// failing the job.
func (b *PromptBuilder) Build(desc domain.JobDescriptor) (string, error) {
	data := promptData{
		Subject:    desc.Prompt,
		IsEditing:  desc.IsEditing,
		PrintSize:  orDefault(desc.PrintSize, "A4"),
		Resolution: orDefault(desc.Resolution, "1k"),
	}

	if style, ok := b.catalog.StyleByID(desc.StyleID); ok {
		data.StyleInstruction = style.Instruction
		data.Negative = style.NegativePrompt
	}

	switch desc.TransformType {
	case domain.TransformColorize:
		data.TransformDirective = "Colorize the provided reference line art, keeping every outline exactly where it is."
	case domain.TransformDecolorize:
		data.TransformDirective = "Convert the provided reference image into clean black-and-white line art, removing all fills and shading."
	}

	switch desc.ColorMode {
	case domain.ColorModeBW:
		data.ColorDirective = "Black ink outlines on a pure white background; no fills, no gray tones."
	case domain.ColorModeColor:
		data.ColorDirective = "Fully colored output."
		if palette, ok := b.catalog.PaletteByID(desc.PaletteID); ok && len(palette.Colors) > 0 {
			data.ColorDirective = fmt.Sprintf(
				"Fully colored output using only this palette: %s.",
				strings.Join(palette.Colors, ", "),
			)
		}
	}

	if desc.UseFrame {
		frame := orDefault(desc.FrameStyle, "simple")
		data.FrameDirective = fmt.Sprintf("Surround the artwork with a decorative %s border frame.", frame)
	}

	var buf bytes.Buffer
	if err := b.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
