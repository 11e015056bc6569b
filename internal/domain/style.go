package domain

// Style describes how generated pages should look: an instruction block that
// is prepended to the user's prompt and a negative prompt listing what the
// model should avoid.
type Style struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Instruction    string `json:"instruction"`
	NegativePrompt string `json:"negative_prompt"`
}

// Palette is a named set of colors the model is asked to stay within when
// producing color output.
type Palette struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// BuiltinStyles returns the styles that ship with the application. Custom
// styles from the settings documents are appended to these; hidden style IDs
// filter the combined list.
func BuiltinStyles() []Style {
	return []Style{
		{
			ID:             "classic",
			Name:           "Classic Coloring Book",
			Instruction:    "Clean bold black outlines on a white background, large open regions suitable for coloring, no shading.",
			NegativePrompt: "photorealism, gradients, watermark, text, signature",
		},
		{
			ID:             "kawaii",
			Name:           "Kawaii",
			Instruction:    "Cute rounded characters with oversized eyes, thick uniform outlines, simple cheerful shapes.",
			NegativePrompt: "realistic anatomy, fine hatching, watermark, text",
		},
		{
			ID:             "mandala",
			Name:           "Mandala",
			Instruction:    "Symmetric mandala composition with intricate repeating geometric patterns and crisp line work.",
			NegativePrompt: "asymmetry, photographic texture, watermark, text",
		},
		{
			ID:             "storybook",
			Name:           "Storybook",
			Instruction:    "Whimsical storybook illustration with expressive line work and a gentle sense of depth, outlines only.",
			NegativePrompt: "solid fills, heavy shadows, watermark, text",
		},
	}
}

// BuiltinPalettes returns the palettes that ship with the application.
func BuiltinPalettes() []Palette {
	return []Palette{
		{ID: "primary", Name: "Primary", Colors: []string{"red", "blue", "yellow"}},
		{ID: "pastel", Name: "Pastel", Colors: []string{"blush pink", "baby blue", "mint", "lavender", "cream"}},
		{ID: "earth", Name: "Earth Tones", Colors: []string{"terracotta", "olive", "ochre", "sand", "moss green"}},
		{ID: "ocean", Name: "Ocean", Colors: []string{"deep navy", "teal", "seafoam", "coral", "sea glass"}},
	}
}
