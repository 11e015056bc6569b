// Package settings persists user preferences as JSON documents on disk:
// generation defaults, custom styles, custom palettes and hidden style IDs.
// It also builds the combined style/palette catalog the prompt assembly
// consumes.
package settings
