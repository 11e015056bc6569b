// Package gemini implements the generation.Generator interface using
// Google's Gemini API. It assembles the full prompt from the job descriptor
// and the active style and palette, attaches reference images as inline
// data, and converts the model's inline image response back into a base64
// data URI.
package gemini
