// Package generation provides the interface and error taxonomy for the
// remote image-generation call. It abstracts the model provider (Gemini)
// behind a single Generate operation so the scheduling core never couples to
// a specific external service, and it owns the one place where the remote
// API's error message format is interpreted.
package generation
