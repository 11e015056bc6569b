// Package domain contains the core business entities and value objects of
// the coloring-page generator: job descriptors, generated-image history
// entries, failed-job records, styles and palettes. It is independent of any
// specific storage, transport, or model-provider mechanism.
package domain
