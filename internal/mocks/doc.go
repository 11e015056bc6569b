// Package mocks provides hand-written test doubles shared across packages.
// Each mock exposes injectable Fn fields for per-test behavior and tracks
// calls for verification.
package mocks
