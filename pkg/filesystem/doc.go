// Package filesystem provides the types.FS implementations: a thin OS
// wrapper for production and an afero-backed one so the pattern engine
// can be exercised against an in-memory filesystem in tests.
package filesystem
