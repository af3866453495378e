// Package filesystem routes all file access through a swappable afero
// backend, so tests and tooling can substitute an in-memory filesystem
// for the real one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches the backend to the native operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches the backend to a volatile in-memory filesystem.
// Intended for tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}
