// Package filesystem routes all disk access through afero so tests can swap in an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	SetFs(afero.NewOsFs())
}

// SetMemMapFs installs a volatile in-memory backend for unit tests.
func SetMemMapFs() {
	SetFs(afero.NewMemMapFs())
}

// SetFs installs an arbitrary afero backend.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
