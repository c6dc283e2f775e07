// Package web provides embedded frontend assets for the bukken service.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:dist
var distFS embed.FS

// DistFS returns the embedded assets as a filesystem rooted at "dist".
func DistFS() (fs.FS, error) {
	return fs.Sub(distFS, "dist")
}
